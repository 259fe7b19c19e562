// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package optrec recognizes command-line options and renders help text.
//
// It supports 2 kinds of options:
//
//	Flag - a boolean option which takes no value
//	Key - an option followed by one value token, decoded as string, int, int64, float32, float64 or time.Time
//
// Options are declared once per command. OptionGroup restricts how many options of a set may be
// passed (at most one, exactly one, at least one). A Recognizer walks the argument tokens, sets the
// values of matched options and leaves positional tokens in place. On failure the returned error can
// be rendered together with the command usage by DefaultHelpGenerator:
//
//	silent := NewFlag([]string{"-s", "--silent"}, WithUsage("Silence all test output"))
//	times := NewKey[int]([]string{"-t", "--times"}, WithUsage("Number of times to run the test"))
//	cmd := &StaticCommand{Path: "tester test", Params: "<testName>", Opts: []Option{silent, times}}
//
//	res, err := NewRecognizer().RecognizeArgs(cmd, os.Args[2:])
//	if err != nil {
//		fmt.Fprint(os.Stderr, NewHelpGenerator().GenerateMisusedOptionsStatement(cmd, err))
//		os.Exit(1)
//	}
//	n := times.ValueOrDefault(1)
//	_ = res.Positional()
//
// Recognition never rolls back: options matched before a failing token keep their values. Call
// Reset on the options before recognizing again with the same declarations.
package optrec
