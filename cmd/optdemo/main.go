// Command optdemo is a small CLI built on optrec. It routes the first argument to a command,
// recognizes that command's options and prints what it understood.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/napalu/optrec"
	"github.com/napalu/optrec/types"
	"golang.org/x/term"
)

const programName = "optdemo"

type command struct {
	optrec.StaticCommand
	description string
	help        *optrec.Flag
	run         func(positional []string, stdout io.Writer) error
}

func newRepeatCommand() *command {
	help := optrec.NewFlag([]string{"-h", "--help"}, optrec.WithUsage("Show help information for this command"))
	silent := optrec.NewFlag([]string{"-s", "--silent"}, optrec.WithUsage("Print nothing"))
	times := optrec.NewKey[int]([]string{"-t", "--times"}, optrec.WithUsage("Number of repetitions"))
	sep := optrec.NewKey[string]([]string{"--separator"}, optrec.WithUsage("Text printed between repetitions"))

	c := &command{description: "Repeat a word", help: help}
	c.Path = programName + " repeat"
	c.Params = "<word>"
	c.Opts = []optrec.Option{help, silent, times, sep}
	c.run = func(positional []string, stdout io.Writer) error {
		if len(positional) != 1 {
			return fmt.Errorf("expected exactly one word, got %d", len(positional))
		}
		if silent.Value() {
			return nil
		}
		n := times.ValueOrDefault(1)
		if n < 0 {
			return fmt.Errorf("--times must not be negative, got %d", n)
		}
		words := make([]string, 0, n)
		for i := 0; i < n; i++ {
			words = append(words, positional[0])
		}
		_, err := fmt.Fprintln(stdout, strings.Join(words, sep.ValueOrDefault(" ")))
		return err
	}

	return c
}

func newAgeCommand() *command {
	help := optrec.NewFlag([]string{"-h", "--help"}, optrec.WithUsage("Show help information for this command"))
	since := optrec.NewKey[time.Time]([]string{"-f", optrec.LongName("From")}, optrec.WithUsage("Start date"))
	days := optrec.NewFlag([]string{"-d", "--days"}, optrec.WithUsage("Report whole days"))
	hours := optrec.NewFlag([]string{"--hours"}, optrec.WithUsage("Report whole hours"))

	c := &command{description: "Print the time elapsed since a date", help: help}
	c.Path = programName + " age"
	c.Opts = []optrec.Option{help, since, days, hours}
	c.Groups = []*optrec.OptionGroup{
		optrec.NewOptionGroup(types.ExactlyOne, since),
		optrec.NewOptionGroup(types.AtMostOne, days, hours),
	}
	c.run = func(_ []string, stdout io.Writer) error {
		from, _ := since.Value()
		elapsed := time.Since(from)
		var err error
		switch {
		case days.Value():
			_, err = fmt.Fprintf(stdout, "%d days\n", int(elapsed.Hours()/24))
		case hours.Value():
			_, err = fmt.Fprintf(stdout, "%d hours\n", int(elapsed.Hours()))
		default:
			_, err = fmt.Fprintln(stdout, elapsed.Round(time.Second))
		}
		return err
	}

	return c
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	commands := []*command{newRepeatCommand(), newAgeCommand()}
	generator := optrec.NewHelpGenerator()

	errColor := color.New(color.FgRed)
	if !isTerminal(stderr) {
		errColor.DisableColor()
	}

	if len(argv) == 0 || argv[0] == "-h" || argv[0] == "--help" {
		routables := make([]optrec.Routable, 0, len(commands))
		for _, c := range commands {
			routables = append(routables, optrec.Routable{Name: strings.TrimPrefix(c.Path, programName+" "), Description: c.description})
		}
		_, _ = fmt.Fprint(stdout, generator.GenerateCommandList(programName, "Demonstrates option recognition", routables))
		return 0
	}

	var cmd *command
	for _, c := range commands {
		if c.Path == programName+" "+argv[0] {
			cmd = c
		}
	}
	if cmd == nil {
		_, _ = errColor.Fprintf(stderr, "Command %q not found\n", argv[0])
		return 1
	}

	res, err := optrec.NewRecognizer().RecognizeArgs(cmd, argv[1:])
	if cmd.help.Value() {
		_, _ = fmt.Fprint(stdout, generator.GenerateUsageStatement(cmd))
		return 0
	}
	if err != nil {
		usage := generator.GenerateUsageStatement(cmd)
		_, _ = fmt.Fprint(stderr, usage)
		_, _ = errColor.Fprint(stderr, strings.TrimPrefix(generator.GenerateMisusedOptionsStatement(cmd, err), usage))
		return 1
	}

	if err := cmd.run(res.Positional(), stdout); err != nil {
		_, _ = errColor.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
