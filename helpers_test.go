package optrec

type testCommand struct {
	StaticCommand
	help   *Flag
	silent *Flag
	times  *Key[int]
}

func newTestCommand() *testCommand {
	c := &testCommand{
		help:   NewFlag([]string{"-h", "--help"}, WithUsage("Show help information for this command")),
		silent: NewFlag([]string{"-s", "--silent"}, WithUsage("Silence all test output")),
		times:  NewKey[int]([]string{"-t", "--times"}, WithUsage("Number of times to run the test")),
	}
	c.Path = "tester test"
	c.Params = "<testName> [<testerName>]"
	c.Opts = []Option{c.help, c.silent, c.times}

	return c
}
