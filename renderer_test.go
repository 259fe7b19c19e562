package optrec

import (
	"errors"
	"strings"
	"testing"

	"github.com/napalu/optrec/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpGenerator_CommandList(t *testing.T) {
	message := NewHelpGenerator().GenerateCommandList("tester", "A tester for SwiftCLI", []Routable{
		{Name: "alpha", Description: "The alpha command"},
		{Name: "beta", Description: "A beta command"},
	})

	expected := strings.Join([]string{
		"",
		"Usage: tester <command> [options]",
		"",
		"A tester for SwiftCLI",
		"",
		"Commands:",
		"  alpha               The alpha command",
		"  beta                A beta command",
		"",
	}, "\n")

	assert.Equal(t, expected, message)
}

func TestHelpGenerator_CommandListLongName(t *testing.T) {
	message := NewHelpGenerator().GenerateCommandList("tester", "desc", []Routable{
		{Name: "a-command-name-longer-than-the-column", Description: "still separated"},
	})

	assert.Contains(t, message, "\n  a-command-name-longer-than-the-column still separated\n")
}

func TestHelpGenerator_UsageStatement(t *testing.T) {
	message := NewHelpGenerator().GenerateUsageStatement(newTestCommand())

	expected := strings.Join([]string{
		"Usage: tester test <testName> [<testerName>] [options]",
		"",
		"-h, --help                              Show help information for this command",
		"-s, --silent                            Silence all test output",
		"-t, --times <value>                     Number of times to run the test",
		"",
	}, "\n")

	assert.Equal(t, expected, message, "should generate the correct usage statement")
}

func TestHelpGenerator_UsageStatementWithoutSignature(t *testing.T) {
	cmd := &StaticCommand{Path: "tester run", Opts: []Option{NewFlag([]string{"-v"}, WithUsage("Verbose"))}}

	message := NewHelpGenerator().GenerateUsageStatement(cmd)

	assert.True(t, strings.HasPrefix(message, "Usage: tester run [options]\n\n-v"), "an empty signature should not leave a double space")
}

func TestHelpGenerator_MisusedOptionsStatement(t *testing.T) {
	cmd := newTestCommand()
	list := args.FromLine("tester test -s -a --times")
	head, _ := list.Head()
	list.Remove(head)
	head, _ = list.Head()
	list.Remove(head)

	_, err := NewRecognizer().Recognize(cmd, list)
	require.Error(t, err, "recognition should fail on incorrectly used options")

	message := NewHelpGenerator().GenerateMisusedOptionsStatement(cmd, err)

	expected := strings.Join([]string{
		"Usage: tester test <testName> [<testerName>] [options]",
		"",
		"-h, --help                              Show help information for this command",
		"-s, --silent                            Silence all test output",
		"-t, --times <value>                     Number of times to run the test",
		"",
		"Unrecognized option: -a\n",
	}, "\n")

	assert.Equal(t, expected, message, "should generate the correct misused options statement")
}

func TestHelpGenerator_MisusedOptionsStatementOtherErrors(t *testing.T) {
	cmd := newTestCommand()
	gen := NewHelpGenerator()
	usage := gen.GenerateUsageStatement(cmd)

	assert.Equal(t, usage+"\nsomething else\n", gen.GenerateMisusedOptionsStatement(cmd, errors.New("something else")))
	assert.Equal(t, usage+"\n\n", gen.GenerateMisusedOptionsStatement(cmd, nil))
}
