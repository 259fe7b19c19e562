package optrec

import (
	"strings"

	"github.com/napalu/optrec/internal/util"
)

// HelpGenerator renders help text from declarations. Implementations return text and never write
// it anywhere themselves.
type HelpGenerator interface {
	GenerateCommandList(prefix, description string, routables []Routable) string
	GenerateUsageStatement(cmd Command) string
	GenerateMisusedOptionsStatement(cmd Command, err error) string
}

// DefaultHelpGenerator renders help in the plain column layout
type DefaultHelpGenerator struct{}

// NewHelpGenerator returns a DefaultHelpGenerator
func NewHelpGenerator() *DefaultHelpGenerator {
	return &DefaultHelpGenerator{}
}

// GenerateCommandList renders the top level help: usage, description and one line per routable in
// the order given.
func (g *DefaultHelpGenerator) GenerateCommandList(prefix, description string, routables []Routable) string {
	lines := []string{
		"",
		"Usage: " + prefix + " <command> [options]",
		"",
		description,
		"",
		"Commands:",
	}
	for _, r := range routables {
		lines = append(lines, "  "+util.PadRight(r.Name, CommandColumn)+r.Description)
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// GenerateUsageStatement renders the usage line of cmd followed by one line per declared option.
func (g *DefaultHelpGenerator) GenerateUsageStatement(cmd Command) string {
	invocation := cmd.UsagePrefix()
	if sig := cmd.Signature(); sig != "" {
		invocation += " " + sig
	}

	lines := []string{
		"Usage: " + invocation + " [options]",
		"",
	}
	for _, o := range cmd.Options() {
		lines = append(lines, o.UsageLine())
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// GenerateMisusedOptionsStatement renders the usage statement of cmd followed by err
func (g *DefaultHelpGenerator) GenerateMisusedOptionsStatement(cmd Command, err error) string {
	var b strings.Builder
	b.WriteString(g.GenerateUsageStatement(cmd))
	b.WriteString("\n")
	if err != nil {
		b.WriteString(err.Error())
	}
	b.WriteString("\n")

	return b.String()
}
