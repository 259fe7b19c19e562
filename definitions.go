package optrec

import (
	"time"
)

// Keyable lists the value kinds a Key can decode
type Keyable interface {
	string | int | int64 | float32 | float64 | time.Time
}

// Option is a declared command-line option. Options are created once per command and referenced
// by the command, by the Registry and by every OptionGroup they belong to.
type Option interface {
	// Names returns every name the option may be invoked with, e.g. "-h" and "--help"
	Names() []string
	// Usage returns the description shown in help output
	Usage() string
	// UsageLine returns the names and description formatted for a usage statement
	UsageLine() string
	// Reset restores the option to its declared state
	Reset()
}

// ValueOption is an Option which takes a value token. Every Key implements it.
type ValueOption interface {
	Option
	// SetValue decodes raw and stores it, returning false and leaving the value untouched when raw
	// is not a valid literal of the option's kind
	SetValue(raw string) bool
	// Set is SetValue with the decoding error
	Set(raw string) error
}

// OptionSource supplies the declarations recognition runs against
type OptionSource interface {
	Options() []Option
	OptionGroups() []*OptionGroup
}

// Command is what the help generator needs to know about a command
type Command interface {
	OptionSource
	// UsagePrefix returns the invocation prefix, e.g. "tester test"
	UsagePrefix() string
	// Signature returns the positional parameter signature, e.g. "<testName> [<testerName>]"
	Signature() string
}

// Routable is a command list entry
type Routable struct {
	Name        string
	Description string
}

// StaticCommand is a Command assembled from plain values
type StaticCommand struct {
	Path   string
	Params string
	Opts   []Option
	Groups []*OptionGroup
}

// UsagePrefix returns the command path
func (c *StaticCommand) UsagePrefix() string {
	return c.Path
}

// Signature returns the positional parameter text
func (c *StaticCommand) Signature() string {
	return c.Params
}

// Options returns the declared options
func (c *StaticCommand) Options() []Option {
	return c.Opts
}

// OptionGroups returns the declared groups
func (c *StaticCommand) OptionGroups() []*OptionGroup {
	return c.Groups
}

// ConfigureOptionFunc is used when declaring Flag and Key options
type ConfigureOptionFunc func(d *Declaration)

// ConfigureRecognizerFunc is used when configuring a Recognizer
type ConfigureRecognizerFunc func(r *Recognizer, err *error)

const (
	// DefaultOptionPrefix marks a token as an option
	DefaultOptionPrefix = "-"
	// DefaultTerminator ends option recognition; later tokens are positional
	DefaultTerminator = "--"
	// UsageColumn is the column option descriptions start at in usage statements
	UsageColumn = 40
	// CommandColumn is the column command descriptions start at in command lists, counted after the indent
	CommandColumn = 20
	// valuePlaceholder follows the names of options which take a value
	valuePlaceholder = " <value>"
	maxSuggestions   = 3
)
