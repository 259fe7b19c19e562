package optrec

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/optrec/internal/util"
)

// Declaration holds the metadata shared by every option kind
type Declaration struct {
	Names []string
	Usage string
	// DefaultOn is the initial value of a Flag. Keys ignore it.
	DefaultOn bool
}

// WithUsage sets the description shown in help output
func WithUsage(usage string) ConfigureOptionFunc {
	return func(d *Declaration) {
		d.Usage = usage
	}
}

// WithDefault sets the value a Flag starts with
func WithDefault(on bool) ConfigureOptionFunc {
	return func(d *Declaration) {
		d.DefaultOn = on
	}
}

func newDeclaration(names []string, configs []ConfigureOptionFunc) Declaration {
	d := Declaration{Names: append([]string(nil), names...)}
	for _, config := range configs {
		config(&d)
	}

	return d
}

// Flag is a boolean option which takes no value
type Flag struct {
	decl  Declaration
	value bool
}

// NewFlag declares a Flag invoked by any of names
//
// Usage example:
//
//	silent := NewFlag([]string{"-s", "--silent"}, WithUsage("Silence all test output"))
func NewFlag(names []string, configs ...ConfigureOptionFunc) *Flag {
	f := &Flag{decl: newDeclaration(names, configs)}
	f.value = f.decl.DefaultOn

	return f
}

func (f *Flag) Names() []string {
	return f.decl.Names
}

func (f *Flag) Usage() string {
	return f.decl.Usage
}

func (f *Flag) UsageLine() string {
	return formatUsageLine(f.decl.Names, false, f.decl.Usage)
}

// SetOn turns the flag on. Calling it again has no further effect.
func (f *Flag) SetOn() {
	f.value = true
}

// Value returns the current value of the flag
func (f *Flag) Value() bool {
	return f.value
}

// Reset restores the declared default
func (f *Flag) Reset() {
	f.value = f.decl.DefaultOn
}

// Key is an option followed by exactly one value token decoded as T. Its value is absent until a
// value is successfully set.
type Key[T Keyable] struct {
	decl  Declaration
	value T
	isSet bool
}

// NewKey declares a Key invoked by any of names
//
// Usage example:
//
//	times := NewKey[int]([]string{"-t", "--times"}, WithUsage("Number of times to run the test"))
func NewKey[T Keyable](names []string, configs ...ConfigureOptionFunc) *Key[T] {
	return &Key[T]{decl: newDeclaration(names, configs)}
}

func (k *Key[T]) Names() []string {
	return k.decl.Names
}

func (k *Key[T]) Usage() string {
	return k.decl.Usage
}

func (k *Key[T]) UsageLine() string {
	return formatUsageLine(k.decl.Names, true, k.decl.Usage)
}

func (k *Key[T]) SetValue(raw string) bool {
	return k.Set(raw) == nil
}

func (k *Key[T]) Set(raw string) error {
	var v T
	if err := util.ConvertString(raw, &v); err != nil {
		return err
	}
	k.value = v
	k.isSet = true

	return nil
}

// Value returns the decoded value and whether one has been set
func (k *Key[T]) Value() (T, bool) {
	return k.value, k.isSet
}

// ValueOrDefault returns the decoded value, or def when none has been set
func (k *Key[T]) ValueOrDefault(def T) T {
	if !k.isSet {
		return def
	}

	return k.value
}

// IsSet reports whether a value has been set
func (k *Key[T]) IsSet() bool {
	return k.isSet
}

// Reset clears the value
func (k *Key[T]) Reset() {
	var zero T
	k.value = zero
	k.isSet = false
}

// Reset resets every option. Options keep their values across recognitions, so callers parsing
// more than once with the same declarations reset them in between.
func Reset(options ...Option) {
	for _, o := range options {
		o.Reset()
	}
}

// LongName derives a long option name from a Go identifier: "DryRun" and "dryRun" both become "--dry-run"
func LongName(identifier string) string {
	return "--" + strcase.ToKebab(identifier)
}

func formatUsageLine(names []string, takesValue bool, usage string) string {
	invocation := strings.Join(names, ", ")
	if takesValue {
		invocation += valuePlaceholder
	}

	return util.PadRight(invocation, UsageColumn) + usage
}
