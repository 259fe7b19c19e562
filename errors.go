package optrec

import (
	"strings"

	"github.com/napalu/optrec/errs"
	"github.com/napalu/optrec/types"
)

// RecognizerError describes why recognition failed. It unwraps to the matching errs sentinel so
// callers can test it with errors.Is, and errors.As gives access to the details.
type RecognizerError struct {
	Kind types.ErrorKind
	// Name is the offending token or option name
	Name string
	// Value is the raw value which could not be decoded
	Value string
	// Group is the misused group
	Group *OptionGroup
	// Suggestions holds registered names close to an unrecognized one
	Suggestions []string
}

func (e *RecognizerError) Error() string {
	switch e.Kind {
	case types.UnrecognizedOption:
		msg := "Unrecognized option: " + e.Name
		if len(e.Suggestions) > 0 {
			msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
		}
		return msg
	case types.ExpectedValueMissing:
		return "Expected a value to follow: " + e.Name
	case types.InvalidValueForKind:
		return "Illegal type passed to " + e.Name + ": " + e.Value
	case types.OptionGroupMisuse:
		if e.Group == nil {
			return errs.ErrOptionGroupMisuse.Error()
		}
		return e.Group.Message()
	}

	return e.Kind.String()
}

func (e *RecognizerError) Unwrap() error {
	switch e.Kind {
	case types.UnrecognizedOption:
		return errs.ErrUnrecognizedOption
	case types.ExpectedValueMissing:
		return errs.ErrExpectedValueMissing
	case types.InvalidValueForKind:
		return errs.ErrInvalidValueForKind
	case types.OptionGroupMisuse:
		return errs.ErrOptionGroupMisuse
	}

	return nil
}
