// Package errs holds the sentinel errors returned by optrec. Compare with errors.Is.
package errs

import "errors"

// Recognition errors
var (
	ErrUnrecognizedOption   = errors.New("unrecognized option")
	ErrExpectedValueMissing = errors.New("expected a value")
	ErrInvalidValueForKind  = errors.New("illegal value")
	ErrOptionGroupMisuse    = errors.New("option group misuse")
)

// Declaration and configuration errors
var (
	ErrDuplicateOption  = errors.New("option name registered more than once")
	ErrEmptyOptionName  = errors.New("option name is empty")
	ErrNoOptionNames    = errors.New("option has no names")
	ErrEmptyPrefix      = errors.New("option prefix is empty")
	ErrUnsupportedKind  = errors.New("unsupported option kind")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrUnterminatedLine = errors.New("argument line could not be split")
)

// Value decoding errors
var (
	ErrParseInt                  = errors.New("invalid integer")
	ErrParseFloat                = errors.New("invalid floating point number")
	ErrParseTime                 = errors.New("invalid date/time")
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
)

const (
	FmtErrorWithString = "%w: %s"
)
