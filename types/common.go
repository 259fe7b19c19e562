package types

// Restriction is the cardinality policy of an option group
type Restriction int

const (
	AtMostOne  Restriction = iota // AtMostOne accepts 0 or 1 matched options
	ExactlyOne                    // ExactlyOne accepts exactly 1 matched option
	AtLeastOne                    // AtLeastOne accepts 1 or more matched options
)

// String returns the phrase used when reporting a misused group
func (r Restriction) String() string {
	switch r {
	case AtMostOne:
		return "at most one of"
	case ExactlyOne:
		return "exactly one of"
	case AtLeastOne:
		return "at least one of"
	default:
		return "unknown"
	}
}

// ErrorKind classifies a recognition failure
type ErrorKind int

const (
	UnrecognizedOption   ErrorKind = iota + 1 // a token looks like an option but no option has that name
	ExpectedValueMissing                      // a key was the last token
	InvalidValueForKind                       // a key value could not be decoded
	OptionGroupMisuse                         // a group restriction failed after the scan
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedOption:
		return "unrecognized option"
	case ExpectedValueMissing:
		return "expected value missing"
	case InvalidValueForKind:
		return "invalid value for kind"
	case OptionGroupMisuse:
		return "option group misuse"
	default:
		return "unknown"
	}
}

// Kind is the kind of entity a registered name resolves to
type Kind string

const (
	KindFlag  Kind = "flag"
	KindKey   Kind = "key"
	KindEmpty Kind = ""
)
