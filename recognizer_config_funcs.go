package optrec

import "github.com/napalu/optrec/errs"

// WithOptionPrefix sets the marker which makes an unknown token an unrecognized option rather than
// a positional argument. Defaults to "-".
func WithOptionPrefix(prefix string) ConfigureRecognizerFunc {
	return func(r *Recognizer, err *error) {
		if prefix == "" {
			*err = errs.ErrEmptyPrefix
			return
		}
		r.prefix = prefix
	}
}

// WithTerminator sets the token which ends option recognition. An empty terminator disables it.
// Defaults to "--".
func WithTerminator(terminator string) ConfigureRecognizerFunc {
	return func(r *Recognizer, err *error) {
		r.terminator = terminator
	}
}

// WithSuggestions adds close matches to unrecognized option errors
func WithSuggestions(enabled bool) ConfigureRecognizerFunc {
	return func(r *Recognizer, err *error) {
		r.suggestions = enabled
	}
}
