package optrec

import (
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/optrec/args"
	"github.com/napalu/optrec/internal/util"
	"github.com/napalu/optrec/types"
)

// Recognizer matches argument tokens against declared options. It holds configuration only, so
// one Recognizer may serve any number of commands; the options it writes to are not safe for
// concurrent recognitions.
type Recognizer struct {
	prefix      string
	terminator  string
	suggestions bool
}

// Result is the outcome of a successful recognition
type Result struct {
	counts     map[*OptionGroup]int
	matched    []Option
	positional []string
}

// Count returns how many options of g were matched
func (r *Result) Count(g *OptionGroup) int {
	return r.counts[g]
}

// Matched returns the options matched, in token order. An option given twice appears twice.
func (r *Result) Matched() []Option {
	return r.matched
}

// Positional returns the tokens left for the caller, in their original order
func (r *Result) Positional() []string {
	return r.positional
}

func (r *Result) match(o Option, groups []*OptionGroup) {
	r.matched = append(r.matched, o)
	for _, g := range groups {
		r.counts[g]++
	}
}

// NewRecognizer returns a Recognizer using "-" as option prefix and "--" as terminator
func NewRecognizer() *Recognizer {
	return &Recognizer{
		prefix:     DefaultOptionPrefix,
		terminator: DefaultTerminator,
	}
}

// NewRecognizerWith returns a Recognizer configured by configs. The Recognizer is nil when an
// error is returned.
//
// Configuration example:
//
//	r, err := NewRecognizerWith(
//		WithOptionPrefix("/"),
//		WithTerminator(""),
//		WithSuggestions(true))
func NewRecognizerWith(configs ...ConfigureRecognizerFunc) (*Recognizer, error) {
	r := NewRecognizer()

	var err error
	for _, config := range configs {
		config(r, &err)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Recognize indexes the declarations of src and recognizes the options in list.
// See RecognizeWith.
func (r *Recognizer) Recognize(src OptionSource, list *args.List) (*Result, error) {
	registry, err := NewRegistryFor(src)
	if err != nil {
		return nil, err
	}

	return r.RecognizeWith(registry, list)
}

// RecognizeArgs is Recognize over a fresh list built from tokens
func (r *Recognizer) RecognizeArgs(src OptionSource, tokens []string) (*Result, error) {
	return r.Recognize(src, args.New(tokens))
}

// RecognizeWith walks list once. Matched flags are turned on, matched keys take the token that
// follows them as value, and both are removed from list. Tokens which do not look like options
// stay in list as positional arguments. The terminator is removed and ends recognition.
//
// The first token error stops the walk: options matched before it keep their new values and their
// tokens stay removed. Group restrictions are checked only after a complete walk, in declaration
// order, and the first violated group is reported.
func (r *Recognizer) RecognizeWith(registry *Registry, list *args.List) (*Result, error) {
	res := &Result{counts: map[*OptionGroup]int{}}

	pending := deque.New()
	for _, pos := range list.Positions() {
		pending.PushBack(pos)
	}

	for pending.Len() > 0 {
		next, _ := pending.PopFront()
		pos := next.(int)
		token, _ := list.At(pos)

		if r.terminator != "" && token == r.terminator {
			list.Remove(pos)
			break
		}

		if flag, ok := registry.Flag(token); ok {
			flag.SetOn()
			res.match(flag, registry.GroupsOf(flag))
			list.Remove(pos)
			continue
		}

		if key, ok := registry.Key(token); ok {
			value, ok := pending.PopFront()
			if !ok {
				return nil, &RecognizerError{Kind: types.ExpectedValueMissing, Name: token}
			}
			valuePos := value.(int)
			raw, _ := list.At(valuePos)
			if !key.SetValue(raw) {
				return nil, &RecognizerError{Kind: types.InvalidValueForKind, Name: token, Value: raw}
			}
			res.match(key, registry.GroupsOf(key))
			list.Remove(pos)
			list.Remove(valuePos)
			continue
		}

		if r.isOption(token) {
			err := &RecognizerError{Kind: types.UnrecognizedOption, Name: token}
			if r.suggestions {
				err.Suggestions = util.FindSimilar(token, registry.Names(), maxSuggestions)
			}
			return nil, err
		}
	}

	for _, g := range registry.Groups() {
		if !g.Check(res.counts[g]) {
			return nil, &RecognizerError{Kind: types.OptionGroupMisuse, Group: g}
		}
	}

	res.positional = list.Remaining()

	return res, nil
}

// isOption reports whether token is shaped like an option. A bare prefix ("-") is positional.
func (r *Recognizer) isOption(token string) bool {
	return len(token) > len(r.prefix) && strings.HasPrefix(token, r.prefix)
}
