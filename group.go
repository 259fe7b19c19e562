package optrec

import (
	"strings"

	"github.com/napalu/optrec/types"
)

// OptionGroup restricts how many of its options may be matched in one recognition. The group only
// references its options; match counts are kept in the Result of each recognition.
type OptionGroup struct {
	options     []Option
	restriction types.Restriction
}

// NewOptionGroup declares a group over options
func NewOptionGroup(restriction types.Restriction, options ...Option) *OptionGroup {
	return &OptionGroup{
		options:     options,
		restriction: restriction,
	}
}

func (g *OptionGroup) Options() []Option {
	return g.options
}

func (g *OptionGroup) Restriction() types.Restriction {
	return g.restriction
}

// Check reports whether count matched options satisfies the restriction
func (g *OptionGroup) Check(count int) bool {
	if count < 0 {
		return false
	}

	switch g.restriction {
	case types.AtMostOne:
		return count <= 1
	case types.ExactlyOne:
		return count == 1
	case types.AtLeastOne:
		return count >= 1
	}

	return false
}

// Contains reports whether o is one of the group's options
func (g *OptionGroup) Contains(o Option) bool {
	for _, opt := range g.options {
		if opt == o {
			return true
		}
	}

	return false
}

// Message describes the restriction using the first name of each option,
// e.g. "Must pass exactly one of: -x -y"
func (g *OptionGroup) Message() string {
	names := make([]string, 0, len(g.options))
	for _, o := range g.options {
		if n := o.Names(); len(n) > 0 {
			names = append(names, n[0])
		}
	}

	return "Must pass " + g.restriction.String() + ": " + strings.Join(names, " ")
}
