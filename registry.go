package optrec

import (
	"fmt"

	"github.com/napalu/optrec/errs"
	"github.com/napalu/optrec/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry indexes a command's options by name. A name resolves to a Flag, to a key or to nothing.
type Registry struct {
	flags    *orderedmap.OrderedMap[string, *Flag]
	keys     *orderedmap.OrderedMap[string, ValueOption]
	groups   []*OptionGroup
	memberOf map[Option][]*OptionGroup
}

// NewRegistry indexes options and every option referenced by groups. Listing an option in both
// places is fine; two distinct options sharing a name is an error.
func NewRegistry(options []Option, groups []*OptionGroup) (*Registry, error) {
	r := &Registry{
		flags:    orderedmap.New[string, *Flag](),
		keys:     orderedmap.New[string, ValueOption](),
		groups:   groups,
		memberOf: map[Option][]*OptionGroup{},
	}

	seen := map[Option]bool{}
	register := func(o Option) error {
		if seen[o] {
			return nil
		}
		seen[o] = true

		return r.register(o)
	}

	for _, o := range options {
		if err := register(o); err != nil {
			return nil, err
		}
	}

	for _, g := range groups {
		for _, o := range g.Options() {
			if err := register(o); err != nil {
				return nil, err
			}
			if !containsGroup(r.memberOf[o], g) {
				r.memberOf[o] = append(r.memberOf[o], g)
			}
		}
	}

	return r, nil
}

// NewRegistryFor indexes the declarations of src
func NewRegistryFor(src OptionSource) (*Registry, error) {
	return NewRegistry(src.Options(), src.OptionGroups())
}

func (r *Registry) register(o Option) error {
	names := o.Names()
	if len(names) == 0 {
		return fmt.Errorf("%w: %s", errs.ErrNoOptionNames, o.Usage())
	}

	for _, name := range names {
		if name == "" {
			return errs.ErrEmptyOptionName
		}
		if r.Kind(name) != types.KindEmpty {
			return fmt.Errorf(errs.FmtErrorWithString, errs.ErrDuplicateOption, name)
		}
	}

	switch opt := o.(type) {
	case *Flag:
		for _, name := range names {
			r.flags.Set(name, opt)
		}
	case ValueOption:
		for _, name := range names {
			r.keys.Set(name, opt)
		}
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedKind, o)
	}

	return nil
}

// Flag returns the Flag registered under name
func (r *Registry) Flag(name string) (*Flag, bool) {
	return r.flags.Get(name)
}

// Key returns the key registered under name
func (r *Registry) Key(name string) (ValueOption, bool) {
	return r.keys.Get(name)
}

// Lookup returns the option registered under name, whatever its kind
func (r *Registry) Lookup(name string) (Option, bool) {
	if f, ok := r.flags.Get(name); ok {
		return f, true
	}
	if k, ok := r.keys.Get(name); ok {
		return k, true
	}

	return nil, false
}

// Kind returns what name resolves to
func (r *Registry) Kind(name string) types.Kind {
	if _, ok := r.flags.Get(name); ok {
		return types.KindFlag
	}
	if _, ok := r.keys.Get(name); ok {
		return types.KindKey
	}

	return types.KindEmpty
}

// Names returns every registered name: flag names first, then key names, each in declaration order
func (r *Registry) Names() []string {
	names := make([]string, 0, r.flags.Len()+r.keys.Len())
	for pair := r.flags.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	for pair := r.keys.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Groups returns the groups the registry was built with, in declaration order
func (r *Registry) Groups() []*OptionGroup {
	return r.groups
}

// GroupsOf returns the groups o belongs to
func (r *Registry) GroupsOf(o Option) []*OptionGroup {
	return r.memberOf[o]
}

func containsGroup(groups []*OptionGroup, g *OptionGroup) bool {
	for _, candidate := range groups {
		if candidate == g {
			return true
		}
	}

	return false
}
