package optrec

import (
	"testing"

	"github.com/napalu/optrec/errs"
	"github.com/napalu/optrec/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_FlagDetection(t *testing.T) {
	alpha := NewFlag([]string{"-a", "--alpha"})
	r, err := NewRegistry([]Option{alpha}, nil)
	require.NoError(t, err)

	f, ok := r.Flag("-a")
	assert.True(t, ok, "short flag name should be registered")
	assert.Same(t, alpha, f)
	_, ok = r.Flag("--alpha")
	assert.True(t, ok, "long flag name should be registered")
	_, ok = r.Key("-a")
	assert.False(t, ok, "flags must not be registered as keys")
	assert.Equal(t, types.KindFlag, r.Kind("--alpha"))
}

func TestRegistry_KeyDetection(t *testing.T) {
	alpha := NewKey[string]([]string{"-a", "--alpha"})
	r, err := NewRegistry([]Option{alpha}, nil)
	require.NoError(t, err)

	_, ok := r.Key("-a")
	assert.True(t, ok, "short key name should be registered")
	_, ok = r.Key("--alpha")
	assert.True(t, ok, "long key name should be registered")
	_, ok = r.Flag("-a")
	assert.False(t, ok, "keys must not be registered as flags")
	assert.Equal(t, types.KindKey, r.Kind("-a"))
}

func TestRegistry_Lookup(t *testing.T) {
	cmd := newTestCommand()
	r, err := NewRegistryFor(cmd)
	require.NoError(t, err)

	o, ok := r.Lookup("--times")
	assert.True(t, ok)
	assert.Equal(t, Option(cmd.times), o)

	o, ok = r.Lookup("-h")
	assert.True(t, ok)
	assert.Equal(t, Option(cmd.help), o)

	_, ok = r.Lookup("-a")
	assert.False(t, ok)
	assert.Equal(t, types.KindEmpty, r.Kind("-a"))

	assert.Equal(t, []string{"-h", "--help", "-s", "--silent", "-t", "--times"}, r.Names())
}

func TestRegistry_Groups(t *testing.T) {
	x := NewFlag([]string{"-x"})
	y := NewKey[int]([]string{"-y"})
	z := NewFlag([]string{"-z"})
	g1 := NewOptionGroup(types.ExactlyOne, x, y)
	g2 := NewOptionGroup(types.AtMostOne, x, z, x)

	r, err := NewRegistry([]Option{x}, []*OptionGroup{g1, g2})
	require.NoError(t, err)

	_, ok := r.Key("-y")
	assert.True(t, ok, "options declared only in a group should be registered")
	assert.Equal(t, []*OptionGroup{g1, g2}, r.GroupsOf(x))
	assert.Equal(t, []*OptionGroup{g1}, r.GroupsOf(y))
	assert.Equal(t, []*OptionGroup{g2}, r.GroupsOf(z))
	assert.Equal(t, []*OptionGroup{g1, g2}, r.Groups())
}

func TestRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		wantErr error
	}{
		{
			name:    "flag and key share a name",
			options: []Option{NewFlag([]string{"-a"}), NewKey[int]([]string{"-a", "--all"})},
			wantErr: errs.ErrDuplicateOption,
		},
		{
			name:    "two flags share a name",
			options: []Option{NewFlag([]string{"-a", "--alpha"}), NewFlag([]string{"--alpha"})},
			wantErr: errs.ErrDuplicateOption,
		},
		{
			name:    "empty name",
			options: []Option{NewFlag([]string{"-a", ""})},
			wantErr: errs.ErrEmptyOptionName,
		},
		{
			name:    "no names",
			options: []Option{NewKey[int](nil, WithUsage("nameless"))},
			wantErr: errs.ErrNoOptionNames,
		},
		{
			name:    "unsupported option kind",
			options: []Option{&customOption{}},
			wantErr: errs.ErrUnsupportedKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.options, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, r)
		})
	}
}

func TestRegistry_SameOptionListedTwice(t *testing.T) {
	a := NewFlag([]string{"-a"})
	_, err := NewRegistry([]Option{a, a}, []*OptionGroup{NewOptionGroup(types.AtLeastOne, a)})
	assert.NoError(t, err, "listing the same option twice is not a name clash")
}

type customOption struct{}

func (c *customOption) Names() []string   { return []string{"--custom"} }
func (c *customOption) Usage() string     { return "" }
func (c *customOption) UsageLine() string { return "--custom" }
func (c *customOption) Reset()            {}
