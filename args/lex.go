package args

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/napalu/optrec/errs"
)

// FromLine splits line on whitespace. Quotes have no special meaning.
func FromLine(line string) *List {
	return New(strings.Fields(line))
}

// FromShellLine splits line the way a POSIX shell would, honouring quotes and escapes
func FromShellLine(line string) (*List, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnterminatedLine, err)
	}

	return New(tokens), nil
}
