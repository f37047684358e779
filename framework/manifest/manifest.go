package manifest

import (
	"sort"

	"github.com/gobuffalo/flect"
	"golang.org/x/xerrors"
)

var (
	ErrAlreadyRegistered = xerrors.New("manifest: type tag already registered")
	ErrEmptyTypeTag      = xerrors.New("manifest: type tag may not be empty")
)

// Manifest is the set of event type tags a surface is willing to record.
// Tags are normalized to underscore form on the way in so callers can't
// register the same tag twice under cosmetic spelling differences. The
// chain core itself never consults a manifest; only outer surfaces do.
type Manifest struct {
	tags map[string]struct{}
}

func New() *Manifest {
	return &Manifest{tags: make(map[string]struct{})}
}

// Register normalizes and stores a tag, returning the normalized key.
func (m *Manifest) Register(tag string) (string, error) {
	if tag == "" {
		return "", ErrEmptyTypeTag
	}
	key := flect.Underscore(tag)
	if _, exists := m.tags[key]; exists {
		return "", ErrAlreadyRegistered
	}
	m.tags[key] = struct{}{}
	return key, nil
}

func (m *Manifest) Has(tag string) bool {
	_, ok := m.tags[flect.Underscore(tag)]
	return ok
}

// List returns the registered keys in lexical order.
func (m *Manifest) List() []string {
	out := make([]string, 0, len(m.tags))
	for k := range m.tags {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
