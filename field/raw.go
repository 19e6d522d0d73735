package field

import (
	"unicode"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/errorutil"
)

// Raw reads and writes one field of a [Store] as a plain string.
type Raw struct {
	// Name is the field name handed to the store.
	Name string
	// Default, when non empty, stands in for a missing field on reads.
	Default string
}

var _ Accessor[string] = Raw{}

// Get returns the value of the last matching entry. A missing field resolves
// to the configured default, or fails wrapping [ErrNoValue] when there is
// none.
func (r Raw) Get(s Store) (string, error) {
	if v, ok := s.Lookup(r.Name); ok {
		return v, nil
	}
	if r.Default != "" {
		return r.Default, nil
	}
	return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNoValue, r.Name))
}

// Set writes v as the single value of the field, dropping any previous
// entries first. Values must be ISO-8859-1 encodable: a rune above U+00FF is
// rejected with an invalid argument error before the store is touched.
func (r Raw) Set(s Store, v string) error {
	for _, c := range v {
		if c > unicode.MaxLatin1 {
			return errtrace.Wrap(NewInvalidArgumentError(
				"field %s value %q is not ISO-8859-1 encodable", r.Name, v))
		}
	}
	s.Drop(r.Name)
	s.Append(r.Name, v)
	return nil
}

// Del removes all matching entries. Deleting a missing field is not an
// error.
func (r Raw) Del(s Store) error {
	s.Drop(r.Name)
	return nil
}
