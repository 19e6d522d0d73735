package field

import (
	"errors"

	"braces.dev/errtrace"
)

// Accessor reads, writes and deletes one typed field of a [Store].
type Accessor[T any] interface {
	Get(s Store) (T, error)
	Set(s Store, v T) error
	Del(s Store) error
}

// Codec converts one header family between its raw string form and a typed
// representation. Codec configuration (default flags, header names, matching
// modes) is fixed on the codec value at definition time.
type Codec[T any] struct {
	// Parse converts the raw value to the typed form. A false ok means the
	// raw field is absent; tolerant families resolve that to their absent
	// value without an error.
	Parse func(value string, ok bool) (T, error)
	// Serialize renders the typed form back to the raw one. A false ok
	// removes the field from the store instead of writing it.
	Serialize func(v T) (value string, ok bool, err error)
}

// Field is a typed accessor composing a [Raw] accessor with a [Codec].
type Field[T any] struct {
	raw   Raw
	codec Codec[T]
}

var _ Accessor[string] = Field[string]{}

// Convert binds a raw accessor with a codec into a typed [Field].
func Convert[T any](raw Raw, codec Codec[T]) Field[T] {
	return Field[T]{raw: raw, codec: codec}
}

// Name returns the raw field name the accessor is bound to.
func (f Field[T]) Name() string { return f.raw.Name }

// Get reads the raw value through the underlying accessor and parses it.
// A missing field without a default parses as absent.
func (f Field[T]) Get(s Store) (T, error) {
	v, err := f.raw.Get(s)
	if err != nil {
		if errors.Is(err, ErrNoValue) {
			return errtrace.Wrap2(f.codec.Parse("", false))
		}
		var zero T
		return zero, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(f.codec.Parse(v, true))
}

// Set serializes v and writes it through the underlying accessor. A
// serialized value reporting absence deletes the field instead.
func (f Field[T]) Set(s Store, v T) error {
	val, ok, err := f.codec.Serialize(v)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if !ok {
		return errtrace.Wrap(f.raw.Del(s))
	}
	return errtrace.Wrap(f.raw.Set(s, val))
}

// Del removes the field from the store.
func (f Field[T]) Del(s Store) error {
	return errtrace.Wrap(f.raw.Del(s))
}
