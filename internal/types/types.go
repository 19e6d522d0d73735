// Package types contains common types shared across the module.
package types

import "io"

// Renderer is an interface that is used to render a value to its wire form.
type Renderer interface {
	// RenderTo renders the value to a writer and reports the number of bytes written.
	RenderTo(w io.Writer) (int, error)
	// String renders the value to a string.
	String() string
}

type ValidFlag interface {
	IsValid() bool
}

type Equalable interface {
	Equal(val any) bool
}

type Cloneable[T any] interface {
	Clone() T
}
