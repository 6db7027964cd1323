// Package types contains the value contracts and common value types shared by the field packages.
package types

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../testutil/valuemock/value.go -package=valuemock github.com/ghettovoice/sipfield/internal/types Value

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Compact is a boolean flag that is used to render a type in compact form.
	Compact bool `json:"compact,omitempty"`
}

type ValidFlag interface {
	IsValid() bool
}

// IsValid returns true if the value has method `IsValid() bool` and it returns true.
func IsValid(v any) bool {
	vv, ok := v.(ValidFlag)
	return ok && vv.IsValid()
}

type Equalable interface {
	Equal(val any) bool
}

type Cloneable[T any] interface {
	Clone() T
}

// Clone clones the value if it has method `Clone() T`, otherwise returns a zero value.
func Clone[T any](v any) T {
	if v1, ok := v.(Cloneable[T]); ok {
		return v1.Clone()
	}
	if v == nil {
		var zero T
		return zero
	}
	v1, _ := v.(T)
	return v1
}

// Value is a structured field value.
// Values can be rendered to the wire format, deeply copied and compared
// with each other. Values of different concrete types are never equal.
//
// A Value can be stored in [Params] or owned by another field.
type Value interface {
	Renderer
	Equalable
	Cloneable[Value]
}
