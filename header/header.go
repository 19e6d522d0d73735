package header

//go:generate go tool errtrace -w .

import (
	"github.com/webfield/webfield/internal/types"
)

// KV represents a single key/value parameter.
type KV = types.KV

// Params represents ordered header value parameters.
type Params = types.Params

// Value is the interface implemented by all typed header values.
type Value interface {
	types.Renderer
	types.ValidFlag
	types.Equalable
}

var (
	_ Value = ETagSet{}
	_ Value = IfRange{}
	_ Value = Range(nil)
	_ Value = (*ContentRange)(nil)
	_ Value = AcceptList{}
	_ Value = Credential{}
)

// Every value type clones to its own concrete type.
var (
	_ types.Cloneable[ETagSet]       = ETagSet{}
	_ types.Cloneable[IfRange]       = IfRange{}
	_ types.Cloneable[Range]         = Range(nil)
	_ types.Cloneable[*ContentRange] = (*ContentRange)(nil)
	_ types.Cloneable[AcceptList]    = AcceptList{}
	_ types.Cloneable[Credential]    = Credential{}
)
