// Package webfield exposes the well known HTTP header fields as typed,
// reusable accessors over string keyed stores.
//
// The package ties the two layers below it together: the header value codecs
// of [github.com/webfield/webfield/header] and the generic accessor binding
// of [github.com/webfield/webfield/field]. Each codec constructor here pairs
// a parse and a serialize function of one header family into a [field.Codec]
// ready to be bound to a raw field with [field.Convert].
//
// [Request] and [Response] are the prebuilt catalogs: request fields are
// addressed by the CGI environment keys of an inbound request, response
// fields by canonical header names. Both are plain values built once at
// package initialization and shared safely across any number of stores:
//
//	env := field.Environ{"HTTP_RANGE": "bytes=0-499"}
//	rng, err := webfield.Request.Range.Get(env)
package webfield

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/webfield/webfield/field"
	"github.com/webfield/webfield/header"
)

// ETagCodec converts an entity tag matching field such as If-Match or
// If-None-Match. The missingIsAny flag fixes what an absent field means:
// with it set an absent field matches every tag and [header.AnyETag] writes
// back as an absent field, without it an absent field matches none and
// [header.AnyETag] writes back as the bare wildcard.
func ETagCodec(missingIsAny bool) field.Codec[header.ETagSet] {
	return field.Codec[header.ETagSet]{
		Parse: func(value string, _ bool) (header.ETagSet, error) {
			return header.ParseETag(value, missingIsAny), nil
		},
		Serialize: func(v header.ETagSet) (string, bool, error) {
			res, ok := header.SerializeETag(v, missingIsAny)
			return res, ok, nil
		},
	}
}

// QuotedETagCodec converts a response entity tag field, quoting on write and
// unquoting on read. The empty tag stands for an absent field on both sides:
// reading a missing field yields "" and writing "" removes the field.
func QuotedETagCodec() field.Codec[string] {
	return field.Codec[string]{
		Parse: func(value string, ok bool) (string, error) {
			if !ok {
				return "", nil
			}
			return header.ParseQuoted(value), nil
		},
		Serialize: func(v string) (string, bool, error) {
			if v == "" {
				return "", false, nil
			}
			return header.SerializeQuoted(v), true, nil
		},
	}
}

// IfRangeCodec converts an If-Range validator field.
func IfRangeCodec() field.Codec[header.IfRange] {
	return field.Codec[header.IfRange]{
		Parse: func(value string, _ bool) (header.IfRange, error) {
			return header.ParseIfRange(value), nil
		},
		Serialize: func(v header.IfRange) (string, bool, error) {
			res, ok := header.SerializeIfRange(v)
			return res, ok, nil
		},
	}
}

// RangeCodec converts a byte range request field. Malformed raw values read
// as an absent [header.Range], never as an error.
func RangeCodec() field.Codec[header.Range] {
	return field.Codec[header.Range]{
		Parse: func(value string, _ bool) (header.Range, error) {
			return header.ParseRange(value), nil
		},
		Serialize: func(v header.Range) (string, bool, error) {
			res, ok := header.SerializeRange(v)
			return res, ok, nil
		},
	}
}

// ContentRangeCodec converts a Content-Range response field.
func ContentRangeCodec() field.Codec[*header.ContentRange] {
	return field.Codec[*header.ContentRange]{
		Parse: func(value string, _ bool) (*header.ContentRange, error) {
			return header.ParseContentRange(value), nil
		},
		Serialize: func(v *header.ContentRange) (string, bool, error) {
			res, ok := header.SerializeContentRange(v)
			return res, ok, nil
		},
	}
}

// AcceptCodec converts a content negotiation field bound to the given header
// name. The name selects the matching mode of the parsed [header.AcceptList],
// see [header.ParseAccept].
func AcceptCodec(name string) field.Codec[header.AcceptList] {
	return field.Codec[header.AcceptList]{
		Parse: func(value string, _ bool) (header.AcceptList, error) {
			return header.ParseAccept(name, value), nil
		},
		Serialize: func(v header.AcceptList) (string, bool, error) {
			res, ok := header.SerializeAccept(v)
			return res, ok, nil
		},
	}
}

// AuthCodec converts an Authorization style credential field.
func AuthCodec() field.Codec[header.Credential] {
	return field.Codec[header.Credential]{
		Parse: func(value string, ok bool) (header.Credential, error) {
			if !ok {
				return header.Credential{}, nil
			}
			return errtrace.Wrap2(header.ParseAuth(value))
		},
		Serialize: func(v header.Credential) (string, bool, error) {
			res, ok := header.SerializeAuth(v)
			return res, ok, nil
		},
	}
}

// ListCodec converts a comma separated list field. Parsing normalizes the
// raw value: elements are trimmed and empty ones dropped, so a round trip
// may rewrite the exact byte form while keeping the elements and their
// order.
func ListCodec() field.Codec[[]string] {
	return field.Codec[[]string]{
		Parse: func(value string, _ bool) ([]string, error) {
			return header.ParseList(value), nil
		},
		Serialize: func(v []string) (string, bool, error) {
			res, ok := header.SerializeList(v)
			return res, ok, nil
		},
	}
}

// IntCodec converts an integer field strictly: non numeric raw values fail
// the read. A nil value stands for an absent field.
func IntCodec() field.Codec[*int64] {
	return field.Codec[*int64]{
		Parse: func(value string, _ bool) (*int64, error) {
			n, ok, err := header.ParseInt(value)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			if !ok {
				return nil, nil
			}
			return &n, nil
		},
		Serialize: serializeIntPtr,
	}
}

// IntSafeCodec is like [IntCodec], but a non numeric raw value reads as
// absent instead of failing. Inbound request fields use it so that malformed
// input cannot break request processing.
func IntSafeCodec() field.Codec[*int64] {
	return field.Codec[*int64]{
		Parse: func(value string, _ bool) (*int64, error) {
			n, ok := header.ParseIntSafe(value)
			if !ok {
				return nil, nil
			}
			return &n, nil
		},
		Serialize: serializeIntPtr,
	}
}

func serializeIntPtr(v *int64) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	return header.SerializeInt(*v), true, nil
}
