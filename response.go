package webfield

import (
	"github.com/webfield/webfield/field"
	"github.com/webfield/webfield/header"
)

// ResponseFields bundles the typed accessors for the well known fields of an
// outbound response. Fields are addressed by canonical header names against
// an ordered [field.HeaderList] store.
type ResponseFields struct {
	// ETag is the entity tag of the selected representation, kept in its
	// quoted wire form by the accessor. The empty tag stands for an absent
	// field. RFC 9110 Section 8.8.3.
	ETag field.Field[string]
	// ContentRange declares which part of the representation the body
	// carries. RFC 9110 Section 14.4.
	ContentRange field.Field[*header.ContentRange]
	// ContentLength is the response body length, parsed strictly.
	// RFC 9110 Section 8.6.
	ContentLength field.Field[*int64]
	// Allow lists the methods supported by the target resource.
	// RFC 9110 Section 10.2.1.
	Allow field.Field[[]string]
	// Vary lists the request headers the response varies on.
	// RFC 9110 Section 12.5.5.
	Vary field.Field[[]string]
	// Warning carried cache warnings. The header is obsolete (RFC 9111
	// Section 5.5) and every use of this accessor logs a deprecation
	// warning before delegating.
	Warning field.Deprecated[[]string]
}

// Response is the outbound response field catalog. The accessors are bound
// once here and reused across any number of header list stores.
var Response = ResponseFields{
	ETag:          field.Convert(field.Raw{Name: "ETag"}, QuotedETagCodec()),
	ContentRange:  field.Convert(field.Raw{Name: "Content-Range"}, ContentRangeCodec()),
	ContentLength: field.Convert(field.Raw{Name: "Content-Length"}, IntCodec()),
	Allow:         field.Convert(field.Raw{Name: "Allow"}, ListCodec()),
	Vary:          field.Convert(field.Raw{Name: "Vary"}, ListCodec()),
	Warning: field.Deprecate[[]string](
		field.Convert(field.Raw{Name: "Warning"}, ListCodec()),
		"Warning", "obsoleted by RFC 9111, stop emitting it", nil),
}
