package webfield

import (
	"github.com/webfield/webfield/field"
	"github.com/webfield/webfield/header"
)

// RequestFields bundles the typed accessors for the well known fields of an
// inbound request. Fields are addressed by the CGI environment keys of the
// request headers, so the catalog works directly against a [field.Environ]
// store holding a request environment.
type RequestFields struct {
	// IfMatch is the If-Match precondition. An absent field matches every
	// entity tag. RFC 9110 Section 13.1.1.
	IfMatch field.Field[header.ETagSet]
	// IfNoneMatch is the If-None-Match precondition. An absent field matches
	// no entity tag. RFC 9110 Section 13.1.2.
	IfNoneMatch field.Field[header.ETagSet]
	// IfRange makes a Range request conditional on a validator.
	// RFC 9110 Section 13.1.5.
	IfRange field.Field[header.IfRange]
	// Range is the requested byte ranges. RFC 9110 Section 14.2.
	Range field.Field[header.Range]
	// Authorization carries the request credentials.
	// RFC 9110 Section 11.6.2.
	Authorization field.Field[header.Credential]
	// ContentLength is the request body length. Malformed values read as
	// absent rather than failing the request. RFC 9110 Section 8.6.
	ContentLength field.Field[*int64]
	// Accept lists the acceptable response media types.
	// RFC 9110 Section 12.5.1.
	Accept field.Field[header.AcceptList]
	// AcceptCharset lists the acceptable response charsets.
	// RFC 9110 Section 12.5.2.
	AcceptCharset field.Field[header.AcceptList]
	// AcceptEncoding lists the acceptable response content codings.
	// RFC 9110 Section 12.5.3.
	AcceptEncoding field.Field[header.AcceptList]
	// AcceptLanguage lists the acceptable response languages.
	// RFC 9110 Section 12.5.4.
	AcceptLanguage field.Field[header.AcceptList]
}

// Request is the inbound request field catalog. The accessors are bound once
// here and reused across any number of environ stores.
var Request = RequestFields{
	IfMatch:        field.Convert(envRaw("If-Match"), ETagCodec(true)),
	IfNoneMatch:    field.Convert(envRaw("If-None-Match"), ETagCodec(false)),
	IfRange:        field.Convert(envRaw("If-Range"), IfRangeCodec()),
	Range:          field.Convert(envRaw("Range"), RangeCodec()),
	Authorization:  field.Convert(envRaw("Authorization"), AuthCodec()),
	ContentLength:  field.Convert(envRaw("Content-Length"), IntSafeCodec()),
	Accept:         acceptField("Accept"),
	AcceptCharset:  acceptField("Accept-Charset"),
	AcceptEncoding: acceptField("Accept-Encoding"),
	AcceptLanguage: acceptField("Accept-Language"),
}

func envRaw(name string) field.Raw {
	return field.Raw{Name: field.EnvironKey(name)}
}

func acceptField(name string) field.Field[header.AcceptList] {
	return field.Convert(envRaw(name), AcceptCodec(name))
}
