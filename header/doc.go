// Package header provides typed values for the conditional, byte range,
// content negotiation and authorization HTTP header families, together with
// the parse and serialize functions that convert each family to and from its
// raw header form.
//
// # Families
//
// Each family pairs a value type with a parse and a serialize function:
//
//   - [ETagSet] with [ParseETag]/[SerializeETag] for the entity tag matching
//     headers (If-Match, If-None-Match) and [ParseQuoted]/[SerializeQuoted]
//     for the quoted response form (ETag).
//   - [IfRange] with [ParseIfRange]/[SerializeIfRange] for the If-Range
//     validator, an HTTP date or an entity tag set.
//   - [Range] with [ParseRange]/[SerializeRange] for byte range requests and
//     [ContentRange] with [ParseContentRange]/[SerializeContentRange] for the
//     response side.
//   - [AcceptList] with [ParseAccept]/[SerializeAccept] for the Accept family
//     (Accept, Accept-Charset, Accept-Encoding, Accept-Language).
//   - [Credential] with [ParseAuth]/[SerializeAuth] for Authorization style
//     credentials.
//   - [ParseList]/[SerializeList] and [ParseInt]/[ParseIntSafe]/[SerializeInt]
//     for plain comma separated lists and integer valued headers.
//
// # Absence
//
// Most families parse tolerantly: empty or malformed input resolves to the
// family's absent form (a nil slice, a zero value, a nil pointer) and never
// to an error. [ParseAuth] and [ParseInt] are the strict ones and fail on
// malformed present input; [ParseIntSafe] folds those failures back into
// absence. Serialize functions return the rendered value together with a
// presence flag; a false flag means the header should be removed rather than
// written. Constructors with arity contracts ([NewRange], [NewContentRange])
// treat the wrong number of values as a caller bug and fail with an invalid
// argument error.
//
// # Rendering
//
// All value types implement [types.Renderer]: they render to an [io.Writer]
// through RenderTo and to a string through String, and support fmt verbs
// via Format. Values are plain data, independent of any header store;
// rendering never includes the header name.
package header
