package grammar

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/errorutil"
	"github.com/webfield/webfield/internal/types"
	"github.com/webfield/webfield/internal/util"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// ParseList splits a comma-separated header value into its trimmed non-empty
// elements. Empty input yields nil.
func ParseList[T ~string | ~[]byte](s T) []string {
	v := util.TrimSP(string(s))
	if v == "" {
		return nil
	}
	var elems []string
	for elem := range strings.SplitSeq(v, ",") {
		elem = util.TrimSP(elem)
		if elem == "" {
			continue
		}
		elems = append(elems, elem)
	}
	return elems
}

// ParseCredentials splits an authorization header value into the scheme token
// and the remainder after the first space.
func ParseCredentials[T ~string | ~[]byte](s T) (scheme, rest string, err error) {
	if len(s) == 0 {
		return "", "", errtrace.Wrap(ErrEmptyInput)
	}
	scheme, rest, ok := strings.Cut(string(s), " ")
	if !ok {
		return "", "", errtrace.Wrap(newMalformedInputErr("no credentials after scheme %q", scheme))
	}
	return scheme, rest, nil
}

// ParseAuthParams scans a credential parameter list into ordered key/value
// pairs. Surrounding quotes are stripped from the values. Input without any
// recognizable parameter yields an empty list.
func ParseAuthParams(s string) types.Params {
	var params types.Params
	for _, m := range authParamRx.FindAllStringSubmatch(s, -1) {
		params = params.Add(m[1], TrimQuotes(m[2]))
	}
	return params
}

// AcceptParts scans an accept style value into its elements, pairing each
// element with its raw q parameter (empty when absent). The q parameter
// itself is not an element.
func AcceptParts(s string) [][2]string {
	var parts [][2]string
	for _, m := range acceptRx.FindAllStringSubmatch(","+s, -1) {
		if m[1] == "q" {
			continue
		}
		parts = append(parts, [2]string{m[1], m[2]})
	}
	return parts
}

// ContentRangeParts matches s against the Content-Range grammar and returns
// the raw start, end and total digit runs. Wildcard positions come back
// empty.
func ContentRangeParts(s string) (start, end, total string, ok bool) {
	m := contentRangeRx.FindStringSubmatch(s)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}

// ParseCharset extracts the charset parameter from a media type value.
func ParseCharset(s string) (string, bool) {
	m := charsetRx.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	cs := util.TrimSP(TrimQuotes(util.TrimSP(m[1])))
	if cs == "" {
		return "", false
	}
	return cs, true
}
