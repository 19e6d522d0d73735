// Package grammar implements the shared pieces of the HTTP header field
// grammar: token and quoted-string handling plus the scanners used by the
// header codecs.
package grammar

//go:generate errtrace -w .

import (
	"strings"

	"github.com/webfield/webfield/internal/errorutil"
)

// Grammar errors.
const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// Error represents a header grammar error.
// See [errorutil.Error].
type Error = errorutil.Error

// IsToken reports whether s is a non-empty RFC 7230 token.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tchar[s[i]] {
			return false
		}
	}
	return true
}

// Quote wraps s in double quotes, escaping embedded quotes.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Unquote strips the quoted form produced by [Quote]: the quoted span runs
// from a leading double quote to the last double quote in s, and escaped
// quotes inside it are unescaped. Input in any other shape is returned
// verbatim.
func Unquote(s string) string {
	m := quotedRx.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return strings.ReplaceAll(m[1], `\"`, `"`)
}

// TrimQuotes strips any leading and trailing double quotes without touching
// escapes. Credential parameter values use this form.
func TrimQuotes(s string) string {
	return strings.Trim(s, `"`)
}
