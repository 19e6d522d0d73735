package header

import (
	"strings"

	"github.com/webfield/webfield/internal/grammar"
)

// ParseList parses a comma separated header value into its trimmed non
// empty elements. Empty input yields nil.
func ParseList[T ~string | ~[]byte](s T) []string {
	return grammar.ParseList(s)
}

// SerializeList renders v to the comma separated header form. A string
// passes through verbatim, already serialized. A nil slice serializes to an
// absent header while an empty non nil one serializes to a present empty
// value.
func SerializeList[T string | []string](v T) (string, bool) {
	switch vv := any(v).(type) {
	case string:
		return vv, true
	case []string:
		if vv == nil {
			return "", false
		}
		return strings.Join(vv, ", "), true
	default:
		return "", false
	}
}
