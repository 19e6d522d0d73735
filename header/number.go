package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/util"
)

// ParseInt parses an integer header value. Empty input resolves to absence;
// non numeric input is a strict error. Surrounding whitespace around the
// number is tolerated.
func ParseInt[T ~string | ~[]byte](s T) (int64, bool, error) {
	if len(s) == 0 {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(util.TrimSP(string(s)), 10, 64)
	if err != nil {
		return 0, false, errtrace.Wrap(err)
	}
	return n, true, nil
}

// ParseIntSafe is like [ParseInt], but malformed input resolves to absence
// instead of an error.
func ParseIntSafe[T ~string | ~[]byte](s T) (int64, bool) {
	n, ok, err := ParseInt(s)
	if err != nil {
		return 0, false
	}
	return n, ok
}

// SerializeInt renders n in its decimal header form.
func SerializeInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
