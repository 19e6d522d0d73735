package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/errorutil"
	"github.com/webfield/webfield/internal/grammar"
	"github.com/webfield/webfield/internal/ioutil"
	"github.com/webfield/webfield/internal/util"
)

// ContentRange represents a Content-Range header value. End is inclusive.
// A negative Total stands for an unknown representation length and renders
// as the wildcard; negative Start and End together stand for the
// unsatisfied range form "bytes */total".
type ContentRange struct {
	Start int64
	End   int64
	Total int64
}

// NewContentRange builds a ContentRange from two or three values: a start
// and end pair leaves the total length unknown, a third value supplies it.
// Any other arity is an invalid argument error.
func NewContentRange(vals ...int64) (*ContentRange, error) {
	switch len(vals) {
	case 2:
		return &ContentRange{Start: vals[0], End: vals[1], Total: -1}, nil
	case 3:
		return &ContentRange{Start: vals[0], End: vals[1], Total: vals[2]}, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"a content range built from values needs a start and end pair and an optional total, got %d value(s)", len(vals)))
	}
}

// ParseContentRange parses a Content-Range header value. Empty, whitespace
// only and malformed input all yield nil, never an error.
func ParseContentRange[T ~string | ~[]byte](s T) *ContentRange {
	value := util.TrimSP(string(s))
	if value == "" {
		return nil
	}
	rawStart, rawEnd, rawTotal, ok := grammar.ContentRangeParts(value)
	if !ok {
		return nil
	}

	cr := ContentRange{Start: -1, End: -1, Total: -1}
	if rawStart != "" {
		var err error
		if cr.Start, err = strconv.ParseInt(rawStart, 10, 64); err != nil {
			return nil
		}
		if cr.End, err = strconv.ParseInt(rawEnd, 10, 64); err != nil {
			return nil
		}
		if cr.Start > cr.End {
			return nil
		}
	}
	if rawTotal != "" {
		var err error
		if cr.Total, err = strconv.ParseInt(rawTotal, 10, 64); err != nil {
			return nil
		}
		if cr.Start >= 0 && cr.End >= cr.Total {
			return nil
		}
	}
	return &cr
}

// SerializeContentRange renders cr back to its header form. A nil
// ContentRange serializes to an absent header.
func SerializeContentRange(cr *ContentRange) (string, bool) {
	if cr == nil {
		return "", false
	}
	return cr.String(), true
}

// RenderTo writes the header value to the provided writer.
func (cr *ContentRange) RenderTo(w io.Writer) (num int, err error) {
	if cr == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if cr.Start < 0 && cr.End < 0 {
		cw.Fprint("bytes */")
	} else {
		cw.Fprintf("bytes %d-%d/", cr.Start, cr.End)
	}
	if cr.Total < 0 {
		cw.Fprint("*")
	} else {
		cw.Fprintf("%d", cr.Total)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the header value.
func (cr *ContentRange) String() string {
	if cr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	cr.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the header value.
func (cr *ContentRange) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, cr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(cr.String()))
		return
	default:
		type hideMethods ContentRange
		type ContentRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*ContentRange)(cr))
		return
	}
}

// Clone returns a copy of the header value.
func (cr *ContentRange) Clone() *ContentRange {
	if cr == nil {
		return nil
	}
	cr2 := *cr
	return &cr2
}

// Equal compares this header value with another for equality.
func (cr *ContentRange) Equal(val any) bool {
	var other *ContentRange
	switch v := val.(type) {
	case ContentRange:
		other = &v
	case *ContentRange:
		other = v
	default:
		return false
	}

	if cr == other {
		return true
	} else if cr == nil || other == nil {
		return false
	}
	return *cr == *other
}

// IsValid checks whether the header value is syntactically valid.
func (cr *ContentRange) IsValid() bool {
	switch {
	case cr == nil:
		return false
	case cr.Start < 0 || cr.End < 0:
		// The unsatisfied form needs both ends unset.
		return cr.Start < 0 && cr.End < 0
	case cr.Start > cr.End:
		return false
	case cr.Total < 0:
		return true
	default:
		return cr.End < cr.Total
	}
}

func (cr *ContentRange) MarshalText() ([]byte, error) {
	return []byte(cr.String()), nil
}

func (cr *ContentRange) UnmarshalText(data []byte) error {
	cr2 := ParseContentRange(data)
	if cr2 == nil {
		*cr = ContentRange{}
		return errtrace.Wrap(errorutil.Errorf("malformed content range %q", data))
	}
	*cr = *cr2
	return nil
}
