package header

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/util"
)

// IfRange represents an If-Range header value: a validator that is either
// an HTTP date or an entity tag set. The zero value stands for an absent
// header and matches unconditionally.
type IfRange struct {
	Date time.Time
	Tags ETagSet
}

// ParseIfRange parses an If-Range header value. Empty input yields the zero
// value, a value with the " GMT" suffix parses as an HTTP date and anything
// else as an entity tag set. An unparsable date and a tag list without tags
// both resolve to the zero value.
func ParseIfRange[T ~string | ~[]byte](s T) IfRange {
	value := string(s)
	if value == "" {
		return IfRange{}
	}
	if strings.HasSuffix(value, " GMT") {
		date, err := http.ParseTime(value)
		if err != nil {
			return IfRange{}
		}
		return IfRange{Date: date}
	}
	return IfRange{Tags: ParseETagSet(value)}
}

// SerializeIfRange renders ir back to its header form. The zero value
// serializes to an absent header.
func SerializeIfRange(ir IfRange) (string, bool) {
	s := ir.String()
	if s == "" {
		return "", false
	}
	return s, true
}

// Match reports whether the validator matches the given entity tag or last
// modified time. The date form matches when lastModified is known and not
// after the validator date; the tag form matches when tag is in the set.
// An absent If-Range matches unconditionally.
func (ir IfRange) Match(tag string, lastModified time.Time) bool {
	if !ir.Date.IsZero() {
		return !lastModified.IsZero() && !lastModified.After(ir.Date)
	}
	if ir.Tags.Any || len(ir.Tags.Tags) > 0 {
		return tag != "" && ir.Tags.Contains(tag)
	}
	return true
}

// RenderTo writes the header value to the provided writer.
func (ir IfRange) RenderTo(w io.Writer) (num int, err error) {
	if !ir.Date.IsZero() {
		return errtrace.Wrap2(io.WriteString(w, ir.Date.UTC().Format(http.TimeFormat)))
	}
	return errtrace.Wrap2(ir.Tags.RenderTo(w))
}

// String returns the string representation of the header value.
func (ir IfRange) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ir.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the header value.
func (ir IfRange) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, ir.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(ir.String()))
		return
	default:
		type hideMethods IfRange
		type IfRange hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), IfRange(ir))
		return
	}
}

// Clone returns a copy of the header value.
func (ir IfRange) Clone() IfRange {
	ir.Tags = ir.Tags.Clone()
	return ir
}

// Equal compares this header value with another for equality.
func (ir IfRange) Equal(val any) bool {
	var other IfRange
	switch v := val.(type) {
	case IfRange:
		other = v
	case *IfRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return ir.Date.Equal(other.Date) && ir.Tags.Equal(other.Tags)
}

// IsValid checks whether the header value is syntactically valid.
// At most one of the date and tag forms may be populated.
func (ir IfRange) IsValid() bool {
	if !ir.Date.IsZero() {
		return !ir.Tags.Any && len(ir.Tags.Tags) == 0
	}
	return ir.Tags.IsValid()
}
