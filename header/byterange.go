package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/errorutil"
	"github.com/webfield/webfield/internal/ioutil"
	"github.com/webfield/webfield/internal/util"
)

// ByteSpan is a single byte range specification. End is inclusive; a
// negative End leaves the span open ended and a negative Start selects the
// final -Start bytes of the representation (the End of a suffix span is
// always open).
type ByteSpan struct {
	Start int64
	End   int64
}

// Span returns the inclusive byte span from start to end.
func Span(start, end int64) ByteSpan { return ByteSpan{Start: start, End: end} }

// Range represents a Range header value: an ordered sequence of byte spans.
// A nil Range stands for an absent header.
type Range []ByteSpan

// NewRange builds a single span Range from a start and end value pair.
// Anything but exactly two values is an invalid argument error.
func NewRange(vals ...int64) (Range, error) {
	if len(vals) != 2 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"a range built from values needs a start and end pair, got %d value(s)", len(vals)))
	}
	return Range{Span(vals[0], vals[1])}, nil
}

// ParseRange parses a Range header value. Empty input, malformed input and
// units other than bytes all yield a nil Range, never an error. Spans must
// be ascending and non overlapping, and nothing may follow a suffix or open
// ended span.
func ParseRange[T ~string | ~[]byte](s T) Range {
	value := string(s)
	if value == "" {
		return nil
	}
	units, rest, ok := strings.Cut(value, "=")
	if !ok || util.LCase(util.TrimSP(units)) != "bytes" {
		return nil
	}

	var spans []ByteSpan
	var lastEnd int64
	for item := range strings.SplitSeq(rest, ",") {
		switch {
		case !strings.Contains(item, "-"):
			return nil
		case strings.HasPrefix(item, "-"):
			// A suffix span asking for a trailing chunk.
			if lastEnd < 0 {
				return nil
			}
			start, err := strconv.ParseInt(util.TrimSP(item), 10, 64)
			if err != nil || start >= 0 {
				return nil
			}
			spans = append(spans, ByteSpan{Start: start, End: -1})
			lastEnd = -1
		default:
			first, last, _ := strings.Cut(item, "-")
			start, err := strconv.ParseInt(util.TrimSP(first), 10, 64)
			if err != nil || start < lastEnd || lastEnd < 0 {
				return nil
			}
			if last = util.TrimSP(last); last == "" {
				spans = append(spans, ByteSpan{Start: start, End: -1})
				lastEnd = -1
				continue
			}
			end, err := strconv.ParseInt(last, 10, 64)
			if err != nil || start > end {
				return nil
			}
			spans = append(spans, Span(start, end))
			lastEnd = end + 1
		}
	}
	return spans
}

// SerializeRange renders rng back to its header form. A nil or empty Range
// serializes to an absent header.
func SerializeRange(rng Range) (string, bool) {
	if len(rng) == 0 {
		return "", false
	}
	return rng.String(), true
}

// Resolve computes the concrete inclusive offsets of the span against a
// representation of the given byte length. It reports false when the span
// cannot be satisfied by that length.
func (sp ByteSpan) Resolve(length int64) (start, end int64, ok bool) {
	if length <= 0 {
		return 0, 0, false
	}
	if sp.Start < 0 {
		start = max(length+sp.Start, 0)
		return start, length - 1, true
	}
	if sp.Start >= length {
		return 0, 0, false
	}
	end = sp.End
	if end < 0 || end >= length {
		end = length - 1
	}
	if end < sp.Start {
		return 0, 0, false
	}
	return sp.Start, end, true
}

// RenderTo writes the span to the provided writer. A suffix span renders
// its start only; the open end of such a span cannot be expressed.
func (sp ByteSpan) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	switch {
	case sp.Start < 0:
		cw.Fprintf("%d", sp.Start)
	case sp.End < 0:
		cw.Fprintf("%d-", sp.Start)
	default:
		cw.Fprintf("%d-%d", sp.Start, sp.End)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the span.
func (sp ByteSpan) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sp.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// IsValid checks whether the span is syntactically valid. A suffix span
// must be open ended and a closed span must not be reversed.
func (sp ByteSpan) IsValid() bool {
	if sp.Start < 0 {
		return sp.End < 0
	}
	return sp.End < 0 || sp.Start <= sp.End
}

// Satisfiable reports whether at least one span resolves against a
// representation of the given byte length.
func (rng Range) Satisfiable(length int64) bool {
	return slices.ContainsFunc(rng, func(sp ByteSpan) bool {
		_, _, ok := sp.Resolve(length)
		return ok
	})
}

// RenderTo writes the header value to the provided writer.
func (rng Range) RenderTo(w io.Writer) (num int, err error) {
	if rng == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("bytes=")
	for i := range rng {
		if i > 0 {
			cw.Fprint(",")
		}
		cw.Call(rng[i].RenderTo)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the header value.
func (rng Range) String() string {
	if rng == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	rng.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the header value.
func (rng Range) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, rng.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(rng.String()))
		return
	default:
		type hideMethods Range
		type Range hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Range(rng))
		return
	}
}

// Clone returns a copy of the header value.
func (rng Range) Clone() Range { return slices.Clone(rng) }

// Equal compares this header value with another for equality.
func (rng Range) Equal(val any) bool {
	var other Range
	switch v := val.(type) {
	case Range:
		other = v
	case *Range:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(rng, other)
}

// IsValid checks whether the header value is syntactically valid.
func (rng Range) IsValid() bool {
	return len(rng) > 0 && !slices.ContainsFunc(rng, func(sp ByteSpan) bool { return !sp.IsValid() })
}

func (rng Range) MarshalText() ([]byte, error) {
	return []byte(rng.String()), nil
}

func (rng *Range) UnmarshalText(data []byte) error {
	*rng = ParseRange(data)
	return nil
}
