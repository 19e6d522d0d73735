package header

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/grammar"
	"github.com/webfield/webfield/internal/ioutil"
	"github.com/webfield/webfield/internal/util"
)

// ETagSet represents the parsed value of an entity tag matching header such
// as If-Match or If-None-Match.
//
// The zero value matches no tag, [AnyETag] matches every tag and any other
// value matches exactly the tags it lists. Weak tags are folded into the
// tag list with the "W/" marker dropped, so a weak and a strong tag with
// the same text are indistinguishable here; callers that need real weak
// comparison semantics must keep the raw value.
type ETagSet struct {
	Any  bool
	Tags []string
}

// AnyETag matches every entity tag. It parses from the bare wildcard or,
// depending on the missing flag, from an absent header.
var AnyETag = ETagSet{Any: true}

// NoETag matches no entity tag.
var NoETag = ETagSet{}

// ParseETag parses a request entity tag header value. Empty input resolves
// to [AnyETag] or [NoETag] depending on missingIsAny, and a bare wildcard
// always resolves to [AnyETag].
func ParseETag[T ~string | ~[]byte](s T, missingIsAny bool) ETagSet {
	value := util.TrimSP(string(s))
	if value == "" {
		if missingIsAny {
			return AnyETag
		}
		return NoETag
	}
	if value == "*" {
		return AnyETag
	}
	return ParseETagSet(value)
}

// ParseETagSet parses a comma separated list of possibly quoted entity
// tags. A wildcard anywhere in the list yields [AnyETag]. Quoted tags end
// at the next double quote; there is no escape handling inside them.
func ParseETagSet[T ~string | ~[]byte](s T) ETagSet {
	var tags []string
	value := string(s)
	for value != "" {
		var tag string
		value = strings.TrimPrefix(value, "W/")
		if strings.HasPrefix(value, `"`) {
			if i := strings.IndexByte(value[1:], '"'); i >= 0 {
				tag = value[1 : 1+i]
				value = strings.Trim(value[i+2:], " ,")
			} else {
				tag = strings.Trim(value, ` ",`)
				value = ""
			}
		} else {
			if i := strings.IndexByte(value, ','); i >= 0 {
				tag = util.TrimSP(value[:i])
				value = util.TrimSP(value[i+1:])
			} else {
				tag = util.TrimSP(value)
				value = ""
			}
		}
		if tag == "*" {
			return AnyETag
		}
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return ETagSet{Tags: tags}
}

// SerializeETag renders set back to its header form. [AnyETag] serializes
// to an absent header when missingIsAny is set and to the bare wildcard
// otherwise; [NoETag] serializes to a present empty value.
func SerializeETag(set ETagSet, missingIsAny bool) (string, bool) {
	if set.Any {
		if missingIsAny {
			return "", false
		}
		return "*", true
	}
	return set.String(), true
}

// ParseQuoted parses a response entity tag: surrounding quotes are stripped
// and embedded escaped quotes unescaped. Unquoted input passes through
// verbatim.
func ParseQuoted[T ~string | ~[]byte](s T) string {
	return grammar.Unquote(string(s))
}

// SerializeQuoted renders tag in the quoted response form, escaping
// embedded quotes.
func SerializeQuoted(tag string) string {
	return grammar.Quote(tag)
}

// Contains reports whether the set matches tag.
func (set ETagSet) Contains(tag string) bool {
	return set.Any || slices.Contains(set.Tags, tag)
}

// RenderTo writes the header value to the provided writer.
func (set ETagSet) RenderTo(w io.Writer) (num int, err error) {
	if set.Any {
		return errtrace.Wrap2(io.WriteString(w, "*"))
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, tag := range set.Tags {
		if i > 0 {
			cw.Fprint(", ")
		}
		cw.Fprint(grammar.Quote(tag))
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the header value.
func (set ETagSet) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	set.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the header value.
func (set ETagSet) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, set.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(set.String()))
		return
	default:
		type hideMethods ETagSet
		type ETagSet hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ETagSet(set))
		return
	}
}

// Clone returns a copy of the header value.
func (set ETagSet) Clone() ETagSet {
	set.Tags = slices.Clone(set.Tags)
	return set
}

// Equal compares this header value with another for equality.
func (set ETagSet) Equal(val any) bool {
	var other ETagSet
	switch v := val.(type) {
	case ETagSet:
		other = v
	case *ETagSet:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return set.Any == other.Any && slices.Equal(set.Tags, other.Tags)
}

// IsValid checks whether the header value is syntactically valid.
func (set ETagSet) IsValid() bool {
	if set.Any {
		return len(set.Tags) == 0
	}
	return !slices.ContainsFunc(set.Tags, func(tag string) bool {
		return strings.ContainsAny(tag, "\"\r\n")
	})
}

func (set ETagSet) MarshalText() ([]byte, error) {
	return []byte(set.String()), nil
}

func (set *ETagSet) UnmarshalText(data []byte) error {
	*set = ParseETag(data, false)
	return nil
}
