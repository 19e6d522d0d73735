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

// AcceptPref is a single preference of an accept style header: a value mask
// and its quality weight.
type AcceptPref struct {
	Value   string
	Quality float64
}

// AcceptList represents an Accept style negotiation header bound to its
// header name. The name selects the matching mode: the Accept header proper
// matches offers as media types with wildcard masks ("*/*", "type/*"),
// every other family member matches case insensitively with the bare "*"
// wildcard.
//
// A list without preferences is the nil variant standing for an absent
// header: it accepts every offer, weighs them all at zero and picks the
// first one.
type AcceptList struct {
	Name  string
	Prefs []AcceptPref
}

// ParseAccept parses an accept style header value bound to the given header
// name. Element qualities are clamped to [0, 1] and an unparsable quality
// counts as 1. In the media mode masks that are not a valid media type
// pattern are dropped.
func ParseAccept[T ~string | ~[]byte](name string, s T) AcceptList {
	al := AcceptList{Name: name}
	for _, part := range grammar.AcceptParts(string(s)) {
		pref := AcceptPref{Value: part[0], Quality: 1}
		if part[1] != "" {
			if q, err := strconv.ParseFloat(part[1], 64); err == nil {
				pref.Quality = min(max(q, 0), 1)
			}
		}
		if al.media() && !validMediaMask(pref.Value) {
			continue
		}
		al.Prefs = append(al.Prefs, pref)
	}
	return al
}

// SerializeAccept renders al back to its header form. The nil variant
// serializes to an absent header.
func SerializeAccept(al AcceptList) (string, bool) {
	if len(al.Prefs) == 0 {
		return "", false
	}
	return al.String(), true
}

// Prefs builds preferences with quality 1 from plain values.
func Prefs(values ...string) []AcceptPref {
	prefs := make([]AcceptPref, len(values))
	for i, v := range values {
		prefs[i] = AcceptPref{Value: v, Quality: 1}
	}
	return prefs
}

// PrefMap builds preferences from a value to quality mapping, ordered by
// descending quality and then by value for determinism.
func PrefMap(m map[string]float64) []AcceptPref {
	prefs := make([]AcceptPref, 0, len(m))
	for v, q := range m {
		prefs = append(prefs, AcceptPref{Value: v, Quality: q})
	}
	slices.SortFunc(prefs, func(a, b AcceptPref) int {
		switch {
		case a.Quality > b.Quality:
			return -1
		case a.Quality < b.Quality:
			return 1
		default:
			return strings.Compare(a.Value, b.Value)
		}
	})
	return prefs
}

// With returns a copy of the list with prefs appended, keeping the header
// name and its matching mode. Qualities are clamped to [0, 1] and in the
// media mode invalid masks are dropped, as in [ParseAccept].
func (al AcceptList) With(prefs ...AcceptPref) AcceptList {
	al.Prefs = slices.Clone(al.Prefs)
	for _, pref := range prefs {
		pref.Quality = min(max(pref.Quality, 0), 1)
		if al.media() && !validMediaMask(pref.Value) {
			continue
		}
		al.Prefs = append(al.Prefs, pref)
	}
	return al
}

// Match reports whether offer is accepted by any preference with a nonzero
// quality. The nil variant accepts every offer.
func (al AcceptList) Match(offer string) bool {
	if len(al.Prefs) == 0 {
		return true
	}
	for _, pref := range al.Prefs {
		if pref.Quality > 0 && al.match(pref.Value, offer) {
			return true
		}
	}
	return false
}

// Quality returns the weight the header assigns to offer: the highest
// quality among the matching preferences, zero when none match.
func (al AcceptList) Quality(offer string) float64 {
	var best float64
	for _, pref := range al.Prefs {
		if al.match(pref.Value, offer) {
			best = max(best, pref.Quality)
		}
	}
	return best
}

// Best returns the offer preferred by the header, or the empty string when
// nothing is acceptable. On equal quality the more specific mask wins and
// earlier preferences beat later ones. The nil variant returns the first
// offer.
func (al AcceptList) Best(offers ...string) string {
	if len(al.Prefs) == 0 {
		if len(offers) == 0 {
			return ""
		}
		return offers[0]
	}

	var best string
	bestQ := -1.0
	matchedBy := "*/*"
	for _, offer := range offers {
		for _, pref := range al.Prefs {
			if pref.Quality == 0 || pref.Quality < bestQ {
				continue
			}
			if pref.Quality == bestQ && strings.Count(matchedBy, "*") <= strings.Count(pref.Value, "*") {
				// On a quality tie an exact mask beats "type/*" beats "*/*".
				continue
			}
			if al.match(pref.Value, offer) {
				best = offer
				bestQ = pref.Quality
				matchedBy = pref.Value
			}
		}
	}
	return best
}

func (al AcceptList) media() bool { return util.EqFold(al.Name, "Accept") }

func (al AcceptList) match(mask, offer string) bool {
	if al.media() {
		return matchMedia(mask, offer)
	}
	return mask == "*" || util.EqFold(mask, offer)
}

// matchMedia checks whether the offer media type is covered by the mask.
// Offers must be specific types: a wildcard in an offer never matches.
func matchMedia(mask, offer string) bool {
	if strings.Contains(offer, "*") {
		return false
	}
	if !strings.Contains(mask, "*") {
		return util.EqFold(mask, offer)
	}
	if mask == "*/*" {
		return true
	}
	major, minor, _ := strings.Cut(mask, "/")
	if minor != "*" {
		return false
	}
	offerMajor, _, ok := strings.Cut(offer, "/")
	return ok && util.EqFold(major, offerMajor)
}

// validMediaMask reports whether mask is a valid media type pattern: a
// type/subtype pair where a wildcard covers a whole position or none.
func validMediaMask(mask string) bool {
	major, minor, ok := strings.Cut(mask, "/")
	if !ok {
		return false
	}
	if major == "*" {
		return minor == "*"
	}
	if strings.Contains(major, "*") {
		return false
	}
	return minor == "*" || !strings.Contains(minor, "*")
}

// RenderTo writes the header value to the provided writer.
func (al AcceptList) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, pref := range al.Prefs {
		if i > 0 {
			cw.Fprint(", ")
		}
		cw.Fprint(pref.Value)
		if pref.Quality != 1 {
			cw.Fprint(";q=", formatQuality(pref.Quality))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// formatQuality renders a quality weight with up to three fractional
// digits.
func formatQuality(q float64) string {
	s := strconv.FormatFloat(q, 'f', -1, 64)
	if _, frac, ok := strings.Cut(s, "."); ok && len(frac) > 3 {
		return strconv.FormatFloat(q, 'f', 3, 64)
	}
	return s
}

// String returns the string representation of the header value.
func (al AcceptList) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	al.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the header value.
func (al AcceptList) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, al.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(al.String()))
		return
	default:
		type hideMethods AcceptList
		type AcceptList hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), AcceptList(al))
		return
	}
}

// Clone returns a copy of the header value.
func (al AcceptList) Clone() AcceptList {
	al.Prefs = slices.Clone(al.Prefs)
	return al
}

// Equal compares this header value with another for equality. Header names
// compare case insensitively.
func (al AcceptList) Equal(val any) bool {
	var other AcceptList
	switch v := val.(type) {
	case AcceptList:
		other = v
	case *AcceptList:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(al.Name, other.Name) && slices.Equal(al.Prefs, other.Prefs)
}

// IsValid checks whether the header value is syntactically valid: qualities
// within [0, 1], non empty values and, in the media mode, valid masks.
func (al AcceptList) IsValid() bool {
	for _, pref := range al.Prefs {
		if pref.Quality < 0 || pref.Quality > 1 || pref.Value == "" {
			return false
		}
		if al.media() && !validMediaMask(pref.Value) {
			return false
		}
	}
	return true
}
