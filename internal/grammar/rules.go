package grammar

import (
	"regexp"
	"strings"
)

// tchar marks the RFC 7230 token characters.
var tchar [256]bool

func init() {
	for i := 0; i < 0x7F; i++ {
		b := byte(i)
		tchar[b] = (b >= '0' && b <= '9') ||
			(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
			strings.ContainsRune("!#$%&'*+-.^_`|~", rune(b))
	}
}

var (
	// quotedRx spans from a leading double quote to the last double quote.
	quotedRx = regexp.MustCompile(`^"(.*)"`)
	// authParamRx matches one key=value credential parameter; the value is
	// either a double-quoted string or an unquoted run up to the next comma.
	authParamRx = regexp.MustCompile(`([a-z]+)=(".*?"|[^,]*)(?:\z|, *)`)
	// charsetRx matches the charset parameter of a media type.
	charsetRx = regexp.MustCompile(`(?i);\s*charset=([^;]*)`)
	// acceptRx matches one element of an accept style value together with
	// its optional q parameter.
	acceptRx = regexp.MustCompile(`,\s*([^\s;,\n]+)(?:[^,]*?;\s*q=([\d.]*))?`)
	// contentRangeRx matches the two Content-Range forms, a closed byte
	// range or the unsatisfied wildcard, over a known or unknown total.
	contentRangeRx = regexp.MustCompile(`^bytes (?:(\d+)-(\d+)|\*)/(?:(\d+)|\*)$`)
)
