package header

import (
	"github.com/webfield/webfield/internal/grammar"
)

// Charset extracts the charset parameter from a Content-Type style value.
// Surrounding whitespace and quotes are stripped; the empty string means no
// charset is declared.
func Charset(contentType string) string {
	cs, _ := grammar.ParseCharset(contentType)
	return cs
}
