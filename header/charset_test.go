package header_test

import (
	"testing"

	"github.com/webfield/webfield/header"
)

func TestCharset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no charset", "text/html", ""},
		{"plain", "text/html; charset=UTF-8", "UTF-8"},
		{"quoted", `text/html; charset="UTF-8"`, "UTF-8"},
		{"upper case param", "text/html; CHARSET=utf-8", "utf-8"},
		{"no space", "application/json;charset=utf-8", "utf-8"},
		{"more params after", "text/html; charset=utf-8; format=flowed", "utf-8"},
		{"padded value", "text/html; charset= utf-8 ", "utf-8"},
		{"without semicolon", "charset=utf-8", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := header.Charset(c.str); got != c.want {
				t.Errorf("header.Charset(%q) = %q, want %q", c.str, got, c.want)
			}
		})
	}
}
