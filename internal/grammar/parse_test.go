package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/webfield/webfield/internal/grammar"
	"github.com/webfield/webfield/internal/types"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "close", []string{"close"}},
		{"messy", " a, b ,,c", []string{"a", "b", "c"}},
		{"only separators", ", ,", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.ParseList(c.str)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.ParseList(%q) mismatch (-got +want):\n%v", c.str, diff)
			}
		})
	}
}

func TestParseCredentials(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		str        string
		wantScheme string
		wantRest   string
		wantErr    error
	}{
		{
			name:       "basic",
			str:        "Basic QWxhZGRpbjpvcGVuc2VzYW1l",
			wantScheme: "Basic",
			wantRest:   "QWxhZGRpbjpvcGVuc2VzYW1l",
		},
		{
			name:       "digest",
			str:        `Digest realm="test", nonce="abc"`,
			wantScheme: "Digest",
			wantRest:   `realm="test", nonce="abc"`,
		},
		{
			name:    "empty",
			str:     "",
			wantErr: grammar.ErrEmptyInput,
		},
		{
			name:    "scheme only",
			str:     "Negotiate",
			wantErr: grammar.ErrMalformedInput,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			scheme, rest, err := grammar.ParseCredentials(c.str)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("grammar.ParseCredentials(%q) error = %v, want %v", c.str, err, c.wantErr)
			}
			if scheme != c.wantScheme || rest != c.wantRest {
				t.Errorf("grammar.ParseCredentials(%q) = %q, %q, want %q, %q",
					c.str, scheme, rest, c.wantScheme, c.wantRest,
				)
			}
		})
	}
}

func TestParseAuthParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want types.Params
	}{
		{
			name: "empty",
			str:  "",
			want: nil,
		},
		{
			name: "quoted",
			str:  `realm="test", nonce="abc"`,
			want: types.Params{{Key: "realm", Value: "test"}, {Key: "nonce", Value: "abc"}},
		},
		{
			name: "mixed quoting",
			str:  `username="jo", uri=/index.html`,
			want: types.Params{{Key: "username", Value: "jo"}, {Key: "uri", Value: "/index.html"}},
		},
		{
			name: "comma inside quotes",
			str:  `realm="a,b", qop=auth`,
			want: types.Params{{Key: "realm", Value: "a,b"}, {Key: "qop", Value: "auth"}},
		},
		{
			name: "trailing comma",
			str:  `realm="test", `,
			want: types.Params{{Key: "realm", Value: "test"}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.ParseAuthParams(c.str)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.ParseAuthParams(%q) mismatch (-got +want):\n%v", c.str, diff)
			}
		})
	}
}

func TestParseCharset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		str    string
		want   string
		wantOK bool
	}{
		{"missing", "text/html", "", false},
		{"plain", "text/html; charset=UTF-8", "UTF-8", true},
		{"quoted", `text/html; charset="utf-8"`, "utf-8", true},
		{"tight", "text/html;charset=iso-8859-1", "iso-8859-1", true},
		{"more params", "text/html; charset=UTF-8; boundary=x", "UTF-8", true},
		{"empty param", "text/html; charset=", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := grammar.ParseCharset(c.str)
			if got != c.want || ok != c.wantOK {
				t.Errorf("grammar.ParseCharset(%q) = %q, %v, want %q, %v", c.str, got, ok, c.want, c.wantOK)
			}
		})
	}
}
