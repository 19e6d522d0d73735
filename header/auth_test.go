package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/webfield/webfield/header"
	"github.com/webfield/webfield/internal/grammar"
)

func TestParseAuth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		want    header.Credential
		wantErr error
	}{
		{"empty", "", header.Credential{}, nil},
		{
			"basic token", "Basic QWxhZGRpbjpvcGVuc2VzYW1l",
			header.Credential{Scheme: "Basic", Token: "QWxhZGRpbjpvcGVuc2VzYW1l"}, nil,
		},
		{
			"digest params", `Digest realm="test", nonce="abc"`,
			header.Credential{Scheme: "Digest", Params: header.Params{
				{Key: "realm", Value: "test"},
				{Key: "nonce", Value: "abc"},
			}},
			nil,
		},
		{
			"digest mixed quoting", `Digest username="bob", qop=auth, nc=00000001`,
			header.Credential{Scheme: "Digest", Params: header.Params{
				{Key: "username", Value: "bob"},
				{Key: "qop", Value: "auth"},
				{Key: "nc", Value: "00000001"},
			}},
			nil,
		},
		{
			"digest without quotes stays opaque", "Digest qop=auth, nc=00000001",
			header.Credential{Scheme: "Digest", Token: "qop=auth, nc=00000001"}, nil,
		},
		{
			"unknown scheme stays opaque", `Bearer claims="admin"`,
			header.Credential{Scheme: "Bearer", Token: `claims="admin"`}, nil,
		},
		{
			"scheme case sensitive", `BASIC realm="test"`,
			header.Credential{Scheme: "BASIC", Token: `realm="test"`}, nil,
		},
		{
			"wsse params", `WSSE profile="UsernameToken"`,
			header.Credential{Scheme: "WSSE", Params: header.Params{
				{Key: "profile", Value: "UsernameToken"},
			}},
			nil,
		},
		{"scheme only", "Basic", header.Credential{}, grammar.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, gotErr := header.ParseAuth(c.str)
			if c.wantErr == nil {
				if diff := cmp.Diff(got, c.want); diff != "" {
					t.Errorf("header.ParseAuth(%q) = %+v, want %+v\ndiff (-got +want):\n%v",
						c.str, got, c.want, diff)
				}
				if gotErr != nil {
					t.Errorf("header.ParseAuth(%q) error = %v, want nil", c.str, gotErr)
				}
			} else {
				if diff := cmp.Diff(gotErr, c.wantErr, cmpopts.EquateErrors()); diff != "" {
					t.Errorf("header.ParseAuth(%q) error = %v, want %q\ndiff (-got +want):\n%v",
						c.str, gotErr, c.wantErr, diff)
				}
			}
		})
	}
}

func TestSerializeAuth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cred    header.Credential
		wantRes string
		wantOK  bool
	}{
		{"zero value", header.Credential{}, "", false},
		{
			"token",
			header.Credential{Scheme: "Basic", Token: "QWxhZGRpbjpvcGVuc2VzYW1l"},
			"Basic QWxhZGRpbjpvcGVuc2VzYW1l", true,
		},
		{
			"params",
			header.Credential{Scheme: "Digest", Params: header.Params{
				{Key: "realm", Value: "test"},
				{Key: "nonce", Value: "abc"},
			}},
			`Digest realm="test", nonce="abc"`, true,
		},
		{"scheme only", header.Credential{Scheme: "Negotiate"}, "Negotiate ", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			res, ok := header.SerializeAuth(c.cred)
			if res != c.wantRes || ok != c.wantOK {
				t.Errorf("header.SerializeAuth(%+v) = %q, %v, want %q, %v",
					c.cred, res, ok, c.wantRes, c.wantOK)
			}
		})
	}
}

func TestCredential_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cred header.Credential
		val  any
		want bool
	}{
		{"zero to zero", header.Credential{}, header.Credential{}, true},
		{
			"token match",
			header.Credential{Scheme: "Basic", Token: "abc"},
			header.Credential{Scheme: "Basic", Token: "abc"}, true,
		},
		{
			"pointer",
			header.Credential{Scheme: "Basic", Token: "abc"},
			&header.Credential{Scheme: "Basic", Token: "abc"}, true,
		},
		{"nil pointer", header.Credential{}, (*header.Credential)(nil), false},
		{
			"params order ignored",
			header.Credential{Scheme: "Digest", Params: header.Params{
				{Key: "realm", Value: "test"},
				{Key: "nonce", Value: "abc"},
			}},
			header.Credential{Scheme: "Digest", Params: header.Params{
				{Key: "nonce", Value: "abc"},
				{Key: "realm", Value: "test"},
			}},
			true,
		},
		{
			"scheme differs",
			header.Credential{Scheme: "Basic", Token: "abc"},
			header.Credential{Scheme: "Bearer", Token: "abc"}, false,
		},
		{"other type", header.Credential{}, "Basic abc", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.cred.Equal(c.val); got != c.want {
				t.Errorf("cred.Equal(%+v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestCredential_Clone(t *testing.T) {
	t.Parallel()

	cred := header.Credential{Scheme: "Digest", Params: header.Params{{Key: "realm", Value: "test"}}}
	cred2 := cred.Clone()
	cred2.Params[0].Value = "other"
	if got, want := cred.Params[0].Value, "test"; got != want {
		t.Errorf("cred.Params[0].Value = %q, want %q", got, want)
	}
}

func TestCredential_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cred header.Credential
		want bool
	}{
		{"token form", header.Credential{Scheme: "Basic", Token: "abc"}, true},
		{
			"params form",
			header.Credential{Scheme: "Digest", Params: header.Params{{Key: "realm", Value: "test"}}},
			true,
		},
		{"no scheme", header.Credential{Token: "abc"}, false},
		{"scheme not a token", header.Credential{Scheme: "Ba sic", Token: "abc"}, false},
		{
			"both forms set",
			header.Credential{Scheme: "Basic", Token: "abc", Params: header.Params{{Key: "realm", Value: "x"}}},
			false,
		},
		{
			"param key not a token",
			header.Credential{Scheme: "Digest", Params: header.Params{{Key: "re alm", Value: "x"}}},
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.cred.IsValid(); got != c.want {
				t.Errorf("cred.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}
