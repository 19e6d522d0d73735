package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/webfield/webfield/internal/types"
)

func TestParamsGet(t *testing.T) {
	t.Parallel()

	ps := types.Params{}.
		Add("realm", "test").
		Add("nonce", "abc").
		Add("Realm", "other")

	cases := []struct {
		name    string
		key     string
		want    string
		wantOK  bool
		wantHas bool
	}{
		{name: "last match wins", key: "realm", want: "other", wantOK: true, wantHas: true},
		{name: "case insensitive", key: "NONCE", want: "abc", wantOK: true, wantHas: true},
		{name: "missing", key: "opaque", want: "", wantOK: false, wantHas: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ps.Get(c.key)
			if got != c.want || ok != c.wantOK {
				t.Errorf("ps.Get(%q) = %q, %v, want %q, %v", c.key, got, ok, c.want, c.wantOK)
			}
			if has := ps.Has(c.key); has != c.wantHas {
				t.Errorf("ps.Has(%q) = %v, want %v", c.key, has, c.wantHas)
			}
		})
	}
}

func TestParamsSetDel(t *testing.T) {
	t.Parallel()

	ps := types.Params{}.
		Add("realm", "test").
		Add("nonce", "abc").
		Add("realm", "other")

	ps = ps.Set("realm", "final")
	want := types.Params{{Key: "nonce", Value: "abc"}, {Key: "realm", Value: "final"}}
	if diff := cmp.Diff(ps, want); diff != "" {
		t.Errorf("ps.Set() mismatch (-got +want):\n%v", diff)
	}

	ps = ps.Del("nonce")
	want = types.Params{{Key: "realm", Value: "final"}}
	if diff := cmp.Diff(ps, want); diff != "" {
		t.Errorf("ps.Del() mismatch (-got +want):\n%v", diff)
	}
}

func TestParamsSorted(t *testing.T) {
	t.Parallel()

	ps := types.Params{}.
		Add("nonce", "abc").
		Add("algorithm", "MD5").
		Add("realm", "test")

	got := ps.Sorted()
	want := types.Params{
		{Key: "algorithm", Value: "MD5"},
		{Key: "nonce", Value: "abc"},
		{Key: "realm", Value: "test"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("ps.Sorted() mismatch (-got +want):\n%v", diff)
	}

	// The receiver keeps its order.
	if diff := cmp.Diff(ps.Keys(), []string{"nonce", "algorithm", "realm"}); diff != "" {
		t.Errorf("ps.Keys() mismatch (-got +want):\n%v", diff)
	}
}
