package types

import (
	"slices"
	"strings"

	"github.com/webfield/webfield/internal/util"
)

// KV is a single key/value parameter.
type KV struct {
	Key   string
	Value string
}

// Params is an ordered list of string parameters.
// Keys are folded to lower case on write, so lookups are case-insensitive.
// It is typically used to store credential or media-type parameters where
// the serialized order must be stable.
type Params []KV

// Get returns the value of the last parameter with the given key.
func (ps Params) Get(key string) (string, bool) {
	key = util.LCase(key)
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Key == key {
			return ps[i].Value, true
		}
	}
	return "", false
}

// Has checks whether a parameter with the given key is in the list.
func (ps Params) Has(key string) bool {
	_, ok := ps.Get(key)
	return ok
}

// Add appends a parameter to the list.
func (ps Params) Add(key, value string) Params {
	return append(ps, KV{Key: util.LCase(key), Value: value})
}

// Set replaces all parameters with the given key by a single one.
func (ps Params) Set(key, value string) Params {
	return ps.Del(key).Add(key, value)
}

// Del removes all parameters with the given key.
func (ps Params) Del(key string) Params {
	key = util.LCase(key)
	return slices.DeleteFunc(ps, func(kv KV) bool { return kv.Key == key })
}

// Keys returns parameter keys in list order.
func (ps Params) Keys() []string {
	if len(ps) == 0 {
		return nil
	}
	keys := make([]string, len(ps))
	for i, kv := range ps {
		keys[i] = kv.Key
	}
	return keys
}

// Sorted returns a copy of the list ordered by key.
// Parameters sharing a key keep their relative order.
func (ps Params) Sorted() Params {
	ps2 := ps.Clone()
	slices.SortStableFunc(ps2, func(a, b KV) int { return strings.Compare(a.Key, b.Key) })
	return ps2
}

// Clone returns a copy of the list.
func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	return slices.Clone(ps)
}
