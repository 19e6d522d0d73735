package field

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -source=store.go -destination=../internal/testutil/storemock/store.go -package=storemock

import (
	"net/textproto"
	"slices"
	"strings"

	"github.com/webfield/webfield/internal/util"
)

// Store is the minimal contract between accessors and an underlying header
// collection. Key normalization is the store's business: implementations
// decide how entry names and lookup keys relate.
type Store interface {
	// Lookup returns the value of the last entry matching key.
	Lookup(key string) (value string, ok bool)
	// Append adds an entry after the existing ones.
	Append(name, value string)
	// Drop removes all entries matching key. Dropping a missing key is a
	// no-op.
	Drop(key string)
}

var (
	_ Store = (*HeaderList)(nil)
	_ Store = Environ(nil)
)

// Pair is a single raw header entry of a [HeaderList].
type Pair struct {
	Name  string
	Value string
}

// HeaderList is an ordered list of raw header entries, as in an HTTP/1.1
// message. Names are matched case insensitively through their canonical
// form. The zero value is an empty list ready to use.
type HeaderList []Pair

// Lookup returns the value of the last entry whose name matches key.
func (hl *HeaderList) Lookup(key string) (string, bool) {
	key = textproto.CanonicalMIMEHeaderKey(key)
	for i := len(*hl) - 1; i >= 0; i-- {
		if textproto.CanonicalMIMEHeaderKey((*hl)[i].Name) == key {
			return (*hl)[i].Value, true
		}
	}
	return "", false
}

// Append adds an entry to the end of the list, keeping the name as given.
func (hl *HeaderList) Append(name, value string) {
	*hl = append(*hl, Pair{Name: name, Value: value})
}

// Drop removes all entries whose name matches key.
func (hl *HeaderList) Drop(key string) {
	key = textproto.CanonicalMIMEHeaderKey(key)
	*hl = slices.DeleteFunc(*hl, func(p Pair) bool {
		return textproto.CanonicalMIMEHeaderKey(p.Name) == key
	})
}

// Environ is a CGI style environment store. Keys are matched exactly and
// appending overwrites any previous value, as environment variables are
// single valued.
type Environ map[string]string

func (env Environ) Lookup(key string) (string, bool) {
	v, ok := env[key]
	return v, ok
}

func (env Environ) Append(name, value string) { env[name] = value }

func (env Environ) Drop(key string) { delete(env, key) }

// EnvironKey converts a header name to its CGI environment key: upper case
// with dashes turned to underscores and an HTTP_ prefix, except for the
// Content-Type and Content-Length headers which stay unprefixed.
func EnvironKey(name string) string {
	key := strings.ReplaceAll(util.UCase(name), "-", "_")
	switch key {
	case "CONTENT_TYPE", "CONTENT_LENGTH":
		return key
	}
	return "HTTP_" + key
}
