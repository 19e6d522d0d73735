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

// Credential represents an Authorization style header value: a scheme
// followed by either an opaque token or a key/value parameter list. At most
// one of Token and Params is populated. The zero value stands for an absent
// header.
type Credential struct {
	Scheme string
	Token  string
	Params Params
}

// knownAuthSchemes is the closed set of schemes whose credentials may carry
// a quoted parameter list. Matching is case sensitive on the canonical
// spellings.
var knownAuthSchemes = map[string]bool{
	"Basic":       true,
	"Digest":      true,
	"WSSE":        true,
	"HMACDigest":  true,
	"GoogleLogin": true,
	"Cookie":      true,
	"OpenID":      true,
}

// ParseAuth parses an authorization header value into a Credential. The
// scheme is the token before the first space. When the scheme is one of the
// known schemes and the remainder contains a double quote, the remainder is
// parsed as a key/value parameter list; otherwise it is kept as an opaque
// token. This quote heuristic can misread a structured value without quoted
// parameters, and is kept as is.
//
// Empty input yields the zero Credential. Input without a space after the
// scheme is malformed.
func ParseAuth[T ~string | ~[]byte](s T) (Credential, error) {
	var cred Credential
	if len(s) == 0 {
		return cred, nil
	}

	scheme, rest, err := grammar.ParseCredentials(s)
	if err != nil {
		return cred, errtrace.Wrap(err)
	}
	cred.Scheme = scheme
	if knownAuthSchemes[scheme] && strings.Contains(rest, `"`) {
		cred.Params = grammar.ParseAuthParams(rest)
	} else {
		cred.Token = rest
	}
	return cred, nil
}

// SerializeAuth renders cred back to its header form. The zero Credential
// serializes to an absent header.
func SerializeAuth(cred Credential) (string, bool) {
	if cred.Scheme == "" && cred.Token == "" && len(cred.Params) == 0 {
		return "", false
	}
	return cred.String(), true
}

// RenderTo writes the header value to the provided writer.
func (cred Credential) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(cred.Scheme, " ")
	if len(cred.Params) > 0 {
		for i, kv := range cred.Params {
			if i > 0 {
				cw.Fprint(", ")
			}
			cw.Fprint(kv.Key, `="`, kv.Value, `"`)
		}
	} else {
		cw.Fprint(cred.Token)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the header value.
func (cred Credential) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	cred.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the header value.
func (cred Credential) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, cred.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(cred.String()))
		return
	default:
		type hideMethods Credential
		type Credential hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Credential(cred))
		return
	}
}

// Clone returns a copy of the header value.
func (cred Credential) Clone() Credential {
	cred.Params = cred.Params.Clone()
	return cred
}

// Equal compares this header value with another for equality. Parameter
// lists compare as key/value sets: the order does not matter.
func (cred Credential) Equal(val any) bool {
	var other Credential
	switch v := val.(type) {
	case Credential:
		other = v
	case *Credential:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return cred.Scheme == other.Scheme && cred.Token == other.Token &&
		slices.Equal(cred.Params.Sorted(), other.Params.Sorted())
}

// IsValid checks whether the header value is syntactically valid: a token
// scheme, token parameter keys and at most one of Token and Params set.
func (cred Credential) IsValid() bool {
	if !grammar.IsToken(cred.Scheme) {
		return false
	}
	if cred.Token != "" && len(cred.Params) > 0 {
		return false
	}
	for _, kv := range cred.Params {
		if !grammar.IsToken(kv.Key) {
			return false
		}
	}
	return true
}
