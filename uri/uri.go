/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package uri splits http and https endpoints into their components and
// rebuilds them.
//
//	  userinfo       host      port
//	  ┌──┴───┐ ┌──────┴──────┐ ┌┴┐
//	https://john.doe@www.example.com:123/forum/questions/?tag=networking&order=newest#top
//	└─┬─┘   └───────────┬──────────────┘└───────┬───────┘ └───────────┬─────────────┘ └┬┘
//	scheme          authority                  path                 query           fragment
//
// The splitter is narrow and best-effort:
//   - Only "http://" and "https://" endpoints are decomposed. Any other input
//     yields an empty URI whose Scheme is Unknown; Parse never fails.
//   - Nothing is validated or percent-decoded.
//   - The text after the authority is kept verbatim in Tail, and String
//     rebuilds the endpoint from it, so Path and Query are read-only views
//     that never need to round-trip on their own.
//
// Every operation exists for Go strings and for UTF-16 code units
// ([]uint16, see ParseWide). Both are driven by the same scanner.
// All functions are pure and safe for concurrent use.
package uri

import (
	"encoding/json"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// URI is a decomposed endpoint.
//
// Path and Query are derived from Tail and QueryPart. String always rebuilds
// the endpoint from Tail.
type URI struct {
	Scheme    Scheme
	Authority Authority
	// Path holds the non-empty path segments, left to right.
	Path []string
	// Query holds the parameters of QueryPart.
	Query Query
	// Fragment is the text after the last '#', without the '#'.
	Fragment string
	// Tail is the verbatim input from the first '/' after the authority to
	// the end, covering path, query and fragment.
	Tail string
	// QueryPart is the verbatim text between the first '?' and the fragment
	// (or the end), without the '?'.
	QueryPart string

	// explicitPort records that the port was written in the input.
	explicitPort bool
}

// Parse splits an endpoint into its components. It never fails: input that
// does not start with "http://" or "https://" yields the zero URI, whose
// Scheme is Unknown.
//
// A port larger than 65535 wraps modulo 65536. A port that is empty or not
// made of ASCII digits is ignored and the scheme's default port is kept.
func Parse(s string) URI {
	return newURI(s, decompose(narrowInput(s)))
}

// ParseNormalized first normalizes the input to Unicode Normalization Form C
// (NFC) and then parses it. This is useful when canonically equivalent
// endpoints must produce identical components.
func ParseNormalized(s string) URI {
	return Parse(norm.NFC.String(s))
}

// ParseEndpoint is like Parse but reports an input it cannot decompose as a
// *ParseError wrapping ErrUnsupportedScheme.
func ParseEndpoint(s string) (URI, error) {
	u := Parse(s)
	if u.Scheme == Unknown {
		return URI{}, newParseError(unsupportedSchemeError(s))
	}
	return u, nil
}

// MustParse is like ParseEndpoint but panics if the endpoint cannot be
// decomposed. It simplifies initialization of package-level variables
// holding endpoint literals.
func MustParse(s string) URI {
	u, err := ParseEndpoint(s)
	if err != nil {
		panic(err)
	}
	return u
}

// newURI materializes the components of s described by l.
func newURI(s string, l layout) URI {
	if l.scheme == Unknown {
		return URI{}
	}
	u := URI{
		Scheme: l.scheme,
		Authority: Authority{
			UserInfo: l.userInfo.of(s),
			Host:     l.host.of(s),
			Port:     l.port,
		},
		Fragment:     l.fragment.of(s),
		Tail:         l.tail.of(s),
		QueryPart:    l.query.of(s),
		explicitPort: l.explicitPort,
	}
	if !l.path.empty() {
		u.Path = splitPathSpan(s, l.path)
	}
	if !l.query.empty() {
		u.Query = splitQuerySpan(s, l.query)
	}
	return u
}

// showPort decides whether the serializer writes ":port". A port that was
// written in the input is always reproduced. For values built by hand the
// port is written only when it is set and differs from the scheme default.
func showPort(scheme Scheme, port uint16, explicit bool) bool {
	return explicit || (port > 0 && port != scheme.DefaultPort())
}

// String rebuilds the endpoint as "{scheme}://{userInfo@}{host}[:{port}]{tail}".
// For a parsed URI the result equals the input whenever the input was
// itself canonical. The zero URI yields "".
func (u URI) String() string {
	if u.Scheme == Unknown {
		return ""
	}
	var b strings.Builder
	b.Grow(len(u.Authority.UserInfo) + len(u.Authority.Host) + len(u.Tail) + len(httpsPrefix) + 7)
	out := &stringOutputBuffer{builder: &b}
	out.writeASCII(u.Scheme.String())
	out.writeASCII("://")
	if u.Authority.UserInfo != "" {
		out.writeString(u.Authority.UserInfo)
		out.writeByte('@')
	}
	out.writeString(u.Authority.Host)
	if showPort(u.Scheme, u.Authority.Port, u.explicitPort) {
		writePort(out, u.Authority.Port)
	}
	out.writeString(u.Tail)
	return out.string()
}

// Equal reports whether two URIs hold the same components.
func (u URI) Equal(other URI) bool {
	return u.Scheme == other.Scheme &&
		u.Authority == other.Authority &&
		slices.Equal(u.Path, other.Path) &&
		u.Query.Equal(other.Query) &&
		u.Fragment == other.Fragment &&
		u.Tail == other.Tail &&
		u.QueryPart == other.QueryPart
}

// uriJSON is the interchange form of a URI.
type uriJSON struct {
	Scheme    Scheme    `json:"scheme"`
	Authority Authority `json:"authority"`
	Path      []string  `json:"path"`
	Query     Query     `json:"query"`
	Fragment  string    `json:"fragment"`
	Tail      string    `json:"tail"`
	QueryPart string    `json:"queryPart"`
}

// MarshalJSON implements the json.Marshaler interface. The scheme is encoded
// as its lowercase name (null when Unknown), the path as an array and the
// query as an object.
func (u URI) MarshalJSON() ([]byte, error) {
	path := u.Path
	if path == nil {
		path = []string{}
	}
	return json.Marshal(uriJSON{
		Scheme:    u.Scheme,
		Authority: u.Authority,
		Path:      path,
		Query:     u.Query,
		Fragment:  u.Fragment,
		Tail:      u.Tail,
		QueryPart: u.QueryPart,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts either
// a JSON string holding an endpoint, or the object produced by MarshalJSON.
// In both cases the URI is re-parsed, so the derived fields of an object are
// recomputed from its scheme, authority and tail. An object whose userinfo,
// host or tail would not survive that round trip is rejected with an error
// wrapping ErrMalformedComponents.
func (u *URI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := ParseEndpoint(text)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	}

	var obj uriJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if !obj.Scheme.Decomposable() {
		return newParseError(&kindError{
			kind:    ErrUnsupportedScheme,
			message: "Cannot rebuild an endpoint with scheme",
			details: obj.Scheme.String(),
		})
	}
	if obj.Tail != "" && obj.Tail[0] != '/' {
		return newParseError(&kindError{
			kind:    ErrMalformedComponents,
			message: "Expected the tail to start with '/' instead of",
			details: truncateDetails(obj.Tail),
		})
	}
	rebuilt := URI{Scheme: obj.Scheme, Authority: obj.Authority, Tail: obj.Tail}
	parsed, err := ParseEndpoint(rebuilt.String())
	if err != nil {
		return err
	}
	if parsed.Authority.UserInfo != obj.Authority.UserInfo ||
		parsed.Authority.Host != obj.Authority.Host ||
		parsed.Tail != obj.Tail {
		return newParseError(&kindError{
			kind:    ErrMalformedComponents,
			message: "Components do not split back into themselves, rebuilt as",
			details: truncateDetails(rebuilt.String()),
		})
	}
	*u = parsed
	return nil
}
