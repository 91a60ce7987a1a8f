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

package uri

import (
	"encoding/json"
	"slices"
)

// WideURI is the UTF-16 counterpart of URI. Its components are slices of a
// private copy of the parsed input, so they stay valid if the caller
// modifies the original slice.
type WideURI struct {
	Scheme    Scheme
	Authority WideAuthority
	Path      [][]uint16
	Query     WideQuery
	Fragment  []uint16
	Tail      []uint16
	QueryPart []uint16

	explicitPort bool
}

// ParseWide splits an endpoint given as UTF-16 code units. It follows
// exactly the same rules as Parse.
func ParseWide(s []uint16) WideURI {
	s = slices.Clone(s)
	return newWideURI(s, decompose(wideInput(s)))
}

// newWideURI materializes the components of s described by l.
func newWideURI(s []uint16, l layout) WideURI {
	if l.scheme == Unknown {
		return WideURI{}
	}
	u := WideURI{
		Scheme: l.scheme,
		Authority: WideAuthority{
			UserInfo: l.userInfo.ofWide(s),
			Host:     l.host.ofWide(s),
			Port:     l.port,
		},
		Fragment:     l.fragment.ofWide(s),
		Tail:         l.tail.ofWide(s),
		QueryPart:    l.query.ofWide(s),
		explicitPort: l.explicitPort,
	}
	if !l.path.empty() {
		u.Path = splitPathSpanWide(s, l.path)
	}
	if !l.query.empty() {
		u.Query = splitQuerySpanWide(s, l.query)
	}
	return u
}

// Units rebuilds the endpoint as UTF-16 code units, following the same
// rules as URI.String.
func (u WideURI) Units() []uint16 {
	if u.Scheme == Unknown {
		return nil
	}
	out := &wideOutputBuffer{}
	out.writeASCII(u.Scheme.String())
	out.writeASCII("://")
	if len(u.Authority.UserInfo) > 0 {
		out.writeUnits(u.Authority.UserInfo)
		out.writeByte('@')
	}
	out.writeUnits(u.Authority.Host)
	if showPort(u.Scheme, u.Authority.Port, u.explicitPort) {
		writePort(out, u.Authority.Port)
	}
	out.writeUnits(u.Tail)
	return out.content()
}

// String returns the rebuilt endpoint transcoded to UTF-8.
func (u WideURI) String() string {
	s, _ := DecodeUTF16(u.Units()) // invalid sequences are replaced by U+FFFD.
	return s
}

// Narrow transcodes every component to UTF-8.
func (u WideURI) Narrow() (URI, error) {
	if u.Scheme == Unknown {
		return URI{}, nil
	}
	var err error
	text := func(units []uint16) string {
		if err != nil {
			return ""
		}
		var s string
		s, err = DecodeUTF16(units)
		return s
	}

	n := URI{
		Scheme: u.Scheme,
		Authority: Authority{
			UserInfo: text(u.Authority.UserInfo),
			Host:     text(u.Authority.Host),
			Port:     u.Authority.Port,
		},
		Fragment:     text(u.Fragment),
		Tail:         text(u.Tail),
		QueryPart:    text(u.QueryPart),
		explicitPort: u.explicitPort,
	}
	for _, segment := range u.Path {
		n.Path = append(n.Path, text(segment))
	}
	for k, v := range u.Query.All() {
		n.Query.Set(text(k), text(v))
	}
	if err != nil {
		return URI{}, err
	}
	return n, nil
}

// Widen transcodes every component of u to UTF-16.
func Widen(u URI) (WideURI, error) {
	if u.Scheme == Unknown {
		return WideURI{}, nil
	}
	var err error
	units := func(s string) []uint16 {
		if err != nil {
			return nil
		}
		var w []uint16
		w, err = EncodeUTF16(s)
		return w
	}

	w := WideURI{
		Scheme: u.Scheme,
		Authority: WideAuthority{
			UserInfo: units(u.Authority.UserInfo),
			Host:     units(u.Authority.Host),
			Port:     u.Authority.Port,
		},
		Fragment:     units(u.Fragment),
		Tail:         units(u.Tail),
		QueryPart:    units(u.QueryPart),
		explicitPort: u.explicitPort,
	}
	for _, segment := range u.Path {
		w.Path = append(w.Path, units(segment))
	}
	for k, v := range u.Query.All() {
		w.Query.Set(units(k), units(v))
	}
	if err != nil {
		return WideURI{}, err
	}
	return w, nil
}

// MarshalJSON implements the json.Marshaler interface. JSON text is UTF-8,
// so the URI is transcoded with Narrow and encoded like a URI.
func (u WideURI) MarshalJSON() ([]byte, error) {
	n, err := u.Narrow()
	if err != nil {
		return nil, err
	}
	return json.Marshal(n)
}
