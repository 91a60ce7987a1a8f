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
	"strings"
)

// Scheme identifies the URI family an endpoint belongs to. Only WebHTTP and
// WebHTTPS are ever produced by the parser; the other tags exist so callers
// can label values they build themselves.
type Scheme int

// The zero value is Unknown so that an empty URI carries no scheme.
const (
	Unknown Scheme = iota
	WebHTTP
	WebHTTPS
	LDAP
	Mailto
	News
	Tel
	Telnet
	URN
)

const (
	httpPrefix  = "http://"
	httpsPrefix = "https://"

	httpDefaultPort  = 80
	httpsDefaultPort = 443
)

// schemeNames is indexed by Scheme. It is never written after init.
var schemeNames = [...]string{
	Unknown:  "",
	WebHTTP:  "http",
	WebHTTPS: "https",
	LDAP:     "ldap",
	Mailto:   "mailto",
	News:     "news",
	Tel:      "tel",
	Telnet:   "telnet",
	URN:      "urn",
}

// String returns the lowercase scheme name, or "" for Unknown and
// out-of-range values.
func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return ""
	}
	return schemeNames[s]
}

// DefaultPort returns the port implied by the scheme when none is written:
// 80 for http, 443 for https and 0 for everything else.
func (s Scheme) DefaultPort() uint16 {
	switch s {
	case WebHTTP:
		return httpDefaultPort
	case WebHTTPS:
		return httpsDefaultPort
	default:
		return 0
	}
}

// Decomposable reports whether the parser splits endpoints of this scheme
// into authority, path and query.
func (s Scheme) Decomposable() bool {
	return s == WebHTTP || s == WebHTTPS
}

// ParseScheme returns the Scheme named by name, ignoring case.
// Unrecognized names yield Unknown.
func ParseScheme(name string) Scheme {
	if name == "" {
		return Unknown
	}
	for i, n := range schemeNames {
		if strings.EqualFold(n, name) {
			return Scheme(i)
		}
	}
	return Unknown
}

// MarshalJSON encodes the scheme as its lowercase name, or null for Unknown.
func (s Scheme) MarshalJSON() ([]byte, error) {
	name := s.String()
	if name == "" {
		return []byte("null"), nil
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a scheme name or null. Names that are not part of
// the closed set are rejected.
func (s *Scheme) UnmarshalJSON(data []byte) error {
	var name *string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if name == nil || *name == "" {
		*s = Unknown
		return nil
	}
	parsed := ParseScheme(*name)
	if parsed == Unknown {
		return &kindError{kind: ErrUnsupportedScheme, message: "Unknown scheme name", details: *name}
	}
	*s = parsed
	return nil
}
