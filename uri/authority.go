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
	"errors"
	"net"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ErrNoRegisteredDomain is returned by RegisteredDomain when the host is
// empty, an IP literal, or itself a public suffix.
var ErrNoRegisteredDomain = errors.New("host has no registered domain")

// portModulus is the number of values a 16-bit port can take.
const portModulus = 1 << 16

// Authority is the "userinfo@host:port" part of an endpoint.
// An empty UserInfo means no userinfo was present. A Port of 0 means the
// port is unspecified.
type Authority struct {
	UserInfo string `json:"userInfo"`
	Host     string `json:"host"`
	Port     uint16 `json:"port"`
}

// String rebuilds the authority as "{userInfo@}{host}[:{port}]".
// The port is written only when it is non-zero.
func (a Authority) String() string {
	var b strings.Builder
	out := &stringOutputBuffer{builder: &b}
	if a.UserInfo != "" {
		out.writeString(a.UserInfo)
		out.writeByte('@')
	}
	out.writeString(a.Host)
	if a.Port > 0 {
		writePort(out, a.Port)
	}
	return out.string()
}

// HostPort returns the host followed by ":port" when the port is non-zero.
func (a Authority) HostPort() string {
	if a.Port == 0 {
		return a.Host
	}
	return a.Host + ":" + strconv.Itoa(int(a.Port))
}

// RegisteredDomain returns the effective top-level domain plus one label of
// the host (for example "msn.com" for "search.msn.com"), as given by the
// public suffix list.
func (a Authority) RegisteredDomain() (string, error) {
	host := strings.ToLower(strings.TrimSuffix(a.Host, "."))
	if host == "" || strings.HasPrefix(host, "[") || net.ParseIP(host) != nil {
		return "", ErrNoRegisteredDomain
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", errors.Join(ErrNoRegisteredDomain, err)
	}
	return domain, nil
}

// WideAuthority is the UTF-16 counterpart of Authority.
type WideAuthority struct {
	UserInfo []uint16
	Host     []uint16
	Port     uint16
}

// Units rebuilds the authority as UTF-16 code units, following the same
// rules as Authority.String.
func (a WideAuthority) Units() []uint16 {
	out := &wideOutputBuffer{}
	if len(a.UserInfo) > 0 {
		out.writeUnits(a.UserInfo)
		out.writeByte('@')
	}
	out.writeUnits(a.Host)
	if a.Port > 0 {
		writePort(out, a.Port)
	}
	return out.content()
}

// writePort writes ":port" in decimal.
func writePort(out outputBuffer, port uint16) {
	out.writeByte(':')
	out.writeASCII(strconv.Itoa(int(port)))
}

// portSeparator returns the index of the ':' that separates host from port
// in [from, to), or -1. For a bracketed IP literal the search starts after
// the closing bracket so the colons of an IPv6 address are not mistaken for
// it. A literal missing its closing bracket has no port.
func portSeparator[S codeUnits](s S, from, to int) int {
	if from < to && s.at(from) == '[' {
		closing := indexFrom(s, ']', from, to)
		if closing < 0 {
			return -1
		}
		from = closing + 1
	}
	return indexFrom(s, ':', from, to)
}

// parsePort reads the decimal port in [from, to). Values above 65535 wrap
// modulo 65536, the way a 16-bit unsigned integer would. It reports false
// when the range is empty or holds anything other than ASCII digits, in
// which case the caller keeps the scheme's default port.
func parsePort[S codeUnits](s S, from, to int) (uint16, bool) {
	if from >= to {
		return 0, false
	}
	var port uint32
	for i := from; i < to; i++ {
		c := s.at(i)
		if !isASCIIDigit(c) {
			return 0, false
		}
		port = (port*10 + uint32(c-'0')) % portModulus
	}
	return uint16(port), true
}
