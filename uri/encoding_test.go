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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"slices"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty", input: "", expected: ""},
		{name: "Space", input: "a b", expected: "a%20b"},
		{name: "Unreserved pass through", input: "AZaz09-._~", expected: "AZaz09-._~"},
		{name: "Delimiters", input: "/?#&=", expected: "%2F%3F%23%26%3D"},
		{name: "Percent", input: "100%", expected: "100%25"},
		{name: "Two-byte UTF-8", input: "é", expected: "%C3%A9"},
		{name: "Four-byte UTF-8", input: "\U0001F600", expected: "%F0%9F%98%80"},
		{name: "Control", input: "\x00\x7f", expected: "%00%7F"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Encode(tc.input); got != tc.expected {
				t.Errorf("Encode(%q) = %q, want %q", tc.input, got, tc.expected)
			}
			if got := narrow(EncodeWide(wide(tc.input))); got != tc.expected {
				t.Errorf("EncodeWide(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestEncode_OutputAlphabet(t *testing.T) {
	var all strings.Builder
	for c := range 256 {
		all.WriteByte(byte(c))
	}
	for _, c := range []byte(Encode(all.String())) {
		if !isUnreserved(c) && c != '%' {
			t.Fatalf("Encode produced the reserved byte %q", c)
		}
	}
}

func TestEncodeWide_UnpairedSurrogate(t *testing.T) {
	got := narrow(EncodeWide([]uint16{'a', 0xD800, 'b'}))
	if got != "a%EF%BF%BDb" {
		t.Errorf("EncodeWide() = %q, want a%%EF%%BF%%BDb", got)
	}
}

func TestUTF16Transcoding(t *testing.T) {
	units, err := EncodeUTF16("\U0001F600")
	if err != nil {
		t.Fatalf("EncodeUTF16() returned an error: %v", err)
	}
	if !slices.Equal(units, []uint16{0xD83D, 0xDE00}) {
		t.Errorf("EncodeUTF16() = %X, want [D83D DE00]", units)
	}

	for _, s := range []string{"", "plain", "exämple", "\U0001F600 ok"} {
		units, err := EncodeUTF16(s)
		if err != nil {
			t.Fatalf("EncodeUTF16(%q) returned an error: %v", s, err)
		}
		if !slices.Equal(units, wide(s)) {
			t.Errorf("EncodeUTF16(%q) = %X, want %X", s, units, wide(s))
		}
		back, err := DecodeUTF16(units)
		if err != nil {
			t.Fatalf("DecodeUTF16() returned an error: %v", err)
		}
		if back != s {
			t.Errorf("DecodeUTF16(EncodeUTF16(%q)) = %q", s, back)
		}
	}
}
