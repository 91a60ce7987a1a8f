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
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestKindError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *kindError
		expected string
	}{
		{
			name:     "Message only",
			err:      &kindError{message: "base message"},
			expected: "base message",
		},
		{
			name:     "Message with details",
			err:      &kindError{message: "unknown scheme", details: "gopher"},
			expected: "unknown scheme 'gopher'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKindError_Unwrap(t *testing.T) {
	err := &kindError{kind: ErrUnsupportedScheme, message: "x"}
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Error("kindError should unwrap to its kind")
	}
	if errors.Unwrap(&kindError{message: "x"}) != nil {
		t.Error("kindError without a kind should unwrap to nil")
	}
}

func TestNewParseError(t *testing.T) {
	if newParseError(nil) != nil {
		t.Error("newParseError(nil) should return nil")
	}

	err := newParseError(unsupportedSchemeError("ftp://x"))
	if got, want := err.Error(), "URI parse error: Expected an http:// or https:// endpoint instead of 'ftp://x'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Error("ParseError should wrap ErrUnsupportedScheme")
	}
	var pe *ParseError
	if !errors.As(error(err), &pe) || pe.Message == "" {
		t.Error("errors.As should find the ParseError")
	}
}

func TestUnsupportedSchemeError(t *testing.T) {
	if got := unsupportedSchemeError("").Error(); !strings.Contains(got, "empty string") {
		t.Errorf("empty input message = %q", got)
	}

	long := "gopher://" + strings.Repeat("a", 100)
	err := unsupportedSchemeError(long)
	if len(err.details) != maxDetailLength+len("...") {
		t.Errorf("len(details) = %d, want %d", len(err.details), maxDetailLength+3)
	}
	if !strings.HasPrefix(long, strings.TrimSuffix(err.details, "...")) {
		t.Errorf("details = %q is not a prefix of the input", err.details)
	}
}

func TestTruncateDetails(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short input is kept",
			input:    "ftp://x",
			expected: "ftp://x",
		},
		{
			name:     "Exactly the limit is kept",
			input:    strings.Repeat("a", maxDetailLength),
			expected: strings.Repeat("a", maxDetailLength),
		},
		{
			name:     "ASCII is cut at the limit",
			input:    strings.Repeat("a", maxDetailLength+1),
			expected: strings.Repeat("a", maxDetailLength) + "...",
		},
		{
			// Byte 32 is the second byte of the twelfth "é".
			name:     "Multi-byte rune is not split",
			input:    "gopher://" + strings.Repeat("é", 20),
			expected: "gopher://" + strings.Repeat("é", 11) + "...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateDetails(tt.input)
			if got != tt.expected {
				t.Errorf("truncateDetails(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateDetails(%q) = %q is not valid UTF-8", tt.input, got)
			}
		})
	}

	err := newParseError(unsupportedSchemeError("gopher://" + strings.Repeat("\U0001F600", 10)))
	if !utf8.ValidString(err.Error()) {
		t.Errorf("Error() = %q is not valid UTF-8", err.Error())
	}
}
