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
	"fmt"
	"unicode/utf8"
)

// ErrUnsupportedScheme is reported when an endpoint does not start with
// "http://" or "https://", the only prefixes this package decomposes.
// Parse never returns it; it is surfaced by ParseEndpoint and MustParse.
var ErrUnsupportedScheme = errors.New("unsupported scheme")

// ErrMalformedComponents is reported when a URI assembled from separate
// components would not split back into the same components.
var ErrMalformedComponents = errors.New("malformed components")

// ParseError is the error type returned by the checked entry points of this
// package. It contains a descriptive message and may wrap a more specific error.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a new ParseError from a kindError, wrapping the
// sentinel the kindError carries. It returns nil if the input error is nil.
func newParseError(err *kindError) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: err.kind}
}

// kindError carries the detail of a failure together with the sentinel it
// belongs to.
type kindError struct {
	kind    error
	message string
	details string
}

// Error formats the message with the details, if any.
func (e *kindError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s '%s'", e.message, e.details)
	}
	return e.message
}

// Unwrap returns the sentinel error.
func (e *kindError) Unwrap() error {
	return e.kind
}

// maxDetailLength bounds how much of the offending input is echoed back.
const maxDetailLength = 32

// unsupportedSchemeError describes an endpoint that cannot be decomposed.
func unsupportedSchemeError(endpoint string) *kindError {
	if endpoint == "" {
		return &kindError{kind: ErrUnsupportedScheme, message: "Expected an http:// or https:// endpoint, got an empty string"}
	}
	return &kindError{
		kind:    ErrUnsupportedScheme,
		message: "Expected an http:// or https:// endpoint instead of",
		details: truncateDetails(endpoint),
	}
}

// truncateDetails shortens s to at most maxDetailLength bytes, cutting on a
// rune boundary, and marks the cut with "...".
func truncateDetails(s string) string {
	if len(s) <= maxDetailLength {
		return s
	}
	cut := maxDetailLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
