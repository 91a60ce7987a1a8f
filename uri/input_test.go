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
	"reflect"
	"testing"
)

func TestHasPrefix(t *testing.T) {
	testCases := []struct {
		input    string
		prefix   string
		expected bool
	}{
		{input: "http://a", prefix: "http://", expected: true},
		{input: "https://a", prefix: "http://", expected: false},
		{input: "http:/", prefix: "http://", expected: false},
		{input: "", prefix: "", expected: true},
		{input: "HTTP://a", prefix: "http://", expected: false},
	}
	for _, tc := range testCases {
		if got := hasPrefix(narrowInput(tc.input), tc.prefix); got != tc.expected {
			t.Errorf("hasPrefix(%q, %q) = %v, want %v", tc.input, tc.prefix, got, tc.expected)
		}
		if got := hasPrefix(wideInput(wide(tc.input)), tc.prefix); got != tc.expected {
			t.Errorf("hasPrefix(wide %q, %q) = %v, want %v", tc.input, tc.prefix, got, tc.expected)
		}
	}
}

func TestIndexFrom(t *testing.T) {
	s := narrowInput("a/b/c")
	if got := indexFrom(s, '/', 0, s.size()); got != 1 {
		t.Errorf("indexFrom = %d, want 1", got)
	}
	if got := indexFrom(s, '/', 2, s.size()); got != 3 {
		t.Errorf("indexFrom from 2 = %d, want 3", got)
	}
	if got := indexFrom(s, '/', 0, 1); got != -1 {
		t.Errorf("indexFrom bounded = %d, want -1", got)
	}
	if got := lastIndexFrom(s, '/', 0, s.size()); got != 3 {
		t.Errorf("lastIndexFrom = %d, want 3", got)
	}
	if got := lastIndexFrom(s, '/', 0, 3); got != 1 {
		t.Errorf("lastIndexFrom bounded = %d, want 1", got)
	}
	if got := lastIndexFrom(s, '#', 0, s.size()); got != -1 {
		t.Errorf("lastIndexFrom missing = %d, want -1", got)
	}
}

func TestFields(t *testing.T) {
	s := narrowInput("//a//bc/")
	got := fields(s, '/', 0, s.size())
	want := []span{{start: 2, end: 3}, {start: 5, end: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fields() = %v, want %v", got, want)
	}
	if got := fields(s, '/', 0, 2); got != nil {
		t.Errorf("fields() over separators only = %v, want nil", got)
	}
}

// A non-ASCII character never produces an ASCII code unit, so scanning the
// wide form finds the same delimiters as the narrow one, at shifted indexes.
func TestWideInput_NonASCII(t *testing.T) {
	w := wideInput(wide("é/\U0001F600/x"))
	if got := indexFrom(w, '/', 0, w.size()); got != 1 {
		t.Errorf("indexFrom = %d, want 1", got)
	}
	if got := lastIndexFrom(w, '/', 0, w.size()); got != 4 {
		t.Errorf("lastIndexFrom = %d, want 4", got)
	}
}

func TestSpan(t *testing.T) {
	sp := span{start: 1, end: 3}
	if sp.empty() {
		t.Error("span{1,3} should not be empty")
	}
	if !(span{start: 2, end: 2}).empty() {
		t.Error("span{2,2} should be empty")
	}
	if got := sp.of("abcd"); got != "bc" {
		t.Errorf("of() = %q, want bc", got)
	}
	w := sp.ofWide([]uint16{'a', 'b', 'c', 'd'})
	if cap(w) != 2 {
		t.Errorf("cap(ofWide()) = %d, want 2", cap(w))
	}
	if got := (span{}).ofWide([]uint16{'a'}); got != nil {
		t.Errorf("empty ofWide() = %v, want nil", got)
	}
}
