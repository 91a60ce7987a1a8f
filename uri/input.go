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

// codeUnits is the read-only view of the input that the splitter scans.
// It is satisfied by narrowInput (the UTF-8 bytes of a Go string) and
// wideInput (UTF-16 code units). Every delimiter the splitter looks for is
// ASCII, and neither encoding produces an ASCII value inside a multi-unit
// sequence, so scanning code units is safe for both.
type codeUnits interface {
	narrowInput | wideInput
	// size returns the number of code units.
	size() int
	// at returns the code unit at index i.
	at(i int) uint16
}

// narrowInput is a string viewed as a sequence of bytes.
type narrowInput string

func (s narrowInput) size() int { return len(s) }
func (s narrowInput) at(i int) uint16 { return uint16(s[i]) }

// wideInput is a sequence of UTF-16 code units.
type wideInput []uint16

func (s wideInput) size() int { return len(s) }
func (s wideInput) at(i int) uint16 { return s[i] }

// span is a half-open range [start, end) of code units within the input.
type span struct {
	start int
	end   int
}

// empty reports whether the span covers no code units.
func (sp span) empty() bool {
	return sp.end <= sp.start
}

// of returns the part of a narrow input covered by the span.
func (sp span) of(s string) string {
	return s[sp.start:sp.end]
}

// ofWide returns the part of a wide input covered by the span. The capacity
// is capped so appending to the result never writes into the input.
func (sp span) ofWide(s []uint16) []uint16 {
	if sp.empty() {
		return nil
	}
	return s[sp.start:sp.end:sp.end]
}

// hasPrefix checks if the input starts with the given ASCII prefix.
func hasPrefix[S codeUnits](s S, prefix string) bool {
	if s.size() < len(prefix) {
		return false
	}
	for i := range len(prefix) {
		if s.at(i) != uint16(prefix[i]) {
			return false
		}
	}
	return true
}

// indexFrom returns the index of the first occurrence of c in [from, to),
// or -1 if it is not present.
func indexFrom[S codeUnits](s S, c byte, from, to int) int {
	for i := from; i < to; i++ {
		if s.at(i) == uint16(c) {
			return i
		}
	}
	return -1
}

// lastIndexFrom returns the index of the last occurrence of c in [from, to),
// or -1 if it is not present.
func lastIndexFrom[S codeUnits](s S, c byte, from, to int) int {
	for i := to - 1; i >= from; i-- {
		if s.at(i) == uint16(c) {
			return i
		}
	}
	return -1
}

// fields splits [from, to) on sep and returns the non-empty tokens in order.
func fields[S codeUnits](s S, sep byte, from, to int) []span {
	var out []span
	start := from
	for i := from; i <= to; i++ {
		if i < to && s.at(i) != uint16(sep) {
			continue
		}
		if i > start {
			out = append(out, span{start: start, end: i})
		}
		start = i + 1
	}
	return out
}
