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

import "strings"

// outputBuffer is the sink the serializer and the escaper write into.
// This abstraction lets the same writing code produce either a Go string
// (stringOutputBuffer) or UTF-16 code units (wideOutputBuffer).
type outputBuffer interface {
	// writeASCII appends an ASCII-only string to the buffer.
	writeASCII(s string)
	// writeByte appends a single ASCII byte to the buffer.
	writeByte(c byte)
}

// stringOutputBuffer is an implementation of outputBuffer that uses a
// strings.Builder to efficiently construct the output string.
type stringOutputBuffer struct {
	builder *strings.Builder
}

// writeASCII appends s to the underlying strings.Builder.
func (b *stringOutputBuffer) writeASCII(s string) { b.builder.WriteString(s) }

// writeByte appends c to the underlying strings.Builder.
func (b *stringOutputBuffer) writeByte(c byte) { b.builder.WriteByte(c) }

// writeString appends arbitrary UTF-8 text to the underlying strings.Builder.
func (b *stringOutputBuffer) writeString(s string) { b.builder.WriteString(s) }

// string returns the complete content of the buffer as a string.
func (b *stringOutputBuffer) string() string { return b.builder.String() }

// wideOutputBuffer is an implementation of outputBuffer that accumulates
// UTF-16 code units.
type wideOutputBuffer struct {
	units []uint16
}

// writeASCII widens each byte of s to one code unit.
func (b *wideOutputBuffer) writeASCII(s string) {
	for i := range len(s) {
		b.units = append(b.units, uint16(s[i]))
	}
}

// writeByte widens c to one code unit.
func (b *wideOutputBuffer) writeByte(c byte) { b.units = append(b.units, uint16(c)) }

// writeUnits appends UTF-16 code units verbatim.
func (b *wideOutputBuffer) writeUnits(u []uint16) { b.units = append(b.units, u...) }

// content returns the accumulated code units.
func (b *wideOutputBuffer) content() []uint16 { return b.units }
