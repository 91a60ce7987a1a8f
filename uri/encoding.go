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
	"encoding/binary"
	"strings"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const upperHex = "0123456789ABCDEF"

// escapeTable maps every byte to its escaped form. An empty entry means the
// byte is unreserved and is written as is. The table is built once and
// never modified.
var escapeTable = func() [256]string {
	var t [256]string
	for c := range 256 {
		b := byte(c)
		if isUnreserved(b) {
			continue
		}
		t[c] = string([]byte{'%', upperHex[b>>4], upperHex[b&0x0F]})
	}
	return t
}()

// Encode percent-encodes s for safe inclusion in a URI component. Every
// byte outside the RFC 3986 unreserved set (ALPHA, DIGIT, "-", ".", "_",
// "~") is written as "%XX"; non-ASCII characters are escaped byte by byte
// from their UTF-8 form. There is intentionally no decoding counterpart.
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	out := &stringOutputBuffer{builder: &b}
	for i := range len(s) {
		escapeByte(out, s[i])
	}
	return out.string()
}

// EncodeWide is the UTF-16 counterpart of Encode. The text is escaped from
// its UTF-8 form, so the result only holds ASCII code units. Unpaired
// surrogates are escaped as U+FFFD.
func EncodeWide(s []uint16) []uint16 {
	narrow, _ := DecodeUTF16(s) // invalid sequences are already replaced by U+FFFD.
	out := &wideOutputBuffer{units: make([]uint16, 0, len(narrow))}
	for i := range len(narrow) {
		escapeByte(out, narrow[i])
	}
	return out.content()
}

// escapeByte writes c, escaped if the table says so.
func escapeByte(out outputBuffer, c byte) {
	if esc := escapeTable[c]; esc != "" {
		out.writeASCII(esc)
		return
	}
	out.writeByte(c)
}

// utf16LE is the code-unit layout used to hand wide text to x/text.
var utf16LE = xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM)

// DecodeUTF16 transcodes UTF-16 code units to a UTF-8 string. Unpaired
// surrogates are replaced by U+FFFD.
func DecodeUTF16(s []uint16) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	raw := make([]byte, 2*len(s))
	for i, u := range s {
		binary.LittleEndian.PutUint16(raw[2*i:], u)
	}
	decoded, _, err := transform.Bytes(utf16LE.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// EncodeUTF16 transcodes a UTF-8 string to UTF-16 code units.
func EncodeUTF16(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	raw, _, err := transform.Bytes(utf16LE.NewEncoder(), []byte(s))
	if err != nil {
		return nil, err
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return units, nil
}
