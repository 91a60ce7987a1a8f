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

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isASCIIDigit checks if a code unit is an ASCII digit.
func isASCIIDigit(c uint16) bool {
	return '0' <= c && c <= '9'
}

// isUnreserved checks if a byte is in the unreserved set as defined by RFC 3986.
// These are the only bytes Encode leaves untouched.
func isUnreserved(c byte) bool {
	return isASCIILetter(c) || ('0' <= c && c <= '9') || c == '-' || c == '.' || c == '_' || c == '~'
}
