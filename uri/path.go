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

// SplitPath splits a slash-delimited path into its segments. Empty segments
// produced by leading, trailing or repeated slashes are dropped, so "/a//b/"
// yields ["a", "b"] and "/" yields nothing.
func SplitPath(path string) []string {
	return splitPathSpan(path, span{start: 0, end: len(path)})
}

// SplitPathWide is the UTF-16 counterpart of SplitPath.
func SplitPathWide(path []uint16) [][]uint16 {
	return splitPathSpanWide(path, span{start: 0, end: len(path)})
}

// splitPathSpan splits the part of s covered by sp.
func splitPathSpan(s string, sp span) []string {
	tokens := fields(narrowInput(s), '/', sp.start, sp.end)
	if len(tokens) == 0 {
		return nil
	}
	segments := make([]string, len(tokens))
	for i, t := range tokens {
		segments[i] = t.of(s)
	}
	return segments
}

// splitPathSpanWide splits the part of s covered by sp.
func splitPathSpanWide(s []uint16, sp span) [][]uint16 {
	tokens := fields(wideInput(s), '/', sp.start, sp.end)
	if len(tokens) == 0 {
		return nil
	}
	segments := make([][]uint16, len(tokens))
	for i, t := range tokens {
		segments[i] = t.ofWide(s)
	}
	return segments
}
