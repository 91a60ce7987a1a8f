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

// layout holds the boundaries of every component found in an endpoint.
// It is produced by a single left-to-right scan and is independent of the
// text representation; Parse and ParseWide slice their own input with it.
type layout struct {
	scheme       Scheme
	userInfo     span
	host         span
	port         uint16
	explicitPort bool
	// tail covers path, query and fragment, starting at the first '/'
	// after the authority. It is empty for a bare authority.
	tail     span
	path     span
	query    span
	fragment span
}

// decompose scans s once and records where each component lives.
// It never fails: an input without a decomposable prefix yields a layout
// whose scheme is Unknown and whose spans are all empty.
func decompose[S codeUnits](s S) layout {
	var l layout
	var pos int
	switch {
	case hasPrefix(s, httpsPrefix):
		l.scheme, pos = WebHTTPS, len(httpsPrefix)
	case hasPrefix(s, httpPrefix):
		l.scheme, pos = WebHTTP, len(httpPrefix)
	default:
		return l
	}
	l.port = l.scheme.DefaultPort()

	n := s.size()
	if at := indexFrom(s, '@', pos, n); at >= 0 {
		l.userInfo = span{start: pos, end: at}
		pos = at + 1
	}

	slash := indexFrom(s, '/', pos, n)
	authorityEnd := n
	if slash >= 0 {
		authorityEnd = slash
	}

	l.host = span{start: pos, end: authorityEnd}
	if colon := portSeparator(s, pos, authorityEnd); colon >= 0 {
		l.host.end = colon
		if port, ok := parsePort(s, colon+1, authorityEnd); ok {
			l.port, l.explicitPort = port, true
		}
	}

	if slash < 0 {
		// Bare authority such as "http://example.com".
		return l
	}

	l.tail = span{start: slash, end: n}
	l.path = l.tail

	// The last '#' of the whole input binds the fragment to the outermost
	// URI even when the query embeds another URI with its own fragment.
	// A '#' before the tail only yields the fragment; it cannot bound the
	// path or the query.
	pathAndQueryEnd := n
	if hash := lastIndexFrom(s, '#', 0, n); hash >= 0 {
		l.fragment = span{start: hash + 1, end: n}
		if hash >= slash {
			pathAndQueryEnd = hash
			l.path.end = hash
		}
	}

	// The first '?' ends the path, even if a later path-looking token
	// carries its own '?'.
	if question := indexFrom(s, '?', slash, pathAndQueryEnd); question >= 0 {
		l.path.end = question
		l.query = span{start: question + 1, end: pathAndQueryEnd}
	}
	return l
}
