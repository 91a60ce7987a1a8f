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
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// param locates one key/value pair of a query string.
type param struct {
	key   span
	value span
}

// splitParams splits [from, to) on '&' and every section on its first '='.
// A section without '=' has an empty value. Empty sections and sections
// with an empty key are skipped.
func splitParams[S codeUnits](s S, from, to int) []param {
	sections := fields(s, '&', from, to)
	params := make([]param, 0, len(sections))
	for _, sec := range sections {
		p := param{key: sec, value: span{start: sec.end, end: sec.end}}
		if eq := indexFrom(s, '=', sec.start, sec.end); eq >= 0 {
			p.key.end = eq
			p.value = span{start: eq + 1, end: sec.end}
		}
		if p.key.empty() {
			continue
		}
		params = append(params, p)
	}
	return params
}

// Query is an ordered string-to-string map of query parameters.
// Keys are unique; setting an existing key replaces its value but keeps its
// original position. The zero value is an empty query ready to use.
type Query struct {
	keys   []string
	values map[string]string
}

// SplitQuery splits a query string such as "a=1&b&c=" into its parameters.
// Each '&'-separated section is split on its first '='; a missing value is
// stored as "". Empty sections are skipped and, for repeated keys, the last
// value wins.
func SplitQuery(query string) Query {
	return splitQuerySpan(query, span{start: 0, end: len(query)})
}

// splitQuerySpan splits the part of s covered by sp.
func splitQuerySpan(s string, sp span) Query {
	var q Query
	for _, p := range splitParams(narrowInput(s), sp.start, sp.end) {
		q.Set(p.key.of(s), p.value.of(s))
	}
	return q
}

// Set stores value under key.
func (q *Query) Set(key, value string) {
	if q.values == nil {
		q.values = make(map[string]string)
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (q Query) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

// Has reports whether key is present.
func (q Query) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

// Len returns the number of distinct keys.
func (q Query) Len() int {
	return len(q.keys)
}

// Keys returns the keys in insertion order.
func (q Query) Keys() []string {
	return slices.Clone(q.keys)
}

// All iterates over the parameters in insertion order.
func (q Query) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range q.keys {
			if !yield(k, q.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the parameters as a plain map.
func (q Query) Map() map[string]string {
	m := make(map[string]string, len(q.keys))
	for k, v := range q.All() {
		m[k] = v
	}
	return m
}

// Equal reports whether both queries hold the same parameters in the same order.
func (q Query) Equal(other Query) bool {
	if !slices.Equal(q.keys, other.keys) {
		return false
	}
	for _, k := range q.keys {
		if q.values[k] != other.values[k] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the query as a JSON object whose members follow the
// insertion order.
func (q Query) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(q.values[k])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of strings, keeping the member order.
func (q *Query) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*q = Query{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &kindError{message: "Expected a JSON object for the query"}
	}
	var parsed Query
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		parsed.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*q = parsed
	return nil
}

// WideParam is one UTF-16 query parameter.
type WideParam struct {
	Key   []uint16
	Value []uint16
}

// WideQuery is the UTF-16 counterpart of Query. It keeps the same
// ordering and last-value-wins rules.
type WideQuery struct {
	params []WideParam
}

// SplitQueryWide is the UTF-16 counterpart of SplitQuery.
func SplitQueryWide(query []uint16) WideQuery {
	return splitQuerySpanWide(query, span{start: 0, end: len(query)})
}

// splitQuerySpanWide splits the part of s covered by sp.
func splitQuerySpanWide(s []uint16, sp span) WideQuery {
	var q WideQuery
	for _, p := range splitParams(wideInput(s), sp.start, sp.end) {
		q.Set(p.key.ofWide(s), p.value.ofWide(s))
	}
	return q
}

// Set stores value under key.
func (q *WideQuery) Set(key, value []uint16) {
	for i := range q.params {
		if slices.Equal(q.params[i].Key, key) {
			q.params[i].Value = value
			return
		}
	}
	q.params = append(q.params, WideParam{Key: key, Value: value})
}

// Get returns the value stored under key and whether the key is present.
func (q WideQuery) Get(key []uint16) ([]uint16, bool) {
	for _, p := range q.params {
		if slices.Equal(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

// Len returns the number of distinct keys.
func (q WideQuery) Len() int {
	return len(q.params)
}

// All iterates over the parameters in insertion order.
func (q WideQuery) All() iter.Seq2[[]uint16, []uint16] {
	return func(yield func([]uint16, []uint16) bool) {
		for _, p := range q.params {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
