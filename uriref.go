// SPDX-FileCopyrightText: 2024 NOI Techpark <digital@noi.bz.it>
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package uriref parses a URI reference of the form path?query#fragment into
// decoded components. It covers the request-target an HTTP parser hands over
// after stripping method and version, so scheme and authority are out of
// scope by design, as are encoding, reference resolution and normalization.
//
//	ref, err := uriref.Parse("/src/dict1/dict2/file?param1=value&param2=value#fragment")
//	if err != nil {
//		// not a valid reference, reject the request
//	}
//	ref.Path()                        // "/src/dict1/dict2/file"
//	ref.Fragment()                    // "fragment"
//	ref.QueryParams().Value("param1") // "value"
package uriref

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Reference is the decoded result of a successful Parse. Percent-escapes are
// resolved in all three components; query parameters keep the order of their
// first appearance in the raw query, with later duplicates overwriting
// earlier values.
type Reference struct {
	path     string
	fragment string
	params   *orderedmap.OrderedMap[string, string]
}

// Parse splits raw at the first '?' and first '#', validates each component
// against its reserved-character rules and resolves percent-escapes. Any
// violation returns a nil Reference and a *SyntaxError; partially decoded
// state is never exposed. Parse keeps no state between calls and is safe for
// concurrent use.
func Parse(raw string) (*Reference, error) {
	rawPath, rawQuery, rawFragment, err := split(raw)
	if err != nil {
		return nil, err
	}

	path, err := decodeComponent(rawPath, pathAllowed)
	if err != nil {
		return nil, err
	}
	fragment, err := decodeComponent(rawFragment, fragmentAllowed)
	if err != nil {
		return nil, err
	}
	params, err := decodeQuery(rawQuery)
	if err != nil {
		return nil, err
	}

	return &Reference{path: path, fragment: fragment, params: params}, nil
}

// split partitions raw into path, query and fragment substrings. Only the
// first '?' and first '#' are structural; any later occurrence stays in the
// substring it falls into and is rejected there by the component's own
// charset check. A '?' after the '#' would put the query inside the
// fragment, which the grammar forbids.
func split(raw string) (rawPath, rawQuery, rawFragment string, err error) {
	q := strings.IndexByte(raw, '?')
	h := strings.IndexByte(raw, '#')

	switch {
	case q >= 0 && h >= 0:
		if q > h {
			return "", "", "", syntaxErrorf("query must precede fragment")
		}
		return raw[:q], raw[q+1 : h], raw[h+1:], nil
	case q >= 0:
		return raw[:q], raw[q+1:], "", nil
	case h >= 0:
		return raw[:h], "", raw[h+1:], nil
	default:
		return raw, "", "", nil
	}
}

// Path returns the decoded path. Literal '/' and ':' survive unescaped; a
// '/' decoded from %2F is ordinary path text, indistinguishable here from a
// structural separator.
func (r *Reference) Path() string {
	return r.path
}

// Fragment returns the decoded fragment.
func (r *Reference) Fragment() string {
	return r.fragment
}

// QueryParams returns the decoded query parameters in first-appearance
// order. The map is owned by the Reference; callers sharing a Reference
// across goroutines must not mutate it.
func (r *Reference) QueryParams() *orderedmap.OrderedMap[string, string] {
	return r.params
}
