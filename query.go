// SPDX-FileCopyrightText: 2024 NOI Techpark <digital@noi.bz.it>
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package uriref

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// decodeQuery turns a raw query string into insertion-ordered key/value
// pairs. An empty raw query yields an empty map. Each '&'-delimited token
// must contain exactly one '=' — an empty token (leading, trailing or
// doubled '&') contains zero and therefore fails. A key seen twice keeps its
// original position but takes the last value.
func decodeQuery(raw string) (*orderedmap.OrderedMap[string, string], error) {
	params := orderedmap.New[string, string]()
	if raw == "" {
		return params, nil
	}

	// The charset check runs over the whole raw query up front. The per-pair
	// decode below then accepts any reserved byte, so percent-encoded
	// delimiters land in keys and values verbatim without re-validation.
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; isReservedChar(c) && c != '&' && c != '=' {
			return nil, syntaxErrorf("reserved character %q in query must be percent-encoded", c)
		}
	}

	for _, token := range strings.Split(raw, "&") {
		if strings.Count(token, "=") != 1 {
			return nil, syntaxErrorf("query parameter %q must contain exactly one '='", token)
		}
		rawKey, rawValue, _ := strings.Cut(token, "=")
		key, err := decodeComponent(rawKey, queryAllowed)
		if err != nil {
			return nil, err
		}
		value, err := decodeComponent(rawValue, queryAllowed)
		if err != nil {
			return nil, err
		}
		params.Set(key, value)
	}

	return params, nil
}
