// SPDX-FileCopyrightText: 2024 NOI Techpark <digital@noi.bz.it>
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package uriref

import "strings"

// reservedChars are the 17 characters with structural meaning in URI syntax
// (RFC 3986 gen-delims plus sub-delims, minus '+'). They must be
// percent-encoded unless the component's allow-set lists them.
const reservedChars = ":/?#[]@!$&'()*,;="

// Allow-sets handed to decodeComponent. A path keeps literal '/' and ':'
// unescaped; a fragment keeps nothing; query keys and values keep all of
// them, because the whole raw query already passed its own charset check
// before it was split into pairs.
const (
	pathAllowed     = "/:"
	fragmentAllowed = ""
	queryAllowed    = reservedChars
)

func isReservedChar(c byte) bool {
	return strings.IndexByte(reservedChars, c) >= 0
}

// decodeComponent resolves percent-escapes in raw in a single forward pass.
// '%' must be followed by exactly two hex digits (either case), which decode
// to the byte they spell; a reserved character outside allowed fails the
// scan. All other bytes — including the bytes of multi-byte UTF-8 sequences —
// are copied verbatim. The decoded output is never re-scanned, so a decoded
// '%' stays a literal '%'.
func decodeComponent(raw string, allowed string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '%':
			if i+2 >= len(raw) {
				return "", syntaxErrorf("truncated percent-escape at offset %d", i)
			}
			hi, lo := raw[i+1], raw[i+2]
			if !isHexChar(hi) || !isHexChar(lo) {
				return "", syntaxErrorf("invalid percent-escape %q", raw[i:i+3])
			}
			buf.WriteByte(unhex(hi)<<4 | unhex(lo))
			i += 2
		case isReservedChar(c) && strings.IndexByte(allowed, c) < 0:
			return "", syntaxErrorf("reserved character %q must be percent-encoded", c)
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String(), nil
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
