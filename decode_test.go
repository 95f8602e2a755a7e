// SPDX-FileCopyrightText: 2024 NOI Techpark <digital@noi.bz.it>
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package uriref

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeComponent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		allowed  string
		expected string
		wantErr  bool
	}{
		{"plain text copied verbatim", "abcABC123-._~", pathAllowed, "abcABC123-._~", false},
		{"empty input", "", pathAllowed, "", false},
		{"uppercase escape", "a%2Fb", pathAllowed, "a/b", false},
		{"lowercase escape", "a%2fb", pathAllowed, "a/b", false},
		{"space escape", "frag%20ment", fragmentAllowed, "frag ment", false},
		{"multi-byte utf-8 escape", "caf%C3%A9", pathAllowed, "café", false},
		{"high byte decodes to the raw byte", "%80", pathAllowed, "\x80", false},
		{"raw utf-8 copied through", "café", pathAllowed, "café", false},
		{"decoded percent stays literal", "100%25", pathAllowed, "100%", false},
		{"decoded reserved char not re-checked", "%3F%23", fragmentAllowed, "?#", false},
		{"path keeps slash and colon", "/a/b:c", pathAllowed, "/a/b:c", false},
		{"path rejects other reserved", "/a&b", pathAllowed, "", true},
		{"path rejects at sign", "/a@b", pathAllowed, "", true},
		{"path rejects equals", "/a=b", pathAllowed, "", true},
		{"fragment rejects slash", "a/b", fragmentAllowed, "", true},
		{"fragment rejects colon", "a:b", fragmentAllowed, "", true},
		{"query allow-set admits all reserved", reservedChars, queryAllowed, reservedChars, false},
		{"truncated escape bare percent", "%", pathAllowed, "", true},
		{"truncated escape one digit", "abc%A", pathAllowed, "", true},
		{"invalid hex pair", "%GZ", pathAllowed, "", true},
		{"invalid second hex digit", "%2X", pathAllowed, "", true},
		{"error after valid prefix", "ok%2Fthen%", pathAllowed, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeComponent(tt.raw, tt.allowed)
			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, &SyntaxError{}, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Every byte value round-trips through its %XX spelling, upper- or lowercase.
func TestDecodeComponentRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		upper := fmt.Sprintf("%%%02X", b)
		lower := fmt.Sprintf("%%%02x", b)

		// A one-byte string, not string(rune(b)): the decoder emits raw
		// bytes, and for b >= 0x80 the rune conversion would yield the
		// two-byte UTF-8 encoding instead.
		want := string([]byte{byte(b)})

		got, err := decodeComponent(upper, fragmentAllowed)
		require.NoError(t, err, "escape %s", upper)
		assert.Equal(t, want, got, "escape %s", upper)

		got, err = decodeComponent(lower, fragmentAllowed)
		require.NoError(t, err, "escape %s", lower)
		assert.Equal(t, want, got, "escape %s", lower)
	}
}

func TestIsReservedChar(t *testing.T) {
	for i := 0; i < len(reservedChars); i++ {
		assert.True(t, isReservedChar(reservedChars[i]), "char %q", reservedChars[i])
	}
	for _, c := range []byte("aZ0-._~ %+\"") {
		assert.False(t, isReservedChar(c), "char %q", c)
	}
}
