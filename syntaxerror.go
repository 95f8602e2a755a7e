// SPDX-FileCopyrightText: 2024 NOI Techpark <digital@noi.bz.it>
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package uriref

import "fmt"

// SyntaxError is the only error kind Parse returns. There is deliberately no
// finer taxonomy: whether the input broke the delimiter ordering, carried a
// bad percent-escape or a bare reserved character, the whole reference is
// rejected and the caller treats it as one failure. The message exists for
// logs and test output, not for dispatch.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return "uriref: " + e.Message
}

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}
