// SPDX-License-Identifier: EPL-2.0

package selection

import (
	"errors"
	"fmt"
)

// ErrInvalidOffset indicates a loop start or end that is not a non-negative integer.
var ErrInvalidOffset = errors.New("invalid loop offset")

// ParseError locates a bad line in a selection file.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("selection line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
