// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"errors"
	"fmt"
)

// ErrNotRIFF indicates Probe did not find a RIFF header.
var ErrNotRIFF = errors.New("not a RIFF container")

// FormatError reports a malformed container, or a tree that cannot be
// written as one. Offset is the byte offset in the input (decode) or in the
// output being built (encode).
type FormatError struct {
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("riff: %s at offset %d", e.Reason, e.Offset)
}
