// SPDX-License-Identifier: EPL-2.0

package loop

import "errors"

var (
	// ErrNotFound indicates the buffer has no room for a loop under the
	// configured fractions. It is a normal outcome for short notes.
	ErrNotFound = errors.New("no loop candidate found")

	// ErrInvalidConfig indicates a fraction outside [0, 1] or a negative worker count
	ErrInvalidConfig = errors.New("invalid loop search configuration")
)
