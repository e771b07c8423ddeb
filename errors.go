// SPDX-License-Identifier: EPL-2.0

package loopfont

import "errors"

// ErrUnsupportedFormat indicates a file extension no decoder is registered for.
var ErrUnsupportedFormat = errors.New("unsupported audio format")
