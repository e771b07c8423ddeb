// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("source reports no channels")
	ErrNoProgress        = errors.New("source returned no samples and no error")
)
