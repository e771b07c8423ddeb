// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF recordings into an audio.Source.
//
// Decoding is done by github.com/go-audio/aiff. Integer PCM at 8, 16, 24 and
// 32 bits is accepted and normalized to [-1.0, 1.0). Inputs that cannot seek
// are read into memory first.
package aiff
