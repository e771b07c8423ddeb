// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis recordings through
// github.com/jfreymuth/oggvorbis.
package vorbis
