// SPDX-License-Identifier: EPL-2.0

// Package riff decodes and encodes RIFF containers as an in-memory chunk
// tree, the way a SoundFont (format "sfbk") is patched: decode the whole
// file, replace one payload, encode the whole tree again.
//
// The tree has two kinds of chunk. A Leaf keeps its payload as raw bytes. A
// List ("LIST" chunk) carries a type tag such as "INFO", "sdta" or "pdta" and
// one level of sub-chunks kept in an ordered map; nested lists are not
// descended into.
//
// Size fields are never trusted on encode: every size is derived from the
// payload being written. Decode(Encode(t)) is structurally equal to t for
// any decoded tree.
//
// By default chunks are packed without the RIFF word-alignment pad byte,
// which reproduces files written by tools that never padded. Set
// Options.Pad to read and write standard, padded containers.
package riff
