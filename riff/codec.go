// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"encoding/binary"
	"fmt"
	"math"
)

const headerSize = 8

// RiffID is the container magic.
var RiffID = ID("RIFF")

// Options adjusts the byte layout.
type Options struct {
	// Pad follows every odd-sized payload with a zero byte on encode and
	// skips that byte on decode.
	Pad bool
}

// Decode parses b with the default (unpadded) layout.
func Decode(b []byte) (*Tree, error) {
	return DecodeWithOptions(b, Options{})
}

// DecodeWithOptions parses a RIFF container. Top-level chunks are read until
// the declared container size is used up or the input ends, whichever comes
// first; bytes after the declared size are ignored. Sub-chunks are copied so
// the tree does not alias b.
func DecodeWithOptions(b []byte, opts Options) (*Tree, error) {
	if len(b) < headerSize {
		return nil, &FormatError{Offset: 0, Reason: "input shorter than a chunk header"}
	}
	if [4]byte(b[0:4]) != RiffID {
		return nil, &FormatError{Offset: 0, Reason: fmt.Sprintf("missing RIFF magic, found %q", b[0:4])}
	}
	if len(b) < headerSize+4 {
		return nil, &FormatError{Offset: headerSize, Reason: "missing format tag"}
	}

	declared := int64(binary.LittleEndian.Uint32(b[4:8]))
	end := int(min(headerSize+declared, int64(len(b))))

	t := &Tree{Format: [4]byte(b[8:12])}
	off := headerSize + 4

	for off < end {
		id, payload, next, err := readChunk(b, off, end, 0, opts)
		if err != nil {
			return nil, err
		}

		if id == ListID {
			l, err := decodeList(payload, off+headerSize, opts)
			if err != nil {
				return nil, err
			}
			t.Chunks = append(t.Chunks, l)
		} else {
			t.Chunks = append(t.Chunks, &Leaf{ID: id, Data: clone(payload)})
		}

		off = next
	}

	return t, nil
}

// readChunk reads the chunk header at off and returns its id, its payload,
// and the offset of the following chunk. The header must fit before limit;
// the payload may run to the end of b. Errors report offsets relative to
// base, the position of b in the whole input.
func readChunk(b []byte, off, limit, base int, opts Options) ([4]byte, []byte, int, error) {
	if limit-off < headerSize {
		return [4]byte{}, nil, 0, &FormatError{
			Offset: base + off,
			Reason: fmt.Sprintf("%d bytes left where a chunk header is required", limit-off),
		}
	}

	id := [4]byte(b[off : off+4])
	size := int64(binary.LittleEndian.Uint32(b[off+4 : off+8]))
	start := off + headerSize

	if size > int64(len(b)-start) {
		return id, nil, 0, &FormatError{
			Offset: base + off,
			Reason: fmt.Sprintf("chunk %q declares %d bytes, only %d remain", id[:], size, len(b)-start),
		}
	}

	next := start + int(size)
	if opts.Pad && size&1 == 1 && next < len(b) {
		next++
	}

	return id, b[start : start+int(size)], next, nil
}

// decodeList decodes a LIST payload found at offset base.
func decodeList(payload []byte, base int, opts Options) (*List, error) {
	if len(payload) < 4 {
		return nil, &FormatError{Offset: base, Reason: "LIST chunk shorter than its type tag"}
	}

	l := &List{ID: ListID, Type: [4]byte(payload[0:4]), Sub: &SubChunks{}}

	off := 4
	for off < len(payload) {
		id, data, next, err := readChunk(payload, off, len(payload), base, opts)
		if err != nil {
			return nil, err
		}

		l.Sub.Set(id, clone(data))
		off = next
	}

	return l, nil
}

// Encode serializes t with the default (unpadded) layout.
func Encode(t *Tree) ([]byte, error) {
	return EncodeWithOptions(t, Options{})
}

// EncodeWithOptions serializes t, deriving every size field from the
// payloads. It fails without producing output if any chunk is nil, a list
// does not carry the LIST id, or a size does not fit in 32 bits.
func EncodeWithOptions(t *Tree, opts Options) ([]byte, error) {
	total := 4
	for i, c := range t.Chunks {
		if err := checkChunk(c, i, total); err != nil {
			return nil, err
		}
		n := c.payloadLen(opts.Pad)
		if int64(n) > math.MaxUint32 {
			return nil, &FormatError{Offset: total, Reason: fmt.Sprintf("chunk %d payload of %d bytes exceeds 4 GiB", i, n)}
		}
		total += headerSize + n + padLen(n, opts)
	}
	if int64(total) > math.MaxUint32 {
		return nil, &FormatError{Offset: 0, Reason: fmt.Sprintf("container of %d bytes exceeds 4 GiB", total)}
	}

	out := make([]byte, 0, headerSize+total)
	out = appendHeader(out, RiffID, total)
	out = append(out, t.Format[:]...)

	for _, c := range t.Chunks {
		n := c.payloadLen(opts.Pad)
		out = appendHeader(out, c.FourCC(), n)

		switch c := c.(type) {
		case *Leaf:
			out = append(out, c.Data...)
		case *List:
			out = append(out, c.Type[:]...)
			for id, data := range c.Sub.All() {
				out = appendHeader(out, id, len(data))
				out = append(out, data...)
				out = appendPad(out, len(data), opts)
			}
		}

		out = appendPad(out, n, opts)
	}

	return out, nil
}

func checkChunk(c Chunk, i, off int) error {
	switch c := c.(type) {
	case *Leaf:
		if c == nil {
			return &FormatError{Offset: off, Reason: fmt.Sprintf("chunk %d is nil", i)}
		}
		if c.ID == ListID {
			return &FormatError{Offset: off, Reason: fmt.Sprintf("leaf chunk %d uses the LIST id", i)}
		}
	case *List:
		if c == nil {
			return &FormatError{Offset: off, Reason: fmt.Sprintf("chunk %d is nil", i)}
		}
		if c.ID != ListID {
			return &FormatError{Offset: off, Reason: fmt.Sprintf("list chunk %d has id %q", i, c.ID[:])}
		}
	default:
		return &FormatError{Offset: off, Reason: fmt.Sprintf("chunk %d is nil", i)}
	}
	return nil
}

func padLen(n int, opts Options) int {
	if opts.Pad {
		return n & 1
	}
	return 0
}

func appendHeader(out []byte, id [4]byte, size int) []byte {
	out = append(out, id[:]...)
	return binary.LittleEndian.AppendUint32(out, uint32(size))
}

func appendPad(out []byte, n int, opts Options) []byte {
	if padLen(n, opts) == 1 {
		out = append(out, 0)
	}
	return out
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
