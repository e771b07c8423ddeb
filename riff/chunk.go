// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"bytes"
	"iter"
	"slices"
)

// ListID is the id of every list chunk.
var ListID = ID("LIST")

// ID returns s as a four character code. Shorter strings are padded with
// spaces, as in "fmt ", and longer ones are cut.
func ID(s string) [4]byte {
	id := [4]byte{' ', ' ', ' ', ' '}
	copy(id[:], s)
	return id
}

// Chunk is either a *Leaf or a *List.
type Chunk interface {
	FourCC() [4]byte
	// payloadLen is the encoded payload size, excluding the 8-byte header.
	payloadLen(pad bool) int
}

// Leaf is a chunk whose payload is kept as raw bytes.
type Leaf struct {
	ID   [4]byte
	Data []byte
}

func (l *Leaf) FourCC() [4]byte { return l.ID }

func (l *Leaf) payloadLen(bool) int { return len(l.Data) }

// List is a LIST chunk: a type tag followed by sub-chunks.
type List struct {
	ID   [4]byte
	Type [4]byte
	Sub  *SubChunks
}

// NewList returns an empty list of the given type.
func NewList(typ string) *List {
	return &List{ID: ListID, Type: ID(typ), Sub: &SubChunks{}}
}

func (l *List) FourCC() [4]byte { return l.ID }

func (l *List) payloadLen(pad bool) int {
	n := 4
	for _, data := range l.Sub.All() {
		n += 8 + len(data)
		if pad {
			n += len(data) & 1
		}
	}
	return n
}

// SubChunks maps sub-chunk ids to payloads and remembers insertion order.
// The zero value is an empty map ready to use.
type SubChunks struct {
	ids  [][4]byte
	data map[[4]byte][]byte
}

// Set stores data under id. An id already present keeps its position and
// has its payload replaced.
func (s *SubChunks) Set(id [4]byte, data []byte) {
	if s.data == nil {
		s.data = make(map[[4]byte][]byte)
	}
	if _, ok := s.data[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.data[id] = data
}

// Get returns the payload stored under id.
func (s *SubChunks) Get(id [4]byte) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	data, ok := s.data[id]
	return data, ok
}

// Delete removes id, keeping the order of the others.
func (s *SubChunks) Delete(id [4]byte) {
	if s == nil {
		return
	}
	if _, ok := s.data[id]; !ok {
		return
	}
	delete(s.data, id)
	s.ids = slices.DeleteFunc(s.ids, func(v [4]byte) bool { return v == id })
}

// Len is the number of distinct ids.
func (s *SubChunks) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the ids in order.
func (s *SubChunks) IDs() [][4]byte {
	if s == nil {
		return nil
	}
	return slices.Clone(s.ids)
}

// All iterates over ids and payloads in order.
func (s *SubChunks) All() iter.Seq2[[4]byte, []byte] {
	return func(yield func([4]byte, []byte) bool) {
		if s == nil {
			return
		}
		for _, id := range s.ids {
			if !yield(id, s.data[id]) {
				return
			}
		}
	}
}

// Tree is a decoded container.
type Tree struct {
	Format [4]byte
	Chunks []Chunk
}

// List returns the first list chunk of type typ, or nil.
func (t *Tree) List(typ string) *List {
	want := ID(typ)
	for _, c := range t.Chunks {
		if l, ok := c.(*List); ok && l.Type == want {
			return l
		}
	}
	return nil
}

// Leaf returns the first top-level leaf with the given id, or nil.
func (t *Tree) Leaf(id string) *Leaf {
	want := ID(id)
	for _, c := range t.Chunks {
		if l, ok := c.(*Leaf); ok && l.ID == want {
			return l
		}
	}
	return nil
}

// Equal reports whether a and b have the same format, the same chunks in the
// same order, and the same sub-chunks in the same order.
func Equal(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Format != b.Format || len(a.Chunks) != len(b.Chunks) {
		return false
	}

	for i := range a.Chunks {
		if !chunkEqual(a.Chunks[i], b.Chunks[i]) {
			return false
		}
	}

	return true
}

func chunkEqual(a, b Chunk) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.ID == y.ID && bytes.Equal(x.Data, y.Data)
	case *List:
		y, ok := b.(*List)
		if !ok || x.ID != y.ID || x.Type != y.Type || x.Sub.Len() != y.Sub.Len() {
			return false
		}
		ids := y.Sub.IDs()
		i := 0
		for id, data := range x.Sub.All() {
			other, _ := y.Sub.Get(id)
			if ids[i] != id || !bytes.Equal(data, other) {
				return false
			}
			i++
		}
		return true
	default:
		return false
	}
}
