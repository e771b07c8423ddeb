// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// RecordSize is the encoded size of one SampleHeader.
const RecordSize = 46

// EOS names the terminal record of the table.
const EOS = "EOS"

// SampleType says whether a sample is mono or one side of a stereo pair.
type SampleType uint16

const (
	MonoSample   SampleType = 1
	RightSample  SampleType = 2
	LeftSample   SampleType = 4
	LinkedSample SampleType = 8
	// ROMSample is set together with one of the above for samples held in
	// synthesizer ROM.
	ROMSample SampleType = 0x8000
)

func (t SampleType) String() string {
	rom := ""
	if t&ROMSample != 0 {
		rom = "rom "
	}
	switch t &^ ROMSample {
	case MonoSample:
		return rom + "mono"
	case RightSample:
		return rom + "right"
	case LeftSample:
		return rom + "left"
	case LinkedSample:
		return rom + "linked"
	default:
		return fmt.Sprintf("%s0x%04x", rom, uint16(t))
	}
}

// SampleHeader is one record of the shdr chunk. Name keeps its raw bytes,
// including anything after the first NUL, so unpatched records are written
// back unchanged.
type SampleHeader struct {
	Name            [20]byte
	Start           uint32
	End             uint32
	StartLoop       uint32
	EndLoop         uint32
	SampleRate      uint32
	OriginalPitch   uint8
	PitchCorrection int8
	SampleLink      uint16
	SampleType      SampleType
}

// NameString returns the name up to the first NUL.
func (h *SampleHeader) NameString() string {
	if i := bytes.IndexByte(h.Name[:], 0); i >= 0 {
		return string(h.Name[:i])
	}
	return string(h.Name[:])
}

// SetName stores s NUL padded, cutting it to 20 bytes.
func (h *SampleHeader) SetName(s string) {
	h.Name = [20]byte{}
	copy(h.Name[:], s)
}

// Validate checks Start <= StartLoop <= EndLoop <= End.
func (h *SampleHeader) Validate() error {
	if h.Start <= h.StartLoop && h.StartLoop <= h.EndLoop && h.EndLoop <= h.End {
		return nil
	}
	return &BoundsError{
		Sample:    h.NameString(),
		Start:     uint64(h.Start),
		End:       uint64(h.End),
		StartLoop: uint64(h.StartLoop),
		EndLoop:   uint64(h.EndLoop),
	}
}

// AppendBinary appends the 46-byte little-endian record to b.
func (h *SampleHeader) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, h.Name[:]...)
	b = binary.LittleEndian.AppendUint32(b, h.Start)
	b = binary.LittleEndian.AppendUint32(b, h.End)
	b = binary.LittleEndian.AppendUint32(b, h.StartLoop)
	b = binary.LittleEndian.AppendUint32(b, h.EndLoop)
	b = binary.LittleEndian.AppendUint32(b, h.SampleRate)
	b = append(b, h.OriginalPitch, byte(h.PitchCorrection))
	b = binary.LittleEndian.AppendUint16(b, h.SampleLink)
	b = binary.LittleEndian.AppendUint16(b, uint16(h.SampleType))
	return b, nil
}

// MarshalBinary returns the 46-byte record.
func (h *SampleHeader) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, RecordSize))
}

// UnmarshalBinary decodes one record from the first 46 bytes of data.
func (h *SampleHeader) UnmarshalBinary(data []byte) error {
	if len(data) < RecordSize {
		return fmt.Errorf("%w: %d of %d bytes", ErrTruncatedRecord, len(data), RecordSize)
	}

	copy(h.Name[:], data[0:20])
	h.Start = binary.LittleEndian.Uint32(data[20:])
	h.End = binary.LittleEndian.Uint32(data[24:])
	h.StartLoop = binary.LittleEndian.Uint32(data[28:])
	h.EndLoop = binary.LittleEndian.Uint32(data[32:])
	h.SampleRate = binary.LittleEndian.Uint32(data[36:])
	h.OriginalPitch = data[40]
	h.PitchCorrection = int8(data[41])
	h.SampleLink = binary.LittleEndian.Uint16(data[42:])
	h.SampleType = SampleType(binary.LittleEndian.Uint16(data[44:]))

	return nil
}

// ParseSampleHeaders decodes consecutive records. When trailing bytes are
// too few for another record, the records decoded so far are returned
// together with an error wrapping ErrTruncatedRecord.
func ParseSampleHeaders(b []byte) ([]SampleHeader, error) {
	hs := make([]SampleHeader, len(b)/RecordSize)
	for i := range hs {
		if err := hs[i].UnmarshalBinary(b[i*RecordSize:]); err != nil {
			return nil, err
		}
	}

	if rem := len(b) % RecordSize; rem != 0 {
		return hs, fmt.Errorf("%w: %d trailing bytes after %d records", ErrTruncatedRecord, rem, len(hs))
	}

	return hs, nil
}

// MarshalSampleHeaders encodes hs as consecutive records.
func MarshalSampleHeaders(hs []SampleHeader) []byte {
	out := make([]byte, 0, len(hs)*RecordSize)
	for i := range hs {
		// AppendBinary never fails.
		out, _ = hs[i].AppendBinary(out)
	}
	return out
}
