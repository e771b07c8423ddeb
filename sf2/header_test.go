// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"testing"
)

func header(name string, start, end uint32) SampleHeader {
	h := SampleHeader{
		Start:         start,
		End:           end,
		StartLoop:     start + 8,
		EndLoop:       end - 8,
		SampleRate:    44100,
		OriginalPitch: 60,
		SampleType:    MonoSample,
	}
	h.SetName(name)
	return h
}

func eos() SampleHeader {
	var h SampleHeader
	h.SetName(EOS)
	return h
}

func TestSampleHeader_Layout(t *testing.T) {
	t.Parallel()

	h := SampleHeader{
		Start:           0x01020304,
		End:             0x05060708,
		StartLoop:       9,
		EndLoop:         10,
		SampleRate:      22050,
		OriginalPitch:   69,
		PitchCorrection: -12,
		SampleLink:      3,
		SampleType:      LeftSample,
	}
	h.SetName("flute-C4")

	b, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(b) != RecordSize {
		t.Fatalf("len = %d, want %d", len(b), RecordSize)
	}

	if !bytes.Equal(b[:9], []byte("flute-C4\x00")) || !bytes.Equal(b[8:20], make([]byte, 12)) {
		t.Errorf("name bytes = %q", b[:20])
	}
	if got := binary.LittleEndian.Uint32(b[20:]); got != 0x01020304 {
		t.Errorf("start = %#x", got)
	}
	if got := binary.LittleEndian.Uint32(b[36:]); got != 22050 {
		t.Errorf("sample rate = %d", got)
	}
	if b[40] != 69 || int8(b[41]) != -12 {
		t.Errorf("pitch bytes = %d, %d", b[40], int8(b[41]))
	}
	if got := binary.LittleEndian.Uint16(b[44:]); got != 4 {
		t.Errorf("sample type = %d, want 4", got)
	}

	var back SampleHeader
	if err := back.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if back != h {
		t.Errorf("UnmarshalBinary() = %+v, want %+v", back, h)
	}
}

func TestSampleHeader_Names(t *testing.T) {
	t.Parallel()

	var h SampleHeader
	h.SetName("a name that is longer than twenty bytes")
	if got := h.NameString(); got != "a name that is longe" {
		t.Errorf("NameString() = %q", got)
	}

	h.SetName("EOS")
	if got := h.NameString(); got != "EOS" {
		t.Errorf("NameString() = %q, want EOS", got)
	}

	// Bytes after the NUL are kept but not part of the name.
	copy(h.Name[10:], "junk")
	if got := h.NameString(); got != "EOS" {
		t.Errorf("NameString() = %q, want EOS", got)
	}
	b, _ := h.MarshalBinary()
	if !bytes.Equal(b[10:14], []byte("junk")) {
		t.Error("bytes after the NUL were not preserved")
	}
}

func TestParseSampleHeaders(t *testing.T) {
	t.Parallel()

	want := []SampleHeader{header("flute-C4", 0, 1000), header("flute-D4", 1046, 2000), eos()}
	data := MarshalSampleHeaders(want)
	if len(data) != 3*RecordSize {
		t.Fatalf("len = %d, want %d", len(data), 3*RecordSize)
	}

	got, err := ParseSampleHeaders(data)
	if err != nil {
		t.Fatalf("ParseSampleHeaders() error = %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("ParseSampleHeaders() = %+v, want %+v", got, want)
	}
}

func TestParseSampleHeaders_Truncated(t *testing.T) {
	t.Parallel()

	data := MarshalSampleHeaders([]SampleHeader{header("organ-C1", 0, 500), eos()})
	data = append(data, 1, 2, 3, 4, 5)

	got, err := ParseSampleHeaders(data)
	if !errors.Is(err, ErrTruncatedRecord) {
		t.Fatalf("ParseSampleHeaders() error = %v, want ErrTruncatedRecord", err)
	}
	if len(got) != 2 || got[0].NameString() != "organ-C1" {
		t.Errorf("ParseSampleHeaders() returned %d records, want the 2 whole ones", len(got))
	}
}

func TestParseSampleHeaders_Empty(t *testing.T) {
	t.Parallel()

	got, err := ParseSampleHeaders(nil)
	if err != nil || len(got) != 0 {
		t.Errorf("ParseSampleHeaders(nil) = %v, %v", got, err)
	}
}

func TestSampleHeader_UnmarshalShort(t *testing.T) {
	t.Parallel()

	var h SampleHeader
	if err := h.UnmarshalBinary(make([]byte, 45)); !errors.Is(err, ErrTruncatedRecord) {
		t.Errorf("UnmarshalBinary() error = %v, want ErrTruncatedRecord", err)
	}
}

func TestSampleHeader_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                           string
		start, startLoop, endLoop, end uint32
		ok                             bool
	}{
		{"inside", 100, 150, 900, 1000, true},
		{"loop equals sample", 100, 100, 1000, 1000, true},
		{"loop starts before sample", 100, 50, 900, 1000, false},
		{"loop ends after sample", 100, 150, 1001, 1000, false},
		{"inverted loop", 100, 900, 150, 1000, false},
	}

	for _, tt := range tests {
		h := SampleHeader{Start: tt.start, StartLoop: tt.startLoop, EndLoop: tt.endLoop, End: tt.end}
		err := h.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
		}
		var be *BoundsError
		if !tt.ok && !errors.As(err, &be) {
			t.Errorf("%s: Validate() = %v, want *BoundsError", tt.name, err)
		}
	}
}

func TestSampleType_String(t *testing.T) {
	t.Parallel()

	tests := map[SampleType]string{
		MonoSample:              "mono",
		LeftSample:              "left",
		ROMSample | RightSample: "rom right",
		LinkedSample:            "linked",
		SampleType(0x0010):      "0x0010",
	}

	for st, want := range tests {
		if got := st.String(); got != want {
			t.Errorf("SampleType(%d).String() = %q, want %q", uint16(st), got, want)
		}
	}
}
