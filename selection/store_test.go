// SPDX-License-Identifier: EPL-2.0

package selection

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `recordings/Casio MT-70/wood wind/wood wind-B3.wav,44114,80130,0.036664582788944244,good

recordings/Casio MT-70/wood wind/wood wind-C4.wav,1000,9000
too,short
recordings/Casio MT-70/wood wind/wood wind-D4.wav, 12 , 34 ,notanumber,bad
`

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	tests := []struct {
		name string
		want Record
	}{
		{"wood wind-B3.wav", Record{
			Path:    "recordings/Casio MT-70/wood wind/wood wind-B3.wav",
			Start:   44114,
			End:     80130,
			Score:   0.036664582788944244,
			Verdict: VerdictGood,
		}},
		{"wood wind-C4.wav", Record{Path: "recordings/Casio MT-70/wood wind/wood wind-C4.wav", Start: 1000, End: 9000}},
		{"wood wind-D4.wav", Record{Path: "recordings/Casio MT-70/wood wind/wood wind-D4.wav", Start: 12, End: 34, Verdict: VerdictBad}},
	}

	for _, tt := range tests {
		got, ok := s.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) found nothing", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}

	if _, ok := s.Lookup("too"); ok {
		t.Error("a line with two fields was kept")
	}
}

func TestParse_DuplicateLastWins(t *testing.T) {
	t.Parallel()

	input := "a/flute-C4.wav,10,20\nb/flute-C4.wav,30,40\nflute-D4.wav,1,2\n"
	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, ok := s.Lookup("flute-C4.wav")
	if !ok || got.Start != 30 || got.End != 40 {
		t.Errorf("Lookup(flute-C4.wav) = %+v, %v, want the second line", got, ok)
	}
	if s.Len() != 2 || len(s.Records()) != 3 {
		t.Errorf("Len() = %d, len(Records()) = %d, want 2 and 3", s.Len(), len(s.Records()))
	}
}

func TestParse_WindowsPathsAndLineEndings(t *testing.T) {
	t.Parallel()

	s, err := Parse(strings.NewReader("C:\\rec\\organ\\organ-C1.wav,5,6\r\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if r, ok := s.Lookup("organ-C1.wav"); !ok || r.End != 6 {
		t.Errorf("Lookup(organ-C1.wav) = %+v, %v", r, ok)
	}
}

func TestParse_InvalidOffset(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"non-integer start": "ok.wav,1,2\n\nbad.wav,1.5,20\n",
		"negative end":      "ok.wav,1,2\n\nbad.wav,1,-20\n",
		"overflow":          "ok.wav,1,2\n\nbad.wav,1,99999999999\n",
	}

	for name, input := range inputs {
		_, err := Parse(strings.NewReader(input))

		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: Parse() error = %v, want *ParseError", name, err)
			continue
		}
		if pe.Line != 3 {
			t.Errorf("%s: ParseError.Line = %d, want 3", name, pe.Line)
		}
		if !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("%s: error %v does not wrap ErrInvalidOffset", name, err)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	s, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Lookup("anything.wav"); ok {
		t.Error("empty store returned a record")
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"offsets only", Record{Path: "p/a.wav", Start: 1, End: 2}, "p/a.wav,1,2\n"},
		{"with score", Record{Path: "a.wav", Start: 1, End: 2, Score: 0.25}, "a.wav,1,2,0.25\n"},
		{"with verdict", Record{Path: "a.wav", Start: 1, End: 2, Verdict: VerdictGood}, "a.wav,1,2,0,good\n"},
		{"path with comma", Record{Path: "x,y.wav", Start: 3, End: 4}, "\"x,y.wav\",3,4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := Append(&buf, tt.rec); err != nil {
				t.Fatalf("Append() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Append() wrote %q, want %q", buf.String(), tt.want)
			}

			s, err := Parse(&buf)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got, _ := s.Lookup(tt.rec.Name()); got != tt.rec {
				t.Errorf("parsed back %+v, want %+v", got, tt.rec)
			}
		})
	}
}

func TestAppendFileAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	recs := []Record{
		{Path: "organ/organ-C1.wav", Start: 100, End: 900, Score: 0.5, Verdict: VerdictGood},
		{Path: "organ/organ-D1.wav", Start: 200, End: 800},
		{Path: "organ/organ-C1.wav", Start: 150, End: 950, Score: 0.1, Verdict: VerdictGood},
	}
	for _, r := range recs {
		if err := AppendFile(path, r); err != nil {
			t.Fatalf("AppendFile() error = %v", err)
		}
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, _ := s.Lookup("organ-C1.wav"); got != recs[2] {
		t.Errorf("Lookup(organ-C1.wav) = %+v, want %+v", got, recs[2])
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoad_ReportsPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("a.wav,x,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Load() error = %v, want it to name %s", err, path)
	}
}
