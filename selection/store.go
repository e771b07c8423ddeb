// SPDX-License-Identifier: EPL-2.0

package selection

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Verdicts written by curation.
const (
	VerdictGood = "good"
	VerdictBad  = "bad"
)

// Record is one line of a selection file. Start and End are relative to
// the beginning of the recording named by Path.
type Record struct {
	Path    string
	Start   uint32
	End     uint32
	Score   float64
	Verdict string
}

// Name is the key the record is stored under: the last element of Path.
func (r Record) Name() string {
	return baseName(r.Path)
}

// baseName splits on both separators since selection files written on one
// system are read on another.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return filepath.Base(p)
}

// Store holds the selections of one preset.
type Store struct {
	byName  map[string]Record
	records []Record
}

// Lookup returns the last record whose path ends in name.
func (s *Store) Lookup(name string) (Record, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// Len is the number of distinct names.
func (s *Store) Len() int { return len(s.byName) }

// Records returns every parsed line in file order, duplicates included.
func (s *Store) Records() []Record {
	return append([]Record(nil), s.records...)
}

func (s *Store) add(r Record) {
	if s.byName == nil {
		s.byName = make(map[string]Record)
	}
	s.byName[r.Name()] = r
	s.records = append(s.records, r)
}

// Parse reads selection lines from r. Blank lines and lines with fewer
// than three fields are skipped. An offset that is not an integer fails
// the whole parse with a *ParseError; a score that does not parse is left
// at zero.
func Parse(r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	s := &Store{byName: make(map[string]Record)}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading selections: %w", err)
		}
		if len(fields) < 3 {
			continue
		}

		line, _ := cr.FieldPos(0)
		rec, err := parseRecord(fields)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		s.add(rec)
	}
}

func parseRecord(fields []string) (Record, error) {
	rec := Record{Path: strings.TrimSpace(fields[0])}

	start, err := parseOffset(fields[1])
	if err != nil {
		return Record{}, err
	}
	end, err := parseOffset(fields[2])
	if err != nil {
		return Record{}, err
	}
	rec.Start, rec.End = start, end

	if len(fields) > 3 {
		if score, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64); err == nil {
			rec.Score = score
		}
	}
	if len(fields) > 4 {
		rec.Verdict = strings.TrimSpace(fields[4])
	}

	return rec, nil
}

func parseOffset(field string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidOffset, field)
	}
	return uint32(v), nil
}

// Load parses the selection file at path.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Append writes rec as one line. Score is written when it is set or a
// verdict follows it; Verdict is written when set.
func Append(w io.Writer, rec Record) error {
	fields := []string{
		rec.Path,
		strconv.FormatUint(uint64(rec.Start), 10),
		strconv.FormatUint(uint64(rec.End), 10),
	}
	if rec.Score != 0 || rec.Verdict != "" {
		fields = append(fields, strconv.FormatFloat(rec.Score, 'g', -1, 64))
	}
	if rec.Verdict != "" {
		fields = append(fields, rec.Verdict)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("writing selection: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing selection: %w", err)
	}

	return nil
}

// AppendFile appends rec to the selection file at path, creating it if needed.
func AppendFile(path string, rec Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Append(f, rec); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
