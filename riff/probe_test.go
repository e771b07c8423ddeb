// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"bytes"
	"errors"
	"testing"
)

func TestProbe(t *testing.T) {
	t.Parallel()

	format, err := Probe(bytes.NewReader(minimalFixture()))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if format != ID("sfbk") {
		t.Errorf("Probe() = %q, want sfbk", format[:])
	}
}

func TestProbe_NotRIFF(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"aiff":  []byte("FORM\x00\x00\x00\x04AIFF"),
		"empty": nil,
	}

	for name, data := range inputs {
		if _, err := Probe(bytes.NewReader(data)); !errors.Is(err, ErrNotRIFF) {
			t.Errorf("%s: Probe() error = %v, want ErrNotRIFF", name, err)
		}
	}
}
