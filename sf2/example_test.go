// SPDX-License-Identifier: EPL-2.0

package sf2_test

import (
	"fmt"
	"strings"

	"github.com/ik5/loopfont/selection"
	"github.com/ik5/loopfont/sf2"
)

// presets serves selection files kept in memory.
type presets map[string]string

func (p presets) Selections(preset string) (*selection.Store, error) {
	text, ok := p[preset]
	if !ok {
		return nil, nil
	}
	return selection.Parse(strings.NewReader(text))
}

func ExamplePatch() {
	var flute, organ, eos sf2.SampleHeader
	flute.SetName("flute-C4")
	flute.Start, flute.End = 1000, 90000
	organ.SetName("organ-C1")
	organ.Start, organ.End = 90046, 150000
	eos.SetName(sf2.EOS)

	hs := []sf2.SampleHeader{flute, organ, eos}
	src := presets{"flute": "recordings/flute/flute-C4.wav,44114,80130,0.0366,good\n"}

	report, err := sf2.Patch(hs, src, sf2.DefaultPatchConfig())
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, h := range hs[:2] {
		fmt.Printf("%s [%d, %d]\n", h.NameString(), h.StartLoop, h.EndLoop)
	}
	fmt.Println("disabled:", report.Disabled)
	// Output:
	// flute-C4 [45114, 81130]
	// organ-C1 [0, 0]
	// disabled: [organ-C1]
}
