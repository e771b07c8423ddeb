// SPDX-License-Identifier: EPL-2.0

package selection_test

import (
	"fmt"
	"strings"

	"github.com/ik5/loopfont/selection"
)

func ExampleParse() {
	input := `recordings/flute/flute-C4.wav,44114,80130,0.0366,good
recordings/flute/flute-C4.wav,45000,81000,0.0210,good
`
	s, err := selection.Parse(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}

	r, _ := s.Lookup("flute-C4.wav")
	fmt.Println(r.Start, r.End, r.Score)
	// Output: 45000 81000 0.021
}
