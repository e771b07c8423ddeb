// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/loopfont/formats/mp3"
)

// ExampleDecoder_Decode_errorHandling shows that input without MP3 frames
// is rejected when the decoder is created.
func ExampleDecoder_Decode_errorHandling() {
	_, err := mp3.Decoder{}.Decode(bytes.NewReader(nil))
	fmt.Println(err != nil)
	// Output: true
}
