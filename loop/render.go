// SPDX-License-Identifier: EPL-2.0

package loop

// Render returns the note as a sampler would play it while the key is held:
// the intro up to c.Start, the loop [c.Start, c.End) repeated repeats times,
// then the release from c.End on. A candidate outside buf is clamped to it.
func Render(buf []float64, c Candidate, repeats int) []float64 {
	start := max(0, min(c.Start, len(buf)))
	end := max(start, min(c.End, len(buf)))
	repeats = max(repeats, 0)

	body := buf[start:end]
	out := make([]float64, 0, start+len(body)*repeats+len(buf)-end)

	out = append(out, buf[:start]...)
	for range repeats {
		out = append(out, body...)
	}
	out = append(out, buf[end:]...)

	return out
}
