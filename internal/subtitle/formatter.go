package subtitle

import (
	"fmt"
	"math"
	"strings"
)

// highlightColor is the fixed style applied to every caption payload.
const highlightColor = "#FFFF00"

// FormatTime converts seconds to the SRT time format HH:MM:SS,mmm.
// Components are floored, never rounded up.
func FormatTime(seconds float64) string {
	h := int(seconds / 3600)
	m := int(math.Mod(seconds, 3600) / 60)
	s := int(math.Mod(seconds, 60))
	ms := int(math.Mod(seconds, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// Cues assigns sequential 1-based indices to chunks, preserving order.
func Cues(chunks []Chunk) []Cue {
	cues := make([]Cue, 0, len(chunks))
	for i, c := range chunks {
		cues = append(cues, Cue{
			Index: i + 1,
			Start: c.Start,
			End:   c.End,
			Text:  c.Text,
		})
	}
	return cues
}

// Render produces the full SRT document: numbered blocks with a time range
// header and color-styled payload, separated by blank lines, with no
// trailing whitespace.
func Render(cues []Cue) string {
	var b strings.Builder
	for _, cue := range cues {
		fmt.Fprintf(&b, "%d\n%s --> %s\n<font color='%s'>%s</font>\n\n",
			cue.Index, FormatTime(cue.Start), FormatTime(cue.End), highlightColor, cue.Text)
	}
	return strings.TrimSpace(b.String())
}
