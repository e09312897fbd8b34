package subtitle

// TimedWord is a single recognized word with its timing window in seconds,
// as emitted by the word-level recognizer.
type TimedWord struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Chunk is the atomic display unit for one caption: one or two words with
// a combined timing window.
type Chunk struct {
	Text  string
	Start float64
	End   float64
}

// Cue is a finished, indexed, time-coded caption block.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}
