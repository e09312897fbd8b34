package subtitle

import (
	"strings"
	"unicode/utf8"
)

const (
	// breakPunctuation marks words that close a natural speech unit and
	// therefore get their own caption beat.
	breakPunctuation = ".!?,;:"

	// soloLength is the word length above which a word is always shown alone.
	soloLength = 7

	// pairLength is the maximum length of each word in a two-word caption.
	pairLength = 5
)

// ChunkWords groups consecutive timed words into display chunks using a
// single greedy pass. Long or punctuated words get a solo chunk; two
// consecutive short words are merged to reduce caption flicker. Every chunk
// holds exactly one or two words. An empty input yields an empty result.
func ChunkWords(words []TimedWord) []Chunk {
	var chunks []Chunk

	i := 0
	for i < len(words) {
		current := words[i]
		length := utf8.RuneCountInString(current.Text)

		if endsWithBreak(current.Text) || length > soloLength {
			chunks = append(chunks, soloChunk(current))
			i++
			continue
		}

		if i+1 < len(words) {
			next := words[i+1]
			if length <= pairLength && pairWidth(next.Text) <= pairLength {
				chunks = append(chunks, Chunk{
					Text:  current.Text + " " + next.Text,
					Start: current.Start,
					End:   next.End,
				})
				i += 2
				continue
			}
		}

		chunks = append(chunks, soloChunk(current))
		i++
	}

	return chunks
}

// pairWidth is the display length of a trailing pair candidate. Break
// punctuation on the trailing word never blocks a merge, so it does not
// count toward the length limit.
func pairWidth(word string) int {
	return utf8.RuneCountInString(strings.TrimRight(word, breakPunctuation))
}

func soloChunk(w TimedWord) Chunk {
	return Chunk{Text: w.Text, Start: w.Start, End: w.End}
}

// endsWithBreak reports whether the word ends in sentence or clause
// punctuation. Only the leading word of a candidate pair is checked; a
// trailing word's punctuation never blocks merging.
func endsWithBreak(word string) bool {
	r, size := utf8.DecodeLastRuneInString(word)
	if size == 0 {
		return false
	}
	return strings.ContainsRune(breakPunctuation, r)
}
