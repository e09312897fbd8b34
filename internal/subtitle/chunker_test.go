package subtitle

import (
	"strings"
	"testing"
)

func words(texts ...string) []TimedWord {
	ws := make([]TimedWord, len(texts))
	for i, t := range texts {
		ws[i] = TimedWord{Text: t, Start: float64(i), End: float64(i) + 0.5}
	}
	return ws
}

func TestChunkWordsEmpty(t *testing.T) {
	if got := ChunkWords(nil); len(got) != 0 {
		t.Errorf("ChunkWords(nil) = %v, want empty", got)
	}
	if got := ChunkWords([]TimedWord{}); len(got) != 0 {
		t.Errorf("ChunkWords(empty) = %v, want empty", got)
	}
}

func TestChunkWordsPairMerge(t *testing.T) {
	// "Hello" is 5 chars without trailing punctuation, so it pairs with the
	// next short word even though that word ends in a comma.
	input := []TimedWord{
		{Text: "Hello", Start: 0.0, End: 0.5},
		{Text: "world,", Start: 0.6, End: 1.0},
		{Text: "extraordinary", Start: 1.1, End: 2.0},
	}

	got := ChunkWords(input)
	want := []Chunk{
		{Text: "Hello world,", Start: 0.0, End: 1.0},
		{Text: "extraordinary", Start: 1.1, End: 2.0},
	}

	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestChunkWordsPunctuationForcesSolo(t *testing.T) {
	for _, p := range []string{".", "!", "?", ",", ";", ":"} {
		t.Run("punct "+p, func(t *testing.T) {
			got := ChunkWords(words("so"+p, "it", "goes"+p))
			if len(got) != 2 {
				t.Fatalf("chunk count = %d, want 2", len(got))
			}
			if got[0].Text != "so"+p {
				t.Errorf("chunk[0] = %q, want solo punctuated word", got[0].Text)
			}
			if got[1].Text != "it goes"+p {
				t.Errorf("chunk[1] = %q, want pair (trailing punctuation never blocks)", got[1].Text)
			}
		})
	}
}

func TestChunkWordsLongWordForcesSolo(t *testing.T) {
	got := ChunkWords(words("absolutely", "no"))
	if len(got) != 2 {
		t.Fatalf("chunk count = %d, want 2", len(got))
	}
	if got[0].Text != "absolutely" || got[1].Text != "no" {
		t.Errorf("chunks = %+v, want long word alone then trailing word alone", got)
	}
}

func TestChunkWordsBoundaryLengths(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		// 7 chars is not "longer than 7": eligible for solo-vs-pair decision,
		// but too long to pair (> 5).
		{"seven char word stays solo", []string{"exactly", "ok"}, []string{"exactly", "ok"}},
		{"eight char word solo", []string{"standing", "by"}, []string{"standing", "by"}},
		{"five char pair", []string{"three", "birds"}, []string{"three birds"}},
		{"six char first blocks pair", []string{"louder", "now"}, []string{"louder", "now"}},
		{"six char second blocks pair", []string{"now", "louder"}, []string{"now", "louder"}},
		{"odd tail word", []string{"one", "two", "ten"}, []string{"one two", "ten"}},
		{"single word", []string{"hi"}, []string{"hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunkWords(words(tt.input...))
			if len(got) != len(tt.want) {
				t.Fatalf("chunk texts = %v, want %v", chunkTexts(got), tt.want)
			}
			for i := range tt.want {
				if got[i].Text != tt.want[i] {
					t.Errorf("chunk[%d] = %q, want %q", i, got[i].Text, tt.want[i])
				}
			}
		})
	}
}

func TestChunkWordsCoverage(t *testing.T) {
	// Every word must appear exactly once, in order, across all chunks.
	input := words("the", "quick", "brown,", "fox", "jumps!", "over", "a", "remarkably", "lazy", "dog.")
	got := ChunkWords(input)

	var rebuilt []string
	for _, c := range got {
		rebuilt = append(rebuilt, strings.Fields(c.Text)...)
	}

	if len(rebuilt) != len(input) {
		t.Fatalf("rebuilt %d words, want %d", len(rebuilt), len(input))
	}
	for i, w := range input {
		if rebuilt[i] != w.Text {
			t.Errorf("word[%d] = %q, want %q", i, rebuilt[i], w.Text)
		}
	}
}

func TestChunkWordsInvariants(t *testing.T) {
	input := words("tiny", "small", "words", "here", "punctuated,", "tremendously", "big", "end.")
	got := ChunkWords(input)

	for i, c := range got {
		n := len(strings.Fields(c.Text))
		if n < 1 || n > 2 {
			t.Errorf("chunk[%d] has %d words, want 1 or 2: %+v", i, n, c)
		}
		if c.End < c.Start {
			t.Errorf("chunk[%d] end %v before start %v", i, c.End, c.Start)
		}
		if i > 0 && c.Start < got[i-1].Start {
			t.Errorf("chunk[%d] start %v before previous start %v", i, c.Start, got[i-1].Start)
		}
	}
}

func TestChunkWordsTiming(t *testing.T) {
	input := []TimedWord{
		{Text: "one", Start: 0.1, End: 0.4},
		{Text: "two", Start: 0.5, End: 0.9},
	}
	got := ChunkWords(input)
	if len(got) != 1 {
		t.Fatalf("chunk count = %d, want 1", len(got))
	}
	if got[0].Start != 0.1 || got[0].End != 0.9 {
		t.Errorf("pair chunk window = [%v, %v], want [0.1, 0.9]", got[0].Start, got[0].End)
	}
}

func chunkTexts(chunks []Chunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}
