package script

import "context"

// Request carries the topic plus any trend and research context gathered
// before script generation.
type Request struct {
	Topic           string
	Trends          []string
	Keywords        []string
	Hooks           []string
	Formats         []string
	Tone            float64
	PDFMode         bool
	PDFContent      string
	MainInsights    []string
	SurprisingFacts []string
}

// Script is the validated generation result.
type Script struct {
	VideoLength      int      `json:"video_length"`
	ScriptText       string   `json:"script_text"`
	Hook             string   `json:"hook"`
	MainPoints       []string `json:"main_points"`
	CTA              string   `json:"cta"`
	TrendingElements []string `json:"trending_elements"`
	EstimatedWords   int      `json:"estimated_words"`
	ToneApplied      string   `json:"tone_applied"`
	ContentType      string   `json:"content_type"`
}

// Generator produces a narration script for a video topic.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Script, error)
}
