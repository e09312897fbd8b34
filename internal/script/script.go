package script

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"
)

// Generate builds the tone-aware prompt for the request, asks the LLM for a
// script and validates the structured result.
func (g *implGenerator) Generate(ctx context.Context, req Request) (*Script, error) {
	toneDesc := ToneDescription(req.Tone)
	prompt := g.buildPrompt(req, toneDesc)

	g.logger.Info(ctx, "Generating script for %q (tone: %s, pdf: %v)", req.Topic, toneDesc, req.PDFMode)

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := g.callModel(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		content := extractJSON(response)
		if content == nil {
			lastErr = fmt.Errorf("no valid JSON in model response")
			continue
		}

		result, err := g.validate(content, toneDesc, req.PDFMode)
		if err != nil {
			lastErr = err
			continue
		}

		g.logger.Info(ctx, "Script generated: %d words, %ds", result.EstimatedWords, result.VideoLength)
		return result, nil
	}

	return nil, fmt.Errorf("script generation failed after 3 attempts: %w", lastErr)
}

func (g *implGenerator) buildPrompt(req Request, toneDesc string) string {
	modifier := toneModifier(req.Tone)

	if req.PDFMode {
		authors := ExtractAuthors(req.PDFContent)
		content := req.PDFContent
		if len(content) > 2000 {
			content = content[:2000]
		}
		return fmt.Sprintf(pdfPrompt,
			req.Topic,
			modifier,
			content,
			strings.Join(req.MainInsights, "; "),
			strings.Join(req.SurprisingFacts, "; "),
			strings.Join(authors, ", "),
			toneDesc,
		)
	}

	return fmt.Sprintf(regularPrompt,
		req.Topic,
		modifier,
		strings.Join(capped(req.Trends, 6), ", "),
		strings.Join(capped(req.Keywords, 12), ", "),
		strings.Join(capped(req.Hooks, 5), " | "),
		strings.Join(capped(req.Formats, 4), " | "),
		toneDesc,
	)
}

// callModel sends the prompt to Gemini and returns the raw text response.
// Rotates API keys on 429 / quota errors.
func (g *implGenerator) callModel(ctx context.Context, prompt string) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		idx := g.keyIndex()
		key := g.apiKeys[idx]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from model")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGenerator) keyIndex() int {
	return int(g.currentKey.Load() % int64(len(g.apiKeys)))
}

func (g *implGenerator) rotateKey() {
	g.currentKey.Add(1)
}

var reFence = regexp.MustCompile("```json|```|\n")

// extractJSON pulls the first JSON object out of a model response, tolerating
// surrounding prose and fenced code blocks.
func extractJSON(response string) map[string]any {
	if m := braceScan(response); m != nil {
		return m
	}
	return braceScan(reFence.ReplaceAllString(response, ""))
}

func braceScan(s string) map[string]any {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(s[start:end+1]), &m); err != nil {
		return nil
	}
	return m
}

// validate clamps the video length, requires non-empty script text and adds
// document framing when a PDF summary script lacks it.
func (g *implGenerator) validate(content map[string]any, toneDesc string, pdfMode bool) (*Script, error) {
	text, _ := content["script_text"].(string)
	if text == "" {
		return nil, fmt.Errorf("no script text generated")
	}

	defaultLength := 35
	if pdfMode {
		defaultLength = 45
	}
	length := intField(content, "video_length", defaultLength)
	if length < g.minLength {
		length = g.minLength
	}
	if length > g.maxLength {
		length = g.maxLength
	}

	if pdfMode && len(text) > 50 && !hasDocumentContext(text) {
		text = "This document reveals something incredible. " + text
	}

	contentType := "regular"
	if pdfMode {
		contentType = "pdf_summary"
	}

	toneApplied, _ := content["tone_applied"].(string)
	if toneApplied == "" {
		toneApplied = toneDesc
	}

	return &Script{
		VideoLength:      length,
		ScriptText:       text,
		Hook:             stringField(content, "hook"),
		MainPoints:       stringSlice(content, "main_points"),
		CTA:              stringField(content, "cta"),
		TrendingElements: stringSlice(content, "trending_elements"),
		EstimatedWords:   intField(content, "estimated_words", len(strings.Fields(text))),
		ToneApplied:      toneApplied,
		ContentType:      contentType,
	}, nil
}

var documentIndicators = []string{"document", "research", "study", "findings", "reveals", "shows", "according to"}

func hasDocumentContext(text string) bool {
	lower := strings.ToLower(text)
	for _, ind := range documentIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]any, key string, fallback int) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return fallback
}

func stringSlice(m map[string]any, key string) []string {
	raw, _ := m[key].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
