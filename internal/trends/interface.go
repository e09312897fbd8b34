package trends

import "context"

// Report summarizes what web search currently says about a topic.
type Report struct {
	TrendingTopics      []string       `json:"trending_topics"`
	RecommendedKeywords []string       `json:"recommended_keywords"`
	ViralScores         map[string]int `json:"viral_scores"`
	SearchResultsCount  int            `json:"search_results_count"`
}

// Analyzer looks up trending angles and keywords for a query.
type Analyzer interface {
	Analyze(ctx context.Context, query string) (*Report, error)
}
