package research

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var reArxivID = regexp.MustCompile(`(\d{4}\.\d{4,5})(v\d+)?`)

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID      string       `xml:"id"`
	Title   string       `xml:"title"`
	Summary string       `xml:"summary"`
	Authors []atomAuthor `xml:"author"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

// LookupArxiv extracts an arXiv identifier from the query and fetches the
// paper's title, abstract and authors from the arXiv API.
func (r *implResearcher) LookupArxiv(ctx context.Context, query string) (*Paper, error) {
	id := reArxivID.FindString(query)
	if id == "" {
		return nil, fmt.Errorf("no arXiv identifier in %q", query)
	}

	r.logger.Info(ctx, "Looking up arXiv paper %s", id)

	reqURL := r.arxivURL + "?id_list=" + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv returned status %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parse arxiv response: %w", err)
	}
	if len(feed.Entries) == 0 {
		return nil, fmt.Errorf("arxiv paper %s not found", id)
	}

	entry := feed.Entries[0]
	authors := make([]string, 0, len(entry.Authors))
	for _, a := range entry.Authors {
		authors = append(authors, a.Name)
	}

	return &Paper{
		ID:      id,
		Title:   collapseSpace(entry.Title),
		Summary: collapseSpace(entry.Summary),
		Authors: authors,
	}, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
