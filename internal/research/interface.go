package research

import "context"

// Paper is the metadata and abstract of one arXiv paper.
type Paper struct {
	ID      string
	Title   string
	Summary string
	Authors []string
}

// Researcher gathers source material for PDF-mode script generation.
type Researcher interface {
	// ExtractPDF returns the text content of a PDF given a local path or URL.
	ExtractPDF(ctx context.Context, source string) (string, error)
	// LookupArxiv resolves an arXiv id or id-bearing query to paper metadata.
	LookupArxiv(ctx context.Context, query string) (*Paper, error)
}
