package research

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// maxPDFText caps extracted text so prompts stay bounded.
const maxPDFText = 50000

// ExtractPDF returns the plain text of the PDF at source, which may be a
// local file path or an http(s) URL. Extraction is delegated to the
// external pdftotext tool.
func (r *implResearcher) ExtractPDF(ctx context.Context, source string) (string, error) {
	path := source

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		downloaded, err := r.download(ctx, source)
		if err != nil {
			return "", fmt.Errorf("download pdf: %w", err)
		}
		defer os.Remove(downloaded)
		path = downloaded
	}

	r.logger.Info(ctx, "Extracting PDF text: %s", path)

	// "-" writes the extracted text to stdout.
	out, err := r.executor.Execute(ctx, "pdftotext", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}

	text := strings.TrimSpace(out)
	if text == "" {
		return "", fmt.Errorf("pdf contains no extractable text: %s", source)
	}
	if len(text) > maxPDFText {
		text = text[:maxPDFText]
	}

	return text, nil
}

func (r *implResearcher) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp("", "research-*.pdf")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}
