package script

import (
	"regexp"
	"strings"
)

var authorPatterns = []*regexp.Regexp{
	// "Authors: Name One, Name Two" / "By: Name One"
	regexp.MustCompile(`(?:Authors?|By):?\s*([A-Z][a-z]+ [A-Z][a-z]+(?:,\s*[A-Z][a-z]+ [A-Z][a-z]+)*)`),
	// Names at the start of a line
	regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+(?:,\s*[A-Z][a-z]+ [A-Z][a-z]+)*)`),
	// Names followed by an affiliation marker
	regexp.MustCompile(`([A-Z][a-z]+ [A-Z][a-z]+)(?:\s*[,\d]|\s*\n|\s*Department|\s*University|\s*Institute)`),
}

var authorStopWords = map[string]bool{
	"abstract":   true,
	"university": true,
	"department": true,
	"institute":  true,
}

// ExtractAuthors pulls likely author names from the front matter of a
// document, capped at three.
func ExtractAuthors(content string) []string {
	if len(content) > 1000 {
		content = content[:1000]
	}

	var authors []string
	seen := map[string]bool{}

	for _, pattern := range authorPatterns {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			for _, name := range strings.Split(match[1], ",") {
				name = strings.TrimSpace(name)
				if validAuthorName(name) && !seen[name] {
					seen[name] = true
					authors = append(authors, name)
					if len(authors) == 3 {
						return authors
					}
				}
			}
		}
	}

	return authors
}

func validAuthorName(name string) bool {
	parts := strings.Fields(name)
	if len(parts) < 2 || len(name) >= 50 {
		return false
	}
	for _, word := range parts {
		if authorStopWords[strings.ToLower(word)] {
			return false
		}
	}
	return true
}
