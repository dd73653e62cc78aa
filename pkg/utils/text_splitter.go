package utils

import "strings"

// SplitParagraphs splits text into trimmed paragraphs on blank lines,
// dropping empty ones. This is the chunking unit of the policy index; a
// tokenizer-aware splitter can replace it once embeddings are real.
func SplitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(normalized, "\n\n")

	chunks := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			chunks = append(chunks, trimmed)
		}
	}
	return chunks
}
