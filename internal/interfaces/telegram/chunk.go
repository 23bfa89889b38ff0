// Package telegram delivers reports and upcoming listings over the
// Telegram bot API.
package telegram

import "strings"

const (
	// ListChunkLimit bounds one upcoming-list message.
	ListChunkLimit = 3800
	// ReportChunkLimit bounds one report message.
	ReportChunkLimit = 3900
)

// ChunkText splits s into pieces of at most limit characters, breaking only
// at line boundaries. Joining the chunks with newlines reconstructs the
// trimmed original.
func ChunkText(s string, limit int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if len(s) <= limit {
		return []string{s}
	}

	var chunks []string
	var current []string
	currentLen := 0
	for _, line := range strings.Split(s, "\n") {
		add := len(line) + 1
		if len(current) > 0 && currentLen+add > limit {
			chunks = append(chunks, strings.TrimSpace(strings.Join(current, "\n")))
			current = []string{line}
			currentLen = len(line) + 1
		} else {
			current = append(current, line)
			currentLen += add
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.TrimSpace(strings.Join(current, "\n")))
	}

	out := chunks[:0]
	for _, chunk := range chunks {
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}
