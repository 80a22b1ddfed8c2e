package llm

import (
	"strings"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
)

// FlattenTranscript renders history plus the new user message as a single
// prompt string of alternating "User:"/"AI:" lines. The model receives no
// structured roles, only this flattened text.
func FlattenTranscript(history []domain.Message, message string) string {
	var b strings.Builder
	for _, m := range history {
		if m.Role == domain.RoleUser {
			b.WriteString("User: ")
		} else {
			b.WriteString("AI: ")
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(message)
	return b.String()
}

// BuildPrompt prepends the retrieved document context, when present, to the
// flattened transcript.
func BuildPrompt(context, transcript string) string {
	if context == "" {
		return transcript
	}
	return "Context from the indexed document:\n" + context + "\n\n" + transcript
}

// SearchTurn formats a web-search result as an additional input turn.
func SearchTurn(result string) string {
	return "Search results: " + result
}
