package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/llm"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/search"
)

const (
	// historyWindow is the number of stored messages flattened into the
	// generation prompt.
	historyWindow = 6
	// topK is the number of document chunks retrieved per request.
	topK = 2
)

// liveKeywords mark a generated reply as needing live data. The check is
// a case-insensitive substring match on the reply text.
var liveKeywords = []string{"current", "latest", "today", "now", "real-time"}

// ChatService answers one conversation turn: retrieve document context,
// generate a reply, and re-generate with web search results when the
// first reply asks for live data.
type ChatService struct {
	history   domain.HistoryRepository
	retriever domain.Retriever
	provider  llm.Provider
	searcher  search.Searcher
}

func NewChatService(
	history domain.HistoryRepository,
	retriever domain.Retriever,
	provider llm.Provider,
	searcher search.Searcher,
) *ChatService {
	return &ChatService{
		history:   history,
		retriever: retriever,
		provider:  provider,
		searcher:  searcher,
	}
}

// Respond processes one user message for a session and returns the reply
// text. It never fails past its own boundary: collaborator errors are
// converted into a reply describing the error, and the turn is still
// best-effort persisted as one user and one assistant message.
func (s *ChatService) Respond(ctx context.Context, sessionID, message string) string {
	reply := s.run(ctx, sessionID, message)

	if err := s.history.Append(ctx, sessionID, domain.RoleUser, message); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to save user message")
	}
	if err := s.history.Append(ctx, sessionID, domain.RoleAssistant, reply); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to save assistant message")
	}

	return reply
}

func (s *ChatService) run(ctx context.Context, sessionID, message string) string {
	history, err := s.history.ListBySession(ctx, sessionID)
	if err != nil {
		return fmt.Sprintf("Error running chat: %v", err)
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	transcript := llm.FlattenTranscript(history, message)

	// Retrieval uses the raw new message, independent of the transcript.
	docContext, err := s.retrieveContext(ctx, message)
	if err != nil {
		return fmt.Sprintf("Error running chat: %v", err)
	}

	turns := []string{llm.BuildPrompt(docContext, transcript)}
	reply, err := s.provider.Generate(ctx, turns)
	if err != nil {
		return fmt.Sprintf("Error in chat processing: %v", err)
	}

	if needsLiveData(reply) {
		result, err := s.searcher.Search(ctx, message)
		if err != nil {
			// The failure is surfaced to the model as the search result,
			// and the second generation still runs.
			result = fmt.Sprintf("Tavily search failed: %v", err)
		}
		turns = append(turns, llm.SearchTurn(result))

		reply, err = s.provider.Generate(ctx, turns)
		if err != nil {
			return fmt.Sprintf("Error in chat processing: %v", err)
		}
	}

	return reply
}

func (s *ChatService) retrieveContext(ctx context.Context, query string) (string, error) {
	results, err := s.retriever.Retrieve(ctx, query, topK)
	if err != nil {
		return "", err
	}
	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.Chunk.Text)
	}
	return strings.Join(texts, "\n"), nil
}

func needsLiveData(reply string) bool {
	lower := strings.ToLower(reply)
	for _, kw := range liveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
