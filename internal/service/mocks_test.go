package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
)

// MockRetriever mocks the domain.Retriever interface
type MockRetriever struct {
	mock.Mock
}

func (m *MockRetriever) Retrieve(ctx context.Context, query string, topK int) ([]domain.SearchResult, error) {
	args := m.Called(ctx, query, topK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchResult), args.Error(1)
}

// MockProvider mocks the llm.Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) Generate(ctx context.Context, turns []string) (string, error) {
	args := m.Called(ctx, turns)
	return args.String(0), args.Error(1)
}

// MockSearcher mocks the search.Searcher interface
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

// MockHistoryRepository mocks domain.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, sessionID string, role domain.MessageRole, content string) error {
	args := m.Called(ctx, sessionID, role, content)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Message, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockHistoryRepository) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// fakeHistory is an in-memory HistoryRepository preserving insertion order,
// used where tests assert on what actually got stored.
type fakeHistory struct {
	messages []domain.Message
}

func (f *fakeHistory) Append(ctx context.Context, sessionID string, role domain.MessageRole, content string) error {
	f.messages = append(f.messages, domain.Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	})
	return nil
}

func (f *fakeHistory) ListBySession(ctx context.Context, sessionID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range f.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeHistory) Clear(ctx context.Context, sessionID string) error {
	var kept []domain.Message
	for _, m := range f.messages {
		if m.SessionID != sessionID {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}
