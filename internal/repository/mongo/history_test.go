package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/config"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
)

// Integration test against a live MongoDB instance. Set TEST_MONGO_URI to
// run it, e.g. TEST_MONGO_URI=mongodb://localhost:27017 go test ./...
func TestHistoryRepository_Integration(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("Requires database connection - set TEST_MONGO_URI to run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := Connect(ctx, config.MongoConfig{URI: uri})
	require.NoError(t, err)
	defer client.Disconnect(context.Background())

	repo := NewHistoryRepository(client, "chatbot_test")
	sessionA := "it-session-a"
	sessionB := "it-session-b"
	t.Cleanup(func() {
		repo.Clear(context.Background(), sessionA)
		repo.Clear(context.Background(), sessionB)
	})

	require.NoError(t, repo.Clear(ctx, sessionA))
	require.NoError(t, repo.Clear(ctx, sessionB))

	require.NoError(t, repo.Append(ctx, sessionA, domain.RoleUser, "Hello"))
	require.NoError(t, repo.Append(ctx, sessionA, domain.RoleAssistant, "Hi there!"))
	require.NoError(t, repo.Append(ctx, sessionB, domain.RoleUser, "other"))

	msgs, err := repo.ListBySession(ctx, sessionA)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, "Hello", msgs[0].Content)
	assert.Equal(t, domain.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Hi there!", msgs[1].Content)
	assert.NotEmpty(t, msgs[0].ID)

	// Clear is scoped to one session and idempotent.
	require.NoError(t, repo.Clear(ctx, sessionA))
	require.NoError(t, repo.Clear(ctx, sessionA))

	msgs, err = repo.ListBySession(ctx, sessionA)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	other, err := repo.ListBySession(ctx, sessionB)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
