package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadForTest(t *testing.T) *Config {
	t.Helper()
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadForTest(t)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "chatbot", cfg.Mongo.Database)
	assert.Equal(t, "gemini-1.5-flash", cfg.Google.Model)
	assert.Equal(t, "embedding-001", cfg.Google.EmbeddingModel)
	assert.Equal(t, "https://api.tavily.com", cfg.Tavily.BaseURL)
	assert.Equal(t, "rag_index", cfg.Index.Dir)
	assert.Equal(t, 500, cfg.Index.ChunkSize)
	assert.Equal(t, 50, cfg.Index.ChunkOverlap)
	assert.Equal(t, 2, cfg.Index.TopK)
	assert.Equal(t, "http://127.0.0.1:8000/chat", cfg.Client.APIURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("TAVILY_API_KEY", "t-key")
	t.Setenv("MONGO_URI", "mongodb://mongo.example:27017")
	t.Setenv("API_URL", "http://chat.example/chat")

	cfg := loadForTest(t)

	assert.Equal(t, "g-key", cfg.Google.APIKey)
	assert.Equal(t, "t-key", cfg.Tavily.APIKey)
	assert.Equal(t, "mongodb://mongo.example:27017", cfg.Mongo.URI)
	assert.Equal(t, "http://chat.example/chat", cfg.Client.APIURL)
}

func TestValidate(t *testing.T) {
	t.Run("missing google key", func(t *testing.T) {
		cfg := &Config{Tavily: TavilyConfig{APIKey: "t"}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	})

	t.Run("missing tavily key", func(t *testing.T) {
		cfg := &Config{Google: GoogleConfig{APIKey: "g"}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TAVILY_API_KEY")
	})

	t.Run("both present", func(t *testing.T) {
		cfg := &Config{
			Google: GoogleConfig{APIKey: "g"},
			Tavily: TavilyConfig{APIKey: "t"},
		}
		assert.NoError(t, cfg.Validate())
	})
}
