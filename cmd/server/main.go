package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/api"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/config"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/index"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/llm/gemini"
	mongorepo "github.com/abeeranajam31/Ai-powered-Chatot/internal/repository/mongo"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/search/tavily"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/service"
)

func main() {
	// Load .env file - try multiple locations
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Missing required configuration")
	}

	log.Info().
		Str("addr", cfg.Server.Addr()).
		Str("index_dir", cfg.Index.Dir).
		Msg("Starting chatbot server")

	// Connect to MongoDB
	ctx := context.Background()
	mongoClient, err := mongorepo.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(context.Background())

	historyRepo := mongorepo.NewHistoryRepository(mongoClient, cfg.Mongo.Database)

	// Load the persisted document index (read-only)
	store, err := index.Load(cfg.Index.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Index.Dir).Msg("Failed to load document index (run the indexer first)")
	}
	log.Info().Int("chunks", len(store.Chunks)).Str("source", store.Source).Msg("Document index loaded")

	// Collaborators
	provider := gemini.NewProvider(cfg.Google)
	retriever := index.NewRetriever(store, provider)
	searcher, err := tavily.NewClient(cfg.Tavily)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create search client")
	}

	chatService := service.NewChatService(historyRepo, retriever, provider, searcher)
	router := api.NewRouter(chatService, historyRepo)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
