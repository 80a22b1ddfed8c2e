package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/config"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/index"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/llm/gemini"
)

var (
	docPath = flag.String("doc", "docs/myfile.pdf", "Path to the source document")
	outDir  = flag.String("out", "", "Index output directory (defaults to the configured index dir)")
)

func main() {
	flag.Parse()

	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.Google.APIKey == "" {
		log.Fatal().Msg("GOOGLE_API_KEY is not set")
	}

	dir := *outDir
	if dir == "" {
		dir = cfg.Index.Dir
	}

	provider := gemini.NewProvider(cfg.Google)
	builder := index.NewBuilder(provider, cfg.Index.ChunkSize, cfg.Index.ChunkOverlap)

	log.Info().Str("doc", *docPath).Str("out", dir).Msg("Building document index")

	store, err := builder.Build(context.Background(), *docPath, dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Index build failed")
	}

	log.Info().
		Int("chunks", len(store.Chunks)).
		Int("dimension", store.Dimension).
		Msg("Index written")
}
