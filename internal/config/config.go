package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Google GoogleConfig `mapstructure:"google"`
	Tavily TavilyConfig `mapstructure:"tavily"`
	Index  IndexConfig  `mapstructure:"index"`
	Client ClientConfig `mapstructure:"client"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type GoogleConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
}

type TavilyConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	MaxResults int    `mapstructure:"max_results"`
}

type IndexConfig struct {
	Dir          string `mapstructure:"dir"`
	ChunkSize    int    `mapstructure:"chunk_size"`
	ChunkOverlap int    `mapstructure:"chunk_overlap"`
	TopK         int    `mapstructure:"top_k"`
}

type ClientConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
		// Config file not found, use defaults and env vars
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the required API credentials are present. The
// process refuses to start without them.
func (c *Config) Validate() error {
	if c.Google.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is not set")
	}
	if c.Tavily.APIKey == "" {
		return fmt.Errorf("TAVILY_API_KEY is not set")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Mongo
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "chatbot")

	// Google
	v.SetDefault("google.model", "gemini-1.5-flash")
	v.SetDefault("google.embedding_model", "embedding-001")

	// Tavily
	v.SetDefault("tavily.base_url", "https://api.tavily.com")
	v.SetDefault("tavily.max_results", 3)

	// Index
	v.SetDefault("index.dir", "rag_index")
	v.SetDefault("index.chunk_size", 500)
	v.SetDefault("index.chunk_overlap", 50)
	v.SetDefault("index.top_k", 2)

	// Client
	v.SetDefault("client.api_url", "http://127.0.0.1:8000/chat")
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("google.api_key", "GOOGLE_API_KEY")
	v.BindEnv("tavily.api_key", "TAVILY_API_KEY")
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("client.api_url", "API_URL")
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("index.dir", "INDEX_DIR")
}
