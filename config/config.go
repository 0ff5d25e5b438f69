package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/docchat/docchat-be/types"
)

type Config struct {
	Port           string `mapstructure:"port"`
	Provider       string `mapstructure:"provider"`
	AIEndpoint     string `mapstructure:"ai_endpoint"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`

	Splitter   types.SplitterConfig `mapstructure:"splitter"`
	Retrieval  RetrievalConfig      `mapstructure:"retrieval"`
	EmbedRetry RetryConfig          `mapstructure:"embed_retry"`
}

type RetrievalConfig struct {
	TopK int `mapstructure:"top_k"`
}

type RetryConfig struct {
	MaxAttempts  int `mapstructure:"max_attempts"`
	DelaySeconds int `mapstructure:"delay_seconds"`
}

func (c RetryConfig) Delay() time.Duration {
	return time.Duration(c.DelaySeconds) * time.Second
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Credentials come from the environment, never from the config file.
	v.AutomaticEnv()
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	v.SetDefault("port", "8000")
	v.SetDefault("provider", "openai")
	v.SetDefault("splitter.chunk_size", 1000)
	v.SetDefault("splitter.chunk_overlap", 200)
	v.SetDefault("splitter.separator", "\n")
	v.SetDefault("retrieval.top_k", 4)
	v.SetDefault("embed_retry.max_attempts", 5)
	v.SetDefault("embed_retry.delay_seconds", 10)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Splitter.ChunkOverlap >= config.Splitter.ChunkSize {
		return nil, fmt.Errorf("chunk_overlap %d must be smaller than chunk_size %d",
			config.Splitter.ChunkOverlap, config.Splitter.ChunkSize)
	}

	return &config, nil
}
