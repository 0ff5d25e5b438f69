package cmd

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/docchat/docchat-be/config"
	"github.com/docchat/docchat-be/database"
	"github.com/docchat/docchat-be/handler"
	"github.com/docchat/docchat-be/service"
)

var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document chat server",
	Long:  `Starts the HTTP server that handles document uploads and questions`,
	Run: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}

		var embedder service.Embedder
		var completer service.Completer
		switch cfg.Provider {
		case "gemini":
			geminiService, err := service.NewGeminiService(context.Background(),
				cfg.GeminiAPIKey, cfg.Model, cfg.EmbeddingModel)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to initialize Gemini client")
			}
			defer geminiService.Close()
			embedder, completer = geminiService, geminiService
		default:
			openaiService := service.NewOpenAIService(cfg.AIEndpoint,
				cfg.OpenAIAPIKey, cfg.Model, cfg.EmbeddingModel)
			embedder, completer = openaiService, openaiService
		}

		// Only index builds carry the retry budget; query embeddings fail
		// fast like the completion call does.
		retryingEmbedder := service.NewRetryingEmbedder(embedder, service.RetryPolicy{
			MaxAttempts: cfg.EmbedRetry.MaxAttempts,
			Delay:       cfg.EmbedRetry.Delay(),
		})
		vectorStore := database.NewVectorStore(retryingEmbedder, embedder)
		sessions := database.NewSessionStore()

		pdfService := service.NewPDFService()
		splitter := service.NewTextSplitter(cfg.Splitter)
		documentService := service.NewDocumentService(pdfService, splitter, vectorStore)
		ragService := service.NewRAGService(completer, cfg.Retrieval.TopK)

		uploadHandler := handler.NewUploadHandler(documentService, sessions)
		askHandler := handler.NewAskHandler(ragService, sessions)
		searchHandler := handler.NewSearchHandler(sessions)

		router := handler.NewRouter(uploadHandler, askHandler, searchHandler)

		log.Info().Str("port", cfg.Port).Str("provider", cfg.Provider).Msg("starting server")
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
