package service

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/docchat/docchat-be/types"
)

// GeminiService implements Embedder and Completer against the Google
// generative AI API. Selected with provider: gemini.
type GeminiService struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGeminiService(ctx context.Context, apiKey, model, embeddingModel string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no Gemini API key provided")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:         client,
		model:          model,
		embeddingModel: embeddingModel,
	}, nil
}

func (s *GeminiService) Complete(ctx context.Context, question string, contextDocs []string, history []types.Message) (string, error) {
	model := s.client.GenerativeModel(s.model)
	chat := model.StartChat()
	chat.History = make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == types.RoleAssistant {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Parts: []genai.Part{genai.Text(msg.Content)},
			Role:  role,
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(buildPrompt(question, contextDocs)))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func (s *GeminiService) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	em := s.client.EmbeddingModel(s.embeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}
	return res.Embedding.Values, nil
}

func (s *GeminiService) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	em := s.client.EmbeddingModel(s.embeddingModel)
	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}
	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, err
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, e := range res.Embeddings {
		vectors[i] = e.Values
	}
	return vectors, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}
