package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/docchat/docchat-be/database"
	"github.com/docchat/docchat-be/types"
)

const DefaultTopK = 4

// RAGService answers questions by retrieving the most relevant chunks from a
// document index and conditioning the completion backend on them.
type RAGService struct {
	completer Completer
	topK      int
}

func NewRAGService(completer Completer, topK int) *RAGService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &RAGService{
		completer: completer,
		topK:      topK,
	}
}

// Answer retrieves top-k chunks for the question and generates an answer
// conditioned on them and on prior turns. Retrieval errors (including
// ErrIndexNotReady) pass through unchanged; completion failures are wrapped
// in GenerationError and are never retried.
func (s *RAGService) Answer(ctx context.Context, index *database.DocumentIndex, question string, history []types.Message) (string, []types.ScoredChunk, error) {
	retrieved, err := index.Search(ctx, question, s.topK)
	if err != nil {
		return "", nil, err
	}

	contextDocs := make([]string, len(retrieved))
	for i, chunk := range retrieved {
		contextDocs[i] = chunk.Content
	}

	log.Debug().
		Int("retrieved", len(retrieved)).
		Int("history_turns", len(history)).
		Msg("generating answer")

	answer, err := s.completer.Complete(ctx, question, contextDocs, history)
	if err != nil {
		return "", nil, &types.GenerationError{Err: err}
	}
	return answer, retrieved, nil
}
