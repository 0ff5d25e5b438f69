package service

import (
	"context"

	"github.com/docchat/docchat-be/types"
)

// Embedder computes fixed-dimensionality vectors for chunks and queries.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer turns a question plus retrieved context and prior turns into an
// answer. Implementations wrap a hosted LLM; tests substitute deterministic
// stubs.
type Completer interface {
	Complete(ctx context.Context, question string, contextDocs []string, history []types.Message) (string, error)
}

// Extractor turns raw uploaded bytes into a text blob.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}
