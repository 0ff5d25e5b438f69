package database

import (
	"context"
	"errors"
	"runtime"
	"strconv"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"

	"github.com/docchat/docchat-be/types"
)

const collectionName = "chunks"

// Embedder is the capability the vector store needs from an embedding
// backend.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorStore builds in-memory nearest-neighbor indexes over text chunks.
// Chunk vectors are computed through docEmbedder, which carries the retry
// budget; query vectors go through queryEmbedder without retry, matching the
// build/query asymmetry of the embedding contract.
type VectorStore struct {
	docEmbedder   Embedder
	queryEmbedder Embedder
}

func NewVectorStore(docEmbedder, queryEmbedder Embedder) *VectorStore {
	return &VectorStore{
		docEmbedder:   docEmbedder,
		queryEmbedder: queryEmbedder,
	}
}

// DocumentIndex owns the (chunk, vector) pairs of one uploaded document batch
// and answers nearest-neighbor queries. Built once per upload, never mutated.
type DocumentIndex struct {
	collection *chromem.Collection
}

// BuildIndex embeds every chunk and loads the pairs into a fresh index.
func (s *VectorStore) BuildIndex(ctx context.Context, chunks []string) (*DocumentIndex, error) {
	if len(chunks) == 0 {
		return nil, errors.New("cannot build an index from zero chunks")
	}

	vectors, err := s.docEmbedder.EmbedDocuments(ctx, chunks)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(chunks) {
		return nil, errors.New("embedding count does not match chunk count")
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, s.embeddingFunc())
	if err != nil {
		return nil, err
	}

	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = chromem.Document{
			ID:        strconv.Itoa(i),
			Content:   chunk,
			Embedding: vectors[i],
		}
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, err
	}

	log.Debug().Int("chunks", len(chunks)).Msg("built document index")
	return &DocumentIndex{collection: collection}, nil
}

func (s *VectorStore) embeddingFunc() chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return s.queryEmbedder.EmbedQuery(ctx, text)
	}
}

// Search returns the k chunks closest to the query, most relevant first.
// Querying an index that was never built, or holds nothing, fails with
// ErrIndexNotReady rather than returning an empty success.
func (ix *DocumentIndex) Search(ctx context.Context, query string, k int) ([]types.ScoredChunk, error) {
	if ix == nil || ix.collection == nil || ix.collection.Count() == 0 {
		return nil, types.ErrIndexNotReady
	}
	if k <= 0 {
		k = 1
	}
	if count := ix.collection.Count(); k > count {
		k = count
	}

	results, err := ix.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, err
	}

	chunks := make([]types.ScoredChunk, len(results))
	for i, res := range results {
		chunks[i] = types.ScoredChunk{
			Content:    res.Content,
			Similarity: res.Similarity,
		}
	}
	return chunks, nil
}

// Len reports how many chunks the index holds.
func (ix *DocumentIndex) Len() int {
	if ix == nil || ix.collection == nil {
		return 0
	}
	return ix.collection.Count()
}
