package database

import (
	"context"
	"errors"
	"hash/fnv"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat/docchat-be/types"
)

// wordEmbedder is a deterministic bag-of-words embedder for tests: identical
// texts get identical vectors, overlapping vocabulary gets similar ones.
type wordEmbedder struct{}

func (wordEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return wordVector(text), nil
}

func (wordEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = wordVector(text)
	}
	return vectors, nil
}

func wordVector(text string) []float32 {
	vec := make([]float32, 64)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?\"'")
		if word == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[h.Sum32()%64]++
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	inv := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= inv
	}
	return vec
}

type failingEmbedder struct{ err error }

func (e failingEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return nil, e.err
}

func (e failingEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, e.err
}

func testStore() *VectorStore {
	return NewVectorStore(wordEmbedder{}, wordEmbedder{})
}

func TestBuildIndexSelfRetrieval(t *testing.T) {
	chunks := []string{
		"The sky is blue.",
		"Grass is green.",
		"Roses are red.",
	}
	index, err := testStore().BuildIndex(context.Background(), chunks)
	require.NoError(t, err)
	require.Equal(t, 3, index.Len())

	// A query identical to an indexed chunk must rank that chunk first.
	for _, chunk := range chunks {
		results, err := index.Search(context.Background(), chunk, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, chunk, results[0].Content)
		assert.InDelta(t, 1.0, float64(results[0].Similarity), 0.001)
	}
}

func TestSearchRanksByRelevance(t *testing.T) {
	index, err := testStore().BuildIndex(context.Background(), []string{
		"The sky is blue.",
		"Compilers translate source code.",
	})
	require.NoError(t, err)

	results, err := index.Search(context.Background(), "What color is the sky?", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "The sky is blue.", results[0].Content)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}

func TestSearchNeverBuiltIndex(t *testing.T) {
	var index *DocumentIndex

	_, err := index.Search(context.Background(), "anything", 3)
	assert.ErrorIs(t, err, types.ErrIndexNotReady)
	assert.Equal(t, 0, index.Len())
}

func TestSearchClampsLimitToIndexSize(t *testing.T) {
	index, err := testStore().BuildIndex(context.Background(), []string{"one chunk", "two chunk"})
	require.NoError(t, err)

	results, err := index.Search(context.Background(), "chunk", 50)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestBuildIndexNoChunks(t *testing.T) {
	_, err := testStore().BuildIndex(context.Background(), nil)
	assert.Error(t, err)
}

func TestBuildIndexPropagatesEmbedderError(t *testing.T) {
	boom := errors.New("embedding backend down")
	store := NewVectorStore(failingEmbedder{err: boom}, wordEmbedder{})

	_, err := store.BuildIndex(context.Background(), []string{"chunk"})
	assert.ErrorIs(t, err, boom)
}
