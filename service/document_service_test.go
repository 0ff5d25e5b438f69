package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat/docchat-be/database"
	"github.com/docchat/docchat-be/types"
)

type stubExtractor struct {
	err error
}

func (e stubExtractor) ExtractText(data []byte) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return string(data), nil
}

type recordingBuilder struct {
	chunks []string
	index  *database.DocumentIndex
}

func (b *recordingBuilder) BuildIndex(ctx context.Context, chunks []string) (*database.DocumentIndex, error) {
	b.chunks = chunks
	return b.index, nil
}

func defaultTestSplitter() *TextSplitter {
	return NewTextSplitter(types.SplitterConfig{ChunkSize: 50, ChunkOverlap: 10, Separator: "\n"})
}

func TestIngestConcatenatesDocuments(t *testing.T) {
	builder := &recordingBuilder{}
	docs := NewDocumentService(stubExtractor{}, defaultTestSplitter(), builder)

	_, err := docs.Ingest(context.Background(), []types.Document{
		{Filename: "a.pdf", Data: []byte("first document")},
		{Filename: "b.pdf", Data: []byte("second document")},
	})
	require.NoError(t, err)
	require.NotEmpty(t, builder.chunks)

	joined := ""
	for _, chunk := range builder.chunks {
		joined += chunk
	}
	assert.Contains(t, joined, "first document")
	assert.Contains(t, joined, "second document")
}

func TestIngestNoDocuments(t *testing.T) {
	docs := NewDocumentService(stubExtractor{}, defaultTestSplitter(), &recordingBuilder{})

	_, err := docs.Ingest(context.Background(), nil)
	assert.Error(t, err)
}

func TestIngestWrapsExtractionFailure(t *testing.T) {
	boom := errors.New("corrupt xref table")
	docs := NewDocumentService(stubExtractor{err: boom}, defaultTestSplitter(), &recordingBuilder{})

	_, err := docs.Ingest(context.Background(), []types.Document{
		{Filename: "broken.pdf", Data: []byte("whatever")},
	})

	var extractionErr *types.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "broken.pdf", extractionErr.Filename)
	assert.ErrorIs(t, err, boom)
}
