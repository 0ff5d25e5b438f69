package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/docchat/docchat-be/database"
	"github.com/docchat/docchat-be/types"
)

// IndexBuilder is the capability DocumentService needs from the vector store.
type IndexBuilder interface {
	BuildIndex(ctx context.Context, chunks []string) (*database.DocumentIndex, error)
}

// DocumentService runs the ingestion pipeline: extract each uploaded file,
// concatenate the text blobs, chunk, and build the embedding index. The raw
// bytes are not retained once extraction is done.
type DocumentService struct {
	extractor Extractor
	splitter  *TextSplitter
	builder   IndexBuilder
}

func NewDocumentService(extractor Extractor, splitter *TextSplitter, builder IndexBuilder) *DocumentService {
	return &DocumentService{
		extractor: extractor,
		splitter:  splitter,
		builder:   builder,
	}
}

// Ingest turns one or more uploaded documents into a single searchable index.
func (s *DocumentService) Ingest(ctx context.Context, docs []types.Document) (*database.DocumentIndex, error) {
	if len(docs) == 0 {
		return nil, errors.New("no documents to ingest")
	}

	var blob strings.Builder
	for _, doc := range docs {
		text, err := s.extractor.ExtractText(doc.Data)
		if err != nil {
			return nil, &types.ExtractionError{Filename: doc.Filename, Err: err}
		}
		blob.WriteString(text)
		blob.WriteString("\n")
	}

	chunks := s.splitter.Split(blob.String())
	if len(chunks) == 0 {
		return nil, &types.ExtractionError{
			Filename: docs[0].Filename,
			Err:      errors.New("documents contain no extractable text"),
		}
	}

	log.Info().
		Int("files", len(docs)).
		Int("chunks", len(chunks)).
		Msg("ingesting documents")

	return s.builder.BuildIndex(ctx, chunks)
}
