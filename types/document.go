package types

import "time"

// Document is an uploaded file held in memory only for the duration of
// ingestion. Nothing is written to disk.
type Document struct {
	Filename   string
	Data       []byte
	UploadedAt time.Time
}

// ScoredChunk is one retrieved chunk with its similarity to the query.
type ScoredChunk struct {
	Content    string  `json:"content"`
	Similarity float32 `json:"similarity"`
}

// SplitterConfig controls how extracted text is cut into chunks.
type SplitterConfig struct {
	ChunkSize    int    `mapstructure:"chunk_size"`
	ChunkOverlap int    `mapstructure:"chunk_overlap"`
	Separator    string `mapstructure:"separator"`
}
