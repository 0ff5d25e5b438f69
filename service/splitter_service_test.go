package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docchat/docchat-be/types"
)

func TestSplitShortTextSingleChunk(t *testing.T) {
	splitter := NewTextSplitter(types.SplitterConfig{ChunkSize: 100, ChunkOverlap: 20, Separator: "\n"})

	chunks := splitter.Split("short text")
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestSplitEmptyText(t *testing.T) {
	splitter := NewTextSplitter(types.SplitterConfig{ChunkSize: 100, ChunkOverlap: 20, Separator: "\n"})

	assert.Nil(t, splitter.Split(""))
}

func TestSplitDeterministic(t *testing.T) {
	splitter := NewTextSplitter(types.SplitterConfig{ChunkSize: 40, ChunkOverlap: 10, Separator: "\n"})
	text := strings.Repeat("some sentence about nothing much\n", 20)

	first := splitter.Split(text)
	second := splitter.Split(text)
	assert.Equal(t, first, second)
}

func TestSplitRespectsChunkSize(t *testing.T) {
	splitter := NewTextSplitter(types.SplitterConfig{ChunkSize: 40, ChunkOverlap: 10, Separator: "\n"})
	text := strings.Repeat("line of text here\n", 30)

	for _, chunk := range splitter.Split(text) {
		assert.LessOrEqual(t, len([]rune(chunk)), 40)
	}
}

func TestSplitExactOverlapWithoutSeparator(t *testing.T) {
	// No separator in the text forces hard cuts, so every consecutive pair
	// must share exactly the configured overlap.
	splitter := NewTextSplitter(types.SplitterConfig{ChunkSize: 10, ChunkOverlap: 3, Separator: "\n"})
	text := "abcdefghijklmnopqrstuvwxyz0123456789"

	chunks := splitter.Split(text)
	require.Greater(t, len(chunks), 1)

	for i := 0; i < len(chunks)-1; i++ {
		suffix := chunks[i][len(chunks[i])-3:]
		prefix := chunks[i+1][:3]
		assert.Equal(t, suffix, prefix, "chunks %d and %d", i, i+1)
	}

	// Dropping each chunk's overlap prefix reconstructs the original text.
	rebuilt := chunks[0]
	for _, chunk := range chunks[1:] {
		rebuilt += chunk[3:]
	}
	assert.Equal(t, text, rebuilt)
}

func TestSplitPrefersSeparatorBoundary(t *testing.T) {
	splitter := NewTextSplitter(types.SplitterConfig{ChunkSize: 20, ChunkOverlap: 5, Separator: "\n"})
	text := strings.Repeat("aaaaaaa\n", 10)

	chunks := splitter.Split(text)
	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks[:len(chunks)-1] {
		assert.True(t, strings.HasSuffix(chunk, "\n"), "chunk %d should end at a separator", i)
	}
}

func TestSplitOverlapAcrossSeparatorCut(t *testing.T) {
	splitter := NewTextSplitter(types.SplitterConfig{ChunkSize: 20, ChunkOverlap: 5, Separator: "\n"})
	text := strings.Repeat("aaaaaaa\n", 10)

	chunks := splitter.Split(text)
	require.Greater(t, len(chunks), 1)
	for i := 0; i < len(chunks)-1; i++ {
		suffix := chunks[i][len(chunks[i])-5:]
		prefix := chunks[i+1][:5]
		assert.Equal(t, suffix, prefix)
	}
}

func TestSplitOversizedUnitHardCut(t *testing.T) {
	splitter := NewTextSplitter(types.SplitterConfig{ChunkSize: 10, ChunkOverlap: 0, Separator: "\n"})
	text := strings.Repeat("x", 35)

	chunks := splitter.Split(text)
	require.Len(t, chunks, 4)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 10)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitZeroConfigFallsBackToDefaults(t *testing.T) {
	splitter := NewTextSplitter(types.SplitterConfig{})
	assert.Equal(t, DefaultSplitterConfig.ChunkSize, splitter.chunkSize)
	assert.Equal(t, DefaultSplitterConfig.ChunkOverlap, splitter.chunkOverlap)
}
