package service

import (
	"github.com/docchat/docchat-be/types"
)

// TextSplitter cuts a text blob into overlapping chunks. Scanning is
// rune-based so multi-byte characters are never cut in half.
type TextSplitter struct {
	chunkSize    int
	chunkOverlap int
	separator    []rune
}

var DefaultSplitterConfig = types.SplitterConfig{
	ChunkSize:    1000,
	ChunkOverlap: 200,
	Separator:    "\n",
}

func NewTextSplitter(config types.SplitterConfig) *TextSplitter {
	if config.ChunkSize <= 0 {
		config = DefaultSplitterConfig
	}
	return &TextSplitter{
		chunkSize:    config.ChunkSize,
		chunkOverlap: config.ChunkOverlap,
		separator:    []rune(config.Separator),
	}
}

// Split produces chunks of at most chunkSize runes. Each chunk prefers to end
// just after the last separator inside its window; consecutive chunks share
// chunkOverlap runes of context. Same input always yields the same chunks.
func (s *TextSplitter) Split(text string) []string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}
	if n <= s.chunkSize {
		return []string{text}
	}

	var chunks []string
	pos := 0
	for pos < n {
		end := pos + s.chunkSize
		if end >= n {
			chunks = append(chunks, string(runes[pos:]))
			break
		}

		cut := end
		if idx := lastSeparator(runes[pos:end], s.separator); idx > 0 {
			cut = pos + idx + len(s.separator)
		}
		chunks = append(chunks, string(runes[pos:cut]))

		next := cut - s.chunkOverlap
		if next <= pos {
			// Guarantee forward progress when the chunk is shorter than
			// the overlap.
			next = cut
		}
		pos = next
	}

	return chunks
}

// lastSeparator returns the rune index of the last occurrence of sep in
// runes, or -1.
func lastSeparator(runes, sep []rune) int {
	if len(sep) == 0 || len(sep) > len(runes) {
		return -1
	}
	for i := len(runes) - len(sep); i >= 0; i-- {
		match := true
		for j := range sep {
			if runes[i+j] != sep[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
