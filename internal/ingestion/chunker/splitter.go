package chunker

import (
	"strings"

	"github.com/yungbote/vectorbridge-backend/internal/platform/envutil"
)

const (
	DefaultSize    = 500
	DefaultOverlap = 3
)

type Config struct {
	Size    int
	Overlap int
}

func ConfigFromEnv() Config {
	return Config{
		Size:    envutil.Int("CHUNK_SIZE", DefaultSize),
		Overlap: envutil.Int("CHUNK_OVERLAP", DefaultOverlap),
	}
}

func (c Config) normalized() Config {
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.Overlap < 0 || c.Overlap >= c.Size {
		c.Overlap = DefaultOverlap
	}
	return c
}

type Splitter struct {
	cfg Config
}

func New(cfg Config) *Splitter {
	return &Splitter{cfg: cfg.normalized()}
}

// Split cuts text into chunks of at most Size runes. A window ending
// mid-line is cut at its last newline instead; windows without one are cut
// hard at Size. Overlap runes from the end of each chunk lead the next one.
// Whitespace-only chunks are dropped. Deterministic for a given input.
func (s *Splitter) Split(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	size := s.cfg.Size
	overlap := s.cfg.Overlap

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			appendChunk(&chunks, runes[start:])
			break
		}
		cut := -1
		for i := end - 1; i > start; i-- {
			if runes[i] == '\n' {
				cut = i
				break
			}
		}
		var next int
		if cut > start {
			appendChunk(&chunks, runes[start:cut])
			next = cut + 1 - overlap
			if next <= start {
				next = cut + 1
			}
		} else {
			appendChunk(&chunks, runes[start:end])
			next = end - overlap
			if next <= start {
				next = end
			}
		}
		start = next
	}
	return chunks
}

func appendChunk(chunks *[]string, window []rune) {
	chunk := strings.TrimSpace(string(window))
	if chunk == "" {
		return
	}
	*chunks = append(*chunks, chunk)
}
