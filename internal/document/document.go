// Package document loads the reference PDF and finds the parts of it that
// are relevant to a question.
package document

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrInvalidChunking = errors.New("chunk overlap must be smaller than the chunk size")

	wordPattern       = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	whitespacePattern = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)
)

// ExtractText returns the plain text of every page of a PDF, one page per line.
func ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("PDF file not found at %s > %w", path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("pdf.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var b strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			slog.Default().Debug("skip a page without extractable text",
				slog.String("path", path),
				slog.Int("page", pageIndex),
				slog.Any("error", err),
			)
			continue
		}
		if content == "" {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Chunk collapses every whitespace run to a single space, keeping one at either
// edge, and splits text into windows of size runes, each starting
// size-overlap runes after the previous one.
func Chunk(text string, size, overlap int) ([]string, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w: size %d, overlap %d", ErrInvalidChunking, size, overlap)
	}

	runes := []rune(whitespacePattern.ReplaceAllString(text, " "))
	var chunks []string
	for start := 0; start < len(runes); start += size - overlap {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks, nil
}

// Corpus is a chunked document ready for retrieval.
type Corpus struct {
	chunks []chunk
}

type chunk struct {
	text  string
	words map[string]struct{}
}

func NewCorpus(texts []string) *Corpus {
	chunks := make([]chunk, 0, len(texts))
	for _, text := range texts {
		chunks = append(chunks, chunk{text: text, words: words(text)})
	}
	return &Corpus{chunks: chunks}
}

// Load extracts and chunks the PDF at path.
func Load(path string, size, overlap int) (*Corpus, error) {
	text, err := ExtractText(path)
	if err != nil {
		return nil, fmt.Errorf("ExtractText() > %w", err)
	}
	texts, err := Chunk(text, size, overlap)
	if err != nil {
		return nil, fmt.Errorf("Chunk() > %w", err)
	}
	return NewCorpus(texts), nil
}

func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.chunks)
}

// Retrieve returns up to topK chunks ranked by how many distinct words they
// share with the question. Chunks sharing no word are only returned when no
// chunk shares any.
func (c *Corpus) Retrieve(question string, topK int) []string {
	if c.Len() == 0 || topK <= 0 {
		return nil
	}

	questionWords := words(question)
	type scored struct {
		score int
		text  string
	}
	ranked := make([]scored, 0, len(c.chunks))
	for _, ch := range c.chunks {
		score := 0
		for word := range questionWords {
			if _, ok := ch.words[word]; ok {
				score++
			}
		}
		ranked = append(ranked, scored{score: score, text: ch.text})
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		if n := cmp.Compare(b.score, a.score); n != 0 {
			return n
		}
		return strings.Compare(b.text, a.text)
	})

	var result []string
	for _, s := range ranked {
		if s.score > 0 {
			result = append(result, s.text)
		}
	}
	if len(result) == 0 {
		for _, s := range ranked {
			result = append(result, s.text)
		}
	}
	if len(result) > topK {
		result = result[:topK]
	}
	return result
}

func words(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		set[word] = struct{}{}
	}
	return set
}
