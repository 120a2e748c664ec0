package processor

import (
	"context"
	"errors"
	"strings"

	"github.com/deckgen/deckgen/internal/domain/ports"
)

// ErrEmptyDescription is returned when there is nothing to expand. The
// repetition algorithm needs at least one source word.
var ErrEmptyDescription = errors.New("description has no words to expand")

// RepetitionExpander implements ports.Expander by repeating the description
// until the word target is met, then truncating to exactly that many words.
// A real implementation would call an LLM or a research backend.
type RepetitionExpander struct{}

// NewRepetitionExpander creates the stub expander.
func NewRepetitionExpander() *RepetitionExpander {
	return &RepetitionExpander{}
}

// Expand returns text of exactly targetWords words built by repeating the
// description. Descriptions already at or past the target are truncated.
func (e *RepetitionExpander) Expand(ctx context.Context, description string, targetWords int) (string, error) {
	words := strings.Fields(description)
	if len(words) == 0 {
		return "", ErrEmptyDescription
	}
	if targetWords <= 0 {
		return "", nil
	}

	repetitions := targetWords/len(words) + 1

	expanded := make([]string, 0, repetitions*len(words))
	for i := 0; i < repetitions; i++ {
		expanded = append(expanded, words...)
	}

	return strings.Join(expanded[:targetWords], " "), nil
}

// Ensure RepetitionExpander implements ports.Expander.
var _ ports.Expander = (*RepetitionExpander)(nil)
