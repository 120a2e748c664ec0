// Package processor contains the placeholder content-acquisition adapters.
// Both are deliberately trivial: they keep the port contracts exercised so
// a real speech-to-text or LLM backend can replace them without touching
// the pipeline.
package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deckgen/deckgen/internal/domain/ports"
)

// Logger is the minimal logger the adapters report skipped files to.
type Logger interface {
	Warn(msg string, args ...interface{})
}

// PlaceholderTranscriber implements ports.Transcriber without any audio
// decoding. Real implementations would wrap Whisper, Google Speech-to-Text
// or similar.
type PlaceholderTranscriber struct {
	localizer ports.Localizer
	logger    Logger
}

// NewPlaceholderTranscriber creates the stub transcriber.
func NewPlaceholderTranscriber(localizer ports.Localizer, logger Logger) *PlaceholderTranscriber {
	return &PlaceholderTranscriber{localizer: localizer, logger: logger}
}

// Transcribe emits a fixed placeholder line per existing audio file,
// joined with blank lines. Missing files are logged and skipped.
func (t *PlaceholderTranscriber) Transcribe(ctx context.Context, audioPaths []string) (string, error) {
	transcripts := make([]string, 0, len(audioPaths))

	for _, path := range audioPaths {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if _, err := os.Stat(path); err != nil {
			t.logger.Warn("%s: %s", t.localizer.Get("file_not_found"), path)
			continue
		}

		transcripts = append(transcripts, fmt.Sprintf("[Transcribed text from %s]", filepath.Base(path)))
	}

	return strings.Join(transcripts, "\n\n"), nil
}

// Ensure PlaceholderTranscriber implements ports.Transcriber.
var _ ports.Transcriber = (*PlaceholderTranscriber)(nil)
