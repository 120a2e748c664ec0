package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckgen/deckgen/internal/adapters/secondary/i18n"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(msg string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(msg, args...))
}

func TestPlaceholderTranscriber_Transcribe(t *testing.T) {
	ctx := context.Background()

	writeAudio := func(t *testing.T, dir, name string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("fake audio"), 0600))
		return path
	}

	t.Run("emits one placeholder line per file", func(t *testing.T) {
		dir := t.TempDir()
		first := writeAudio(t, dir, "intro.mp3")
		second := writeAudio(t, dir, "outro.wav")

		transcriber := NewPlaceholderTranscriber(i18n.New("en"), &recordingLogger{})

		text, err := transcriber.Transcribe(ctx, []string{first, second})
		require.NoError(t, err)

		assert.Equal(t, "[Transcribed text from intro.mp3]\n\n[Transcribed text from outro.wav]", text)
	})

	t.Run("skips missing files with a warning", func(t *testing.T) {
		dir := t.TempDir()
		existing := writeAudio(t, dir, "talk.mp3")
		missing := filepath.Join(dir, "nope.mp3")

		log := &recordingLogger{}
		transcriber := NewPlaceholderTranscriber(i18n.New("en"), log)

		text, err := transcriber.Transcribe(ctx, []string{missing, existing})
		require.NoError(t, err)

		assert.Equal(t, "[Transcribed text from talk.mp3]", text)
		require.Len(t, log.warnings, 1)
		assert.Contains(t, log.warnings[0], missing)
	})

	t.Run("no files yields empty text", func(t *testing.T) {
		transcriber := NewPlaceholderTranscriber(i18n.New("en"), &recordingLogger{})

		text, err := transcriber.Transcribe(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		transcriber := NewPlaceholderTranscriber(i18n.New("en"), &recordingLogger{})

		_, err := transcriber.Transcribe(cancelled, []string{"talk.mp3"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRepetitionExpander_Expand(t *testing.T) {
	ctx := context.Background()
	expander := NewRepetitionExpander()

	t.Run("repeats up to the exact word target", func(t *testing.T) {
		text, err := expander.Expand(ctx, "hello world", 5)
		require.NoError(t, err)

		assert.Equal(t, "hello world hello world hello", text)
		assert.Len(t, strings.Fields(text), 5)
	})

	t.Run("truncates descriptions already past the target", func(t *testing.T) {
		text, err := expander.Expand(ctx, "one two three four five", 3)
		require.NoError(t, err)

		assert.Equal(t, "one two three", text)
	})

	t.Run("empty description fails", func(t *testing.T) {
		_, err := expander.Expand(ctx, "   ", 10)
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})

	t.Run("non-positive target yields empty text", func(t *testing.T) {
		text, err := expander.Expand(ctx, "hello", 0)
		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
