package ports

import "context"

// Transcriber converts audio files into text. The bundled adapter is a
// placeholder; a real speech-to-text backend can be dropped in without
// touching the pipeline.
type Transcriber interface {
	// Transcribe returns the combined transcript for the given audio
	// files. Missing files are skipped, not fatal.
	Transcribe(ctx context.Context, audioPaths []string) (string, error)
}

// Expander grows a short description toward a word target. The bundled
// adapter pads by repetition; a real implementation would call an LLM or a
// research backend.
type Expander interface {
	// Expand returns text of exactly targetWords words derived from the
	// description.
	Expand(ctx context.Context, description string, targetWords int) (string, error)
}
