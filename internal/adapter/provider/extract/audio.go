package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/vilyaua/AI-01/internal/domain"
)

// AudioExtractor transcribes speech with Whisper.
type AudioExtractor struct {
	client   *openai.Client
	model    string
	language string
	timeout  time.Duration
	log      *slog.Logger
}

// NewAudioExtractor creates an AudioExtractor. language is an ISO 639-1
// code passed to the transcription API (e.g. "es").
func NewAudioExtractor(client *openai.Client, model, language string, timeout time.Duration, logger *slog.Logger) *AudioExtractor {
	return &AudioExtractor{
		client:   client,
		model:    model,
		language: language,
		timeout:  timeout,
		log:      logger.With("provider", "transcription"),
	}
}

// Transcribe returns the trimmed transcript of audio. filename only carries
// the container format (its extension) to the API.
func (e *AudioExtractor) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if filename == "" {
		filename = "audio.wav"
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	resp, err := e.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    e.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
		Language: e.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		e.log.ErrorContext(ctx, "transcription call failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("extract.Transcribe: %w: %w", domain.ErrExtraction, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", domain.ErrEmptyExtraction
	}
	return text, nil
}
