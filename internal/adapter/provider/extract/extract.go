// Package extract turns uploaded media into Spanish text using hosted
// OpenAI models: a vision chat model for images and Whisper for audio.
// Extractors never enrich; they only return text.
package extract

import (
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/vilyaua/AI-01/internal/config"
)

// New builds both extractors. Both are nil when no extraction credential is
// configured.
func New(cfg config.Config, logger *slog.Logger) (*ImageExtractor, *AudioExtractor) {
	key := cfg.ExtractionAPIKey()
	if key == "" {
		return nil, nil
	}

	oc := openai.DefaultConfig(key)
	if cfg.Extraction.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.Extraction.BaseURL, "/")
	}
	client := openai.NewClientWithConfig(oc)

	ec := cfg.Extraction
	return NewImageExtractor(client, ec.VisionModel, ec.OCRLanguage, ec.Timeout, logger),
		NewAudioExtractor(client, ec.TranscriptionModel, ec.AudioLanguage, ec.Timeout, logger)
}
