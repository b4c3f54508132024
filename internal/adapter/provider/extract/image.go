package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/vilyaua/AI-01/internal/domain"
)

// ImageExtractor reads printed or handwritten text from an image.
type ImageExtractor struct {
	client   *openai.Client
	model    string
	language string
	timeout  time.Duration
	log      *slog.Logger
}

// NewImageExtractor creates an ImageExtractor. language is the default OCR
// hint (ISO 639-2, e.g. "spa").
func NewImageExtractor(client *openai.Client, model, language string, timeout time.Duration, logger *slog.Logger) *ImageExtractor {
	return &ImageExtractor{
		client:   client,
		model:    model,
		language: language,
		timeout:  timeout,
		log:      logger.With("provider", "ocr"),
	}
}

const ocrInstruction = "Transcribe all text visible in this image exactly as written. " +
	"The expected language is %s. Return only the transcribed text, with no commentary. " +
	"If the image contains no text, return an empty reply."

// ExtractText returns the trimmed text found in image.
func (e *ImageExtractor) ExtractText(ctx context.Context, image []byte, langHint string) (string, error) {
	if langHint == "" {
		langHint = e.language
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	dataURL := "data:" + http.DetectContentType(image) + ";base64," + base64.StdEncoding.EncodeToString(image)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: fmt.Sprintf(ocrInstruction, langHint)},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
					URL:    dataURL,
					Detail: openai.ImageURLDetailHigh,
				}},
			},
		}},
	})
	if err != nil {
		e.log.ErrorContext(ctx, "ocr call failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("extract.ExtractText: %w: %w", domain.ErrExtraction, err)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if text == "" {
		return "", domain.ErrEmptyExtraction
	}
	return text, nil
}
