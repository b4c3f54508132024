package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vilyaua/AI-01/internal/domain"
)

// ExtractJSON returns the JSON object embedded in a model reply. Markdown
// code fences and any prose around the outermost braces are dropped.
func ExtractJSON(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object in response: %w", domain.ErrMalformedResponse)
	}
	return s[start : end+1], nil
}

// DecodeJSON extracts the JSON object from a reply and unmarshals it into v.
func DecodeJSON(reply string, v any) error {
	raw, err := ExtractJSON(reply)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, domain.ErrMalformedResponse)
	}
	return nil
}
