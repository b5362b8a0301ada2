package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError keeps the raw model output for the generation log.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseStructured decodes a JSON reply, tolerating markdown code fences and
// leading prose around the object.
func ParseStructured[T any](raw string) (*T, error) {
	text := stripFences(raw)

	if start := strings.IndexAny(text, "{["); start > 0 {
		text = text[start:]
	}
	if end := strings.LastIndexAny(text, "}]"); end >= 0 && end < len(text)-1 {
		text = text[:end+1]
	}

	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return &out, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
