package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptyResponse is returned when the API answers with no candidates.
var ErrEmptyResponse = errors.New("empty response from gemini")

// GenerateObject sends a prompt with a response schema and unmarshals the
// JSON answer into out. The schema constrains but does not guarantee the
// output shape; out is filled best-effort and callers must validate it.
func (c *Client) GenerateObject(ctx context.Context, prompt string, schema *Schema, out any) error {
	req := GenerateRequest{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: prompt}},
			},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:      0.2,
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	resp, err := c.GenerateContent(ctx, req)
	if err != nil {
		return err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ErrEmptyResponse
	}

	text := sanitizeJSONResponse(resp.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to parse gemini JSON response: %w", err)
	}
	return nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// IsQuotaError reports whether err looks like a rate/quota exhaustion failure
// from the Gemini API, which callers should surface as retryable (429).
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
