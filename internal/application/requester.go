package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ericfisherdev/salacious/internal/domain/model"
)

// trailingCommaPattern matches a trailing comma before a closing bracket or
// brace, a frequent completion-model mistake that breaks strict JSON parsing.
var trailingCommaPattern = regexp.MustCompile(`,\s*([\]}])`)

var (
	// ErrResponseNotJSON reports completion output that did not decode as JSON
	// even after sanitization.
	ErrResponseNotJSON = errors.New("completion response is not valid JSON")
	// ErrResponseSchema reports decoded output that violates the review
	// schema: no comments field, or a comment missing path, body, or a usable
	// line number.
	ErrResponseSchema = errors.New("completion response does not match the review schema")
)

// requestReview sends one file's diff to the completion API and parses the
// structured comments out of the reply. Exactly one outbound call per
// invocation; the retry policy lives with the caller.
func (s *ReviewService) requestReview(ctx context.Context, file model.ChangedFile) ([]model.ReviewComment, error) {
	content, err := s.completer.Complete(ctx, reviewPrompt, buildFilePrompt(file.Filename, *file.Patch))
	if err != nil {
		return nil, fmt.Errorf("requesting review for %s: %w", file.Filename, err)
	}

	slog.Debug("completion received", "file", file.Filename, "content", content)

	comments, err := parseComments(sanitizeCompletion(content))
	if err != nil {
		return nil, fmt.Errorf("parsing review for %s: %w", file.Filename, err)
	}

	return comments, nil
}

// sanitizeCompletion strips the decoration completion models wrap around JSON
// payloads: markdown code fences, a leading "json" language tag, and trailing
// commas. The result may still be invalid JSON; the parser decides.
func sanitizeCompletion(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimSpace(strings.Trim(content, "`"))
	if strings.HasPrefix(content, "json") {
		content = strings.TrimSpace(strings.TrimPrefix(content, "json"))
	}

	return trailingCommaPattern.ReplaceAllString(content, "$1")
}

// rawComment is the per-comment JSON shape the completion model replies with.
// The prompt schema names the anchor field "line" but models occasionally
// echo the GitHub term "position"; both are accepted, with "position" winning
// when both appear.
type rawComment struct {
	Path     string `json:"path"`
	Body     string `json:"body"`
	Line     *int   `json:"line"`
	Position *int   `json:"position"`
}

// parseComments decodes a sanitized completion payload into typed review
// comments, enforcing the schema the prompt demands: a comments array whose
// entries each carry a path, a body, and a non-negative line number.
func parseComments(content string) ([]model.ReviewComment, error) {
	var payload struct {
		Comments []rawComment `json:"comments"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseNotJSON, err)
	}
	if payload.Comments == nil {
		return nil, fmt.Errorf("%w: missing comments array", ErrResponseSchema)
	}

	comments := make([]model.ReviewComment, 0, len(payload.Comments))
	for i, raw := range payload.Comments {
		position := raw.Position
		if position == nil {
			position = raw.Line
		}

		switch {
		case raw.Path == "":
			return nil, fmt.Errorf("%w: comment %d has no path", ErrResponseSchema, i)
		case raw.Body == "":
			return nil, fmt.Errorf("%w: comment %d has no body", ErrResponseSchema, i)
		case position == nil || *position < 0:
			return nil, fmt.Errorf("%w: comment %d has no usable line number", ErrResponseSchema, i)
		}

		comments = append(comments, model.ReviewComment{
			Path:     raw.Path,
			Position: *position,
			Body:     raw.Body,
		})
	}

	return comments, nil
}
