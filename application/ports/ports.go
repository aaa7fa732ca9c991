// Package ports defines the interfaces the orchestration core depends on.
// Implementations live under infrastructure; the core never imports them.
package ports

import (
	"context"
	"fmt"

	"narad-backend/domain/chat"
	"narad-backend/domain/knowledge"
)

// SessionStore is the conversation memory collaborator. GetHistory returns a
// fresh snapshot each call (most-recent-last); an unknown session id is not
// an error and yields an empty history. Append lazily creates the session.
type SessionStore interface {
	GetHistory(sessionID string) []chat.Message
	Append(sessionID string, role chat.Role, content string)
}

// KnowledgeStore is the read-only reference-data collaborator. It is fully
// available at process start; lookup misses resolve to nil/empty values, not
// errors.
type KnowledgeStore interface {
	GetMonument(idOrName string) *knowledge.Monument
	ListMonuments() []*knowledge.Monument
	SearchStories(query string, intent chat.Intent) []knowledge.StoryMatch
	RelatedMonuments(monumentID string) []knowledge.RelatedMonument
	IntentKnowledge(intent chat.Intent) knowledge.IntentKnowledge
	LocationCulture(location string) *knowledge.LocationCulture
	StoryVersions(storyID string) *knowledge.StoryVersions
	HorrorStories() []*knowledge.Story
	Summary() knowledge.Summary
}

// GenerationParams tunes one external generation request.
type GenerationParams struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
	TopK        int
}

// GenerationService is the external natural-language generation capability.
// Generate blocks until completion or the context deadline; failures are
// reported as *GenerationError and the core treats every variant the same
// way (log and degrade).
type GenerationService interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
	IsAvailable() bool
}

// GenerationErrorKind discriminates generation failures for logs and
// metrics. The orchestration core handles all kinds identically.
type GenerationErrorKind string

const (
	GenerationTimeout   GenerationErrorKind = "timeout"
	GenerationHTTPError GenerationErrorKind = "http_error"
	GenerationEmpty     GenerationErrorKind = "empty_response"
	GenerationMalformed GenerationErrorKind = "malformed"
)

// GenerationError wraps a failed generation call.
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("generation %s", e.Kind)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError builds a GenerationError of the given kind.
func NewGenerationError(kind GenerationErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}
