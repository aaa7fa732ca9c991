package chat

import (
	"time"

	"narad-backend/domain/knowledge"
)

// Outcome reports which tier of the response-generation chain produced a
// reply, so callers and tests can assert on the tier reached instead of
// unwinding nested error handling.
type Outcome int

const (
	// OutcomeSuccess means a full-quality reply (contextual template or an
	// externally enhanced one).
	OutcomeSuccess Outcome = iota
	// OutcomeDegraded means the external enhancement was skipped or failed
	// and a plain template answer was kept.
	OutcomeDegraded
	// OutcomeFatal means the pipeline itself failed and the fixed apology
	// was returned.
	OutcomeFatal
)

// String returns a label for metrics and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// CulturalContext is the transient per-request aggregate of retrieved
// knowledge. It is built fresh for each message and never persisted.
type CulturalContext struct {
	Monument       *knowledge.Monument
	LocationInfo   *knowledge.LocationCulture
	IntentKnowledge knowledge.IntentKnowledge
	RelatedStories []knowledge.StoryMatch
}

// ResponseResult is the unit returned to the caller for one processed
// message. It is constructed fresh per request and never mutated after
// being returned.
type ResponseResult struct {
	Content     string    `json:"content"`
	Intent      Intent    `json:"intent"`
	Suggestions []string  `json:"suggestions"`
	Confidence  float64   `json:"confidence"`
	Timestamp   time.Time `json:"timestamp"`
}

// ConversationSummary describes a session at a glance.
type ConversationSummary struct {
	Summary      string        `json:"summary"`
	Topics       []string      `json:"topics"`
	MessageCount int           `json:"message_count"`
	Duration     time.Duration `json:"duration"`
}
