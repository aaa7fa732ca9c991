// Package services holds the application layer: the response generator, the
// suggestion and prompt builders, and the orchestrating chat service.
package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"narad-backend/application/ports"
	"narad-backend/domain/chat"
	"narad-backend/domain/knowledge"
	domainservices "narad-backend/domain/services"
	"narad-backend/pkg/observability"

	"go.uber.org/zap"
)

// Per-tier confidence levels.
const (
	confidenceTier          = 0.9
	confidenceMonument      = 0.95
	confidencePlainFallback = 0.5
	confidenceFatal         = 0.1
)

// unknownMonumentGreeting answers a monument-greeting intent whose monument
// has no registered greeting.
const unknownMonumentGreeting = "That sounds fascinating! I'd love to tell you more about that. Could you share a bit more about what specifically interests you regarding this place?"

// GenerateInput carries everything the generator needs for one reply.
type GenerateInput struct {
	Message  string
	Intent   chat.Intent
	Context  *chat.CulturalContext
	History  []chat.Message
	Language domainservices.LanguageTag
}

// Generated is the generator's verdict for one message: the reply text, the
// tier outcome reached and the confidence to report.
type Generated struct {
	Content    string
	Outcome    chat.Outcome
	Confidence float64
}

// ResponseGenerator runs the tiered reply strategy: contextual templates
// first, external generation only to enhance a generic template result, and
// the registered monument greetings as a short-circuit.
type ResponseGenerator struct {
	generation ports.GenerationService
	greetings  []knowledge.MonumentGreeting
	metrics    *observability.Metrics
	logger     *zap.Logger

	mu                   sync.RWMutex
	params               ports.GenerationParams
	minEnhancementLength int
	generationEnabled    bool
}

// NewResponseGenerator creates a generator. generation may be nil, which
// disables Tier 2 entirely.
func NewResponseGenerator(
	generation ports.GenerationService,
	greetings []knowledge.MonumentGreeting,
	params ports.GenerationParams,
	minEnhancementLength int,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ResponseGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if minEnhancementLength <= 0 {
		minEnhancementLength = 20
	}
	return &ResponseGenerator{
		generation:           generation,
		greetings:            greetings,
		params:               params,
		minEnhancementLength: minEnhancementLength,
		generationEnabled:    true,
		metrics:              metrics,
		logger:               logger,
	}
}

// SetGenerationEnabled toggles Tier 2 enhancement at runtime.
func (g *ResponseGenerator) SetGenerationEnabled(enabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.generationEnabled = enabled
}

func (g *ResponseGenerator) enhancementEnabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.generationEnabled
}

// UpdateParams swaps the generation sampling parameters at runtime.
func (g *ResponseGenerator) UpdateParams(params ports.GenerationParams, minEnhancementLength int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.params = params
	if minEnhancementLength > 0 {
		g.minEnhancementLength = minEnhancementLength
	}
}

// Generate produces the reply for one classified message. It never fails:
// every path resolves to a well-formed Generated value.
func (g *ResponseGenerator) Generate(ctx context.Context, in GenerateInput) Generated {
	if in.Intent == chat.IntentMonumentGreeting {
		return Generated{
			Content:    g.monumentGreeting(in.Message),
			Outcome:    chat.OutcomeSuccess,
			Confidence: confidenceMonument,
		}
	}

	// Tier 1 always yields a non-empty answer.
	content := contextualResponse(in.Message, in.Intent, in.Context)
	if content == "" {
		return Generated{
			Content:    PlainFallback(in.Intent),
			Outcome:    chat.OutcomeDegraded,
			Confidence: confidencePlainFallback,
		}
	}

	if !IsGeneric(content) {
		return Generated{Content: content, Outcome: chat.OutcomeSuccess, Confidence: confidenceTier}
	}

	// Tier 2: enhance the generic answer when a generator is wired up and
	// not switched off at runtime.
	if g.generation == nil || !g.enhancementEnabled() || !g.generation.IsAvailable() {
		return Generated{Content: content, Outcome: chat.OutcomeDegraded, Confidence: confidenceTier}
	}

	enhanced, ok := g.enhance(ctx, in)
	if !ok {
		return Generated{Content: content, Outcome: chat.OutcomeDegraded, Confidence: confidenceTier}
	}
	return Generated{Content: enhanced, Outcome: chat.OutcomeSuccess, Confidence: confidenceTier}
}

// enhance runs the external generation call. Any failure is logged and
// swallowed; the caller keeps the Tier 1 answer.
func (g *ResponseGenerator) enhance(ctx context.Context, in GenerateInput) (string, bool) {
	g.mu.RLock()
	params := g.params
	minLen := g.minEnhancementLength
	g.mu.RUnlock()

	prompt := BuildPrompt(in.Message, in.Intent, in.Context, in.History, in.Language)

	start := time.Now()
	text, err := g.generation.Generate(ctx, prompt, params)
	if g.metrics != nil {
		g.metrics.RecordGenerationDuration(time.Since(start))
	}
	if err != nil {
		kind := ports.GenerationMalformed
		var genErr *ports.GenerationError
		if errors.As(err, &genErr) {
			kind = genErr.Kind
		}
		if g.metrics != nil {
			g.metrics.RecordGenerationFailure(string(kind))
		}
		g.logger.Warn("generation failed, keeping template answer",
			zap.String("kind", string(kind)),
			zap.String("intent", in.Intent.String()),
			zap.Error(err),
		)
		return "", false
	}

	text = strings.TrimSpace(text)
	if len(text) < minLen {
		g.logger.Debug("generation output too short, keeping template answer",
			zap.Int("length", len(text)),
		)
		return "", false
	}
	return text, true
}

// monumentGreeting resolves the canned greeting by substring match on the
// colloquial monument name, first registered entry wins.
func (g *ResponseGenerator) monumentGreeting(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, mg := range g.greetings {
		if strings.Contains(normalized, mg.NameKey) {
			return mg.Response
		}
	}
	return unknownMonumentGreeting
}
