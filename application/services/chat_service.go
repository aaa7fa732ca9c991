package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"narad-backend/application/ports"
	"narad-backend/domain/chat"
	domainservices "narad-backend/domain/services"
	"narad-backend/pkg/observability"

	"go.uber.org/zap"
)

// fatalApology is the Tier 3 answer returned when the pipeline itself fails.
const fatalApology = "I apologize, but I'm having trouble processing your request right now. Please try again, and I'll do my best to help you explore India's cultural heritage!"

// fatalSuggestions is the minimal, intent-independent suggestion set for the
// Tier 3 answer.
var fatalSuggestions = []string{
	"Ask about a monument",
	"Request a cultural story",
	"Get travel recommendations",
	"Try a different question",
}

// defaultHistoryWindow bounds how many trailing messages feed classification
// and prompt building.
const defaultHistoryWindow = 10

// RequestContext carries the optional caller-supplied hints for one message.
type RequestContext struct {
	Language   string
	MonumentID string
	Location   string
}

// Request is one inbound chat message. Message is non-empty; the delivery
// layer rejects blank input before the core runs.
type Request struct {
	Message   string
	SessionID string
	Context   RequestContext
}

// ChatService is the orchestrator: it composes memory, detection,
// classification, retrieval, generation and suggestions into one
// ProcessMessage transaction per request.
type ChatService struct {
	sessions   ports.SessionStore
	knowledge  ports.KnowledgeStore
	classifier *domainservices.IntentClassifier
	generator  *ResponseGenerator
	metrics    *observability.Metrics
	logger     *zap.Logger

	mu            sync.RWMutex
	historyWindow int
}

// NewChatService wires the orchestrator.
func NewChatService(
	sessions ports.SessionStore,
	knowledgeStore ports.KnowledgeStore,
	classifier *domainservices.IntentClassifier,
	generator *ResponseGenerator,
	historyWindow int,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ChatService {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		sessions:      sessions,
		knowledge:     knowledgeStore,
		classifier:    classifier,
		generator:     generator,
		historyWindow: historyWindow,
		metrics:       metrics,
		logger:        logger,
	}
}

// SetHistoryWindow swaps the prompt-building window at runtime.
func (s *ChatService) SetHistoryWindow(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyWindow = n
}

func (s *ChatService) windowSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.historyWindow
}

// ProcessMessage runs the full pipeline for one message and returns a
// well-formed result in every case. Unexpected faults are recovered at this
// boundary and converted to the fixed apology; the caller never sees a
// panic or an empty body.
func (s *ChatService) ProcessMessage(ctx context.Context, req Request) (result *chat.ResponseResult, outcome chat.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("chat pipeline panicked",
				zap.Any("panic", r),
				zap.String("sessionID", req.SessionID),
			)
			result = &chat.ResponseResult{
				Content:     fatalApology,
				Intent:      chat.IntentError,
				Suggestions: append([]string(nil), fatalSuggestions...),
				Confidence:  confidenceFatal,
				Timestamp:   time.Now().UTC(),
			}
			outcome = chat.OutcomeFatal
			s.recordOutcome(result.Intent, outcome)
		}
	}()

	history := s.sessions.GetHistory(req.SessionID)
	window := chat.LastMessages(history, s.windowSize())

	detected := domainservices.DetectLanguage(req.Message)
	lang := domainservices.ResolveLanguage(detected, req.Context.Language)

	// First-message greeting shortcut: a bare greeting word in a fresh
	// session gets the language-specific canned greeting, bypassing the
	// tiered pipeline. Both turns are still recorded.
	normalized := strings.ToLower(strings.TrimSpace(req.Message))
	if len(history) == 0 && IsGreetingWord(normalized) {
		result = &chat.ResponseResult{
			Content:     GreetingForLanguage(lang),
			Intent:      chat.IntentGreeting,
			Suggestions: GreetingSuggestions(),
			Confidence:  confidenceTier,
			Timestamp:   time.Now().UTC(),
		}
		s.appendTurns(req.SessionID, req.Message, result.Content)
		s.recordOutcome(result.Intent, chat.OutcomeSuccess)
		return result, chat.OutcomeSuccess
	}

	// Classification sees the full history: the monument-greeting
	// suppression scans every prior AI turn, so it must never be limited to
	// the prompt-building window.
	intent := s.classifier.Classify(req.Message, history)
	cctx := s.buildCulturalContext(req.Message, req.Context, intent)

	generated := s.generator.Generate(ctx, GenerateInput{
		Message:  req.Message,
		Intent:   intent,
		Context:  cctx,
		History:  window,
		Language: lang,
	})

	result = &chat.ResponseResult{
		Content:     generated.Content,
		Intent:      intent,
		Suggestions: Suggest(intent, cctx),
		Confidence:  generated.Confidence,
		Timestamp:   time.Now().UTC(),
	}

	// Memory is written only after the final response is computed, never
	// partially.
	s.appendTurns(req.SessionID, req.Message, result.Content)

	s.logger.Info("message processed",
		zap.String("sessionID", req.SessionID),
		zap.String("intent", intent.String()),
		zap.String("outcome", generated.Outcome.String()),
		zap.Float64("confidence", generated.Confidence),
	)
	s.recordOutcome(intent, generated.Outcome)
	return result, generated.Outcome
}

// Summary describes a session at a glance: message count, the distinct
// topics raised by the user, and the elapsed time between the first and last
// turn.
func (s *ChatService) Summary(sessionID string) chat.ConversationSummary {
	history := s.sessions.GetHistory(sessionID)
	if len(history) == 0 {
		return chat.ConversationSummary{Summary: "No conversation yet", Topics: []string{}}
	}

	seen := make(map[chat.Intent]bool)
	topics := make([]string, 0, 4)
	for _, msg := range history {
		if msg.Role != chat.RoleUser {
			continue
		}
		topic := s.classifier.ClassifySimplified(msg.Content)
		if !seen[topic] {
			seen[topic] = true
			topics = append(topics, topic.String())
		}
	}

	return chat.ConversationSummary{
		Summary:      summaryLine(len(history), len(topics)),
		Topics:       topics,
		MessageCount: len(history),
		Duration:     history[len(history)-1].Timestamp.Sub(history[0].Timestamp),
	}
}

// buildCulturalContext assembles the per-request knowledge aggregate.
// Lookup misses are not errors; the fields simply stay nil.
func (s *ChatService) buildCulturalContext(message string, reqCtx RequestContext, intent chat.Intent) *chat.CulturalContext {
	cctx := &chat.CulturalContext{
		IntentKnowledge: s.knowledge.IntentKnowledge(intent),
		RelatedStories:  s.knowledge.SearchStories(message, intent),
	}
	if reqCtx.MonumentID != "" {
		cctx.Monument = s.knowledge.GetMonument(reqCtx.MonumentID)
	}
	if reqCtx.Location != "" {
		cctx.LocationInfo = s.knowledge.LocationCulture(reqCtx.Location)
	}
	return cctx
}

// appendTurns records exactly two entries per processed message.
func (s *ChatService) appendTurns(sessionID, userContent, aiContent string) {
	s.sessions.Append(sessionID, chat.RoleUser, userContent)
	s.sessions.Append(sessionID, chat.RoleAI, aiContent)
}

func (s *ChatService) recordOutcome(intent chat.Intent, outcome chat.Outcome) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordMessage(intent.String())
	s.metrics.RecordOutcome(outcome.String())
}

func summaryLine(messages, topics int) string {
	return fmt.Sprintf("Conversation with %d messages covering %d topics", messages, topics)
}
