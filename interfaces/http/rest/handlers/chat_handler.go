// Package handlers holds the REST request handlers.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"narad-backend/application/services"
	"narad-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler handles the conversational endpoints.
type ChatHandler struct {
	chat   *services.ChatService
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *services.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		logger: logger,
	}
}

// ChatPreferences carries the caller's declared preferences.
type ChatPreferences struct {
	Language string `json:"language,omitempty"`
}

// ChatContext is the optional per-message context block.
type ChatContext struct {
	Preferences ChatPreferences `json:"preferences,omitempty"`
	MonumentID  string          `json:"monument_id,omitempty"`
	Location    string          `json:"location,omitempty"`
}

// ChatRequest represents the request body for POST /api/ai/chat
type ChatRequest struct {
	Message   string      `json:"message" validate:"required"`
	SessionID string      `json:"session_id,omitempty"`
	Context   ChatContext `json:"context,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
}

// ChatResponse is the wire shape the frontend expects.
type ChatResponse struct {
	Response    string       `json:"response"`
	Status      string       `json:"status"`
	Suggestions []string     `json:"suggestions"`
	Intent      string       `json:"intent"`
	Metadata    ChatMetadata `json:"metadata"`
}

// ChatMetadata carries per-response metadata.
type ChatMetadata struct {
	Confidence float64     `json:"confidence"`
	SessionID  string      `json:"session_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Context    ChatContext `json:"context"`
}

// Chat handles POST /api/ai/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Blank input never reaches the pipeline.
	if strings.TrimSpace(req.Message) == "" {
		h.respondError(w, http.StatusBadRequest, "No message provided")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	result, _ := h.chat.ProcessMessage(r.Context(), services.Request{
		Message:   req.Message,
		SessionID: sessionID,
		Context: services.RequestContext{
			Language:   req.Context.Preferences.Language,
			MonumentID: req.Context.MonumentID,
			Location:   req.Context.Location,
		},
	})

	h.respondJSON(w, http.StatusOK, ChatResponse{
		Response:    result.Content,
		Status:      "success",
		Suggestions: result.Suggestions,
		Intent:      result.Intent.String(),
		Metadata: ChatMetadata{
			Confidence: result.Confidence,
			SessionID:  sessionID,
			Timestamp:  result.Timestamp,
			Context:    req.Context,
		},
	})
}

// SessionSummary handles GET /api/ai/sessions/{sessionID}/summary
func (h *ChatHandler) SessionSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		h.respondError(w, http.StatusBadRequest, "No session id provided")
		return
	}

	h.respondJSON(w, http.StatusOK, h.chat.Summary(sessionID))
}

// Test handles GET /api/test with a service banner.
func (h *ChatHandler) Test(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Narad AI Service is running!",
		"status":  "success",
		"endpoints": map[string]string{
			"chat":    "/api/ai/chat (POST)",
			"summary": "/api/ai/sessions/{sessionID}/summary (GET)",
			"health":  "/health (GET)",
			"test":    "/api/test (GET)",
		},
	})
}

func (h *ChatHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *ChatHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
