// Package gemini adapts Google's generative-language API to the core's
// GenerationService port. Every call runs under an explicit timeout budget
// and behind a circuit breaker so a misbehaving upstream degrades the
// pipeline instead of stalling it.
package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"narad-backend/application/ports"
	apperrors "narad-backend/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Config holds the connection settings for the Gemini client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client implements ports.GenerationService against the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewClient creates a Gemini-backed generation service. The breaker trips
// after repeated failures and recovers through a half-open probe, mirroring
// the HTTP circuit breaker settings used elsewhere in the service.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.NewGeneration("create gemini client", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("generation circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		client:  gc,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		breaker: breaker,
		logger:  logger,
	}, nil
}

// IsAvailable reports whether the client can currently serve requests.
func (c *Client) IsAvailable() bool {
	return c.client != nil && c.breaker.State() != gobreaker.StateOpen
}

// Generate requests a bounded-length completion for the prompt. All failure
// modes are reported as *ports.GenerationError so the caller can degrade
// uniformly.
func (c *Client) Generate(ctx context.Context, prompt string, params ports.GenerationParams) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.breaker.Execute(func() (any, error) {
		return c.generate(ctx, prompt, params)
	})
	if err != nil {
		var genErr *ports.GenerationError
		if errors.As(err, &genErr) {
			return "", genErr
		}
		// Breaker-open and half-open rejections land here.
		return "", ports.NewGenerationError(ports.GenerationHTTPError, err)
	}

	return result.(string), nil
}

func (c *Client) generate(ctx context.Context, prompt string, params ports.GenerationParams) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(params.Temperature)),
		TopP:            genai.Ptr(float32(params.TopP)),
		TopK:            genai.Ptr(float32(params.TopK)),
		MaxOutputTokens: int32(params.MaxTokens),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", classifyError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ports.NewGenerationError(ports.GenerationEmpty, errors.New("no candidates in response"))
	}
	return text, nil
}

// classifyError maps transport failures onto the generation error taxonomy.
// The core treats every kind identically; the kind only feeds logs and
// metrics.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ports.NewGenerationError(ports.GenerationTimeout, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return ports.NewGenerationError(ports.GenerationHTTPError, err)
	}

	return ports.NewGenerationError(ports.GenerationMalformed, err)
}
