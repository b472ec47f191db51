package newapp

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	models "github.com/Lax999/Newapp/models"
	"github.com/Lax999/Newapp/models/ollama"
	"github.com/Lax999/Newapp/stores"
	"github.com/google/uuid"
)

// Completer sends one chat-completion attempt to one endpoint+model pair.
// *ollama.Ollama_Model is the production implementation.
type Completer interface {
	Complete(ctx context.Context, baseURL, model, systemPrompt, userInput string) (models.Completion_Result, error)
}

// CloudCompleter is an optional last-resort completer consulted after every
// local endpoint/model pair has failed, before the canned fallback.
// *gemini.Gemini_Model is the production implementation.
type CloudCompleter interface {
	Configured() bool
	Complete(ctx context.Context, systemPrompt, userInput string) (string, error)
}

// Generator is the resilient generation service. It owns the ordered endpoint
// and model candidate lists, iterates their cross product with a
// first-success-wins policy and degrades to Canned_Response when everything
// fails. Generate always returns a displayable string.
type Generator struct {
	Endpoints   []string
	Models      []string
	WarmupDelay time.Duration
	Client      Completer
	Cloud       CloudCompleter
	Traces      stores.TraceStore
	Logger      *log.Logger
}

// NewGenerator wires a generator from configuration with the default Ollama
// client. Specialized clients are injected by assigning Client or Cloud.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{
		Endpoints:   cfg.Endpoints,
		Models:      cfg.Models,
		WarmupDelay: cfg.WarmupDelay,
		Client:      &ollama.Ollama_Model{},
		Traces:      cfg.TraceStore,
		Logger:      log.New(os.Stdout, "[generator] ", log.LstdFlags),
	}
}

// Generate tries every endpoint/model pair in priority order and returns the
// first non-empty reply. All failure kinds just advance the iteration; a
// missing model is not treated differently from a timeout. The returned
// string is never empty and no error is ever surfaced to the caller.
func (g *Generator) Generate(ctx context.Context, userInput, systemPrompt string) string {
	// One warm-up delay per call, not per attempt.
	if g.WarmupDelay > 0 {
		select {
		case <-time.After(g.WarmupDelay):
		case <-ctx.Done():
			return Canned_Response(userInput)
		}
	}

	requestID := uuid.NewString()

	for _, endpoint := range g.Endpoints {
		for _, model := range g.Models {
			if ctx.Err() != nil {
				return Canned_Response(userInput)
			}

			started := time.Now()
			result, err := g.Client.Complete(ctx, endpoint, model, systemPrompt, userInput)
			g.recordAttempt(requestID, endpoint, model, started, err)

			if err == nil {
				if strings.TrimSpace(result.Reply) != "" {
					return result.Reply
				}
				g.logf("attempt returned blank reply endpoint=%s model=%s, advancing", endpoint, model)
				continue
			}
			g.logf("attempt failed endpoint=%s model=%s: %v", endpoint, model, err)
		}
	}

	if g.Cloud != nil && g.Cloud.Configured() && ctx.Err() == nil {
		started := time.Now()
		reply, err := g.Cloud.Complete(ctx, systemPrompt, userInput)
		g.recordAttempt(requestID, "cloud", "gemini", started, err)
		if err == nil && strings.TrimSpace(reply) != "" {
			return reply
		}
		g.logf("cloud fallback failed: %v", err)
	}

	return Canned_Response(userInput)
}

func (g *Generator) recordAttempt(requestID, endpoint, model string, started time.Time, attemptErr error) {
	if g.Traces == nil {
		return
	}

	trace := &stores.AttemptTrace{
		RequestID:  requestID,
		Endpoint:   endpoint,
		Model:      model,
		Status:     "success",
		Timestamp:  started.UnixMilli(),
		DurationMS: time.Since(started).Milliseconds(),
	}
	if attemptErr != nil {
		trace.Status = "failure"
		trace.Label = attemptErr.Error()
		if cerr, ok := attemptErr.(*ollama.Completion_Error); ok {
			trace.Kind = cerr.Kind
			if cerr.Model_Missing() {
				trace.Kind = "model_missing"
			}
		}
	}

	if err := g.Traces.SaveTrace(trace); err != nil {
		g.logf("failed to save attempt trace: %v", err)
	}
}

func (g *Generator) logf(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Printf(format, args...)
	}
}
