package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	models "github.com/Lax999/Newapp/models"
	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the conventional local Ollama address.
	DefaultBaseURL = "http://127.0.0.1:11434"
	DefaultModel   = "llama3.2"

	chatPath = "/api/chat"

	// Long generations on small hardware routinely take tens of seconds.
	connectTimeout = 15 * time.Second
	requestTimeout = 60 * time.Second

	maxErrorBodyChars = 240
)

func init() {
	// Load .env file if it exists (not present in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Failure kinds reported by Complete. The caller never sees a raw transport
// fault; every outcome is one of these.
const (
	KindTransport    = "transport"
	KindHTTPError    = "http_error"
	KindEmptyBody    = "empty_body"
	KindEmptyContent = "empty_content"
)

// Completion_Error is the typed failure returned for any unsuccessful attempt.
type Completion_Error struct {
	Kind       string
	StatusCode int
	Body       string
	Err        error
}

func (e *Completion_Error) Error() string {
	switch e.Kind {
	case KindHTTPError:
		return fmt.Sprintf("ollama http %d: %s", e.StatusCode, e.Body)
	case KindEmptyBody:
		return "ollama returned an empty response body"
	case KindEmptyContent:
		return "ollama returned empty response content"
	default:
		return fmt.Sprintf("ollama request failed on %s: %v", chatPath, e.Err)
	}
}

func (e *Completion_Error) Unwrap() error { return e.Err }

// Model_Missing reports whether the failure looks like the requested model is
// absent on the server. Informational only: callers take the same next-model
// action either way.
func (e *Completion_Error) Model_Missing() bool {
	if e.Kind != KindHTTPError {
		return false
	}
	if e.StatusCode == http.StatusNotFound {
		return true
	}
	body := strings.ToLower(e.Body)
	return strings.Contains(body, "model") && strings.Contains(body, "not found")
}

// Ollama_Model is a stateless client for one Ollama-compatible text-generation
// endpoint. BaseURL and Model act as defaults; Complete accepts per-attempt
// overrides so one client can serve the whole endpoint/model cross product.
type Ollama_Model struct {
	Model   string // Model identifier (e.g. "llama3.2", "qwen2.5:0.5b")
	BaseURL string // Optional: endpoint base URL (defaults to DefaultBaseURL)
	HTTP    *http.Client
}

func (o *Ollama_Model) client() *http.Client {
	if o.HTTP != nil {
		return o.HTTP
	}
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
		},
	}
}

// Complete sends one chat-completion request to one endpoint+model pair.
// Success requires transport-level success, a parseable body and non-empty
// reply text; anything else comes back as a *Completion_Error. No retries
// happen at this layer.
func (o *Ollama_Model) Complete(ctx context.Context, baseURL, model, systemPrompt, userInput string) (models.Completion_Result, error) {
	if baseURL == "" {
		baseURL = o.BaseURL
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = o.Model
	}
	if model == "" {
		model = DefaultModel
	}

	endpoint := strings.TrimRight(strings.TrimSpace(baseURL), "/") + chatPath
	body := models.New_Chat_Request(model, systemPrompt, userInput)
	buf, err := json.Marshal(body)
	if err != nil {
		return models.Completion_Result{}, &Completion_Error{Kind: KindTransport, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf))
	if err != nil {
		return models.Completion_Result{}, &Completion_Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client().Do(req)
	if err != nil {
		return models.Completion_Result{}, &Completion_Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Completion_Result{}, &Completion_Error{Kind: KindTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Completion_Result{}, &Completion_Error{
			Kind:       KindHTTPError,
			StatusCode: resp.StatusCode,
			Body:       compactSingleLine(string(payload), maxErrorBodyChars),
		}
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		return models.Completion_Result{}, &Completion_Error{Kind: KindEmptyBody}
	}

	var parsed models.Chat_Response
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return models.Completion_Result{}, &Completion_Error{Kind: KindEmptyBody, Err: err}
	}

	content := strings.TrimSpace(parsed.Message.Content)
	if content == "" {
		return models.Completion_Result{}, &Completion_Error{Kind: KindEmptyContent}
	}

	echoed := parsed.Model
	if echoed == "" {
		echoed = model
	}
	return models.Completion_Result{Reply: content, Model: echoed}, nil
}

// compactSingleLine flattens an error body for logs and trace labels.
func compactSingleLine(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit > 0 && len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}
