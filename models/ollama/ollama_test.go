package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	models "github.com/Lax999/Newapp/models"
)

func TestCompleteRoundTrip(t *testing.T) {
	var got models.Chat_Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("expected /api/chat, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		resp := models.Chat_Response{
			Model:   got.Model,
			Message: models.Prompt_Turn{Role: "assistant", Content: "Hello there!"},
			Done:    true,
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := &Ollama_Model{}
	result, err := client.Complete(context.Background(), server.URL, "llama3.2", "You are helpful.", "hi")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if result.Reply != "Hello there!" {
		t.Errorf("expected reply 'Hello there!', got %q", result.Reply)
	}
	if result.Model != "llama3.2" {
		t.Errorf("expected model echo 'llama3.2', got %q", result.Model)
	}

	if got.Model != "llama3.2" {
		t.Errorf("expected request model 'llama3.2', got %q", got.Model)
	}
	if got.Stream {
		t.Error("stream must be disabled")
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected two turns, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "You are helpful." {
		t.Errorf("unexpected system turn: %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "hi" {
		t.Errorf("unexpected user turn: %+v", got.Messages[1])
	}
}

func TestCompleteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model 'nope' not found, try pulling it first"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := &Ollama_Model{}
	_, err := client.Complete(context.Background(), server.URL, "nope", "sys", "hi")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	cerr, ok := err.(*Completion_Error)
	if !ok {
		t.Fatalf("expected *Completion_Error, got %T", err)
	}
	if cerr.Kind != KindHTTPError {
		t.Errorf("expected kind %q, got %q", KindHTTPError, cerr.Kind)
	}
	if cerr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", cerr.StatusCode)
	}
	if !cerr.Model_Missing() {
		t.Error("expected 404 to look like a missing model")
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Chat_Response{
			Model:   "llama3.2",
			Message: models.Prompt_Turn{Role: "assistant", Content: "   "},
			Done:    true,
		})
	}))
	defer server.Close()

	client := &Ollama_Model{}
	_, err := client.Complete(context.Background(), server.URL, "llama3.2", "sys", "hi")
	cerr, ok := err.(*Completion_Error)
	if !ok {
		t.Fatalf("expected *Completion_Error, got %T (%v)", err, err)
	}
	if cerr.Kind != KindEmptyContent {
		t.Errorf("expected kind %q, got %q", KindEmptyContent, cerr.Kind)
	}
}

func TestCompleteTransportFailure(t *testing.T) {
	client := &Ollama_Model{}
	// Port 1 is never listening.
	_, err := client.Complete(context.Background(), "http://127.0.0.1:1", "llama3.2", "sys", "hi")
	cerr, ok := err.(*Completion_Error)
	if !ok {
		t.Fatalf("expected *Completion_Error, got %T (%v)", err, err)
	}
	if cerr.Kind != KindTransport {
		t.Errorf("expected kind %q, got %q", KindTransport, cerr.Kind)
	}
	if cerr.Model_Missing() {
		t.Error("transport failures must not classify as missing model")
	}
}

func TestCompleteEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &Ollama_Model{}
	_, err := client.Complete(context.Background(), server.URL, "llama3.2", "sys", "hi")
	cerr, ok := err.(*Completion_Error)
	if !ok {
		t.Fatalf("expected *Completion_Error, got %T (%v)", err, err)
	}
	if cerr.Kind != KindEmptyBody {
		t.Errorf("expected kind %q, got %q", KindEmptyBody, cerr.Kind)
	}
}
