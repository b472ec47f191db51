package sessions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Lax999/Newapp/models"
	"github.com/gin-gonic/gin"
)

type stubOrchestrator struct {
	sent     []string
	messages []models.ChatMessage
}

func (s *stubOrchestrator) SendMessage(text string) {
	s.sent = append(s.sent, text)
	s.messages = append(s.messages, models.ChatMessage{
		ID: "u1", Text: text, FromUser: true, CreatedAt: time.Now(),
	})
}

func (s *stubOrchestrator) Messages() []models.ChatMessage {
	return s.messages
}

func (s *stubOrchestrator) Subscribe(func(models.ChatMessage)) func() {
	return func() {}
}

func newTestRouter(o ChatOrchestrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHTTPSession(o).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestHandleSendAppendsAndAcknowledges(t *testing.T) {
	stub := &stubOrchestrator{}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
	if len(stub.sent) != 1 || stub.sent[0] != "hello" {
		t.Errorf("expected SendMessage('hello'), got %v", stub.sent)
	}

	var body struct {
		Messages []models.ChatMessageResponse `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body.Messages) != 1 || body.Messages[0].Role != "user" {
		t.Errorf("unexpected snapshot: %+v", body.Messages)
	}
}

func TestHandleSendRejectsEmptyText(t *testing.T) {
	stub := &stubOrchestrator{}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"text":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty text, got %d", w.Code)
	}
	if len(stub.sent) != 0 {
		t.Errorf("empty text must not reach the orchestrator, got %v", stub.sent)
	}
}

func TestHandleSendRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&stubOrchestrator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestHandleMessagesReturnsLog(t *testing.T) {
	stub := &stubOrchestrator{messages: []models.ChatMessage{
		{ID: "m1", Text: "welcome", FromUser: false, CreatedAt: time.Now()},
		{ID: "m2", Text: "hi", FromUser: true, CreatedAt: time.Now()},
	}}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Messages []models.ChatMessageResponse `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(body.Messages))
	}
	if body.Messages[0].Role != "assistant" || body.Messages[1].Role != "user" {
		t.Errorf("unexpected roles: %+v", body.Messages)
	}
}
