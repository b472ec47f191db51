package sessions

import (
	"log"
	"sync"

	"github.com/Lax999/Newapp/models"
	"github.com/gorilla/websocket"
)

// ChatOrchestrator is the slice of the orchestrator the session layer needs.
// *newapp.Orchestrator satisfies it.
type ChatOrchestrator interface {
	SendMessage(text string)
	Messages() []models.ChatMessage
	Subscribe(fn func(models.ChatMessage)) func()
}

// SendRequest is the inbound body for both the HTTP send endpoint and
// websocket client frames.
type SendRequest struct {
	Text string `json:"text"`
}

// WebSocketWriter handles all WebSocket communication for one session.
type WebSocketWriter struct {
	Conn   *websocket.Conn
	Logger *log.Logger
	mu     sync.Mutex
}

// WriteMessage pushes one appended chat message to the client.
func (w *WebSocketWriter) WriteMessage(msg models.ChatMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(msg.ToResponse())
}

// WriteError reports a session-level problem to the client.
func (w *WebSocketWriter) WriteError(message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.Conn.WriteJSON(map[string]string{"error": message})
}
