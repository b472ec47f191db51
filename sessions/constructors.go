package sessions

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// NewChatSession creates a new WebSocket chat session
func NewChatSession(conn *websocket.Conn, orchestrator ChatOrchestrator) *ChatSession {
	sessionID := uuid.NewString()
	logger := log.New(os.Stdout, fmt.Sprintf("[WS %s] ", sessionID[:8]), log.LstdFlags)

	return &ChatSession{
		SessionID:    sessionID,
		Orchestrator: orchestrator,
		Writer: &WebSocketWriter{
			Conn:   conn,
			Logger: logger,
		},
		Logger: logger,
	}
}

// NewHTTPSession creates a new HTTP session
func NewHTTPSession(orchestrator ChatOrchestrator) *HTTPSession {
	return &HTTPSession{
		Orchestrator: orchestrator,
		Logger:       log.New(os.Stdout, "[HTTP] ", log.LstdFlags),
	}
}
