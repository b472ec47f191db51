package models

import "time"

// ChatMessage is a single turn in the visible conversation. Immutable once
// created; owned by the orchestrator's message log, the rendering layer only
// ever holds a read-only view.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	FromUser  bool      `json:"from_user"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessageResponse defines the structure for messages returned by the chat
// history API endpoint.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user", "assistant"
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a log entry into its API representation.
func (m ChatMessage) ToResponse() ChatMessageResponse {
	role := "assistant"
	if m.FromUser {
		role = "user"
	}
	return ChatMessageResponse{
		ID:        m.ID,
		Role:      role,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
