package sessions

import (
	"log"
	"net/http"

	"github.com/Lax999/Newapp/models"
	"github.com/gin-gonic/gin"
)

// HTTPSession exposes the orchestrator over plain HTTP: one entry point for
// user text, one read-only view of the message log. Replies arrive
// asynchronously, so the send endpoint acknowledges and returns the current
// snapshot; clients follow the log via polling or the websocket session.
type HTTPSession struct {
	Orchestrator ChatOrchestrator
	Logger       *log.Logger
}

// RegisterRoutes mounts the chat endpoints on the given group.
func (s *HTTPSession) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", s.handleSend)
	r.GET("/messages", s.handleMessages)
}

func (s *HTTPSession) handleSend(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
		return
	}

	s.Orchestrator.SendMessage(req.Text)
	c.JSON(http.StatusAccepted, gin.H{"messages": toResponses(s.Orchestrator.Messages())})
}

func (s *HTTPSession) handleMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": toResponses(s.Orchestrator.Messages())})
}

func toResponses(msgs []models.ChatMessage) []models.ChatMessageResponse {
	out := make([]models.ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.ToResponse())
	}
	return out
}
