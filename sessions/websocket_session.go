package sessions

import (
	"log"
	"net/http"

	"github.com/Lax999/Newapp/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The chat surface is same-device; origin checks belong to a fronting proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatSession is one live websocket connection: the full log snapshot on
// connect, then a push for every appended message, while inbound frames feed
// SendMessage.
type ChatSession struct {
	SessionID    string
	Orchestrator ChatOrchestrator
	Writer       *WebSocketWriter
	Logger       *log.Logger
}

// RegisterWebSocketRoute mounts the websocket endpoint on the given group.
func RegisterWebSocketRoute(r *gin.RouterGroup, orchestrator ChatOrchestrator) {
	r.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		session := NewChatSession(conn, orchestrator)
		session.Run()
	})
}

// Run streams the log to the client until the connection drops.
func (s *ChatSession) Run() {
	defer s.Writer.Conn.Close()

	// Snapshot first so the client renders the existing conversation.
	for _, msg := range s.Orchestrator.Messages() {
		if err := s.Writer.WriteMessage(msg); err != nil {
			return
		}
	}

	// A buffered channel decouples the appending goroutine from the socket;
	// the subscriber callback must not block the orchestrator.
	updates := make(chan models.ChatMessage, 64)
	unsubscribe := s.Orchestrator.Subscribe(func(msg models.ChatMessage) {
		select {
		case updates <- msg:
		default:
			s.Logger.Printf("dropping update for slow client")
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	go s.readLoop(done)

	for {
		select {
		case msg := <-updates:
			if err := s.Writer.WriteMessage(msg); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (s *ChatSession) readLoop(done chan<- struct{}) {
	defer close(done)
	for {
		var req SendRequest
		if err := s.Writer.Conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.Logger.Printf("read error: %v", err)
			}
			return
		}
		if req.Text == "" {
			_ = s.Writer.WriteError("text must not be empty")
			continue
		}
		s.Orchestrator.SendMessage(req.Text)
	}
}
