package v1

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/api/middleware"
	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type liveClient struct {
	conn     *websocket.Conn
	send     chan []byte
	userID   uint
	courseID string
}

type scoreEvent struct {
	Type  string       `json:"type"`
	Score domain.Score `json:"score"`
	At    time.Time    `json:"at"`
}

// LiveHandler streams score submissions to clients watching a course. It is
// the broadcaster the score service publishes into; clients are receive-only.
type LiveHandler struct {
	clientsMutex sync.RWMutex
	clients      map[*liveClient]struct{}

	register   chan *liveClient
	unregister chan *liveClient
	events     chan scoreEvent
}

func NewLiveHandler() *LiveHandler {
	return &LiveHandler{
		clients:    make(map[*liveClient]struct{}),
		register:   make(chan *liveClient),
		unregister: make(chan *liveClient),
		events:     make(chan scoreEvent, 64),
	}
}

func (h *LiveHandler) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMutex.Lock()
			h.clients[client] = struct{}{}
			h.clientsMutex.Unlock()
		case client := <-h.unregister:
			h.clientsMutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMutex.Unlock()
		case event := <-h.events:
			payload, err := json.Marshal(event)
			if err != nil {
				zap.L().Error("live: event marshal failed", zap.Error(err))
				continue
			}

			h.clientsMutex.Lock()
			for client := range h.clients {
				if client.courseID != event.Score.CourseID {
					continue
				}
				select {
				case client.send <- payload:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.clientsMutex.Unlock()
		}
	}
}

// BroadcastScore queues a score event for delivery. Non-blocking: live
// watching is best-effort and a full event buffer drops the event.
func (h *LiveHandler) BroadcastScore(score domain.Score) {
	select {
	case h.events <- scoreEvent{Type: "score", Score: score, At: time.Now()}:
	default:
		zap.L().Warn("live: event buffer full, dropping",
			zap.String("course_id", score.CourseID))
	}
}

func (h *LiveHandler) HandleWatchCourse(c *gin.Context) {
	courseID := c.Param("courseID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("live: upgrade failed", zap.Error(err))
		return
	}

	client := &liveClient{
		conn:     conn,
		send:     make(chan []byte, 256),
		userID:   middleware.UserIDFromContext(c),
		courseID: courseID,
	}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

func (c *liveClient) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
}

// readPump drains the connection so close frames and pings are processed.
// Watchers never send application messages; anything received is ignored.
func (c *liveClient) readPump(h *LiveHandler) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("live: read error", zap.Error(err))
			}
			break
		}
	}
}
