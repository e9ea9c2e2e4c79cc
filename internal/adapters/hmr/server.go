package hmr

import (
	_ "embed"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.trai.ch/serv/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed client.js
var clientSource []byte

// MessageType discriminates push messages sent to connected clients.
type MessageType string

const (
	// MessageConnected greets a freshly connected client.
	MessageConnected MessageType = "connected"
	// MessageUpdate asks clients to re-import one module.
	MessageUpdate MessageType = "update"
	// MessageReload asks clients to reload the page.
	MessageReload MessageType = "reload"
)

// Message is one push notification on the hot-reload channel.
type Message struct {
	Type      MessageType `json:"type"`
	Path      string      `json:"path,omitempty"`
	Timestamp int64       `json:"timestamp,omitempty"`
}

// Server serves the reload client script at the reserved endpoint and
// upgrades the same endpoint to the websocket push channel.
type Server struct {
	logger   ports.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewServer creates a hot-reload push server.
func NewServer(logger ports.Logger) *Server {
	return &Server{
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP implements http.Handler for the reserved client endpoint.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		w.Header().Set("Content-Type", "application/javascript")
		_, _ = w.Write(clientSource)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "websocket upgrade failed"))
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	if err := conn.WriteJSON(Message{Type: MessageConnected}); err != nil {
		s.drop(conn)
		return
	}

	// Clients never send payloads; the read loop only detects disconnect.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

// Broadcast sends the message to every connected client. Clients whose
// connection errors are dropped.
func (s *Server) Broadcast(msg Message) {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(msg); err != nil {
			s.drop(conn)
		}
	}
}

// Close disconnects all clients.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		_ = conn.Close()
		delete(s.clients, conn)
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	_ = conn.Close()
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
}
