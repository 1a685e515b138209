// Package server tracks the SSH sessions connected to one host process.
// Every session runs its own game; the server only knows who is connected,
// how each game is going, and how to tell everyone the host is shutting down.
package server

import (
	"cmp"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/vectoroids/internal/loop"
	"github.com/tomz197/vectoroids/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the server.
// Decouples the Client from the concrete Server implementation, enabling
// testing without an SSH listener.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportSession(clientID int, session loop.Session)
	Players() []PlayerInfo
}

// Server is a registry of connected clients.
type Server struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	logger       *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (shutdown, etc.)

	joined  time.Time
	session loop.Session
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// PlayerInfo is one connected player as shown in lobbies and logs.
type PlayerInfo struct {
	ID       int
	Username string
	Score    int
	Level    int
	Status   loop.Status
	Joined   time.Time
}

// NewServer creates an empty registry. A nil logger discards output.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		logger:       logger,
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
// Usernames are truncated to MaxUsernameLength runes.
func (s *Server) RegisterClient(username string) *ClientHandle {
	if r := []rune(username); len(r) > config.MaxUsernameLength {
		username = string(r[:config.MaxUsernameLength])
	}

	s.mu.Lock()
	id := s.nextClientID
	s.nextClientID++
	handle := &ClientHandle{
		ID:       id,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
		joined:   time.Now(),
		session:  loop.Session{Status: loop.StatusMenu},
	}
	s.clients[id] = handle
	count := len(s.clients)
	s.mu.Unlock()

	s.logger.Info("client registered", "id", id, "user", username, "players", count)
	return handle
}

// UnregisterClient removes a client from the server.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	handle, ok := s.clients[clientID]
	delete(s.clients, clientID)
	count := len(s.clients)
	s.mu.Unlock()

	if ok {
		s.logger.Info("client unregistered", "id", clientID, "user", handle.Username,
			"score", handle.session.Score, "players", count)
	}
}

// ReportSession records the latest state of a client's game.
func (s *Server) ReportSession(clientID int, session loop.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if handle, ok := s.clients[clientID]; ok {
		handle.session = session
	}
}

// Players returns the connected players, highest score first.
func (s *Server) Players() []PlayerInfo {
	s.mu.RLock()
	players := make([]PlayerInfo, 0, len(s.clients))
	for _, h := range s.clients {
		players = append(players, PlayerInfo{
			ID:       h.ID,
			Username: h.Username,
			Score:    h.session.Score,
			Level:    h.session.Level,
			Status:   h.session.Status,
			Joined:   h.joined,
		})
	}
	s.mu.RUnlock()

	slices.SortFunc(players, func(a, b PlayerInfo) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return players
}

// PlayerCount returns the number of connected clients.
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	// Notify all connected clients about the shutdown
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.PlayerCount() == 0 {
			return
		}
		select {
		case <-deadline:
			s.logger.Warn("shutdown timeout, clients still connected", "players", s.PlayerCount())
			return
		case <-ticker.C:
		}
	}
}
