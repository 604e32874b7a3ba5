// Package playground serves a read-only live view of a running game: the
// latest status snapshot over HTTP and a websocket feed that pushes a new
// snapshot after every applied command. It never mutates game state; the
// game loop publishes snapshots into it.
package playground

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"kuantum/internal/game"
	"kuantum/internal/monitoring"
)

// Server handles observer requests for a running game.
type Server struct {
	router  *gin.Engine
	monitor *monitoring.Monitor
	hub     *Hub

	mu     sync.RWMutex
	latest game.StatusSnapshot
	seen   bool
}

// NewServer creates a new playground server instance.
func NewServer(monitor *monitoring.Monitor) *Server {
	server := &Server{
		router:  gin.Default(),
		monitor: monitor,
		hub:     NewHub(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ws", s.handleWebSocket)

	api := s.router.Group("/api")
	{
		api.GET("/status", s.handleStatus)
		api.GET("/orders", s.handleOrders)
		api.GET("/events", s.handleEvents)
		api.GET("/metrics", s.handleMetrics)
	}
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Publish stores a fresh snapshot and pushes it to every connected observer.
// Called from the game loop after each command.
func (s *Server) Publish(snap game.StatusSnapshot) {
	s.mu.Lock()
	s.latest = snap
	s.seen = true
	s.mu.Unlock()

	s.hub.Broadcast(snap)
}

// snapshot returns the latest published snapshot, if any.
func (s *Server) snapshot() (game.StatusSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.seen
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Kuantum Kitchen observer is running"})
}

// handleStatus returns the latest full status snapshot.
func (s *Server) handleStatus(c *gin.Context) {
	snap, ok := s.snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot published yet"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// handleOrders returns the order collections of the latest snapshot.
func (s *Server) handleOrders(c *gin.Context) {
	snap, ok := s.snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot published yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": snap.Available,
		"active":    snap.Active,
		"completed": snap.Completed,
		"failed":    snap.Failed,
	})
}

// handleEvents returns the special-event log of the latest snapshot.
func (s *Server) handleEvents(c *gin.Context) {
	snap, ok := s.snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot published yet"})
		return
	}
	c.JSON(http.StatusOK, snap.Events)
}

// handleMetrics returns the free-form run metrics.
func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
