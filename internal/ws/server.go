// Package ws serves the streaming surface: a WebSocket endpoint that greets
// each client with a status envelope and answers inactivity messages with
// tutor responses. A bad message never closes the connection; only a
// transport error ends the read loop.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/tutor"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gorilla/websocket"
)

const (
	pingInterval = 20 * time.Second
	writeTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// The HTTP surface handles CORS; the editor plugin connects from
		// arbitrary local origins.
		return true
	},
}

// Server owns the WebSocket listener and dispatches inactivity messages to
// the tutor service.
type Server struct {
	tutorService *tutor.Service
	httpServer   *http.Server
}

// NewServer creates a WebSocket server bound to the given address.
func NewServer(addr string, tutorService *tutor.Service) *Server {
	if tutorService == nil {
		panic("ws.NewServer: tutorService cannot be nil")
	}

	s := &Server{tutorService: tutorService}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleConnection)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// ListenAndServe blocks serving WebSocket connections until Shutdown.
func (s *Server) ListenAndServe() error {
	fiberlog.Infof("WebSocket server listening on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// HandleConnection upgrades the request and runs the per-connection loop.
func (s *Server) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		fiberlog.Errorf("ws: upgrade failed: %v", err)
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			fiberlog.Debugf("ws: close: %v", err)
		}
	}()

	fiberlog.Info("ws: client connected")

	if err := writeJSON(conn, models.NewStatusEnvelope()); err != nil {
		fiberlog.Errorf("ws: failed to send status greeting: %v", err)
		return
	}

	done := make(chan struct{})
	defer close(done)
	go s.pingLoop(conn, done)

	s.readLoop(r.Context(), conn)
	fiberlog.Info("ws: client disconnected")
}

// readLoop processes inbound messages until the connection drops.
func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				fiberlog.Warnf("ws: read error: %v", err)
			}
			return
		}

		var msg models.InboundMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			fiberlog.Errorf("ws: failed to parse message: %v", err)
			s.send(conn, models.NewResponseEnvelope("Error: Invalid JSON message"))
			continue
		}

		fiberlog.Infof("ws: received message type %q", msg.Type)

		if msg.Type != "inactivity" {
			continue
		}

		s.send(conn, s.handleInactivity(ctx, msg.Data))
	}
}

// handleInactivity routes an inactivity payload: an attached error means
// the user hit a problem (explain it), otherwise they have gone quiet over
// their code (suggest improvements).
func (s *Server) handleInactivity(ctx context.Context, data models.InactivityPayload) models.ResponseEnvelope {
	fileName := data.FileName
	if fileName == "" {
		fileName = "unknown"
	}

	var message string
	if data.Error != "" {
		message, _ = s.tutorService.ExplainError(ctx, data.Text, data.Error, data.Language, fileName)
	} else {
		message, _ = s.tutorService.SuggestOnInactivity(ctx, data.Text, fileName, "", data.Language)
	}

	return models.NewResponseEnvelope(message)
}

func (s *Server) send(conn *websocket.Conn, envelope models.ResponseEnvelope) {
	if err := writeJSON(conn, envelope); err != nil {
		fiberlog.Errorf("ws: write failed: %v", err)
	}
}

func (s *Server) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(writeTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// writeJSON serializes and writes one envelope under the write deadline.
// gorilla connections allow one concurrent writer; all writes to a
// connection happen on its read goroutine, the ping loop only sends
// control frames, which WriteControl serializes internally.
func writeJSON(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}
