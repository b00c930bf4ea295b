package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/soar/padmap/internal/hub"
	"github.com/soar/padmap/internal/input"
	"github.com/soar/padmap/internal/poller"
)

type Server struct {
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	poller      *poller.Poller
	addr        string
	log         *zap.Logger
	httpServer  *http.Server
}

func New(h *hub.Hub, b *hub.Broadcaster, p *poller.Poller, addr string, log *zap.Logger) *Server {
	return &Server{
		hub:         h,
		broadcaster: b,
		poller:      p,
		addr:        addr,
		log:         log,
	}
}

func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", handleWebSocket(s.hub, s.broadcaster, s.poller, s.log))

	// Current logical state of every slot
	mux.HandleFunc("/api/state", s.handleState)

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.log.Info("HTTP server listening", zap.String("addr", s.addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		s.log.Info("shutting down HTTP server")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	states := make([]poller.LogicalState, 0, input.MaxDevices)
	for slot := 1; slot <= input.MaxDevices; slot++ {
		states = append(states, s.poller.CurrentState(slot))
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(states); err != nil {
		s.log.Error("encode state response", zap.Error(err))
	}
}
