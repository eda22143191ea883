package metrics

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/lixenwraith/orrery/core"
)

// shutdownTimeout bounds how long Stop waits for in-flight scrapes
const shutdownTimeout = time.Second

// Server exposes a collector on /metrics
type Server struct {
	addr      string
	collector *Collector

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
}

// NewServer creates a metrics endpoint for addr, e.g. ":9100"
func NewServer(addr string, c *Collector) *Server {
	return &Server{addr: addr, collector: c}
}

// Name implements service.Service
func (s *Server) Name() string {
	return "metrics"
}

// Start binds the address and serves in the background
// A bind failure is returned here instead of from the serving goroutine
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", s.collector.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	s.srv, s.listener = srv, ln

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	})
	log.Printf("metrics listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop implements service.Service
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.srv
	s.srv, s.listener = nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
