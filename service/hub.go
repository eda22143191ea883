package service

import (
	"fmt"
	"log"
	"sync"
)

// Hub starts registered services in order and stops them in reverse
type Hub struct {
	mu       sync.Mutex
	services []Service
	names    map[string]struct{}
	started  []Service
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{
		names: make(map[string]struct{}),
	}
}

// Register adds a service; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.names[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.names[name] = struct{}{}
	h.services = append(h.services, svc)
	return nil
}

// StartAll starts every registered service in registration order
// A failing service is logged and skipped; its error is returned in the map
func (h *Hub) StartAll() map[string]error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var failed map[string]error
	for _, svc := range h.services {
		if err := svc.Start(); err != nil {
			log.Printf("service %s start failed: %v (continuing without it)", svc.Name(), err)
			if failed == nil {
				failed = make(map[string]error)
			}
			failed[svc.Name()] = err
			continue
		}
		h.started = append(h.started, svc)
	}
	return failed
}

// Running reports whether the named service started
func (h *Hub) Running(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, svc := range h.started {
		if svc.Name() == name {
			return true
		}
	}
	return false
}

// StopAll stops started services in reverse order
// Errors are logged, every service gets Stop called
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.started) - 1; i >= 0; i-- {
		svc := h.started[i]
		if err := svc.Stop(); err != nil {
			log.Printf("service %s stop failed: %v", svc.Name(), err)
		}
	}
	h.started = nil
}
