package signals

import (
	"fmt"
	"log"
	"sync"
)

type listener struct {
	ch     chan Envelope
	id     string
	active bool
}

// Router broadcasts overlay signals to registered listeners. Delivery
// order matches emission order per listener. Emission happens on the UI
// thread and handlers are expected to be fast, so sends that would block
// on a full listener buffer are dropped with a log line instead of
// stalling input handling.
type Router struct {
	mu          sync.RWMutex
	listeners   map[string]*listener
	logMessages bool
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		listeners:   make(map[string]*listener),
		logMessages: true,
	}
}

// Register adds a listener and returns its receive channel.
func (r *Router) Register(id string, bufferSize int) (<-chan Envelope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listeners[id]; exists {
		return nil, fmt.Errorf("listener %s already registered", id)
	}

	l := &listener{ch: make(chan Envelope, bufferSize), id: id, active: true}
	r.listeners[id] = l
	log.Printf("Router: Registered listener %s with buffer size %d", id, bufferSize)
	return l.ch, nil
}

// Unregister removes a listener and closes its channel.
func (r *Router) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, exists := r.listeners[id]; exists {
		l.active = false
		close(l.ch)
		delete(r.listeners, id)
		log.Printf("Router: Unregistered listener %s", id)
	}
}

// Broadcast delivers a message to every active listener.
func (r *Router) Broadcast(from string, msg Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.logMessages {
		log.Printf("Router: %s broadcasts %s", from, msg.Type())
	}

	env := Envelope{From: from, Message: msg}
	for id, l := range r.listeners {
		if !l.active {
			continue
		}
		select {
		case l.ch <- env:
		default:
			log.Printf("Router: Dropped %s for listener %s (buffer full)", msg.Type(), id)
		}
	}
}

// SetMessageLogging enables or disables per-message logging.
func (r *Router) SetMessageLogging(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logMessages = enabled
}

// Shutdown closes all listener channels.
func (r *Router) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, l := range r.listeners {
		if l.active {
			l.active = false
			close(l.ch)
		}
		delete(r.listeners, id)
	}
	log.Printf("Router: Shutdown complete")
}
