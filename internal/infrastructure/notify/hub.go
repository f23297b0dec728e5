package notify

import "sync"

// Hub fans data-change notifications out to subscribed presentation
// surfaces. It replaces ambient shared state: surfaces re-read through the
// record store when told, instead of holding their own copy.
type Hub struct {
	mu        sync.RWMutex
	listeners []func()
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn to run after every successful mutation.
// Subscriptions cannot be removed; a Hub lives as long as its process.
func (h *Hub) Subscribe(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// DataChanged invokes all listeners synchronously, in subscription order.
func (h *Hub) DataChanged() {
	h.mu.RLock()
	listeners := make([]func(), len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
