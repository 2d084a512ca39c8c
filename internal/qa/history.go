package qa

import "sync"

// History holds the exchanges currently displayed, most recent first.
type History struct {
	mu    sync.RWMutex
	items []Exchange
}

func NewHistory() *History {
	return &History{}
}

// Prepend inserts an exchange at the front.
func (h *History) Prepend(exchange Exchange) {
	h.mu.Lock()
	defer h.mu.Unlock()

	items := make([]Exchange, 0, len(h.items)+1)
	items = append(items, exchange)
	h.items = append(items, h.items...)
}

// Replace drops every current exchange and keeps a copy of items instead.
func (h *History) Replace(items []Exchange) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append([]Exchange(nil), items...)
}

// Items returns a snapshot of the exchanges in display order.
func (h *History) Items() []Exchange {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]Exchange(nil), h.items...)
}
