package service

import (
	"sync"

	"github.com/MKhiriev/go-file-vault/models"
)

// SessionHub holds the current session snapshot and fans every change out to
// subscribers. Subscribers that fall behind only see the newest snapshot.
type SessionHub struct {
	mu    sync.RWMutex
	state models.SessionState
	subs  map[int]chan models.SessionState
	next  int
}

func NewSessionHub() *SessionHub {
	return &SessionHub{
		state: models.SessionState{Status: models.SessionLoggedOut},
		subs:  make(map[int]chan models.SessionState),
	}
}

// Current returns the latest snapshot.
func (h *SessionHub) Current() models.SessionState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

// Resource returns the resolved resource of the session or
// ErrResourceUnresolved.
func (h *SessionHub) Resource() (models.ResourceHandle, error) {
	handle, ok := h.Current().Resource()
	if !ok {
		return "", ErrResourceUnresolved
	}
	return handle, nil
}

// Update derives a new snapshot from the current one and publishes it.
func (h *SessionHub) Update(change func(models.SessionState) models.SessionState) models.SessionState {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := change(h.state)
	next.Version = h.state.Version + 1
	h.state = next

	for _, ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		ch <- next
	}

	return next
}

// Subscribe returns a channel receiving every future snapshot and a function
// that detaches it.
func (h *SessionHub) Subscribe() (<-chan models.SessionState, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan models.SessionState, 1)
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}
