// Package events provides the in-process realtime bus carrying document
// events (pdf_generated, plot_updated). Handlers run synchronously on the
// publisher's goroutine; delivery is fire-and-forget.
package events

import (
	"log"
	"sync"

	"managefarms/internal/usecase/interfaces"
)

type subscription struct {
	id      int
	handler func(payload map[string]any)
}

// MemoryBus is a process-local IRealtimeBus. An external transport (socket
// server, message broker) can replace it behind the same interface.
type MemoryBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscription
}

var _ interfaces.IRealtimeBus = (*MemoryBus)(nil)

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: map[string][]subscription{}}
}

func (b *MemoryBus) Publish(event string, payload map[string]any) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs[event]))
	copy(subs, b.subs[event])
	b.mu.RUnlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[events][bus] handler panic event=%s err=%v", event, r)
				}
			}()
			s.handler(payload)
		}()
	}
}

func (b *MemoryBus) Subscribe(event string, handler func(payload map[string]any)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[event] = append(b.subs[event], subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[event]
		for i, s := range subs {
			if s.id == id {
				b.subs[event] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}
