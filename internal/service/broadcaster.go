package service

import (
	"sync"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
)

// Broadcaster fans full entry-set snapshots out to live subscribers.
// Each subscriber only ever needs the most recent snapshot, so a slow
// consumer has stale snapshots replaced rather than queued.
type Broadcaster struct {
	mutex       sync.Mutex
	subscribers map[int]chan []ledger.Entry
	nextID      int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[int]chan []ledger.Entry),
	}
}

// Subscribe registers a snapshot channel. The returned cancel func
// must be called when the subscriber goes away.
func (b *Broadcaster) Subscribe() (<-chan []ledger.Entry, func()) {
	ch := make(chan []ledger.Entry, 1)

	b.mutex.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mutex.Unlock()

	cancel := func() {
		b.mutex.Lock()
		delete(b.subscribers, id)
		b.mutex.Unlock()
	}
	return ch, cancel
}

// Publish delivers the snapshot to every subscriber without blocking:
// an unconsumed older snapshot is dropped first.
func (b *Broadcaster) Publish(entries []ledger.Entry) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, ch := range b.subscribers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- entries:
		default:
		}
	}
}
