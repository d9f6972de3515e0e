package messaging

import (
	"errors"
	"fmt"
	"sync"
)

type subscription struct {
	ch    chan<- Event
	kinds map[EventKind]bool // nil means every kind
}

func (s subscription) wants(k EventKind) bool {
	return s.kinds == nil || s.kinds[k]
}

// Broker implements Bus with buffered channels. Delivery never blocks: a
// subscriber whose channel is full misses the event and Publish reports it.
type Broker struct {
	subscribers map[string]subscription
	mu          sync.RWMutex
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string]subscription),
	}
}

func (b *Broker) Publish(ev Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var errs []error
	for name, sub := range b.subscribers {
		if !sub.wants(ev.Kind) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			errs = append(errs, fmt.Errorf("subscriber %s's channel is full", name))
		}
	}
	return errors.Join(errs...)
}

func (b *Broker) Subscribe(name string, ch chan<- Event, kinds ...EventKind) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.subscribers[name]; exists {
		return fmt.Errorf("subscriber %s is already registered", name)
	}

	sub := subscription{ch: ch}
	if len(kinds) > 0 {
		sub.kinds = make(map[EventKind]bool, len(kinds))
		for _, k := range kinds {
			sub.kinds[k] = true
		}
	}
	b.subscribers[name] = sub
	return nil
}

func (b *Broker) Unsubscribe(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.subscribers[name]; !exists {
		return fmt.Errorf("subscriber %s is not registered", name)
	}
	delete(b.subscribers, name)
	return nil
}

func (b *Broker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = make(map[string]subscription)
}
