package store

import (
	"sync"
	"time"
)

// EventKind says what happened to a record.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Collection names the store collection an event belongs to.
type Collection string

const (
	CollectionUsers         Collection = "users"
	CollectionWorkspaces    Collection = "workspaces"
	CollectionTasks         Collection = "tasks"
	CollectionMembers       Collection = "members"
	CollectionNotifications Collection = "notifications"
	CollectionActivities    Collection = "activities"
	CollectionMeetings      Collection = "meetings"
)

// Event describes a single store mutation.
type Event struct {
	Kind       EventKind  `json:"kind"`
	Collection Collection `json:"collection"`
	ID         string     `json:"id"`
	At         time.Time  `json:"at"`
}

// Bus is the store's subscribe/notify contract. Subscribers are invoked
// synchronously after the mutation has been applied, so a callback reading
// the store always observes the new state.
//
// Callbacks must not mutate the store from inside the callback; the board's
// event model is strictly one mutation, then fan-out.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]func(Event)
	next int
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers fn for every future event and returns a cancel
// function that removes the subscription.
func (b *Bus) Subscribe(fn func(Event)) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers e to every subscriber.
func (b *Bus) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	b.mu.RLock()
	// Copy so a subscriber cancelling inside its callback can't deadlock.
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}
