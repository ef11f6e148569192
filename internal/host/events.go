package host

import (
	"sync"
	"time"

	"github.com/lox/uno-cli/internal/game"
)

// EventType names what caused a published state change
type EventType string

const (
	EventStart    EventType = "start"
	EventPlay     EventType = "play"
	EventColor    EventType = "choose_color"
	EventDraw     EventType = "draw"
	EventPass     EventType = "pass"
	EventComputer EventType = "computer_turn"
)

// String returns the event type name
func (et EventType) String() string {
	return string(et)
}

// Event is published after every accepted intent or computer step
type Event struct {
	Type      EventType     `json:"type"`
	GameID    string        `json:"game_id"`
	Effects   []game.Effect `json:"effects,omitempty"`
	Snapshot  game.Snapshot `json:"snapshot"`
	Timestamp time.Time     `json:"timestamp"`
}

// Subscriber receives host events. OnEvent is called with the host lock
// held, so it must not call back into the host synchronously.
type Subscriber interface {
	OnEvent(event Event)
}

// SubscriberFunc adapts a function to the Subscriber interface
type SubscriberFunc func(Event)

// OnEvent calls f(event)
func (f SubscriberFunc) OnEvent(event Event) {
	f(event)
}

// eventBus fans events out to subscribers in subscription order
type eventBus struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]Subscriber
	order       []int
}

func newEventBus() *eventBus {
	return &eventBus{subscribers: make(map[int]Subscriber)}
}

// subscribe adds sub and returns a function that removes it again
func (bus *eventBus) subscribe(sub Subscriber) func() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	id := bus.nextID
	bus.nextID++
	bus.subscribers[id] = sub
	bus.order = append(bus.order, id)

	return func() {
		bus.mu.Lock()
		defer bus.mu.Unlock()
		delete(bus.subscribers, id)
		for i, existing := range bus.order {
			if existing == id {
				bus.order = append(bus.order[:i], bus.order[i+1:]...)
				break
			}
		}
	}
}

func (bus *eventBus) publish(event Event) {
	bus.mu.Lock()
	subs := make([]Subscriber, 0, len(bus.order))
	for _, id := range bus.order {
		subs = append(subs, bus.subscribers[id])
	}
	bus.mu.Unlock()

	for _, sub := range subs {
		sub.OnEvent(event)
	}
}

func (bus *eventBus) clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subscribers = make(map[int]Subscriber)
	bus.order = nil
}
