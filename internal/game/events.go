package game

type EventType int

const (
	EventShot EventType = iota
	EventExplosion
	EventPickup
	EventGameOver
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // generic payload (points for explosions, ammo for pickups)
}

type EventHandler func(Event)

// EventBus decouples the update loop from its observers (audio, HUD
// effects). Handlers run synchronously during the emitting update.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
