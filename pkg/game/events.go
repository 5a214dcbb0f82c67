package game

type EventType int

const (
	EventFlap EventType = iota
	EventScore
	EventCrash
	EventReset
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventCrash:
		return "crash"
	case EventReset:
		return "reset"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

type Event struct {
	Type  EventType
	Y     float64 // bird height when the event fired
	Score int     // displayed score
}

type EventHandler func(Event)

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

// SubscribeAll registers fn for every event type
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventFlap; t <= EventQuit; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
