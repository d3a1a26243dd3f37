package types

type EventType string

const (
	EventCallReceived   EventType = "call-received"
	EventCallQueued     EventType = "call-queued"
	EventCallAssigned   EventType = "call-assigned"
	EventCallAged       EventType = "call-aged"
	EventCarCallPressed EventType = "car-call-pressed"
	EventPassengerExit  EventType = "passenger-exit"
	EventPassengerEnter EventType = "passenger-enter"
	EventStatus         EventType = "status"
)

// NoCar is the CarID of events that are not tied to a car.
const NoCar = -1

// Event is one entry of the observability feed. It never feeds back into decisions.
type Event struct {
	Type  EventType
	Tick  int
	CarID int
	Floor int
	Dir   Direction
	Call  Call // zero unless the event concerns a hall call
}

// EventSink receives events in the order they happen.
type EventSink interface {
	Emit(ev Event)
}

// EventLog records events in memory.
type EventLog struct {
	Events []Event
}

func (l *EventLog) Emit(ev Event) {
	l.Events = append(l.Events, ev)
}

// OfType returns the recorded events of the given type, oldest first.
func (l *EventLog) OfType(t EventType) []Event {
	var out []Event
	for _, ev := range l.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// Discard drops every event.
var Discard EventSink = discard{}

type discard struct{}

func (discard) Emit(Event) {}
