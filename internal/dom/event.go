package dom

// Event is delivered to listeners registered on an element.
type Event struct {
	// Type is the event name, e.g. "change" or "focus".
	Type string

	// Target is the element the event was fired on.
	Target *Element
}

// Listener handles a fired event.
type Listener func(Event)

// On registers a listener for the named event.
func (e *Element) On(event string, fn Listener) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[event] = append(e.listeners[event], fn)
}

// Fire invokes every listener registered on e for the named event,
// synchronously and in registration order.
func (e *Element) Fire(event string) {
	for _, fn := range e.listeners[event] {
		fn(Event{Type: event, Target: e})
	}
}
