// Package dispatch routes named events to handlers and owns the animation
// state machine. It knows nothing about the TUI host, so handlers can be
// exercised directly in tests with synthetic events.
package dispatch

// Handler consumes one event payload. Handlers run to completion one at a
// time; there is no concurrency inside a dispatcher.
type Handler func(payload any)

type queuedEvent struct {
	name    string
	payload any
}

// Dispatcher is a synchronous, serialized event router. A Dispatch issued
// while a handler is still running (a re-entrant dispatch) is queued and
// drained afterwards, so at most one handler is ever in flight.
type Dispatcher struct {
	handlers map[string][]Handler
	inFlight bool
	pending  []queuedEvent
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for an event name. Handlers fire in
// subscription order.
func (d *Dispatcher) Subscribe(event string, h Handler) {
	d.handlers[event] = append(d.handlers[event], h)
}

// Dispatch delivers the event to every subscribed handler. Events dispatched
// from inside a handler run after the current one finishes, in order.
func (d *Dispatcher) Dispatch(event string, payload any) {
	if d.inFlight {
		d.pending = append(d.pending, queuedEvent{name: event, payload: payload})
		return
	}

	d.inFlight = true
	d.deliver(event, payload)
	for len(d.pending) > 0 {
		next := d.pending[0]
		d.pending = d.pending[1:]
		d.deliver(next.name, next.payload)
	}
	d.inFlight = false
}

func (d *Dispatcher) deliver(event string, payload any) {
	for _, h := range d.handlers[event] {
		h(payload)
	}
}
