// Package metrics emits operational counters. Emission is best effort:
// Emitter.Emit has no result, and backend failures end at the emitter.
package metrics

import "context"

const (
	DefaultNamespace = "Custom/Login"
	DefaultUnit      = "Count"
)

// Dimension is a name/value pair attached to a data point.
type Dimension struct {
	Name  string
	Value string
}

// Event is one data point. An empty Namespace resolves to the emitter's.
type Event struct {
	Name       string
	Value      float64
	Unit       string
	Namespace  string
	Dimensions []Dimension
}

// Counter returns a single-count event.
func Counter(name string, dims ...Dimension) Event {
	return Event{
		Name:       name,
		Value:      1,
		Unit:       DefaultUnit,
		Dimensions: dims,
	}
}

// Emitter publishes events. Implementations must not block the caller on
// anything other than the backend call itself, and must not panic on backend
// errors.
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Emit(context.Context, Event) {}

// Multi emits to each emitter in order.
type Multi []Emitter

func (m Multi) Emit(ctx context.Context, event Event) {
	for _, e := range m {
		e.Emit(ctx, event)
	}
}
