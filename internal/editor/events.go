package editor

import "sync"

// EventType identifies editor state-change events. The rendering layer
// subscribes to these and redraws; it never mutates editor state.
type EventType int

const (
	EventGeometryChanged EventType = iota
	EventSelectionChanged
	EventDrawingModeChanged
	EventWarning
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Bus is a minimal synchronous event dispatcher. Listeners run on the
// emitting goroutine; the editor is single-threaded by design, the lock
// only guards listener registration.
type Bus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[EventType][]EventListener)}
}

// On registers a listener for the specified event type.
func (b *Bus) On(event EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[event] = append(b.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (b *Bus) Emit(event EventType, data interface{}) {
	b.mu.RLock()
	listeners := b.listeners[event]
	b.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}
