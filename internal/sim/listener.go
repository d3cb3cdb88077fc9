package sim

// Listener is notified of simulation events. Calls happen synchronously
// inside Update; implementations must not call back into the simulation.
type Listener interface {
	Spawned(e Entity)
	Dodged(e Entity)
	Caught(e Entity)
	Hit(e Entity)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) Spawned(Entity) {}
func (NopListener) Dodged(Entity)  {}
func (NopListener) Caught(Entity)  {}
func (NopListener) Hit(Entity)     {}
