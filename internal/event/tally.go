// internal/event/tally.go
package event

// Tally считает события по типам за один уровень.
type Tally struct {
	counts map[EventType]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[EventType]int)}
}

// Attach подписывает счётчик на все события диспетчера.
func (t *Tally) Attach(d *Dispatcher) func() {
	return d.Subscribe(Any, t)
}

func (t *Tally) OnEvent(e Event) {
	t.counts[e.Type]++
}

func (t *Tally) Count(eventType EventType) int {
	return t.counts[eventType]
}

// Reset обнуляет счётчики перед новым уровнем.
func (t *Tally) Reset() {
	clear(t.counts)
}
