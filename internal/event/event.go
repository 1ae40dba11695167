// internal/event/event.go
package event

// EventType: тип события
type EventType string

// Any подписывает слушателя сразу на все типы событий.
const Any EventType = ""

// Event: структура события
type Event struct {
	Type EventType
	Data interface{} // UnitData, ShotData или LevelResult
}

// Listener: подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher рассылает события симуляции синхронно, в порядке подписки.
// Не потокобезопасен: все вызовы идут из потока, который тикает доску.
type Dispatcher struct {
	subs   map[EventType][]subscription
	nextID int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[EventType][]subscription)}
}

// Subscribe подписывает listener на eventType (или на всё, если Any).
// Возвращённая функция отписывает его; повторный вызов ничего не делает.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.subs[eventType] = append(d.subs[eventType], subscription{id: id, listener: listener})
	return func() { d.remove(eventType, id) }
}

func (d *Dispatcher) remove(eventType EventType, id int) {
	subs := d.subs[eventType]
	for i, s := range subs {
		if s.id == id {
			d.subs[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch вызывает подписчиков типа события, затем подписчиков Any.
// Nil-диспетчер молча ничего не делает, доска без подписчиков его и получает.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.subs[event.Type] {
		s.listener.OnEvent(event)
	}
	if event.Type != Any {
		for _, s := range d.subs[Any] {
			s.listener.OnEvent(event)
		}
	}
}
