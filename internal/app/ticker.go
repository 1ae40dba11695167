// internal/app/ticker.go
package app

import "time"

// Ticker выдаёт тики по абсолютному расписанию: следующий срок сдвигается на
// interval от предыдущего срока, а не от момента пробуждения, поэтому время не уплывает.
// Если цикл отстал больше чем на maxCatchup тиков, расписание начинается заново.
type Ticker struct {
	interval  time.Duration
	maxBehind time.Duration
	next      time.Time
	now       func() time.Time
}

func NewTicker(interval time.Duration, maxCatchup int) *Ticker {
	if maxCatchup < 1 {
		maxCatchup = 1
	}
	t := &Ticker{
		interval:  interval,
		maxBehind: interval * time.Duration(maxCatchup),
		now:       time.Now,
	}
	t.Reset()
	return t
}

// Reset назначает первый срок через interval от текущего момента.
func (t *Ticker) Reset() {
	t.next = t.now().Add(t.interval)
}

// Due возвращает, сколько тиков пора выполнить, и сдвигает срок за них.
func (t *Ticker) Due() int {
	now := t.now()
	if now.Sub(t.next) > t.maxBehind {
		t.next = now
	}
	n := 0
	for !now.Before(t.next) {
		n++
		t.next = t.next.Add(t.interval)
	}
	return n
}

// Until: сколько ждать до следующего срока.
func (t *Ticker) Until() time.Duration {
	if d := t.next.Sub(t.now()); d > 0 {
		return d
	}
	return 0
}
