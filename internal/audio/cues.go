// internal/audio/cues.go
package audio

import (
	"log"
	"sync"
	"time"

	"go-hive-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue: звуковой сигнал игрового события.
type Cue struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

// DefaultCues сопоставляет события доски с тонами.
var DefaultCues = map[event.EventType]Cue{
	event.ShotFired:    {Freq: 880, Duration: 40 * time.Millisecond, Wave: WaveSquare, Volume: 0.15},
	event.TowerRemoved: {Freq: 140, Duration: 180 * time.Millisecond, Wave: WaveSquare, Volume: 0.3},
	event.HiveFounded:  {Freq: 220, Duration: 400 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
}

// Cues проигрывает тоны в ответ на события. Без звуковой карты молчит.
type Cues struct {
	mu    sync.Mutex
	cues  map[event.EventType]Cue
	mixer *beep.Mixer
	sink  func(beep.Streamer)
}

// NewCues открывает динамик. Если это не удалось или mute, сигналы молча отбрасываются.
func NewCues(mute bool) *Cues {
	c := &Cues{cues: DefaultCues, mixer: &beep.Mixer{}}
	if mute {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("audio: speaker unavailable, sound disabled: %v", err)
		return c
	}
	speaker.Play(c.mixer)
	c.sink = func(s beep.Streamer) {
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
	return c
}

// Attach подписывает сигналы на события диспетчера.
func (c *Cues) Attach(d *event.Dispatcher) {
	for eventType := range c.cues {
		d.Subscribe(eventType, c)
	}
}

func (c *Cues) OnEvent(e event.Event) {
	cue, ok := c.cues[e.Type]
	if !ok {
		return
	}
	c.Play(cue)
}

// Play запускает тон, если звук включён.
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sink == nil {
		return
	}
	s := NewTone(cue.Freq, cue.Duration, cue.Wave, sampleRate)
	c.sink(beep.Take(sampleRate.N(cue.Duration), withVolume(s, cue.Volume)))
}

// Enabled сообщает, идёт ли звук на динамик.
func (c *Cues) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sink != nil
}

// Close останавливает всё, что играет.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sink == nil {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.sink = nil
}
