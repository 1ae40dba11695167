package audio

import (
	"testing"
	"time"

	"go-hive-defense/internal/event"

	"github.com/gopxl/beep"
)

func TestTone(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"Sine", WaveSine},
		{"Square", WaveSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := beep.SampleRate(1000)
			s := NewTone(100, 50*time.Millisecond, tt.wave, rate)

			samples := make([][2]float64, 80)
			n, ok := s.Stream(samples)
			if !ok || n != 50 {
				t.Fatalf("Stream = %d, %v; want 50 samples", n, ok)
			}
			for i := 0; i < n; i++ {
				if v := samples[i][0]; v < -1 || v > 1 || v != samples[i][1] {
					t.Fatalf("sample %d = %v", i, samples[i])
				}
			}
			if n, ok := s.Stream(samples); n != 0 || ok {
				t.Errorf("drained tone streamed %d, %v", n, ok)
			}
			if s.Err() != nil {
				t.Error(s.Err())
			}
		})
	}
}

func TestCuesFollowEvents(t *testing.T) {
	c := NewCues(true)
	if c.Enabled() {
		t.Fatal("muted cues should not reach the speaker")
	}
	var played int
	c.sink = func(beep.Streamer) { played++ }

	d := event.NewDispatcher()
	c.Attach(d)
	d.Dispatch(event.Event{Type: event.ShotFired})
	d.Dispatch(event.Event{Type: event.HiveFounded})
	d.Dispatch(event.Event{Type: event.UnitAdded})

	if played != 2 {
		t.Errorf("played %d cues, want 2", played)
	}
}

func TestMutedCuesAreSilent(t *testing.T) {
	c := NewCues(true)
	c.Play(DefaultCues[event.ShotFired])
	c.Close()
	if c.Enabled() {
		t.Error("closed cues should stay disabled")
	}
}
