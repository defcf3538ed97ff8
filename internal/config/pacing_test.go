package config

import (
	"testing"
	"time"
)

func TestPacingDelay(t *testing.T) {
	p := NewPacing(DefaultSnakeConfig().Pacing)

	tests := []struct {
		segments int
		turbo    bool
		want     int
	}{
		{1, false, 200},
		{2, false, 195},
		{11, false, 150},
		{31, false, 50},
		{200, false, 50},
		{1, true, 100},
		{2, true, 98}, // ceil(195 / 2)
		{200, true, 25},
	}

	for _, tt := range tests {
		if got := p.DelayMs(tt.segments, tt.turbo); got != tt.want {
			t.Errorf("DelayMs(%d, %v) = %d, want %d", tt.segments, tt.turbo, got, tt.want)
		}
	}

	if got := p.FrameDelay(11, false); got != 150*time.Millisecond {
		t.Errorf("FrameDelay = %v, want 150ms", got)
	}
}

func TestPacingFixed(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	p := NewPacing(cfg.Pacing)

	if p.IsSpeedUp() {
		t.Error("Fixed preset should disable speed-up")
	}
	if got := p.DelayMs(50, false); got != 200 {
		t.Errorf("Fixed delay = %d, want 200", got)
	}

	p.SetSpeedUp(true)
	if got := p.DelayMs(50, false); got != 50 {
		t.Errorf("Delay after re-enabling = %d, want 50", got)
	}
}

func TestPacingMonotonic(t *testing.T) {
	p := NewPacing(DefaultSnakeConfig().Pacing)
	prev := p.DelayMs(1, false)
	for n := 2; n < 100; n++ {
		d := p.DelayMs(n, false)
		if d > prev {
			t.Fatalf("Delay grew from %d to %d at length %d", prev, d, n)
		}
		if turbo := p.DelayMs(n, true); turbo > d {
			t.Fatalf("Turbo delay %d exceeds normal %d at length %d", turbo, d, n)
		}
		prev = d
	}
}
