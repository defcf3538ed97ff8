package config

import "time"

// Pacing calculates the tick delay from the snake length and turbo state.
type Pacing struct {
	cfg PacingConfig
}

// NewPacing creates a new pacing calculator.
func NewPacing(cfg PacingConfig) *Pacing {
	return &Pacing{cfg: cfg}
}

// SetSpeedUp enables or disables length-based speed-up.
func (p *Pacing) SetSpeedUp(enabled bool) {
	p.cfg.SpeedUp = enabled
}

// IsSpeedUp returns whether the delay shrinks as the snake grows.
func (p *Pacing) IsSpeedUp() bool {
	return p.cfg.SpeedUp && p.cfg.DelayDeltaMs > 0
}

// DelayMs returns the tick delay in milliseconds for a snake of the given
// length: starting delay minus delta per extra segment, floored at the
// minimum, then halved (rounded up) in turbo.
func (p *Pacing) DelayMs(segments int, turbo bool) int {
	delay := p.cfg.StartingDelayMs
	if p.IsSpeedUp() && segments > 1 {
		delay -= p.cfg.DelayDeltaMs * (segments - 1)
	}
	delay = max(delay, p.cfg.MinDelayMs)

	if turbo {
		delay = (delay + 1) / 2
	}
	return delay
}

// FrameDelay returns DelayMs as a duration.
func (p *Pacing) FrameDelay(segments int, turbo bool) time.Duration {
	return time.Duration(p.DelayMs(segments, turbo)) * time.Millisecond
}
