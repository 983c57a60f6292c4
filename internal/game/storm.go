package game

import (
	"math/rand"

	"dustward/internal/config"
)

// StormState enumerates the sandstorm cycle. Transitions are time-driven
// only; no player interaction can cancel or accelerate the cycle.
type StormState int

const (
	StormCalm StormState = iota
	StormBuilding
	StormActive
	StormFading
)

// String returns a short name for the state.
func (s StormState) String() string {
	switch s {
	case StormCalm:
		return "calm"
	case StormBuilding:
		return "building"
	case StormActive:
		return "active"
	case StormFading:
		return "fading"
	default:
		return "unknown"
	}
}

// Storm is the sandstorm hazard cycle. Phase is always recomputed from
// Remaining/Duration, never accumulated separately, so it cannot drift
// from the countdown.
type Storm struct {
	cfg       config.StormTuning
	State     StormState
	Remaining float64
	Duration  float64
}

func newStorm(cfg config.StormTuning, rng *rand.Rand) Storm {
	s := Storm{cfg: cfg, State: StormCalm}
	s.Duration = s.rollCalm(rng)
	s.Remaining = s.Duration
	return s
}

func (s *Storm) rollCalm(rng *rand.Rand) float64 {
	return s.cfg.CalmMin + rng.Float64()*(s.cfg.CalmMax-s.cfg.CalmMin)
}

func (s *Storm) rollActive(rng *rand.Rand) float64 {
	return s.cfg.ActiveMin + rng.Float64()*(s.cfg.ActiveMax-s.cfg.ActiveMin)
}

// Update advances the cycle by dt, entering the next state when the
// current one expires: Calm -> Building -> Active -> Fading -> Calm.
func (s *Storm) Update(dt float64, rng *rand.Rand) {
	if !s.cfg.Enabled {
		return
	}

	s.Remaining -= dt
	if s.Remaining > 0 {
		return
	}

	switch s.State {
	case StormCalm:
		s.State = StormBuilding
		s.Duration = s.cfg.BuildTime
	case StormBuilding:
		s.State = StormActive
		s.Duration = s.rollActive(rng)
	case StormActive:
		s.State = StormFading
		s.Duration = s.cfg.FadeTime
	case StormFading:
		s.State = StormCalm
		s.Duration = s.rollCalm(rng)
	}
	s.Remaining = s.Duration
}

// Phase returns the state's progress value. Building ramps 0 to 1 (warning
// fade-in); Active and Fading fall 1 to 0 with remaining time; Calm is 0.
func (s *Storm) Phase() float64 {
	if s.Duration <= 0 {
		return 0
	}
	switch s.State {
	case StormBuilding:
		return 1 - s.Remaining/s.Duration
	case StormActive, StormFading:
		return s.Remaining / s.Duration
	default:
		return 0
	}
}

// SpeedMultiplier returns the player speed scale for the current state:
// full speed in Calm/Building, the storm factor while Active, and a linear
// recovery toward full speed as the Fading phase falls.
func (s *Storm) SpeedMultiplier() float64 {
	switch s.State {
	case StormActive:
		return s.cfg.SpeedFactor
	case StormFading:
		return 1 - s.Phase()*(1-s.cfg.SpeedFactor)
	default:
		return 1
	}
}

// WindBoosted reports whether ambient wind lines spawn at double rate.
func (s *Storm) WindBoosted() bool {
	return s.State == StormBuilding || s.State == StormActive
}

// InProgress reports whether storm particles should be driven.
func (s *Storm) InProgress() bool {
	return s.State != StormCalm
}
