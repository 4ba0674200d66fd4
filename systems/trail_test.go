package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
)

func TestUpdateTrailCap(t *testing.T) {
	tests := []struct {
		name   string
		config cfg.TrailConfig
	}{
		{name: "player", config: cfg.Player.Trail},
		{name: "enemy", config: cfg.Enemy.Trail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.config
			c.Chance = 1
			trail := &components.TrailData{Config: c}
			rng := rand.New(rand.NewSource(7))

			for i := 0; i < 3*c.MaxSamples; i++ {
				updateTrail(trail, rng, float64(i), 0, 0)
				want := i + 1
				if want > c.MaxSamples {
					want = c.MaxSamples
				}
				if len(trail.Samples) != want {
					t.Fatalf("update %d: expected %d samples, got %d", i, want, len(trail.Samples))
				}
			}
		})
	}
}

func TestUpdateTrailSampling(t *testing.T) {
	c := cfg.TrailConfig{Chance: 1, Spread: 15, Momentum: 0.5, MaxSamples: 15}
	trail := &components.TrailData{Config: c}
	rng := rand.New(rand.NewSource(1))

	updateTrail(trail, rng, 100, 100, math.Pi/2)
	if len(trail.Samples) != 1 {
		t.Fatalf("expected one sample, got %d", len(trail.Samples))
	}
	s := trail.Samples[0]
	// Placed at the spread offset, then drifted once along its angle
	if math.Abs(s.X-100) > 1e-9 || math.Abs(s.Y-115.5) > 1e-9 {
		t.Errorf("expected sample at (100, 115.5), got (%v, %v)", s.X, s.Y)
	}
	if s.Angle != math.Pi/2 {
		t.Errorf("expected angle pi/2, got %v", s.Angle)
	}

	trail.Config.Chance = 0
	updateTrail(trail, rng, 0, 0, 0)
	if len(trail.Samples) != 1 {
		t.Fatalf("expected no new sample with zero chance, got %d", len(trail.Samples))
	}
	if math.Abs(trail.Samples[0].Y-116) > 1e-9 {
		t.Errorf("expected existing sample to keep drifting, got y=%v", trail.Samples[0].Y)
	}
}

func TestUpdateTrailEvictsOldest(t *testing.T) {
	c := cfg.TrailConfig{Chance: 1, Spread: 0, Momentum: 1, MaxSamples: 2}
	trail := &components.TrailData{Config: c}
	rng := rand.New(rand.NewSource(1))

	updateTrail(trail, rng, 10, 0, 0)
	updateTrail(trail, rng, 20, 0, 0)
	updateTrail(trail, rng, 30, 0, 0)

	if len(trail.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(trail.Samples))
	}
	// Oldest is gone; survivors drifted once per update they saw
	if trail.Samples[0].X != 22 || trail.Samples[1].X != 31 {
		t.Errorf("expected samples at x=22 and x=31, got %v and %v", trail.Samples[0].X, trail.Samples[1].X)
	}
}
