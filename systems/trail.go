package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/neon-arena/components"
)

// updateTrail maybe adds a sample around (x, y) offset along angle, then
// drifts every sample along its own angle. The cap is enforced inside the
// drift pass, so an evicted sample has already moved this tick.
func updateTrail(trail *components.TrailData, rng *rand.Rand, x, y, angle float64) {
	c := trail.Config
	if rng.Float64() < c.Chance {
		trail.Samples = append(trail.Samples, components.TrailSample{
			X:     x + math.Cos(angle)*c.Spread,
			Y:     y + math.Sin(angle)*c.Spread,
			Angle: angle,
		})
	}

	for i := 0; i < len(trail.Samples); i++ {
		s := &trail.Samples[i]
		s.X += math.Cos(s.Angle) * c.Momentum
		s.Y += math.Sin(s.Angle) * c.Momentum

		if len(trail.Samples) > c.MaxSamples {
			copy(trail.Samples, trail.Samples[1:])
			trail.Samples = trail.Samples[:len(trail.Samples)-1]
			i--
		}
	}
}
