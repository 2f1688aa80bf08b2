package drone

import (
	"github.com/vovakirdan/fpv-neon/internal/config"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

// Factory creates obstacles and dust with randomized attributes.
type Factory struct {
	cfg config.DroneConfig
	rng core.Rand
}

// NewFactory creates a factory drawing from rng.
func NewFactory(cfg config.DroneConfig, rng core.Rand) *Factory {
	return &Factory{cfg: cfg, rng: rng}
}

// Obstacle creates an obstacle at a random height inside the safe band.
func (f *Factory) Obstacle() Obstacle {
	return f.newObstacle(nil)
}

// ObstacleAt creates an obstacle at a fixed height.
func (f *Factory) ObstacleAt(y float64) Obstacle {
	return f.newObstacle(&y)
}

func (f *Factory) newObstacle(fixedY *float64) Obstacle {
	oc := f.cfg.Obstacles
	h := f.cfg.Canvas.Height

	idx := int(f.rng.Float64() * float64(shapeCount))
	if idx >= int(shapeCount) {
		idx = int(shapeCount) - 1
	}

	var y float64
	if fixedY != nil {
		y = *fixedY
	} else {
		y = f.between(oc.SafeBand, h-oc.SafeBand)
	}

	return Obstacle{
		Shape:    Shape(idx),
		Pos:      core.Vec2{X: f.cfg.Canvas.Width + oc.SpawnOffset, Y: y},
		Size:     f.between(oc.MinSize, oc.MaxSize),
		RotSpeed: f.between(-oc.MaxRotSpeed, oc.MaxRotSpeed),
		Hue:      f.between(oc.HueMin, oc.HueMax),
	}
}

// DustField creates the initial dust particles scattered over the canvas.
func (f *Factory) DustField() []Dust {
	dc := f.cfg.Dust
	dust := make([]Dust, dc.Count)
	for i := range dust {
		dust[i] = Dust{
			Pos: core.Vec2{
				X: f.rng.Float64() * f.cfg.Canvas.Width,
				Y: f.rng.Float64() * f.cfg.Canvas.Height,
			},
			Depth:   f.between(dc.MinDepth, dc.MaxDepth),
			Opacity: f.between(dc.MinOpacity, dc.MaxOpacity),
		}
	}
	return dust
}

// RandomHeight returns a uniform height over the whole canvas.
func (f *Factory) RandomHeight() float64 {
	return f.rng.Float64() * f.cfg.Canvas.Height
}

// between returns a uniform value in [lo, hi).
func (f *Factory) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}
