package scene

import (
	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// ConstantSky is a Sky whose radiance does not depend on ray direction,
// matching original_source/src/tracer.rs's Sky::Color variant (the only
// sky kind the original renderer implements).
type ConstantSky struct {
	Value spectral.Value
}

// NewConstantSky creates a direction-independent sky.
func NewConstantSky(color spectral.Value) ConstantSky {
	return ConstantSky{Value: color}
}

// Color implements Sky.
func (s ConstantSky) Color(direction core.Vec3) spectral.Value {
	return s.Value
}
