package raster

import "spincube/internal/mathutil"

// LightConfig is the single fixed directional light of the vertex stage.
type LightConfig struct {
	Ambient mathutil.Vec3
	Diffuse mathutil.Vec3
	Dir     mathutil.Vec3 // used as given, not normalized
}

// DefaultLightConfig returns the cube's grey ambient plus a bluish key light.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Ambient: mathutil.Vec3{0.6, 0.6, 0.6},
		Diffuse: mathutil.Vec3{0.5, 0.5, 0.75},
		Dir:     mathutil.Vec3{0.85, 0.8, 0.75},
	}
}

// Shade returns ambient + diffuse·max(n·dir, 0) for a transformed normal.
func (lc *LightConfig) Shade(n mathutil.Vec3) mathutil.Vec3 {
	ndl := n.Dot(lc.Dir)
	if ndl < 0 {
		ndl = 0
	}
	return lc.Ambient.Add(lc.Diffuse.Scale(ndl))
}
