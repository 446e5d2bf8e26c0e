package frame

import (
	"log"

	"spincube/internal/mathutil"
)

// WithDiagnostics logs frames whose model matrix is badly conditioned or whose
// published matrices contain NaN/Inf. Matrices are observed, never altered.
// maxCond <= 0 disables the conditioning check.
func WithDiagnostics(logger *log.Logger, maxCond float64) Option {
	if logger == nil {
		return func(*Driver) {}
	}
	return func(d *Driver) {
		prev := d.observer
		d.observer = func(fs FrameState) {
			if prev != nil {
				prev(fs)
			}
			checkFrame(logger, fs, maxCond)
		}
	}
}

func checkFrame(logger *log.Logger, fs FrameState, maxCond float64) {
	for _, m := range []struct {
		name string
		mat  mathutil.Mat4
	}{
		{UniformProjection, fs.Projection},
		{UniformModel, fs.Model},
		{UniformNormal, fs.Normal},
	} {
		if !m.mat.IsFinite() {
			logger.Printf("frame: %s matrix not finite at angle %.4f", m.name, fs.Angle)
		}
	}
	if maxCond > 0 {
		if c := mathutil.Condition(fs.Model); c > maxCond {
			logger.Printf("frame: model matrix near singular (cond %.3g > %.3g)", c, maxCond)
		}
	}
}
