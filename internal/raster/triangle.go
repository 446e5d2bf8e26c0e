package raster

import (
	"math"

	"spincube/internal/mathutil"
)

// screenVertex is a vertex after the vertex stage and viewport transform.
type screenVertex struct {
	x, y, z float64 // window coordinates, z in [0,1]
	invW    float64 // 1/clip.w for perspective-correct varyings
	light   mathutil.Vec3
	ok      bool // false when behind the eye or non-finite
}

// RasterizeTriangle fills one triangle with a depth test (LEQUAL) and
// Gouraud-interpolated light.
//
// Hot path: no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, v0, v1, v2 *screenVertex) {
	if !v0.ok || !v1.ok || !v2.ok {
		return
	}

	x0, y0, z0 := v0.x, v0.y, v0.z
	x1, y1, z1 := v1.x, v1.y, v1.z
	x2, y2, z2 := v2.x, v2.y, v2.z

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			if z < 0 || z > 1 {
				continue
			}
			zIdx := rowOff + sx
			if z > fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			// Perspective-correct varying
			p0, p1, p2 := w0*v0.invW, w1*v1.invW, w2*v2.invW
			inv := 1.0 / (p0 + p1 + p2)
			r := (p0*v0.light[0] + p1*v1.light[0] + p2*v2.light[0]) * inv
			g := (p0*v0.light[1] + p1*v1.light[1] + p2*v2.light[1]) * inv
			b := (p0*v0.light[2] + p1*v1.light[2] + p2*v2.light[2]) * inv

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(r * 255)
			fb.Color[pxIdx+1] = clamp255(g * 255)
			fb.Color[pxIdx+2] = clamp255(b * 255)
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
