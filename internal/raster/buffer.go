package raster

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // window-space depth per pixel, cleared to 1
}

// NewFrameBuffer allocates a cleared color buffer and depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.Clear([4]uint8{})
	return fb
}

// Clear fills color with bg and resets depth to the far plane.
func (fb *FrameBuffer) Clear(bg [4]uint8) {
	for i := 0; i+3 < len(fb.Color); i += 4 {
		fb.Color[i] = bg[0]
		fb.Color[i+1] = bg[1]
		fb.Color[i+2] = bg[2]
		fb.Color[i+3] = bg[3]
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = 1
	}
}
