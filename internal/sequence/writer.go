// Package sequence writes rendered frames to disk: one file per frame through
// a worker pool, or a single animated WebP.
package sequence

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format selects the output encoding.
type Format string

const (
	FormatWebP         Format = "webp"
	FormatTGA          Format = "tga"
	FormatAnimatedWebP Format = "webp-anim"
)

// AnimationName is the file written for FormatAnimatedWebP.
const AnimationName = "spin.webp"

// ParseFormat accepts "webp", "tga" or "webp-anim".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatWebP, FormatTGA, FormatAnimatedWebP:
		return f, nil
	}
	return "", fmt.Errorf("sequence: unknown format %q", s)
}

// Frame is one rendered image and the time it was rendered for.
type Frame struct {
	Index  int
	TimeMS float64
	Angle  float64
	Image  *image.NRGBA
}

// Config holds the shared settings for a write run.
type Config struct {
	OutputDir string
	Format    Format
	Workers   int
	FrameMS   float64   // display time per frame for animations
	Progress  io.Writer // nil disables progress lines
}

// Result holds the outcome of writing one frame.
type Result struct {
	Index   int
	Path    string
	Success bool
	Error   string
}

// FileName is the per-frame file name for f.
func FileName(index int, f Format) string {
	ext := "webp"
	if f == FormatTGA {
		ext = "tga"
	}
	return fmt.Sprintf("frame_%04d.%s", index, ext)
}

// Run writes every frame as its own file using a worker pool.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = writeFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func writeFrame(cfg Config, fr Frame) Result {
	outPath := filepath.Join(cfg.OutputDir, FileName(fr.Index, cfg.Format))
	res := Result{Index: fr.Index, Path: outPath}
	if fr.Image == nil {
		res.Error = "no image"
		return res
	}
	if err := writeFile(outPath, func(w io.Writer) error {
		return Encode(w, fr.Image, cfg.Format)
	}); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

// Encode writes a single still image in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	case FormatWebP, FormatAnimatedWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	default:
		return fmt.Errorf("sequence: unknown format %q", f)
	}
	return nil
}

// WriteAnimation encodes all frames into one looping animated WebP and
// returns its path.
func WriteAnimation(cfg Config, frames []Frame) (string, error) {
	if len(frames) == 0 {
		return "", fmt.Errorf("sequence: no frames to animate")
	}
	dur := uint(cfg.FrameMS + 0.5)
	if dur == 0 {
		dur = 1
	}
	ani := &nativewebp.Animation{
		Images:    make([]image.Image, len(frames)),
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
		LoopCount: 0,
	}
	for i, fr := range frames {
		ani.Images[i] = fr.Image
		ani.Durations[i] = dur
		ani.Disposals[i] = 1
	}

	outPath := filepath.Join(cfg.OutputDir, AnimationName)
	err := writeFile(outPath, func(w io.Writer) error {
		if err := nativewebp.EncodeAll(w, ani, nil); err != nil {
			return fmt.Errorf("WebP animation encode: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return outPath, nil
}

func writeFile(path string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
