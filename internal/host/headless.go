package host

import (
	"context"
	"fmt"
	"log"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64 // stop after N frames (0 = run until ctx is done)
	Logger *log.Logger
}

// RunHeadless fires the loop's pending frame at Hz until ctx is canceled or
// Frames is reached. after, if set, runs once per fired frame.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, loop *Loop, after func(frame uint64) error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("host: invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if !loop.RunPending() {
				if cfg.Logger != nil {
					cfg.Logger.Printf("host: no frame scheduled, stopping after %d frames", frame)
				}
				return nil
			}
			if after != nil {
				if err := after(frame); err != nil {
					return err
				}
			}
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
}
