package host

import "fmt"

// RunOffline produces n frames at a fixed time step without waiting on wall
// time. Frame i is rendered with the clock at i*stepMS.
func RunOffline(n int, stepMS float64, loop *Loop, clock *StepClock, after func(frame int) error) error {
	if stepMS <= 0 {
		return fmt.Errorf("host: invalid frame step: %v ms", stepMS)
	}
	for i := 0; i < n; i++ {
		clock.Set(float64(i) * stepMS)
		if !loop.RunPending() {
			return fmt.Errorf("host: no frame scheduled at frame %d", i)
		}
		if after != nil {
			if err := after(i); err != nil {
				return err
			}
		}
	}
	return nil
}
