package engine

import (
	"context"
	"fmt"
	"time"
)

// Run drives fn at a fixed tick rate until the context is cancelled or fn
// returns an error. delta passed to fn is the fixed step in seconds.
func Run(ctx context.Context, hz int, fn func(delta float64) error) error {
	if hz <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", hz)
	}
	step := time.Second / time.Duration(hz)
	delta := step.Seconds()

	ticker := time.NewTicker(step)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := fn(delta); err != nil {
				return err
			}
		}
	}
}
