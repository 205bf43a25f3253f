// Package pacer drives wall-clock-paced execution of a machine: it calls
// StepN in bursts on a time.Ticker, so the machine runs at a steady
// instruction rate instead of as fast as the host CPU allows.
package pacer

import (
	"context"
	"time"
)

// Steppable is the subset of Machine the pacer needs.
type Steppable interface {
	StepN(n int)
}

// Pacer executes batches of instructions on a fixed wall-clock interval
// until its context is canceled.
type Pacer struct {
	Machine             Steppable
	InstructionsPerTick int
	Interval            time.Duration
}

// New constructs a Pacer with a sensible default: 1000 instructions every
// millisecond tick, comfortably faster than the ROM firmware needs to feel
// interactive over a terminal.
func New(m Steppable) *Pacer {
	return &Pacer{
		Machine:             m,
		InstructionsPerTick: 1000,
		Interval:            time.Millisecond,
	}
}

// Run blocks, stepping the machine until ctx is canceled.
func (p *Pacer) Run(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Machine.StepN(p.InstructionsPerTick)
		}
	}
}
