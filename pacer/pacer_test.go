package pacer

import (
	"context"
	"testing"
	"time"
)

type countingMachine struct {
	steps int
}

func (m *countingMachine) StepN(n int) { m.steps += n }

func TestRunStepsUntilCanceled(t *testing.T) {
	m := &countingMachine{}
	p := New(m)
	p.Interval = time.Millisecond
	p.InstructionsPerTick = 10

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	p.Run(ctx)

	if m.steps == 0 {
		t.Fatalf("pacer never stepped the machine")
	}
}

func TestRunStopsImmediatelyOnCanceledContext(t *testing.T) {
	m := &countingMachine{}
	p := New(m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p.Run(ctx)

	if m.steps != 0 {
		t.Fatalf("steps = %d, want 0 for an already-canceled context", m.steps)
	}
}
