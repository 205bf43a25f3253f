// Command apple2go runs the emulator: load a 12288-byte ROM image,
// open a terminal screen, and run the CPU at a paced instruction rate
// while forwarding host keystrokes to the keyboard latch and drawing
// the text page each frame.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"apple2go/cpu"
	"apple2go/input"
	"apple2go/machine"
	"apple2go/pacer"
	"apple2go/romload"
	"apple2go/video"

	"github.com/gdamore/tcell"
)

func main() {
	romPath := flag.String("rom", "", "path to the 12288-byte ROM image")
	trace := flag.Bool("trace", false, "log every instruction fetched")
	ipt := flag.Int("ips", 1000, "instructions executed per pacer tick")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("apple2go: -rom is required")
	}

	mem, err := romload.Load(*romPath)
	if err != nil {
		log.Fatalf("apple2go: %v", err)
	}
	c := cpu.New(mem)
	if *trace {
		c.Trace = func(pc uint16, opcode byte, mnemonic string) {
			log.Printf("%#04x: %02x %s", pc, opcode, mnemonic)
		}
	}
	m := &machine.Machine{CPU: c, Mem: mem}
	log.Printf("apple2go: loaded %s, reset vector %#04x", *romPath, m.CPU.PC)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("apple2go: opening screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("apple2go: initializing screen: %v", err)
	}
	defer screen.Fini()

	presenter := video.New(screen, m)
	adapter := input.New(screen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := pacer.New(m)
	p.InstructionsPerTick = *ipt

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	go func() {
		p.Run(runCtx)
	}()

	go func() {
		frames := pacer.New(frameRedrawer{presenter})
		frames.InstructionsPerTick = 1
		frames.Interval = 16 * time.Millisecond
		frames.Run(runCtx)
	}()

	for {
		latch, ok, ctrl := adapter.Poll()
		if runCtx.Err() != nil {
			return
		}
		switch {
		case ok:
			m.SetKey(latch)
		case ctrl == input.ControlReset:
			log.Printf("apple2go: reset")
			m.Reset()
		case ctrl == input.ControlQuit:
			log.Printf("apple2go: quit")
			cancelRun()
			return
		}
	}
}

// frameRedrawer adapts a Presenter to pacer.Steppable so the same
// ticking mechanism that paces CPU execution also paces screen
// redraws, at whatever rate the caller configures.
type frameRedrawer struct {
	presenter *video.Presenter
}

func (f frameRedrawer) StepN(int) { f.presenter.Refresh() }
