package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/recall/audio"
	"github.com/lixenwraith/recall/core"
	"github.com/lixenwraith/recall/event"
	"github.com/lixenwraith/recall/game"
	"github.com/lixenwraith/recall/input"
	"github.com/lixenwraith/recall/parameter"
	"github.com/lixenwraith/recall/render"
)

var (
	seedFlag = flag.Int64("seed", 0, "Sequence RNG seed, 0 = random")
	muteFlag = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace prints
	core.SetResetHook(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	sounds.SetMuted(*muteFlag)
	defer sounds.Cleanup()

	clock := game.NewSystemTimeProvider()
	renderer := render.NewRenderer(screen, clock)
	controller := game.NewController(game.NewGenerator(*seedFlag), renderer, sounds, clock, game.DifficultyEasy)

	queue := event.NewEventQueue()
	dispatcher := input.NewDispatcher(queue, controller)

	// Input polling feeds the queue from its own goroutine; the frame
	// loop below is the queue's single consumer, so every game mutation
	// happens on one goroutine
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			if _, isResize := ev.(*tcell.EventResize); isResize {
				screen.Sync()
				continue
			}
			dispatcher.Dispatch(ev)
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for range frameTicker.C {
		for _, ev := range queue.Consume() {
			switch ev.Type {
			case event.EventQuitRequested:
				return
			case event.EventMuteToggled:
				sounds.ToggleMuted()
			default:
				controller.HandleEvent(ev)
			}
		}
		controller.Update(clock.Now())
		renderer.Draw()
	}
}
