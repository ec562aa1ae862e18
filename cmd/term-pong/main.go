package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/audio"
	"github.com/lixenwraith/term-pong/constant"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/input"
	"github.com/lixenwraith/term-pong/pacer"
	"github.com/lixenwraith/term-pong/render"
)

var (
	widthFlag      = flag.Int("width", constant.DefaultFieldWidth, "Field width in cells")
	heightFlag     = flag.Int("height", constant.DefaultFieldHeight, "Field height in cells")
	extendUpFlag   = flag.Int("extend-up", constant.DefaultExtendUp, "Paddle reach above its center")
	extendDownFlag = flag.Int("extend-down", constant.DefaultExtendDown, "Paddle reach below its center")
	fpsFlag        = flag.Int("fps", constant.DefaultFPS, "Simulation ticks per second")
	noSoundFlag    = flag.Bool("no-sound", false, "Disable sound effects")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal on every exit path, panics included. The
	// recovery runs before the plain Fini defer and exits, so Fini is
	// called exactly once either way.
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "term-pong crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	snd := audio.Silent()
	if !*noSoundFlag {
		var err error
		if snd, err = audio.NewEngine(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("audio unavailable: %v", err)
		}
	}
	defer snd.Close()

	game := engine.NewGameState(*widthFlag, *heightFlag, *extendUpFlag, *extendDownFlag, input.DefaultBindings(), nil)
	collector := input.NewCollector(screen)
	renderer := render.NewTerminalRenderer(screen)

	loop := pacer.New(*fpsFlag)
	defer loop.Stop()

	for {
		dt, _ := loop.Wait()

		held := collector.Snapshot()
		if collector.QuitRequested() {
			return
		}
		if collector.TakeResize() {
			screen.Sync()
		}

		playEvents(snd, game.Update(held, dt))

		if err := renderer.RenderFrame(game.Snapshot()); err != nil {
			// Simulation state stays valid; try again next tick
			log.Printf("render failed: %v", err)
		}
	}
}

// playEvents maps one tick's events to at most one sound cue, goal first.
func playEvents(snd *audio.Engine, ev engine.TickEvents) {
	switch {
	case ev.Scorer != 0:
		snd.Goal()
	case ev.PaddleBounce:
		snd.PaddleBounce()
	case ev.WallBounce:
		snd.WallBounce()
	}
}
