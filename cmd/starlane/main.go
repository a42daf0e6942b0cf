package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlane/actor"
	"github.com/lixenwraith/starlane/audio"
	"github.com/lixenwraith/starlane/engine"
	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/parameter"
	"github.com/lixenwraith/starlane/render"
	"github.com/lixenwraith/starlane/shapes"
	"github.com/lixenwraith/starlane/status"
)

var (
	shapesFlag = flag.String("shapes", "", "Shape catalog TOML file (default: built-in catalog)")
	tickFlag   = flag.Duration("tick", parameter.TickInterval, "Simulation tick interval")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/starlane.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	seedFlag   = flag.Int64("seed", 1, "Formation jitter seed")
)

// formationJitter is the maximum horizontal offset applied to each spawn slot
const formationJitter = 8

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starlane: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	catalog := shapes.Default()
	if *shapesFlag != "" {
		c, err := shapes.LoadFile(*shapesFlag)
		if err != nil {
			return err
		}
		catalog = c
	}

	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewPlayer(audioCfg)
	if err := sound.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTARLANE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	reg := status.NewRegistry()
	gameClock := engine.NewVirtualClock(time.Now())
	pacing := engine.NewPausableClock(nil)

	field := geom.Bounds{Top: 0, Bottom: parameter.FieldHeight, Left: 0, Right: parameter.FieldWidth}
	formation := buildFormation(catalog.Names(), field, rand.New(rand.NewSource(*seedFlag)))

	world := actor.NewWorld(actor.Config{
		Clock:     gameClock,
		Catalog:   catalog,
		Registry:  reg,
		Formation: formation,
	})
	if err := world.SpawnFormation(formation); err != nil {
		return err
	}

	// mu serializes the tick goroutine with input handling and rendering
	var mu sync.Mutex
	loop := engine.NewTickLoop(gameClock, pacing, *tickFlag, func(uint64) {
		mu.Lock()
		world.Tick()
		events := world.DrainEvents()
		mu.Unlock()

		for _, ev := range events {
			sound.Play(cueFor(ev))
		}
	}, reg)

	renderer := render.NewRenderer(screen, field)

	input := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			input <- ev
		}
	}()

	loop.Start()
	defer loop.Stop()

	frames := time.NewTicker(parameter.FrameInterval)
	defer frames.Stop()

	for {
		select {
		case ev := <-input:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				mu.Lock()
				quit := handleKey(ev, world, loop, renderer)
				mu.Unlock()
				if quit {
					log.Printf("quit at tick %d", loop.TickCount())
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frames.C:
			mu.Lock()
			renderer.Frame(world, reg)
			mu.Unlock()
		}
	}
}

// handleKey applies one key press; true means quit
func handleKey(ev *tcell.EventKey, world *actor.World, loop *engine.TickLoop, r *render.Renderer) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		world.Player.Move(-parameter.PlayerSpeed, 0)
	case tcell.KeyRight:
		world.Player.Move(parameter.PlayerSpeed, 0)
	case tcell.KeyUp:
		world.Player.Move(0, -parameter.PlayerSpeed)
	case tcell.KeyDown:
		world.Player.Move(0, parameter.PlayerSpeed)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			world.PlayerFire()
		case 'p':
			if loop.IsPaused() {
				loop.Resume()
			} else {
				loop.Pause()
			}
		case 'h':
			r.ShowHitboxes = !r.ShowHitboxes
		case 't':
			r.ShowPaths = !r.ShowPaths
		}
	}
	return false
}

// buildFormation spreads one enemy per shape evenly across the top of the field
func buildFormation(names []string, field geom.Bounds, rng *rand.Rand) []actor.Placement {
	out := make([]actor.Placement, 0, len(names))
	spacing := field.Width() / float64(len(names)+1)
	for i, name := range names {
		x := field.Left + spacing*float64(i+1) + float64(rng.Intn(2*formationJitter+1)-formationJitter)
		out = append(out, actor.Placement{Shape: name, Origin: geom.Pt(x, field.Top+parameter.FieldMargin/2)})
	}
	return out
}

// cueFor maps a world event to the sound it makes
func cueFor(ev actor.Event) audio.Cue {
	switch ev.Kind {
	case actor.EventFire:
		return audio.CueFire
	case actor.EventHit:
		return audio.CueForResult(ev.Result)
	case actor.EventDestroyed, actor.EventPlayerDown:
		return audio.CueDestroyed
	default:
		return audio.CueNone
	}
}
