package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pulsefield/audio"
	"github.com/lixenwraith/pulsefield/config"
	"github.com/lixenwraith/pulsefield/effect"
	"github.com/lixenwraith/pulsefield/input"
	"github.com/lixenwraith/pulsefield/render"
	"github.com/lixenwraith/pulsefield/status"
	"github.com/lixenwraith/pulsefield/system"
)

// FrameInterval is the simulation and render tick (~60 FPS)
const FrameInterval = 16 * time.Millisecond

var (
	effectFlag = flag.Int("effect", 0, "Initial effect 1-5 (0 keeps config)")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 keeps config)")
	maxFlag    = flag.Int("max", 0, "Maximum live particles (0 keeps config)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	statsFlag  = flag.Bool("stats", false, "Show raw counters in the status line")
	logFlag    = flag.String("log", "", "Log file path (default: discard)")
)

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v (logging disabled)\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, warns := config.Load()
	for _, w := range warns {
		log.Printf("config: %v", w)
	}
	applyFlags(cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPULSEFIELD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.Background.Tcell()))

	canvas := render.NewCanvas(screen)

	// Non-fatal, the simulation runs without sound
	sound := audio.NewSoundManager(audio.LoadConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	metrics := status.NewRegistry()
	ps := system.New(cfg,
		system.WithSound(sound),
		system.WithRenderer(canvas),
		system.WithMetrics(metrics),
	)

	resize := func(cols, rows int) {
		canvas.Resize(cols, rows)
		w, h := canvas.Bounds()
		if err := ps.SetBounds(w, h); err != nil {
			log.Printf("resize %dx%d: %v", cols, rows, err)
		}
		sound.SetCanvasWidth(w)
		screen.Sync()
	}
	resize(screen.Size())
	ps.Populate(cfg.Population.Initial)

	ctrl := input.NewController(ps, canvas, sound, cfg.Population.Initial)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch in := ctrl.Handle(ev); in.Type {
			case input.IntentQuit:
				return
			case input.IntentResize:
				resize(in.Col, in.Row)
			}

		case <-ticker.C:
			if !ctrl.Paused() {
				ps.Update()
			}
			canvas.Begin()
			ps.Render()
			canvas.DrawPath(ctrl.Path())
			canvas.SetStatus(statusLine(ps.Stats(), sound.Muted(), ctrl.Paused(), metrics))
			canvas.End()
		}
	}
}

// applyFlags overlays non-zero flags onto cfg and re-sanitizes
func applyFlags(cfg *config.Config) {
	if *effectFlag != 0 {
		cfg.Effect = effect.ID(*effectFlag)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *maxFlag != 0 {
		cfg.Population.MaxParticles = *maxFlag
	}
	if n := cfg.Sanitize(); n > 0 {
		log.Printf("flags: %d invalid values replaced with defaults", n)
	}
}

func statusLine(st system.Stats, muted, paused bool, metrics *status.Registry) string {
	line := fmt.Sprintf(" [1-5] %s | %d/%d particles | pool %d | frame %d",
		st.Effect, st.Particles, st.MaxParticles, st.Pooled, st.Frame)
	if muted {
		line += " | muted"
	}
	if paused {
		line += " | paused"
	}
	if *statsFlag {
		line += fmt.Sprintf(" | churn %d | %s", metrics.SumInts("particles."), metrics.Format())
	}
	return line
}
