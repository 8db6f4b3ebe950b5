package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/lixenwraith/fixcast/audio"
	"github.com/lixenwraith/fixcast/config"
	"github.com/lixenwraith/fixcast/engine"
	"github.com/lixenwraith/fixcast/input"
	"github.com/lixenwraith/fixcast/parameter"
	"github.com/lixenwraith/fixcast/raycast"
	"github.com/lixenwraith/fixcast/render/tcellsurface"
	"github.com/lixenwraith/fixcast/telemetry"
)

var (
	configFlag = flag.String("config", "fixcast.toml", "Path to TOML config (optional)")
	debugFlag  = flag.Bool("debug", false, "Enable the log file and status line")
	mazeFlag   = flag.Bool("maze", false, "Play in a generated maze")
	seedFlag   = flag.Int64("seed", 0, "Maze seed (0 = time-based)")
	muteFlag   = flag.Bool("mute", false, "Disable the collision sound")
)

// screen is package-level so the crash handler can restore the terminal
var screen tcell.Screen

func main() {
	// Panic Recovery: Ensure terminal is reset even if the renderer crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFIXCAST CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fixcast: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *debugFlag {
		cfg.Debug.Enabled = true
	}
	if *mazeFlag {
		cfg.Map.Generate = true
		cfg.Map.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := telemetry.NewLogger(telemetry.LogConfig{
		Enabled: cfg.Debug.Enabled,
		Level:   cfg.Debug.Level,
		Dir:     cfg.Debug.LogDir,
	})
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	grid, cam, err := cfg.Scene()
	if err != nil {
		return err
	}
	keymap, err := cfg.Keymap()
	if err != nil {
		return err
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	surface := tcellsurface.New(screen, cfg.Debug.Enabled)
	width, height := cfg.Size(surface.Size())

	loopCfg, err := cfg.Loop(height)
	if err != nil {
		return err
	}

	var (
		probes []engine.Probe
		stats  *telemetry.Stats
		meters *telemetry.MeterProvider
	)
	if cfg.Debug.Enabled {
		stats = telemetry.NewStats()
		stats.SetCenter(width / 2)
		probes = append(probes, stats, telemetry.NewLogProbe(logger))
	}
	if cfg.Debug.Metrics {
		meters = telemetry.NewMeterProvider()
		otel.SetMeterProvider(meters)
		defer shutdownMeters(meters, logger)

		mp, err := telemetry.NewMetricProbe(nil)
		if err != nil {
			return err
		}
		probes = append(probes, mp)
	}

	opts := []engine.Option{engine.WithProbe(engine.Probes(probes...))}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, runs without sound
			logger.Warn().Err(err).Msg("audio disabled")
		} else {
			defer sm.Cleanup()
			opts = append(opts, engine.WithCue(sm))
		}
	}

	keys := input.NewKeyState(keymap, parameter.KeyHoldWindow)
	caster := raycast.NewCaster(grid, width)
	loop := engine.NewLoop(loopCfg, cam, caster, surface, keys, opts...)

	logger.Info().
		Int("width", width).
		Int("height", height).
		Int("map_w", grid.Width()).
		Int("map_h", grid.Height()).
		Float64("x", cam.Pos.X.Float()).
		Float64("y", cam.Pos.Y.Float()).
		Msg("start")

	events := make(chan tcell.Event, 256)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		tcellsurface.Pump(screen, events)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	var lastStatus time.Time
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if tcellsurface.HandleEvent(ev, keys) {
				width, height = cfg.Size(surface.Size())
				loop.Resize(width, height)
				if stats != nil {
					stats.SetCenter(width / 2)
				}
				screen.Clear()
				surface.Sync()
				logger.Debug().Int("width", width).Int("height", height).Msg("resize")
			}

		case <-signals:
			keys.RequestQuit()

		case now := <-ticker.C:
			if w, h := loop.Size(); w == 0 || h == 0 {
				// Nothing to draw; still honor quit
				if keys.Poll(now).Has(input.Quit) {
					return nil
				}
				continue
			}
			if !loop.RenderFrame() {
				logger.Info().Uint64("frames", loop.Frame()).Msg("quit")
				return nil
			}
			if stats != nil && now.Sub(lastStatus) >= parameter.StatusRefreshInterval {
				surface.DrawStatus(stats.Line())
				lastStatus = now
			}
			surface.Show()
		}
	}
}

func shutdownMeters(mp *telemetry.MeterProvider, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := mp.LogSnapshot(ctx, logger); err != nil {
		logger.Warn().Err(err).Msg("metrics snapshot")
	}
	if err := mp.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Warn().Err(err).Msg("meter shutdown")
	}
}
