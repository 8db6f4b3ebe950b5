package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/fixcast/audio"
	"github.com/lixenwraith/fixcast/config"
	"github.com/lixenwraith/fixcast/engine"
	"github.com/lixenwraith/fixcast/input"
	"github.com/lixenwraith/fixcast/parameter"
	"github.com/lixenwraith/fixcast/raycast"
	"github.com/lixenwraith/fixcast/render"
	"github.com/lixenwraith/fixcast/render/ebitensurface"
	"github.com/lixenwraith/fixcast/telemetry"
)

var (
	configFlag = flag.String("config", "fixcast.toml", "Path to TOML config (optional)")
	debugFlag  = flag.Bool("debug", false, "Enable the log file and overlay")
	mazeFlag   = flag.Bool("maze", false, "Play in a generated maze")
	seedFlag   = flag.Int64("seed", 0, "Maze seed (0 = time-based)")
	scaleFlag  = flag.Int("scale", parameter.WindowScale, "Window scale factor")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fixcast-gfx: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Debug.Enabled = true
	}
	if *mazeFlag {
		cfg.Map.Generate = true
		cfg.Map.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
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

	// The panel size unless configured; a window has no natural size of its own
	width, height := parameter.ScreenWidth, parameter.ScreenHeight
	if cfg.Screen.Width > 0 {
		width = cfg.Screen.Width
	}
	if cfg.Screen.Height > 0 {
		height = cfg.Screen.Height
	}

	loopCfg, err := cfg.Loop(height)
	if err != nil {
		return err
	}

	buffer := render.NewPixelBuffer(width, height)

	var probes []engine.Probe
	var stats *telemetry.Stats
	if cfg.Debug.Enabled {
		stats = telemetry.NewStats()
		stats.SetCenter(width / 2)
		probes = append(probes, stats, telemetry.NewLogProbe(logger))
	}
	opts := []engine.Option{engine.WithProbe(engine.Probes(probes...))}

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio disabled")
		} else {
			defer sm.Cleanup()
			opts = append(opts, engine.WithCue(sm))
		}
	}

	// Ebiten reports real key state, so no hold window
	keys := input.NewKeyState(keymap, 0)
	loop := engine.NewLoop(loopCfg, cam, raycast.NewCaster(grid, width), buffer, keys, opts...)

	game := ebitensurface.NewGame(loop, buffer, keys, keymap)
	if stats != nil {
		game.Status = stats.Line
	}

	logger.Info().Int("width", width).Int("height", height).Msg("start")
	if err := ebitensurface.Run(game, "fixcast", *scaleFlag); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	logger.Info().Uint64("frames", loop.Frame()).Msg("quit")
	return nil
}
