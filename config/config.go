// Package config loads runtime settings from an optional TOML file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lixenwraith/fixcast/camera"
	"github.com/lixenwraith/fixcast/engine"
	"github.com/lixenwraith/fixcast/input"
	"github.com/lixenwraith/fixcast/parameter"
	"github.com/lixenwraith/fixcast/render"
	"github.com/lixenwraith/fixcast/vmath"
	"github.com/lixenwraith/fixcast/world"
)

// EnvPrefix namespaces environment overrides, e.g. FIXCAST_MOVEMENT_STEP
const EnvPrefix = "FIXCAST"

// ScreenConfig sizes the render target; zero means use the surface size
type ScreenConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// CameraConfig is the starting pose on a fixed map
type CameraConfig struct {
	X       float64 `mapstructure:"x"`
	Y       float64 `mapstructure:"y"`
	Heading int     `mapstructure:"heading"`
	FOV     float64 `mapstructure:"fov"`
}

// MovementConfig tunes the debounced movement step
type MovementConfig struct {
	Step          float64       `mapstructure:"step"`
	RotateDegrees int           `mapstructure:"rotate_degrees"`
	Interval      time.Duration `mapstructure:"interval"`
}

// RenderConfig holds "#rrggbb" colors
type RenderConfig struct {
	Ceiling string `mapstructure:"ceiling"`
	Floor   string `mapstructure:"floor"`
	WallX   string `mapstructure:"wall_x"`
	WallY   string `mapstructure:"wall_y"`
}

// MapConfig selects the world: explicit rows, a generated maze, or the stock map
type MapConfig struct {
	Rows     []string `mapstructure:"rows"`
	Generate bool     `mapstructure:"generate"`
	Width    int      `mapstructure:"width"`
	Height   int      `mapstructure:"height"`
	Braiding float64  `mapstructure:"braiding"`
	Seed     int64    `mapstructure:"seed"`
}

// DebugConfig controls the log file and metric probes
type DebugConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	LogDir  string `mapstructure:"log_dir"`
	Metrics bool   `mapstructure:"metrics"`
}

// AudioConfig toggles the bump cue
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the full runtime configuration
type Config struct {
	Screen   ScreenConfig        `mapstructure:"screen"`
	Camera   CameraConfig        `mapstructure:"camera"`
	Movement MovementConfig      `mapstructure:"movement"`
	Render   RenderConfig        `mapstructure:"render"`
	Map      MapConfig           `mapstructure:"map"`
	Keys     map[string][]string `mapstructure:"keys"`
	Debug    DebugConfig         `mapstructure:"debug"`
	Audio    AudioConfig         `mapstructure:"audio"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 0)
	v.SetDefault("screen.height", 0)

	v.SetDefault("camera.x", parameter.StartX)
	v.SetDefault("camera.y", parameter.StartY)
	v.SetDefault("camera.heading", parameter.StartHeading)
	v.SetDefault("camera.fov", parameter.FOV)

	v.SetDefault("movement.step", parameter.MoveStep)
	v.SetDefault("movement.rotate_degrees", parameter.RotateDegrees)
	v.SetDefault("movement.interval", parameter.MoveInterval)

	v.SetDefault("render.ceiling", render.DefaultPalette.Ceiling.Hex())
	v.SetDefault("render.floor", render.DefaultPalette.Floor.Hex())
	v.SetDefault("render.wall_x", render.DefaultPalette.WallX.Hex())
	v.SetDefault("render.wall_y", render.DefaultPalette.WallY.Hex())

	v.SetDefault("map.rows", []string{})
	v.SetDefault("map.generate", false)
	v.SetDefault("map.width", parameter.MazeWidth)
	v.SetDefault("map.height", parameter.MazeHeight)
	v.SetDefault("map.braiding", parameter.MazeBraiding)
	v.SetDefault("map.seed", 0)

	for action, keys := range input.DefaultBindings {
		v.SetDefault("keys."+action, keys)
	}

	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.level", "info")
	v.SetDefault("debug.log_dir", parameter.LogDir)
	v.SetDefault("debug.metrics", false)

	v.SetDefault("audio.enabled", true)
}

// Load reads path over the defaults and validates the result
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("toml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects values the fixed-point formats cannot hold
func (c *Config) Validate() error {
	if c.Screen.Width < 0 || c.Screen.Width > parameter.MaxScreenDimension {
		return fmt.Errorf("screen.width %d out of range [0, %d]", c.Screen.Width, parameter.MaxScreenDimension)
	}
	if c.Screen.Height < 0 || c.Screen.Height > parameter.MaxScreenDimension {
		return fmt.Errorf("screen.height %d out of range [0, %d]", c.Screen.Height, parameter.MaxScreenDimension)
	}

	if !finite(c.Camera.X) || !finite(c.Camera.Y) ||
		math.Abs(c.Camera.X) > world.MaxDimension || math.Abs(c.Camera.Y) > world.MaxDimension {
		return fmt.Errorf("camera position (%v, %v) outside map range", c.Camera.X, c.Camera.Y)
	}
	if !finite(c.Camera.FOV) || c.Camera.FOV <= 0 || c.Camera.FOV > 4 {
		return fmt.Errorf("camera.fov %v out of range (0, 4]", c.Camera.FOV)
	}

	// A step of a full cell or more could skip a wall
	if !finite(c.Movement.Step) || c.Movement.Step <= 0 || c.Movement.Step >= 1 {
		return fmt.Errorf("movement.step %v out of range (0, 1)", c.Movement.Step)
	}
	if c.Movement.RotateDegrees <= 0 || c.Movement.RotateDegrees > 180 {
		return fmt.Errorf("movement.rotate_degrees %d out of range [1, 180]", c.Movement.RotateDegrees)
	}
	if c.Movement.Interval < 0 {
		return fmt.Errorf("movement.interval %v is negative", c.Movement.Interval)
	}

	if _, err := c.Palette(); err != nil {
		return err
	}

	if c.Map.Generate {
		if c.Map.Width < 3 || c.Map.Width > world.MaxDimension || c.Map.Height < 3 || c.Map.Height > world.MaxDimension {
			return fmt.Errorf("map size %dx%d out of range [3, %d]", c.Map.Width, c.Map.Height, world.MaxDimension)
		}
		if c.Map.Braiding < 0 || c.Map.Braiding > 1 {
			return fmt.Errorf("map.braiding %v out of range [0, 1]", c.Map.Braiding)
		}
	}

	if _, err := c.Keymap(); err != nil {
		return err
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Debug.Level)); err != nil {
		return fmt.Errorf("debug.level %q: %w", c.Debug.Level, err)
	}

	return nil
}

// Palette parses the render colors
func (c *Config) Palette() (render.Palette, error) {
	var p render.Palette
	fields := []struct {
		key string
		val string
		dst *render.RGB
	}{
		{"render.ceiling", c.Render.Ceiling, &p.Ceiling},
		{"render.floor", c.Render.Floor, &p.Floor},
		{"render.wall_x", c.Render.WallX, &p.WallX},
		{"render.wall_y", c.Render.WallY, &p.WallY},
	}
	for _, f := range fields {
		rgb, err := render.ParseRGB(f.val)
		if err != nil {
			return render.Palette{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = rgb
	}
	return p, nil
}

// Keymap merges configured bindings over the defaults
func (c *Config) Keymap() (*input.Keymap, error) {
	km, err := input.NewKeymap(input.Merge(input.DefaultBindings, c.Keys))
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return km, nil
}

// Scene builds the world and places the camera
// A generated maze spawns at its start cell center; otherwise camera.x/y is used
func (c *Config) Scene() (*world.Grid, *camera.Camera, error) {
	var (
		g   *world.Grid
		pos vmath.Vec2
	)

	switch {
	case c.Map.Generate:
		m, err := world.GenerateMaze(world.MazeConfig{
			Width:    c.Map.Width,
			Height:   c.Map.Height,
			Braiding: c.Map.Braiding,
			Seed:     c.Map.Seed,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("generate map: %w", err)
		}
		g = m.Grid
		pos = vmath.V2(
			vmath.Q16FromInt(m.Start.X).Add(vmath.Q16Half),
			vmath.Q16FromInt(m.Start.Y).Add(vmath.Q16Half),
		)

	case len(c.Map.Rows) > 0:
		parsed, err := world.Parse(c.Map.Rows)
		if err != nil {
			return nil, nil, fmt.Errorf("map.rows: %w", err)
		}
		g = parsed
		pos = vmath.V2(vmath.Q16FromFloat(c.Camera.X), vmath.Q16FromFloat(c.Camera.Y))

	default:
		g = world.Default()
		pos = vmath.V2(vmath.Q16FromFloat(c.Camera.X), vmath.Q16FromFloat(c.Camera.Y))
	}

	cx, cy := pos.Cell()
	if g.Blocked(cx, cy) {
		return nil, nil, fmt.Errorf("camera start (%v, %v) is inside a wall or off the map", pos.X.Float(), pos.Y.Float())
	}

	cam := camera.New(pos, c.Camera.Heading, vmath.Q16FromFloat(c.Camera.FOV))
	return g, cam, nil
}

// Loop converts movement and render settings for engine.NewLoop
func (c *Config) Loop(height int) (engine.Config, error) {
	p, err := c.Palette()
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Height:        height,
		MoveStep:      vmath.Q16FromFloat(c.Movement.Step),
		RotateDegrees: c.Movement.RotateDegrees,
		MoveInterval:  c.Movement.Interval,
		Palette:       p,
	}, nil
}

// Size resolves the render size against a surface size
// Configured dimensions cap the surface; zero leaves it unchanged
func (c *Config) Size(surfaceW, surfaceH int) (int, int) {
	w, h := surfaceW, surfaceH
	if c.Screen.Width > 0 && (w == 0 || c.Screen.Width < w) {
		w = c.Screen.Width
	}
	if c.Screen.Height > 0 && (h == 0 || c.Screen.Height < h) {
		h = c.Screen.Height
	}
	return w, h
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
