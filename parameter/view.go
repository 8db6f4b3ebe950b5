package parameter

import "time"

// Screen defaults match the original 160x128 panel
const (
	ScreenWidth  = 160
	ScreenHeight = 128

	// MaxScreenDimension keeps (2c - (width-1)) representable in Q15.16
	MaxScreenDimension = 8192
)

// Camera
const (
	// FOV scales the camera plane; 0.66 gives roughly a 66 degree view
	FOV = 0.66

	// Starting pose of the default map
	StartX       = 2.0
	StartY       = 1900.0 / 256.0
	StartHeading = 0
)

// Movement
const (
	// MoveStep is the distance covered per movement tick in cells
	MoveStep = 0.05

	// RotateDegrees is the turn per movement tick
	RotateDegrees = 2

	// MoveInterval debounces movement; at most one step per interval
	MoveInterval = 50 * time.Millisecond

	// KeyHoldWindow keeps a key pressed after its last terminal event
	// Terminals report repeats, never releases
	KeyHoldWindow = 120 * time.Millisecond
)

// Generated maze defaults
const (
	MazeWidth    = 21
	MazeHeight   = 21
	MazeBraiding = 0.3
)

// Shell pacing
const (
	// FrameInterval paces full-frame redraws in the terminal shell
	FrameInterval = 16 * time.Millisecond

	// WindowScale enlarges the graphical window over the render size
	WindowScale = 4
)
