package parameter

import "time"

// Logging
const (
	LogFileName = "fixcast.log"
	LogDir      = "logs"

	// MaxLogSize rotates the log file on startup once exceeded
	MaxLogSize = 10 * 1024 * 1024
)

// StatusRefreshInterval throttles the terminal status line
const StatusRefreshInterval = 250 * time.Millisecond
