package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the frame driver tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single step so a stalled host does not tunnel the
	// ship through bodies
	MaxFrameDelta = 100 * time.Millisecond
)

// Orbital
const (
	// GameDateScale is game seconds per wall second; 1 day per 10 s
	GameDateScale = 8640.0
)

// GameStartDate is the date a new flight begins on
var GameStartDate = time.Date(2310, time.January, 1, 0, 0, 0, 0, time.UTC)

// Logging
const (
	// LogDir holds debug logs relative to the working directory
	LogDir = "logs"

	// LogFileName is the active log file
	LogFileName = "star-hauler.log"

	// LogMaxSizeMB triggers rotation; LogMaxBackups rotated files are kept
	LogMaxSizeMB  = 10
	LogMaxBackups = 1
)

// Input
const (
	// KeyHoldWindow keeps a key held after its last press or repeat; terminals
	// report no key release
	KeyHoldWindow = 250 * time.Millisecond
)
