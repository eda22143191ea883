package constants

import "time"

// Frame pacing
const (
	// TargetFPS is the render and simulation rate of the frame scheduler
	TargetFPS = 60

	// FrameUpdateInterval is the period between frames at TargetFPS
	FrameUpdateInterval = time.Second / TargetFPS

	// MaxFrameDelta caps the delta fed to the orbit system after a stall
	// (debugger break, suspended terminal) so bodies do not teleport
	MaxFrameDelta = 250 * time.Millisecond
)

// Orbit model
const (
	// OrbitNormalization scales per-second deltas to the 60-tick baseline the
	// angular speeds in the body table are tuned for
	OrbitNormalization = 60.0

	// Speed slider range and step
	SpeedMin  = 0.0
	SpeedMax  = 0.1
	SpeedStep = 0.001
)

// Camera
const (
	CameraFOV         = 65.0 // Vertical field of view in degrees
	CameraNear        = 0.1
	CameraFar         = 1000.0
	CameraStartX      = 0.0
	CameraStartY      = 40.0
	CameraStartZ      = 140.0
	CameraMinDistance = 10.0
	CameraMaxDistance = 300.0
	CameraDamping     = 0.05 // Fraction of pending input applied per frame
	CameraRotateSpeed = 0.05 // Radians per cell of drag
	CameraZoomFactor  = 0.95 // Distance scale per wheel notch
)

// Flight
const (
	FlightDuration = 1000 * time.Millisecond
	FlightOffsetX  = 0.0
	FlightOffsetY  = 5.0
	FlightOffsetZ  = 15.0
)

// Meteors
// Initial spawn covers a wider box than respawn so the first shower is spread out
const (
	MeteorCount     = 6
	MeteorRadius    = 0.4
	MeteorThreshold = -50.0

	MeteorSpawnXMin, MeteorSpawnXMax = -150.0, 150.0
	MeteorSpawnZMin, MeteorSpawnZMax = -200.0, 200.0

	MeteorRespawnXMin, MeteorRespawnXMax = -100.0, 100.0
	MeteorRespawnZMin, MeteorRespawnZMax = -100.0, 100.0

	// Shared Y band for spawn and respawn
	MeteorYMin, MeteorYMax = 80.0, 120.0

	MeteorVelXMin, MeteorVelXMax = 0.0, 1.5
	MeteorVelY                   = -1.2
	MeteorVelZMin, MeteorVelZMax = 0.0, 1.5
)

// Sun
const (
	SunRadius = 5.0
	SunColor  = 0xffcc00
)
