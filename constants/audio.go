package constants

import "time"

// Flight cue timing
// The cue is a filtered noise sweep that roughly spans the first third of a flight
const (
	FlightCueDuration = 350 * time.Millisecond
	FlightCueAttack   = 120 * time.Millisecond
	FlightCueRelease  = 200 * time.Millisecond
)

// Arrival chime timing
const (
	ArrivalChimeDuration = 250 * time.Millisecond
	ArrivalChimeAttack   = 5 * time.Millisecond
	ArrivalChimeRelease  = 200 * time.Millisecond
)

// Speaker setup
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond
)
