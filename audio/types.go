package audio

import (
	"github.com/lixenwraith/orrery/constants"
)

// SoundType represents the cues the simulation can play
type SoundType int

const (
	SoundFlight  SoundType = iota // Camera leaves for a body
	SoundArrival                  // Camera reaches the body
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFlight:
		return "flight"
	case SoundArrival:
		return "arrival"
	default:
		return "unknown"
	}
}

// AudioConfig holds speaker and volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundFlight:  0.6,
			SoundArrival: 0.8,
		},
	}
}
