package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/constants"
)

// SoundManager plays one-shot cues through a shared mixer
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Fails on hosts without an audio device; callers continue without sound
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferSize)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play mixes the cue in; returns false when nothing was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
	return true
}

// Played returns the number of cues queued since start
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// FlightStarted plays the departure whoosh
func (sm *SoundManager) FlightStarted(camera.Flight) {
	sm.Play(SoundFlight)
}

// FlightFinished plays the arrival chime
func (sm *SoundManager) FlightFinished(camera.Flight) {
	sm.Play(SoundArrival)
}

// Name implements service.Service
func (sm *SoundManager) Name() string {
	return "audio"
}

// Start implements service.Service
func (sm *SoundManager) Start() error {
	return sm.Initialize()
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}
