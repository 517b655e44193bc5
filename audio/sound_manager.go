package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// Output is the playback device the mixer is attached to
// Lock/Unlock guard mixer mutation against the device's streaming goroutine
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// speakerOutput plays through the system speaker
type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// SoundManager plays game sound effects and listens for game events
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	out         Output
	mixer       *beep.Mixer
	initialized bool

	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a sound manager on the system speaker
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return NewSoundManagerWithOutput(cfg, speakerOutput{})
}

// NewSoundManagerWithOutput creates a sound manager on a custom output
func NewSoundManagerWithOutput(cfg config.AudioConfig, out Output) *SoundManager {
	sm := &SoundManager{
		cfg:   cfg,
		out:   out,
		mixer: &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the audio device; calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := sm.out.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.out.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup silences everything; the device stays open since beep cannot reopen it
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()

	sm.initialized = false
}

// Play mixes in one sound effect
// Muted playback is silently dropped; an uninitialized manager reports ErrNotInitialized
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.dropped.Add(1)
		return ErrNotInitialized
	}
	if sm.muted.Load() {
		sm.dropped.Add(1)
		return nil
	}

	s := soundEffect(st, sampleRate)
	if s == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}

	vol := sm.cfg.MasterVolume * sm.effectVolume(st)
	sm.out.Lock()
	sm.mixer.Add(newVolume(s, vol))
	sm.out.Unlock()

	sm.played.Add(1)
	return nil
}

// effectVolume returns the per-effect gain, 1.0 when unset
func (sm *SoundManager) effectVolume(st SoundType) float64 {
	if v, ok := sm.cfg.Effects[st.String()]; ok {
		return v
	}
	return 1.0
}

// ToggleMute toggles mute state, returns true if now audible
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Stats returns played and dropped counts
func (sm *SoundManager) Stats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}

// soundFor maps a game event to its sound effect
func soundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventJump:
		return SoundJump, true
	case event.EventLand:
		return SoundLand, true
	case event.EventGameOver:
		return SoundCrash, true
	case event.EventScoreMilestone:
		return SoundMilestone, true
	default:
		return 0, false
	}
}

// HandleEvent plays the sound mapped to ev; errors are swallowed so a missing device never affects play
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	st, ok := soundFor(ev.Type)
	if !ok {
		return
	}
	_ = sm.Play(st)
}

// EventTypes returns the events the sound manager reacts to
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventJump,
		event.EventLand,
		event.EventGameOver,
		event.EventScoreMilestone,
	}
}
