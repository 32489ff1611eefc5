// Package audio plays the game's synthesized sound effects through beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/towerdefense/game"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager mixes effects into a single speaker stream. It satisfies
// game.SoundPlayer. Play is a no-op until the device is open and after Close.
// A manager built muted opens the device on the first SetMuted(false) after
// Initialize.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	requested   bool
	initialized bool

	openDevice  func(*beep.Mixer) error
	closeDevice func()
}

func NewSoundManager(volume float64, muted bool) *SoundManager {
	return &SoundManager{
		mixer:       &beep.Mixer{},
		volume:      volume,
		muted:       muted,
		openDevice:  openSpeaker,
		closeDevice: closeSpeaker,
	}
}

func openSpeaker(mixer *beep.Mixer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(mixer)
	return nil
}

func closeSpeaker() {
	speaker.Clear()
	speaker.Close()
}

// Initialize opens the audio device unless the manager is muted. It is safe
// to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.requested = true
	if sm.muted {
		return nil
	}
	return sm.open()
}

func (sm *SoundManager) open() error {
	if sm.initialized {
		return nil
	}
	if err := sm.openDevice(sm.mixer); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Play(sound game.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := Effect(sound, sampleRate, sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or restores playback. Sounds already queued keep playing.
// Unmuting after Initialize opens the device if it was never opened.
func (sm *SoundManager) SetMuted(muted bool) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted || !sm.requested {
		return nil
	}
	return sm.open()
}

// Close stops everything and releases the device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.closeDevice()
	sm.mixer.Clear()
	sm.initialized = false
	sm.requested = false
}

var _ game.SoundPlayer = (*SoundManager)(nil)
