// Package audio plays the game's sound cues through the system speaker.
// Playback is fire-and-forget: failures are logged and swallowed, because
// sound is never essential to the game.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/speaker"
)

// speakerBuffer is the speaker latency.
const speakerBuffer = 50 * time.Millisecond

// Player plays sound cues.
type Player interface {
	Play(c Cue)
	Close()
}

// Silent is a Player that discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

// Close does nothing.
func (Silent) Close() {}

// Engine plays cues from a Bank through the speaker.
type Engine struct {
	mu          sync.Mutex
	bank        *Bank
	logger      *log.Logger
	initialized bool
	played      map[Cue]int
}

// NewEngine creates an engine over the given bank. It stays silent until
// Initialize succeeds.
func NewEngine(bank *Bank, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		bank:   bank,
		logger: logger,
		played: make(map[Cue]int),
	}
}

// Initialize sets up the speaker.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(speakerBuffer)); err != nil {
		return err
	}

	e.initialized = true
	return nil
}

// Play starts the cue and returns immediately.
// Before Initialize, or if the cue has no samples, it does nothing.
func (e *Engine) Play(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	s := e.bank.Streamer(c)
	if s == nil {
		e.logger.Debug("no samples for cue", "cue", c)
		return
	}

	e.played[c]++
	speaker.Play(s)
}

// Played returns how many times a cue was started.
func (e *Engine) Played(c Cue) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.played[c]
}

// Close stops playback and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	e.initialized = false
}

// Open loads the bank and starts the speaker. If the speaker cannot be
// initialized, the error is logged and a Silent player is returned.
func Open(dir string, logger *log.Logger) (Player, *Bank) {
	if logger == nil {
		logger = log.Default()
	}
	bank := LoadBank(dir, logger)
	engine := NewEngine(bank, logger)
	if err := engine.Initialize(); err != nil {
		logger.Warn("audio disabled, speaker unavailable", "error", err)
		return Silent{}, bank
	}
	return engine, bank
}
