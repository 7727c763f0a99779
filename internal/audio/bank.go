package audio

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SampleRate is the output rate of the sound engine.
const SampleRate = beep.SampleRate(44100)

// resampleQuality is passed to beep.Resample for files at other rates.
const resampleQuality = 4

// Cue identifies one of the game's sounds.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueLose
	CueVictory
)

// Cues lists every cue in load order.
var Cues = []Cue{CueShoot, CueHit, CueLose, CueVictory}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueLose:
		return "lose"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// File returns the asset file name of the cue.
func (c Cue) File() string {
	switch c {
	case CueShoot:
		return assets.ShootSound
	case CueHit:
		return assets.HitSound
	case CueLose:
		return assets.LoseSound
	case CueVictory:
		return assets.VictorySound
	default:
		return ""
	}
}

// CueFor maps a game event to its sound cue.
func CueFor(e core.Event) (Cue, bool) {
	switch e {
	case core.EventShoot:
		return CueShoot, true
	case core.EventHit:
		return CueHit, true
	case core.EventLose:
		return CueLose, true
	case core.EventVictory:
		return CueVictory, true
	default:
		return 0, false
	}
}

// Bank holds one decoded buffer per cue.
type Bank struct {
	buffers map[Cue]*beep.Buffer
	report  []assets.Status
}

// LoadBank decodes the cue files from dir. Cues whose file is missing or
// cannot be decoded get a synthesized tone instead; loading never fails.
func LoadBank(dir string, logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.Default()
	}
	b := &Bank{buffers: make(map[Cue]*beep.Buffer, len(Cues))}
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

	for _, c := range Cues {
		path := assets.Path(dir, c.File())
		buf, err := decodeFile(path, format)
		if err != nil {
			logger.Warn("sound unavailable, using synthesized tone", "cue", c, "file", path, "error", err)
			buf = beep.NewBuffer(format)
			buf.Append(fallbackTone(c, SampleRate))
			b.report = append(b.report, assets.Status{Name: c.File(), Path: path, Err: err})
		} else {
			logger.Debug("sound loaded", "cue", c, "file", path, "samples", buf.Len())
			b.report = append(b.report, assets.Status{Name: c.File(), Path: path, Loaded: true})
		}
		b.buffers[c] = buf
	}
	return b
}

// decodeFile reads a WAV file fully into a buffer at the engine's format.
func decodeFile(path string, format beep.Format) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if fileFormat.SampleRate != format.SampleRate {
		src = beep.Resample(resampleQuality, fileFormat.SampleRate, format.SampleRate, streamer)
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s contains no samples", path)
	}
	return buf, nil
}

// Streamer returns a fresh streamer over the cue's samples, or nil.
func (b *Bank) Streamer(c Cue) beep.Streamer {
	if b == nil {
		return nil
	}
	buf, ok := b.buffers[c]
	if !ok || buf.Len() == 0 {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// Len returns the number of samples stored for a cue.
func (b *Bank) Len(c Cue) int {
	if b == nil {
		return 0
	}
	if buf, ok := b.buffers[c]; ok {
		return buf.Len()
	}
	return 0
}

// Report returns the load status of every cue file.
func (b *Bank) Report() []assets.Status {
	return b.report
}
