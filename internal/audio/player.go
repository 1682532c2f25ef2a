// Package audio plays the game's sound cues and background loop. Cues are
// synthesized with beep, mixed in a goroutine and piped as raw PCM into a
// system player (pacat, pw-cat, aplay or sox). Without a player the game
// runs silently.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-down/internal/game"
)

// MusicPlay (re)starts the background loop. The game itself only emits
// halt, pause and resume.
const MusicPlay = "play"

// bufferDuration is the mixing period; each tick writes this much audio.
const bufferDuration = 20 * time.Millisecond

// Sink receives the game's drained queues.
type Sink interface {
	PlaySound(id string)
	Music(cmd string)
	Busy() bool
}

// dedicated cues own a voice: a new request replaces the one playing.
var dedicated = map[string]bool{
	game.SoundDamage: true,
	game.SoundInvuln: true,
	game.SoundBreak:  true,
}

// Player mixes cues and streams them to a writer.
type Player struct {
	logger *log.Logger
	bank   *bank
	now    func() time.Time

	mu        sync.Mutex
	mixer     *beep.Mixer
	voices    map[string]*beep.Ctrl
	music     *beep.Ctrl
	busyUntil time.Time
	// silent is set once the output is lost; cues are dropped from then on.
	silent bool

	out      io.Writer
	cmd      *exec.Cmd
	stopChan chan struct{}
	done     chan struct{}
	stopped  atomic.Bool
}

// NewPlayer synthesizes the cue bank. Call Start or StartWriter to play.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		logger: logger,
		bank:   newBank(),
		now:    time.Now,
		mixer:  &beep.Mixer{},
		voices: make(map[string]*beep.Ctrl),
	}
}

// Start launches the detected system player and begins streaming.
// It returns ErrNoAudioBackend when nothing is installed.
func (p *Player) Start() error {
	backend, err := DetectBackend()
	if err != nil {
		return err
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("audio: cannot open %s stdin: %w", backend.Name, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("audio: cannot start %s: %w", backend.Name, err)
	}

	p.cmd = cmd
	p.logger.Info("audio backend started", "backend", backend.Name, "path", backend.Path)
	p.StartWriter(stdin)
	return nil
}

// StartWriter streams raw s16le stereo PCM to w.
func (p *Player) StartWriter(w io.Writer) {
	p.out = w
	p.stopChan = make(chan struct{})
	p.done = make(chan struct{})
	go p.loop()
}

// Stop halts the mixing loop and the system player.
func (p *Player) Stop() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	if p.stopChan != nil {
		close(p.stopChan)
		<-p.done
	}
	if c, ok := p.out.(io.Closer); ok {
		c.Close()
	}
	if p.cmd != nil {
		if err := p.cmd.Wait(); err != nil {
			p.logger.Debug("audio backend exited", "err", err)
		}
	}
}

// PlaySound starts a cue by identifier.
func (p *Player) PlaySound(id string) {
	buf, ok := p.bank.cues[id]
	if !ok {
		p.logger.Warn("unknown sound", "id", id)
		return
	}
	s := buf.Streamer(0, buf.Len())

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.silent {
		return
	}

	if dedicated[id] {
		if old := p.voices[id]; old != nil {
			old.Streamer = nil
		}
		ctrl := &beep.Ctrl{Streamer: s}
		p.voices[id] = ctrl
		p.mixer.Add(ctrl)
	} else {
		p.mixer.Add(s)
	}

	if until := p.now().Add(p.bank.length(id)); until.After(p.busyUntil) {
		p.busyUntil = until
	}
}

// Music applies a background-loop command: play, halt, pause or resume.
func (p *Player) Music(cmd string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.silent {
		return
	}

	switch cmd {
	case MusicPlay:
		if p.music != nil {
			p.music.Streamer = nil
		}
		loop := beep.Loop(-1, p.bank.music.Streamer(0, p.bank.music.Len()))
		p.music = &beep.Ctrl{Streamer: loop}
		p.mixer.Add(p.music)
	case game.MusicHalt:
		if p.music != nil {
			p.music.Streamer = nil
			p.music = nil
		}
	case game.MusicPause:
		if p.music != nil {
			p.music.Paused = true
		}
	case game.MusicResume:
		if p.music != nil {
			p.music.Paused = false
		}
	default:
		p.logger.Warn("unknown music command", "cmd", cmd)
	}
}

// Busy reports whether any cue is still playing. The background loop
// does not count.
func (p *Player) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now().Before(p.busyUntil)
}

func (p *Player) loop() {
	defer close(p.done)

	ticker := time.NewTicker(bufferDuration)
	defer ticker.Stop()

	frames := sampleRate.N(bufferDuration)
	samples := make([][2]float64, frames)
	out := make([]byte, frames*bytesPerFrame)

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.mix(samples, out)
			if _, err := p.out.Write(out); err != nil {
				p.logger.Warn("audio output lost, continuing silently", "err", fmt.Errorf("%w: %v", ErrPipeClosed, err))
				p.silence()
				return
			}
		}
	}
}

// silence drops every voice and ignores later cues.
func (p *Player) silence() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.silent = true
	p.mixer.Clear()
	clear(p.voices)
	p.music = nil
	p.busyUntil = time.Time{}
}

// mix renders one buffer of the current voices into out.
func (p *Player) mix(samples [][2]float64, out []byte) {
	p.mu.Lock()
	p.mixer.Stream(samples)
	p.mu.Unlock()

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(toInt16(s[0])))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(toInt16(s[1])))
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Nop is a silent Sink.
type Nop struct{}

func (Nop) PlaySound(string) {}
func (Nop) Music(string)     {}
func (Nop) Busy() bool       { return false }

var (
	_ Sink = (*Player)(nil)
	_ Sink = Nop{}
)
