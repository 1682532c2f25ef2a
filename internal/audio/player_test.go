package audio

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-down/internal/game"
)

func newTestPlayer(t *testing.T) (*Player, *time.Time) {
	t.Helper()
	p := NewPlayer(log.New(io.Discard))
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }
	return p, &now
}

func TestBankCoversEverySound(t *testing.T) {
	ids := []string{
		game.SoundDamage, game.SoundInvuln, game.SoundParachute, game.SoundWeight,
		game.SoundImpact, game.SoundBreak, game.SoundFoot, game.SoundGameOver,
	}
	b := newBank()
	for _, id := range ids {
		buf, ok := b.cues[id]
		if !ok {
			t.Errorf("missing cue %q", id)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("cue %q rendered no samples", id)
		}
	}
	if b.music.Len() == 0 {
		t.Error("background loop rendered no samples")
	}
	if b.length("nope.wav") != 0 {
		t.Error("unknown cue should have zero length")
	}
}

func TestBusyFollowsCueLength(t *testing.T) {
	p, now := newTestPlayer(t)

	if p.Busy() {
		t.Fatal("idle player should not be busy")
	}

	p.PlaySound(game.SoundGameOver)
	length := p.bank.length(game.SoundGameOver)
	if !p.Busy() {
		t.Fatal("expected busy right after a cue starts")
	}

	*now = now.Add(length - time.Millisecond)
	if !p.Busy() {
		t.Error("expected busy before the cue ends")
	}

	*now = now.Add(2 * time.Millisecond)
	if p.Busy() {
		t.Error("expected idle after the cue ends")
	}
}

func TestBusyIgnoresMusicAndUnknownSounds(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.Music(MusicPlay)
	p.PlaySound("missing.wav")
	if p.Busy() {
		t.Error("music and unknown sounds should not make the player busy")
	}
	if p.mixer.Len() != 1 {
		t.Errorf("mixer has %d streamers, expected only the music", p.mixer.Len())
	}
}

func TestDedicatedVoiceReplacesPrevious(t *testing.T) {
	p, _ := newTestPlayer(t)

	p.PlaySound(game.SoundDamage)
	first := p.voices[game.SoundDamage]
	p.PlaySound(game.SoundDamage)
	second := p.voices[game.SoundDamage]

	if first == second {
		t.Fatal("expected a fresh voice")
	}
	if first.Streamer != nil {
		t.Error("previous voice should be silenced")
	}
	if second.Streamer == nil {
		t.Error("new voice should be playing")
	}
}

func TestSharedCuesOverlap(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.PlaySound(game.SoundFoot)
	p.PlaySound(game.SoundFoot)
	if p.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, expected 2 overlapping cues", p.mixer.Len())
	}
	if len(p.voices) != 0 {
		t.Error("foot.wav should not take a dedicated voice")
	}
}

func TestMusicCommands(t *testing.T) {
	p, _ := newTestPlayer(t)
	samples := make([][2]float64, 512)
	out := make([]byte, len(samples)*bytesPerFrame)

	p.Music(MusicPlay)
	p.mix(samples, out)
	if bytes.Count(out, []byte{0}) == len(out) {
		t.Fatal("expected audible music after play")
	}

	p.Music(game.MusicPause)
	if !p.music.Paused {
		t.Fatal("expected music paused")
	}
	p.mix(samples, out)
	if bytes.Count(out, []byte{0}) != len(out) {
		t.Error("expected silence while paused")
	}

	p.Music(game.MusicResume)
	if p.music.Paused {
		t.Error("expected music resumed")
	}

	p.Music(game.MusicHalt)
	if p.music != nil {
		t.Error("expected music halted")
	}
	// Resume after halt is a no-op.
	p.Music(game.MusicResume)
	if p.music != nil {
		t.Error("resume should not restart halted music")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func TestStartWriterStreamsWholeFrames(t *testing.T) {
	p, _ := newTestPlayer(t)
	var out syncBuffer
	p.StartWriter(&out)
	p.Music(MusicPlay)

	deadline := time.Now().Add(2 * time.Second)
	for out.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	p.Stop()
	p.Stop()

	n := out.Len()
	if n == 0 {
		t.Fatal("expected PCM output")
	}
	if n%bytesPerFrame != 0 {
		t.Errorf("wrote %d bytes, expected whole stereo frames", n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriteFailureStopsLoop(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.StartWriter(failingWriter{})

	select {
	case <-p.done:
	case <-time.After(2 * time.Second):
		t.Fatal("mixing loop did not stop after a write error")
	}
	p.Stop()
}

func TestWriteFailureSilencesPlayer(t *testing.T) {
	p, _ := newTestPlayer(t)
	p.PlaySound(game.SoundFoot)
	p.StartWriter(failingWriter{})

	select {
	case <-p.done:
	case <-time.After(2 * time.Second):
		t.Fatal("mixing loop did not stop after a write error")
	}
	defer p.Stop()

	for i := 0; i < 1000; i++ {
		p.PlaySound(game.SoundDamage)
		p.PlaySound(game.SoundFoot)
	}
	p.Music(MusicPlay)

	p.mu.Lock()
	n := p.mixer.Len()
	p.mu.Unlock()
	if n != 0 {
		t.Errorf("mixer holds %d streamers after the output was lost, expected 0", n)
	}
	if p.Busy() {
		t.Error("Busy() = true after the output was lost, expected false")
	}
}

func TestDetectBackendPriority(t *testing.T) {
	installed := map[string]string{
		"aplay": "/usr/bin/aplay",
		"play":  "/usr/bin/play",
	}
	lookPath := func(name string) (string, error) {
		if p, ok := installed[name]; ok {
			return p, nil
		}
		return "", errors.New("not found")
	}

	b, err := detectBackend(lookPath)
	if err != nil {
		t.Fatalf("detectBackend: %v", err)
	}
	if b.Name != "aplay" || b.Path != "/usr/bin/aplay" {
		t.Errorf("got %s at %s, expected aplay", b.Name, b.Path)
	}

	installed["pacat"] = "/usr/bin/pacat"
	if b, _ := detectBackend(lookPath); b.Name != "pacat" {
		t.Errorf("got %s, expected pacat to win", b.Name)
	}
}

func TestDetectBackendNone(t *testing.T) {
	_, err := detectBackend(func(string) (string, error) { return "", errors.New("not found") })
	if !errors.Is(err, ErrNoAudioBackend) {
		t.Errorf("expected ErrNoAudioBackend, got %v", err)
	}
}

func TestNopIsNeverBusy(t *testing.T) {
	var s Sink = Nop{}
	s.PlaySound(game.SoundGameOver)
	s.Music(MusicPlay)
	if s.Busy() {
		t.Error("Nop should never be busy")
	}
}
