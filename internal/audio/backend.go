package audio

import (
	"errors"
	"os/exec"
)

// Sentinel errors.
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
)

// Backend is a command-line player that reads raw s16le stereo PCM on stdin.
type Backend struct {
	Name string
	Path string
	Args []string
}

var backendCandidates = []Backend{
	{Name: "pacat", Args: []string{"--raw", "--format=s16le", "--rate=44100", "--channels=2", "--latency-msec=50", "--playback"}},
	{Name: "pw-cat", Args: []string{"--playback", "--format=s16", "--rate=44100", "--channels=2", "--latency=50ms", "-"}},
	{Name: "aplay", Args: []string{"-t", "raw", "-f", "S16_LE", "-r", "44100", "-c", "2", "-q"}},
	{Name: "play", Args: []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", "44100", "-", "-d", "-q"}},
}

// DetectBackend returns the first installed player.
// Priority: pacat > pw-cat > aplay > play (sox).
func DetectBackend() (Backend, error) {
	return detectBackend(exec.LookPath)
}

func detectBackend(lookPath func(string) (string, error)) (Backend, error) {
	for _, b := range backendCandidates {
		if path, err := lookPath(b.Name); err == nil {
			b.Path = path
			return b, nil
		}
	}
	return Backend{}, ErrNoAudioBackend
}
