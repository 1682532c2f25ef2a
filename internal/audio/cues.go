package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-down/internal/game"
)

const ms = time.Millisecond

// Note frequencies used by the cues and the background loop.
const (
	noteA2 = 110.00
	noteE3 = 164.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// cueRecipes synthesizes every sound identifier the game emits.
var cueRecipes = map[string]func() beep.Streamer{
	game.SoundDamage: func() beep.Streamer {
		return volume(tone(noteA2, 45*ms, waveSaw, 2*ms, 20*ms), 0.35)
	},
	game.SoundInvuln: func() beep.Streamer {
		return volume(beep.Seq(
			tone(noteC5, 70*ms, waveSquare, 2*ms, 10*ms),
			tone(noteE5, 70*ms, waveSquare, 2*ms, 10*ms),
			tone(noteG5, 70*ms, waveSquare, 2*ms, 10*ms),
			tone(noteC6, 160*ms, waveSquare, 2*ms, 80*ms),
		), 0.22)
	},
	game.SoundParachute: func() beep.Streamer {
		return volume(beep.Seq(
			tone(noteE5, 90*ms, waveSine, 5*ms, 20*ms),
			tone(noteA4*2, 120*ms, waveSine, 5*ms, 60*ms),
		), 0.45)
	},
	game.SoundWeight: func() beep.Streamer {
		return volume(beep.Seq(
			tone(noteE4, 100*ms, waveSquare, 2*ms, 20*ms),
			tone(noteA3, 160*ms, waveSquare, 2*ms, 90*ms),
		), 0.25)
	},
	game.SoundImpact: func() beep.Streamer {
		return volume(beep.Mix(
			tone(0, 120*ms, waveNoise, 1*ms, 100*ms),
			tone(90, 90*ms, waveSaw, 1*ms, 60*ms),
		), 0.4)
	},
	game.SoundBreak: func() beep.Streamer {
		return volume(beep.Mix(
			tone(0, 180*ms, waveNoise, 1*ms, 150*ms),
			tone(60, 140*ms, waveSaw, 1*ms, 100*ms),
		), 0.45)
	},
	game.SoundFoot: func() beep.Streamer {
		return volume(tone(0, 25*ms, waveNoise, 1*ms, 20*ms), 0.2)
	},
	game.SoundGameOver: func() beep.Streamer {
		return volume(beep.Seq(
			tone(noteG4, 300*ms, waveSaw, 5*ms, 60*ms),
			tone(noteE4, 300*ms, waveSaw, 5*ms, 60*ms),
			tone(noteC4, 300*ms, waveSaw, 5*ms, 60*ms),
			tone(noteG3, 900*ms, waveSaw, 5*ms, 600*ms),
		), 0.3)
	},
}

// backgroundRecipe is one bar of the looping shaft theme.
func backgroundRecipe() beep.Streamer {
	notes := []float64{noteA2, noteE3, noteA3, noteC4, noteE4, noteC4, noteA3, noteG3}
	bar := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		bar = append(bar, tone(f, 150*ms, waveSquare, 3*ms, 60*ms))
	}
	return volume(beep.Seq(bar...), 0.1)
}

// bank holds every cue pre-rendered.
type bank struct {
	cues  map[string]*beep.Buffer
	music *beep.Buffer
}

func newBank() *bank {
	b := &bank{cues: make(map[string]*beep.Buffer, len(cueRecipes))}
	for id, recipe := range cueRecipes {
		b.cues[id] = render(recipe())
	}
	b.music = render(backgroundRecipe())
	return b
}

// length returns the playing time of a cue, or 0 if it is unknown.
func (b *bank) length(id string) time.Duration {
	buf, ok := b.cues[id]
	if !ok {
		return 0
	}
	return sampleRate.D(buf.Len())
}
