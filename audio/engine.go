// Package audio plays short generated tones for bounce and goal cues. Sound
// is strictly reactive; a missing or failed speaker never affects the
// simulation.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-pong/constant"
)

// Engine plays tones through the system speaker. A silent engine accepts
// every call as a no-op.
type Engine struct {
	sampleRate beep.SampleRate
	ready      bool
}

// NewEngine initializes the speaker. On error the returned engine is still
// usable, just silent; the caller may log the error and move on.
func NewEngine() (*Engine, error) {
	e := &Engine{sampleRate: beep.SampleRate(constant.AudioSampleRate)}
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(constant.AudioBufferLen)); err != nil {
		return e, err
	}
	e.ready = true
	return e, nil
}

// Silent returns an engine that never touches the speaker, for -no-sound.
func Silent() *Engine {
	return &Engine{}
}

// WallBounce plays the wall bounce blip.
func (e *Engine) WallBounce() {
	e.playTone(constant.WallToneHz, constant.BlipDuration)
}

// PaddleBounce plays the paddle bounce blip.
func (e *Engine) PaddleBounce() {
	e.playTone(constant.PaddleToneHz, constant.BlipDuration)
}

// Goal plays the rising two-tone goal cue.
func (e *Engine) Goal() {
	if !e.ready {
		return
	}
	low, err := generators.SineTone(e.sampleRate, constant.GoalToneLowHz)
	if err != nil {
		return
	}
	high, err := generators.SineTone(e.sampleRate, constant.GoalToneHighHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Seq(
		beep.Take(e.sampleRate.N(constant.GoalNoteDuration), low),
		beep.Take(e.sampleRate.N(constant.GoalNoteDuration), high),
	))
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e.ready {
		speaker.Close()
	}
}

func (e *Engine) playTone(freq float64, d time.Duration) {
	if !e.ready {
		return
	}
	tone, err := generators.SineTone(e.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sampleRate.N(d), tone))
}
