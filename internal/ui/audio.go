package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sound names a move event that has a sound.
type Sound int

const (
	SoundMove Sound = iota
	SoundCapture
	SoundIllegal
	SoundGameEnd
)

const sampleRate = 44100

// AudioManager plays short procedurally generated sounds.
type AudioManager struct {
	context *audio.Context
	sounds  map[Sound][]byte
	enabled bool
	volume  float64
}

// NewAudioManager synthesises every sound up front.
func NewAudioManager(enabled bool) *AudioManager {
	click := func(t float64) float64 { return math.Exp(-t * 30) }
	linear := func(d float64) func(float64) float64 {
		return func(t float64) float64 { return 1 - t/d }
	}
	swell := func(d float64) func(float64) float64 {
		return func(t float64) float64 {
			p := t / d
			switch {
			case p < 0.1:
				return p / 0.1
			case p > 0.7:
				return (1 - p) / 0.3
			}
			return 1
		}
	}

	return &AudioManager{
		context: audio.NewContext(sampleRate),
		enabled: enabled,
		volume:  0.5,
		sounds: map[Sound][]byte{
			SoundMove:    synth(0.08, 0.3, click, 440),
			SoundCapture: synth(0.12, 0.5, click, 330, 660),
			SoundIllegal: synth(0.1, 0.2, linear(0.1), 150, 300),
			SoundGameEnd: synth(0.4, 0.5, swell(0.4), 261.63, 329.63, 392.00),
		},
	}
}

// synth mixes sine waves at freqs under an envelope into 16-bit stereo PCM.
func synth(duration, amplitude float64, envelope func(t float64) float64, freqs ...float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		sum := 0.0
		for _, f := range freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		v := int16(sum / float64(len(freqs)) * envelope(t) * amplitude * math.MaxInt16)
		data[i*4], data[i*4+1] = byte(v), byte(v>>8)
		data[i*4+2], data[i*4+3] = byte(v), byte(v>>8)
	}
	return data
}

// Play starts s. Sounds may overlap.
func (am *AudioManager) Play(s Sound) {
	data, ok := am.sounds[s]
	if !am.enabled || !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
