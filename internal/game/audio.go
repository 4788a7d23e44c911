package game

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Per-cue volumes, scaled by the global SFX volume.
const (
	shootVolume     = 0.3
	explosionVolume = 0.5
)

var sfxVolume = 1.0

// SoundBank holds the decoded sample buffers for the two sound cues,
// ready for playback (stereo float32 LE at SampleRate).
type SoundBank struct {
	Shoot     []byte
	Explosion []byte
}

// LoadSounds decodes the cue files from the resource directory. Any
// missing or corrupt file is a fatal startup error.
func LoadSounds(dir string) (*SoundBank, error) {
	shoot, err := loadCue(filepath.Join(dir, "sound", "shoot.wav"))
	if err != nil {
		return nil, err
	}
	expl, err := loadCue(filepath.Join(dir, "sound", "expl1.wav"))
	if err != nil {
		return nil, err
	}
	return &SoundBank{Shoot: shoot, Explosion: expl}, nil
}

// loadCue decodes one WAV file and drains it into a playback buffer,
// resampling to the output rate if the file differs.
func loadCue(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sound cue: %w", err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != beep.SampleRate(SampleRate) {
		s = beep.Resample(4, format.SampleRate, beep.SampleRate(SampleRate), stream)
	}

	var data []byte
	frames := make([][2]float64, 512)
	for {
		n, ok := s.Stream(frames)
		for i := 0; i < n; i++ {
			data = appendStereoF32(data, frames[i][0], frames[i][1])
		}
		if !ok {
			break
		}
	}
	return data, nil
}

// appendStereoF32 appends one stereo frame as float32 LE.
func appendStereoF32(buf []byte, left, right float64) []byte {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	return append(buf,
		byte(lv), byte(lv>>8), byte(lv>>16), byte(lv>>24),
		byte(rv), byte(rv>>8), byte(rv>>16), byte(rv>>24))
}

// AudioSystem plays the two cues fire-and-forget. At most one instance
// of a cue plays at a time: retriggering closes the previous player.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
	bank  *SoundBank

	shootPlayer oto.Player
	explPlayer  oto.Player
}

var globalAudio *AudioSystem

// InitAudio opens the audio device. A device failure is not fatal: the
// caller logs it and the play functions become no-ops.
func InitAudio(bank *SoundBank) error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready, bank: bank}
	return nil
}

func PlayShoot() {
	if globalAudio == nil {
		return
	}
	globalAudio.shootPlayer = globalAudio.retrigger(globalAudio.shootPlayer, globalAudio.bank.Shoot, shootVolume)
}

func PlayExplosion() {
	if globalAudio == nil {
		return
	}
	globalAudio.explPlayer = globalAudio.retrigger(globalAudio.explPlayer, globalAudio.bank.Explosion, explosionVolume)
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

func (a *AudioSystem) retrigger(prev oto.Player, data []byte, vol float64) oto.Player {
	select {
	case <-a.ready:
	default:
		return prev
	}
	if prev != nil {
		prev.Close()
	}
	p := a.ctx.NewPlayer(&soundReader{data: data})
	p.SetVolume(vol * sfxVolume)
	p.Play()
	return p
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
