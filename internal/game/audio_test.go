package game

import (
	"io"
	"math"
	"testing"
)

func TestAppendStereoF32(t *testing.T) {
	buf := appendStereoF32(nil, 1.0, -0.5)
	if len(buf) != 8 {
		t.Fatalf("frame length = %d, want 8 bytes", len(buf))
	}
	l := math.Float32frombits(uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24)
	r := math.Float32frombits(uint32(buf[4]) | uint32(buf[5])<<8 | uint32(buf[6])<<16 | uint32(buf[7])<<24)
	if l != 1.0 || r != -0.5 {
		t.Errorf("decoded frame = (%v, %v), want (1, -0.5)", l, r)
	}
}

func TestSoundReader(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r := &soundReader{data: data}

	p := make([]byte, 3)
	n, err := r.Read(p)
	if n != 3 || err != nil {
		t.Fatalf("first read = (%d, %v), want (3, nil)", n, err)
	}
	n, err = r.Read(p)
	if n != 2 || err != nil {
		t.Fatalf("second read = (%d, %v), want (2, nil)", n, err)
	}
	if _, err = r.Read(p); err != io.EOF {
		t.Errorf("read past end = %v, want io.EOF", err)
	}
}

func TestPlayFunctionsAreNilSafe(t *testing.T) {
	saved := globalAudio
	globalAudio = nil
	defer func() { globalAudio = saved }()

	// Must not panic when the audio device is unavailable.
	PlayShoot()
	PlayExplosion()
}

func TestSetSFXVolumeClamps(t *testing.T) {
	defer SetSFXVolume(1)
	SetSFXVolume(2)
	if sfxVolume != 1 {
		t.Errorf("volume = %v, want clamped to 1", sfxVolume)
	}
	SetSFXVolume(-1)
	if sfxVolume != 0 {
		t.Errorf("volume = %v, want clamped to 0", sfxVolume)
	}
}
