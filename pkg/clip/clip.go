// Package clip describes the audio clips a sensing device records after each
// inference and how many bytes each one occupies on the storage card.
//
// A clip is plain PCM. Stored "raw" it costs exactly
//
//	SampleRate * Seconds * Channels * BitDepth / 8
//
// bytes; stored as WAV it also carries the RIFF header written by the encoder.
package clip

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Container is the on-card layout of a clip.
type Container string

const (
	Raw Container = "raw"
	WAV Container = "wav"
)

// ParseContainer accepts "raw", "pcm" or "wav" (case-insensitive).
func ParseContainer(s string) (Container, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw", "pcm":
		return Raw, nil
	case "wav":
		return WAV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadContainer, s)
	}
}

// UnmarshalText decodes through ParseContainer, so "WAV" and "pcm" are accepted
// from YAML, JSON and the environment.
func (c *Container) UnmarshalText(text []byte) error {
	v, err := ParseContainer(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Format is the recording format of one clip.
type Format struct {
	Seconds    float64 `yaml:"seconds" json:"seconds" validate:"gt=0"`
	SampleRate int     `yaml:"sample_rate" json:"sample_rate" validate:"gt=0"`
	BitDepth   int     `yaml:"bit_depth" json:"bit_depth" validate:"oneof=8 16 24 32"`
	Channels   int     `yaml:"channels" json:"channels" validate:"gt=0"`
}

// DefaultFormat is 4 s of 16 kHz, 16-bit mono.
func DefaultFormat() Format {
	return Format{Seconds: 4, SampleRate: 16000, BitDepth: 16, Channels: 1}
}

// Check reports ErrBadFormat for formats that cannot be encoded.
func (f Format) Check() error {
	switch {
	case f.Seconds <= 0:
		return fmt.Errorf("%w: seconds=%v", ErrBadFormat, f.Seconds)
	case f.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate=%d", ErrBadFormat, f.SampleRate)
	case f.Channels <= 0:
		return fmt.Errorf("%w: channels=%d", ErrBadFormat, f.Channels)
	case f.BitDepth%8 != 0 || f.BitDepth < 8 || f.BitDepth > 32:
		return fmt.Errorf("%w: bit_depth=%d", ErrBadFormat, f.BitDepth)
	}
	return nil
}

// PCMBytes is the size of the sample payload.
func (f Format) PCMBytes() float64 {
	return float64(f.SampleRate) * f.Seconds * float64(f.Channels) * float64(f.BitDepth) / 8
}

// FileBytes is the size of one clip stored in container c.
func (f Format) FileBytes(c Container) (float64, error) {
	switch c {
	case Raw, "":
		return f.PCMBytes(), nil
	case WAV:
		h, err := WAVHeaderBytes(f)
		if err != nil {
			return 0, err
		}
		return f.PCMBytes() + float64(h), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadContainer, c)
	}
}

var (
	headerMu    sync.Mutex
	headerCache = map[Format]int{}
)

// WAVHeaderBytes measures the container overhead the WAV encoder adds around
// the PCM payload by encoding a single silent frame.
func WAVHeaderBytes(f Format) (int, error) {
	if err := f.Check(); err != nil {
		return 0, err
	}
	key := Format{SampleRate: f.SampleRate, BitDepth: f.BitDepth, Channels: f.Channels}

	headerMu.Lock()
	defer headerMu.Unlock()
	if n, ok := headerCache[key]; ok {
		return n, nil
	}

	var buf memFile
	if err := encode(&buf, f, 1); err != nil {
		return 0, err
	}
	frame := f.Channels * f.BitDepth / 8
	n := buf.Len() - frame
	headerCache[key] = n
	return n, nil
}

// WriteSilence writes one full-length silent clip as WAV to w.
func WriteSilence(w io.WriteSeeker, f Format) error {
	if err := f.Check(); err != nil {
		return err
	}
	return encode(w, f, int(f.Seconds*float64(f.SampleRate)))
}

func encode(w io.WriteSeeker, f Format, frames int) error {
	enc := wav.NewEncoder(w, f.SampleRate, f.BitDepth, f.Channels, 1)

	buf := &audio.IntBuffer{
		Data:           make([]int, frames*f.Channels),
		Format:         &audio.Format{SampleRate: f.SampleRate, NumChannels: f.Channels},
		SourceBitDepth: f.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write to WAV encoder: %w", err)
	}
	return enc.Close()
}
