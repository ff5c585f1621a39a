package audio

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the rate the speaker runs at. Sources at other rates are
// resampled.
const SampleRate = beep.SampleRate(48000)

var (
	speakerMu   sync.Mutex
	speakerInit bool
)

// InitSpeaker opens the audio device. Calling it more than once is harmless.
func InitSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerInit {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speakerInit = true
	return nil
}

// SpeakerPlayer plays streams on the default audio device. InitSpeaker must
// have been called first.
type SpeakerPlayer struct{}

func (SpeakerPlayer) Play(s beep.Streamer) {
	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
}

// Tone is a source of a sine wave at freq hertz lasting d, played at half volume.
func Tone(freq float64, d time.Duration) Source {
	return func() (beep.Streamer, error) {
		sine, err := generators.SineTone(SampleRate, freq)
		if err != nil {
			return nil, fmt.Errorf("tone %vHz: %w", freq, err)
		}
		quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -1}
		return beep.Take(SampleRate.N(d), quiet), nil
	}
}

// File is a source that decodes a WAV file each time it is opened.
func File(path string) Source {
	return func() (beep.Streamer, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open sound: %w", err)
		}
		s, format, err := wav.Decode(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if format.SampleRate == SampleRate {
			return s, nil
		}
		return &closingStreamer{
			Streamer: beep.Resample(4, format.SampleRate, SampleRate, s),
			closer:   s,
		}, nil
	}
}

type closingStreamer struct {
	beep.Streamer
	closer io.Closer
}

func (s *closingStreamer) Close() error {
	return s.closer.Close()
}
