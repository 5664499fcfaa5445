package speech

import (
	"context"
	"errors"
)

// ErrNoSpeech reports a recognition call that completed but heard nothing
// usable. The transcriber treats it as a soft per-chunk failure.
var ErrNoSpeech = errors.New("no speech recognized")

// Recognizer turns one audio chunk (a WAV file on disk) into text.
type Recognizer interface {
	Recognize(ctx context.Context, wavPath string) (string, error)
}
