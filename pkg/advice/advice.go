package advice

import (
	"context"
	"errors"
)

var (
	// ErrAdviceDisabled is returned when no generator API key is configured.
	ErrAdviceDisabled = errors.New("advice generation is disabled")

	// ErrGeneratorUnavailable is returned when the generator could not be reached or rejected the request.
	ErrGeneratorUnavailable = errors.New("advice generator unavailable")

	// ErrTimeout is returned when the generator did not answer in time.
	ErrTimeout = errors.New("advice request timed out")

	// ErrEmptyResponse is returned when the generator answered without any text.
	ErrEmptyResponse = errors.New("advice generator returned no text")
)

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Averages are the daily averages the advice is based on, in hours.
type Averages struct {
	Sleep      float64
	Study      float64
	Smartphone float64
	Unknown    float64
}

type Advice struct {
	Text        string
	DaysLogged  int
	Averages    Averages
	TargetSleep int
	TargetStudy int
}
