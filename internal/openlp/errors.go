package openlp

import (
	"errors"
	"fmt"
)

var (
	// ErrConnection matches every transport, status, timeout or envelope
	// failure. These drive the health machine.
	ErrConnection = errors.New("openlp connection failed")
	// ErrPaused is returned by Poll while the client waits out a retry pause.
	ErrPaused = errors.New("openlp polling paused")
	// ErrRace means the live item changed between the detail and poll requests.
	ErrRace = errors.New("openlp live item changed during fetch")
	// ErrLookup means the service list did not hold exactly one matching item.
	ErrLookup = errors.New("openlp service item lookup failed")
)

// RequestError wraps a failed request to path.
type RequestError struct {
	Path string
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("openlp %s: %v", e.Path, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports every RequestError as a connection failure.
func (e *RequestError) Is(target error) bool {
	return target == ErrConnection
}
