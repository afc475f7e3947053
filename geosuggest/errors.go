package geosuggest

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidArgument is returned if some input is missing or cannot
	// be parsed. It never comes from the network.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCancelled is returned if a caller context was closed before
	// a response was received and decoded.
	ErrCancelled = errors.New("operation was cancelled")
)

// TransportError means that API was not reachable or has responded
// with non-successful status code. StatusCode is 0 for network
// failures.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (t *TransportError) Unwrap() error {
	return t.Err
}

func (t *TransportError) Error() string {
	msg := "transport failure"

	if t.StatusCode != 0 {
		msg += ": status code " + strconv.Itoa(t.StatusCode)
	}

	if t.Message != "" {
		msg += ": " + t.Message
	}

	if t.Err != nil {
		msg += ": " + t.Err.Error()
	}

	return msg
}

// DecodeError means that API was reachable but has responded with
// something which is not a suggest response.
type DecodeError struct {
	Err error
}

func (d *DecodeError) Unwrap() error {
	return d.Err
}

func (d *DecodeError) Error() string {
	if d.Err == nil {
		return "cannot decode a response"
	}

	return "cannot decode a response: " + d.Err.Error()
}

type cancelledError struct {
	err error
}

func (c cancelledError) Error() string {
	return ErrCancelled.Error() + ": " + c.err.Error()
}

func (c cancelledError) Is(target error) bool {
	return target == ErrCancelled
}

func (c cancelledError) Unwrap() error {
	return c.err
}
