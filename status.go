package elft

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImage is wrapped by Image.Validate failures.
	ErrInvalidImage = errors.New("invalid image")
	// ErrUnknownImplementation is returned for unregistered implementation names.
	ErrUnknownImplementation = errors.New("unknown implementation")
)

// Result is the outcome code of an implementation call.
type Result uint8

const (
	Success Result = iota
	Failure
	NotImplemented
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case NotImplemented:
		return "NotImplemented"
	}
	return fmt.Sprintf("Result(%d)", uint8(r))
}

// ReturnStatus is the outcome of an implementation call with an optional
// explanation.
type ReturnStatus struct {
	Result  Result
	Message string
}

// StatusOK returns a successful status.
func StatusOK() ReturnStatus {
	return ReturnStatus{Result: Success}
}

// StatusFailure returns a failed status with a formatted explanation.
func StatusFailure(format string, a ...interface{}) ReturnStatus {
	return ReturnStatus{Result: Failure, Message: fmt.Sprintf(format, a...)}
}

// StatusNotImplemented returns a status for an optional operation the
// implementation does not provide.
func StatusNotImplemented(msg string) ReturnStatus {
	return ReturnStatus{Result: NotImplemented, Message: msg}
}

// OK reports whether the result is Success. Every other result is false.
func (s ReturnStatus) OK() bool {
	return s.Result == Success
}

// Err returns nil for a successful status and a *StatusError otherwise.
func (s ReturnStatus) Err() error {
	if s.OK() {
		return nil
	}
	return &StatusError{Status: s}
}

func (s ReturnStatus) String() string {
	if s.Message == "" {
		return s.Result.String()
	}
	return s.Result.String() + ": " + s.Message
}

// StatusError carries a non-successful ReturnStatus as an error.
type StatusError struct {
	Status ReturnStatus
}

func (e *StatusError) Error() string {
	return "implementation returned " + e.Status.String()
}

// IsNotImplemented reports whether err carries a NotImplemented status.
func IsNotImplemented(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status.Result == NotImplemented
}
