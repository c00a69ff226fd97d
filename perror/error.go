package perror

import "fmt"

// Error is the error type returned by the simulation packages. Sentinel values are compared with errors.Is,
// which falls back to comparing the message when the target is also an *Error.
type Error struct {
	Err string
}

var (
	// ErrDivisionByZero is returned when an estimate is requested before any sample was recorded.
	ErrDivisionByZero = NewError("estimate requested with zero samples")
	// ErrGeometryMismatch is returned for a canvas geometry that cannot be mapped onto.
	ErrGeometryMismatch = NewError("canvas geometry cannot hold a pixel")
	// ErrInvalidStep is returned for a fixed timestep that is not positive.
	ErrInvalidStep = NewError("fixed timestep must be positive")
)

// NewError returns an *Error holding err as is.
func NewError(err string) *Error {
	return &Error{Err: err}
}

// New formats its arguments like fmt.Sprintf.
func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

// Wrap returns an error that matches base with errors.Is and carries extra detail.
func Wrap(base *Error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Err == e.Err
}
