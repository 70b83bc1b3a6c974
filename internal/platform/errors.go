package platform

import (
	"errors"
	"fmt"
)

// ErrUnsupported matches every *UnsupportedError via errors.Is.
var ErrUnsupported = errors.New("not supported on this platform")

// UnsupportedError reports an operation with no implementation for the
// resolved platform, or a host outside the recognized profiles.
type UnsupportedError struct {
	Operation string // empty when the host itself is unrecognized
	Platform  string
}

func (e *UnsupportedError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("platform %q is not supported", e.Platform)
	}
	return fmt.Sprintf("%s is not supported on %s", e.Operation, e.Platform)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// ConfigError reports a missing environment or filesystem precondition.
type ConfigError struct {
	Precondition string
	Err          error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing precondition: %s: %v", e.Precondition, e.Err)
	}
	return fmt.Sprintf("missing precondition: %s", e.Precondition)
}

func (e *ConfigError) Unwrap() error { return e.Err }
