package facemesh

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrImageUnreadable is returned when the input path is missing or does not decode.
	ErrImageUnreadable = errors.New("image not found or could not be read")

	// ErrEmptyImage is returned when Process is given an empty Mat.
	ErrEmptyImage = errors.New("facemesh: empty image")

	// ErrModelNotFound is returned when a model file does not exist.
	ErrModelNotFound = errors.New("facemesh: model file not found")

	// ErrModelLoad is returned when OpenCV cannot load a model.
	ErrModelLoad = errors.New("facemesh: failed to load model")

	// ErrInvalidOutput is returned when the landmark tensor has an unusable shape.
	ErrInvalidOutput = errors.New("facemesh: invalid landmark output")

	// ErrVideoModeUnsupported is returned when StaticImageMode is disabled.
	ErrVideoModeUnsupported = errors.New("facemesh: only static image mode is supported")

	// ErrClosed is returned when a closed FaceMesh is used.
	ErrClosed = errors.New("facemesh: mesh is closed")
)

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("facemesh: invalid config %s: %s", e.Field, e.Reason)
}
