package error

import (
	"errors"
	"fmt"
)

// Process exit codes for startup and shutdown failures
const (
	ExitCodeGeneric     = 1
	ExitCodeConfig      = 2
	ExitCodePersistence = 3
	ExitCodeStartup     = 4
)

// Base error types
var (
	// ErrRecordNotFound is returned when no record is stored under a key
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordSizeMismatch is returned when the stored record length differs from the expected one
	ErrRecordSizeMismatch = errors.New("record size mismatch")

	// ErrInvalidRecord is returned when a record has the right size but carries impossible values
	ErrInvalidRecord = errors.New("invalid record contents")

	// ErrNoFaces is returned when a dispatcher is built without faces
	ErrNoFaces = errors.New("at least one face is required")

	// ErrDuplicateFaceKey is returned when two faces share a persistence key
	ErrDuplicateFaceKey = errors.New("duplicate face persistence key")

	// ErrReservedFaceKey is returned when a face tries to use the selection key
	ErrReservedFaceKey = errors.New("persistence key is reserved")

	// ErrInvalidFaceName is returned when a face name is empty or too long
	ErrInvalidFaceName = errors.New("face name must be 1 to 7 characters")

	// ErrInvalidFaceIndex is returned when activating a face outside the face list
	ErrInvalidFaceIndex = errors.New("face index out of range")

	// ErrUnknownFaceKind is returned when the configuration names an unknown face kind
	ErrUnknownFaceKind = errors.New("unknown face kind")

	// ErrDispatcherStarted is returned when Start is called twice
	ErrDispatcherStarted = errors.New("dispatcher already started")

	// ErrStoreUnavailable is returned when the persistence store cannot be reached
	ErrStoreUnavailable = errors.New("persistence store unavailable")

	// ErrInvalidConfig is returned when the configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCode maps an error to the process exit code used by the host
func ExitCode(err error) int {
	var startupErr *StartupError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownFaceKind),
		errors.Is(err, ErrInvalidFaceName), errors.Is(err, ErrReservedFaceKey),
		errors.Is(err, ErrDuplicateFaceKey):
		return ExitCodeConfig
	case errors.Is(err, ErrStoreUnavailable):
		return ExitCodePersistence
	case errors.As(err, &startupErr):
		return ExitCodeStartup
	default:
		return ExitCodeGeneric
	}
}

// PersistenceError describes a failed or rejected store operation on one key
type PersistenceError struct {
	Op           string
	Key          uint32
	ExpectedSize int
	StoredSize   int
	Err          error
}

// Error implements the error interface for PersistenceError
func (e *PersistenceError) Error() string {
	if errors.Is(e.Err, ErrRecordSizeMismatch) {
		return fmt.Sprintf("%s key %d: stored %d bytes, expected %d: %v",
			e.Op, e.Key, e.StoredSize, e.ExpectedSize, e.Err)
	}
	return fmt.Sprintf("%s key %d: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "persistence_error",
		"op":            e.Op,
		"key":           e.Key,
		"expected_size": e.ExpectedSize,
		"stored_size":   e.StoredSize,
		"error":         e.Err.Error(),
	}
}

// NewSizeMismatchError reports a stored record whose length is not the expected one
func NewSizeMismatchError(key uint32, expected, stored int) error {
	return &PersistenceError{
		Op:           "load",
		Key:          key,
		ExpectedSize: expected,
		StoredSize:   stored,
		Err:          ErrRecordSizeMismatch,
	}
}

// NewPersistenceError wraps a store failure for key
func NewPersistenceError(op string, key uint32, err error) error {
	return &PersistenceError{
		Op:  op,
		Key: key,
		Err: err,
	}
}

// StartupError marks a failure while building the application
type StartupError struct {
	Stage string
	Err   error
}

// Error implements the error interface for StartupError
func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *StartupError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StartupError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "startup_error",
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"exit_code":  ExitCode(e),
	}
}

// NewStartupError wraps err with the stage that failed
func NewStartupError(stage string, err error) error {
	return &StartupError{Stage: stage, Err: err}
}

// IsAbsent reports whether a load found nothing usable, either missing or sized for another schema
func IsAbsent(err error) bool {
	return errors.Is(err, ErrRecordNotFound) || errors.Is(err, ErrRecordSizeMismatch)
}

// IsSizeMismatch checks if the error is a record size mismatch
func IsSizeMismatch(err error) bool {
	return errors.Is(err, ErrRecordSizeMismatch)
}

// IsStartupError checks if the error happened while building the application
func IsStartupError(err error) bool {
	var startupErr *StartupError
	return errors.As(err, &startupErr)
}
