package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error raised by operation on key to a domain PersistenceError
func (m *ErrorMapper) MapError(err error, operation string, key uint32) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewPersistenceError(operation, key, errs.ErrRecordNotFound)
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return errs.NewPersistenceError(operation, key,
			fmt.Errorf("%w: %s operation timed out", errs.ErrStoreUnavailable, operation))

	default:
		return errs.NewPersistenceError(operation, key,
			fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error()))
	}
}
