package services

import (
	"errors"

	"github.com/kurumaops/dealer_mgmt_app/internal/apperrors"
)

// errorsIsNotFound reports whether err is (or wraps) the not-found sentinel.
func errorsIsNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
