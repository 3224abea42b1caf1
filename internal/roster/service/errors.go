package service

import (
	"errors"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
)

// classify passes domain errors through and wraps anything else as internal.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.Internal(err)
}
