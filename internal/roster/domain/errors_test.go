package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/stretchr/testify/require"
)

func TestUnknownReference_SortsAndNamesIDs(t *testing.T) {
	err := domain.UnknownReference("offices", 999, 7)

	require.Equal(t, domain.KindUnknownReference, err.Kind)
	require.Equal(t, []int64{7, 999}, err.IDs)
	require.Equal(t, "offices not found: [7, 999]", err.Message)
}

func TestKindOf(t *testing.T) {
	t.Run("wrapped domain error", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", domain.NotFound("employee %d not found", 3))
		require.Equal(t, domain.KindNotFound, domain.KindOf(err))
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NotErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("plain error is internal", func(t *testing.T) {
		require.Equal(t, domain.KindInternal, domain.KindOf(errors.New("boom")))
	})
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := domain.Internal(cause)

	require.NotContains(t, err.Message, "disk")
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, domain.ErrInternal)
}

func TestAsError(t *testing.T) {
	e := domain.AsError(errors.New("boom"))
	require.Equal(t, domain.KindInternal, e.Kind)

	dup := domain.Duplicate("dni %q already registered", "12345678")
	require.Same(t, dup, domain.AsError(fmt.Errorf("wrap: %w", dup)))
}
