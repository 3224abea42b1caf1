package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

type OfficeService struct {
	Store store.Store
}

func (s *OfficeService) Create(ctx context.Context, o domain.Office) (domain.Office, error) {
	o.ID = 0
	created, err := s.Store.Offices().CreateOffice(ctx, o)
	if err != nil {
		return domain.Office{}, classify(err)
	}

	slogx.FromContext(ctx).Info("office created", slog.Int64("office_id", created.ID))
	return created, nil
}

func (s *OfficeService) Get(ctx context.Context, id int64) (domain.Office, error) {
	o, err := s.Store.Offices().GetOfficeByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Office{}, domain.NotFound("office %d not found", id)
	}
	return o, classify(err)
}

func (s *OfficeService) List(ctx context.Context) ([]domain.Office, error) {
	offices, err := s.Store.Offices().ListOffices(ctx)
	return offices, classify(err)
}

// Update overwrites name and location of an existing office.
func (s *OfficeService) Update(ctx context.Context, id int64, o domain.Office) (domain.Office, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.Office{}, err
	}

	existing.Name = o.Name
	existing.Location = o.Location

	if err := s.Store.Offices().UpdateOffice(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Office{}, domain.NotFound("office %d not found", id)
		}
		return domain.Office{}, classify(err)
	}

	slogx.FromContext(ctx).Info("office updated", slog.Int64("office_id", id))
	return existing, nil
}

// Delete removes the office. Links that reference it are left in place and
// are skipped when employee views are built.
func (s *OfficeService) Delete(ctx context.Context, id int64) error {
	if err := s.Store.Offices().DeleteOffice(ctx, id); err != nil {
		return classify(err)
	}

	slogx.FromContext(ctx).Info("office deleted", slog.Int64("office_id", id))
	return nil
}
