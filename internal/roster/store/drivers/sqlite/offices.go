package sqlite

import (
	"context"
	"slices"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/internal/roster/store/drivers/sqlite/gen"
)

// maxBindVars bounds the ids bound into a single IN list. SQLite rejects
// statements with more than SQLITE_MAX_VARIABLE_NUMBER parameters.
const maxBindVars = 500

type officesRepo struct {
	q *gen.Queries
}

func (r *officesRepo) CreateOffice(ctx context.Context, o domain.Office) (domain.Office, error) {
	row, err := r.q.CreateOffice(ctx, gen.CreateOfficeParams{
		Name:     o.Name,
		Location: o.Location,
	})
	if err != nil {
		return domain.Office{}, err
	}
	return mapOffice(row), nil
}

func (r *officesRepo) GetOfficeByID(ctx context.Context, id int64) (domain.Office, error) {
	row, err := r.q.GetOfficeByID(ctx, id)
	if err != nil {
		return domain.Office{}, mapNotFound(err)
	}
	return mapOffice(row), nil
}

func (r *officesRepo) ListOffices(ctx context.Context) ([]domain.Office, error) {
	rows, err := r.q.ListOffices(ctx)
	if err != nil {
		return nil, err
	}
	return mapOffices(rows), nil
}

func (r *officesRepo) ListOfficesByIDs(ctx context.Context, ids []int64) ([]domain.Office, error) {
	if len(ids) == 0 {
		return []domain.Office{}, nil
	}

	// Sorted unique ids keep each chunk's rows in ascending order, so the
	// concatenated result is ordered by id as well.
	ids = slices.Compact(slices.Sorted(slices.Values(ids)))

	offices := make([]domain.Office, 0, len(ids))
	for chunk := range slices.Chunk(ids, maxBindVars) {
		rows, err := r.q.ListOfficesByIDs(ctx, chunk)
		if err != nil {
			return nil, err
		}
		offices = append(offices, mapOffices(rows)...)
	}
	return offices, nil
}

func (r *officesRepo) UpdateOffice(ctx context.Context, o domain.Office) error {
	n, err := r.q.UpdateOffice(ctx, gen.UpdateOfficeParams{
		Name:     o.Name,
		Location: o.Location,
		ID:       o.ID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *officesRepo) DeleteOffice(ctx context.Context, id int64) error {
	return r.q.DeleteOffice(ctx, id)
}
