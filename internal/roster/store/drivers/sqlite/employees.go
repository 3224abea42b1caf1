package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/internal/roster/store/drivers/sqlite/gen"
)

type employeesRepo struct {
	q *gen.Queries
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	row, err := r.q.CreateEmployee(ctx, gen.CreateEmployeeParams{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Phone:     e.Phone,
		Dni:       e.DNI,
		Address:   e.Address,
		BirthDate: formatDate(e.BirthDate),
	})
	if err != nil {
		return domain.Employee{}, mapConstraint(err)
	}
	return mapEmployee(row)
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error) {
	row, err := r.q.GetEmployeeByID(ctx, id)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return mapEmployee(row)
}

func (r *employeesRepo) GetEmployeeByDNI(ctx context.Context, dni string) (domain.Employee, error) {
	row, err := r.q.GetEmployeeByDNI(ctx, dni)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return mapEmployee(row)
}

func (r *employeesRepo) ExistsEmployee(ctx context.Context, id int64) (bool, error) {
	exists, err := r.q.ExistsEmployee(ctx, id)
	if err != nil {
		return false, err
	}
	return exists != 0, nil
}

func (r *employeesRepo) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.q.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := mapEmployee(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	n, err := r.q.UpdateEmployee(ctx, gen.UpdateEmployeeParams{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Phone:     e.Phone,
		Dni:       e.DNI,
		Address:   e.Address,
		BirthDate: formatDate(e.BirthDate),
		ID:        e.ID,
	})
	if err != nil {
		return mapConstraint(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, id int64) error {
	return r.q.DeleteEmployee(ctx, id)
}
