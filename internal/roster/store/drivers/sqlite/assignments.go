package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store/drivers/sqlite/gen"
)

type assignmentsRepo struct {
	q *gen.Queries
}

func (r *assignmentsRepo) ListAssignmentsByEmployee(ctx context.Context, employeeID int64) ([]domain.EmployeeOffice, error) {
	rows, err := r.q.ListEmployeeOfficesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EmployeeOffice, len(rows))
	for i, row := range rows {
		out[i] = domain.EmployeeOffice{EmployeeID: row.EmployeeID, OfficeID: row.OfficeID}
	}
	return out, nil
}

func (r *assignmentsRepo) CreateAssignment(ctx context.Context, a domain.EmployeeOffice) error {
	err := r.q.CreateEmployeeOffice(ctx, gen.CreateEmployeeOfficeParams{
		EmployeeID: a.EmployeeID,
		OfficeID:   a.OfficeID,
	})
	return mapConstraint(err)
}

func (r *assignmentsRepo) DeleteAssignmentsByEmployee(ctx context.Context, employeeID int64) error {
	return r.q.DeleteEmployeeOfficesByEmployee(ctx, employeeID)
}

func (r *assignmentsRepo) CountDanglingAssignments(ctx context.Context) (int64, error) {
	return r.q.CountDanglingEmployeeOffices(ctx)
}
