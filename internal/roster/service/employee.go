package service

import (
	"context"
	"errors"
	"iter"
	"log/slog"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

type EmployeeService struct {
	Store store.Store
}

// Create stores a new employee. The dni must not belong to another employee.
func (s *EmployeeService) Create(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	l := slogx.FromContext(ctx)

	_, err := s.Store.Employees().GetEmployeeByDNI(ctx, e.DNI)
	switch {
	case err == nil:
		l.Info("employee create rejected, dni already registered", slog.String("dni", e.DNI))
		return domain.Employee{}, domain.Duplicate("dni %s is already registered", e.DNI)
	case !errors.Is(err, store.ErrNotFound):
		return domain.Employee{}, classify(err)
	}

	e.ID = 0
	created, err := s.Store.Employees().CreateEmployee(ctx, e)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Employee{}, domain.Duplicate("dni %s is already registered", e.DNI)
		}
		return domain.Employee{}, classify(err)
	}

	l.Info("employee created", slog.Int64("employee_id", created.ID))
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (domain.Employee, error) {
	e, err := s.Store.Employees().GetEmployeeByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Employee{}, domain.NotFound("employee %d not found", id)
	}
	return e, classify(err)
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.Store.Employees().ListEmployees(ctx)
	return employees, classify(err)
}

// Update overwrites every field of an existing employee. The dni is not
// checked up front; a collision is still rejected by the store.
func (s *EmployeeService) Update(ctx context.Context, id int64, e domain.Employee) (domain.Employee, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return domain.Employee{}, err
	}

	e.ID = id
	if err := s.Store.Employees().UpdateEmployee(ctx, e); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Employee{}, domain.NotFound("employee %d not found", id)
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Employee{}, domain.Duplicate("dni %s is already registered", e.DNI)
		}
		return domain.Employee{}, classify(err)
	}

	slogx.FromContext(ctx).Info("employee updated", slog.Int64("employee_id", id))
	return e, nil
}

// Delete removes the employee. Deleting a missing id succeeds.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.Store.Employees().DeleteEmployee(ctx, id); err != nil {
		return classify(err)
	}

	slogx.FromContext(ctx).Info("employee deleted", slog.Int64("employee_id", id))
	return nil
}

// GetWithOffices returns the employee together with the names of the offices
// it is linked to. Links to offices that no longer exist are skipped.
func (s *EmployeeService) GetWithOffices(ctx context.Context, id int64) (domain.EmployeeWithOffices, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return domain.EmployeeWithOffices{}, err
	}

	names, err := s.officeNames(ctx, e.ID)
	if err != nil {
		return domain.EmployeeWithOffices{}, classify(err)
	}

	return domain.EmployeeWithOffices{Employee: e, OfficeNames: names}, nil
}

// ListWithOffices yields the read view of every employee. The employee scan
// happens on the first iteration and each employee's offices are resolved as
// it is yielded. Iteration stops after the first error.
func (s *EmployeeService) ListWithOffices(ctx context.Context) iter.Seq2[domain.EmployeeWithOffices, error] {
	return func(yield func(domain.EmployeeWithOffices, error) bool) {
		employees, err := s.Store.Employees().ListEmployees(ctx)
		if err != nil {
			yield(domain.EmployeeWithOffices{}, classify(err))
			return
		}

		for _, e := range employees {
			names, err := s.officeNames(ctx, e.ID)
			if err != nil {
				yield(domain.EmployeeWithOffices{}, classify(err))
				return
			}

			if !yield(domain.EmployeeWithOffices{Employee: e, OfficeNames: names}, nil) {
				return
			}
		}
	}
}

// GetAssignment returns the employee with the raw ids of its linked offices.
func (s *EmployeeService) GetAssignment(ctx context.Context, id int64) (domain.EmployeeAssignment, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return domain.EmployeeAssignment{}, err
	}

	links, err := s.Store.Assignments().ListAssignmentsByEmployee(ctx, id)
	if err != nil {
		return domain.EmployeeAssignment{}, classify(err)
	}

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.OfficeID)
	}
	return domain.EmployeeAssignment{Employee: e, OfficeIDs: ids}, nil
}

// officeNames never returns nil so that an employee without offices encodes
// as an empty list.
func (s *EmployeeService) officeNames(ctx context.Context, employeeID int64) ([]string, error) {
	links, err := s.Store.Assignments().ListAssignmentsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []string{}, nil
	}

	ids := make([]int64, len(links))
	for i, link := range links {
		ids[i] = link.OfficeID
	}

	offices, err := s.Store.Offices().ListOfficesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(offices))
	for i, o := range offices {
		names[i] = o.Name
	}

	if len(offices) < len(links) {
		slogx.FromContext(ctx).Debug("skipping dangling office links",
			slog.Int64("employee_id", employeeID),
			slog.Int("dangling", len(links)-len(offices)),
		)
	}
	return names, nil
}
