package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

// AssignmentService maintains the employee to office links.
type AssignmentService struct {
	Store store.Store
}

// Assign replaces the set of offices linked to employeeID with officeIDs.
// Duplicate ids are ignored and an empty set clears the links.
//
// Every office and the employee must exist, otherwise an unknown reference
// error names the missing ids and the existing links are left untouched. The
// replace runs in one transaction, so a failure part way through rolls back
// to the previous link set.
func (s *AssignmentService) Assign(ctx context.Context, employeeID int64, officeIDs []int64) error {
	l := slogx.FromContext(ctx).With(slog.Int64("employee_id", employeeID))

	requested := slices.Clone(officeIDs)
	slices.Sort(requested)
	requested = slices.Compact(requested)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		found, err := tx.Offices().ListOfficesByIDs(ctx, requested)
		if err != nil {
			return err
		}
		if len(found) != len(requested) {
			return domain.UnknownReference("offices", missingOffices(requested, found)...)
		}

		exists, err := tx.Employees().ExistsEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.UnknownReference("employee", employeeID)
		}

		if err := tx.Assignments().DeleteAssignmentsByEmployee(ctx, employeeID); err != nil {
			return err
		}
		for _, officeID := range requested {
			link := domain.EmployeeOffice{EmployeeID: employeeID, OfficeID: officeID}
			if err := tx.Assignments().CreateAssignment(ctx, link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.Info("office assignment failed", slog.Any("office_ids", requested), slog.Any("error", err))
		return classify(err)
	}

	l.Info("offices assigned", slog.Any("office_ids", requested))
	return nil
}

// missingOffices returns the ids in requested that are not in found, in
// ascending order. requested must be sorted.
func missingOffices(requested []int64, found []domain.Office) []int64 {
	have := make(map[int64]struct{}, len(found))
	for _, o := range found {
		have[o.ID] = struct{}{}
	}

	var missing []int64
	for _, id := range requested {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
