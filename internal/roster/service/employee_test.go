package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_CRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &EmployeeService{Store: st}

	created, err := svc.Create(ctx, employee("87654321"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	t.Run("duplicate dni on create", func(t *testing.T) {
		_, err := svc.Create(ctx, employee("87654321"))
		require.ErrorIs(t, err, domain.ErrDuplicate)
		require.Contains(t, err.Error(), "87654321")
	})

	t.Run("update overwrites fields", func(t *testing.T) {
		upd := employee("87654321")
		upd.FirstName = "Jerson"

		got, err := svc.Update(ctx, created.ID, upd)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, "Jerson", got.FirstName)
	})

	t.Run("update to a taken dni is a duplicate", func(t *testing.T) {
		other, err := svc.Create(ctx, employee("11112222"))
		require.NoError(t, err)

		_, err = svc.Update(ctx, other.ID, employee("87654321"))
		require.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, employee("99999999"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete missing succeeds", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, 9999))
	})

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestGetWithOffices(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &EmployeeService{Store: st}
	assign := &AssignmentService{Store: st}

	emp := mustEmployee(t, st, "87654321")

	t.Run("no links yields empty list", func(t *testing.T) {
		view, err := svc.GetWithOffices(ctx, emp.ID)
		require.NoError(t, err)
		require.NotNil(t, view.OfficeNames)
		require.Empty(t, view.OfficeNames)
		require.Equal(t, emp, view.Employee)
	})

	t.Run("missing employee", func(t *testing.T) {
		_, err := svc.GetWithOffices(ctx, 9999)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("resolves names and skips deleted offices", func(t *testing.T) {
		a := mustOffice(t, st, "Dean Valdivia")
		b := mustOffice(t, st, "Bloom")
		require.NoError(t, assign.Assign(ctx, emp.ID, []int64{a.ID, b.ID}))

		view, err := svc.GetWithOffices(ctx, emp.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"Dean Valdivia", "Bloom"}, view.OfficeNames)

		require.NoError(t, (&OfficeService{Store: st}).Delete(ctx, b.ID))

		view, err = svc.GetWithOffices(ctx, emp.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"Dean Valdivia"}, view.OfficeNames)

		// the write-side view still carries the raw link
		require.ElementsMatch(t, []int64{a.ID, b.ID}, linkedOffices(t, st, emp.ID))
	})
}

func TestListWithOffices(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &EmployeeService{Store: st}

	withOffice := mustEmployee(t, st, "11111111")
	without := mustEmployee(t, st, "22222222")
	o := mustOffice(t, st, "Bloom")
	require.NoError(t, (&AssignmentService{Store: st}).Assign(ctx, withOffice.ID, []int64{o.ID}))

	var views []domain.EmployeeWithOffices
	for view, err := range svc.ListWithOffices(ctx) {
		require.NoError(t, err)
		views = append(views, view)
	}

	require.Len(t, views, 2)
	require.Equal(t, withOffice.ID, views[0].ID)
	require.Equal(t, []string{"Bloom"}, views[0].OfficeNames)
	require.Equal(t, without.ID, views[1].ID)
	require.Equal(t, []string{}, views[1].OfficeNames)

	t.Run("stops early", func(t *testing.T) {
		n := 0
		for range svc.ListWithOffices(ctx) {
			n++
			break
		}
		require.Equal(t, 1, n)
	})
}
