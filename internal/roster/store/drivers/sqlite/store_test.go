package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/internal/roster/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return st
}

func sampleEmployee(dni string) domain.Employee {
	return domain.Employee{
		FirstName: "Christian",
		LastName:  "Espinoza",
		Phone:     "999888777",
		DNI:       dni,
		Address:   "Av. Lima 123",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEmployees(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	created, err := st.Employees().CreateEmployee(ctx, sampleEmployee("87654321"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "1990-01-01", created.BirthDate.Format(time.DateOnly))

	t.Run("get by id and dni", func(t *testing.T) {
		got, err := st.Employees().GetEmployeeByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created, got)

		got, err = st.Employees().GetEmployeeByDNI(ctx, "87654321")
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)

		_, err = st.Employees().GetEmployeeByID(ctx, 9999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := st.Employees().ExistsEmployee(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = st.Employees().ExistsEmployee(ctx, 9999)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("duplicate dni", func(t *testing.T) {
		_, err := st.Employees().CreateEmployee(ctx, sampleEmployee("87654321"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		upd := created
		upd.Address = "Av. Javier Prado 2020"
		require.NoError(t, st.Employees().UpdateEmployee(ctx, upd))

		got, err := st.Employees().GetEmployeeByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Av. Javier Prado 2020", got.Address)

		upd.ID = 9999
		require.ErrorIs(t, st.Employees().UpdateEmployee(ctx, upd), store.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		other, err := st.Employees().CreateEmployee(ctx, sampleEmployee("11112222"))
		require.NoError(t, err)

		require.NoError(t, st.Employees().DeleteEmployee(ctx, other.ID))
		require.NoError(t, st.Employees().DeleteEmployee(ctx, other.ID))

		list, err := st.Employees().ListEmployees(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}

func TestOffices_ListByIDsSkipsMissing(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	a, err := st.Offices().CreateOffice(ctx, domain.Office{Name: "Dean Valdivia", Location: "Lima"})
	require.NoError(t, err)
	b, err := st.Offices().CreateOffice(ctx, domain.Office{Name: "Bloom", Location: "Trujillo"})
	require.NoError(t, err)

	got, err := st.Offices().ListOfficesByIDs(ctx, []int64{b.ID, 999, a.ID})
	require.NoError(t, err)
	require.Equal(t, []domain.Office{a, b}, got)

	got, err = st.Offices().ListOfficesByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, got)

	require.ErrorIs(t,
		st.Offices().UpdateOffice(ctx, domain.Office{ID: 999, Name: "x", Location: "y"}),
		store.ErrNotFound,
	)
}

func TestOffices_ListByIDsLargeSet(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	a, err := st.Offices().CreateOffice(ctx, domain.Office{Name: "Dean Valdivia", Location: "Lima"})
	require.NoError(t, err)
	b, err := st.Offices().CreateOffice(ctx, domain.Office{Name: "Bloom", Location: "Trujillo"})
	require.NoError(t, err)

	// Far more ids than SQLite accepts as bind variables in one statement.
	ids := make([]int64, 0, 40002)
	for id := int64(40000); id > 0; id-- {
		ids = append(ids, id+1000)
	}
	ids = append(ids, b.ID, a.ID, a.ID)

	got, err := st.Offices().ListOfficesByIDs(ctx, ids)
	require.NoError(t, err)
	require.Equal(t, []domain.Office{a, b}, got)
}

func TestAssignments(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	emp, err := st.Employees().CreateEmployee(ctx, sampleEmployee("87654321"))
	require.NoError(t, err)
	off, err := st.Offices().CreateOffice(ctx, domain.Office{Name: "Bloom", Location: "Lima"})
	require.NoError(t, err)

	link := domain.EmployeeOffice{EmployeeID: emp.ID, OfficeID: off.ID}
	require.NoError(t, st.Assignments().CreateAssignment(ctx, link))
	require.ErrorIs(t, st.Assignments().CreateAssignment(ctx, link), store.ErrAlreadyExists)

	links, err := st.Assignments().ListAssignmentsByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.EmployeeOffice{link}, links)

	t.Run("office deletion leaves dangling link", func(t *testing.T) {
		require.NoError(t, st.Offices().DeleteOffice(ctx, off.ID))

		n, err := st.Assignments().CountDanglingAssignments(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})

	t.Run("delete by employee", func(t *testing.T) {
		require.NoError(t, st.Assignments().DeleteAssignmentsByEmployee(ctx, emp.ID))

		links, err := st.Assignments().ListAssignmentsByEmployee(ctx, emp.ID)
		require.NoError(t, err)
		require.Empty(t, links)
	})
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	u, err := st.Users().CreateUser(ctx, domain.User{Username: "frandelgadillo", PasswordHash: "$argon2id$hash"})
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	got, err := st.Users().GetUserByUsername(ctx, "frandelgadillo")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "$argon2id$hash", got.PasswordHash)

	_, err = st.Users().CreateUser(ctx, domain.User{Username: "frandelgadillo", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	boom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Offices().CreateOffice(ctx, domain.Office{Name: "Bloom", Location: "Lima"})
		require.NoError(t, err)

		require.ErrorIs(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), sql.ErrTxDone)
		return boom
	})
	require.ErrorIs(t, err, boom)

	offices, err := st.Offices().ListOffices(ctx)
	require.NoError(t, err)
	require.Empty(t, offices)
}
