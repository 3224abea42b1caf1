package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/internal/roster/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return st
}

func employee(dni string) domain.Employee {
	return domain.Employee{
		FirstName: "Christian",
		LastName:  "Espinoza",
		Phone:     "999888777",
		DNI:       dni,
		Address:   "Av. Lima 123",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func mustOffice(t *testing.T, st store.Store, name string) domain.Office {
	t.Helper()

	o, err := (&OfficeService{Store: st}).Create(context.Background(), domain.Office{Name: name, Location: "Lima"})
	require.NoError(t, err)
	return o
}

func mustEmployee(t *testing.T, st store.Store, dni string) domain.Employee {
	t.Helper()

	e, err := (&EmployeeService{Store: st}).Create(context.Background(), employee(dni))
	require.NoError(t, err)
	return e
}

func linkedOffices(t *testing.T, st store.Store, employeeID int64) []int64 {
	t.Helper()

	a, err := (&EmployeeService{Store: st}).GetAssignment(context.Background(), employeeID)
	require.NoError(t, err)
	return a.OfficeIDs
}
