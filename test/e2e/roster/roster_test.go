package roster_test

import (
	"testing"

	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/stretchr/testify/require"
)

func TestEmployeeOfficeAssignment(t *testing.T) {
	ctx := t.Context()
	session := registerAndLogin(t, rostersdk.NewClient(setupRosterContainer(t)))

	lima, err := session.CreateOffice(ctx, rostersdk.OfficeRequest{Name: "Dean Valdivia", Location: "San Isidro, Lima"})
	require.NoError(t, err)
	bloom, err := session.CreateOffice(ctx, rostersdk.OfficeRequest{Name: "Bloom", Location: "Trujillo"})
	require.NoError(t, err)

	emp, err := session.CreateEmployee(ctx, employeeRequest("12345678"))
	require.NoError(t, err)

	_, err = session.CreateEmployee(ctx, employeeRequest("12345678"))
	assertCode(t, err, rostersdk.CodeDuplicate)

	require.NoError(t, session.AssignOffices(ctx, emp.ID, []int64{lima.ID, bloom.ID}))

	view, err := session.GetEmployeeWithOffices(ctx, emp.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Dean Valdivia", "Bloom"}, view.OfficeNames)

	// Replacing with a smaller set drops the other link.
	require.NoError(t, session.AssignOffices(ctx, emp.ID, []int64{lima.ID}))
	ids, err := session.GetEmployeeOffices(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{lima.ID}, ids.OfficeIDs)

	// An unknown office rejects the whole request.
	err = session.AssignOffices(ctx, emp.ID, []int64{lima.ID, 999})
	assertCode(t, err, rostersdk.CodeUnknownReference)

	var apiErr *rostersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, []int64{999}, apiErr.IDs)

	ids, err = session.GetEmployeeOffices(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, []int64{lima.ID}, ids.OfficeIDs)

	err = session.AssignOffices(ctx, 4242, []int64{lima.ID})
	assertCode(t, err, rostersdk.CodeUnknownReference)

	// Deleting an office leaves the link but it no longer shows up.
	require.NoError(t, session.DeleteOffice(ctx, lima.ID))
	view, err = session.GetEmployeeWithOffices(ctx, emp.ID)
	require.NoError(t, err)
	require.Empty(t, view.OfficeNames)

	require.NoError(t, session.AssignOffices(ctx, emp.ID, []int64{}))
	all, err := session.ListEmployeesWithOffices(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Empty(t, all[0].OfficeNames)
}

func TestEmployeeCRUD(t *testing.T) {
	ctx := t.Context()
	session := registerAndLogin(t, rostersdk.NewClient(setupRosterContainer(t)))

	req := employeeRequest("87654321")
	req.BirthDate = "2999-01-01"
	_, err := session.CreateEmployee(ctx, req)
	assertCode(t, err, rostersdk.CodeValidation)

	emp, err := session.CreateEmployee(ctx, employeeRequest("87654321"))
	require.NoError(t, err)

	got, err := session.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, emp, got)

	upd := employeeRequest("87654321")
	upd.Address = "Av. Lima 123"
	updated, err := session.UpdateEmployee(ctx, emp.ID, upd)
	require.NoError(t, err)
	require.Equal(t, "Av. Lima 123", updated.Address)

	_, err = session.UpdateEmployee(ctx, 9999, upd)
	assertCode(t, err, rostersdk.CodeNotFound)

	require.NoError(t, session.DeleteEmployee(ctx, emp.ID))
	_, err = session.GetEmployee(ctx, emp.ID)
	assertCode(t, err, rostersdk.CodeNotFound)

	list, err := session.ListEmployees(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestOfficeCRUD(t *testing.T) {
	ctx := t.Context()
	session := registerAndLogin(t, rostersdk.NewClient(setupRosterContainer(t)))

	office, err := session.CreateOffice(ctx, rostersdk.OfficeRequest{Name: "Bloom", Location: "Trujillo"})
	require.NoError(t, err)

	updated, err := session.UpdateOffice(ctx, office.ID, rostersdk.OfficeRequest{Name: "Bloom", Location: "Arequipa"})
	require.NoError(t, err)
	require.Equal(t, "Arequipa", updated.Location)

	got, err := session.GetOffice(ctx, office.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)

	require.NoError(t, session.DeleteOffice(ctx, office.ID))
	_, err = session.GetOffice(ctx, office.ID)
	assertCode(t, err, rostersdk.CodeNotFound)
}
