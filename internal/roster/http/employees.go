package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/service"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
)

// EmployeesHandler serves the employee endpoints, including the office
// assignment and the aggregated read views.
type EmployeesHandler struct {
	EmployeeService   *service.EmployeeService
	AssignmentService *service.AssignmentService
}

func toEmployeeResponse(e domain.Employee) rostersdk.Employee {
	return rostersdk.Employee{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Phone:     e.Phone,
		DNI:       e.DNI,
		Address:   e.Address,
		BirthDate: e.BirthDate.Format(time.DateOnly),
	}
}

func toWithOfficesResponse(e domain.EmployeeWithOffices) rostersdk.EmployeeWithOffices {
	return rostersdk.EmployeeWithOffices{
		Employee:    toEmployeeResponse(e.Employee),
		OfficeNames: e.OfficeNames,
	}
}

// decodeEmployee reads and validates an EmployeeRequest body.
func decodeEmployee(w http.ResponseWriter, r *http.Request) (domain.Employee, error) {
	var req rostersdk.EmployeeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		return domain.Employee{}, invalidBody(err)
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.DNI = strings.TrimSpace(req.DNI)
	req.Address = strings.TrimSpace(req.Address)

	if err := validateStruct(req); err != nil {
		return domain.Employee{}, err
	}

	// Format is guaranteed by the datetime tag.
	birth, _ := time.Parse(time.DateOnly, req.BirthDate)

	return domain.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		DNI:       req.DNI,
		Address:   req.Address,
		BirthDate: birth,
	}, nil
}

// HandleCreate handles POST /api/v1/employees
//
//	@Summary		Create employee
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rostersdk.EmployeeRequest	true	"employee"
//	@Success		201		{object}	rostersdk.Employee
//	@Failure		400		{object}	rostersdk.ErrorResponse	"validation_error"
//	@Failure		401		{object}	rostersdk.ErrorResponse	"unauthorized"
//	@Failure		409		{object}	rostersdk.ErrorResponse	"duplicate dni"
//	@Router			/api/v1/employees [post].
func (h *EmployeesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	e, err := decodeEmployee(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.EmployeeService.Create(r.Context(), e)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toEmployeeResponse(created))
}

// HandleList handles GET /api/v1/employees
//
//	@Summary		List employees
//	@Tags			Employees
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		rostersdk.Employee
//	@Failure		401	{object}	rostersdk.ErrorResponse	"unauthorized"
//	@Router			/api/v1/employees [get].
func (h *EmployeesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.EmployeeService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]rostersdk.Employee, 0, len(list))
	for _, e := range list {
		resp = append(resp, toEmployeeResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/v1/employees/{id}
//
//	@Summary		Get employee
//	@Tags			Employees
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"employee id"
//	@Success		200	{object}	rostersdk.Employee
//	@Failure		404	{object}	rostersdk.ErrorResponse	"not_found"
//	@Router			/api/v1/employees/{id} [get].
func (h *EmployeesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	e, err := h.EmployeeService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEmployeeResponse(e))
}

// HandleListWithOffices handles GET /api/v1/employees/withOffices
//
//	@Summary		List employees with office names
//	@Tags			Employees
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		rostersdk.EmployeeWithOffices
//	@Failure		401	{object}	rostersdk.ErrorResponse	"unauthorized"
//	@Router			/api/v1/employees/withOffices [get].
func (h *EmployeesHandler) HandleListWithOffices(w http.ResponseWriter, r *http.Request) {
	resp := []rostersdk.EmployeeWithOffices{}
	for e, err := range h.EmployeeService.ListWithOffices(r.Context()) {
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp = append(resp, toWithOfficesResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGetWithOffices handles GET /api/v1/employees/{id}/withOffices
//
//	@Summary		Get employee with office names
//	@Tags			Employees
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"employee id"
//	@Success		200	{object}	rostersdk.EmployeeWithOffices
//	@Failure		404	{object}	rostersdk.ErrorResponse	"not_found"
//	@Router			/api/v1/employees/{id}/withOffices [get].
func (h *EmployeesHandler) HandleGetWithOffices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	e, err := h.EmployeeService.GetWithOffices(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWithOfficesResponse(e))
}

// HandleGetOffices handles GET /api/v1/employees/{id}/offices
//
//	@Summary		Get employee office ids
//	@Description	Returns the employee with the raw ids of its assigned offices.
//	@Tags			Employees
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"employee id"
//	@Success		200	{object}	rostersdk.EmployeeOffices
//	@Failure		404	{object}	rostersdk.ErrorResponse	"not_found"
//	@Router			/api/v1/employees/{id}/offices [get].
func (h *EmployeesHandler) HandleGetOffices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.EmployeeService.GetAssignment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ids := a.OfficeIDs
	if ids == nil {
		ids = []int64{}
	}
	httpx.WriteJSON(w, http.StatusOK, rostersdk.EmployeeOffices{
		Employee:  toEmployeeResponse(a.Employee),
		OfficeIDs: ids,
	})
}

// HandleUpdate handles PUT /api/v1/employees/{id}
//
//	@Summary		Update employee
//	@Description	Overwrites every field of the employee.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"employee id"
//	@Param			request	body		rostersdk.EmployeeRequest	true	"employee"
//	@Success		200		{object}	rostersdk.Employee
//	@Failure		400		{object}	rostersdk.ErrorResponse	"validation_error"
//	@Failure		404		{object}	rostersdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	rostersdk.ErrorResponse	"duplicate dni"
//	@Router			/api/v1/employees/{id} [put].
func (h *EmployeesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	e, err := decodeEmployee(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.EmployeeService.Update(r.Context(), id, e)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEmployeeResponse(updated))
}

// HandleDelete handles DELETE /api/v1/employees/{id}
//
//	@Summary		Delete employee
//	@Tags			Employees
//	@Security		BearerAuth
//	@Param			id	path	int	true	"employee id"
//	@Success		204
//	@Router			/api/v1/employees/{id} [delete].
func (h *EmployeesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.EmployeeService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAssignOffices handles PATCH /api/v1/employees/{id}/assignOffices
//
//	@Summary		Assign offices
//	@Description	Replaces the employee's office links with the given ids. An empty array clears them.
//	@Tags			Employees
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	int		true	"employee id"
//	@Param			request	body	[]int64	true	"office ids"
//	@Success		204
//	@Failure		400	{object}	rostersdk.ErrorResponse	"validation_error or unknown_reference"
//	@Router			/api/v1/employees/{id}/assignOffices [patch].
func (h *EmployeesHandler) HandleAssignOffices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var ids []int64
	if err := httpx.DecodeJSON(w, r, &ids); err != nil {
		writeError(w, r, invalidBody(err))
		return
	}
	if ids == nil {
		writeError(w, r, domain.Validation(map[string]string{"body": "must be an array of office ids"}))
		return
	}

	if err := h.AssignmentService.Assign(r.Context(), id, ids); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
