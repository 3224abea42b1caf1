package rostersdk

import (
	"context"
	"fmt"
	"net/http"
)

// Session performs calls authenticated with a bearer token.
type Session struct {
	client *Client
	token  string
}

func (s *Session) Token() string { return s.token }

func (s *Session) call(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	resp, err := s.client.do(ctx, method, path, s.token, in)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expectedStatus)
}

// ============================================================================
// Employees
// ============================================================================

func (s *Session) CreateEmployee(ctx context.Context, req EmployeeRequest) (*Employee, error) {
	var out Employee
	if err := s.call(ctx, http.MethodPost, "/api/v1/employees", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := s.call(ctx, http.MethodGet, "/api/v1/employees", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var out Employee
	if err := s.call(ctx, http.MethodGet, fmt.Sprintf("/api/v1/employees/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateEmployee(ctx context.Context, id int64, req EmployeeRequest) (*Employee, error) {
	var out Employee
	path := fmt.Sprintf("/api/v1/employees/%d", id)
	if err := s.call(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteEmployee(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/employees/%d", id), nil, nil, http.StatusNoContent)
}

func (s *Session) GetEmployeeWithOffices(ctx context.Context, id int64) (*EmployeeWithOffices, error) {
	var out EmployeeWithOffices
	path := fmt.Sprintf("/api/v1/employees/%d/withOffices", id)
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListEmployeesWithOffices(ctx context.Context) ([]EmployeeWithOffices, error) {
	var out []EmployeeWithOffices
	if err := s.call(ctx, http.MethodGet, "/api/v1/employees/withOffices", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetEmployeeOffices(ctx context.Context, id int64) (*EmployeeOffices, error) {
	var out EmployeeOffices
	path := fmt.Sprintf("/api/v1/employees/%d/offices", id)
	if err := s.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignOffices replaces the employee's assigned offices with officeIDs. An
// empty slice clears them.
func (s *Session) AssignOffices(ctx context.Context, employeeID int64, officeIDs []int64) error {
	if officeIDs == nil {
		officeIDs = []int64{}
	}
	path := fmt.Sprintf("/api/v1/employees/%d/assignOffices", employeeID)
	return s.call(ctx, http.MethodPatch, path, officeIDs, nil, http.StatusNoContent)
}

// ============================================================================
// Offices
// ============================================================================

func (s *Session) CreateOffice(ctx context.Context, req OfficeRequest) (*Office, error) {
	var out Office
	if err := s.call(ctx, http.MethodPost, "/api/v1/offices", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetOffice(ctx context.Context, id int64) (*Office, error) {
	var out Office
	if err := s.call(ctx, http.MethodGet, fmt.Sprintf("/api/v1/offices/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListOffices(ctx context.Context) ([]Office, error) {
	var out []Office
	if err := s.call(ctx, http.MethodGet, "/api/v1/offices", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) UpdateOffice(ctx context.Context, id int64, req OfficeRequest) (*Office, error) {
	var out Office
	if err := s.call(ctx, http.MethodPut, fmt.Sprintf("/api/v1/offices/%d", id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteOffice(ctx context.Context, id int64) error {
	return s.call(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/offices/%d", id), nil, nil, http.StatusNoContent)
}
