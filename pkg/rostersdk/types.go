package rostersdk

import "github.com/aussiebroadwan/roster/pkg/jwtx"

// ErrorResponse is the body of every error returned by the roster API.
type ErrorResponse struct {
	// Error is the machine readable code, e.g. "duplicate" or "not_found".
	Error string `json:"error" example:"unknown_reference"`

	ErrorDescription string `json:"error_description,omitempty" example:"offices not found: [999]"`

	// Details maps request fields to messages for "validation_error".
	Details map[string]string `json:"details,omitempty"`

	// IDs lists the missing ids for "unknown_reference".
	IDs []int64 `json:"ids,omitempty"`
}

// Error codes.
const (
	CodeValidation         = "validation_error"
	CodeDuplicate          = "duplicate"
	CodeUnknownReference   = "unknown_reference"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInternal           = "internal_error"
	CodeUnauthorized       = "unauthorized"
	CodeRateLimited        = "rate_limit_exceeded"
)

// ============================================================================
// Auth
// ============================================================================

// Credentials is the body of a register request.
type Credentials struct {
	Username string `json:"username" validate:"required,max=64" example:"frandelgadillo"`
	Password string `json:"password" validate:"required,min=8,max=128" example:"YourPass2024."`
}

// LoginRequest is the body of a login request. Only presence is checked here;
// anything that does not match a stored account is rejected as invalid
// credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"frandelgadillo"`
	Password string `json:"password" validate:"required" example:"YourPass2024."`
}

type RegisterResponse struct {
	Username string `json:"username" example:"frandelgadillo"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// ============================================================================
// Employees
// ============================================================================

// EmployeeRequest is the body of employee create and update requests.
// BirthDate is formatted YYYY-MM-DD.
type EmployeeRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100" example:"Christian"`
	LastName  string `json:"lastName" validate:"required,max=100" example:"Espinoza"`
	Phone     string `json:"phone" validate:"required,max=9" example:"987654321"`
	DNI       string `json:"dni" validate:"required,max=8" example:"12345678"`
	Address   string `json:"address" validate:"required,max=255" example:"Av. Javier Prado 2020"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02,past" example:"1990-01-01"`
}

type Employee struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"firstName" example:"Christian"`
	LastName  string `json:"lastName" example:"Espinoza"`
	Phone     string `json:"phone" example:"987654321"`
	DNI       string `json:"dni" example:"12345678"`
	Address   string `json:"address" example:"Av. Javier Prado 2020"`
	BirthDate string `json:"birthDate" example:"1990-01-01"`
}

// EmployeeWithOffices is the read view of an employee with the names of the
// offices it is assigned to.
type EmployeeWithOffices struct {
	Employee

	OfficeNames []string `json:"officeNames" example:"Dean Valdivia,Bloom"`
}

// EmployeeOffices is the write-side view of an employee with the raw ids of
// its assigned offices.
type EmployeeOffices struct {
	Employee

	OfficeIDs []int64 `json:"officeIds" example:"1,2,3"`
}

// ============================================================================
// Offices
// ============================================================================

type OfficeRequest struct {
	Name     string `json:"name" validate:"required,max=100" example:"Dean Valdivia"`
	Location string `json:"location" validate:"required,max=255" example:"San Isidro, Lima"`
}

type Office struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Dean Valdivia"`
	Location string `json:"location" example:"San Isidro, Lima"`
}

// ============================================================================
// System
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database" example:"ok"`
	Signer   string `json:"signer" example:"ok"`
}

// JWKSResponse is the public key set served at /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS
