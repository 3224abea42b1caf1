package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this
// and expose one sub-repository per record collection. A Tx-scoped Store
// refuses to open a nested transaction.
type Store interface {
	Employees() Employees
	Offices() Offices
	Assignments() Assignments
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Employees interface {
	// CreateEmployee inserts e and returns it with the id assigned by the store.
	// Returns ErrAlreadyExists if the dni is taken.
	CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error)

	GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error)
	GetEmployeeByDNI(ctx context.Context, dni string) (domain.Employee, error)
	ExistsEmployee(ctx context.Context, id int64) (bool, error)

	// ListEmployees returns every employee ordered by id.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// UpdateEmployee overwrites every field of the employee with e.ID.
	// Returns ErrNotFound if no row matched.
	UpdateEmployee(ctx context.Context, e domain.Employee) error

	// DeleteEmployee removes the employee. Deleting a missing id is not an error.
	DeleteEmployee(ctx context.Context, id int64) error
}

type Offices interface {
	CreateOffice(ctx context.Context, o domain.Office) (domain.Office, error)
	GetOfficeByID(ctx context.Context, id int64) (domain.Office, error)
	ListOffices(ctx context.Context) ([]domain.Office, error)

	// ListOfficesByIDs returns the offices whose id is in ids. Missing ids are
	// simply absent from the result.
	ListOfficesByIDs(ctx context.Context, ids []int64) ([]domain.Office, error)

	// UpdateOffice returns ErrNotFound if no row matched.
	UpdateOffice(ctx context.Context, o domain.Office) error

	// DeleteOffice does not touch employee_office rows that reference the office.
	DeleteOffice(ctx context.Context, id int64) error
}

// Assignments holds the employee/office links.
type Assignments interface {
	ListAssignmentsByEmployee(ctx context.Context, employeeID int64) ([]domain.EmployeeOffice, error)
	CreateAssignment(ctx context.Context, a domain.EmployeeOffice) error
	DeleteAssignmentsByEmployee(ctx context.Context, employeeID int64) error

	// CountDanglingAssignments counts links whose office no longer exists.
	CountDanglingAssignments(ctx context.Context) (int64, error)
}

type Users interface {
	// CreateUser inserts u and returns it with its id and creation time.
	// Returns ErrAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}
