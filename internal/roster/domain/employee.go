package domain

import "time"

type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string // at most 9 characters
	DNI       string // national id, at most 8 characters, unique
	Address   string
	BirthDate time.Time
}

// EmployeeWithOffices is the read view of an employee: its fields plus the
// names of the offices it is linked to.
type EmployeeWithOffices struct {
	Employee
	OfficeNames []string
}

// EmployeeAssignment is the write-side view of an employee: its fields plus
// the raw ids of the offices it is linked to.
type EmployeeAssignment struct {
	Employee
	OfficeIDs []int64
}
