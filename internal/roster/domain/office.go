package domain

type Office struct {
	ID       int64
	Name     string
	Location string
}

// EmployeeOffice links an employee to an office. The pair is its identity.
type EmployeeOffice struct {
	EmployeeID int64
	OfficeID   int64
}
