package domain

type EmployeeRepo interface {
	GetAllEmployees() ([]*Employee, error)
	GetEmployeeByID(id int) (*Employee, error)
	CreateOrUpdateEmployee(e *Employee) error
	// SaveAll and ReplaceAll either store every employee or nothing.
	SaveAll(employees []*Employee) error
	ReplaceAll(employees []*Employee) error
	DeleteEmployee(id int) error
	CountEmployees() (int, error)
}
