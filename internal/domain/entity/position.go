package entity

// Position (pozice) of an employee.
type Position struct {
	ID   int64
	Name string
}
