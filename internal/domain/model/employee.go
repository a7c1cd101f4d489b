package model

import "time"

// Employee is one entry of the employee reference catalog.
type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Department string
	Position   string
	HireDate   time.Time
	Status     string
}
