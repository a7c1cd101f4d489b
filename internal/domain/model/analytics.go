package model

// RevenuePoint is one month of revenue for the analytics dashboard.
type RevenuePoint struct {
	Month string
	Value int64
}

// DepartmentShare is one department's percentage slice of headcount spend.
type DepartmentShare struct {
	Name       string
	Percentage int
}
