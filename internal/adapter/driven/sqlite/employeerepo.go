package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/sapdash/internal/domain/model"
	"github.com/ericfisherdev/sapdash/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.EmployeeStore = (*EmployeeRepo)(nil)

// EmployeeRepo is the SQLite implementation of the EmployeeStore port interface.
type EmployeeRepo struct {
	db *DB
}

// NewEmployeeRepo creates a new EmployeeRepo backed by the given DB.
func NewEmployeeRepo(db *DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// ListAll returns all employees ordered by ID.
func (r *EmployeeRepo) ListAll(ctx context.Context) ([]model.Employee, error) {
	const query = `SELECT id, first_name, last_name, email, department, position, hire_date, status
		FROM employees ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

// GetByID returns a single employee, or (nil, nil) if no row exists.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	const query = `SELECT id, first_name, last_name, email, department, position, hire_date, status
		FROM employees WHERE id = ?`

	row := r.db.Reader.QueryRowContext(ctx, query, id)
	employee, err := scanEmployee(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &employee, nil
}

// scanEmployee reads one employee row via the given scan function.
func scanEmployee(scan func(dest ...any) error) (model.Employee, error) {
	var employee model.Employee
	var hireDate string

	if err := scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Department,
		&employee.Position,
		&hireDate,
		&employee.Status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Employee{}, err
		}
		return model.Employee{}, fmt.Errorf("scan employee: %w", err)
	}

	parsed, err := parseTime(hireDate)
	if err != nil {
		return model.Employee{}, fmt.Errorf("parse hire_date: %w", err)
	}
	employee.HireDate = parsed

	return employee, nil
}
