package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/UnknownOlympus/athena/internal/models"
)

const listEmployeesQuery = `
	SELECT e.id, e.code, e.first_name, e.last_name, e.email, e.phone, e.address,
	       d.code IS NOT NULL, COALESCE(d.code, ''), COALESCE(d.description, '')
	FROM employees e
	LEFT JOIN departments d ON d.code = e.department_code
	WHERE ($1 = '' OR e.first_name ILIKE $1)
	  AND ($2 = '' OR e.last_name ILIKE $2)
	ORDER BY e.last_name, e.first_name, e.id;
`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a filter value into an ILIKE substring pattern; empty stays empty.
func containsPattern(value string) string {
	if value == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(value) + "%"
}

func (r *Repository) observe(queryType string, startTime time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}

// ListEmployees returns employees whose first and last names contain the given filters,
// case-insensitively. Empty filters match everything.
func (r *Repository) ListEmployees(ctx context.Context, filters models.Filters) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	rows, err := r.db.Query(ctx, listEmployeesQuery,
		containsPattern(filters.FirstName), containsPattern(filters.LastName))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var (
			employee      models.Employee
			hasDepartment bool
			department    models.Department
		)

		if err = rows.Scan(
			&employee.ID, &employee.Code, &employee.FirstName, &employee.LastName,
			&employee.Email, &employee.Phone, &employee.Address,
			&hasDepartment, &department.Code, &department.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}

		if hasDepartment {
			employee.Department = &department
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// SaveEmployee upserts an employee by its code and returns the stored identifier.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.Employee) (int, error) {
	defer r.observe("save_employee", time.Now())

	query := `
		INSERT INTO employees (code, first_name, last_name, email, phone, address, department_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO UPDATE
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6, department_code = $7,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING id;
	`

	var departmentCode *string
	if employee.Department != nil {
		departmentCode = &employee.Department.Code
	}

	var identifier int
	err := r.db.QueryRow(ctx, query,
		employee.Code, employee.FirstName, employee.LastName, employee.Email,
		employee.Phone, employee.Address, departmentCode,
	).Scan(&identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to save employee: %w", err)
	}

	return identifier, nil
}

// SaveDepartment upserts a department by its code.
func (r *Repository) SaveDepartment(ctx context.Context, department models.Department) error {
	defer r.observe("save_department", time.Now())

	query := `
		INSERT INTO departments (code, description)
		VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET description = $2;
	`

	_, err := r.db.Exec(ctx, query, department.Code, department.Description)
	if err != nil {
		return fmt.Errorf("failed to save department: %w", err)
	}

	return nil
}
