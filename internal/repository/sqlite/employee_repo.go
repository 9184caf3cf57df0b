package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"employee-demos/internal/domain"
)

type SqliteEmployeeRepo struct {
	db *sql.DB
}

func NewSqliteEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func upsertEmployee(ex execer, e *domain.Employee) error {
	res, err := ex.Exec(`UPDATE employees SET name = ?, salary = ? WHERE id = ?`, e.Name(), e.Salary(), e.ID())
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		_, err = ex.Exec(`INSERT INTO employees (id, name, salary) VALUES (?, ?, ?)`, e.ID(), e.Name(), e.Salary())
		return err
	}
	return nil
}

func (r *SqliteEmployeeRepo) CreateOrUpdateEmployee(e *domain.Employee) error {
	return upsertEmployee(r.db, e)
}

// SaveAll stores every employee in one transaction. On error nothing is written.
func (r *SqliteEmployeeRepo) SaveAll(employees []*domain.Employee) error {
	return r.inTx(func(tx *sql.Tx) error {
		for _, e := range employees {
			if err := upsertEmployee(tx, e); err != nil {
				return fmt.Errorf("save employee %d: %w", e.ID(), err)
			}
		}
		return nil
	})
}

// ReplaceAll swaps the whole roster for employees in one transaction. On
// error the previous roster is kept.
func (r *SqliteEmployeeRepo) ReplaceAll(employees []*domain.Employee) error {
	return r.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM employees`); err != nil {
			return err
		}
		for _, e := range employees {
			if err := upsertEmployee(tx, e); err != nil {
				return fmt.Errorf("seed employee %d: %w", e.ID(), err)
			}
		}
		return nil
	})
}

func (r *SqliteEmployeeRepo) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *SqliteEmployeeRepo) GetAllEmployees() ([]*domain.Employee, error) {
	rows, err := r.db.Query(`SELECT id, name, salary FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		var (
			id     int
			name   string
			salary float64
		)
		if err := rows.Scan(&id, &name, &salary); err != nil {
			return nil, err
		}
		employees = append(employees, domain.NewEmployee(id, name, salary))
	}
	return employees, rows.Err()
}

func (r *SqliteEmployeeRepo) GetEmployeeByID(id int) (*domain.Employee, error) {
	var (
		name   string
		salary float64
	)
	err := r.db.QueryRow(`SELECT name, salary FROM employees WHERE id = ?`, id).Scan(&name, &salary)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return domain.NewEmployee(id, name, salary), nil
}

func (r *SqliteEmployeeRepo) DeleteEmployee(id int) error {
	res, err := r.db.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *SqliteEmployeeRepo) CountEmployees() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&n)
	return n, err
}
