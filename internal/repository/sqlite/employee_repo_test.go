package sqlite_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"employee-demos/internal/domain"
	"employee-demos/internal/repository/sqlite"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*sqlite.SqliteEmployeeRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlite.NewSqliteEmployeeRepo(db), mock
}

var (
	updateQuery = regexp.QuoteMeta(`UPDATE employees SET name = ?, salary = ? WHERE id = ?`)
	insertQuery = regexp.QuoteMeta(`INSERT INTO employees (id, name, salary) VALUES (?, ?, ?)`)
)

func TestSqliteEmployeeRepo_CreateOrUpdateEmployee(t *testing.T) {
	e := domain.NewEmployee(1, "ABC EFG", 100000)

	t.Run("updates existing row", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectExec(updateQuery).
			WithArgs("ABC EFG", 100000.0, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateOrUpdateEmployee(e))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts when nothing updated", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectExec(updateQuery).
			WithArgs("ABC EFG", 100000.0, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertQuery).
			WithArgs(1, "ABC EFG", 100000.0).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.CreateOrUpdateEmployee(e))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update error", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectExec(updateQuery).WillReturnError(errors.New("db down"))

		assert.EqualError(t, repo.CreateOrUpdateEmployee(e), "db down")
	})
}

func TestSqliteEmployeeRepo_GetAllEmployees(t *testing.T) {
	repo, mock := setupRepo(t)
	rows := sqlmock.NewRows([]string{"id", "name", "salary"}).
		AddRow(1, "ABC EFG", 100000.0).
		AddRow(2, "HIJ KLM", 200000.0)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, salary FROM employees ORDER BY id`)).
		WillReturnRows(rows)

	got, err := repo.GetAllEmployees()

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "HIJ KLM", got[1].Name())
	assert.Equal(t, 200000.0, got[1].Salary())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqliteEmployeeRepo_GetEmployeeByID(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT name, salary FROM employees WHERE id = ?`)

	t.Run("found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery(query).WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"name", "salary"}).AddRow("NOP QRS", 300000.0))

		e, err := repo.GetEmployeeByID(3)

		require.NoError(t, err)
		assert.Equal(t, 3, e.ID())
		assert.Equal(t, "NOP QRS", e.Name())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery(query).WithArgs(4).WillReturnError(sql.ErrNoRows)

		e, err := repo.GetEmployeeByID(4)

		assert.Nil(t, e)
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})
}

func TestSqliteEmployeeRepo_DeleteEmployee(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM employees WHERE id = ?`)

	t.Run("deleted", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectExec(query).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteEmployee(2))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectExec(query).WithArgs(9).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteEmployee(9), domain.ErrEmployeeNotFound)
	})
}

func TestSqliteEmployeeRepo_CountEmployees(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM employees`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountEmployees()

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS employees")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, sqlite.Migrate(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqliteEmployeeRepo_ReplaceAll(t *testing.T) {
	deleteAll := regexp.QuoteMeta(`DELETE FROM employees`)

	t.Run("commits", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteAll).WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(updateQuery).WithArgs("ABC EFG", 100000.0, 1).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertQuery).WithArgs(1, "ABC EFG", 100000.0).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ReplaceAll([]*domain.Employee{domain.NewEmployee(1, "ABC EFG", 100000)}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on insert error", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteAll).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(updateQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertQuery).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.ReplaceAll(domain.SampleEmployees())

		assert.EqualError(t, err, "seed employee 1: disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("locked"))

		assert.EqualError(t, repo.ReplaceAll(nil), "locked")
	})
}

func TestSqliteEmployeeRepo_SaveAll(t *testing.T) {
	t.Run("commits", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateQuery).WithArgs("ABC EFG", 100000.0, 1).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateQuery).WithArgs("HIJ KLM", 200000.0, 2).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.SaveAll(domain.SampleEmployees()[:2]))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateQuery).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateQuery).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.SaveAll(domain.SampleEmployees())

		assert.EqualError(t, err, "save employee 2: disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
