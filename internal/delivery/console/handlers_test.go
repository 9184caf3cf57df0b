package console

import (
	"bytes"
	"testing"

	"employee-demos/internal/app/service"
	"employee-demos/internal/delivery/console/router"
	"employee-demos/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	rows []*domain.Employee
}

func (r *stubRepo) GetAllEmployees() ([]*domain.Employee, error) {
	out := make([]*domain.Employee, len(r.rows))
	for i, e := range r.rows {
		out[i] = domain.NewEmployee(e.ID(), e.Name(), e.Salary())
	}
	return out, nil
}

func (r *stubRepo) GetEmployeeByID(id int) (*domain.Employee, error) {
	for _, e := range r.rows {
		if e.ID() == id {
			return domain.NewEmployee(e.ID(), e.Name(), e.Salary()), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubRepo) CreateOrUpdateEmployee(e *domain.Employee) error {
	for i, row := range r.rows {
		if row.ID() == e.ID() {
			r.rows[i] = domain.NewEmployee(e.ID(), e.Name(), e.Salary())
			return nil
		}
	}
	r.rows = append(r.rows, domain.NewEmployee(e.ID(), e.Name(), e.Salary()))
	return nil
}

func (r *stubRepo) SaveAll(employees []*domain.Employee) error {
	for _, e := range employees {
		if err := r.CreateOrUpdateEmployee(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubRepo) ReplaceAll(employees []*domain.Employee) error {
	r.rows = nil
	return r.SaveAll(employees)
}

func (r *stubRepo) DeleteEmployee(id int) error { return nil }

func (r *stubRepo) CountEmployees() (int, error) { return len(r.rows), nil }

func newHandler(out *bytes.Buffer) *Handler {
	h := &Handler{
		Out:          out,
		Employees:    service.NewEmployeeService(&stubRepo{rows: domain.SampleEmployees()}, nil),
		RaisePercent: 10,
	}
	h.Register()
	return h
}

func TestHandler_RunAll(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	require.NoError(t, h.Run(nil))

	got := out.String()
	assert.Contains(t, got, "Average Salary : 220000.0")
	assert.Contains(t, got, "Sum of salaries : 660000.0")
	assert.Contains(t, got, "Employee Names : ABC EFG, HIJ KLM, NOP QRS")
	assert.Contains(t, got, "Even integer list : [2, 4, 10]")
	assert.Contains(t, got, "Max odd integer : 13")
	assert.Contains(t, got, "All Even : false")
	assert.Contains(t, got, "takeWhile unordered : [f, a, h]")
	assert.Contains(t, got, "Count of nil : 0")
	assert.Contains(t, got, "First : Employee [empId=2, name=HIJ KLM, salary=220000.0]")
}

func TestHandler_SectionOrder(t *testing.T) {
	h := newHandler(&bytes.Buffer{})

	keys := h.Sections()

	require.NotEmpty(t, keys)
	assert.Equal(t, "creation", keys[0])
	assert.Equal(t, "foreach", keys[1])
	assert.Contains(t, keys, "methodref")
}

func TestHandler_RunSelected(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	require.NoError(t, h.Run([]string{"reduce"}))

	assert.Contains(t, out.String(), "Sum of salaries : 600000.0")
	assert.NotContains(t, out.String(), "forEach")
}

func TestHandler_UnknownSection(t *testing.T) {
	h := newHandler(&bytes.Buffer{})

	err := h.Run([]string{"lambda"})

	assert.ErrorAs(t, err, &router.ErrUnknownSection{})
}
