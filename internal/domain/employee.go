package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrPercentOutOfRange = errors.New("percent must be a finite number not below -100")
)

// Employee is the sample record used throughout the demos.
// Salary is the only field that changes after construction.
type Employee struct {
	id     int
	name   string
	salary float64
}

func NewEmployee(id int, name string, salary float64) *Employee {
	return &Employee{id: id, name: name, salary: salary}
}

func (e *Employee) ID() int { return e.id }
func (e *Employee) Name() string { return e.name }
func (e *Employee) Salary() float64 { return e.salary }

// SalaryIncrement raises the salary by percent in place. Negative values
// lower it, -100 zeroes it and anything below -100 makes it negative.
func (e *Employee) SalaryIncrement(percent float64) {
	e.salary = applyPercent(e.salary, percent)
}

// WithSalaryIncrement returns a copy with the increment applied.
func (e Employee) WithSalaryIncrement(percent float64) Employee {
	e.salary = applyPercent(e.salary, percent)
	return e
}

// salary*(1+percent/100) with a single rounding step, so 0% is exact,
// -100% lands on 0 and 10% of 100000 is exactly 110000.
func applyPercent(salary, percent float64) float64 {
	return math.FMA(salary, percent/100, salary)
}

// ValidatePercent rejects increments that would drive a salary negative or
// make it non-finite.
func ValidatePercent(percent float64) error {
	if !(percent >= -100) || math.IsInf(percent, 0) {
		return fmt.Errorf("%w: got %v", ErrPercentOutOfRange, percent)
	}
	return nil
}

func (e *Employee) String() string {
	return "Employee [empId=" + strconv.Itoa(e.id) +
		", name=" + e.name +
		", salary=" + FormatSalary(e.salary) + "]"
}

// FormatSalary prints a salary with at least one fractional digit: 110000.0, 1234.56.
func FormatSalary(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func CompareByName(a, b *Employee) int {
	return strings.Compare(a.name, b.name)
}

func CompareBySalary(a, b *Employee) int {
	switch {
	case a.salary < b.salary:
		return -1
	case a.salary > b.salary:
		return 1
	}
	return 0
}

// SampleEmployees returns a fresh copy of the demo roster on every call.
func SampleEmployees() []*Employee {
	return []*Employee{
		NewEmployee(1, "ABC EFG", 100000.0),
		NewEmployee(2, "HIJ KLM", 200000.0),
		NewEmployee(3, "NOP QRS", 300000.0),
	}
}
