package service

import (
	"errors"
	"fmt"

	"employee-demos/internal/domain"

	"go.uber.org/zap"
)

type EmployeeService struct {
	Repo domain.EmployeeRepo
	Log  *zap.Logger
}

func NewEmployeeService(repo domain.EmployeeRepo, log *zap.Logger) *EmployeeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmployeeService{Repo: repo, Log: log}
}

func (s *EmployeeService) CreateOrUpdateEmployee(e *domain.Employee) error {
	return s.Repo.CreateOrUpdateEmployee(e)
}

func (s *EmployeeService) GetAllEmployees() ([]*domain.Employee, error) {
	return s.Repo.GetAllEmployees()
}

func (s *EmployeeService) GetEmployeeByID(id int) (*domain.Employee, error) {
	return s.Repo.GetEmployeeByID(id)
}

// FindByIDs looks every id up and keeps only the ones that exist, in the
// order requested.
func (s *EmployeeService) FindByIDs(ids []int) ([]*domain.Employee, error) {
	found := make([]*domain.Employee, 0, len(ids))
	for _, id := range ids {
		e, err := s.Repo.GetEmployeeByID(id)
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			s.Log.Debug("employee lookup missed", zap.Int("id", id))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get employee %d: %w", id, err)
		}
		found = append(found, e)
	}
	return found, nil
}

// RaiseSalary applies percent to one employee and stores the result.
// Percentages below -100 are rejected before anything is loaded.
func (s *EmployeeService) RaiseSalary(id int, percent float64) (*domain.Employee, error) {
	if err := domain.ValidatePercent(percent); err != nil {
		return nil, err
	}
	e, err := s.Repo.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}
	before := e.Salary()
	e.SalaryIncrement(percent)
	if err := s.Repo.CreateOrUpdateEmployee(e); err != nil {
		return nil, fmt.Errorf("save employee %d: %w", id, err)
	}
	s.Log.Info("salary raised",
		zap.Int("id", id),
		zap.Float64("percent", percent),
		zap.Float64("from", before),
		zap.Float64("to", e.Salary()),
	)
	return e, nil
}

// RaiseAll applies percent to every stored employee and returns the updated roster.
func (s *EmployeeService) RaiseAll(percent float64) ([]*domain.Employee, error) {
	if err := domain.ValidatePercent(percent); err != nil {
		return nil, err
	}
	employees, err := s.Repo.GetAllEmployees()
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		e.SalaryIncrement(percent)
	}
	if err := s.Repo.SaveAll(employees); err != nil {
		return nil, fmt.Errorf("raise salaries: %w", err)
	}
	s.Log.Info("salaries raised", zap.Int("count", len(employees)), zap.Float64("percent", percent))
	return employees, nil
}

// SeedIfEmpty stores employees only when the roster has no rows yet.
// It reports whether anything was written.
func (s *EmployeeService) SeedIfEmpty(employees []*domain.Employee) (bool, error) {
	n, err := s.Repo.CountEmployees()
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.Log.Debug("roster already seeded", zap.Int("count", n))
		return false, nil
	}
	if err := s.Repo.SaveAll(employees); err != nil {
		return false, fmt.Errorf("seed roster: %w", err)
	}
	s.Log.Info("roster seeded", zap.Int("count", len(employees)))
	return true, nil
}

// ResetRoster replaces the stored roster with employees. A failed reset
// leaves the previous roster in place.
func (s *EmployeeService) ResetRoster(employees []*domain.Employee) error {
	if err := s.Repo.ReplaceAll(employees); err != nil {
		return fmt.Errorf("reset roster: %w", err)
	}
	s.Log.Info("roster reset", zap.Int("stored", len(employees)))
	return nil
}
