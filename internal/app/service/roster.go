package service

import (
	"slices"
	"strings"

	"employee-demos/internal/domain"
	"employee-demos/pkg/stream"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Roster answers read-only questions about a set of employees.
// None of its methods modify the employees or the underlying slice.
type Roster []*domain.Employee

func (r Roster) SalaryAbove(threshold float64) []*domain.Employee {
	return lo.Filter(r, func(e *domain.Employee, _ int) bool {
		return e.Salary() > threshold
	})
}

func (r Roster) FirstSalaryAbove(threshold float64) mo.Option[*domain.Employee] {
	return stream.FindFirst(r, func(e *domain.Employee) bool {
		return e.Salary() > threshold
	})
}

func (r Roster) SortedByNameDesc() []*domain.Employee {
	out := slices.Clone(r)
	slices.SortStableFunc(out, func(a, b *domain.Employee) int {
		return domain.CompareByName(b, a)
	})
	return out
}

func (r Roster) SortedBySalary() []*domain.Employee {
	out := slices.Clone(r)
	slices.SortStableFunc(out, domain.CompareBySalary)
	return out
}

func (r Roster) LowestPaid() mo.Option[*domain.Employee] {
	return stream.MinBy(r, domain.CompareBySalary)
}

func (r Roster) HighestPaid() mo.Option[*domain.Employee] {
	return stream.MaxBy(r, domain.CompareBySalary)
}

func (r Roster) IDs() []int {
	return lo.Map(r, func(e *domain.Employee, _ int) int { return e.ID() })
}

func (r Roster) Names() []string {
	return lo.Map(r, func(e *domain.Employee, _ int) string { return e.Name() })
}

func (r Roster) NameList(sep string) string {
	return stream.Joining(r.Names(), sep)
}

func (r Roster) NameSet() map[string]struct{} {
	return stream.ToSet(r.Names())
}

// NameParts flattens every name into its space separated words.
func (r Roster) NameParts() []string {
	return lo.FlatMap(r, func(e *domain.Employee, _ int) []string {
		return strings.Fields(e.Name())
	})
}

// Average is None for an empty roster.
func (r Roster) Average() mo.Option[float64] {
	return stream.Average(r, (*domain.Employee).Salary)
}

func (r Roster) Total() float64 {
	return lo.Reduce(r, func(sum float64, e *domain.Employee, _ int) float64 {
		return sum + e.Salary()
	}, 0.0)
}

func (r Roster) Stats() stream.SummaryStatistics {
	return stream.Summarize(r, (*domain.Employee).Salary)
}

// GroupByInitial keys employees by the first rune of their name. Employees
// with an empty name are grouped under the zero rune.
func (r Roster) GroupByInitial() map[rune][]*domain.Employee {
	return lo.GroupBy(r, initial)
}

func (r Roster) IDsByInitial() map[rune][]int {
	return stream.GroupingMapping(r, initial, (*domain.Employee).ID)
}

func initial(e *domain.Employee) rune {
	for _, c := range e.Name() {
		return c
	}
	return 0
}
