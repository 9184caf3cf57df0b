package flows

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"employee-demos/internal/app/service"
	"employee-demos/internal/delivery/console/render"
	"employee-demos/internal/delivery/console/router"
	"employee-demos/internal/domain"
	"employee-demos/pkg/stream"

	"github.com/samber/lo"
)

var (
	duplicated = []int{2, 5, 3, 2, 4, 3}
	mixed      = []int{2, 3, 4, 7, 10}
	mixedLong  = []int{2, 3, 4, 7, 10, 13}
	letters    = strings.Split("abcdefghi", "")
	shuffled   = []string{"f", "a", "h", "d", "e", "d", "b", "k", "i"}
	people     = []string{"Barbara", "james", "Mary", "John", "patricia", "Robert", "Michael", "Linda"}
)

func even(i int) bool { return i%2 == 0 }

func notD(s string) bool { return s != "d" }

// RegisterCreation wires the section that assembles the sample roster by hand.
func RegisterCreation(r *router.SectionRouter) {
	r.Register("creation", func(w io.Writer) error {
		render.Section(w, "creation: builder")
		var b stream.Builder[*domain.Employee]
		for _, e := range domain.SampleEmployees() {
			b.Add(e)
		}
		render.Employees(w, b.Build())
		return nil
	})
}

// RegisterStream wires the read-only sections over the stored roster.
func RegisterStream(r *router.SectionRouter, employees *service.EmployeeService) {
	roster := func() (service.Roster, error) {
		all, err := employees.GetAllEmployees()
		return service.Roster(all), err
	}

	r.Register("flatmap", func(w io.Writer) error {
		render.Section(w, "flatMap")
		nested := [][]string{{"ABC", "EFG"}, {"HIJ", "KLM"}, {"NOP", "QRS"}}
		render.Line(w, "Flattened", render.List(lo.Flatten(nested)))
		all, err := roster()
		if err != nil {
			return err
		}
		render.Line(w, "Name parts", render.List(all.NameParts()))
		return nil
	})

	r.Register("sorted", func(w io.Writer) error {
		render.Section(w, "sorted: name descending")
		all, err := roster()
		if err != nil {
			return err
		}
		render.Employees(w, all.SortedByNameDesc())
		return nil
	})

	r.Register("minmax", func(w io.Writer) error {
		render.Section(w, "min / max by salary")
		all, err := roster()
		if err != nil {
			return err
		}
		lowest, ok := all.LowestPaid().Get()
		if !ok {
			render.Line(w, "Min", "roster is empty")
			return nil
		}
		render.Line(w, "Min", lowest)
		render.Line(w, "Max", all.HighestPaid().MustGet())
		return nil
	})

	r.Register("distinct", func(w io.Writer) error {
		render.Section(w, "distinct")
		render.Line(w, render.List(duplicated), render.List(lo.Uniq(duplicated)))
		return nil
	})

	r.Register("match", func(w io.Writer) error {
		render.Section(w, "allMatch / anyMatch / noneMatch")
		render.Line(w, "All Even", lo.EveryBy(duplicated, even))
		render.Line(w, "At least one Even", lo.SomeBy(duplicated, even))
		render.Line(w, "No multiples of 3", lo.NoneBy(duplicated, func(i int) bool { return i%3 == 0 }))
		return nil
	})

	r.Register("numeric", func(w io.Writer) error {
		render.Section(w, "numeric specializations")
		all, err := roster()
		if err != nil {
			return err
		}
		render.Line(w, "Employee ids", render.List(all.IDs()))
		render.Line(w, "Range 10..19", render.List(lo.RangeFrom(10, 10)))
		render.Line(w, "Average Salary", domain.FormatSalary(all.Average().OrElse(0)))
		return nil
	})

	r.Register("reduce", func(w io.Writer) error {
		render.Section(w, "reduce")
		all, err := roster()
		if err != nil {
			return err
		}
		render.Line(w, "Sum of salaries", domain.FormatSalary(all.Total()))
		return nil
	})

	r.Register("collect", func(w io.Writer) error {
		render.Section(w, "joining / toSet / toList")
		all, err := roster()
		if err != nil {
			return err
		}
		render.Line(w, "Employee Names", all.NameList(", "))
		set := lo.Keys(all.NameSet())
		slices.Sort(set)
		render.Line(w, "Employee Names from a Set", render.List(set))
		render.Line(w, "Employee Names from a List", render.List(all.Names()))
		return nil
	})

	r.Register("stats", func(w io.Writer) error {
		render.Section(w, "summarizing salaries")
		all, err := roster()
		if err != nil {
			return err
		}
		s := all.Stats()
		render.KeyValues(w, [2]string{"statistic", "value"}, [][2]string{
			{"Employee count", fmt.Sprint(s.Count)},
			{"Sum of salaries", domain.FormatSalary(s.Sum)},
			{"Minimum salary", domain.FormatSalary(s.Min)},
			{"Maximum salary", domain.FormatSalary(s.Max)},
			{"Average salary", domain.FormatSalary(s.Average())},
		})
		return nil
	})

	r.Register("partition", func(w io.Writer) error {
		render.Section(w, "partitioningBy even")
		parts := stream.PartitioningBy(mixed, even)
		render.Line(w, "Even integer list", render.List(parts[true]))
		render.Line(w, "Odd integer list", render.List(parts[false]))

		maxes := stream.PartitionReduce(mixedLong, even, func(a, b int) int { return max(a, b) })
		render.Line(w, "Max even integer", maxes[true].OrElse(0))
		render.Line(w, "Max odd integer", maxes[false].OrElse(0))
		return nil
	})

	r.Register("grouping", func(w io.Writer) error {
		render.Section(w, "groupingBy name initial")
		all, err := roster()
		if err != nil {
			return err
		}
		groups := all.GroupByInitial()
		ids := all.IDsByInitial()
		initials := lo.Keys(groups)
		slices.Sort(initials)
		rows := lo.Map(initials, func(c rune, _ int) [2]string {
			return [2]string{string(c), render.List(ids[c])}
		})
		render.KeyValues(w, [2]string{"initial", "empIds"}, rows)
		render.Employees(w, groups['H'])
		return nil
	})

	r.Register("takewhile", func(w io.Writer) error {
		render.Section(w, "takeWhile / dropWhile until \"d\"")
		render.Line(w, "takeWhile ordered", render.List(stream.TakeWhile(letters, notD)))
		render.Line(w, "takeWhile unordered", render.List(stream.TakeWhile(shuffled, notD)))
		render.Line(w, "dropWhile ordered", render.List(stream.DropWhile(letters, notD)))
		render.Line(w, "dropWhile unordered", render.List(stream.DropWhile(shuffled, notD)))
		return nil
	})

	r.Register("iterate", func(w io.Writer) error {
		render.Section(w, "iterate")
		inc := func(i int) int { return i + 1 }
		render.Line(w, "Iterate with limit", render.List(stream.Generate(1, inc, 10)))
		render.Line(w, "Iterate with predicate", render.List(stream.Iterate(1, func(i int) bool { return i <= 10 }, inc)))
		return nil
	})

	r.Register("nullable", func(w io.Writer) error {
		render.Section(w, "ofNullable")
		render.Line(w, "Count of nil", len(stream.OfNullable[domain.Employee](nil)))
		render.Line(w, "Count of value", len(stream.OfNullable(domain.NewEmployee(9, "X", 1))))
		return nil
	})

	r.Register("methodref", func(w io.Writer) error {
		render.Section(w, "comparators as functions")
		all, err := roster()
		if err != nil {
			return err
		}
		byName := slices.Clone(all)
		slices.SortFunc(byName, domain.CompareByName)
		render.Employees(w, byName)
		bySalary := slices.Clone(all)
		slices.SortFunc(bySalary, domain.CompareBySalary)
		render.Employees(w, bySalary)

		names := slices.Clone(people)
		slices.SortFunc(names, func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		})
		render.Line(w, "Case-insensitive", render.List(names))

		hires := lo.Map([]string{"Giant", "Scott", "Trek", "GT"}, func(name string, i int) *domain.Employee {
			return domain.NewEmployee(100+i, name, 0)
		})
		render.Employees(w, hires)
		return nil
	})
}
