package flows

import (
	"fmt"
	"io"

	"employee-demos/internal/app/service"
	"employee-demos/internal/delivery/console/render"
	"employee-demos/internal/delivery/console/router"
)

// lookupIDs deliberately includes an id that does not exist.
var lookupIDs = []int{2, 3, 4}

// RegisterSalary wires the sections that touch stored employees.
func RegisterSalary(r *router.SectionRouter, employees *service.EmployeeService, percent float64) {
	r.Register("foreach", func(w io.Writer) error {
		render.Section(w, fmt.Sprintf("forEach: raise every salary by %v%%", percent))
		raised, err := employees.RaiseAll(percent)
		if err != nil {
			return err
		}
		render.Employees(w, raised)
		return nil
	})

	r.Register("map", func(w io.Writer) error {
		render.Section(w, "map: ids "+render.List(lookupIDs)+" to employees")
		found, err := employees.FindByIDs(lookupIDs)
		if err != nil {
			return err
		}
		render.Employees(w, found)
		return nil
	})

	r.Register("filter", func(w io.Writer) error {
		render.Section(w, "filter: salary above 230000")
		found, err := employees.FindByIDs(lookupIDs)
		if err != nil {
			return err
		}
		render.Employees(w, service.Roster(found).SalaryAbove(230000))
		return nil
	})

	r.Register("findfirst", func(w io.Writer) error {
		render.Section(w, "findFirst: salary above 210000")
		found, err := employees.FindByIDs(lookupIDs)
		if err != nil {
			return err
		}
		if e, ok := service.Roster(found).FirstSalaryAbove(210000).Get(); ok {
			render.Line(w, "First", e)
		} else {
			render.Line(w, "First", "none")
		}
		return nil
	})
}
