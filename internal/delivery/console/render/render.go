package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"employee-demos/internal/domain"

	"github.com/olekukonko/tablewriter"
)

func Section(w io.Writer, title string) {
	line := strings.Repeat("=", len(title)+8)
	fmt.Fprintf(w, "\n%s\n=== %s ===\n%s\n", line, title, line)
}

// Employees prints employees as a table. An empty slice still prints the header.
func Employees(w io.Writer, employees []*domain.Employee) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"empId", "name", "salary"})
	table.SetAutoFormatHeaders(false)
	for _, e := range employees {
		table.Append([]string{strconv.Itoa(e.ID()), e.Name(), domain.FormatSalary(e.Salary())})
	}
	table.Render()
}

// KeyValues prints label/value pairs as a two column table.
func KeyValues(w io.Writer, header [2]string, rows [][2]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header[:])
	table.SetAutoFormatHeaders(false)
	for _, r := range rows {
		table.Append(r[:])
	}
	table.Render()
}

// Line prints "label : value".
func Line(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s : %v\n", label, value)
}

// List formats xs as [a, b, c].
func List[T any](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
