package render

import (
	"bytes"
	"testing"

	"employee-demos/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEmployees(t *testing.T) {
	var buf bytes.Buffer

	Employees(&buf, domain.SampleEmployees())

	out := buf.String()
	assert.Contains(t, out, "empId")
	assert.Contains(t, out, "ABC EFG")
	assert.Contains(t, out, "300000.0")
}

func TestSectionAndLine(t *testing.T) {
	var buf bytes.Buffer

	Section(&buf, "reduce")
	Line(&buf, "Sum of salaries", domain.FormatSalary(600000))

	assert.Contains(t, buf.String(), "=== reduce ===")
	assert.Contains(t, buf.String(), "Sum of salaries : 600000.0\n")
}

func TestList(t *testing.T) {
	assert.Equal(t, "[2, 5, 3]", List([]int{2, 5, 3}))
	assert.Equal(t, "[]", List([]string{}))
}

func TestKeyValues(t *testing.T) {
	var buf bytes.Buffer

	KeyValues(&buf, [2]string{"initial", "ids"}, [][2]string{{"H", "[2]"}})

	assert.Contains(t, buf.String(), "initial")
	assert.Contains(t, buf.String(), "[2]")
}
