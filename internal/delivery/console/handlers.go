package console

import (
	"io"

	"employee-demos/internal/app/service"
	"employee-demos/internal/delivery/console/flows"
	"employee-demos/internal/delivery/console/router"

	"go.uber.org/zap"
)

type Handler struct {
	Out          io.Writer
	Employees    *service.EmployeeService
	RaisePercent float64
	Log          *zap.Logger
	router       *router.SectionRouter
}

// Register builds the section router. The salary sections run before the
// read-only ones, which therefore see the raised salaries.
func (h *Handler) Register() {
	if h.Log == nil {
		h.Log = zap.NewNop()
	}
	h.router = router.New(h.Log)
	flows.RegisterCreation(h.router)
	flows.RegisterSalary(h.router, h.Employees, h.RaisePercent)
	flows.RegisterStream(h.router, h.Employees)
}

func (h *Handler) Sections() []string {
	return h.router.Keys()
}

// Run executes the named sections, or every section when none are named.
func (h *Handler) Run(sections []string) error {
	h.Log.Info("running demo", zap.Strings("sections", sections))
	if err := h.router.Run(h.Out, sections); err != nil {
		h.Log.Error("demo failed", zap.Error(err))
		return err
	}
	return nil
}
