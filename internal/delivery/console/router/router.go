package router

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

type HandlerFunc func(w io.Writer) error

// SectionRouter keeps demo sections in registration order and runs them by key.
type SectionRouter struct {
	handlers map[string]HandlerFunc
	order    []string
	log      *zap.Logger
}

type ErrUnknownSection struct {
	Key string
}

func (e ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown demo section %q", e.Key)
}

func New(log *zap.Logger) *SectionRouter {
	if log == nil {
		log = zap.NewNop()
	}
	return &SectionRouter{handlers: make(map[string]HandlerFunc), log: log}
}

// Register adds a section. Registering the same key twice replaces the
// handler but keeps the original position.
func (r *SectionRouter) Register(key string, h HandlerFunc) {
	key = strings.ToLower(key)
	if _, ok := r.handlers[key]; !ok {
		r.order = append(r.order, key)
	}
	r.handlers[key] = h
}

func (r *SectionRouter) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *SectionRouter) Dispatch(w io.Writer, key string) (bool, error) {
	h, ok := r.handlers[strings.ToLower(key)]
	if !ok {
		return false, nil
	}
	r.log.Debug("running section", zap.String("section", key))
	return true, h(w)
}

// Run executes the selected sections in registration order, or all of them
// when keys is empty. Unknown keys are rejected before anything runs.
func (r *SectionRouter) Run(w io.Writer, keys []string) error {
	selected := make(map[string]bool, len(keys))
	for _, k := range keys {
		k = strings.ToLower(k)
		if _, ok := r.handlers[k]; !ok {
			return ErrUnknownSection{Key: k}
		}
		selected[k] = true
	}
	for _, k := range r.order {
		if len(selected) > 0 && !selected[k] {
			continue
		}
		if _, err := r.Dispatch(w, k); err != nil {
			return fmt.Errorf("section %s: %w", k, err)
		}
	}
	return nil
}
