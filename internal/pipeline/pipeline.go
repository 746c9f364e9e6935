// Package pipeline runs an ordered list of named steps over a shared context.
package pipeline

import "fmt"

// Observer is notified with a step's name just before that step runs.
type Observer func(step string)

type step[C any] struct {
	name string
	fn   func(C) error
}

// Pipeline orchestrates the sequential execution of registered steps. Steps
// mutate the shared context; the first failing step halts the run.
type Pipeline[C any] struct {
	name     string
	steps    []step[C]
	observer Observer
}

// New returns an empty pipeline with the given name. The name appears in
// errors so a caller can tell which pipeline failed.
func New[C any](name string) *Pipeline[C] {
	return &Pipeline[C]{name: name}
}

// Add appends a named step.
func (p *Pipeline[C]) Add(name string, fn func(C) error) {
	p.steps = append(p.steps, step[C]{name: name, fn: fn})
}

// OnStep registers an observer for step progress. A nil observer disables
// reporting.
func (p *Pipeline[C]) OnStep(fn Observer) {
	p.observer = fn
}

// Execute runs all steps in order, passing the shared context to each.
// An error returned by any step stops execution and is wrapped with the
// pipeline and step names for easier debugging.
func (p *Pipeline[C]) Execute(ctx C) error {
	for _, st := range p.steps {
		if p.observer != nil {
			p.observer(st.name)
		}
		if err := st.fn(ctx); err != nil {
			return fmt.Errorf("%s: %s step failed: %w", p.name, st.name, err)
		}
	}
	return nil
}
