// Package custom implements a workflow for special orders.
package custom

import (
	"github.com/micromdm/nanostep/workflow"
	"github.com/micromdm/nanostep/workflow/steps"
)

// DefaultWorkflowName is the reverse-DNS name used unless [WithName] is given.
const DefaultWorkflowName = "io.micromdm.wf.custom.v1"

// Factory creates special order workflow steps.
type Factory struct {
	name string
}

// Options configure [Factory].
type Option func(*Factory)

// WithName names the workflow. By default [DefaultWorkflowName] is used.
func WithName(name string) Option {
	return func(f *Factory) {
		f.name = name
	}
}

// New creates a new [Factory].
func New(opts ...Option) *Factory {
	f := &Factory{name: DefaultWorkflowName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the name of f.
func (f *Factory) Name() string {
	return f.name
}

// NewSteps prepares the special order and then notifies the customer.
func (f *Factory) NewSteps() []workflow.Step {
	return []workflow.Step{
		steps.PrepareSpecialOrder{},
		steps.NotifyCustomer{},
	}
}
