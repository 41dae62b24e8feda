// Package order implements the order processing workflow.
package order

import (
	"github.com/micromdm/nanostep/workflow"
	"github.com/micromdm/nanostep/workflow/steps"
)

// WorkflowName is the reverse-DNS name of the order processing workflow.
const WorkflowName = "io.micromdm.wf.order.v1"

// Factory creates order processing workflow steps.
type Factory struct{}

// New creates a new order processing factory.
func New() *Factory {
	return &Factory{}
}

// Name returns [WorkflowName].
func (f *Factory) Name() string {
	return WorkflowName
}

// NewSteps validates, charges, then ships.
func (f *Factory) NewSteps() []workflow.Step {
	return []workflow.Step{
		steps.ValidateOrder{},
		steps.ProcessPayment{},
		steps.ShipOrder{},
	}
}
