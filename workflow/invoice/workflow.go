// Package invoice implements the invoice processing workflow.
package invoice

import (
	"github.com/micromdm/nanostep/workflow"
	"github.com/micromdm/nanostep/workflow/steps"
)

// WorkflowName is the reverse-DNS name of the invoice processing workflow.
const WorkflowName = "io.micromdm.wf.invoice.v1"

// Factory creates invoice processing workflow steps.
type Factory struct{}

// New creates a new invoice processing factory.
func New() *Factory {
	return &Factory{}
}

// Name returns [WorkflowName].
func (f *Factory) Name() string {
	return WorkflowName
}

// NewSteps generates the invoice and then sends it to the customer.
func (f *Factory) NewSteps() []workflow.Step {
	return []workflow.Step{
		steps.GenerateInvoice{},
		steps.SendInvoice{},
	}
}
