package main

import (
	"github.com/micromdm/nanostep/workflow"
	"github.com/micromdm/nanostep/workflow/custom"
	"github.com/micromdm/nanostep/workflow/invoice"
	"github.com/micromdm/nanostep/workflow/order"
)

type headedWorkflow struct {
	header  string
	factory workflow.Factory
}

// workflows returns the workflows to run, in run order.
func workflows() []headedWorkflow {
	return []headedWorkflow{
		{"Executing Order Processing Workflow:", order.New()},
		{"Executing Invoice Processing Workflow:", invoice.New()},
		{"Executing Custom Workflow:", custom.New()},
	}
}
