// Package logkeys defines some static logging keys for consistent structured logging output.
// Mostly exists as a mental aid when drafting log messages.
package logkeys

const (
	Message = "msg"
	Error   = "err"

	// unique identifier of a single run of a workflow.
	InstanceID   = "instance_id"
	WorkflowName = "workflow_name"
	StepName     = "step_name"

	// position of a step within its workflow sequence
	StepIndex = "step_index"

	// a context-dependent numerical count/length of something
	GenericCount = "count"
	FailedCount  = "failed"
)
