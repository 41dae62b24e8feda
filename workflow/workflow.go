package workflow

import "context"

// Namers provide a name string.
type Namer interface {
	// Name returns the name of the workflow (reverse-DNS style by
	// convention) or the kind of a step.
	Name() string
}

// Reporters receive human-readable progress lines.
type Reporter interface {
	// Report emits msg to the reporting sink.
	Report(msg string)
}

// ReporterFunc adapts an ordinary function to a Reporter.
type ReporterFunc func(msg string)

// Report calls f(msg).
func (f ReporterFunc) Report(msg string) {
	f(msg)
}

// Steps are single units of work in a workflow.
type Step interface {
	Namer

	// Execute performs the step and reports its action to r.
	// A non-nil error indicates the step failed. The context only
	// carries request-scoped values (e.g. for logging).
	Execute(ctx context.Context, r Reporter) error
}

// Factories produce the ordered steps for one workflow category.
type Factory interface {
	Namer

	// NewSteps returns a newly constructed, ordered slice of steps.
	// The slice order is the execution order. Every call returns a
	// new slice.
	NewSteps() []Step
}

// Runners execute workflows.
type Runner interface {
	// ExecuteWorkflow runs every step of a workflow to completion.
	ExecuteWorkflow(ctx context.Context)
}

// StepNames returns the kind names of steps in order.
func StepNames(steps []Step) []string {
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		if step == nil {
			names = append(names, "")
			continue
		}
		names = append(names, step.Name())
	}
	return names
}
