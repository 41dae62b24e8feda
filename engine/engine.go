// Package engine implements the NanoStep workflow processor.
package engine

import (
	"context"
	"fmt"

	"github.com/micromdm/nanostep/log/logkeys"
	"github.com/micromdm/nanostep/utils/uuid"
	"github.com/micromdm/nanostep/workflow"

	"github.com/micromdm/nanolib/log"
	"github.com/micromdm/nanolib/log/ctxlog"
)

// Processor executes the steps of a single workflow factory.
// Step failures are reported and never stop the workflow.
type Processor struct {
	factory  workflow.Factory
	reporter workflow.Reporter

	logger log.Logger
	ider   uuid.IDer
}

// Options configure the processor.
type Option func(*Processor)

// WithLogger sets the processor logger.
func WithLogger(logger log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithIDer sets the generator for workflow run instance IDs.
func WithIDer(ider uuid.IDer) Option {
	return func(p *Processor) {
		p.ider = ider
	}
}

// New creates a new processor bound to factory f for its lifetime.
// Step progress and failures are reported to r.
func New(f workflow.Factory, r workflow.Reporter, opts ...Option) *Processor {
	if f == nil {
		panic("nil factory")
	}
	if r == nil {
		panic("nil reporter")
	}
	p := &Processor{
		factory:  f,
		reporter: r,
		logger:   log.NopLogger,
		ider:     uuid.NewUUID(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logkeys.WorkflowName, f.Name())
	return p
}

// Factory returns the factory p is bound to.
func (p *Processor) Factory() workflow.Factory {
	return p.factory
}

// ExecuteWorkflow asks the factory for a new step sequence and
// executes every step once, in order. A failed (or panicking) step is
// reported and the next step is executed. Context cancellation is not
// observed; ctx only carries logging values.
func (p *Processor) ExecuteWorkflow(ctx context.Context) {
	instanceID := p.ider.ID()
	ctx = ctxlog.AddFunc(ctx, func(_ context.Context) []interface{} {
		return []interface{}{logkeys.InstanceID, instanceID}
	})
	logger := ctxlog.Logger(ctx, p.logger)

	steps := p.factory.NewSteps()
	logger.Debug(
		logkeys.Message, "starting workflow",
		logkeys.GenericCount, len(steps),
	)

	var failed int
	for i, step := range steps {
		name := stepName(step)
		logger.Debug(
			logkeys.Message, "executing step",
			logkeys.StepName, name,
			logkeys.StepIndex, i,
		)
		if err := p.executeStep(ctx, name, step); err != nil {
			failed++
			p.reporter.Report(failureMessage(name, err))
			logger.Info(
				logkeys.Message, "step failed",
				logkeys.StepName, name,
				logkeys.StepIndex, i,
				logkeys.Error, err,
			)
		}
	}

	logger.Debug(
		logkeys.Message, "workflow completed",
		logkeys.GenericCount, len(steps),
		logkeys.FailedCount, failed,
	)
}

// executeStep runs step and converts a panic into an error.
func (p *Processor) executeStep(ctx context.Context, name string, step workflow.Step) (err error) {
	if step == nil {
		return workflow.WrapStepExecutionError("", workflow.ErrNilStep)
	}
	defer func() {
		if r := recover(); r != nil {
			err = workflow.PanicError(name, r)
		}
	}()
	return step.Execute(ctx, p.reporter)
}

// stepName returns the kind name of step.
// A step whose Name method panics (e.g. a nil pointer) is "<unknown>".
func stepName(step workflow.Step) (name string) {
	if step == nil {
		return "<nil>"
	}
	defer func() {
		if r := recover(); r != nil {
			name = "<unknown>"
		}
	}()
	return step.Name()
}

func failureMessage(name string, err error) string {
	return fmt.Sprintf("Error executing step %s: %v", name, err)
}
