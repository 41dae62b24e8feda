package test

import (
	"context"
	"sync"

	"github.com/micromdm/nanostep/workflow"
)

// ReportingStep reports Message and succeeds.
type ReportingStep struct {
	Kind    string
	Message string
}

// Name returns s.Kind.
func (s ReportingStep) Name() string { return s.Kind }

func (s ReportingStep) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report(s.Message)
	return nil
}

// FailingStep always fails with Message and reports nothing.
type FailingStep struct {
	Kind    string
	Message string
}

// Name returns s.Kind.
func (s FailingStep) Name() string { return s.Kind }

func (s FailingStep) Execute(_ context.Context, _ workflow.Reporter) error {
	return workflow.NewStepExecutionError(s.Kind, s.Message)
}

// PanickingStep always panics with Value.
type PanickingStep struct {
	Kind  string
	Value interface{}
}

// Name returns s.Kind.
func (s PanickingStep) Name() string { return s.Kind }

func (s PanickingStep) Execute(_ context.Context, _ workflow.Reporter) error {
	panic(s.Value)
}

// Tracker records the names of executed steps in execution order.
type Tracker struct {
	executed   []string
	executedMu sync.RWMutex
}

// Executed returns a copy of the executed step names.
func (t *Tracker) Executed() []string {
	t.executedMu.RLock()
	defer t.executedMu.RUnlock()
	return append([]string(nil), t.executed...)
}

func (t *Tracker) track(name string) {
	t.executedMu.Lock()
	t.executed = append(t.executed, name)
	t.executedMu.Unlock()
}

// Track wraps step so that t records its execution.
func (t *Tracker) Track(step workflow.Step) workflow.Step {
	return &trackedStep{Step: step, tracker: t}
}

// TrackAll wraps every step in steps.
func (t *Tracker) TrackAll(steps []workflow.Step) []workflow.Step {
	tracked := make([]workflow.Step, 0, len(steps))
	for _, step := range steps {
		tracked = append(tracked, t.Track(step))
	}
	return tracked
}

type trackedStep struct {
	workflow.Step
	tracker *Tracker
}

func (s *trackedStep) Execute(ctx context.Context, r workflow.Reporter) error {
	s.tracker.track(s.Name())
	return s.Step.Execute(ctx, r)
}
