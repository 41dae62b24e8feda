package test

import (
	"sync"

	"github.com/micromdm/nanostep/workflow"
)

// StaticFactory hands out copies of a fixed list of steps.
type StaticFactory struct {
	WorkflowName string
	Steps        []workflow.Step

	calls   int
	callsMu sync.Mutex
}

// NewStaticFactory creates a new static factory named name.
func NewStaticFactory(name string, steps ...workflow.Step) *StaticFactory {
	return &StaticFactory{WorkflowName: name, Steps: steps}
}

// Name returns f.WorkflowName.
func (f *StaticFactory) Name() string {
	return f.WorkflowName
}

// NewSteps returns a copy of f.Steps.
func (f *StaticFactory) NewSteps() []workflow.Step {
	f.callsMu.Lock()
	f.calls++
	f.callsMu.Unlock()
	return append([]workflow.Step(nil), f.Steps...)
}

// Calls returns how many times NewSteps was called.
func (f *StaticFactory) Calls() int {
	f.callsMu.Lock()
	defer f.callsMu.Unlock()
	return f.calls
}
