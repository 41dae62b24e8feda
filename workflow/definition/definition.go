// Package definition implements workflow factories declared as YAML documents.
//
// A definition names a workflow and lists its step kinds in execution order:
//
//	name: io.micromdm.wf.custom.v1
//	steps:
//	  - PrepareSpecialOrder
//	  - NotifyCustomer
//
// Step kinds are resolved with a [StepConstructor], usually steps.New.
package definition

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/micromdm/nanostep/workflow"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoName occurs when a definition is missing its workflow name.
	ErrNoName = errors.New("workflow definition has no name")

	// ErrNoSteps occurs when a definition lists no step kinds.
	ErrNoSteps = errors.New("workflow definition has no steps")

	// ErrDuplicateName occurs when two documents define the same workflow name.
	ErrDuplicateName = errors.New("duplicate workflow definition name")

	// ErrEmpty occurs when the input holds no definition documents.
	ErrEmpty = errors.New("empty workflow definition")
)

// StepConstructor creates a new step of kind.
type StepConstructor func(kind string) (workflow.Step, error)

// Definition is the document form of a workflow.
type Definition struct {
	Name  string   `yaml:"name"`
	Steps []string `yaml:"steps"`
}

// Validate checks def for a name and at least one step.
func (def *Definition) Validate() error {
	if def == nil || def.Name == "" {
		return ErrNoName
	}
	if len(def.Steps) < 1 {
		return fmt.Errorf("%w: %s", ErrNoSteps, def.Name)
	}
	return nil
}

// Factory creates workflow steps from a definition.
type Factory struct {
	name    string
	kinds   []string
	newStep StepConstructor
}

// New creates a new factory from def.
// Every step kind is constructed once to check it is known to newStep.
func New(def *Definition, newStep StepConstructor) (*Factory, error) {
	if newStep == nil {
		panic("nil step constructor")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	for i, kind := range def.Steps {
		step, err := newStep(kind)
		if err != nil {
			return nil, fmt.Errorf("%s step %d: %w", def.Name, i, err)
		}
		if step == nil {
			return nil, fmt.Errorf("%s step %d (%s): %w", def.Name, i, kind, workflow.ErrNilStep)
		}
	}
	return &Factory{
		name:    def.Name,
		kinds:   append([]string(nil), def.Steps...),
		newStep: newStep,
	}, nil
}

// Parse creates a new factory from a single YAML document in data.
func Parse(data []byte, newStep StepConstructor) (*Factory, error) {
	factories, err := ParseAll(data, newStep)
	if err != nil {
		return nil, err
	}
	if len(factories) != 1 {
		return nil, fmt.Errorf("expected one workflow definition, found %d", len(factories))
	}
	return factories[0], nil
}

// ParseAll creates factories from every YAML document in data.
// Documents are separated by "---". Unknown fields are an error.
func ParseAll(data []byte, newStep StepConstructor) ([]*Factory, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var factories []*Factory
	seen := make(map[string]bool)
	for i := 0; ; i++ {
		def := new(Definition)
		err := dec.Decode(def)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decoding definition %d: %w", i, err)
		}
		f, err := New(def, newStep)
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		if seen[f.name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, f.name)
		}
		seen[f.name] = true
		factories = append(factories, f)
	}
	if len(factories) < 1 {
		return nil, ErrEmpty
	}
	return factories, nil
}

// Name returns the defined workflow name.
func (f *Factory) Name() string {
	return f.name
}

// Kinds returns a copy of the defined step kinds in order.
func (f *Factory) Kinds() []string {
	return append([]string(nil), f.kinds...)
}

// NewSteps constructs a new step for every defined kind.
// A kind that fails to construct (which New already guards against)
// is replaced by a step that fails when executed.
func (f *Factory) NewSteps() []workflow.Step {
	steps := make([]workflow.Step, 0, len(f.kinds))
	for _, kind := range f.kinds {
		step, err := f.newStep(kind)
		if err == nil && step == nil {
			err = workflow.ErrNilStep
		}
		if err != nil {
			step = &brokenStep{kind: kind, err: err}
		}
		steps = append(steps, step)
	}
	return steps
}

// brokenStep stands in for a step kind that could not be constructed.
type brokenStep struct {
	kind string
	err  error
}

func (s *brokenStep) Name() string { return s.kind }

func (s *brokenStep) Execute(_ context.Context, _ workflow.Reporter) error {
	return workflow.WrapStepExecutionError(s.kind, fmt.Errorf("constructing step: %w", s.err))
}
