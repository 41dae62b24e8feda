/*
Package workflow defines workflow interfaces, types, and primitives.

# Workflows

A workflow is a named category of work (for example order processing or
invoice processing) that is carried out as an ordered list of steps.
Workflows are identified by names. By convention these are reverse-DNS
style and are intended to be unique and human readable.

Workflows are represented by a [Factory]. A factory is bound to exactly
one workflow category and has a single job: hand out a freshly built,
ordered slice of steps for that category every time it is asked. The
order of the slice is the execution order. Factories hold no state and
never cache or share the slices they return.

Adding a workflow category means adding a new factory (and any new step
kinds it needs). Nothing else needs to change.

# Steps

A [Step] is one independently executable unit of work. Steps carry no
state and do not depend on the outcome of earlier steps. Executing a
step reports a human-readable description of what it did to a
[Reporter].

A step signals failure by returning an error, conventionally a
[*StepExecutionError]. Steps are identified by their kind name (the
Name method) which is used when reporting and logging failures.

# Reporting

The [Reporter] is the only outward channel of a running workflow. It
receives one line per executed step and one line per failed step.
Reporters are deliberately simpler than loggers: they take plain text
and never fail.

# Process model

Workflow execution is synchronous. Steps of a workflow run one at a
time and in order. See the engine package for the processor that drives
a factory's steps.
*/
package workflow
