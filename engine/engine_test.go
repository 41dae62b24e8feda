package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/micromdm/nanostep/log/logkeys"
	"github.com/micromdm/nanostep/utils/uuid"
	"github.com/micromdm/nanostep/workflow"
	"github.com/micromdm/nanostep/workflow/custom"
	"github.com/micromdm/nanostep/workflow/invoice"
	"github.com/micromdm/nanostep/workflow/order"
	"github.com/micromdm/nanostep/workflow/test"
)

var _ workflow.Runner = (*Processor)(nil)

func TestExecuteWorkflow(t *testing.T) {
	for _, tc := range []struct {
		name    string
		factory workflow.Factory
		want    []string
	}{
		{
			"order",
			order.New(),
			[]string{"Validating Order...", "Processing Payment...", "Shipping Order..."},
		},
		{
			"invoice",
			invoice.New(),
			[]string{"Generating Invoice...", "Sending Invoice to Customer..."},
		},
		{
			"custom",
			custom.New(),
			[]string{"Preparing Special Order...", "Notifying Customer..."},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := test.NewRecorder(nil)
			p := New(tc.factory, r)

			if p.Factory() != tc.factory {
				t.Error("processor not bound to factory")
			}

			p.ExecuteWorkflow(context.Background())

			if want, have := strings.Join(tc.want, "|"), strings.Join(r.Lines(), "|"); want != have {
				t.Errorf("want %q; have %q", want, have)
			}
		})
	}
}

func TestExecuteWorkflowContinuesAfterFailure(t *testing.T) {
	tracker := new(test.Tracker)
	f := test.NewStaticFactory("com.example.wf.failing.v1", tracker.TrackAll([]workflow.Step{
		test.ReportingStep{Kind: "first", Message: "step one"},
		test.FailingStep{Kind: "second", Message: "boom"},
		test.ReportingStep{Kind: "third", Message: "step three"},
	})...)
	r := test.NewRecorder(nil)

	New(f, r).ExecuteWorkflow(context.Background())

	lines := r.Lines()
	if want, have := 3, len(lines); want != have {
		t.Fatalf("want %d lines; have %d: %v", want, have, lines)
	}
	if want, have := "step one", lines[0]; want != have {
		t.Errorf("want %q; have %q", want, have)
	}
	if !strings.Contains(lines[1], "boom") || !strings.Contains(lines[1], "second") {
		t.Errorf("failure report missing step or error: %q", lines[1])
	}
	if want, have := "step three", lines[2]; want != have {
		t.Errorf("want %q; have %q", want, have)
	}

	if want, have := "first,second,third", strings.Join(tracker.Executed(), ","); want != have {
		t.Errorf("want %q; have %q", want, have)
	}
}

func TestExecuteWorkflowFailureMessage(t *testing.T) {
	f := test.NewStaticFactory("a.b.c", test.FailingStep{Kind: "ChargeCard", Message: "card declined"})
	r := test.NewRecorder(nil)

	New(f, r).ExecuteWorkflow(context.Background())

	if want, have := "Error executing step ChargeCard: card declined", strings.Join(r.Lines(), "|"); want != have {
		t.Errorf("want %q; have %q", want, have)
	}
}

func TestExecuteWorkflowRecoversPanic(t *testing.T) {
	tracker := new(test.Tracker)
	f := test.NewStaticFactory("a.b.c", tracker.TrackAll([]workflow.Step{
		test.PanickingStep{Kind: "explode", Value: "kaboom"},
		test.ReportingStep{Kind: "after", Message: "still here"},
	})...)
	r := test.NewRecorder(nil)

	New(f, r).ExecuteWorkflow(context.Background())

	lines := r.Lines()
	if want, have := 2, len(lines); want != have {
		t.Fatalf("want %d lines; have %d: %v", want, have, lines)
	}
	if !strings.Contains(lines[0], "kaboom") || !strings.Contains(lines[0], workflow.ErrStepPanicked.Error()) {
		t.Errorf("unexpected panic report: %q", lines[0])
	}
	if want, have := "still here", lines[1]; want != have {
		t.Errorf("want %q; have %q", want, have)
	}
	if want, have := "explode,after", strings.Join(tracker.Executed(), ","); want != have {
		t.Errorf("want %q; have %q", want, have)
	}
}

func TestExecuteWorkflowNilStep(t *testing.T) {
	f := test.NewStaticFactory("a.b.c",
		nil,
		test.ReportingStep{Kind: "after", Message: "still here"},
	)
	r := test.NewRecorder(nil)

	New(f, r).ExecuteWorkflow(context.Background())

	lines := r.Lines()
	if want, have := 2, len(lines); want != have {
		t.Fatalf("want %d lines; have %d: %v", want, have, lines)
	}
	if !strings.Contains(lines[0], workflow.ErrNilStep.Error()) {
		t.Errorf("unexpected nil step report: %q", lines[0])
	}
}

// labelStep reads its name from a field so a nil *labelStep panics in Name.
type labelStep struct {
	label string
}

func (s *labelStep) Name() string { return s.label }

func (s *labelStep) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report(s.label)
	return nil
}

func TestExecuteWorkflowNilPointerStep(t *testing.T) {
	var missing *labelStep
	tracker := new(test.Tracker)
	after := tracker.Track(test.ReportingStep{Kind: "after", Message: "still here"})
	f := test.NewStaticFactory("a.b.c", missing, after)
	r := test.NewRecorder(nil)

	New(f, r).ExecuteWorkflow(context.Background())

	lines := r.Lines()
	if want, have := 2, len(lines); want != have {
		t.Fatalf("want %d lines; have %d: %v", want, have, lines)
	}
	if !strings.HasPrefix(lines[0], "Error executing step <unknown>: ") {
		t.Errorf("unexpected nil pointer report: %q", lines[0])
	}
	if !strings.Contains(lines[0], workflow.ErrStepPanicked.Error()) {
		t.Errorf("expected panic in report: %q", lines[0])
	}
	if want, have := "still here", lines[1]; want != have {
		t.Errorf("want %q; have %q", want, have)
	}
	if want, have := "after", strings.Join(tracker.Executed(), ","); want != have {
		t.Errorf("want %q; have %q", want, have)
	}
}

// wrappingStep returns its cause through WrapStepExecutionError.
type wrappingStep struct {
	cause error
}

func (s wrappingStep) Name() string { return "Wrap" }

func (s wrappingStep) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report("wrap ok")
	return workflow.WrapStepExecutionError(s.Name(), s.cause)
}

func TestExecuteWorkflowWrappedNilCause(t *testing.T) {
	f := test.NewStaticFactory("a.b.c",
		wrappingStep{},
		wrappingStep{cause: errors.New("label printer offline")},
	)
	r := test.NewRecorder(nil)

	New(f, r).ExecuteWorkflow(context.Background())

	want := "wrap ok|wrap ok|Error executing step Wrap: label printer offline"
	if have := strings.Join(r.Lines(), "|"); want != have {
		t.Errorf("want %q; have %q", want, have)
	}
}

func TestExecuteWorkflowEmpty(t *testing.T) {
	f := test.NewStaticFactory("a.b.c")
	r := test.NewRecorder(nil)

	New(f, r).ExecuteWorkflow(context.Background())

	if want, have := 0, len(r.Lines()); want != have {
		t.Errorf("want %d lines; have %d", want, have)
	}
	if want, have := 1, f.Calls(); want != have {
		t.Errorf("want %d calls; have %d", want, have)
	}
}

func TestExecuteWorkflowRequeriesFactory(t *testing.T) {
	f := test.NewStaticFactory("a.b.c", test.ReportingStep{Kind: "only", Message: "once"})
	r := test.NewRecorder(nil)
	p := New(f, r)

	p.ExecuteWorkflow(context.Background())
	p.ExecuteWorkflow(context.Background())

	if want, have := 2, f.Calls(); want != have {
		t.Errorf("want %d calls; have %d", want, have)
	}
	if want, have := "once|once", strings.Join(r.Lines(), "|"); want != have {
		t.Errorf("want %q; have %q", want, have)
	}
}

func TestExecuteWorkflowIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := test.NewRecorder(nil)
	New(order.New(), r).ExecuteWorkflow(ctx)

	if want, have := 3, len(r.Lines()); want != have {
		t.Errorf("want %d lines; have %d", want, have)
	}
}

func TestExecuteWorkflowLogging(t *testing.T) {
	logger := test.NewLogger()
	f := test.NewStaticFactory("com.example.wf.logging.v1",
		test.ReportingStep{Kind: "ok", Message: "fine"},
		test.FailingStep{Kind: "bad", Message: "boom"},
	)
	p := New(f, test.NewRecorder(nil),
		WithLogger(logger),
		WithIDer(uuid.NewStaticIDs("run-1", "run-2")),
	)

	p.ExecuteWorkflow(context.Background())
	p.ExecuteWorkflow(context.Background())

	entries := logger.Entries()
	if len(entries) < 1 {
		t.Fatal("no log entries")
	}

	var failures []test.LogEntry
	for _, entry := range entries {
		if want, have := "com.example.wf.logging.v1", entry.Value(logkeys.WorkflowName); want != have {
			t.Errorf("workflow name: want %v; have %v", want, have)
		}
		if entry.Value(logkeys.Message) == "step failed" {
			failures = append(failures, entry)
		}
	}

	if want, have := 2, len(failures); want != have {
		t.Fatalf("want %d failures; have %d", want, have)
	}
	for i, id := range []string{"run-1", "run-2"} {
		entry := failures[i]
		if entry.Debug {
			t.Error("step failures should be logged at info level")
		}
		if want, have := id, entry.Value(logkeys.InstanceID); want != have {
			t.Errorf("instance id: want %v; have %v", want, have)
		}
		if want, have := "bad", entry.Value(logkeys.StepName); want != have {
			t.Errorf("step name: want %v; have %v", want, have)
		}
		err, _ := entry.Value(logkeys.Error).(error)
		var stepErr *workflow.StepExecutionError
		if !errors.As(err, &stepErr) {
			t.Errorf("expected StepExecutionError; have %v", err)
		}
	}
}

func TestNewPanics(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    workflow.Factory
		r    workflow.Reporter
	}{
		{"nil factory", nil, test.NewRecorder(nil)},
		{"nil reporter", order.New(), nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			New(tc.f, tc.r)
		})
	}
}
