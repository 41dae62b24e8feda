package steps

import (
	"errors"
	"fmt"
	"sort"

	"github.com/micromdm/nanostep/workflow"
)

// ErrUnknownKind occurs when looking up a step kind not in the catalog.
var ErrUnknownKind = errors.New("unknown step kind")

var catalog = map[string]func() workflow.Step{
	KindValidateOrder:       func() workflow.Step { return ValidateOrder{} },
	KindProcessPayment:      func() workflow.Step { return ProcessPayment{} },
	KindShipOrder:           func() workflow.Step { return ShipOrder{} },
	KindGenerateInvoice:     func() workflow.Step { return GenerateInvoice{} },
	KindSendInvoice:         func() workflow.Step { return SendInvoice{} },
	KindPrepareSpecialOrder: func() workflow.Step { return PrepareSpecialOrder{} },
	KindNotifyCustomer:      func() workflow.Step { return NotifyCustomer{} },
}

// New creates a new step of kind.
func New(kind string) (workflow.Step, error) {
	newStep, ok := catalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return newStep(), nil
}

// Kinds returns the sorted kind names of every step in the catalog.
func Kinds() []string {
	kinds := make([]string, 0, len(catalog))
	for kind := range catalog {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
