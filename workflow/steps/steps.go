// Package steps implements the workflow step catalog.
package steps

import (
	"context"

	"github.com/micromdm/nanostep/workflow"
)

// Step kinds. These are the names reported by each step's Name method.
const (
	KindValidateOrder       = "ValidateOrder"
	KindProcessPayment      = "ProcessPayment"
	KindShipOrder           = "ShipOrder"
	KindGenerateInvoice     = "GenerateInvoice"
	KindSendInvoice         = "SendInvoice"
	KindPrepareSpecialOrder = "PrepareSpecialOrder"
	KindNotifyCustomer      = "NotifyCustomer"
)

// ValidateOrder validates an order.
type ValidateOrder struct{}

func (ValidateOrder) Name() string { return KindValidateOrder }

// Execute reports the validation.
func (ValidateOrder) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report("Validating Order...")
	return nil
}

// ProcessPayment processes payment for an order.
type ProcessPayment struct{}

func (ProcessPayment) Name() string { return KindProcessPayment }

// Execute reports the payment.
func (ProcessPayment) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report("Processing Payment...")
	return nil
}

// ShipOrder ships an order to the customer.
type ShipOrder struct{}

func (ShipOrder) Name() string { return KindShipOrder }

func (ShipOrder) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report("Shipping Order...")
	return nil
}

// GenerateInvoice generates an invoice for an order.
type GenerateInvoice struct{}

func (GenerateInvoice) Name() string { return KindGenerateInvoice }

func (GenerateInvoice) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report("Generating Invoice...")
	return nil
}

// SendInvoice sends an invoice to the customer.
type SendInvoice struct{}

func (SendInvoice) Name() string { return KindSendInvoice }

func (SendInvoice) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report("Sending Invoice to Customer...")
	return nil
}

// PrepareSpecialOrder prepares an order with special requirements.
type PrepareSpecialOrder struct{}

func (PrepareSpecialOrder) Name() string { return KindPrepareSpecialOrder }

func (PrepareSpecialOrder) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report("Preparing Special Order...")
	return nil
}

// NotifyCustomer notifies the customer about their order.
type NotifyCustomer struct{}

func (NotifyCustomer) Name() string { return KindNotifyCustomer }

func (NotifyCustomer) Execute(_ context.Context, r workflow.Reporter) error {
	r.Report("Notifying Customer...")
	return nil
}
