// Package paymentgateway abstracts the external payment processor. The
// purchase orchestrator treats every implementation as fallible so a real
// processor can replace the simulated one without changing purchase
// invariants.
package paymentgateway

import (
	"context"

	"paperdesk/internal/domain/shared/money"
)

type Gateway interface {
	// Charge attempts to collect the amount. A declined charge comes back as
	// a ChargeResult with Approved false; an error means the gateway itself
	// was unreachable or misbehaved.
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

type ChargeRequest struct {
	Amount    money.Money
	Reference string // caller-side reference for reconciliation
	Card      CardDetails
}

type CardDetails struct {
	Number         string
	CardholderName string
	Expiry         string // MM/YY
	CVV            string
}

type ChargeResult struct {
	Approved      bool
	TransactionID string
	DeclineReason string
}
