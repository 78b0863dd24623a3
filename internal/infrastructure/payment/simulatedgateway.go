// Package payment implements the payment gateway the purchase flow charges
// against.
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"paperdesk/internal/application/paymentgateway"
)

// SimulatedGateway stands in for a real payment processor. It validates the
// card input shape, waits a configured latency, then approves the charge.
// The latency mirrors real processor round trips so callers exercise their
// timeout and cancellation paths.
type SimulatedGateway struct {
	latency time.Duration
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{latency: latency}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req paymentgateway.ChargeRequest) (*paymentgateway.ChargeResult, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("charge amount cannot be negative")
	}

	if reason := validateCard(req.Card); reason != "" {
		return &paymentgateway.ChargeResult{
			Approved:      false,
			DeclineReason: reason,
		}, nil
	}

	select {
	case <-time.After(g.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &paymentgateway.ChargeResult{
		Approved:      true,
		TransactionID: fmt.Sprintf("SIM_%s", uuid.NewString()),
	}, nil
}

func validateCard(card paymentgateway.CardDetails) string {
	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) < 12 || len(number) > 19 || !isDigits(number) {
		return "invalid card number"
	}
	if card.CardholderName == "" {
		return "cardholder name is required"
	}
	if len(card.Expiry) != 5 || card.Expiry[2] != '/' ||
		!isDigits(card.Expiry[:2]) || !isDigits(card.Expiry[3:]) {
		return "invalid expiry date"
	}
	if len(card.CVV) != 3 || !isDigits(card.CVV) {
		return "invalid security code"
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
