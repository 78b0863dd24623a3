package purchase

import (
	"fmt"
	"time"

	"paperdesk/internal/domain/shared/money"
)

// Purchase is one entitlement ledger record: a single user's paid access to a
// single paper. The amount is captured at purchase time and never tracks
// later price changes. Records are the audit trail and are never deleted.
type Purchase struct {
	id            uint
	userID        uint
	paperID       uint
	amountPaid    money.Money
	status        Status
	transactionID string // gateway transaction reference, empty until charged
	purchasedAt   time.Time
}

// NewPurchase creates a pending purchase attempt with the price snapshot
// taken by the orchestrator.
func NewPurchase(userID, paperID uint, amountPaid money.Money) (*Purchase, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if paperID == 0 {
		return nil, fmt.Errorf("paper ID is required")
	}
	if amountPaid.IsNegative() {
		return nil, fmt.Errorf("amount paid cannot be negative")
	}

	return &Purchase{
		userID:      userID,
		paperID:     paperID,
		amountPaid:  amountPaid,
		status:      StatusPending,
		purchasedAt: time.Now(),
	}, nil
}

// ReconstructPurchase reconstructs a purchase from persistence
func ReconstructPurchase(
	id uint,
	userID, paperID uint,
	amountPaid money.Money,
	status Status,
	transactionID string,
	purchasedAt time.Time,
) (*Purchase, error) {
	if id == 0 {
		return nil, fmt.Errorf("purchase ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if paperID == 0 {
		return nil, fmt.Errorf("paper ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid purchase status: %s", status)
	}

	return &Purchase{
		id:            id,
		userID:        userID,
		paperID:       paperID,
		amountPaid:    amountPaid,
		status:        status,
		transactionID: transactionID,
		purchasedAt:   purchasedAt,
	}, nil
}

func (p *Purchase) ID() uint                { return p.id }
func (p *Purchase) UserID() uint            { return p.userID }
func (p *Purchase) PaperID() uint           { return p.paperID }
func (p *Purchase) AmountPaid() money.Money { return p.amountPaid }
func (p *Purchase) Status() Status          { return p.status }
func (p *Purchase) TransactionID() string   { return p.transactionID }
func (p *Purchase) PurchasedAt() time.Time  { return p.purchasedAt }

// SetID sets the purchase ID (only for persistence layer use)
func (p *Purchase) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("purchase ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("purchase ID cannot be zero")
	}
	p.id = id
	return nil
}

// Complete marks the purchase as completed after a successful charge
func (p *Purchase) Complete(transactionID string) error {
	if p.status.IsTerminal() {
		return ErrTerminalState
	}
	p.status = StatusCompleted
	p.transactionID = transactionID
	return nil
}

// Fail marks the purchase as failed after a declined charge
func (p *Purchase) Fail() error {
	if p.status.IsTerminal() {
		return ErrTerminalState
	}
	p.status = StatusFailed
	return nil
}

// GrantsOwnership reports whether this record counts as entitlement. Only
// completed records ever do.
func (p *Purchase) GrantsOwnership() bool {
	return p.status == StatusCompleted
}
