package purchase

import "context"

// Repository is the entitlement ledger. CreateCompleted must enforce the
// at-most-one-completed-per-(user, paper) invariant itself through unique
// constraint semantics; callers checking first only narrows the window, the
// insert is the authority.
type Repository interface {
	// CreateCompleted inserts a completed purchase record. It returns a
	// conflict error when a completed record for the same (user, paper)
	// pair already exists.
	CreateCompleted(ctx context.Context, p *Purchase) error

	// CreateFailed inserts a failed purchase record for audit. Failed rows
	// never count as ownership and never conflict with each other.
	CreateFailed(ctx context.Context, p *Purchase) error

	// HasCompleted reports whether the user holds a completed purchase for
	// the paper.
	HasCompleted(ctx context.Context, userID, paperID uint) (bool, error)

	// ListCompletedByUser returns the user's completed purchases, most
	// recent first.
	ListCompletedByUser(ctx context.Context, userID uint) ([]*Purchase, error)

	// GetByID retrieves a purchase record by ID.
	GetByID(ctx context.Context, id uint) (*Purchase, error)
}
