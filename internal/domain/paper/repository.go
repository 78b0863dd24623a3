package paper

import "context"

// Filter narrows catalog listings. All predicates are conjunctive.
type Filter struct {
	// Text matches title, description, or subject by case-insensitive substring.
	Text string
	// Subject filters by exact subject facet.
	Subject string
	// GradeLevel filters by exact grade level facet.
	GradeLevel string
	// ActiveOnly restricts results to active papers.
	ActiveOnly bool
}

// Repository defines the interface for paper persistence operations
type Repository interface {
	// Create persists a new paper and assigns its ID
	Create(ctx context.Context, p *Paper) error

	// Update persists admin edits to an existing paper
	Update(ctx context.Context, p *Paper) error

	// Delete removes a paper by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a paper by ID, active or not
	GetByID(ctx context.Context, id uint) (*Paper, error)

	// GetByIDs retrieves papers by ID, active or not
	GetByIDs(ctx context.Context, ids []uint) ([]*Paper, error)

	// List retrieves papers matching the filter, newest first
	List(ctx context.Context, filter Filter) ([]*Paper, error)

	// IncrementDownloadCount applies a single atomic server-side increment
	// to the paper's download counter. Concurrent increments must not lose
	// updates.
	IncrementDownloadCount(ctx context.Context, id uint) error
}
