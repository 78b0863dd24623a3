package paper

import (
	"fmt"
	"time"

	"paperdesk/internal/domain/shared/money"
)

// Paper is the catalog aggregate root: a priced, downloadable exam paper.
// The download counter counts successful purchases, not file retrievals;
// it is incremented by the purchase flow and never mutated here.
type Paper struct {
	id            uint
	title         string
	description   string
	subject       string
	gradeLevel    string // optional facet, empty means none
	year          *int
	price         money.Money
	fileKey       string // object key in the file storage collaborator
	previewURL    string
	uploadedBy    *uint
	downloadCount uint
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPaper creates a new active paper
func NewPaper(
	title string,
	description string,
	subject string,
	gradeLevel string,
	year *int,
	price money.Money,
	fileKey string,
	previewURL string,
	uploadedBy *uint,
) (*Paper, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if fileKey == "" {
		return nil, fmt.Errorf("file key is required")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if year != nil && *year <= 0 {
		return nil, fmt.Errorf("year must be positive")
	}

	now := time.Now()
	return &Paper{
		title:       title,
		description: description,
		subject:     subject,
		gradeLevel:  gradeLevel,
		year:        year,
		price:       price,
		fileKey:     fileKey,
		previewURL:  previewURL,
		uploadedBy:  uploadedBy,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPaper reconstructs a paper from persistence
func ReconstructPaper(
	id uint,
	title string,
	description string,
	subject string,
	gradeLevel string,
	year *int,
	price money.Money,
	fileKey string,
	previewURL string,
	uploadedBy *uint,
	downloadCount uint,
	active bool,
	createdAt, updatedAt time.Time,
) (*Paper, error) {
	if id == 0 {
		return nil, fmt.Errorf("paper ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}

	return &Paper{
		id:            id,
		title:         title,
		description:   description,
		subject:       subject,
		gradeLevel:    gradeLevel,
		year:          year,
		price:         price,
		fileKey:       fileKey,
		previewURL:    previewURL,
		uploadedBy:    uploadedBy,
		downloadCount: downloadCount,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Paper) ID() uint                 { return p.id }
func (p *Paper) Title() string            { return p.title }
func (p *Paper) Description() string      { return p.description }
func (p *Paper) Subject() string          { return p.subject }
func (p *Paper) GradeLevel() string       { return p.gradeLevel }
func (p *Paper) Year() *int               { return p.year }
func (p *Paper) Price() money.Money       { return p.price }
func (p *Paper) FileKey() string          { return p.fileKey }
func (p *Paper) PreviewURL() string       { return p.previewURL }
func (p *Paper) UploadedBy() *uint        { return p.uploadedBy }
func (p *Paper) DownloadCount() uint      { return p.downloadCount }
func (p *Paper) IsActive() bool           { return p.active }
func (p *Paper) CreatedAt() time.Time     { return p.createdAt }
func (p *Paper) UpdatedAt() time.Time     { return p.updatedAt }

// SetID sets the paper ID (only for persistence layer use)
func (p *Paper) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("paper ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("paper ID cannot be zero")
	}
	p.id = id
	return nil
}

// UpdateDetails applies admin edits. A price change affects future purchases
// only; amounts on existing purchase records stay as captured.
func (p *Paper) UpdateDetails(
	title string,
	description string,
	subject string,
	gradeLevel string,
	year *int,
	price money.Money,
) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if subject == "" {
		return fmt.Errorf("subject is required")
	}
	if price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}
	if year != nil && *year <= 0 {
		return fmt.Errorf("year must be positive")
	}

	p.title = title
	p.description = description
	p.subject = subject
	p.gradeLevel = gradeLevel
	p.year = year
	p.price = price
	p.updatedAt = time.Now()
	return nil
}

// Deactivate hides the paper from catalog queries. Existing purchases keep
// download rights.
func (p *Paper) Deactivate() {
	if !p.active {
		return
	}
	p.active = false
	p.updatedAt = time.Now()
}

// Activate makes the paper visible in catalog queries again
func (p *Paper) Activate() {
	if p.active {
		return
	}
	p.active = true
	p.updatedAt = time.Now()
}
