// Package dto defines view-ready representations of catalog papers.
package dto

import (
	"time"

	"paperdesk/internal/domain/paper"
)

// PaperDTO is the API representation of a paper. Price is the decimal string
// form of the current catalog price.
type PaperDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Subject       string    `json:"subject"`
	GradeLevel    string    `json:"grade_level,omitempty"`
	Year          *int      `json:"year,omitempty"`
	Price         string    `json:"price"`
	Currency      string    `json:"currency"`
	PreviewURL    string    `json:"preview_url,omitempty"`
	DownloadCount uint      `json:"download_count"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListingDTO is a catalog search row: the paper plus whether the calling
// user already owns it. Recomputed on every query.
type ListingDTO struct {
	PaperDTO
	Owned bool `json:"owned"`
}

// UploadURLDTO carries a presigned upload slot for a new paper file.
type UploadURLDTO struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

func NewPaperDTO(p *paper.Paper) *PaperDTO {
	return &PaperDTO{
		ID:            p.ID(),
		Title:         p.Title(),
		Description:   p.Description(),
		Subject:       p.Subject(),
		GradeLevel:    p.GradeLevel(),
		Year:          p.Year(),
		Price:         p.Price().Decimal(),
		Currency:      p.Price().Currency(),
		PreviewURL:    p.PreviewURL(),
		DownloadCount: p.DownloadCount(),
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func NewListingDTO(p *paper.Paper, owned bool) *ListingDTO {
	return &ListingDTO{
		PaperDTO: *NewPaperDTO(p),
		Owned:    owned,
	}
}
