package models

import "time"

// PaperModel represents the database persistence model for exam papers.
// This is the anti-corruption layer between domain and database.
// DownloadCount tracks completed purchases; the column keeps its historical
// name.
type PaperModel struct {
	ID            uint   `gorm:"primarykey"`
	Title         string `gorm:"not null;size:255;index"`
	Description   string `gorm:"type:text"`
	Subject       string `gorm:"not null;size:100;index"`
	GradeLevel    string `gorm:"size:50;index"`
	Year          *int
	PriceCents    int64  `gorm:"not null;default:0"`
	Currency      string `gorm:"not null;size:3;default:USD"`
	FileKey       string `gorm:"not null;size:512"`
	PreviewURL    string `gorm:"size:512"`
	UploadedBy    *uint  `gorm:"index"`
	DownloadCount uint   `gorm:"not null;default:0"`
	IsActive      bool   `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PaperModel) TableName() string {
	return "papers"
}
