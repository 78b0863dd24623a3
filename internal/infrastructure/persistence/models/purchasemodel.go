package models

import "time"

// PurchaseModel represents the database persistence model for entitlement
// ledger records.
//
// CompletedKey is "1" on completed rows and NULL otherwise. The composite
// unique index over (user_id, paper_id, completed_key) then admits at most
// one completed row per pair while failed rows, carrying NULL, never
// collide. The database enforces the invariant; application checks only
// shortcut the common case.
type PurchaseModel struct {
	ID            uint    `gorm:"primarykey"`
	UserID        uint    `gorm:"not null;uniqueIndex:idx_user_paper_completed,priority:1;index:idx_user_status,priority:1"`
	PaperID       uint    `gorm:"not null;uniqueIndex:idx_user_paper_completed,priority:2;index"`
	AmountCents   int64   `gorm:"not null"`
	Currency      string  `gorm:"not null;size:3;default:USD"`
	Status        string  `gorm:"not null;size:20;index:idx_user_status,priority:2"`
	CompletedKey  *string `gorm:"size:1;uniqueIndex:idx_user_paper_completed,priority:3"`
	TransactionID string  `gorm:"size:64"`
	PurchasedAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}
