// Package dto defines view-ready representations of purchase records.
package dto

import (
	"time"

	catalogdto "paperdesk/internal/application/catalog/dto"
	"paperdesk/internal/domain/purchase"
)

// PurchaseDTO is the API representation of an entitlement ledger record.
// AmountPaid is the decimal amount captured at purchase time.
type PurchaseDTO struct {
	ID            uint      `json:"id"`
	PaperID       uint      `json:"paper_id"`
	AmountPaid    string    `json:"amount_paid"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PurchasedAt   time.Time `json:"purchased_at"`
}

// HistoryItemDTO is one purchase-history row: the ledger record joined with
// its paper.
type HistoryItemDTO struct {
	Purchase PurchaseDTO          `json:"purchase"`
	Paper    *catalogdto.PaperDTO `json:"paper,omitempty"`
}

// DownloadDTO carries the resolved file reference for an authorized download.
type DownloadDTO struct {
	PaperID     uint   `json:"paper_id"`
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
}

func NewPurchaseDTO(p *purchase.Purchase) *PurchaseDTO {
	return &PurchaseDTO{
		ID:            p.ID(),
		PaperID:       p.PaperID(),
		AmountPaid:    p.AmountPaid().Decimal(),
		Currency:      p.AmountPaid().Currency(),
		Status:        p.Status().String(),
		TransactionID: p.TransactionID(),
		PurchasedAt:   p.PurchasedAt(),
	}
}
