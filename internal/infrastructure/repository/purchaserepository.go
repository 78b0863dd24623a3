package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/domain/shared/money"
	"paperdesk/internal/infrastructure/persistence/models"
	"paperdesk/internal/shared/db"
	"paperdesk/internal/shared/errors"
	"paperdesk/internal/shared/logger"
)

// completedKey marks completed ledger rows. Failed rows keep a NULL key so
// the unique index over (user_id, paper_id, completed_key) only ever bites
// on a second completed row.
var completedKey = "1"

// PurchaseRepositoryImpl implements the purchase.Repository interface
type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPurchaseRepository creates a new purchase repository instance
func NewPurchaseRepository(database *gorm.DB, logger logger.Interface) purchase.Repository {
	return &PurchaseRepositoryImpl{
		db:     database,
		logger: logger,
	}
}

func (r *PurchaseRepositoryImpl) CreateCompleted(ctx context.Context, p *purchase.Purchase) error {
	if p.Status() != purchase.StatusCompleted {
		return fmt.Errorf("purchase %d/%d is not completed", p.UserID(), p.PaperID())
	}

	model := purchaseToModel(p)
	model.CompletedKey = &completedKey

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("purchase already exists")
		}
		r.logger.Errorw("failed to create purchase",
			"user_id", p.UserID(), "paper_id", p.PaperID(), "error", err)
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set purchase ID: %w", err)
	}
	return nil
}

func (r *PurchaseRepositoryImpl) CreateFailed(ctx context.Context, p *purchase.Purchase) error {
	if p.Status() != purchase.StatusFailed {
		return fmt.Errorf("purchase %d/%d is not failed", p.UserID(), p.PaperID())
	}

	model := purchaseToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to record failed purchase",
			"user_id", p.UserID(), "paper_id", p.PaperID(), "error", err)
		return fmt.Errorf("failed to record failed purchase: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set purchase ID: %w", err)
	}
	return nil
}

func (r *PurchaseRepositoryImpl) HasCompleted(ctx context.Context, userID, paperID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PurchaseModel{}).
		Where("user_id = ? AND paper_id = ? AND status = ?", userID, paperID, purchase.StatusCompleted.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check purchase",
			"user_id", userID, "paper_id", paperID, "error", err)
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return count > 0, nil
}

func (r *PurchaseRepositoryImpl) ListCompletedByUser(ctx context.Context, userID uint) ([]*purchase.Purchase, error) {
	var records []models.PurchaseModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND status = ?", userID, purchase.StatusCompleted.String()).
		Order("purchased_at DESC").
		Find(&records).Error; err != nil {
		r.logger.Errorw("failed to list purchases", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	purchases := make([]*purchase.Purchase, len(records))
	for i := range records {
		p, err := purchaseFromModel(&records[i])
		if err != nil {
			return nil, err
		}
		purchases[i] = p
	}
	return purchases, nil
}

func (r *PurchaseRepositoryImpl) GetByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	var model models.PurchaseModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("purchase not found")
		}
		r.logger.Errorw("failed to get purchase", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return purchaseFromModel(&model)
}

func purchaseToModel(p *purchase.Purchase) *models.PurchaseModel {
	return &models.PurchaseModel{
		UserID:        p.UserID(),
		PaperID:       p.PaperID(),
		AmountCents:   p.AmountPaid().AmountInCents(),
		Currency:      p.AmountPaid().Currency(),
		Status:        p.Status().String(),
		TransactionID: p.TransactionID(),
		PurchasedAt:   p.PurchasedAt(),
	}
}

func purchaseFromModel(m *models.PurchaseModel) (*purchase.Purchase, error) {
	status, err := purchase.ParseStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct purchase %d: %w", m.ID, err)
	}
	p, err := purchase.ReconstructPurchase(
		m.ID,
		m.UserID,
		m.PaperID,
		money.NewMoney(m.AmountCents, m.Currency),
		status,
		m.TransactionID,
		m.PurchasedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct purchase %d: %w", m.ID, err)
	}
	return p, nil
}
