package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/shared/money"
	"paperdesk/internal/infrastructure/persistence/models"
	"paperdesk/internal/shared/db"
	"paperdesk/internal/shared/errors"
	"paperdesk/internal/shared/logger"
)

// PaperRepositoryImpl implements the paper.Repository interface
type PaperRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPaperRepository creates a new paper repository instance
func NewPaperRepository(database *gorm.DB, logger logger.Interface) paper.Repository {
	return &PaperRepositoryImpl{
		db:     database,
		logger: logger,
	}
}

func (r *PaperRepositoryImpl) Create(ctx context.Context, p *paper.Paper) error {
	model := paperToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create paper", "title", p.Title(), "error", err)
		return fmt.Errorf("failed to create paper: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set paper ID: %w", err)
	}
	return nil
}

func (r *PaperRepositoryImpl) Update(ctx context.Context, p *paper.Paper) error {
	model := paperToModel(p)
	model.ID = p.ID()

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaperModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"subject":     model.Subject,
			"grade_level": model.GradeLevel,
			"year":        model.Year,
			"price_cents": model.PriceCents,
			"currency":    model.Currency,
			"preview_url": model.PreviewURL,
			"is_active":   model.IsActive,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update paper", "id", p.ID(), "error", result.Error)
		return fmt.Errorf("failed to update paper: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("paper not found")
	}
	return nil
}

func (r *PaperRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PaperModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete paper", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete paper: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("paper not found")
	}
	return nil
}

func (r *PaperRepositoryImpl) GetByID(ctx context.Context, id uint) (*paper.Paper, error) {
	var model models.PaperModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("paper not found")
		}
		r.logger.Errorw("failed to get paper", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get paper: %w", err)
	}
	return paperFromModel(&model)
}

func (r *PaperRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*paper.Paper, error) {
	if len(ids) == 0 {
		return []*paper.Paper{}, nil
	}

	var papers []models.PaperModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", ids).
		Find(&papers).Error; err != nil {
		r.logger.Errorw("failed to get papers by ids", "error", err)
		return nil, fmt.Errorf("failed to get papers: %w", err)
	}
	return papersFromModels(papers)
}

func (r *PaperRepositoryImpl) List(ctx context.Context, filter paper.Filter) ([]*paper.Paper, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PaperModel{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.GradeLevel != "" {
		query = query.Where("grade_level = ?", filter.GradeLevel)
	}
	if filter.Text != "" {
		needle := "%" + filter.Text + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(subject) LIKE LOWER(?)",
			needle, needle, needle,
		)
	}

	var papers []models.PaperModel
	if err := query.Order("created_at DESC").Find(&papers).Error; err != nil {
		r.logger.Errorw("failed to list papers", "error", err)
		return nil, fmt.Errorf("failed to list papers: %w", err)
	}
	return papersFromModels(papers)
}

// IncrementDownloadCount bumps the counter in the database so concurrent
// purchases never lose updates.
func (r *PaperRepositoryImpl) IncrementDownloadCount(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaperModel{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1))
	if result.Error != nil {
		r.logger.Errorw("failed to increment download count", "id", id, "error", result.Error)
		return fmt.Errorf("failed to increment download count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("paper not found")
	}
	return nil
}

func paperToModel(p *paper.Paper) *models.PaperModel {
	return &models.PaperModel{
		Title:         p.Title(),
		Description:   p.Description(),
		Subject:       p.Subject(),
		GradeLevel:    p.GradeLevel(),
		Year:          p.Year(),
		PriceCents:    p.Price().AmountInCents(),
		Currency:      p.Price().Currency(),
		FileKey:       p.FileKey(),
		PreviewURL:    p.PreviewURL(),
		UploadedBy:    p.UploadedBy(),
		DownloadCount: p.DownloadCount(),
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func paperFromModel(m *models.PaperModel) (*paper.Paper, error) {
	p, err := paper.ReconstructPaper(
		m.ID,
		m.Title,
		m.Description,
		m.Subject,
		m.GradeLevel,
		m.Year,
		money.NewMoney(m.PriceCents, m.Currency),
		m.FileKey,
		m.PreviewURL,
		m.UploadedBy,
		m.DownloadCount,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct paper %d: %w", m.ID, err)
	}
	return p, nil
}

func papersFromModels(ms []models.PaperModel) ([]*paper.Paper, error) {
	papers := make([]*paper.Paper, len(ms))
	for i := range ms {
		p, err := paperFromModel(&ms[i])
		if err != nil {
			return nil, err
		}
		papers[i] = p
	}
	return papers, nil
}
