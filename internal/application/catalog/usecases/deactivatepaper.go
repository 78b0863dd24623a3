package usecases

import (
	"context"

	"paperdesk/internal/domain/paper"
	"paperdesk/internal/shared/logger"
)

// DeactivatePaperUseCase hides a paper from catalog queries without touching
// existing entitlements; owners keep download rights.
type DeactivatePaperUseCase struct {
	paperRepo paper.Repository
	logger    logger.Interface
}

func NewDeactivatePaperUseCase(paperRepo paper.Repository, logger logger.Interface) *DeactivatePaperUseCase {
	return &DeactivatePaperUseCase{
		paperRepo: paperRepo,
		logger:    logger,
	}
}

func (uc *DeactivatePaperUseCase) Execute(ctx context.Context, paperID uint) error {
	p, err := uc.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		return err
	}

	p.Deactivate()

	if err := uc.paperRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to deactivate paper", "paper_id", paperID, "error", err)
		return err
	}

	uc.logger.Infow("paper deactivated", "paper_id", paperID)
	return nil
}
