package usecases

import (
	"context"

	"paperdesk/internal/domain/paper"
	"paperdesk/internal/shared/logger"
)

// ActivatePaperUseCase puts a previously hidden paper back on sale.
type ActivatePaperUseCase struct {
	paperRepo paper.Repository
	logger    logger.Interface
}

func NewActivatePaperUseCase(paperRepo paper.Repository, logger logger.Interface) *ActivatePaperUseCase {
	return &ActivatePaperUseCase{
		paperRepo: paperRepo,
		logger:    logger,
	}
}

func (uc *ActivatePaperUseCase) Execute(ctx context.Context, paperID uint) error {
	p, err := uc.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		return err
	}

	p.Activate()

	if err := uc.paperRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to activate paper", "paper_id", paperID, "error", err)
		return err
	}

	uc.logger.Infow("paper activated", "paper_id", paperID)
	return nil
}
