package usecases

import (
	"context"
	"fmt"

	"paperdesk/internal/application/filestorage"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/shared/logger"
)

// DeletePaperUseCase removes a paper and its stored file. The file goes
// first so a failed storage delete leaves the catalog row intact for retry;
// purchase records survive as the audit trail.
type DeletePaperUseCase struct {
	paperRepo paper.Repository
	storage   filestorage.FileStorage
	logger    logger.Interface
}

func NewDeletePaperUseCase(
	paperRepo paper.Repository,
	storage filestorage.FileStorage,
	logger logger.Interface,
) *DeletePaperUseCase {
	return &DeletePaperUseCase{
		paperRepo: paperRepo,
		storage:   storage,
		logger:    logger,
	}
}

func (uc *DeletePaperUseCase) Execute(ctx context.Context, paperID uint) error {
	p, err := uc.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		return err
	}

	if err := uc.storage.Remove(ctx, p.FileKey()); err != nil {
		uc.logger.Errorw("failed to remove paper file from storage",
			"paper_id", paperID,
			"file_key", p.FileKey(),
			"error", err)
		return fmt.Errorf("failed to remove paper file: %w", err)
	}

	if err := uc.paperRepo.Delete(ctx, paperID); err != nil {
		uc.logger.Errorw("failed to delete paper", "paper_id", paperID, "error", err)
		return err
	}

	uc.logger.Infow("paper deleted", "paper_id", paperID, "file_key", p.FileKey())
	return nil
}
