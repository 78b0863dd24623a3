package usecases

import (
	"context"
	"fmt"

	"paperdesk/internal/application/filestorage"
	purchasedto "paperdesk/internal/application/purchase/dto"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/shared/errors"
	"paperdesk/internal/shared/logger"
)

// AuthorizeDownloadUseCase gates paper file access behind the entitlement
// ledger. The ownership check runs fresh on every call; there is no session
// grant that outlives this request. Owners keep download access after a
// paper is deactivated.
type AuthorizeDownloadUseCase struct {
	purchaseRepo purchase.Repository
	paperRepo    paper.Repository
	storage      filestorage.FileStorage
	logger       logger.Interface
}

func NewAuthorizeDownloadUseCase(
	purchaseRepo purchase.Repository,
	paperRepo paper.Repository,
	storage filestorage.FileStorage,
	logger logger.Interface,
) *AuthorizeDownloadUseCase {
	return &AuthorizeDownloadUseCase{
		purchaseRepo: purchaseRepo,
		paperRepo:    paperRepo,
		storage:      storage,
		logger:       logger,
	}
}

func (uc *AuthorizeDownloadUseCase) Execute(ctx context.Context, userID, paperID uint) (*purchasedto.DownloadDTO, error) {
	owned, err := uc.purchaseRepo.HasCompleted(ctx, userID, paperID)
	if err != nil {
		uc.logger.Errorw("failed to check entitlement",
			"user_id", userID, "paper_id", paperID, "error", err)
		return nil, err
	}
	if !owned {
		return nil, errors.NewForbiddenError("paper not purchased")
	}

	p, err := uc.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		return nil, err
	}

	url, err := uc.storage.PresignGet(ctx, p.FileKey())
	if err != nil {
		uc.logger.Errorw("failed to presign download",
			"paper_id", paperID, "file_key", p.FileKey(), "error", err)
		return nil, fmt.Errorf("failed to presign download: %w", err)
	}

	return &purchasedto.DownloadDTO{
		PaperID:     paperID,
		FileName:    fmt.Sprintf("%s.pdf", p.Title()),
		DownloadURL: url,
	}, nil
}
