package handlers

import (
	"context"

	purchasedto "paperdesk/internal/application/purchase/dto"
	"paperdesk/internal/application/purchase/usecases"
)

// Use case interfaces for PurchaseHandler and DownloadHandler

type purchasePaperUseCase interface {
	Execute(ctx context.Context, cmd usecases.PurchasePaperCommand) (*purchasedto.PurchaseDTO, error)
}

type listPurchasesUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*purchasedto.HistoryItemDTO, error)
}

type authorizeDownloadUseCase interface {
	Execute(ctx context.Context, userID, paperID uint) (*purchasedto.DownloadDTO, error)
}
