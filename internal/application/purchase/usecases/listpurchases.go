package usecases

import (
	"context"

	catalogdto "paperdesk/internal/application/catalog/dto"
	purchasedto "paperdesk/internal/application/purchase/dto"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/shared/logger"
)

// ListPurchasesUseCase returns the caller's purchase history, each ledger
// record joined with its paper. A record whose paper was deleted still shows
// up; its Paper field is just nil.
type ListPurchasesUseCase struct {
	purchaseRepo purchase.Repository
	paperRepo    paper.Repository
	logger       logger.Interface
}

func NewListPurchasesUseCase(
	purchaseRepo purchase.Repository,
	paperRepo paper.Repository,
	logger logger.Interface,
) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{
		purchaseRepo: purchaseRepo,
		paperRepo:    paperRepo,
		logger:       logger,
	}
}

func (uc *ListPurchasesUseCase) Execute(ctx context.Context, userID uint) ([]*purchasedto.HistoryItemDTO, error) {
	records, err := uc.purchaseRepo.ListCompletedByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list purchases", "user_id", userID, "error", err)
		return nil, err
	}

	if len(records) == 0 {
		return []*purchasedto.HistoryItemDTO{}, nil
	}

	ids := make([]uint, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.PaperID())
	}
	papers, err := uc.paperRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load purchased papers", "user_id", userID, "error", err)
		return nil, err
	}
	byID := make(map[uint]*paper.Paper, len(papers))
	for _, p := range papers {
		byID[p.ID()] = p
	}

	items := make([]*purchasedto.HistoryItemDTO, 0, len(records))
	for _, rec := range records {
		item := &purchasedto.HistoryItemDTO{Purchase: *purchasedto.NewPurchaseDTO(rec)}
		if p, ok := byID[rec.PaperID()]; ok {
			item.Paper = catalogdto.NewPaperDTO(p)
		}
		items = append(items, item)
	}
	return items, nil
}
