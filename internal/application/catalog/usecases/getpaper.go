package usecases

import (
	"context"

	"paperdesk/internal/application/catalog/dto"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/shared/logger"
)

type GetPaperUseCase struct {
	paperRepo paper.Repository
	logger    logger.Interface
}

func NewGetPaperUseCase(paperRepo paper.Repository, logger logger.Interface) *GetPaperUseCase {
	return &GetPaperUseCase{
		paperRepo: paperRepo,
		logger:    logger,
	}
}

func (uc *GetPaperUseCase) Execute(ctx context.Context, paperID uint) (*dto.PaperDTO, error) {
	p, err := uc.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		return nil, err
	}
	return dto.NewPaperDTO(p), nil
}
