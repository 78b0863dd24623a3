package usecases

import (
	"context"

	"paperdesk/internal/application/catalog/dto"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/shared/logger"
)

// ListPapersUseCase returns every paper, active or not, for the admin
// dashboard.
type ListPapersUseCase struct {
	paperRepo paper.Repository
	logger    logger.Interface
}

func NewListPapersUseCase(paperRepo paper.Repository, logger logger.Interface) *ListPapersUseCase {
	return &ListPapersUseCase{
		paperRepo: paperRepo,
		logger:    logger,
	}
}

func (uc *ListPapersUseCase) Execute(ctx context.Context) ([]*dto.PaperDTO, error) {
	papers, err := uc.paperRepo.List(ctx, paper.Filter{})
	if err != nil {
		uc.logger.Errorw("failed to list papers", "error", err)
		return nil, err
	}

	result := make([]*dto.PaperDTO, len(papers))
	for i, p := range papers {
		result[i] = dto.NewPaperDTO(p)
	}
	return result, nil
}
