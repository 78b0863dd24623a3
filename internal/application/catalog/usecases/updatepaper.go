package usecases

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"paperdesk/internal/application/catalog/dto"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/shared/money"
	"paperdesk/internal/shared/errors"
	"paperdesk/internal/shared/logger"
)

type UpdatePaperCommand struct {
	PaperID     uint
	Title       string
	Description string
	Subject     string
	GradeLevel  string
	Year        *int
	Price       string
	Currency    string
}

type UpdatePaperUseCase struct {
	paperRepo paper.Repository
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

func NewUpdatePaperUseCase(paperRepo paper.Repository, logger logger.Interface) *UpdatePaperUseCase {
	return &UpdatePaperUseCase{
		paperRepo: paperRepo,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

func (uc *UpdatePaperUseCase) Execute(ctx context.Context, cmd UpdatePaperCommand) (*dto.PaperDTO, error) {
	p, err := uc.paperRepo.GetByID(ctx, cmd.PaperID)
	if err != nil {
		return nil, err
	}

	price, err := money.ParseAmount(cmd.Price, cmd.Currency)
	if err != nil {
		uc.logger.Warnw("invalid price in update paper command",
			"paper_id", cmd.PaperID,
			"price", cmd.Price,
			"error", err)
		return nil, errors.NewValidationError("invalid price", err.Error())
	}

	err = p.UpdateDetails(
		uc.sanitizer.Sanitize(cmd.Title),
		uc.sanitizer.Sanitize(cmd.Description),
		uc.sanitizer.Sanitize(cmd.Subject),
		uc.sanitizer.Sanitize(cmd.GradeLevel),
		cmd.Year,
		price,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.paperRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update paper", "paper_id", cmd.PaperID, "error", err)
		return nil, err
	}

	uc.logger.Infow("paper updated", "paper_id", p.ID())
	return dto.NewPaperDTO(p), nil
}
