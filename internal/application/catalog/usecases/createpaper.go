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

type CreatePaperCommand struct {
	Title       string
	Description string
	Subject     string
	GradeLevel  string
	Year        *int
	Price       string // decimal string, e.g. "12.50"
	Currency    string
	FileKey     string
	PreviewURL  string
	UploadedBy  *uint
}

type CreatePaperUseCase struct {
	paperRepo paper.Repository
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

func NewCreatePaperUseCase(paperRepo paper.Repository, logger logger.Interface) *CreatePaperUseCase {
	return &CreatePaperUseCase{
		paperRepo: paperRepo,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

func (uc *CreatePaperUseCase) Execute(ctx context.Context, cmd CreatePaperCommand) (*dto.PaperDTO, error) {
	price, err := money.ParseAmount(cmd.Price, cmd.Currency)
	if err != nil {
		uc.logger.Warnw("invalid price in create paper command", "price", cmd.Price, "error", err)
		return nil, errors.NewValidationError("invalid price", err.Error())
	}

	p, err := paper.NewPaper(
		uc.sanitizer.Sanitize(cmd.Title),
		uc.sanitizer.Sanitize(cmd.Description),
		uc.sanitizer.Sanitize(cmd.Subject),
		uc.sanitizer.Sanitize(cmd.GradeLevel),
		cmd.Year,
		price,
		cmd.FileKey,
		cmd.PreviewURL,
		cmd.UploadedBy,
	)
	if err != nil {
		uc.logger.Warnw("invalid create paper command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.paperRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create paper", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("paper created",
		"paper_id", p.ID(),
		"subject", p.Subject(),
		"price", p.Price().String())

	return dto.NewPaperDTO(p), nil
}
