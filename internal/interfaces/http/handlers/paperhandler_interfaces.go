package handlers

import (
	"context"

	catalogdto "paperdesk/internal/application/catalog/dto"
	"paperdesk/internal/application/catalog/usecases"
)

// Use case interfaces for PaperHandler

type createPaperUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePaperCommand) (*catalogdto.PaperDTO, error)
}

type updatePaperUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePaperCommand) (*catalogdto.PaperDTO, error)
}

type getPaperUseCase interface {
	Execute(ctx context.Context, paperID uint) (*catalogdto.PaperDTO, error)
}

type listPapersUseCase interface {
	Execute(ctx context.Context) ([]*catalogdto.PaperDTO, error)
}

type searchPapersUseCase interface {
	Execute(ctx context.Context, query usecases.SearchPapersQuery) ([]*catalogdto.ListingDTO, error)
}

type activatePaperUseCase interface {
	Execute(ctx context.Context, paperID uint) error
}

type deactivatePaperUseCase interface {
	Execute(ctx context.Context, paperID uint) error
}

type deletePaperUseCase interface {
	Execute(ctx context.Context, paperID uint) error
}

type createUploadURLUseCase interface {
	Execute(ctx context.Context) (*catalogdto.UploadURLDTO, error)
}
