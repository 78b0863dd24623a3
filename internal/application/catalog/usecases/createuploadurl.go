package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paperdesk/internal/application/catalog/dto"
	"paperdesk/internal/application/filestorage"
	"paperdesk/internal/shared/logger"
)

// CreateUploadURLUseCase hands the admin client a presigned slot to upload a
// new paper file into. The returned key is what the subsequent create-paper
// call references; the upload bytes never pass through this service.
type CreateUploadURLUseCase struct {
	storage filestorage.FileStorage
	logger  logger.Interface
}

func NewCreateUploadURLUseCase(storage filestorage.FileStorage, logger logger.Interface) *CreateUploadURLUseCase {
	return &CreateUploadURLUseCase{
		storage: storage,
		logger:  logger,
	}
}

func (uc *CreateUploadURLUseCase) Execute(ctx context.Context) (*dto.UploadURLDTO, error) {
	key := newObjectKey()

	url, err := uc.storage.PresignPut(ctx, key)
	if err != nil {
		uc.logger.Errorw("failed to presign upload", "key", key, "error", err)
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &dto.UploadURLDTO{
		Key:       key,
		UploadURL: url,
	}, nil
}

func newObjectKey() string {
	d := time.Now()
	return fmt.Sprintf("papers/%d/%02d/%s.pdf", d.Year(), d.Month(), uuid.New())
}
