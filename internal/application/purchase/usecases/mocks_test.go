package usecases

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"paperdesk/internal/application/paymentgateway"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/shared/logger"
)

type mockPaperRepository struct {
	mock.Mock
}

func (m *mockPaperRepository) Create(ctx context.Context, p *paper.Paper) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaperRepository) Update(ctx context.Context, p *paper.Paper) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaperRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPaperRepository) GetByID(ctx context.Context, id uint) (*paper.Paper, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paper.Paper), args.Error(1)
}

func (m *mockPaperRepository) GetByIDs(ctx context.Context, ids []uint) ([]*paper.Paper, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*paper.Paper), args.Error(1)
}

func (m *mockPaperRepository) List(ctx context.Context, filter paper.Filter) ([]*paper.Paper, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*paper.Paper), args.Error(1)
}

func (m *mockPaperRepository) IncrementDownloadCount(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPurchaseRepository struct {
	mock.Mock
}

func (m *mockPurchaseRepository) CreateCompleted(ctx context.Context, p *purchase.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPurchaseRepository) CreateFailed(ctx context.Context, p *purchase.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPurchaseRepository) HasCompleted(ctx context.Context, userID, paperID uint) (bool, error) {
	args := m.Called(ctx, userID, paperID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPurchaseRepository) ListCompletedByUser(ctx context.Context, userID uint) ([]*purchase.Purchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*purchase.Purchase), args.Error(1)
}

func (m *mockPurchaseRepository) GetByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.Purchase), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Charge(ctx context.Context, req paymentgateway.ChargeRequest) (*paymentgateway.ChargeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentgateway.ChargeResult), args.Error(1)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) PresignPut(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) PresignGet(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// fakeTxManager runs the unit of work directly, no database involved.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
