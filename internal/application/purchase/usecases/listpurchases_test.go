package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/domain/shared/money"
)

func completedPurchase(t *testing.T, id, userID, paperID uint, cents int64) *purchase.Purchase {
	t.Helper()
	rec, err := purchase.ReconstructPurchase(
		id, userID, paperID, money.NewMoney(cents, "USD"),
		purchase.StatusCompleted, "SIM_hist", time.Now(),
	)
	require.NoError(t, err)
	return rec
}

func TestListPurchases_JoinsPapers(t *testing.T) {
	purchaseRepo := new(mockPurchaseRepository)
	paperRepo := new(mockPaperRepository)

	records := []*purchase.Purchase{
		completedPurchase(t, 1, 3, 7, 1250),
		completedPurchase(t, 2, 3, 8, 999),
	}
	purchaseRepo.On("ListCompletedByUser", mock.Anything, uint(3)).Return(records, nil)
	paperRepo.On("GetByIDs", mock.Anything, []uint{7, 8}).
		Return([]*paper.Paper{testPaper(t, 7, 1250, true), testPaper(t, 8, 999, true)}, nil)

	uc := NewListPurchasesUseCase(purchaseRepo, paperRepo, discardLogger())
	items, err := uc.Execute(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(7), items[0].Purchase.PaperID)
	require.NotNil(t, items[0].Paper)
	assert.Equal(t, uint(7), items[0].Paper.ID)
	assert.Equal(t, "12.50", items[0].Purchase.AmountPaid)
}

func TestListPurchases_DeletedPaperKeepsRecord(t *testing.T) {
	purchaseRepo := new(mockPurchaseRepository)
	paperRepo := new(mockPaperRepository)

	records := []*purchase.Purchase{completedPurchase(t, 1, 3, 7, 1250)}
	purchaseRepo.On("ListCompletedByUser", mock.Anything, uint(3)).Return(records, nil)
	paperRepo.On("GetByIDs", mock.Anything, []uint{7}).Return([]*paper.Paper{}, nil)

	uc := NewListPurchasesUseCase(purchaseRepo, paperRepo, discardLogger())
	items, err := uc.Execute(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Paper)
	assert.Equal(t, uint(7), items[0].Purchase.PaperID)
}

func TestListPurchases_Empty(t *testing.T) {
	purchaseRepo := new(mockPurchaseRepository)
	paperRepo := new(mockPaperRepository)

	purchaseRepo.On("ListCompletedByUser", mock.Anything, uint(3)).Return([]*purchase.Purchase{}, nil)

	uc := NewListPurchasesUseCase(purchaseRepo, paperRepo, discardLogger())
	items, err := uc.Execute(context.Background(), 3)

	require.NoError(t, err)
	assert.Empty(t, items)
	paperRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}
