package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paperdesk/internal/application/paymentgateway"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/domain/shared/money"
	"paperdesk/internal/shared/errors"
)

func testPaper(t *testing.T, id uint, cents int64, active bool) *paper.Paper {
	t.Helper()
	now := time.Now()
	p, err := paper.ReconstructPaper(
		id, "Algebra II Final", "2023 spring final exam", "Mathematics", "11",
		nil, money.NewMoney(cents, "USD"), fmt.Sprintf("papers/%d.pdf", id), "",
		nil, 0, active, now, now,
	)
	require.NoError(t, err)
	return p
}

func validCard() paymentgateway.CardDetails {
	return paymentgateway.CardDetails{
		Number:         "4242424242424242",
		CardholderName: "Jane Doe",
		Expiry:         "12/30",
		CVV:            "123",
	}
}

func TestPurchasePaper_Success(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 1250, true)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)
	purchaseRepo.On("HasCompleted", mock.Anything, uint(3), uint(7)).Return(false, nil)
	gateway.On("Charge", mock.Anything, mock.MatchedBy(func(req paymentgateway.ChargeRequest) bool {
		return req.Amount.AmountInCents() == 1250
	})).Return(&paymentgateway.ChargeResult{Approved: true, TransactionID: "SIM_abc"}, nil)
	purchaseRepo.On("CreateCompleted", mock.Anything, mock.Anything).Return(nil)
	paperRepo.On("IncrementDownloadCount", mock.Anything, uint(7)).Return(nil)

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.PaperID)
	assert.Equal(t, "12.50", result.AmountPaid)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "SIM_abc", result.TransactionID)
	paperRepo.AssertExpectations(t)
	purchaseRepo.AssertExpectations(t)
}

func TestPurchasePaper_PaperNotFound(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	paperRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, errors.NewNotFoundError("paper not found"))

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 99, Card: validCard()})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}

func TestPurchasePaper_InactivePaper(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 1250, false)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}

func TestPurchasePaper_AlreadyOwned(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 1250, true)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)
	purchaseRepo.On("HasCompleted", mock.Anything, uint(3), uint(7)).Return(true, nil)

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	// no charge, no writes
	gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
	purchaseRepo.AssertNotCalled(t, "CreateCompleted", mock.Anything, mock.Anything)
	paperRepo.AssertNotCalled(t, "IncrementDownloadCount", mock.Anything, mock.Anything)
}

func TestPurchasePaper_Declined(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 1250, true)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)
	purchaseRepo.On("HasCompleted", mock.Anything, uint(3), uint(7)).Return(false, nil)
	gateway.On("Charge", mock.Anything, mock.Anything).
		Return(&paymentgateway.ChargeResult{Approved: false, DeclineReason: "insufficient funds"}, nil)
	purchaseRepo.On("CreateFailed", mock.Anything, mock.MatchedBy(func(rec *purchase.Purchase) bool {
		return rec.Status() == purchase.StatusFailed && !rec.GrantsOwnership()
	})).Return(nil)

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	assert.Nil(t, result)
	assert.True(t, errors.IsPaymentRequiredError(err))
	// a declined charge grants nothing and bumps nothing
	purchaseRepo.AssertNotCalled(t, "CreateCompleted", mock.Anything, mock.Anything)
	paperRepo.AssertNotCalled(t, "IncrementDownloadCount", mock.Anything, mock.Anything)
	purchaseRepo.AssertExpectations(t)
}

func TestPurchasePaper_DeclinedAuditWriteFailureStillDeclines(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 1250, true)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)
	purchaseRepo.On("HasCompleted", mock.Anything, uint(3), uint(7)).Return(false, nil)
	gateway.On("Charge", mock.Anything, mock.Anything).
		Return(&paymentgateway.ChargeResult{Approved: false, DeclineReason: "card expired"}, nil)
	purchaseRepo.On("CreateFailed", mock.Anything, mock.Anything).Return(fmt.Errorf("db down"))

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	_, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	assert.True(t, errors.IsPaymentRequiredError(err))
}

func TestPurchasePaper_GatewayUnreachable(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 1250, true)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)
	purchaseRepo.On("HasCompleted", mock.Anything, uint(3), uint(7)).Return(false, nil)
	gateway.On("Charge", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("connection refused"))

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.False(t, errors.IsPaymentRequiredError(err))
	purchaseRepo.AssertNotCalled(t, "CreateCompleted", mock.Anything, mock.Anything)
	purchaseRepo.AssertNotCalled(t, "CreateFailed", mock.Anything, mock.Anything)
	paperRepo.AssertNotCalled(t, "IncrementDownloadCount", mock.Anything, mock.Anything)
}

func TestPurchasePaper_InsertRaceMapsToConflict(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 1250, true)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)
	purchaseRepo.On("HasCompleted", mock.Anything, uint(3), uint(7)).Return(false, nil)
	gateway.On("Charge", mock.Anything, mock.Anything).
		Return(&paymentgateway.ChargeResult{Approved: true, TransactionID: "SIM_race"}, nil)
	purchaseRepo.On("CreateCompleted", mock.Anything, mock.Anything).
		Return(errors.NewConflictError("purchase already exists"))

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	// the increment runs after the insert, so a losing race never bumps the counter
	paperRepo.AssertNotCalled(t, "IncrementDownloadCount", mock.Anything, mock.Anything)
}

func TestPurchasePaper_IncrementFailureRollsBack(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 1250, true)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)
	purchaseRepo.On("HasCompleted", mock.Anything, uint(3), uint(7)).Return(false, nil)
	gateway.On("Charge", mock.Anything, mock.Anything).
		Return(&paymentgateway.ChargeResult{Approved: true, TransactionID: "SIM_inc"}, nil)
	purchaseRepo.On("CreateCompleted", mock.Anything, mock.Anything).Return(nil)
	paperRepo.On("IncrementDownloadCount", mock.Anything, uint(7)).Return(fmt.Errorf("deadlock"))

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.False(t, errors.IsConflictError(err))
}

func TestPurchasePaper_SnapshotsPriceAtChargeTime(t *testing.T) {
	paperRepo := new(mockPaperRepository)
	purchaseRepo := new(mockPurchaseRepository)
	gateway := new(mockGateway)

	p := testPaper(t, 7, 999, true)
	paperRepo.On("GetByID", mock.Anything, uint(7)).Return(p, nil)
	purchaseRepo.On("HasCompleted", mock.Anything, uint(3), uint(7)).Return(false, nil)
	gateway.On("Charge", mock.Anything, mock.Anything).
		Return(&paymentgateway.ChargeResult{Approved: true, TransactionID: "SIM_snap"}, nil)
	purchaseRepo.On("CreateCompleted", mock.Anything, mock.MatchedBy(func(rec *purchase.Purchase) bool {
		return rec.AmountPaid().AmountInCents() == 999
	})).Return(nil)
	paperRepo.On("IncrementDownloadCount", mock.Anything, uint(7)).Return(nil)

	uc := NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, fakeTxManager{}, discardLogger())
	result, err := uc.Execute(context.Background(), PurchasePaperCommand{UserID: 3, PaperID: 7, Card: validCard()})

	require.NoError(t, err)
	assert.Equal(t, "9.99", result.AmountPaid)
	purchaseRepo.AssertExpectations(t)
}
