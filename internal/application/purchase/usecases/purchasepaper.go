package usecases

import (
	"context"
	"fmt"

	"paperdesk/internal/application/paymentgateway"
	purchasedto "paperdesk/internal/application/purchase/dto"
	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/shared/errors"
	"paperdesk/internal/shared/logger"
)

// transactionRunner is the slice of db.TransactionManager the orchestrator
// needs. Kept local so tests can run the unit of work without a database.
type transactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type PurchasePaperCommand struct {
	UserID  uint
	PaperID uint
	Card    paymentgateway.CardDetails
}

// PurchasePaperUseCase orchestrates a purchase attempt: validate the paper,
// snapshot its price, charge the gateway, then record the entitlement and
// bump the paper's counter in one transaction. The ledger insert is the
// authority on duplicates; the up-front ownership check only fails fast.
type PurchasePaperUseCase struct {
	paperRepo    paper.Repository
	purchaseRepo purchase.Repository
	gateway      paymentgateway.Gateway
	txManager    transactionRunner
	logger       logger.Interface
}

func NewPurchasePaperUseCase(
	paperRepo paper.Repository,
	purchaseRepo purchase.Repository,
	gateway paymentgateway.Gateway,
	txManager transactionRunner,
	logger logger.Interface,
) *PurchasePaperUseCase {
	return &PurchasePaperUseCase{
		paperRepo:    paperRepo,
		purchaseRepo: purchaseRepo,
		gateway:      gateway,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *PurchasePaperUseCase) Execute(ctx context.Context, cmd PurchasePaperCommand) (*purchasedto.PurchaseDTO, error) {
	p, err := uc.paperRepo.GetByID(ctx, cmd.PaperID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, errors.NewValidationError("paper is not available for purchase")
	}

	alreadyOwned, err := uc.purchaseRepo.HasCompleted(ctx, cmd.UserID, cmd.PaperID)
	if err != nil {
		uc.logger.Errorw("failed to check existing purchase",
			"user_id", cmd.UserID, "paper_id", cmd.PaperID, "error", err)
		return nil, err
	}
	if alreadyOwned {
		return nil, errors.NewConflictError("paper already purchased")
	}

	// Price snapshot. The ledger keeps the amount charged now, not whatever
	// the paper costs later.
	rec, err := purchase.NewPurchase(cmd.UserID, cmd.PaperID, p.Price())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	result, err := uc.gateway.Charge(ctx, paymentgateway.ChargeRequest{
		Amount:    p.Price(),
		Reference: fmt.Sprintf("paper-%d-user-%d", cmd.PaperID, cmd.UserID),
		Card:      cmd.Card,
	})
	if err != nil {
		uc.logger.Errorw("payment gateway unreachable",
			"user_id", cmd.UserID, "paper_id", cmd.PaperID, "error", err)
		return nil, errors.NewInternalError("payment could not be processed", err.Error())
	}

	if !result.Approved {
		if failErr := rec.Fail(); failErr == nil {
			// Audit row only. A failed attempt must leave no entitlement and
			// no counter change, so this stays outside any transaction and a
			// write error here does not mask the decline.
			if auditErr := uc.purchaseRepo.CreateFailed(ctx, rec); auditErr != nil {
				uc.logger.Warnw("failed to record declined purchase attempt",
					"user_id", cmd.UserID, "paper_id", cmd.PaperID, "error", auditErr)
			}
		}
		uc.logger.Infow("purchase declined",
			"user_id", cmd.UserID, "paper_id", cmd.PaperID, "reason", result.DeclineReason)
		return nil, errors.NewPaymentRequiredError("payment was declined", result.DeclineReason)
	}

	if err := rec.Complete(result.TransactionID); err != nil {
		return nil, errors.NewInternalError("failed to finalize purchase", err.Error())
	}

	// Entitlement insert and counter increment commit or roll back together.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.purchaseRepo.CreateCompleted(txCtx, rec); err != nil {
			return err
		}
		return uc.paperRepo.IncrementDownloadCount(txCtx, cmd.PaperID)
	})
	if err != nil {
		if errors.IsConflictError(err) {
			// A concurrent attempt won the race after our fast-fail check.
			uc.logger.Infow("concurrent purchase lost the insert race",
				"user_id", cmd.UserID, "paper_id", cmd.PaperID, "transaction_id", result.TransactionID)
			return nil, errors.NewConflictError("paper already purchased")
		}
		uc.logger.Errorw("failed to record purchase",
			"user_id", cmd.UserID, "paper_id", cmd.PaperID,
			"transaction_id", result.TransactionID, "error", err)
		return nil, err
	}

	uc.logger.Infow("purchase completed",
		"purchase_id", rec.ID(),
		"user_id", cmd.UserID,
		"paper_id", cmd.PaperID,
		"amount", rec.AmountPaid().Decimal(),
		"transaction_id", result.TransactionID)

	return purchasedto.NewPurchaseDTO(rec), nil
}
