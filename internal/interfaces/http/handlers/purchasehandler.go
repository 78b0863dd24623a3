package handlers

import (
	"github.com/gin-gonic/gin"

	"paperdesk/internal/application/paymentgateway"
	"paperdesk/internal/application/purchase/usecases"
	"paperdesk/internal/interfaces/http/middleware"
	"paperdesk/internal/shared/logger"
	"paperdesk/internal/shared/utils"
)

// PurchaseHandler serves the purchase flow and purchase history.
type PurchaseHandler struct {
	purchasePaperUC purchasePaperUseCase
	listPurchasesUC listPurchasesUseCase
	logger          logger.Interface
}

func NewPurchaseHandler(
	purchasePaperUC purchasePaperUseCase,
	listPurchasesUC listPurchasesUseCase,
	logger logger.Interface,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchasePaperUC: purchasePaperUC,
		listPurchasesUC: listPurchasesUC,
		logger:          logger,
	}
}

type PurchaseRequest struct {
	CardNumber     string `json:"card_number" binding:"required"`
	CardholderName string `json:"cardholder_name" binding:"required"`
	Expiry         string `json:"expiry" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
}

// PurchasePaper handles POST /papers/:id/purchase
func (h *PurchaseHandler) PurchasePaper(c *gin.Context) {
	paperID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for purchase", "error", err)
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	cmd := usecases.PurchasePaperCommand{
		UserID:  middleware.UserID(c),
		PaperID: paperID,
		Card: paymentgateway.CardDetails{
			Number:         req.CardNumber,
			CardholderName: req.CardholderName,
			Expiry:         req.Expiry,
			CVV:            req.CVV,
		},
	}

	purchase, err := h.purchasePaperUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, purchase, "purchase completed")
}

// ListPurchases handles GET /purchases
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	items, err := h.listPurchasesUC.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, 200, "", items)
}
