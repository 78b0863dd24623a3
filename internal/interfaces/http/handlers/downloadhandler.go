package handlers

import (
	"github.com/gin-gonic/gin"

	"paperdesk/internal/interfaces/http/middleware"
	"paperdesk/internal/shared/logger"
	"paperdesk/internal/shared/utils"
)

// DownloadHandler gates paper downloads behind the entitlement check.
type DownloadHandler struct {
	authorizeDownloadUC authorizeDownloadUseCase
	logger              logger.Interface
}

func NewDownloadHandler(authorizeDownloadUC authorizeDownloadUseCase, logger logger.Interface) *DownloadHandler {
	return &DownloadHandler{
		authorizeDownloadUC: authorizeDownloadUC,
		logger:              logger,
	}
}

// DownloadPaper handles GET /papers/:id/download. Ownership is re-checked on
// every request; a 403 here means the caller holds no completed purchase.
func (h *DownloadHandler) DownloadPaper(c *gin.Context) {
	paperID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	download, err := h.authorizeDownloadUC.Execute(c.Request.Context(), middleware.UserID(c), paperID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, 200, "", download)
}
