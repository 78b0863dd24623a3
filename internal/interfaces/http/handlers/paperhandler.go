package handlers

import (
	"github.com/gin-gonic/gin"

	"paperdesk/internal/application/catalog/usecases"
	"paperdesk/internal/interfaces/http/middleware"
	"paperdesk/internal/shared/logger"
	"paperdesk/internal/shared/utils"
)

// PaperHandler serves catalog endpoints: public search and the admin CRUD
// surface.
type PaperHandler struct {
	createPaperUC     createPaperUseCase
	updatePaperUC     updatePaperUseCase
	getPaperUC        getPaperUseCase
	listPapersUC      listPapersUseCase
	searchPapersUC    searchPapersUseCase
	activatePaperUC   activatePaperUseCase
	deactivatePaperUC deactivatePaperUseCase
	deletePaperUC     deletePaperUseCase
	createUploadURLUC createUploadURLUseCase
	logger            logger.Interface
}

func NewPaperHandler(
	createPaperUC createPaperUseCase,
	updatePaperUC updatePaperUseCase,
	getPaperUC getPaperUseCase,
	listPapersUC listPapersUseCase,
	searchPapersUC searchPapersUseCase,
	activatePaperUC activatePaperUseCase,
	deactivatePaperUC deactivatePaperUseCase,
	deletePaperUC deletePaperUseCase,
	createUploadURLUC createUploadURLUseCase,
	logger logger.Interface,
) *PaperHandler {
	return &PaperHandler{
		createPaperUC:     createPaperUC,
		updatePaperUC:     updatePaperUC,
		getPaperUC:        getPaperUC,
		listPapersUC:      listPapersUC,
		searchPapersUC:    searchPapersUC,
		activatePaperUC:   activatePaperUC,
		deactivatePaperUC: deactivatePaperUC,
		deletePaperUC:     deletePaperUC,
		createUploadURLUC: createUploadURLUC,
		logger:            logger,
	}
}

type CreatePaperRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject" binding:"required"`
	GradeLevel  string `json:"grade_level"`
	Year        *int   `json:"year"`
	Price       string `json:"price" binding:"required"`
	Currency    string `json:"currency"`
	FileKey     string `json:"file_key" binding:"required"`
	PreviewURL  string `json:"preview_url"`
}

type UpdatePaperRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject" binding:"required"`
	GradeLevel  string `json:"grade_level"`
	Year        *int   `json:"year"`
	Price       string `json:"price" binding:"required"`
	Currency    string `json:"currency"`
}

// UpdatePaperStatusRequest toggles a paper's catalog visibility.
type UpdatePaperStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// SearchPapers handles GET /papers. Anonymous callers see active papers;
// signed-in callers additionally see papers they own.
func (h *PaperHandler) SearchPapers(c *gin.Context) {
	query := usecases.SearchPapersQuery{
		UserID:     middleware.UserID(c),
		Text:       c.Query("q"),
		Subject:    c.Query("subject"),
		GradeLevel: c.Query("grade_level"),
		OwnedOnly:  c.Query("owned") == "true",
	}

	listings, err := h.searchPapersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, 200, "", listings)
}

// GetPaper handles GET /papers/:id
func (h *PaperHandler) GetPaper(c *gin.Context) {
	paperID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	paper, err := h.getPaperUC.Execute(c.Request.Context(), paperID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, 200, "", paper)
}

// ListPapers handles GET /admin/papers, returning active and inactive papers.
func (h *PaperHandler) ListPapers(c *gin.Context) {
	papers, err := h.listPapersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, 200, "", papers)
}

// CreatePaper handles POST /admin/papers
func (h *PaperHandler) CreatePaper(c *gin.Context) {
	var req CreatePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create paper", "error", err)
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	uploadedBy := middleware.UserID(c)
	cmd := usecases.CreatePaperCommand{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		Year:        req.Year,
		Price:       req.Price,
		Currency:    req.Currency,
		FileKey:     req.FileKey,
		PreviewURL:  req.PreviewURL,
		UploadedBy:  &uploadedBy,
	}

	paper, err := h.createPaperUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, paper, "paper created")
}

// UpdatePaper handles PUT /admin/papers/:id
func (h *PaperHandler) UpdatePaper(c *gin.Context) {
	paperID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update paper", "error", err)
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	cmd := usecases.UpdatePaperCommand{
		PaperID:     paperID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		GradeLevel:  req.GradeLevel,
		Year:        req.Year,
		Price:       req.Price,
		Currency:    req.Currency,
	}

	paper, err := h.updatePaperUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, 200, "paper updated", paper)
}

// UpdatePaperStatus handles PATCH /admin/papers/:id/status
func (h *PaperHandler) UpdatePaperStatus(c *gin.Context) {
	paperID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePaperStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	if req.Status == "active" {
		err = h.activatePaperUC.Execute(c.Request.Context(), paperID)
	} else {
		err = h.deactivatePaperUC.Execute(c.Request.Context(), paperID)
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, 200, "paper status updated", nil)
}

// DeletePaper handles DELETE /admin/papers/:id
func (h *PaperHandler) DeletePaper(c *gin.Context) {
	paperID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePaperUC.Execute(c.Request.Context(), paperID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// CreateUploadURL handles POST /admin/papers/upload-url
func (h *PaperHandler) CreateUploadURL(c *gin.Context) {
	slot, err := h.createUploadURLUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, slot, "upload slot created")
}
