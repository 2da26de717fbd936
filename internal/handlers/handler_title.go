package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// titleHandler handles HTTP requests related to payable and receivable titles.
type titleHandler struct {
	titleService portssvc.TitleSvcFacade
}

func newTitleHandler(ts portssvc.TitleSvcFacade) *titleHandler {
	return &titleHandler{titleService: ts}
}

func registerTitleRoutes(rg *gin.RouterGroup, titleService portssvc.TitleSvcFacade) {
	h := newTitleHandler(titleService)

	companyTitles := rg.Group("/companies/:companyID/titles")
	{
		companyTitles.POST("", h.createTitle)
		companyTitles.GET("", h.listTitles)
	}

	titles := rg.Group("/titles/:titleID")
	{
		titles.GET("", h.getTitle)
		titles.PATCH("", h.updateTitle)
		titles.PUT("/amount", h.updateTitleAmount)
		titles.POST("/recompute-active", h.recomputeActive)
		titles.GET("/balance", h.getTitleBalance)
	}
}

// createTitle godoc
// @Summary Record a title
// @Description Records an income (receivable) or expense (payable) obligation and posts its creation journal when the ledger is configured
// @Tags titles
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   title body dto.CreateTitleRequest true "Title details"
// @Success 201 {object} dto.TitleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or preset"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create title"
// @Security BearerAuth
// @Router /companies/{companyID}/titles [post]
func (h *titleHandler) createTitle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	var req dto.CreateTitleRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request to create title", slog.String("type", string(req.Type)), slog.String("amount", req.Amount.String()))

	title, err := h.titleService.CreateTitle(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create title")
		return
	}

	logger.Info("Title created successfully", slog.String("title_id", title.TitleID))
	c.JSON(http.StatusCreated, dto.ToTitleResponse(title))
}

// listTitles godoc
// @Summary List a company's titles
// @Tags titles
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.TitleResponse
// @Security BearerAuth
// @Router /companies/{companyID}/titles [get]
func (h *titleHandler) listTitles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	titles, err := h.titleService.ListTitles(c.Request.Context(), c.Param("companyID"), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "list titles")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTitleResponse(titles))
}

// getTitle godoc
// @Summary Get a title
// @Tags titles
// @Produce  json
// @Param   titleID path string true "Title ID"
// @Success 200 {object} dto.TitleResponse
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Security BearerAuth
// @Router /titles/{titleID} [get]
func (h *titleHandler) getTitle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	title, err := h.titleService.GetTitleByID(c.Request.Context(), c.Param("titleID"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve title")
		return
	}
	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// getTitleBalance godoc
// @Summary Get how much of a title is settled
// @Tags titles
// @Produce  json
// @Param   titleID path string true "Title ID"
// @Success 200 {object} dto.TitleBalanceResponse
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Security BearerAuth
// @Router /titles/{titleID}/balance [get]
func (h *titleHandler) getTitleBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	balance, err := h.titleService.GetTitleBalance(c.Request.Context(), c.Param("titleID"))
	if err != nil {
		respondWithError(c, logger, err, "compute title balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTitleBalanceResponse(balance))
}

// updateTitle godoc
// @Summary Update a title's description, due date or recurrence
// @Tags titles
// @Accept  json
// @Produce  json
// @Param   titleID path string true "Title ID"
// @Param   title body dto.UpdateTitleRequest true "Fields to update"
// @Success 200 {object} dto.TitleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Security BearerAuth
// @Router /titles/{titleID} [patch]
func (h *titleHandler) updateTitle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	titleID := c.Param("titleID")
	var req dto.UpdateTitleRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	title, err := h.titleService.UpdateTitle(c.Request.Context(), titleID, req, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("title_id", titleID)), err, "update title")
		return
	}
	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// updateTitleAmount godoc
// @Summary Change a title's face amount
// @Description Only allowed while the title has no settlements
// @Tags titles
// @Accept  json
// @Produce  json
// @Param   titleID path string true "Title ID"
// @Param   amount body dto.UpdateTitleAmountRequest true "New amount"
// @Success 200 {object} dto.TitleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Failure 422 {object} dto.ErrorResponse "Title already has settlements"
// @Security BearerAuth
// @Router /titles/{titleID}/amount [put]
func (h *titleHandler) updateTitleAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	titleID := c.Param("titleID")
	var req dto.UpdateTitleAmountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("title_id", titleID))
	title, err := h.titleService.UpdateTitleAmount(c.Request.Context(), titleID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update title amount")
		return
	}

	logger.Info("Title amount updated", slog.String("amount", title.Amount.StringFixed(2)))
	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// recomputeActive godoc
// @Summary Re-derive a title's active flag from its settlements
// @Tags titles
// @Produce  json
// @Param   titleID path string true "Title ID"
// @Success 200 {object} dto.TitleResponse
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Security BearerAuth
// @Router /titles/{titleID}/recompute-active [post]
func (h *titleHandler) recomputeActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	title, err := h.titleService.RecomputeActive(c.Request.Context(), c.Param("titleID"), userID)
	if err != nil {
		respondWithError(c, logger, err, "recompute title status")
		return
	}
	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}
