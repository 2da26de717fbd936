package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler serves the derived journal. Journals are never written through the API.
type journalHandler struct {
	journalService portssvc.JournalReaderSvc
}

func newJournalHandler(js portssvc.JournalReaderSvc) *journalHandler {
	return &journalHandler{journalService: js}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalReaderSvc) {
	h := newJournalHandler(journalService)

	rg.GET("/companies/:companyID/journals", h.listJournals)

	journals := rg.Group("/journals")
	{
		journals.GET("/by-reference", h.getJournalByReference)
		journals.GET("/:journalID", h.getJournal)
	}
}

// listJournals godoc
// @Summary List a company's journals
// @Description Newest first, with their lines
// @Tags journals
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.JournalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /companies/{companyID}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	journals, err := h.journalService.ListJournals(c.Request.Context(), companyID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger.With(slog.String("company_id", companyID)), err, "list journals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalResponse(journals))
}

// getJournal godoc
// @Summary Get a journal and its lines
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} dto.ErrorResponse "Journal not found"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), c.Param("journalID"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// getJournalByReference godoc
// @Summary Get the journal derived from one lifecycle event
// @Tags journals
// @Produce  json
// @Param   referenceType query string true "TITLE_CREATION, TITLE_SETTLEMENT or TITLE_SETTLEMENT_REVERSAL"
// @Param   referenceID query string true "Title id, entry id or reversal reference"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid reference"
// @Failure 404 {object} dto.ErrorResponse "Journal not found"
// @Security BearerAuth
// @Router /journals/by-reference [get]
func (h *journalHandler) getJournalByReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	var params dto.JournalReferenceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for journal reference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	journal, err := h.journalService.GetJournalByReference(c.Request.Context(), params.ReferenceType, params.ReferenceID)
	if err != nil {
		respondWithError(c, logger, err, "retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}
