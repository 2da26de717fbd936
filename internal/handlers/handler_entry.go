package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to settlements of titles.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	titleEntries := rg.Group("/titles/:titleID/entries")
	{
		titleEntries.POST("", h.createEntry)
		titleEntries.GET("", h.listEntries)
	}

	entries := rg.Group("/entries/:entryID")
	{
		entries.GET("", h.getEntry)
		entries.PATCH("", h.updateEntry)
		entries.DELETE("", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Settle part of a title
// @Description Records a payment against a title and posts its settlement journal. Rejected with the remaining amount when it would overpay the title.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   titleID path string true "Title ID"
// @Param   entry body dto.CreateEntryRequest true "Settlement details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or settling account"
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification, retry"
// @Failure 422 {object} dto.ErrorResponse "Overpayment, see remaining"
// @Security BearerAuth
// @Router /titles/{titleID}/entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	titleID := c.Param("titleID")
	var req dto.CreateEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("title_id", titleID))
	logger.Info("Received request to settle title", slog.String("amount", req.Amount.String()), slog.String("account_id", req.AccountID))

	entry, err := h.entryService.CreateEntry(c.Request.Context(), titleID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create entry")
		return
	}

	logger.Info("Entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List the settlements of a title
// @Description Ordered by payment date
// @Tags entries
// @Produce  json
// @Param   titleID path string true "Title ID"
// @Success 200 {array} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Security BearerAuth
// @Router /titles/{titleID}/entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), c.Param("titleID"))
	if err != nil {
		respondWithError(c, logger, err, "list entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// getEntry godoc
// @Summary Get a settlement
// @Tags entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Change a settlement
// @Description Changing amount, account, date or title reverses the previous settlement journal and posts a new one
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 422 {object} dto.ErrorResponse "Overpayment, see remaining"
// @Security BearerAuth
// @Router /entries/{entryID} [patch]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")
	var req dto.UpdateEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("entry_id", entryID))
	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "update entry")
		return
	}

	logger.Info("Entry updated successfully", slog.Int("revision", entry.Revision))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a settlement
// @Description Removes the settlement and posts the reversal of its journal
// @Tags entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("entry_id", entryID))
	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID, userID); err != nil {
		respondWithError(c, logger, err, "delete entry")
		return
	}

	logger.Info("Entry deleted successfully")
	c.Status(http.StatusNoContent)
}
