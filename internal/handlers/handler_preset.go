package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// presetHandler handles HTTP requests related to posting presets.
type presetHandler struct {
	presetService portssvc.PresetSvcFacade
}

func newPresetHandler(ps portssvc.PresetSvcFacade) *presetHandler {
	return &presetHandler{presetService: ps}
}

func registerPresetRoutes(rg *gin.RouterGroup, presetService portssvc.PresetSvcFacade) {
	h := newPresetHandler(presetService)

	presets := rg.Group("/presets")
	{
		presets.POST("", h.createPreset)
		presets.GET("", h.listPresets)
		presets.GET("/:presetID", h.getPreset)
		presets.PUT("/:presetID", h.updatePreset)
		presets.GET("/:presetID/plan", h.resolvePresetPlan)
	}
}

// createPreset godoc
// @Summary Create a posting preset
// @Description Every referenced account must be analytic and all must share one plan
// @Tags presets
// @Accept  json
// @Produce  json
// @Param   preset body dto.CreatePresetRequest true "Preset details"
// @Success 201 {object} dto.PresetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input, non-analytic account or plan mismatch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /presets [post]
func (h *presetHandler) createPreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePresetRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	preset, err := h.presetService.CreatePreset(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create preset")
		return
	}

	logger.Info("Preset created successfully", slog.String("preset_id", preset.PresetID))
	c.JSON(http.StatusCreated, dto.ToPresetResponse(preset))
}

// listPresets godoc
// @Summary List posting presets
// @Tags presets
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.PresetResponse
// @Security BearerAuth
// @Router /presets [get]
func (h *presetHandler) listPresets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	presets, err := h.presetService.ListPresets(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "list presets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPresetResponse(presets))
}

// getPreset godoc
// @Summary Get a posting preset
// @Tags presets
// @Produce  json
// @Param   presetID path string true "Preset ID"
// @Success 200 {object} dto.PresetResponse
// @Failure 404 {object} dto.ErrorResponse "Preset not found"
// @Security BearerAuth
// @Router /presets/{presetID} [get]
func (h *presetHandler) getPreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	preset, err := h.presetService.GetPresetByID(c.Request.Context(), c.Param("presetID"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve preset")
		return
	}
	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

// updatePreset godoc
// @Summary Update a posting preset
// @Description Omitted fields stay as they are; an empty account id clears that slot
// @Tags presets
// @Accept  json
// @Produce  json
// @Param   presetID path string true "Preset ID"
// @Param   preset body dto.UpdatePresetRequest true "Fields to update"
// @Success 200 {object} dto.PresetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Preset not found"
// @Security BearerAuth
// @Router /presets/{presetID} [put]
func (h *presetHandler) updatePreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	presetID := c.Param("presetID")
	var req dto.UpdatePresetRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	preset, err := h.presetService.UpdatePreset(c.Request.Context(), presetID, req, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("preset_id", presetID)), err, "update preset")
		return
	}
	c.JSON(http.StatusOK, dto.ToPresetResponse(preset))
}

// resolvePresetPlan godoc
// @Summary Resolve the plan a preset posts into
// @Tags presets
// @Produce  json
// @Param   presetID path string true "Preset ID"
// @Success 200 {object} dto.PresetPlanResponse
// @Failure 400 {object} dto.ErrorResponse "Preset has no bound accounts"
// @Failure 404 {object} dto.ErrorResponse "Preset not found"
// @Security BearerAuth
// @Router /presets/{presetID}/plan [get]
func (h *presetHandler) resolvePresetPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	presetID := c.Param("presetID")
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	planID, err := h.presetService.ResolvePlan(c.Request.Context(), presetID)
	if err != nil {
		respondWithError(c, logger, err, "resolve preset plan")
		return
	}
	c.JSON(http.StatusOK, dto.PresetPlanResponse{PresetID: presetID, PlanID: planID})
}
