package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billingPlanHandler handles HTTP requests related to billing plans.
type billingPlanHandler struct {
	planService portssvc.BillingPlanSvcFacade
}

func newBillingPlanHandler(ps portssvc.BillingPlanSvcFacade) *billingPlanHandler {
	return &billingPlanHandler{planService: ps}
}

// registerBillingPlanRoutes registers routes related to plans and their control accounts.
func registerBillingPlanRoutes(rg *gin.RouterGroup, planService portssvc.BillingPlanSvcFacade) {
	h := newBillingPlanHandler(planService)

	plans := rg.Group("/plans")
	{
		plans.POST("", h.createPlan)
		plans.GET("", h.listPlans)
		plans.GET("/:planID", h.getPlan)
		plans.PATCH("/:planID", h.updatePlan)
		plans.PUT("/:planID/control-accounts", h.setControlAccounts)
		plans.GET("/:planID/control-accounts", h.resolveControlAccounts)
	}
}

// createPlan godoc
// @Summary Create a billing plan
// @Description Creates an empty chart of accounts. Control accounts are bound once the chart exists.
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   plan body dto.CreateBillingPlanRequest true "Plan details"
// @Success 201 {object} dto.BillingPlanResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create plan"
// @Security BearerAuth
// @Router /plans [post]
func (h *billingPlanHandler) createPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillingPlanRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create plan")
		return
	}

	logger.Info("Plan created successfully", slog.String("plan_id", plan.PlanID))
	c.JSON(http.StatusCreated, dto.ToBillingPlanResponse(plan))
}

// listPlans godoc
// @Summary List billing plans
// @Tags plans
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.BillingPlanResponse
// @Security BearerAuth
// @Router /plans [get]
func (h *billingPlanHandler) listPlans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "list plans")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBillingPlanResponse(plans))
}

// getPlan godoc
// @Summary Get a billing plan
// @Tags plans
// @Produce  json
// @Param   planID path string true "Plan ID"
// @Success 200 {object} dto.BillingPlanResponse
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /plans/{planID} [get]
func (h *billingPlanHandler) getPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	plan, err := h.planService.GetPlanByID(c.Request.Context(), c.Param("planID"))
	if err != nil {
		respondWithError(c, logger, err, "retrieve plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillingPlanResponse(plan))
}

// updatePlan godoc
// @Summary Update a billing plan's name or description
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   planID path string true "Plan ID"
// @Param   plan body dto.UpdateBillingPlanRequest true "Fields to update"
// @Success 200 {object} dto.BillingPlanResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /plans/{planID} [patch]
func (h *billingPlanHandler) updatePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	planID := c.Param("planID")
	var req dto.UpdateBillingPlanRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), planID, req, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("plan_id", planID)), err, "update plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillingPlanResponse(plan))
}

// setControlAccounts godoc
// @Summary Bind the control accounts of a plan
// @Description Both accounts must be analytic accounts of the same plan
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   planID path string true "Plan ID"
// @Param   accounts body dto.SetControlAccountsRequest true "Receivable and payable control accounts"
// @Success 200 {object} dto.BillingPlanResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid control account"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /plans/{planID}/control-accounts [put]
func (h *billingPlanHandler) setControlAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	planID := c.Param("planID")
	var req dto.SetControlAccountsRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("plan_id", planID))
	plan, err := h.planService.SetControlAccounts(c.Request.Context(), planID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "set control accounts")
		return
	}

	logger.Info("Control accounts set",
		slog.String("receivable_account_id", plan.ReceivableControlAccountID),
		slog.String("payable_account_id", plan.PayableControlAccountID))
	c.JSON(http.StatusOK, dto.ToBillingPlanResponse(plan))
}

// resolveControlAccounts godoc
// @Summary Resolve the control accounts of a plan
// @Description Returns the bound accounts; unset accounts come back empty
// @Tags plans
// @Produce  json
// @Param   planID path string true "Plan ID"
// @Success 200 {object} dto.ControlAccountsResponse
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /plans/{planID}/control-accounts [get]
func (h *billingPlanHandler) resolveControlAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	planID := c.Param("planID")
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	controls, err := h.planService.ResolveControlAccounts(c.Request.Context(), planID)
	if err != nil {
		respondWithError(c, logger, err, "resolve control accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToControlAccountsResponse(planID, controls))
}
