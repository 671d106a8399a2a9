package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/moliya-app/moliya-backend/internal/middleware"
)

// debtHandler handles HTTP requests related to debts and receivables.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:debtID", h.getDebt)
		debts.PUT("/:debtID", h.updateDebt)
		debts.DELETE("/:debtID", h.deleteDebt)
		debts.POST("/:debtID/close", h.closeDebt)
	}
}

// createDebt godoc
// @Summary Record a debt or receivable
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind JSON for createDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create debt")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts
// @Description Lists the user's debts, optionally filtered by status
// @Tags debts
// @Produce json
// @Param status query string false "Debt status (OPEN or CLOSED)"
// @Success 200 {array} dto.DebtResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("failed to bind query for listDebts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), userID, params.Status)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list debts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDebtResponse(debts))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), userID, c.Param("debtID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// updateDebt godoc
// @Summary Update a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param debtID path string true "Debt ID"
// @Param debt body dto.UpdateDebtRequest true "Fields to update"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind JSON for updateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), userID, c.Param("debtID"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// closeDebt godoc
// @Summary Close a debt
// @Description Marks an open debt as closed
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Debt is already closed"
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID}/close [post]
func (h *debtHandler) closeDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	debt, err := h.debtService.CloseDebt(c.Request.Context(), userID, c.Param("debtID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to close debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Tags debts
// @Param debtID path string true "Debt ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{debtID} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), userID, c.Param("debtID")); err != nil {
		respondWithError(c, logger, err, "Failed to delete debt")
		return
	}

	c.Status(http.StatusNoContent)
}
