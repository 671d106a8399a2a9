package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/moliya-app/moliya-backend/internal/core/ports/services"
	"github.com/moliya-app/moliya-backend/internal/dto"
	"github.com/moliya-app/moliya-backend/internal/middleware"
)

// idempotencyKeyHeader carries the optional client-supplied key that makes
// transfer creation safe to retry.
const idempotencyKeyHeader = "Idempotency-Key"

// transferHandler handles HTTP requests related to transfers between two of
// the user's accounts.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.DELETE("/:transactionID", h.deleteTransfer)
	}
}

// createTransfer godoc
// @Summary Transfer money between accounts
// @Description Atomically creates both legs of a transfer. A repeated Idempotency-Key within the retention window returns the previously committed pair.
// @Tags transfers
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client idempotency key"
// @Param transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input or same-account transfer"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind JSON for createTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idempotencyKey := c.GetHeader(idempotencyKeyHeader)

	pair, err := h.transferService.CreateTransfer(c.Request.Context(), userID, req, idempotencyKey)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transfer")
		return
	}

	logger.Info("transfer created",
		slog.String("outgoing_id", pair.Outgoing.TransactionID),
		slog.String("incoming_id", pair.Incoming.TransactionID),
	)
	c.JSON(http.StatusCreated, dto.ToTransferResponse(pair))
}

// deleteTransfer godoc
// @Summary Delete a transfer
// @Description Removes both legs of the transfer containing the given transaction and reverses both balance effects
// @Tags transfers
// @Param transactionID path string true "Either leg's transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Not a transfer leg"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transfers/{transactionID} [delete]
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.transferService.DeleteTransferPair(c.Request.Context(), userID, c.Param("transactionID")); err != nil {
		respondWithError(c, logger, err, "Failed to delete transfer")
		return
	}

	c.Status(http.StatusNoContent)
}
