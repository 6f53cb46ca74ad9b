package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fin-api/fin_api_app/internal/apperrors"
	portssvc "github.com/fin-api/fin_api_app/internal/core/ports/services"
	coresvc "github.com/fin-api/fin_api_app/internal/core/services"
	"github.com/fin-api/fin_api_app/internal/dto"
	"github.com/fin-api/fin_api_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// statementHandler handles HTTP requests for the authenticated user's
// statement: deposits, withdrawals, transfers and balance queries.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{
		statementService: ss,
	}
}

// RegisterStatementRoutes registers all statement-related routes. Every route
// operates on the logged-in user's own statement.
func RegisterStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements")
	{
		statements.POST("/deposit", h.deposit)
		statements.POST("/withdraw", h.withdraw)
		statements.POST("/transfers/:recipientID", h.transfer)
		statements.GET("/balance", h.getBalance)
		statements.GET("", h.getStatement)
		statements.GET("/:entryID", h.getStatementEntry)
	}
}

// deposit godoc
// @Summary Deposit funds
// @Description Appends a DEPOSIT entry to the logged-in user's statement
// @Tags statements
// @Accept  json
// @Produce  json
// @Param   operation body dto.OperationRequest true "Deposit amount and description"
// @Success 201 {object} dto.StatementEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to record deposit"
// @Security BearerAuth
// @Router /statements/deposit [post]
func (h *statementHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.OperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received deposit request", slog.String("amount", req.Amount.String()))

	entry, err := h.statementService.Deposit(c.Request.Context(), ownerID, req)
	if err != nil {
		h.respondOperationError(c, logger, err, "Failed to record deposit")
		return
	}

	logger.Info("Deposit recorded", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToStatementEntryResponse(entry))
}

// withdraw godoc
// @Summary Withdraw funds
// @Description Appends a WITHDRAWAL entry after checking the derived balance covers the amount
// @Tags statements
// @Accept  json
// @Produce  json
// @Param   operation body dto.OperationRequest true "Withdrawal amount and description"
// @Success 201 {object} dto.StatementEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input or insufficient funds"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to record withdrawal"
// @Security BearerAuth
// @Router /statements/withdraw [post]
func (h *statementHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.OperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for withdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received withdrawal request", slog.String("amount", req.Amount.String()))

	entry, err := h.statementService.Withdraw(c.Request.Context(), ownerID, req)
	if err != nil {
		h.respondOperationError(c, logger, err, "Failed to record withdrawal")
		return
	}

	logger.Info("Withdrawal recorded", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToStatementEntryResponse(entry))
}

// transfer godoc
// @Summary Transfer funds to another user
// @Description Atomically records a TRANSFER_OUT entry for the sender and a TRANSFER_IN entry for the recipient
// @Tags statements
// @Accept  json
// @Produce  json
// @Param   recipientID path string true "Recipient user ID"
// @Param   operation body dto.OperationRequest true "Transfer amount and description"
// @Success 201 {object} dto.StatementEntryResponse "The sender-side TRANSFER_OUT entry"
// @Failure 400 {object} ErrorResponse "Invalid input, self transfer, or insufficient funds"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Sender or recipient not found"
// @Failure 500 {object} ErrorResponse "Failed to record transfer"
// @Security BearerAuth
// @Router /statements/transfers/{recipientID} [post]
func (h *statementHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	senderID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	recipientID := c.Param("recipientID")

	var req dto.OperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("recipient_id", recipientID))
	logger.Info("Received transfer request", slog.String("amount", req.Amount.String()))

	entry, err := h.statementService.Transfer(c.Request.Context(), senderID, recipientID, req)
	if err != nil {
		h.respondOperationError(c, logger, err, "Failed to record transfer")
		return
	}

	logger.Info("Transfer recorded", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToStatementEntryResponse(entry))
}

// getBalance godoc
// @Summary Get the current balance
// @Description Derives the logged-in user's balance from their statement log
// @Tags statements
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute balance"
// @Security BearerAuth
// @Router /statements/balance [get]
func (h *statementHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balance, err := h.statementService.GetBalance(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to compute balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// getStatement godoc
// @Summary Get the full statement
// @Description Retrieves every statement entry for the logged-in user together with the derived balance
// @Tags statements
// @Produce  json
// @Success 200 {object} dto.StatementResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to retrieve statement"
// @Security BearerAuth
// @Router /statements [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	statement, err := h.statementService.GetStatement(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Statement owner not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to retrieve statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve statement"})
		return
	}

	c.JSON(http.StatusOK, statement)
}

// getStatementEntry godoc
// @Summary Get a single statement entry
// @Description Retrieves one statement entry owned by the logged-in user
// @Tags statements
// @Produce  json
// @Param   entryID path string true "Statement entry ID"
// @Success 200 {object} dto.StatementEntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve entry"
// @Security BearerAuth
// @Router /statements/{entryID} [get]
func (h *statementHandler) getStatementEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	entryID := c.Param("entryID")

	entry, err := h.statementService.GetStatementEntry(c.Request.Context(), ownerID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Statement entry not found", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Statement entry not found"})
			return
		}
		logger.Error("Failed to retrieve statement entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementEntryResponse(entry))
}

// respondOperationError maps service errors from statement write operations
// onto HTTP status codes.
func (h *statementHandler) respondOperationError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, coresvc.ErrSenderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Sender not found"})
	case errors.Is(err, coresvc.ErrRecipientNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recipient not found"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	case errors.Is(err, coresvc.ErrTransferRequiresDifferentUsers):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot transfer to the same user"})
	case errors.Is(err, coresvc.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient funds"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Amount must be greater than zero"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
