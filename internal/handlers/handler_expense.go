package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/apperrors"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests for the accounts-payable ledger.
type expenseHandler struct {
	payableService portssvc.PayableSvc
}

func newExpenseHandler(ps portssvc.PayableSvc) *expenseHandler {
	return &expenseHandler{payableService: ps}
}

// registerExpenseRoutes registers routes related to vendor expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, payableService portssvc.PayableSvc) {
	h := newExpenseHandler(payableService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("/:id", h.getExpense)
		expenses.GET("", h.listExpenses)
		expenses.POST("/:id/approve", h.approveExpense)
		expenses.POST("/:id/decline", h.declineExpense)
		expenses.POST("/:id/pay", h.payExpenseNow)
		expenses.POST("/:id/defer-payment", h.payExpenseLater)
	}
}

func (h *expenseHandler) writeExpenseError(c *gin.Context, logger *slog.Logger, action string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
	} else if errors.Is(err, apperrors.ErrInvalidState) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createExpense handles POST /expenses
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.payableService.CreateExpense(c.Request.Context(), req, userID)
	if err != nil {
		h.writeExpenseError(c, logger, "create expense", err)
		return
	}

	logger.Info("Expense created", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// getExpense handles GET /expenses/:id
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	expense, err := h.payableService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		h.writeExpenseError(c, logger, "retrieve expense", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses handles GET /expenses
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.payableService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		h.writeExpenseError(c, logger, "retrieve expenses", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// approveExpense handles POST /expenses/:id/approve
func (h *expenseHandler) approveExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.payableService.ApproveExpense(c.Request.Context(), expenseID, userID)
	if err != nil {
		h.writeExpenseError(c, logger, "approve expense", err)
		return
	}

	logger.Info("Expense approved", slog.String("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// declineExpense handles POST /expenses/:id/decline
func (h *expenseHandler) declineExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.payableService.DeclineExpense(c.Request.Context(), expenseID, userID)
	if err != nil {
		h.writeExpenseError(c, logger, "decline expense", err)
		return
	}

	logger.Info("Expense declined", slog.String("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// payExpenseNow handles POST /expenses/:id/pay
func (h *expenseHandler) payExpenseNow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	var req dto.PayExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.payableService.PayExpenseNow(c.Request.Context(), expenseID, req, userID)
	if err != nil {
		h.writeExpenseError(c, logger, "pay expense", err)
		return
	}

	logger.Info("Expense paid", slog.String("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// payExpenseLater handles POST /expenses/:id/defer-payment
func (h *expenseHandler) payExpenseLater(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	var req dto.DeferExpensePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DeferExpensePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.payableService.PayExpenseLater(c.Request.Context(), expenseID, req, userID)
	if err != nil {
		h.writeExpenseError(c, logger, "defer expense payment", err)
		return
	}

	logger.Info("Expense approved for payment", slog.String("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}
