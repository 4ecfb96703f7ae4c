package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/config"
	"pocketledger/internal/format"
	"pocketledger/internal/notify"
	"pocketledger/internal/services"
)

// BudgetHandler handles monthly budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	notifier      notify.Notifier
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, notifier notify.Notifier) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, notifier: notifier}
}

// SetBudgetRequest represents the request payload for setting the budget.
// Amount is a pointer so an explicit zero passes the required check.
type SetBudgetRequest struct {
	Amount *float64 `json:"amount" binding:"required,gte=0"`
}

// GetBudget returns the monthly budget, also rendered in the configured
// locale's currency.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	amount, err := h.budgetService.GetMonthlyBudget()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"budget":  gin.H{"amount": amount},
		"display": format.Currency(amount, config.Get().Locale),
	})
}

// SetBudget stores a new monthly budget.
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := h.budgetService.SetMonthlyBudget(*req.Amount)
	if err != nil {
		h.notifier.Notify("Error saving budget", notify.SeverityError, notify.DefaultDuration)
		respondWithError(c, err)
		return
	}

	h.notifier.Notify("Budget saved successfully", notify.SeveritySuccess, notify.DefaultDuration)
	c.JSON(http.StatusOK, gin.H{"budget": gin.H{"amount": amount}})
}

// GetBudgetStatus compares a month's spending against the budget, defaulting
// to the current month.
func (h *BudgetHandler) GetBudgetStatus(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.budgetService.MonthStatus(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	locale := config.Get().Locale
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"display": gin.H{
			"budget":    format.Currency(status.Budget, locale),
			"spent":     format.Currency(status.Spent, locale),
			"remaining": format.Currency(status.Remaining, locale),
		},
	})
}
