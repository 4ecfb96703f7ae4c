package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/config"
	"pocketledger/internal/format"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// SummaryHandler handles dashboard aggregation requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetMonthlySummary returns income/expense totals for a month, with the
// totals additionally rendered in the configured locale's currency.
func (h *SummaryHandler) GetMonthlySummary(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.MonthlySummary(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	locale := config.Get().Locale
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"display": gin.H{
			"income":  format.Currency(summary.Income, locale),
			"expense": format.Currency(summary.Expense, locale),
			"net":     format.Currency(summary.Net, locale),
		},
	})
}

// GetCategoryBreakdown returns per-category totals for a month.
func (h *SummaryHandler) GetCategoryBreakdown(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryType := models.CategoryType(c.DefaultQuery("type", string(models.CategoryTypeExpense)))

	totals, err := h.summaryService.CategoryBreakdown(year, month, categoryType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": totals})
}

// GetCardRewards returns the rewards a card earned over a month. Cashback
// totals are rendered as currency, points totals as a trimmed number.
func (h *SummaryHandler) GetCardRewards(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.CardRewardSummary(c.Param("id"), year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	display := format.Decimal(summary.Total, 2)
	if summary.PerkType != nil && *summary.PerkType == models.PerkTypeCashback {
		display = format.Currency(summary.Total, config.Get().Locale)
	}

	c.JSON(http.StatusOK, gin.H{
		"rewards": summary,
		"display": display,
	})
}
