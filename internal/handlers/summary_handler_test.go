package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// --- mock summary service ---

type mockSummaryService struct {
	monthlyFn   func(year int, month time.Month) (*services.MonthlySummary, error)
	breakdownFn func(year int, month time.Month, categoryType models.CategoryType) ([]services.CategoryTotal, error)
	rewardsFn   func(cardID string, year int, month time.Month) (*services.CardRewardSummary, error)
}

func (m *mockSummaryService) MonthlySummary(year int, month time.Month) (*services.MonthlySummary, error) {
	if m.monthlyFn != nil {
		return m.monthlyFn(year, month)
	}
	return &services.MonthlySummary{Year: year, Month: int(month)}, nil
}

func (m *mockSummaryService) CategoryBreakdown(year int, month time.Month, categoryType models.CategoryType) ([]services.CategoryTotal, error) {
	if m.breakdownFn != nil {
		return m.breakdownFn(year, month, categoryType)
	}
	return []services.CategoryTotal{}, nil
}

func (m *mockSummaryService) CardRewardSummary(cardID string, year int, month time.Month) (*services.CardRewardSummary, error) {
	if m.rewardsFn != nil {
		return m.rewardsFn(cardID, year, month)
	}
	return &services.CardRewardSummary{CardID: cardID}, nil
}

var _ services.SummaryServicer = (*mockSummaryService)(nil)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/summary/monthly", handler.GetMonthlySummary)
	r.GET("/summary/categories", handler.GetCategoryBreakdown)
	r.GET("/cards/:id/rewards", handler.GetCardRewards)
	return r
}

func TestSummaryHandler_GetMonthlySummary(t *testing.T) {
	t.Run("returns totals with currency display", func(t *testing.T) {
		sumSvc := &mockSummaryService{
			monthlyFn: func(year int, month time.Month) (*services.MonthlySummary, error) {
				return &services.MonthlySummary{
					Year: year, Month: int(month),
					Income: 2500, Expense: 150.5, Net: 2349.5,
				}, nil
			},
		}
		handler := NewSummaryHandler(sumSvc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/monthly?year=2025&month=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["income"] != 2500.0 {
			t.Errorf("expected income 2500, got %v", summary["income"])
		}
		display := result["display"].(map[string]interface{})
		if !strings.Contains(display["net"].(string), "2,349.50") {
			t.Errorf("expected formatted net amount, got %v", display["net"])
		}
	})

	t.Run("returns 400 on bad month", func(t *testing.T) {
		handler := NewSummaryHandler(&mockSummaryService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/monthly?month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		var capturedYear int
		var capturedMonth time.Month
		sumSvc := &mockSummaryService{
			monthlyFn: func(year int, month time.Month) (*services.MonthlySummary, error) {
				capturedYear, capturedMonth = year, month
				return &services.MonthlySummary{Year: year, Month: int(month)}, nil
			},
		}
		handler := NewSummaryHandler(sumSvc)
		r := setupSummaryRouter(handler)

		doRequest(r, "GET", "/summary/monthly", "")

		now := time.Now()
		if capturedYear != now.Year() || capturedMonth != now.Month() {
			t.Errorf("expected current month default, got %d-%d", capturedYear, capturedMonth)
		}
	})
}

func TestSummaryHandler_GetCategoryBreakdown(t *testing.T) {
	t.Run("defaults to expense type", func(t *testing.T) {
		var captured models.CategoryType
		sumSvc := &mockSummaryService{
			breakdownFn: func(_ int, _ time.Month, categoryType models.CategoryType) ([]services.CategoryTotal, error) {
				captured = categoryType
				return []services.CategoryTotal{{Name: "Dining", Total: 100}}, nil
			},
		}
		handler := NewSummaryHandler(sumSvc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/categories?year=2025&month=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured != models.CategoryTypeExpense {
			t.Errorf("expected expense default, got %s", captured)
		}
		result := parseJSON(t, rec)
		breakdown := result["breakdown"].([]interface{})
		if len(breakdown) != 1 {
			t.Errorf("expected 1 slice, got %d", len(breakdown))
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		sumSvc := &mockSummaryService{
			breakdownFn: func(_ int, _ time.Month, _ models.CategoryType) ([]services.CategoryTotal, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category type")
			},
		}
		handler := NewSummaryHandler(sumSvc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/categories?type=savings", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSummaryHandler_GetCardRewards(t *testing.T) {
	t.Run("renders cashback totals as currency", func(t *testing.T) {
		perkType := models.PerkTypeCashback
		sumSvc := &mockSummaryService{
			rewardsFn: func(cardID string, _ int, _ time.Month) (*services.CardRewardSummary, error) {
				return &services.CardRewardSummary{CardID: cardID, PerkType: &perkType, Total: 3.5, TransactionCount: 2}, nil
			},
		}
		handler := NewSummaryHandler(sumSvc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/cards/abc/rewards?year=2025&month=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if !strings.Contains(result["display"].(string), "3.50") {
			t.Errorf("expected currency display, got %v", result["display"])
		}
	})

	t.Run("renders points totals as a plain number", func(t *testing.T) {
		perkType := models.PerkTypePoints
		sumSvc := &mockSummaryService{
			rewardsFn: func(cardID string, _ int, _ time.Month) (*services.CardRewardSummary, error) {
				return &services.CardRewardSummary{CardID: cardID, PerkType: &perkType, Total: 120, TransactionCount: 3}, nil
			},
		}
		handler := NewSummaryHandler(sumSvc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/cards/abc/rewards", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["display"] != "120" {
			t.Errorf("expected plain 120, got %v", result["display"])
		}
	})

	t.Run("returns 404 for an unknown card", func(t *testing.T) {
		sumSvc := &mockSummaryService{
			rewardsFn: func(_ string, _ int, _ time.Month) (*services.CardRewardSummary, error) {
				return nil, apperrors.ErrCardNotFound
			},
		}
		handler := NewSummaryHandler(sumSvc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/cards/missing/rewards", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
