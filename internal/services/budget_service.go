package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// budgetService handles the monthly spending budget.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetMonthlyBudget returns the stored budget amount, falling back to
// models.DefaultMonthlyBudget while none has been set.
func (s *budgetService) GetMonthlyBudget() (float64, error) {
	var budget models.Budget
	if err := s.db.First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultMonthlyBudget, nil
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget.Amount, nil
}

// SetMonthlyBudget stores a new budget amount, creating the row on first use.
// Negative amounts are rejected; zero is allowed.
func (s *budgetService) SetMonthlyBudget(amount float64) (float64, error) {
	if amount < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Budget cannot be negative")
	}

	var budget models.Budget
	err := s.db.First(&budget).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget.Amount = amount
		if err := s.db.Create(&budget).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		if err := s.db.Model(&budget).Update("amount", amount).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return amount, nil
}

// MonthStatus compares one month's expense total against the budget.
func (s *budgetService) MonthStatus(year int, month time.Month) (*BudgetStatus, error) {
	budget, err := s.GetMonthlyBudget()
	if err != nil {
		return nil, err
	}

	start, end := monthWindow(year, month)
	var spent float64
	err = s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ? AND date BETWEEN ? AND ?", models.TransactionTypeExpense, start, end).
		Scan(&spent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &BudgetStatus{
		Year:      year,
		Month:     int(month),
		Budget:    budget,
		Spent:     spent,
		Remaining: budget - spent,
		Exceeded:  spent > budget,
	}, nil
}
