package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/rewards"
)

// summaryService handles dashboard aggregation queries. All aggregates are
// recomputed per request; nothing is cached.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// monthWindow returns the inclusive bounds of one calendar month.
func monthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// MonthlySummary returns income and expense totals for one calendar month.
func (s *summaryService) MonthlySummary(year int, month time.Month) (*MonthlySummary, error) {
	start, end := monthWindow(year, month)

	sumFor := func(txType models.TransactionType) (float64, error) {
		var total float64
		err := s.db.Model(&models.Transaction{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("type = ? AND date BETWEEN ? AND ?", txType, start, end).
			Scan(&total).Error
		if err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return total, nil
	}

	income, err := sumFor(models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	expense, err := sumFor(models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Year:    year,
		Month:   int(month),
		Income:  income,
		Expense: expense,
		Net:     income - expense,
	}, nil
}

// CategoryBreakdown returns per-category totals for one month, largest
// first. Transactions without a category are grouped as "Uncategorized".
func (s *summaryService) CategoryBreakdown(year int, month time.Month, categoryType models.CategoryType) ([]CategoryTotal, error) {
	if !categoryType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category type")
	}
	start, end := monthWindow(year, month)

	var totals []CategoryTotal
	err := s.db.Model(&models.Transaction{}).
		Select("transactions.category_id AS category_id, COALESCE(categories.name, 'Uncategorized') AS name, COALESCE(categories.icon, '') AS icon, SUM(transactions.amount) AS total").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.type = ? AND transactions.date BETWEEN ? AND ?", models.TransactionType(categoryType), start, end).
		Group("transactions.category_id, categories.name, categories.icon").
		Order("total DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return totals, nil
}

// CardRewardSummary sums the rewards a card earned over one month by
// recomputing the reward of each of its transactions.
func (s *summaryService) CardRewardSummary(cardID string, year int, month time.Month) (*CardRewardSummary, error) {
	var card models.Card
	if err := s.db.Where("id = ?", cardID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var perks []models.CardPerk
	if err := s.db.Where("card_id = ?", cardID).Find(&perks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	start, end := monthWindow(year, month)
	var transactions []models.Transaction
	if err := s.db.Where("card_id = ? AND date BETWEEN ? AND ?", cardID, start, end).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &CardRewardSummary{
		CardID:           cardID,
		PerkType:         card.PerkType,
		TransactionCount: len(transactions),
	}
	for i := range transactions {
		summary.Total += rewards.Calculate(&card, perks, &transactions[i])
	}
	return summary, nil
}
