package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/rewards"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// normalize validates params and clears fields that do not apply to the
// transaction type: income transactions never carry a payment type or card,
// and cash expenses never carry a card.
func (s *transactionService) normalize(params *TransactionParams) error {
	if !params.Type.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid transaction type")
	}
	if params.Amount == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be zero")
	}
	if params.CategoryID == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	category, err := s.fetchCategory(*params.CategoryID)
	if err != nil {
		return err
	}
	// A category is scoped to exactly one transaction type.
	if models.CategoryType(params.Type) != category.Type {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category type does not match transaction type")
	}

	if params.Date.IsZero() {
		params.Date = time.Now()
	}

	if params.Type == models.TransactionTypeIncome {
		params.PaymentType = nil
		params.CardID = nil
		return nil
	}

	if params.PaymentType == nil || !params.PaymentType.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "payment type is required for expenses")
	}

	if *params.PaymentType == models.PaymentTypeCash {
		params.CardID = nil
		return nil
	}

	if params.CardID == nil {
		return apperrors.ErrCardRequired
	}
	card, err := s.fetchCard(*params.CardID)
	if err != nil {
		return err
	}
	if (*params.PaymentType == models.PaymentTypeDebit && card.Type != models.CardTypeDebit) ||
		(*params.PaymentType == models.PaymentTypeCredit && card.Type != models.CardTypeCredit) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "card type does not match payment type")
	}
	return nil
}

func (s *transactionService) fetchCategory(categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

func (s *transactionService) fetchCard(cardID string) (*models.Card, error) {
	var card models.Card
	if err := s.db.Where("id = ?", cardID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// CreateTransaction creates a new transaction.
func (s *transactionService) CreateTransaction(params TransactionParams) (*models.Transaction, error) {
	if err := s.normalize(&params); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Type:        params.Type,
		Amount:      params.Amount,
		Date:        params.Date,
		Note:        params.Note,
		PaymentType: params.PaymentType,
		CategoryID:  params.CategoryID,
		CardID:      params.CardID,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetTransactionByID retrieves a transaction with its category and card.
func (s *transactionService) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").Preload("Card").
		Where("id = ?", transactionID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// ListTransactions retrieves a paginated, filtered list of transactions,
// newest first.
func (s *transactionService) ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Preload("Category").Preload("Card").
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.CardID != nil {
		q = q.Where("card_id = ?", *f.CardID)
	}
	return q
}

// UpdateTransaction applies the full desired state to a transaction. The
// same normalization as creation applies, so a type change with a stale
// category from the other type is rejected rather than silently leaked.
func (s *transactionService) UpdateTransaction(transactionID string, params TransactionParams) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", transactionID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.normalize(&params); err != nil {
		return nil, err
	}

	transaction.Type = params.Type
	transaction.Amount = params.Amount
	transaction.Date = params.Date
	transaction.Note = params.Note
	transaction.PaymentType = params.PaymentType
	transaction.CategoryID = params.CategoryID
	transaction.CardID = params.CardID

	// Save rather than Updates so cleared payment type and card references
	// are written through.
	if err := s.db.Save(&transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction.
func (s *transactionService) DeleteTransaction(transactionID string) error {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", transactionID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// TransactionReward recomputes the reward the transaction earns on its card.
func (s *transactionService) TransactionReward(transactionID string) (float64, *models.PerkType, error) {
	transaction, err := s.GetTransactionByID(transactionID)
	if err != nil {
		return 0, nil, err
	}
	if transaction.CardID == nil {
		return 0, nil, nil
	}

	card, err := s.fetchCard(*transaction.CardID)
	if err != nil {
		return 0, nil, err
	}

	var perks []models.CardPerk
	if err := s.db.Where("card_id = ?", card.ID).Find(&perks).Error; err != nil {
		return 0, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return rewards.Calculate(card, perks, transaction), card.PerkType, nil
}
