package services

import (
	"time"

	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	// CreateDefaultCategories seeds the built-in categories if and only if
	// no category rows exist. It returns the number of categories created.
	CreateDefaultCategories() (int, error)
	CreateCategory(name string, categoryType models.CategoryType, icon string) (*models.Category, error)
	ListCategories(categoryType *models.CategoryType) ([]models.Category, error)
	GetCategoryByID(categoryID string) (*models.Category, error)
	DeleteCategory(categoryID string) error
}

// UpdateCardParams carries the full desired state of a card for UpdateCard.
// ConfirmClearPerks acknowledges that a perk-type change (or a switch to
// debit) destroys the card's existing perks.
type UpdateCardParams struct {
	Name              string
	CardType          models.CardType
	Network           models.PaymentNetwork
	LastFourDigits    string
	PerkType          *models.PerkType
	ConfirmClearPerks bool
}

// CardServicer defines the contract for card- and perk-related business logic.
type CardServicer interface {
	CreateCard(name string, cardType models.CardType, network models.PaymentNetwork, lastFour string, perkType *models.PerkType) (*models.Card, error)
	GetCardByID(cardID string) (*models.Card, error)
	ListCards(page pagination.PageRequest) (*pagination.PageResponse[models.Card], error)
	UpdateCard(cardID string, params UpdateCardParams) (*models.Card, error)
	DeleteCard(cardID string) error

	AddPerk(cardID string, value float64, categoryID *string) (*models.CardPerk, error)
	ListPerks(cardID string) ([]models.CardPerk, error)
	DeletePerk(cardID, perkID string) error
}

// TransactionParams carries the full desired state of a transaction.
type TransactionParams struct {
	Type        models.TransactionType
	Amount      float64
	Date        time.Time
	Note        string
	PaymentType *models.PaymentType
	CategoryID  *string
	CardID      *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	CardID     *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(params TransactionParams) (*models.Transaction, error)
	GetTransactionByID(transactionID string) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	UpdateTransaction(transactionID string, params TransactionParams) (*models.Transaction, error)
	DeleteTransaction(transactionID string) error

	// TransactionReward recomputes the reward the transaction earns on its
	// card. Transactions without a card, or on cards without perks, earn 0.
	TransactionReward(transactionID string) (float64, *models.PerkType, error)
}

// MonthlySummary contains income and expense totals for one calendar month.
type MonthlySummary struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// CategoryTotal is one slice of the per-category spending breakdown.
// CategoryID is nil for uncategorized transactions.
type CategoryTotal struct {
	CategoryID *string `gorm:"column:category_id" json:"category_id,omitempty"`
	Name       string  `gorm:"column:name" json:"name"`
	Icon       string  `gorm:"column:icon" json:"icon"`
	Total      float64 `gorm:"column:total" json:"total"`
}

// CardRewardSummary aggregates the rewards a card earned over one month.
type CardRewardSummary struct {
	CardID           string           `json:"card_id"`
	PerkType         *models.PerkType `json:"perk_type,omitempty"`
	Total            float64          `json:"total"`
	TransactionCount int              `json:"transaction_count"`
}

// SummaryServicer defines the contract for dashboard aggregation queries.
type SummaryServicer interface {
	MonthlySummary(year int, month time.Month) (*MonthlySummary, error)
	CategoryBreakdown(year int, month time.Month, categoryType models.CategoryType) ([]CategoryTotal, error)
	CardRewardSummary(cardID string, year int, month time.Month) (*CardRewardSummary, error)
}

// BudgetStatus compares one month's expense total against the monthly budget.
// Remaining goes negative once the budget is exceeded.
type BudgetStatus struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Budget    float64 `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Exceeded  bool    `json:"exceeded"`
}

// BudgetServicer defines the contract for the monthly spending budget.
type BudgetServicer interface {
	// GetMonthlyBudget returns the stored budget, or models.DefaultMonthlyBudget
	// while none has been set.
	GetMonthlyBudget() (float64, error)
	// SetMonthlyBudget stores a new budget. Negative amounts are rejected.
	SetMonthlyBudget(amount float64) (float64, error)
	MonthStatus(year int, month time.Month) (*BudgetStatus, error)
}
