package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"pocketledger/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a custom category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	n := nextID()
	category := &models.Category{
		Name:         fmt.Sprintf("Test Category %d", n),
		Type:         categoryType,
		Icon:         "tag",
		IsCustom:     true,
		DisplayIndex: int(n),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestBuiltinCategory creates a built-in (non-deletable) category.
func CreateTestBuiltinCategory(t *testing.T, db *gorm.DB, name string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     name,
		Type:     categoryType,
		Icon:     "tag",
		IsCustom: false,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test built-in category: %v", err)
	}
	return category
}

// CreateTestDebitCard creates a debit card.
func CreateTestDebitCard(t *testing.T, db *gorm.DB) *models.Card {
	t.Helper()

	card := &models.Card{
		Name:           fmt.Sprintf("Test Debit Card %d", nextID()),
		Type:           models.CardTypeDebit,
		Network:        models.PaymentNetworkInterac,
		LastFourDigits: "1234",
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test debit card: %v", err)
	}
	return card
}

// CreateTestCreditCard creates a credit card with the given perk type.
func CreateTestCreditCard(t *testing.T, db *gorm.DB, perkType models.PerkType) *models.Card {
	t.Helper()

	card := &models.Card{
		Name:           fmt.Sprintf("Test Credit Card %d", nextID()),
		Type:           models.CardTypeCredit,
		Network:        models.PaymentNetworkVisa,
		LastFourDigits: "4242",
		PerkType:       &perkType,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test credit card: %v", err)
	}
	return card
}

// CreateTestPerk creates a perk on the given card. A nil categoryID creates
// the card's default perk.
func CreateTestPerk(t *testing.T, db *gorm.DB, card *models.Card, value float64, categoryID *string) *models.CardPerk {
	t.Helper()

	if card.PerkType == nil {
		t.Fatal("test perk requires a card with a perk type")
	}
	perk := &models.CardPerk{
		CardID:     card.ID,
		PerkType:   *card.PerkType,
		Value:      value,
		CategoryID: categoryID,
	}
	if err := db.Create(perk).Error; err != nil {
		t.Fatalf("failed to create test perk: %v", err)
	}
	return perk
}

// CreateTestExpense creates an expense transaction paid in cash.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount float64, categoryID *string) *models.Transaction {
	t.Helper()

	paymentType := models.PaymentTypeCash
	tx := &models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      amount,
		Date:        time.Now(),
		PaymentType: &paymentType,
		CategoryID:  categoryID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}

// CreateTestCardExpense creates an expense transaction paid with the given card.
func CreateTestCardExpense(t *testing.T, db *gorm.DB, card *models.Card, amount float64, categoryID *string) *models.Transaction {
	t.Helper()

	paymentType := models.PaymentTypeDebit
	if card.IsCredit() {
		paymentType = models.PaymentTypeCredit
	}
	tx := &models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      amount,
		Date:        time.Now(),
		PaymentType: &paymentType,
		CategoryID:  categoryID,
		CardID:      &card.ID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test card expense: %v", err)
	}
	return tx
}

// CreateTestIncome creates an income transaction.
func CreateTestIncome(t *testing.T, db *gorm.DB, amount float64, categoryID *string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:       models.TransactionTypeIncome,
		Amount:     amount,
		Date:       time.Now(),
		CategoryID: categoryID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return tx
}
