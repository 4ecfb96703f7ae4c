package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"pocketledger/internal/models"
	"pocketledger/internal/testutil"
)

// createTransactionOn inserts a transaction dated inside a specific month,
// bypassing normalization so summaries can be asserted deterministically.
func createTransactionOn(t *testing.T, db *gorm.DB, txType models.TransactionType, amount float64, date time.Time, categoryID, cardID *string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:       txType,
		Amount:     amount,
		Date:       date,
		CategoryID: categoryID,
		CardID:     cardID,
	}
	if cardID != nil {
		paymentType := models.PaymentTypeCredit
		tx.PaymentType = &paymentType
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return tx
}

func TestMonthlySummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewSummaryService(db)

	march := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 2, 12, 0, 0, 0, time.UTC)

	createTransactionOn(t, db, models.TransactionTypeIncome, 2500.00, march, nil, nil)
	createTransactionOn(t, db, models.TransactionTypeExpense, 100.00, march, nil, nil)
	createTransactionOn(t, db, models.TransactionTypeExpense, 50.50, march, nil, nil)
	// Outside the window.
	createTransactionOn(t, db, models.TransactionTypeExpense, 999.00, april, nil, nil)

	summary, err := service.MonthlySummary(2025, time.March)
	testutil.AssertNoError(t, err)

	if summary.Income != 2500.00 {
		t.Errorf("expected income 2500.00, got %v", summary.Income)
	}
	if summary.Expense != 150.50 {
		t.Errorf("expected expense 150.50, got %v", summary.Expense)
	}
	if summary.Net != 2349.50 {
		t.Errorf("expected net 2349.50, got %v", summary.Net)
	}
	if summary.Year != 2025 || summary.Month != 3 {
		t.Errorf("expected 2025-03, got %d-%d", summary.Year, summary.Month)
	}
}

func TestMonthlySummary_EmptyMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewSummaryService(db)

	summary, err := service.MonthlySummary(2025, time.January)
	testutil.AssertNoError(t, err)

	if summary.Income != 0 || summary.Expense != 0 || summary.Net != 0 {
		t.Errorf("expected zero totals for an empty month, got %+v", summary)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewSummaryService(db)

	dining := testutil.CreateTestBuiltinCategory(t, db, "Dining", models.CategoryTypeExpense)
	groceries := testutil.CreateTestBuiltinCategory(t, db, "Groceries", models.CategoryTypeExpense)

	march := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	createTransactionOn(t, db, models.TransactionTypeExpense, 60.00, march, &dining.ID, nil)
	createTransactionOn(t, db, models.TransactionTypeExpense, 40.00, march, &dining.ID, nil)
	createTransactionOn(t, db, models.TransactionTypeExpense, 30.00, march, &groceries.ID, nil)
	createTransactionOn(t, db, models.TransactionTypeExpense, 15.00, march, nil, nil)

	totals, err := service.CategoryBreakdown(2025, time.March, models.CategoryTypeExpense)
	testutil.AssertNoError(t, err)

	if len(totals) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(totals))
	}

	if totals[0].Name != "Dining" || totals[0].Total != 100.00 {
		t.Errorf("expected Dining 100.00 first, got %s %v", totals[0].Name, totals[0].Total)
	}
	if totals[1].Name != "Groceries" || totals[1].Total != 30.00 {
		t.Errorf("expected Groceries 30.00 second, got %s %v", totals[1].Name, totals[1].Total)
	}
	if totals[2].Name != "Uncategorized" || totals[2].Total != 15.00 {
		t.Errorf("expected Uncategorized 15.00 last, got %s %v", totals[2].Name, totals[2].Total)
	}
	if totals[2].CategoryID != nil {
		t.Error("expected nil category ID on the uncategorized slice")
	}
}

func TestCategoryBreakdown_InvalidType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewSummaryService(db)

	_, err := service.CategoryBreakdown(2025, time.March, models.CategoryType("savings"))
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestCardRewardSummary(t *testing.T) {
	t.Run("sums rewards over one month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewSummaryService(db)

		dining := testutil.CreateTestBuiltinCategory(t, db, "Dining", models.CategoryTypeExpense)
		card := testutil.CreateTestCreditCard(t, db, models.PerkTypeCashback)
		testutil.CreateTestPerk(t, db, card, 1.0, nil)
		testutil.CreateTestPerk(t, db, card, 3.0, &dining.ID)

		march := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		april := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)
		// 3% of 100.00 plus 1% of 50.00.
		createTransactionOn(t, db, models.TransactionTypeExpense, 100.00, march, &dining.ID, &card.ID)
		createTransactionOn(t, db, models.TransactionTypeExpense, 50.00, march, nil, &card.ID)
		// Outside the window.
		createTransactionOn(t, db, models.TransactionTypeExpense, 500.00, april, &dining.ID, &card.ID)

		summary, err := service.CardRewardSummary(card.ID, 2025, time.March)
		testutil.AssertNoError(t, err)

		if summary.Total != 3.50 {
			t.Errorf("expected 3.50 cashback, got %v", summary.Total)
		}
		if summary.TransactionCount != 2 {
			t.Errorf("expected 2 transactions counted, got %d", summary.TransactionCount)
		}
		if summary.PerkType == nil || *summary.PerkType != models.PerkTypeCashback {
			t.Errorf("expected cashback perk type, got %v", summary.PerkType)
		}
	})

	t.Run("perkless card reports zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewSummaryService(db)

		card := testutil.CreateTestCreditCard(t, db, models.PerkTypePoints)
		march := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
		createTransactionOn(t, db, models.TransactionTypeExpense, 100.00, march, nil, &card.ID)

		summary, err := service.CardRewardSummary(card.ID, 2025, time.March)
		testutil.AssertNoError(t, err)
		if summary.Total != 0 {
			t.Errorf("expected 0 rewards without perks, got %v", summary.Total)
		}
		if summary.TransactionCount != 1 {
			t.Errorf("expected transaction still counted, got %d", summary.TransactionCount)
		}
	})

	t.Run("returns not found for unknown card", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		service := NewSummaryService(db)

		_, err := service.CardRewardSummary("nonexistent-id", 2025, time.March)
		testutil.AssertAppError(t, err, "CARD_NOT_FOUND")
	})
}
