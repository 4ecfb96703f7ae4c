package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the transaction type is a known value.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// PaymentType represents how an expense was paid
type PaymentType string

const (
	PaymentTypeCash   PaymentType = "cash"
	PaymentTypeDebit  PaymentType = "debit"
	PaymentTypeCredit PaymentType = "credit"
)

// Valid reports whether the payment type is a known value.
func (t PaymentType) Valid() bool {
	return t == PaymentTypeCash || t == PaymentTypeDebit || t == PaymentTypeCredit
}

// Transaction represents a logged income or expense. PaymentType and CardID
// are set only on expense transactions; a card is required whenever the
// payment type is debit or credit.
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Note        string          `json:"note"`
	PaymentType *PaymentType    `json:"payment_type,omitempty"`
	CategoryID  *string         `gorm:"type:uuid" json:"category_id,omitempty"`
	CardID      *string         `gorm:"type:uuid" json:"card_id,omitempty"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Card     *Card     `gorm:"foreignKey:CardID" json:"card,omitempty"`
}
