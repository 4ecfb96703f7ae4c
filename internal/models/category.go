package models

// CategoryType represents the type of transactions a category applies to
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether the category type is a known value.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a transaction category. Built-in categories
// (IsCustom=false) are seeded once on first start and cannot be deleted.
type Category struct {
	Base
	Name         string       `gorm:"not null" json:"name"`
	Type         CategoryType `gorm:"not null" json:"type"`
	Icon         string       `json:"icon"`
	IsCustom     bool         `gorm:"not null;default:false" json:"is_custom"`
	DisplayIndex int          `gorm:"not null;default:0" json:"display_index"`

	// Relationships. Transactions are detached (category_id nullified) when
	// the category is deleted; perks referencing it are deleted.
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	Perks        []CardPerk    `gorm:"foreignKey:CategoryID" json:"perks,omitempty"`
}
