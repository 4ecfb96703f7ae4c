package models

// DefaultMonthlyBudget applies until a budget has been stored.
const DefaultMonthlyBudget = 1000.0

// Budget stores the monthly spending budget. The table holds at most one
// row; while it is empty DefaultMonthlyBudget is in effect.
type Budget struct {
	Base
	Amount float64 `gorm:"not null" json:"amount"`
}
