package models

// DefaultCategories is the ordered set of built-in categories seeded on first
// start: 3 income followed by 11 expense. DisplayIndex is stable so the
// client can render them in a fixed order.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Payroll", Type: CategoryTypeIncome, Icon: "dollarsign.circle", DisplayIndex: 0},
		{Name: "Investments", Type: CategoryTypeIncome, Icon: "chart.line.uptrend.xyaxis", DisplayIndex: 1},
		{Name: "Gifts", Type: CategoryTypeIncome, Icon: "gift", DisplayIndex: 2},
		{Name: "Dining", Type: CategoryTypeExpense, Icon: "fork.knife", DisplayIndex: 0},
		{Name: "Gas", Type: CategoryTypeExpense, Icon: "fuelpump", DisplayIndex: 1},
		{Name: "Groceries", Type: CategoryTypeExpense, Icon: "cart", DisplayIndex: 2},
		{Name: "Transportation", Type: CategoryTypeExpense, Icon: "bus", DisplayIndex: 3},
		{Name: "Shopping", Type: CategoryTypeExpense, Icon: "bag", DisplayIndex: 4},
		{Name: "Entertainment", Type: CategoryTypeExpense, Icon: "popcorn", DisplayIndex: 5},
		{Name: "Utilities", Type: CategoryTypeExpense, Icon: "bolt", DisplayIndex: 6},
		{Name: "Healthcare", Type: CategoryTypeExpense, Icon: "cross.case", DisplayIndex: 7},
		{Name: "Travel", Type: CategoryTypeExpense, Icon: "airplane", DisplayIndex: 8},
		{Name: "Education", Type: CategoryTypeExpense, Icon: "book", DisplayIndex: 9},
		{Name: "Miscellaneous", Type: CategoryTypeExpense, Icon: "ellipsis.circle", DisplayIndex: 10},
	}
}
