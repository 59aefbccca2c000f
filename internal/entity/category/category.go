package category

import "strings"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// DefaultColor is used for free-form categories outside the catalog.
const DefaultColor = "#97A0AC"

type Item struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Type  string
}

var incomeCatalog = []Item{
	{ID: "salary", Name: "Salary", Icon: "💼", Color: "#277C78", Type: TypeIncome},
	{ID: "freelance", Name: "Freelance", Icon: "💻", Color: "#82C9D7", Type: TypeIncome},
	{ID: "investment", Name: "Investment", Icon: "📈", Color: "#3F82B2", Type: TypeIncome},
	{ID: "business", Name: "Business", Icon: "🏢", Color: "#626070", Type: TypeIncome},
	{ID: "gift", Name: "Gift", Icon: "🎁", Color: "#826CB0", Type: TypeIncome},
	{ID: "refund", Name: "Refund", Icon: "↩️", Color: "#97A0AC", Type: TypeIncome},
	{ID: "other-income", Name: "Other Income", Icon: "💰", Color: "#CAB361", Type: TypeIncome},
}

var expenseCatalog = []Item{
	{ID: "food-dining", Name: "Food & Dining", Icon: "🍔", Color: "#C94736", Type: TypeExpense},
	{ID: "groceries", Name: "Groceries", Icon: "🛒", Color: "#F2C94C", Type: TypeExpense},
	{ID: "transportation", Name: "Transportation", Icon: "🚗", Color: "#82C9D7", Type: TypeExpense},
	{ID: "shopping", Name: "Shopping", Icon: "🛍️", Color: "#826CB0", Type: TypeExpense},
	{ID: "entertainment", Name: "Entertainment", Icon: "🎬", Color: "#934F6F", Type: TypeExpense},
	{ID: "bills-utilities", Name: "Bills & Utilities", Icon: "💡", Color: "#626070", Type: TypeExpense},
	{ID: "healthcare", Name: "Healthcare", Icon: "🏥", Color: "#C94736", Type: TypeExpense},
	{ID: "education", Name: "Education", Icon: "📚", Color: "#3F82B2", Type: TypeExpense},
	{ID: "fitness", Name: "Fitness", Icon: "💪", Color: "#7F9161", Type: TypeExpense},
	{ID: "travel", Name: "Travel", Icon: "✈️", Color: "#597C7C", Type: TypeExpense},
	{ID: "insurance", Name: "Insurance", Icon: "🛡️", Color: "#626070", Type: TypeExpense},
	{ID: "personal-care", Name: "Personal Care", Icon: "💅", Color: "#934F6F", Type: TypeExpense},
	{ID: "home", Name: "Home & Garden", Icon: "🏠", Color: "#93674F", Type: TypeExpense},
	{ID: "pets", Name: "Pets", Icon: "🐾", Color: "#BE6C49", Type: TypeExpense},
	{ID: "gifts-donations", Name: "Gifts & Donations", Icon: "🎁", Color: "#826CB0", Type: TypeExpense},
	{ID: "savings", Name: "Savings", Icon: "🏦", Color: "#277C78", Type: TypeExpense},
	{ID: "bills", Name: "Bills", Icon: "📄", Color: "#626070", Type: TypeExpense},
	{ID: "other-expense", Name: "Other Expense", Icon: "📦", Color: "#97A0AC", Type: TypeExpense},
}

// ByType returns the catalog for the given type in display order.
// Unknown types yield the expense catalog.
func ByType(catType string) []Item {
	if catType == TypeIncome {
		return incomeCatalog
	}
	return expenseCatalog
}

func All() []Item {
	res := make([]Item, 0, len(incomeCatalog)+len(expenseCatalog))
	res = append(res, incomeCatalog...)
	res = append(res, expenseCatalog...)
	return res
}

// Lookup matches name against the catalogs, case-insensitively,
// by display name or id.
func Lookup(name string) (Item, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, item := range All() {
		if strings.ToLower(item.Name) == normalized || item.ID == normalized {
			return item, true
		}
	}
	return Item{}, false
}

// Normalize returns the canonical display name, or the name unchanged
// when it is a free-form user category.
func Normalize(name string) string {
	if item, ok := Lookup(name); ok {
		return item.Name
	}
	return name
}

func ColorOf(name string) string {
	if item, ok := Lookup(name); ok {
		return item.Color
	}
	return DefaultColor
}

// Display renders "icon name" for catalog categories and the raw
// name for everything else.
func Display(name string) string {
	if item, ok := Lookup(name); ok {
		return item.Icon + " " + item.Name
	}
	return name
}
