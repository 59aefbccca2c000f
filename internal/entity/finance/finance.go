package finance

import "time"

// Transaction amounts are signed: positive is income, negative is
// expense. The sign drives every classification downstream.
type Transaction struct {
	ID        int64
	UserID    int64
	Name      string
	Amount    float64
	Date      time.Time
	Category  string
	Recurring bool
	CreatedAt time.Time
}

func (t Transaction) IsIncome() bool {
	return t.Amount > 0
}

func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

type Budget struct {
	ID        int64
	UserID    int64
	Category  string
	Maximum   float64
	Theme     string
	CreatedAt time.Time
}

// Pot is a savings goal. Total may exceed Target; over-saving surfaces
// as progress above 100%.
type Pot struct {
	ID        int64
	UserID    int64
	Name      string
	Target    float64
	Total     float64
	Theme     string
	CreatedAt time.Time
}

type BillStatus string

const (
	BillPaid     BillStatus = "paid"
	BillDue      BillStatus = "due"
	BillUpcoming BillStatus = "upcoming"
)

// RecurringBill recurs monthly on DueDate (day of month, 1-31).
// Status is derived, never persisted.
type RecurringBill struct {
	ID        int64
	UserID    int64
	Name      string
	Amount    float64
	DueDate   int
	Status    BillStatus
	CreatedAt time.Time
}

type Profile struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt time.Time
}

// Settings is the per-user preference blob the display layer reads on
// every format call.
type Settings struct {
	UserID         int64
	Currency       string
	BaseCurrency   string
	BudgetAlerts   bool
	BillReminders  bool
	GoalMilestones bool
	Language       string
}

func (s Settings) DisplayCurrencyOrDefault(def string) string {
	if s.Currency != "" {
		return s.Currency
	}
	return def
}

func (s Settings) BaseCurrencyOrDefault(def string) string {
	if s.BaseCurrency != "" {
		return s.BaseCurrency
	}
	return def
}
