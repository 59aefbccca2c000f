package overview

import (
	"max.ks1230/finance-tracker/internal/entity/finance"
)

// BudgetAlert flags a category spent past its limit.
type BudgetAlert struct {
	Category  string
	Maximum   float64
	Spent     float64
	Shortfall float64
}

// BillAlert flags a bill whose due date is today.
type BillAlert struct {
	Name   string
	Amount float64
}

// PotAlert flags a goal within reach of its target.
type PotAlert struct {
	Name      string
	Target    float64
	Total     float64
	Remaining float64
}

// Alerts are the three independent dashboard notification groups.
// A budget can be over limit while a bill is due and a pot is near
// target; none of the groups excludes another.
type Alerts struct {
	OverBudget []BudgetAlert
	DueToday   []BillAlert
	NearTarget []PotAlert
}

func (a Alerts) Count() int {
	return len(a.OverBudget) + len(a.DueToday) + len(a.NearTarget)
}

// DetectAlerts computes the notification groups for the current
// period. txs must already be scoped to the active window.
func DetectAlerts(
	budgets []finance.Budget,
	bills []finance.RecurringBill,
	pots []finance.Pot,
	txs []finance.Transaction,
	today int,
) Alerts {
	alerts := Alerts{
		OverBudget: make([]BudgetAlert, 0),
		DueToday:   make([]BillAlert, 0),
		NearTarget: make([]PotAlert, 0),
	}

	for _, rep := range ConsumeBudgets(budgets, txs) {
		if rep.Spent > rep.Budget.Maximum {
			alerts.OverBudget = append(alerts.OverBudget, BudgetAlert{
				Category:  rep.Budget.Category,
				Maximum:   rep.Budget.Maximum,
				Spent:     rep.Spent,
				Shortfall: rep.Spent - rep.Budget.Maximum,
			})
		}
	}

	for _, bill := range bills {
		if BillStatusOn(bill, today) == finance.BillDue {
			alerts.DueToday = append(alerts.DueToday, BillAlert{
				Name:   bill.Name,
				Amount: bill.Amount,
			})
		}
	}

	for _, pot := range pots {
		if p := ProgressOf(pot); p.NearTarget {
			alerts.NearTarget = append(alerts.NearTarget, PotAlert{
				Name:      pot.Name,
				Target:    pot.Target,
				Total:     pot.Total,
				Remaining: pot.Target - pot.Total,
			})
		}
	}

	return alerts
}
