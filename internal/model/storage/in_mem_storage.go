package storage

import (
	"context"
	"sync"
	"time"

	"max.ks1230/finance-tracker/internal/entity/currency"
	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

// InMemStorage mirrors the Postgres surface for tests and local runs.
type InMemStorage struct {
	mu       sync.RWMutex
	nextID   int64
	profiles map[int64]finance.Profile
	txs      map[int64][]finance.Transaction
	budgets  map[int64][]finance.Budget
	pots     map[int64][]finance.Pot
	bills    map[int64][]finance.RecurringBill
	settings map[int64]finance.Settings
	rates    map[string]float64
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		nextID:   1,
		profiles: make(map[int64]finance.Profile),
		txs:      make(map[int64][]finance.Transaction),
		budgets:  make(map[int64][]finance.Budget),
		pots:     make(map[int64][]finance.Pot),
		bills:    make(map[int64][]finance.RecurringBill),
		settings: make(map[int64]finance.Settings),
		rates:    make(map[string]float64),
	}
}

func (s *InMemStorage) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *InMemStorage) EnsureProfile(_ context.Context, profile finance.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.ID]; !ok {
		profile.CreatedAt = time.Now()
		s.profiles[profile.ID] = profile
	}
	return nil
}

func (s *InMemStorage) GetProfile(_ context.Context, userID int64) (finance.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return finance.Profile{}, &customerr.NotFoundError{Entity: "profile", ID: userID}
	}
	return p, nil
}

func (s *InMemStorage) SaveTransaction(_ context.Context, userID int64, tx finance.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.id()
	tx.UserID = userID
	s.txs[userID] = append(s.txs[userID], tx)
	return nil
}

func (s *InMemStorage) GetTransactions(_ context.Context, userID int64) ([]finance.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]finance.Transaction(nil), s.txs[userID]...), nil
}

func (s *InMemStorage) DeleteTransaction(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.txs[userID] {
		if tx.ID == id {
			s.txs[userID] = append(s.txs[userID][:i], s.txs[userID][i+1:]...)
			return nil
		}
	}
	return &customerr.NotFoundError{Entity: "transaction", ID: id}
}

func (s *InMemStorage) SaveBudget(_ context.Context, userID int64, budget finance.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	budget.ID = s.id()
	budget.UserID = userID
	s.budgets[userID] = append(s.budgets[userID], budget)
	return nil
}

func (s *InMemStorage) GetBudgets(_ context.Context, userID int64) ([]finance.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]finance.Budget(nil), s.budgets[userID]...), nil
}

func (s *InMemStorage) DeleteBudget(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.budgets[userID] {
		if b.ID == id {
			s.budgets[userID] = append(s.budgets[userID][:i], s.budgets[userID][i+1:]...)
			return nil
		}
	}
	return &customerr.NotFoundError{Entity: "budget", ID: id}
}

func (s *InMemStorage) SavePot(_ context.Context, userID int64, pot finance.Pot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pot.ID = s.id()
	pot.UserID = userID
	s.pots[userID] = append(s.pots[userID], pot)
	return nil
}

func (s *InMemStorage) GetPots(_ context.Context, userID int64) ([]finance.Pot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]finance.Pot(nil), s.pots[userID]...), nil
}

func (s *InMemStorage) UpdatePotTotal(_ context.Context, userID, id int64, delta float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pots[userID] {
		if p.ID == id {
			p.Total += delta
			if p.Total < 0 {
				p.Total = 0
			}
			s.pots[userID][i] = p
			return nil
		}
	}
	return &customerr.NotFoundError{Entity: "pot", ID: id}
}

func (s *InMemStorage) DeletePot(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pots[userID] {
		if p.ID == id {
			s.pots[userID] = append(s.pots[userID][:i], s.pots[userID][i+1:]...)
			return nil
		}
	}
	return &customerr.NotFoundError{Entity: "pot", ID: id}
}

func (s *InMemStorage) SaveBill(_ context.Context, userID int64, bill finance.RecurringBill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bill.ID = s.id()
	bill.UserID = userID
	s.bills[userID] = append(s.bills[userID], bill)
	return nil
}

func (s *InMemStorage) GetBills(_ context.Context, userID int64) ([]finance.RecurringBill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]finance.RecurringBill(nil), s.bills[userID]...), nil
}

func (s *InMemStorage) DeleteBill(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bills[userID] {
		if b.ID == id {
			s.bills[userID] = append(s.bills[userID][:i], s.bills[userID][i+1:]...)
			return nil
		}
	}
	return &customerr.NotFoundError{Entity: "bill", ID: id}
}

func (s *InMemStorage) GetSettings(_ context.Context, userID int64) (finance.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.settings[userID]
	if !ok {
		return finance.Settings{UserID: userID}, nil
	}
	return set, nil
}

func (s *InMemStorage) SaveSettings(_ context.Context, set finance.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[set.UserID] = set
	return nil
}

func (s *InMemStorage) SaveRate(_ context.Context, name string, val float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[name] = val
	return nil
}

func (s *InMemStorage) LoadRates(_ context.Context) (currency.RateTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.rates) == 0 {
		return currency.FallbackTable(), nil
	}
	table := currency.RateTable{Rates: make(map[string]float64, len(s.rates)), UpdatedAt: time.Now()}
	for name, rate := range s.rates {
		table.Rates[name] = rate
	}
	return table, nil
}
