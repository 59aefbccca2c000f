package rates

import (
	"sync"
	"time"

	"max.ks1230/finance-tracker/internal/entity/currency"
)

// Source holds the last-known rate table. Reads never block on a
// refresh: until the first successful pull the fallback table is
// served, marked as such.
type Source struct {
	mu    sync.RWMutex
	table currency.RateTable
}

func NewSource() *Source {
	return &Source{table: currency.FallbackTable()}
}

func (s *Source) Table() currency.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

func (s *Source) Update(rates map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = currency.RateTable{
		Rates:     rates,
		UpdatedAt: time.Now(),
		Fallback:  false,
	}
}
