package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/finance-tracker/internal/entity/currency"
)

type cfgStub struct {
	endpoint string
}

func (c cfgStub) Endpoint() string {
	return c.endpoint
}

func (c cfgStub) TimeoutSec() int {
	return 1
}

func Test_OnGetRates_ShouldParseAndRestrictSymbols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"base": "USD",
			"date": "2024-03-15",
			"rates": {"EUR": 0.93, "GBP": 0.78, "INR": 82.5, "JPY": 150.1}
		}`))
	}))
	defer srv.Close()

	client := New(cfgStub{endpoint: srv.URL})
	rates, err := client.GetRates(context.Background(), currency.USD, []string{currency.EUR, currency.GBP, currency.INR})

	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{
		currency.USD: 1,
		currency.EUR: 0.93,
		currency.GBP: 0.78,
		currency.INR: 82.5,
	}, rates)
}

func Test_OnGetRates_ShouldFailOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(cfgStub{endpoint: srv.URL})
	_, err := client.GetRates(context.Background(), currency.USD, currency.Currencies)
	assert.Error(t, err)
}

func Test_OnGetRates_ShouldFailOnEmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {}}`))
	}))
	defer srv.Close()

	client := New(cfgStub{endpoint: srv.URL})
	_, err := client.GetRates(context.Background(), currency.USD, currency.Currencies)
	assert.Error(t, err)
}
