package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/entity/finance"
)

func Test_OnCreateTransaction_ShouldNormalizeCategory(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)

	rec := env.do(t, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"name":     "Weekly shop",
		"amount":   -54.5,
		"category": "groceries",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	txs, err := env.storage.GetTransactions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Groceries", txs[0].Category)
	assert.Equal(t, -54.5, txs[0].Amount)
}

func Test_OnCreateTransaction_ShouldRejectMissingFields(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)

	rec := env.do(t, http.MethodPost, "/api/transactions", token, map[string]interface{}{
		"name": "no amount",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_OnListTransactions_ShouldFilterByTypeAndSearch(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, env.storage.SaveTransaction(ctx, 1, finance.Transaction{
		Name: "Paycheck", Amount: 3000, Category: "Salary", Date: now,
	}))
	require.NoError(t, env.storage.SaveTransaction(ctx, 1, finance.Transaction{
		Name: "Grocery run", Amount: -60, Category: "Groceries", Date: now,
	}))
	require.NoError(t, env.storage.SaveTransaction(ctx, 1, finance.Transaction{
		Name: "Movie night", Amount: -20, Category: "Entertainment", Date: now,
	}))

	rec := env.do(t, http.MethodGet, "/api/transactions?type=expense", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["total"])

	rec = env.do(t, http.MethodGet, "/api/transactions?search=grocery", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
}

func Test_OnListTransactions_ShouldPageTenPerPage(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		require.NoError(t, env.storage.SaveTransaction(ctx, 1, finance.Transaction{
			Name: "tx", Amount: -1, Category: "Groceries", Date: time.Now(),
		}))
	}

	rec := env.do(t, http.MethodGet, "/api/transactions", token, nil)
	body := decodeBody(t, rec)
	assert.Len(t, body["items"], 10)
	assert.Equal(t, float64(13), body["total"])
	assert.Equal(t, float64(2), body["pages"])

	rec = env.do(t, http.MethodGet, "/api/transactions?page=2", token, nil)
	body = decodeBody(t, rec)
	assert.Len(t, body["items"], 3)
}

func Test_OnDeleteTransaction_ShouldScopeToOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.storage.SaveTransaction(ctx, 1, finance.Transaction{
		Name: "mine", Amount: -5, Category: "Groceries", Date: time.Now(),
	}))
	txs, err := env.storage.GetTransactions(ctx, 1)
	require.NoError(t, err)
	path := fmt.Sprintf("/api/transactions/%d", txs[0].ID)

	rec := env.do(t, http.MethodDelete, path, signToken(t, 2), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, path, signToken(t, 1), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
