package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/model/daterange"
)

func Test_OnRequestStatement_ShouldEnqueueForReporter(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)

	rec := env.do(t, http.MethodPost, "/api/statements", token, map[string]interface{}{
		"period": daterange.ThisMonth,
	})

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, env.queue.requests, 1)
	assert.Equal(t, int64(1), env.queue.requests[0].UserID)
	assert.Equal(t, daterange.ThisMonth, env.queue.requests[0].Period)
}

func Test_OnRequestStatement_ShouldRejectUnsupportedPeriod(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)

	rec := env.do(t, http.MethodPost, "/api/statements", token, map[string]interface{}{
		"period": "quarter",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.queue.requests)
}

func Test_OnGetStatement_ShouldReportPendingUntilCached(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)

	rec := env.do(t, http.MethodGet, "/api/statements/this-month", token, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "pending", decodeBody(t, rec)["status"])

	env.cache.statements[daterange.ThisMonth] = "Statement for March 2024"

	rec = env.do(t, http.MethodGet, "/api/statements/this-month", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ready", body["status"])
	assert.Contains(t, body["statement"], "Statement for")
}

func Test_OnSaveSettings_ShouldInvalidateCachedStatements(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)
	env.cache.statements[daterange.ThisMonth] = "stale"

	rec := env.do(t, http.MethodPut, "/api/settings", token, map[string]interface{}{
		"currency": "EUR",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.cache.statements)
}

func Test_OnSaveSettings_ShouldRejectUnknownCurrency(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)

	rec := env.do(t, http.MethodPut, "/api/settings", token, map[string]interface{}{
		"currency": "XYZ",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_OnGetSettings_ShouldFallBackToDefaults(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 1)

	rec := env.do(t, http.MethodGet, "/api/settings", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "USD", body["currency"])
	assert.Equal(t, "USD", body["base_currency"])
}
