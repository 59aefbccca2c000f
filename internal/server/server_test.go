package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/clients/cache"
	"max.ks1230/finance-tracker/internal/clients/kafka"
	"max.ks1230/finance-tracker/internal/entity/currency"
	"max.ks1230/finance-tracker/internal/model/rates"
	"max.ks1230/finance-tracker/internal/model/storage"
)

const testSecret = "test-secret"

type cfgStub struct{}

func (cfgStub) Mode() string { return gin.TestMode }

func (cfgStub) Secret() string { return testSecret }

func (cfgStub) BaseCurrency() string { return currency.USD }

func (cfgStub) TrendMonths() int { return 6 }

type cacheStub struct {
	statements map[string]string
}

func newCacheStub() *cacheStub {
	return &cacheStub{statements: make(map[string]string)}
}

func (s *cacheStub) GetStatement(userID int64, period string) (string, error) {
	text, ok := s.statements[period]
	if !ok {
		return "", cache.ErrMiss
	}
	return text, nil
}

func (s *cacheStub) InvalidateStatements(userID int64, periods []string) error {
	for _, period := range periods {
		delete(s.statements, period)
	}
	return nil
}

type queueStub struct {
	requests []*kafka.StatementRequest
}

func (q *queueStub) RequestStatement(req *kafka.StatementRequest) error {
	q.requests = append(q.requests, req)
	return nil
}

type testEnv struct {
	storage *storage.InMemStorage
	cache   *cacheStub
	queue   *queueStub
	router  *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := storage.NewInMemStorage()
	mc := newCacheStub()
	queue := &queueStub{}
	srv := New(cfgStub{}, cfgStub{}, st, rates.NewSource(), mc, queue)
	return &testEnv{
		storage: st,
		cache:   mc,
		queue:   queue,
		router:  Router(cfgStub{}, srv),
	}
}

func signToken(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		Email:  "user@example.com",
		Name:   "Test User",
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func Test_OnMissingToken_ShouldRejectWith401(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/transactions", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_OnGarbageToken_ShouldRejectWith401(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/overview", "not-a-token", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_OnTokenWithUnexpectedAlgorithm_ShouldRejectWith401(t *testing.T) {
	env := newTestEnv(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS384, &Claims{UserID: 1})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/me", signed, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_OnFirstAuthenticatedRequest_ShouldCreateProfile(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, 42)

	rec := env.do(t, http.MethodGet, "/api/me", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(42), body["id"])
	require.Equal(t, "user@example.com", body["email"])
}

func Test_OnListCategories_ShouldNotRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/categories?type=income", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	items := body["items"].([]interface{})
	require.Len(t, items, 7)
	first := items[0].(map[string]interface{})
	require.Equal(t, "Salary", first["name"])
}
