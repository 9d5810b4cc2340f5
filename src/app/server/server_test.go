package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/src/app/server"
	"storefront/src/core/domain"
	"storefront/src/infra/config"
	"storefront/src/infra/repo"
)

func newTestServer() http.Handler {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:            0,
			Host:            "127.0.0.1",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		Log: config.LogConfig{Level: "error", Format: "json"},
		Service: config.ServiceConfig{
			OrderNumberPrefix: domain.DefaultOrderNumberPrefix,
			OrderCodeLength:   domain.DefaultOrderCodeLength,
			CurrencySymbol:    domain.DefaultCurrencySymbol,
		},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	userStore := repo.NewMemoryStore[domain.User]()
	orderStore := repo.NewMemoryStore[domain.Order]()
	return server.New(cfg, log, userStore, orderStore).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDetailedHealth(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodGet, "/health/detailed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status     string                       `json:"status"`
		Components map[string]map[string]string `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Contains(t, body.Components, "users")
	assert.Contains(t, body.Components, "orders")
}

func TestCreateUser(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodPost, "/api/users",
		`{"name":"John Doe","email":"john@example.com","phone":"+14155552671"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Len(t, user["id"], 36)
	assert.Equal(t, "John Doe", user["name"])
	assert.Equal(t, user["createdAt"], user["updatedAt"])
}

func TestCreateUserValidationFailure(t *testing.T) {
	h := newTestServer()

	tests := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","email":"john@example.com","phone":"14155552671"}`},
		{"malformed email", `{"name":"John","email":"invalid-email","phone":"14155552671"}`},
		{"malformed phone", `{"name":"John","email":"john@example.com","phone":"invalid-phone"}`},
		{"malformed json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/users", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}

	// rejected requests leave the store untouched
	rec := do(t, h, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetUser(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodGet, "/api/users/0b39b1cc-7b8f-41a2-9f87-0f0c13ad6f3e", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())

	created := do(t, h, http.MethodPost, "/api/users",
		`{"name":"Jane","email":"jane@example.com","phone":"14155552671"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	var user map[string]string
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &user))

	rec = do(t, h, http.MethodGet, "/api/users/"+user["id"], "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, created.Body.String(), rec.Body.String())
}

func TestCreateOrder(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodPost, "/api/orders",
		`{"customerId":"CUST-1","productName":"Widget","quantity":3,"unitPrice":100.00}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var order map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Regexp(t, `^ORD-[A-Z0-9]{8}$`, order["orderNumber"])
	assert.Equal(t, "3", order["quantity"])
	assert.Equal(t, "$100.00", order["unitPrice"])
	assert.Equal(t, "$300.00", order["totalAmount"])
	assert.Equal(t, "PENDING", order["status"])
}

func TestCreateOrderValidationFailure(t *testing.T) {
	h := newTestServer()

	tests := []struct {
		name string
		body string
	}{
		{"empty customer id", `{"customerId":"","productName":"Widget","quantity":1,"unitPrice":10}`},
		{"zero quantity", `{"customerId":"CUST-1","productName":"Widget","quantity":0,"unitPrice":10}`},
		{"negative unit price", `{"customerId":"CUST-1","productName":"Widget","quantity":1,"unitPrice":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/orders", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListOrders(t *testing.T) {
	h := newTestServer()

	created := do(t, h, http.MethodPost, "/api/orders",
		`{"customerId":"CUST-1","productName":"Widget","quantity":2,"unitPrice":"5.25"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	rec := do(t, h, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "$10.50", orders[0]["totalAmount"])
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
}
