package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	"github.com/matex-shoes/storefront/internal/order/application"
	"github.com/matex-shoes/storefront/internal/order/domain"
	"github.com/matex-shoes/storefront/internal/order/infrastructure/jsonfile"
)

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, o domain.Order) error { return nil }

type testEnv struct {
	handler *Handler
	store   *jsonfile.Store
	path    string
}

func newTestEnv(t *testing.T, production bool) testEnv {
	t.Helper()
	log := slog.New(slog.DiscardHandler)

	path := filepath.Join(t.TempDir(), "db.json")
	store := jsonfile.New(log, path)
	require.NoError(t, store.Init())

	svc := application.NewService(log, store, store, noopNotifier{})
	t.Cleanup(svc.Wait)
	return testEnv{
		handler: NewHandler(log, svc, production),
		store:   store,
		path:    path,
	}
}

// seedShoes writes the store file directly in its db.json shape.
func (e testEnv) seedShoes(t *testing.T, shoes ...catalog.Shoe) {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"shoes": shoes, "orders": []any{}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(e.path, raw, 0o644))
}

func placeOrderBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"orderDetails": domain.Details{
			Name:          "Maryam",
			Email:         "maryam@example.com",
			Phone:         "+92 300 0000000",
			Address:       "Street 1",
			City:          "Lahore",
			PaymentMethod: domain.CashOnDelivery,
			Items:         []domain.Item{{ID: 1, Name: "Nike Air Max", Price: 2500}, {ID: 2, Name: "Vans Old Skool", Price: 1800}},
			Total:         4300,
		},
		"soldProducts": []int64{1, 2},
	})
	require.NoError(t, err)
	return body
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, false)
	rec := httptest.NewRecorder()
	env.handler.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestListShoes(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedShoes(t,
		catalog.Shoe{ID: 1, Name: "Nike Air Max", Price: 2500},
		catalog.Shoe{ID: 2, Name: "Vans Old Skool", Price: 1800},
	)

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		env.handler.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shoes", nil))
		return rec
	}

	first := get()
	assert.Equal(t, http.StatusOK, first.Code)

	var shoes []catalog.Shoe
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &shoes))
	assert.Len(t, shoes, 2)

	// Listing with no intervening order is idempotent.
	second := get()
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetShoe(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedShoes(t, catalog.Shoe{ID: 7, Name: "Boots", Price: 4200})

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.handler.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shoes/7", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var shoe catalog.Shoe
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shoe))
		assert.Equal(t, "Boots", shoe.Name)
	})

	t.Run("missing -> 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.handler.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shoes/99", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id -> 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.handler.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shoes/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlaceOrderMissingFields(t *testing.T) {
	env := newTestEnv(t, false)

	cases := map[string]string{
		"no orderDetails": `{"soldProducts":[1]}`,
		"no soldProducts": `{"orderDetails":{"name":"x","email":"x@x","phone":"1","address":"a","city":"c","items":[],"total":0}}`,
		"empty body":      `{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/place-order", bytes.NewReader([]byte(body)))
			env.handler.Routes().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp orderResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, "Missing required data", resp.Message)
		})
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedShoes(t,
		catalog.Shoe{ID: 1, Name: "Nike Air Max", Price: 2500},
		catalog.Shoe{ID: 2, Name: "Vans Old Skool", Price: 1800},
		catalog.Shoe{ID: 3, Name: "LC Waikiki Casual", Price: 900},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/place-order", bytes.NewReader(placeOrderBody(t)))
	env.handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp orderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Order placed successfully", resp.Message)
	assert.Positive(t, resp.OrderID)

	shoes, err := env.store.ListShoes(context.Background())
	require.NoError(t, err)
	assert.True(t, shoes[0].IsSoldOut)
	assert.True(t, shoes[1].IsSoldOut)
	assert.False(t, shoes[2].IsSoldOut)

	orders, err := env.store.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, resp.OrderID, orders[0].ID)
}

func TestPlaceOrderPersistenceFailure(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	// A store path in a directory that does not exist fails every
	// read-modify-write.
	store := jsonfile.New(log, filepath.Join(t.TempDir(), "missing", "db.json"))
	svc := application.NewService(log, store, store, noopNotifier{})
	t.Cleanup(svc.Wait)

	t.Run("development mode includes detail", func(t *testing.T) {
		h := NewHandler(log, svc, false)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/place-order", bytes.NewReader(placeOrderBody(t)))
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp orderResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Error processing order", resp.Message)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("production mode suppresses detail", func(t *testing.T) {
		h := NewHandler(log, svc, true)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/place-order", bytes.NewReader(placeOrderBody(t)))
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp orderResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Error)
	})
}
