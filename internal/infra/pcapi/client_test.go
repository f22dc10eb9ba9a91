//go:build unit

package pcapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/domain/stocklist"
	"pro-stock-editor/internal/infra/pcapi"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/pkg/patch"
	"pro-stock-editor/internal/pkg/ptr"
	"pro-stock-editor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *pcapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := pcapi.NewClient(srv.URL, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return c
}

func operatorCtx() context.Context {
	return shared.WithOperator(context.Background(), shared.Operator{UserID: uuid.New(), Token: "op-token"})
}

func TestListStocks(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/offers/42/stocks/", r.URL.Path)
		assert.Equal(t, "Bearer op-token", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "2030-06-01", q.Get("date"))
		assert.Equal(t, "18:00", q.Get("time"))
		assert.Equal(t, "10", q.Get("price_category_id"))
		assert.Equal(t, "DATE", q.Get("order_by"))
		assert.Equal(t, "true", q.Get("order_by_desc"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("stocks_limit_per_page"))

		_, _ = io.WriteString(w, `{
			"stocks": [
				{"id": 1, "beginningDatetime": "2030-06-01T18:00:00Z", "bookingLimitDatetime": null, "priceCategoryId": 10,
				 "remainingQuantity": "unlimited", "bookingsQuantity": 2, "isEventDeletable": true, "hasActivationCode": false},
				{"id": 2, "beginningDatetime": "2030-06-02T18:00:00Z", "bookingLimitDatetime": "2030-06-01T21:59:59Z", "priceCategoryId": 11,
				 "remainingQuantity": 12, "bookingsQuantity": 0, "isEventDeletable": false,
				 "hasActivationCode": true, "activationCodesExpirationDatetime": "2030-07-01T00:00:00Z"}
			],
			"totalStockCount": 22,
			"editedStockCount": 0
		}`)
	})

	page, err := c.ListStocks(operatorCtx(), 42, stocklist.ServerQuery{
		Date:            "2030-06-01",
		Time:            "18:00",
		PriceCategoryID: 10,
		OrderBy:         stocklist.SortDate,
		OrderByDesc:     true,
		Page:            2,
		PageSize:        20,
	})
	require.NoError(t, err)

	assert.Equal(t, 22, page.TotalCount)
	require.Len(t, page.Stocks, 2)
	assert.Nil(t, page.Stocks[0].RemainingQuantity)
	assert.Equal(t, 2, page.Stocks[0].BookingsQuantity)
	assert.Empty(t, page.Stocks[0].BookingLimitDatetime)
	assert.Equal(t, 12, *page.Stocks[1].RemainingQuantity)
	assert.Equal(t, "2030-06-01T21:59:59Z", page.Stocks[1].BookingLimitDatetime)
	assert.True(t, page.Stocks[1].HasActivationCode)
	assert.False(t, page.Stocks[1].IsEventDeletable)
}

func TestBulkUpsertPayload(t *testing.T) {
	var body map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/stocks/bulk", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"stocks_count": 2}`)
	})

	n, err := c.BulkUpsert(operatorCtx(), 42, []shared.UpsertRow{
		{
			ID:                   ptr.Of(int64(7)),
			BookingLimitDatetime: patch.Optional[string]{Set: true},
			Quantity:             patch.Optional[int]{Set: true, Value: ptr.Of(8)},
		},
		{
			BeginningDatetime: ptr.Of("2030-06-01T18:00:00Z"),
			PriceCategoryID:   ptr.Of(int64(10)),
			Quantity:          patch.Optional[int]{Set: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.EqualValues(t, 42, body["offerId"])
	stocks := body["stocks"].([]any)
	require.Len(t, stocks, 2)

	first := stocks[0].(map[string]any)
	assert.EqualValues(t, 7, first["id"])
	assert.Contains(t, first, "bookingLimitDatetime")
	assert.Nil(t, first["bookingLimitDatetime"])
	assert.NotContains(t, first, "priceCategoryId")
	assert.NotContains(t, first, "beginningDatetime")

	second := stocks[1].(map[string]any)
	assert.NotContains(t, second, "id")
	assert.NotContains(t, second, "bookingLimitDatetime")
	assert.Contains(t, second, "quantity")
	assert.Nil(t, second["quantity"])
}

func TestBulkCreate(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stocks/bulk", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"stocks_count": 1}`)
	})

	n, err := c.BulkCreate(operatorCtx(), 42, []shared.UpsertRow{{BeginningDatetime: ptr.Of("2030-06-01T18:00:00Z")}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteStockErrors(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		body         string
		expectSync   bool
		expectMarker error
	}{
		{name: "success", status: http.StatusNoContent},
		{
			name:       "synchronized stock",
			status:     http.StatusBadRequest,
			body:       `{"code": "STOCK_FROM_CHARLIE_API_CANNOT_BE_DELETED"}`,
			expectSync: true,
		},
		{name: "not found", status: http.StatusNotFound, body: `{}`, expectMarker: errs.ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, expectMarker: errs.ErrUpstream},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/stocks/9", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			err := c.DeleteStock(operatorCtx(), 9)
			if tc.status < 400 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.expectSync, errs.Is(err, shared.ErrSynchronizedStockDeletion))
			assert.Equal(t, tc.expectSync, pcapi.HasErrorCode(err, pcapi.CodeSynchronizedStock))
			if tc.expectMarker != nil {
				assert.True(t, errs.Is(err, tc.expectMarker))
			}
		})
	}
}

func TestGetOffer(t *testing.T) {
	t.Run("maps the summary", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/offers/42", r.URL.Path)
			_, _ = io.WriteString(w, `{
				"id": 42, "name": "Concert", "status": "ACTIVE", "isEvent": true, "hasStocks": true,
				"venue": {"departementCode": "973"},
				"lastProvider": {"name": "Ciné Office"},
				"priceCategories": [{"id": 10, "label": "Plein tarif", "price": 12.5}]
			}`)
		})

		got, err := c.GetOffer(operatorCtx(), 42)
		require.NoError(t, err)
		assert.Equal(t, offer.StatusActive, got.Status)
		assert.Equal(t, "973", got.DepartementCode)
		assert.True(t, got.IsSynchronized())
		require.Len(t, got.PriceCategories, 1)
		assert.Equal(t, "12.5", got.PriceCategories[0].Price.String())
	})

	t.Run("unknown offer", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.GetOffer(operatorCtx(), 42)
		assert.True(t, errs.Is(err, shared.ErrOfferNotFound))
	})
}
