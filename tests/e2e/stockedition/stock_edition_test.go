//go:build e2e

package stockedition_test

import (
	"fmt"
	"net/http"
	"testing"

	"pro-stock-editor/internal/handler/dto/request"
	"pro-stock-editor/internal/handler/dto/response"
	"pro-stock-editor/tests/common/authtest"
	"pro-stock-editor/tests/common/dbtest"
	"pro-stock-editor/tests/common/httptest"
	"pro-stock-editor/tests/e2e"
	"pro-stock-editor/tests/e2e/fakeupstream"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	offerID    = int64(42)
	openURL    = "/api/offers/%d/stock-edition"
	sessionURL = "/api/stock-edition/%s"
)

type StockEditionSuite struct {
	e2e.SharedSuite
}

func TestStockEditionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StockEditionSuite))
}

func (s *StockEditionSuite) operator() (uuid.UUID, string) {
	userID := uuid.New()
	return userID, s.JWT.GenerateToken(s.T(), userID, authtest.RolePro)
}

func (s *StockEditionSuite) open(token, query string) response.StockEditionResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(openURL, offerID)+query, nil, token)
	var res response.StockEditionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.NotEmpty(t, res.SessionID)
	return res
}

func (s *StockEditionSuite) do(method, id, path string, body any, token string, status int) response.StockEditionResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, method, fmt.Sprintf(sessionURL, id)+path, body, token)
	var res response.StockEditionResponse
	httptest.AssertSuccessResponse(t, w, status, &res)
	return res
}

func bookedStock(date string, bookings, remaining int) fakeupstream.Stock {
	return fakeupstream.Stock{
		BeginningDatetime: date,
		PriceCategoryID:   1,
		RemainingQuantity: remaining,
		BookingsQuantity:  bookings,
		IsEventDeletable:  true,
	}
}

// =============================================================================
// TestOpen
// =============================================================================

func (s *StockEditionSuite) TestOpen() {
	s.Run("Normal case: first page is loaded and the session persisted", func() {
		t := s.T()
		s.Upstream.AddStock(bookedStock("2030-06-01T18:00:00Z", 0, 10))
		s.Upstream.AddStock(bookedStock("2030-06-02T18:00:00Z", 0, 10))
		s.Upstream.AddStock(bookedStock("2030-06-03T18:00:00Z", 0, 10))
		userID, token := s.operator()

		res := s.open(token, "?mode=edition")

		assert.Equal(t, offerID, res.OfferID)
		assert.Equal(t, "edition", res.Mode)
		assert.Equal(t, 3, res.TotalCount)
		assert.Equal(t, 2, res.PageCount)
		assert.True(t, res.HasStocks)
		assert.False(t, res.Dirty)
		assert.Equal(t, "Europe/Paris", res.Timezone)
		require.Len(t, res.Rows, 2)
		assert.Equal(t, "2030-06-01", res.Rows[0].BeginningDate)
		assert.Equal(t, "20:00", res.Rows[0].BeginningTime)

		wantCategories := []response.PriceCategoryOptionResponse{
			{Value: 2, Label: "12,5 € - Tarif réduit"},
			{Value: 1, Label: "20 € - Plein tarif"},
		}
		if diff := cmp.Diff(wantCategories, res.PriceCategories); diff != "" {
			t.Errorf("price categories mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, 1, dbtest.CountSessions(t, s.DB, userID, offerID))
		assert.Equal(t, "Bearer "+token, s.Upstream.LastAuthorization())
	})

	s.Run("Normal case: offer summary is served from the cache", func() {
		t := s.T()
		_, token := s.operator()

		s.open(token, "")
		s.open(token, "")

		assert.Equal(t, 1, s.Upstream.OfferCalls())
	})

	s.Run("Error case: unknown offer", func() {
		t := s.T()
		_, token := s.operator()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(openURL, 7), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Open stock edition failed")
	})

	s.Run("Error case: missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(openURL, offerID), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// TestSessionAccess
// =============================================================================

func (s *StockEditionSuite) TestSessionAccess() {
	s.Run("Error case: another operator cannot read the session", func() {
		t := s.T()
		_, owner := s.operator()
		_, intruder := s.operator()
		res := s.open(owner, "")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sessionURL, res.SessionID), nil, intruder)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Stock edition not available")
	})

	s.Run("Error case: expired session is gone", func() {
		t := s.T()
		_, token := s.operator()
		res := s.open(token, "")

		dbtest.ExpireSession(t, s.DB, uuid.MustParse(res.SessionID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sessionURL, res.SessionID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Normal case: closing removes the session", func() {
		t := s.T()
		userID, token := s.operator()
		res := s.open(token, "")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(sessionURL, res.SessionID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, 0, dbtest.CountSessions(t, s.DB, userID, offerID))
	})
}

// =============================================================================
// TestSubmit
// =============================================================================

func (s *StockEditionSuite) TestSubmit() {
	s.Run("Normal case: edited quantity is saved in one bulk call", func() {
		t := s.T()
		stockID := s.Upstream.AddStock(bookedStock("2030-06-01T18:00:00Z", 0, 10))
		_, token := s.operator()
		res := s.open(token, "")

		edited := s.do(http.MethodPatch, res.SessionID, "/rows", map[string]any{
			"edits": []map[string]any{{"row": 0, "remainingQuantity": 50}},
		}, token, http.StatusOK)
		require.True(t, edited.Dirty)

		saved := s.do(http.MethodPost, res.SessionID, "/submit", nil, token, http.StatusOK)
		require.NotNil(t, saved.Notification)
		assert.Equal(t, "success", saved.Notification.Kind)
		assert.Equal(t, "/offre/individuelle/42/dates", saved.RedirectTo)
		assert.False(t, saved.Dirty)

		calls := s.Upstream.BulkCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, http.MethodPatch, calls[0].Method)
		assert.Equal(t, offerID, calls[0].OfferID)
		want := []map[string]any{{
			"id":                   float64(stockID),
			"beginningDatetime":    "2030-06-01T18:00:00Z",
			"bookingLimitDatetime": nil,
			"priceCategoryId":      float64(1),
			"quantity":             float64(50),
		}}
		if diff := cmp.Diff(want, calls[0].Stocks); diff != "" {
			t.Errorf("bulk payload mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: booked stock needs confirmation before saving", func() {
		t := s.T()
		s.Upstream.AddStock(bookedStock("2030-06-01T18:00:00Z", 3, 7))
		_, token := s.operator()
		res := s.open(token, "")

		s.do(http.MethodPatch, res.SessionID, "/rows", map[string]any{
			"edits": []map[string]any{{"row": 0, "beginningTime": "21:00"}},
		}, token, http.StatusOK)

		gated := s.do(http.MethodPost, res.SessionID, "/submit", nil, token, http.StatusOK)
		require.NotNil(t, gated.Confirmation)
		assert.Equal(t, "booking_impact", gated.Confirmation.Dialog)
		assert.Equal(t, []int{0}, gated.Confirmation.Rows)
		assert.Empty(t, s.Upstream.BulkCalls())

		s.do(http.MethodPost, res.SessionID, "/submit?confirmed=true", nil, token, http.StatusOK)

		calls := s.Upstream.BulkCalls()
		require.Len(t, calls, 1)
		require.Len(t, calls[0].Stocks, 1)
		assert.Equal(t, "2030-06-01T19:00:00Z", calls[0].Stocks[0]["beginningDatetime"])
	})

	s.Run("Normal case: untouched session saves nothing", func() {
		t := s.T()
		s.Upstream.AddStock(bookedStock("2030-06-01T18:00:00Z", 0, 10))
		_, token := s.operator()
		res := s.open(token, "")

		saved := s.do(http.MethodPost, res.SessionID, "/submit", nil, token, http.StatusOK)

		require.NotNil(t, saved.Notification)
		assert.Equal(t, "success", saved.Notification.Kind)
		assert.Empty(t, s.Upstream.BulkCalls())
	})

	s.Run("Normal case: new row gets its id from the reloaded page", func() {
		t := s.T()
		_, token := s.operator()
		res := s.open(token, "?mode=creation")

		added := s.do(http.MethodPost, res.SessionID, "/rows", nil, token, http.StatusOK)
		require.Len(t, added.Rows, 1)
		assert.Nil(t, added.Rows[0].ID)

		s.do(http.MethodPatch, res.SessionID, "/rows", map[string]any{
			"edits": []map[string]any{{
				"row":               0,
				"beginningDate":     "2030-07-14",
				"beginningTime":     "22:00",
				"priceCategoryId":   2,
				"remainingQuantity": 100,
			}},
		}, token, http.StatusOK)

		saved := s.do(http.MethodPost, res.SessionID, "/submit", nil, token, http.StatusOK)
		assert.Equal(t, "/offre/individuelle/42/creation/recapitulatif", saved.RedirectTo)
		require.Len(t, saved.Rows, 1)
		require.NotNil(t, saved.Rows[0].ID)
		assert.Equal(t, 1, saved.TotalCount)

		stocks := s.Upstream.Stocks()
		require.Len(t, stocks, 1)
		assert.Equal(t, "2030-07-14T20:00:00Z", stocks[0].BeginningDatetime)
		assert.Equal(t, int64(2), stocks[0].PriceCategoryID)
	})
}

// =============================================================================
// TestDeleteRow
// =============================================================================

func (s *StockEditionSuite) TestDeleteRow() {
	s.Run("Normal case: deleting a booked stock asks first", func() {
		t := s.T()
		stockID := s.Upstream.AddStock(bookedStock("2030-06-01T18:00:00Z", 2, 8))
		_, token := s.operator()
		res := s.open(token, "")

		gated := s.do(http.MethodDelete, res.SessionID, "/rows/0", nil, token, http.StatusOK)
		require.NotNil(t, gated.Confirmation)
		assert.Equal(t, "delete_with_bookings", gated.Confirmation.Dialog)
		assert.Empty(t, s.Upstream.Deleted())

		done := s.do(http.MethodPost, res.SessionID, "/dialog", request.DialogRequest{Confirm: new(bool)}, token, http.StatusOK)
		assert.Nil(t, done.Confirmation)
		assert.Empty(t, s.Upstream.Deleted())

		deleted := s.do(http.MethodDelete, res.SessionID, "/rows/0?confirmed=true", nil, token, http.StatusOK)
		assert.Equal(t, []int64{stockID}, s.Upstream.Deleted())
		require.NotNil(t, deleted.Notification)
		assert.Equal(t, "success", deleted.Notification.Kind)
		assert.Empty(t, deleted.Rows)
		assert.Equal(t, 0, deleted.TotalCount)
	})

	s.Run("Error case: row out of range", func() {
		t := s.T()
		_, token := s.operator()
		res := s.open(token, "")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(sessionURL, res.SessionID)+"/rows/5", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Delete row failed")
	})
}

// =============================================================================
// TestRecurrence
// =============================================================================

func (s *StockEditionSuite) TestRecurrence() {
	s.Run("Normal case: every date and time is created per tier", func() {
		t := s.T()
		_, token := s.operator()
		res := s.open(token, "")

		body := map[string]any{
			"dates":      []string{"2030-09-01", "2030-09-02"},
			"times":      []string{"20:30"},
			"quantities": []map[string]any{{"priceCategoryId": 1, "quantity": 30}, {"priceCategoryId": 2}},
		}
		created := s.do(http.MethodPost, res.SessionID, "/recurrences", body, token, http.StatusOK)

		require.NotNil(t, created.Notification)
		assert.Equal(t, "success", created.Notification.Kind)
		assert.Equal(t, 4, created.TotalCount)

		calls := s.Upstream.BulkCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, http.MethodPost, calls[0].Method)
		assert.Len(t, calls[0].Stocks, 4)
		assert.Equal(t, "2030-09-01T18:30:00Z", calls[0].Stocks[0]["beginningDatetime"])
	})

	s.Run("Error case: unknown price category", func() {
		t := s.T()
		_, token := s.operator()
		res := s.open(token, "")

		body := map[string]any{
			"dates":      []string{"2030-09-01"},
			"times":      []string{"20:30"},
			"quantities": []map[string]any{{"priceCategoryId": 99}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sessionURL, res.SessionID)+"/recurrences", body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Create recurrence failed")
		assert.Empty(t, s.Upstream.BulkCalls())
	})
}
