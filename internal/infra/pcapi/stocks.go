package pcapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/domain/stocklist"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/usecase/shared"
)

type stockResponse struct {
	ID                                int64             `json:"id"`
	BeginningDatetime                 *string           `json:"beginningDatetime"`
	BookingLimitDatetime              *string           `json:"bookingLimitDatetime"`
	PriceCategoryID                   *int64            `json:"priceCategoryId"`
	RemainingQuantity                 remainingQuantity `json:"remainingQuantity"`
	BookingsQuantity                  int               `json:"bookingsQuantity"`
	IsEventDeletable                  bool              `json:"isEventDeletable"`
	HasActivationCode                 bool              `json:"hasActivationCode"`
	ActivationCodesExpirationDatetime *string           `json:"activationCodesExpirationDatetime"`
}

type stocksResponse struct {
	Stocks          []stockResponse `json:"stocks"`
	TotalStockCount int             `json:"totalStockCount"`
}

type bulkResponse struct {
	StocksCount int `json:"stocks_count"`
}

// remainingQuantity is a number, or "unlimited"/null for no limit.
type remainingQuantity struct {
	value *int
}

func (q *remainingQuantity) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		q.value = nil
	case string:
		if v == "unlimited" {
			q.value = nil
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errs.Newf("unexpected remainingQuantity %q", v)
		}
		q.value = &n
	case float64:
		n := int(v)
		q.value = &n
	default:
		return errs.Newf("unexpected remainingQuantity %s", data)
	}
	return nil
}

func (s stockResponse) toSnapshot() stock.Snapshot {
	return stock.Snapshot{
		ID:                                s.ID,
		BeginningDatetime:                 deref(s.BeginningDatetime),
		BookingLimitDatetime:              deref(s.BookingLimitDatetime),
		PriceCategoryID:                   derefInt(s.PriceCategoryID),
		RemainingQuantity:                 s.RemainingQuantity.value,
		BookingsQuantity:                  s.BookingsQuantity,
		IsEventDeletable:                  s.IsEventDeletable,
		HasActivationCode:                 s.HasActivationCode,
		ActivationCodesExpirationDatetime: deref(s.ActivationCodesExpirationDatetime),
	}
}

// upsertBody renders a row, leaving out what the row does not carry.
type upsertBody shared.UpsertRow

func (b upsertBody) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 5)
	if b.ID != nil {
		m["id"] = *b.ID
	}
	if b.BeginningDatetime != nil {
		m["beginningDatetime"] = *b.BeginningDatetime
	}
	if b.BookingLimitDatetime.Set {
		m["bookingLimitDatetime"] = b.BookingLimitDatetime.Value
	}
	if b.PriceCategoryID != nil {
		m["priceCategoryId"] = *b.PriceCategoryID
	}
	if b.Quantity.Set {
		m["quantity"] = b.Quantity.Value
	}
	return json.Marshal(m)
}

type bulkRequest struct {
	OfferID int64        `json:"offerId"`
	Stocks  []upsertBody `json:"stocks"`
}

func newBulkRequest(offerID int64, rows []shared.UpsertRow) bulkRequest {
	req := bulkRequest{OfferID: offerID, Stocks: make([]upsertBody, len(rows))}
	for i, r := range rows {
		req.Stocks[i] = upsertBody(r)
	}
	return req
}

func (c *Client) ListStocks(ctx context.Context, offerID int64, q stocklist.ServerQuery) (*shared.StockPage, error) {
	params := url.Values{}
	if q.Date != "" {
		params.Set("date", q.Date)
	}
	if q.Time != "" {
		params.Set("time", q.Time)
	}
	if q.PriceCategoryID != 0 {
		params.Set("price_category_id", strconv.FormatInt(q.PriceCategoryID, 10))
	}
	if q.OrderBy != stocklist.SortNone {
		params.Set("order_by", string(q.OrderBy))
		params.Set("order_by_desc", strconv.FormatBool(q.OrderByDesc))
	}
	params.Set("page", strconv.Itoa(max(q.Page, 1)))
	if q.PageSize > 0 {
		params.Set("stocks_limit_per_page", strconv.Itoa(q.PageSize))
	}

	var resp stocksResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/offers/%d/stocks/", offerID), params, nil, &resp); err != nil {
		return nil, err
	}

	page := &shared.StockPage{
		Stocks:     make([]stock.Snapshot, 0, len(resp.Stocks)),
		TotalCount: resp.TotalStockCount,
	}
	for _, s := range resp.Stocks {
		page.Stocks = append(page.Stocks, s.toSnapshot())
	}
	return page, nil
}

func (c *Client) BulkUpsert(ctx context.Context, offerID int64, rows []shared.UpsertRow) (int, error) {
	var resp bulkResponse
	if err := c.do(ctx, http.MethodPatch, "/stocks/bulk", nil, newBulkRequest(offerID, rows), &resp); err != nil {
		return 0, err
	}
	return resp.StocksCount, nil
}

func (c *Client) BulkCreate(ctx context.Context, offerID int64, rows []shared.UpsertRow) (int, error) {
	var resp bulkResponse
	if err := c.do(ctx, http.MethodPost, "/stocks/bulk", nil, newBulkRequest(offerID, rows), &resp); err != nil {
		return 0, err
	}
	return resp.StocksCount, nil
}

func (c *Client) DeleteStock(ctx context.Context, stockID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/stocks/%d", stockID), nil, nil, nil)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

var _ shared.StockGateway = (*Client)(nil)
