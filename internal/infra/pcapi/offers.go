package pcapi

import (
	"context"
	"fmt"
	"net/http"

	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type offerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	IsEvent   bool   `json:"isEvent"`
	HasStocks bool   `json:"hasStocks"`
	Venue     struct {
		DepartementCode *string `json:"departementCode"`
	} `json:"venue"`
	LastProvider *struct {
		Name string `json:"name"`
	} `json:"lastProvider"`
	PriceCategories []struct {
		ID    int64           `json:"id"`
		Label string          `json:"label"`
		Price decimal.Decimal `json:"price"`
	} `json:"priceCategories"`
}

func (c *Client) GetOffer(ctx context.Context, offerID int64) (*offer.Summary, error) {
	var resp offerResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/offers/%d", offerID), nil, nil, &resp); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(shared.ErrOfferNotFound, "offer %d", offerID)
		}
		return nil, err
	}

	summary := &offer.Summary{
		ID:              resp.ID,
		Name:            resp.Name,
		Status:          offer.Status(resp.Status),
		IsEvent:         resp.IsEvent,
		HasStocks:       resp.HasStocks,
		DepartementCode: deref(resp.Venue.DepartementCode),
	}
	if resp.LastProvider != nil {
		summary.LastProvider = resp.LastProvider.Name
	}
	for _, pc := range resp.PriceCategories {
		summary.PriceCategories = append(summary.PriceCategories, offer.PriceCategory{ID: pc.ID, Label: pc.Label, Price: pc.Price})
	}
	return summary, nil
}

var _ shared.OfferSource = (*Client)(nil)
