package shared

import (
	"context"

	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/domain/stocklist"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/pkg/patch"
)

var (
	ErrOfferNotFound = errs.Mark(errs.New("offer not found"), errs.ErrNotFound)
	// the stock is fed by a synchronized provider and can only be deleted there
	ErrSynchronizedStockDeletion = errs.New("stock from synchronized provider cannot be deleted")
)

type StockPage struct {
	Stocks     []stock.Snapshot
	TotalCount int
}

// UpsertRow is one stock in a bulk request. Nil pointers and unset optionals
// are left out of the payload; a set optional with a nil value is sent as null.
type UpsertRow struct {
	ID                   *int64
	BeginningDatetime    *string
	BookingLimitDatetime patch.Optional[string]
	PriceCategoryID      *int64
	Quantity             patch.Optional[int]
}

// StockGateway is the upstream stock API.
type StockGateway interface {
	ListStocks(ctx context.Context, offerID int64, q stocklist.ServerQuery) (*StockPage, error)
	BulkUpsert(ctx context.Context, offerID int64, rows []UpsertRow) (int, error)
	BulkCreate(ctx context.Context, offerID int64, rows []UpsertRow) (int, error)
	DeleteStock(ctx context.Context, stockID int64) error
}

// OfferSource reads an offer from the upstream API.
type OfferSource interface {
	GetOffer(ctx context.Context, offerID int64) (*offer.Summary, error)
}

// OfferSummaries is the cached view of offers. Refresh drops the cached entry
// and reads it again.
type OfferSummaries interface {
	Get(ctx context.Context, offerID int64) (*offer.Summary, error)
	Refresh(ctx context.Context, offerID int64) (*offer.Summary, error)
}
