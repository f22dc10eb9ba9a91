package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventSortStocksTable     = "hasClickedSortStocksTable"
	EventUpdatedStockFilters = "hasUpdatedEventStockFilters"
)

type Event struct {
	Name       string         `json:"name"`
	OfferID    int64          `json:"offerId"`
	UserID     uuid.UUID      `json:"userId"`
	Properties map[string]any `json:"properties,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// EventLogger records product analytics. Implementations must not fail the caller.
type EventLogger interface {
	Log(ctx context.Context, e Event)
}
