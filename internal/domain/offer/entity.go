package offer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type PriceCategory struct {
	ID    int64           `json:"id"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// Summary is the slice of an offer the stock editor depends on.
type Summary struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Status          Status          `json:"status"`
	IsEvent         bool            `json:"isEvent"`
	HasStocks       bool            `json:"hasStocks"`
	DepartementCode string          `json:"departementCode"`
	LastProvider    string          `json:"lastProvider,omitempty"`
	PriceCategories []PriceCategory `json:"priceCategories"`
}

// IsDisabled is true for offers whose stocks can no longer be changed by the operator.
func (s Summary) IsDisabled() bool {
	return s.Status == StatusRejected || s.Status == StatusPending
}

// IsSynchronized is true when an external provider feeds the offer's stocks.
func (s Summary) IsSynchronized() bool {
	return s.LastProvider != ""
}

func (s Summary) HasPriceCategory(id int64) bool {
	return slices.ContainsFunc(s.PriceCategories, func(pc PriceCategory) bool { return pc.ID == id })
}

func (s Summary) PriceCategoryIDs() []int64 {
	ids := make([]int64, 0, len(s.PriceCategories))
	for _, pc := range s.PriceCategories {
		ids = append(ids, pc.ID)
	}
	return ids
}

type PriceCategoryOption struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

// PriceCategoryOptions renders tiers as select options, cheapest first, e.g. "12,5 € - Carré or".
func (s Summary) PriceCategoryOptions() []PriceCategoryOption {
	sorted := slices.Clone(s.PriceCategories)
	slices.SortStableFunc(sorted, func(a, b PriceCategory) int { return a.Price.Cmp(b.Price) })

	options := make([]PriceCategoryOption, 0, len(sorted))
	for _, pc := range sorted {
		options = append(options, PriceCategoryOption{
			Value: pc.ID,
			Label: fmt.Sprintf("%s € - %s", formatPrice(pc.Price), pc.Label),
		})
	}
	return options
}

func formatPrice(p decimal.Decimal) string {
	s := p.StringFixed(2)
	if p.Equal(p.Truncate(0)) {
		s = p.StringFixed(0)
	} else if p.Mul(decimal.NewFromInt(10)).Equal(p.Mul(decimal.NewFromInt(10)).Truncate(0)) {
		s = p.StringFixed(1)
	}
	return strings.Replace(s, ".", ",", 1)
}
