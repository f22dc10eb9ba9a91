//go:build unit || e2e

package builder

import (
	"pro-stock-editor/internal/domain/offer"

	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	summary offer.Summary
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{summary: offer.Summary{
		ID:              42,
		Name:            "Concert de printemps",
		Status:          offer.StatusActive,
		IsEvent:         true,
		HasStocks:       true,
		DepartementCode: "75",
		PriceCategories: []offer.PriceCategory{
			{ID: 10, Label: "Plein tarif", Price: decimal.NewFromInt(20)},
			{ID: 11, Label: "Tarif réduit", Price: decimal.RequireFromString("10.5")},
		},
	}}
}

func (b *OfferBuilder) With(mutate func(*offer.Summary)) *OfferBuilder {
	mutate(&b.summary)
	return b
}

func (b *OfferBuilder) WithDepartement(code string) *OfferBuilder {
	b.summary.DepartementCode = code
	return b
}

func (b *OfferBuilder) WithStatus(s offer.Status) *OfferBuilder {
	b.summary.Status = s
	return b
}

func (b *OfferBuilder) WithProvider(name string) *OfferBuilder {
	b.summary.LastProvider = name
	return b
}

func (b *OfferBuilder) Build() offer.Summary {
	s := b.summary
	s.PriceCategories = append([]offer.PriceCategory(nil), b.summary.PriceCategories...)
	return s
}
