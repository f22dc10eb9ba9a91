package stock

import "pro-stock-editor/internal/domain/localtime"

// activation codes must stay valid for a week after the last possible booking
const activationCodeMarginDays = 7

// FieldConstraints are the bounds the editing UI offers for a row. They are
// advisory: ValidateEntry is what blocks a submission.
type FieldConstraints struct {
	BeginningDateMin    string   `json:"beginningDateMin"`
	BookingLimitMin     string   `json:"bookingLimitMin"`
	BookingLimitMax     string   `json:"bookingLimitMax,omitempty"`
	PriceCategoryLocked bool     `json:"priceCategoryLocked"`
	Disabled            FieldSet `json:"disabled"`
}

func MakeFieldConstraints(e Entry, today string, priceCategoryCount int) FieldConstraints {
	c := FieldConstraints{
		BeginningDateMin:    today,
		BookingLimitMin:     today,
		BookingLimitMax:     e.BeginningDate,
		PriceCategoryLocked: priceCategoryCount <= 1 || e.ReadOnlyFields.Has(FieldPriceCategoryID),
		Disabled:            e.ReadOnlyFields,
	}

	if e.ActivationCodesExpiration != "" {
		limit, err := localtime.AddDays(e.ActivationCodesExpiration, -activationCodeMarginDays)
		if err == nil && (c.BookingLimitMax == "" || limit < c.BookingLimitMax) {
			c.BookingLimitMax = limit
		}
	}
	return c
}
