package stock

import (
	"fmt"
	"strings"

	"pro-stock-editor/internal/domain/localtime"
	"pro-stock-editor/internal/pkg/errs"
)

const MaxQuantity = 1_000_000

const (
	msgDateRequired         = "Veuillez renseigner une date"
	msgDateInvalid          = "Veuillez renseigner une date valide"
	msgTimeRequired         = "Veuillez renseigner un horaire"
	msgTimeInvalid          = "Veuillez renseigner un horaire valide"
	msgBookingLimitInvalid  = "Veuillez renseigner une date limite de réservation valide"
	msgBookingLimitTooLate  = "La date limite de réservation ne peut être postérieure à la date de début de l’évènement"
	msgQuantityNegative     = "Doit être positif"
	msgQuantityTooLarge     = "Veuillez modifier la quantité. Celle-ci ne peut pas être supérieure à 1 million"
	msgPriceCategoryMissing = "Veuillez renseigner un tarif"
	msgPriceCategoryUnknown = "Ce tarif n’existe pas pour cette offre"
)

var ErrValidation = errs.Mark(errs.New("stock entries are invalid"), errs.ErrInvalidInput)

type ValidationError struct {
	Row     int    `json:"row"`
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, fmt.Sprintf("row %d %s: %s", e.Row, e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}

// Err returns nil when there is nothing to report.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return errs.Mark(v, ErrValidation)
}

func (v ValidationErrors) ForField(f Field) ValidationErrors {
	var out ValidationErrors
	for _, e := range v {
		if e.Field == f {
			out = append(out, e)
		}
	}
	return out
}

// Rules carries what validation needs to know about the offer.
type Rules struct {
	PriceCategoryIDs []int64
}

func (r Rules) knowsPriceCategory(id int64) bool {
	for _, candidate := range r.PriceCategoryIDs {
		if candidate == id {
			return true
		}
	}
	return false
}

// ValidateEntry checks one row. Read-only fields are not checked, the operator
// cannot act on them. Blank template rows are always valid.
func ValidateEntry(row int, e Entry, rules Rules) ValidationErrors {
	if e.IsEmptyTemplate() {
		return nil
	}

	var out ValidationErrors
	add := func(f Field, msg string) {
		if !e.ReadOnlyFields.Has(f) {
			out = append(out, ValidationError{Row: row, Field: f, Message: msg})
		}
	}

	hasDate, hasTime := e.BeginningDate != "", e.BeginningTime != ""
	switch {
	case hasDate && !hasTime:
		add(FieldBeginningTime, msgTimeRequired)
	case hasTime && !hasDate:
		add(FieldBeginningDate, msgDateRequired)
	}
	if hasDate {
		if _, err := localtime.ParseDate(e.BeginningDate); err != nil {
			add(FieldBeginningDate, msgDateInvalid)
			hasDate = false
		}
	}
	if hasTime && !localtime.IsValidClock(e.BeginningTime) {
		add(FieldBeginningTime, msgTimeInvalid)
	}

	if e.BookingLimitDatetime != "" {
		if _, err := localtime.ParseDate(e.BookingLimitDatetime); err != nil {
			add(FieldBookingLimitDatetime, msgBookingLimitInvalid)
		} else if hasDate && e.BookingLimitDatetime > e.BeginningDate {
			add(FieldBookingLimitDatetime, msgBookingLimitTooLate)
		}
	}

	if q := e.RemainingQuantity; q != nil {
		switch {
		case *q < 0:
			add(FieldRemainingQuantity, msgQuantityNegative)
		case *q > MaxQuantity:
			add(FieldRemainingQuantity, msgQuantityTooLarge)
		}
	}

	switch {
	case e.PriceCategoryID == 0:
		add(FieldPriceCategoryID, msgPriceCategoryMissing)
	case !rules.knowsPriceCategory(e.PriceCategoryID):
		add(FieldPriceCategoryID, msgPriceCategoryUnknown)
	}

	return out
}

// ValidateField runs the checks that report on a single field, as done when
// the operator leaves it.
func ValidateField(row int, e Entry, f Field, rules Rules) ValidationErrors {
	return ValidateEntry(row, e, rules).ForField(f)
}

// ValidateAll checks every row; submission is blocked unless it returns nil.
func ValidateAll(entries []Entry, rules Rules) ValidationErrors {
	var out ValidationErrors
	for i, e := range entries {
		out = append(out, ValidateEntry(i, e, rules)...)
	}
	return out
}
