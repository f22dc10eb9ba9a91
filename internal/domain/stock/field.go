package stock

import (
	"encoding/json"

	"pro-stock-editor/internal/pkg/errs"
)

// Field names an editable column of a stock entry.
type Field string

const (
	FieldBeginningDate        Field = "beginningDate"
	FieldBeginningTime        Field = "beginningTime"
	FieldPriceCategoryID      Field = "priceCategoryId"
	FieldBookingLimitDatetime Field = "bookingLimitDatetime"
	FieldRemainingQuantity    Field = "remainingQuantity"
)

var AllFields = []Field{
	FieldBeginningDate,
	FieldBeginningTime,
	FieldPriceCategoryID,
	FieldBookingLimitDatetime,
	FieldRemainingQuantity,
}

var ErrUnknownField = errs.Mark(errs.New("unknown stock field"), errs.ErrInvalidInput)

func ParseField(s string) (Field, error) {
	for _, f := range AllFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errs.Wrapf(ErrUnknownField, "%q", s)
}

func (f Field) bit() FieldSet {
	for i, candidate := range AllFields {
		if candidate == f {
			return 1 << i
		}
	}
	return 0
}

// FieldSet is a set of fields, used to mark which fields of an entry the
// operator may not change.
type FieldSet uint8

func NewFieldSet(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s |= f.bit()
	}
	return s
}

var (
	AllFieldSet = NewFieldSet(AllFields...)
	// fields owned by a synchronized provider; quantity stays with the operator
	ProviderFieldSet = NewFieldSet(FieldBeginningDate, FieldBeginningTime, FieldPriceCategoryID, FieldBookingLimitDatetime)
)

func (s FieldSet) Has(f Field) bool { return f.bit() != 0 && s&f.bit() != 0 }

func (s FieldSet) With(f Field) FieldSet { return s | f.bit() }

func (s FieldSet) IsEmpty() bool { return s == 0 }

func (s FieldSet) Fields() []Field {
	out := make([]Field, 0, len(AllFields))
	for _, f := range AllFields {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s FieldSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Fields())
}

func (s *FieldSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var out FieldSet
	for _, name := range names {
		f, err := ParseField(name)
		if err != nil {
			return err
		}
		out = out.With(f)
	}
	*s = out
	return nil
}
