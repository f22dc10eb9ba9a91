package response

import (
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/usecase/stockedit"

	"github.com/jinzhu/copier"
)

type FilterResponse struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	PriceCategoryID int64  `json:"priceCategoryId"`
	SortColumn      string `json:"sortColumn"`
	SortDesc        bool   `json:"sortDesc"`
	Page            int    `json:"page"`
}

type ConstraintsResponse struct {
	BeginningDateMin    string   `json:"beginningDateMin"`
	BookingLimitMin     string   `json:"bookingLimitMin"`
	BookingLimitMax     string   `json:"bookingLimitMax,omitempty"`
	PriceCategoryLocked bool     `json:"priceCategoryLocked"`
	Disabled            []string `json:"disabled"`
}

type RowResponse struct {
	Index                int                 `json:"index"`
	ID                   *int64              `json:"id"`
	BeginningDate        string              `json:"beginningDate"`
	BeginningTime        string              `json:"beginningTime"`
	BookingLimitDatetime string              `json:"bookingLimitDatetime"`
	PriceCategoryID      int64               `json:"priceCategoryId"`
	RemainingQuantity    *int                `json:"remainingQuantity"`
	BookingsQuantity     int                 `json:"bookingsQuantity"`
	IsDeletable          bool                `json:"isDeletable"`
	ReadOnlyFields       []string            `json:"readOnlyFields"`
	Constraints          ConstraintsResponse `json:"constraints"`
}

type ConfirmationResponse struct {
	Dialog string `json:"dialog"`
	Title  string `json:"title"`
	Rows   []int  `json:"rows,omitempty"`
}

type PriceCategoryOptionResponse struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

type NotificationResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type StockEditionResponse struct {
	SessionID        string                        `json:"sessionId"`
	OfferID          int64                         `json:"offerId"`
	Mode             string                        `json:"mode"`
	Rows             []RowResponse                 `json:"rows"`
	Filter           FilterResponse                `json:"filter"`
	Query            string                        `json:"query"`
	Page             int                           `json:"page"`
	PageCount        int                           `json:"pageCount"`
	TotalCount       int                           `json:"totalCount"`
	HasStocks        bool                          `json:"hasStocks"`
	Dirty            bool                          `json:"dirty"`
	Loading          bool                          `json:"loading"`
	Confirmation     *ConfirmationResponse         `json:"confirmation,omitempty"`
	PriceCategories  []PriceCategoryOptionResponse `json:"priceCategories"`
	Timezone         string                        `json:"timezone"`
	Notification     *NotificationResponse         `json:"notification,omitempty"`
	RedirectTo       string                        `json:"redirectTo,omitempty"`
	ValidationErrors []ValidationErrorResponse     `json:"validationErrors,omitempty"`
}

func FromStockEditionResult(r *stockedit.Result) (*StockEditionResponse, error) {
	v := r.View
	res := &StockEditionResponse{
		SessionID:  v.SessionID,
		OfferID:    v.OfferID,
		Mode:       string(v.Mode),
		Rows:       make([]RowResponse, 0, len(v.Rows)),
		Query:      v.Query,
		Page:       v.Page,
		PageCount:  v.PageCount,
		TotalCount: v.TotalCount,
		HasStocks:  v.HasStocks,
		Dirty:      v.Dirty,
		Loading:    v.Loading,
		Timezone:   v.Timezone,
		RedirectTo: r.RedirectTo,
	}

	for i, row := range v.Rows {
		res.Rows = append(res.Rows, fromRow(i, row))
	}
	if err := copier.Copy(&res.Filter, &v.Filter); err != nil {
		return nil, err
	}
	res.PriceCategories = make([]PriceCategoryOptionResponse, 0, len(v.PriceCategories))
	if err := copier.Copy(&res.PriceCategories, &v.PriceCategories); err != nil {
		return nil, err
	}
	if v.Confirmation != nil {
		res.Confirmation = &ConfirmationResponse{
			Dialog: string(v.Confirmation.Dialog),
			Title:  v.Confirmation.Title,
			Rows:   v.Confirmation.Rows,
		}
	}
	if r.Notification != nil {
		res.Notification = &NotificationResponse{}
		if err := copier.Copy(res.Notification, r.Notification); err != nil {
			return nil, err
		}
	}
	if len(r.ValidationErrors) > 0 {
		if err := copier.Copy(&res.ValidationErrors, &r.ValidationErrors); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func fromRow(index int, row stockedit.Row) RowResponse {
	return RowResponse{
		Index:                index,
		ID:                   row.ID,
		BeginningDate:        row.BeginningDate,
		BeginningTime:        row.BeginningTime,
		BookingLimitDatetime: row.BookingLimitDatetime,
		PriceCategoryID:      row.PriceCategoryID,
		RemainingQuantity:    row.RemainingQuantity,
		BookingsQuantity:     row.BookingsQuantity,
		IsDeletable:          row.IsDeletable,
		ReadOnlyFields:       fieldNames(row.ReadOnlyFields),
		Constraints: ConstraintsResponse{
			BeginningDateMin:    row.Constraints.BeginningDateMin,
			BookingLimitMin:     row.Constraints.BookingLimitMin,
			BookingLimitMax:     row.Constraints.BookingLimitMax,
			PriceCategoryLocked: row.Constraints.PriceCategoryLocked,
			Disabled:            fieldNames(row.Constraints.Disabled),
		},
	}
}

func fieldNames(set stock.FieldSet) []string {
	fields := set.Fields()
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return names
}
