// Package stocklist holds the filter, sort and pagination state of the stock table.
package stocklist

import (
	"net/url"
	"strconv"
	"time"

	"pro-stock-editor/internal/domain/localtime"
	"pro-stock-editor/internal/pkg/errs"
)

const DefaultPageSize = 20

type SortColumn string

const (
	SortNone                 SortColumn = ""
	SortDate                 SortColumn = "DATE"
	SortTime                 SortColumn = "TIME"
	SortBeginningDatetime    SortColumn = "BEGINNING_DATETIME"
	SortPriceCategoryID      SortColumn = "PRICE_CATEGORY_ID"
	SortBookingLimitDatetime SortColumn = "BOOKING_LIMIT_DATETIME"
	SortRemainingQuantity    SortColumn = "REMAINING_QUANTITY"
	SortBookedQuantity       SortColumn = "DN_BOOKED_QUANTITY"
)

var sortColumns = []SortColumn{
	SortDate, SortTime, SortBeginningDatetime, SortPriceCategoryID,
	SortBookingLimitDatetime, SortRemainingQuantity, SortBookedQuantity,
}

var ErrUnknownSortColumn = errs.Mark(errs.New("unknown sort column"), errs.ErrInvalidInput)

func ParseSortColumn(s string) (SortColumn, error) {
	for _, c := range sortColumns {
		if string(c) == s {
			return c, nil
		}
	}
	return SortNone, errs.Wrapf(ErrUnknownSortColumn, "%q", s)
}

type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

// FilterState is what the operator narrowed the table to. It is mirrored in
// the page URL so a reload restores the same view.
type FilterState struct {
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	PriceCategoryID int64      `json:"priceCategoryId"`
	SortColumn      SortColumn `json:"sortColumn"`
	SortDesc        bool       `json:"sortDesc"`
	Page            int        `json:"page"`
}

func Default() FilterState {
	return FilterState{Page: 1}
}

// WithFilters replaces the three filters. Any filter change goes back to page 1.
func (f FilterState) WithFilters(date, clock string, priceCategoryID int64) FilterState {
	f.Date = date
	f.Time = clock
	f.PriceCategoryID = priceCategoryID
	f.Page = 1
	return f
}

func (f FilterState) WithDate(date string) FilterState {
	return f.WithFilters(date, f.Time, f.PriceCategoryID)
}

func (f FilterState) WithTime(clock string) FilterState {
	return f.WithFilters(f.Date, clock, f.PriceCategoryID)
}

func (f FilterState) WithPriceCategory(id int64) FilterState {
	return f.WithFilters(f.Date, f.Time, id)
}

// Reset returns to the unfiltered, unsorted first page.
func (f FilterState) Reset() FilterState {
	return Default()
}

func (f FilterState) HasFilters() bool {
	return f.Date != "" || f.Time != "" || f.PriceCategoryID != 0
}

// ToggleSort cycles a column through none, ascending and descending. Picking
// another column starts it ascending.
func (f FilterState) ToggleSort(col SortColumn) FilterState {
	switch {
	case f.SortColumn != col:
		f.SortColumn, f.SortDesc = col, false
	case !f.SortDesc:
		f.SortDesc = true
	default:
		f.SortColumn, f.SortDesc = SortNone, false
	}
	return f
}

func (f FilterState) WithPage(page int) FilterState {
	f.Page = max(page, 1)
	return f
}

// Step moves one page in dir, staying within [1, pageCount].
func (f FilterState) Step(dir Direction, pageCount int) FilterState {
	switch dir {
	case DirectionNext:
		if f.Page < pageCount {
			f.Page++
		}
	case DirectionPrevious:
		if f.Page > 1 {
			f.Page--
		}
	}
	return f
}

func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

const (
	paramDate            = "date"
	paramTime            = "time"
	paramPriceCategoryID = "priceCategoryId"
	paramOrderBy         = "orderBy"
	paramOrderByDesc     = "orderByDesc"
	paramPage            = "page"
)

// Query renders the state as URL parameters; ParseQuery reverses it.
func (f FilterState) Query() url.Values {
	v := url.Values{}
	if f.Date != "" {
		v.Set(paramDate, f.Date)
	}
	if f.Time != "" {
		v.Set(paramTime, f.Time)
	}
	if f.PriceCategoryID != 0 {
		v.Set(paramPriceCategoryID, strconv.FormatInt(f.PriceCategoryID, 10))
	}
	if f.SortColumn != SortNone {
		v.Set(paramOrderBy, string(f.SortColumn))
		if f.SortDesc {
			v.Set(paramOrderByDesc, "1")
		} else {
			v.Set(paramOrderByDesc, "0")
		}
	}
	if f.Page > 1 {
		v.Set(paramPage, strconv.Itoa(f.Page))
	}
	return v
}

// ParseQuery reads URL parameters leniently: unusable values fall back to defaults.
func ParseQuery(v url.Values) FilterState {
	f := Default()
	f.Date = v.Get(paramDate)
	f.Time = v.Get(paramTime)
	if id, err := strconv.ParseInt(v.Get(paramPriceCategoryID), 10, 64); err == nil && id > 0 {
		f.PriceCategoryID = id
	}
	if col, err := ParseSortColumn(v.Get(paramOrderBy)); err == nil {
		f.SortColumn = col
		f.SortDesc = v.Get(paramOrderByDesc) == "1"
	}
	if page, err := strconv.Atoi(v.Get(paramPage)); err == nil && page > 1 {
		f.Page = page
	}
	return f
}

// ServerQuery is the list request derived from the filter state.
type ServerQuery struct {
	Date            string
	Time            string // UTC HH:MM
	PriceCategoryID int64
	OrderBy         SortColumn
	OrderByDesc     bool
	Page            int
	PageSize        int
}

// ServerQuery converts local filter values to what the server expects. A time
// filter that is not a complete HH:MM yet is left out.
func (f FilterState) ServerQuery(departementCode string, now time.Time, pageSize int) ServerQuery {
	q := ServerQuery{
		Date:            f.Date,
		PriceCategoryID: f.PriceCategoryID,
		OrderBy:         f.SortColumn,
		OrderByDesc:     f.SortDesc,
		Page:            max(f.Page, 1),
		PageSize:        pageSize,
	}
	if f.Time != "" && localtime.IsValidClock(f.Time) {
		if utc, err := localtime.ClockToUTC(f.Time, departementCode, now); err == nil {
			q.Time = utc
		}
	}
	return q
}
