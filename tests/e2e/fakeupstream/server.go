//go:build e2e

// Package fakeupstream serves the slice of the pass Culture API the stock
// editor talks to, backed by memory.
package fakeupstream

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

type Stock struct {
	ID                   int64   `json:"id"`
	BeginningDatetime    string  `json:"beginningDatetime"`
	BookingLimitDatetime *string `json:"bookingLimitDatetime"`
	PriceCategoryID      int64   `json:"priceCategoryId"`
	RemainingQuantity    any     `json:"remainingQuantity"`
	BookingsQuantity     int     `json:"bookingsQuantity"`
	IsEventDeletable     bool    `json:"isEventDeletable"`
}

type PriceCategory struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Price string `json:"price"`
}

type Offer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	IsEvent   bool   `json:"isEvent"`
	HasStocks bool   `json:"hasStocks"`
	Venue     struct {
		DepartementCode string `json:"departementCode"`
	} `json:"venue"`
	PriceCategories []PriceCategory `json:"priceCategories"`
}

// BulkCall is one recorded PATCH or POST on /stocks/bulk.
type BulkCall struct {
	Method  string
	OfferID int64            `json:"offerId"`
	Stocks  []map[string]any `json:"stocks"`
}

type Server struct {
	mu         sync.Mutex
	offer      Offer
	stocks     []Stock
	nextID     int64
	bulkCalls  []BulkCall
	deleted    []int64
	offerCalls int
	authHeader string

	srv *httptest.Server
}

func New() *Server {
	s := &Server{}
	s.Reset()

	r := gin.New()
	r.GET("/offers/:offerId", s.getOffer)
	r.GET("/offers/:offerId/stocks/", s.listStocks)
	r.PATCH("/stocks/bulk", s.bulk)
	r.POST("/stocks/bulk", s.bulk)
	r.DELETE("/stocks/:stockId", s.deleteStock)
	s.srv = httptest.NewServer(r)
	return s
}

func (s *Server) URL() string { return s.srv.URL }

func (s *Server) Close() { s.srv.Close() }

// Reset restores a Paris venue event offer with two price tiers and no stock.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offer = Offer{
		ID: 42, Name: "Concert", Status: "ACTIVE", IsEvent: true,
		PriceCategories: []PriceCategory{
			{ID: 1, Label: "Plein tarif", Price: "20.00"},
			{ID: 2, Label: "Tarif réduit", Price: "12.50"},
		},
	}
	s.offer.Venue.DepartementCode = "75"
	s.stocks = nil
	s.nextID = 100
	s.bulkCalls = nil
	s.deleted = nil
	s.offerCalls = 0
	s.authHeader = ""
}

func (s *Server) AddStock(st Stock) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == 0 {
		st.ID = s.nextID
		s.nextID++
	}
	s.stocks = append(s.stocks, st)
	s.offer.HasStocks = true
	return st.ID
}

func (s *Server) Stocks() []Stock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.stocks)
}

func (s *Server) BulkCalls() []BulkCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bulkCalls)
}

func (s *Server) Deleted() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.deleted)
}

func (s *Server) OfferCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offerCalls
}

// LastAuthorization is the Authorization header of the latest request.
func (s *Server) LastAuthorization() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authHeader
}

func (s *Server) getOffer(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authHeader = c.GetHeader("Authorization")
	s.offerCalls++
	if c.Param("offerId") != strconv.FormatInt(s.offer.ID, 10) {
		c.JSON(http.StatusNotFound, gin.H{"global": []string{"Offer not found"}})
		return
	}
	c.JSON(http.StatusOK, s.offer)
}

func (s *Server) listStocks(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authHeader = c.GetHeader("Authorization")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("stocks_limit_per_page", "20"))
	page = max(page, 1)
	limit = max(limit, 1)

	sorted := slices.Clone(s.stocks)
	slices.SortStableFunc(sorted, func(a, b Stock) int {
		if a.BeginningDatetime < b.BeginningDatetime {
			return -1
		}
		if a.BeginningDatetime > b.BeginningDatetime {
			return 1
		}
		return 0
	})
	from := min((page-1)*limit, len(sorted))
	to := min(from+limit, len(sorted))

	c.JSON(http.StatusOK, gin.H{
		"stocks":           sorted[from:to],
		"totalStockCount":  len(sorted),
		"editedStockCount": 0,
	})
}

func (s *Server) bulk(c *gin.Context) {
	var call BulkCall
	if err := c.ShouldBindJSON(&call); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"global": []string{err.Error()}})
		return
	}
	call.Method = c.Request.Method

	s.mu.Lock()
	defer s.mu.Unlock()
	s.authHeader = c.GetHeader("Authorization")
	s.bulkCalls = append(s.bulkCalls, call)

	for _, row := range call.Stocks {
		if id, ok := row["id"].(float64); ok {
			s.update(int64(id), row)
			continue
		}
		st := Stock{ID: s.nextID, IsEventDeletable: true}
		s.nextID++
		apply(&st, row)
		s.stocks = append(s.stocks, st)
	}
	s.offer.HasStocks = len(s.stocks) > 0
	c.JSON(http.StatusCreated, gin.H{"stocks_count": len(call.Stocks)})
}

func (s *Server) update(id int64, row map[string]any) {
	for i := range s.stocks {
		if s.stocks[i].ID == id {
			apply(&s.stocks[i], row)
			return
		}
	}
}

func apply(st *Stock, row map[string]any) {
	if v, ok := row["beginningDatetime"].(string); ok {
		st.BeginningDatetime = v
	}
	if v, ok := row["bookingLimitDatetime"]; ok {
		if str, isStr := v.(string); isStr {
			st.BookingLimitDatetime = &str
		} else {
			st.BookingLimitDatetime = nil
		}
	}
	if v, ok := row["priceCategoryId"].(float64); ok {
		st.PriceCategoryID = int64(v)
	}
	if v, ok := row["quantity"]; ok {
		if q, isNum := v.(float64); isNum {
			st.RemainingQuantity = int(q) - st.BookingsQuantity
		} else {
			st.RemainingQuantity = "unlimited"
		}
	}
}

func (s *Server) deleteStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("stockId"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.authHeader = c.GetHeader("Authorization")
	idx := slices.IndexFunc(s.stocks, func(st Stock) bool { return st.ID == id })
	if idx < 0 {
		c.Status(http.StatusNotFound)
		return
	}
	s.stocks = slices.Delete(s.stocks, idx, idx+1)
	s.deleted = append(s.deleted, id)
	s.offer.HasStocks = len(s.stocks) > 0
	c.Status(http.StatusNoContent)
}
