package api

import (
	"net/http"
	"strconv"

	"pro-stock-editor/internal/domain/stocklist"
	reqdto "pro-stock-editor/internal/handler/dto/request"
	resdto "pro-stock-editor/internal/handler/dto/response"
	"pro-stock-editor/internal/handler/httperr"
	"pro-stock-editor/internal/handler/middleware"
	"pro-stock-editor/internal/usecase/stockedit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StockEditionHandler struct {
	svc stockedit.Service
}

func NewStockEditionHandler(svc stockedit.Service) *StockEditionHandler {
	return &StockEditionHandler{svc: svc}
}

// @Summary Open stock edition
// @Description Open an edit session on the stocks of an event offer and load the first page
// @Tags stock-edition
// @Produce json
// @Security BearerAuth
// @Param offerId path int true "Offer ID"
// @Param mode query string false "Wizard mode (creation or edition)"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Param time query string false "Time filter (HH:MM)"
// @Param priceCategoryId query int false "Price category filter"
// @Param orderBy query string false "Sort column" Enums(DATE, TIME, BEGINNING_DATETIME, PRICE_CATEGORY_ID, BOOKING_LIMIT_DATETIME, REMAINING_QUANTITY, DN_BOOKED_QUANTITY)
// @Param orderByDesc query string false "Descending sort when 1" Enums(0, 1)
// @Param page query int false "Page"
// @Success 201 {object} resdto.StockEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /offers/{offerId}/stock-edition [post]
func (h *StockEditionHandler) Open(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	offerID, err := strconv.ParseInt(c.Param("offerId"), 10, 64)
	if err != nil || offerID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidParam, "Invalid offer id", nil)
		return
	}
	var q reqdto.OpenSessionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params := q.ToDomain(offerID, c.Request.URL.Query())
	params.OwnerID = userID
	res, err := h.svc.Open(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err, "Open stock edition failed")
		return
	}
	c.Header("Location", "/api/stock-edition/"+res.View.SessionID)
	h.respond(c, http.StatusCreated, res)
}

// @Summary Get stock edition
// @Description Current view of an edit session
// @Tags stock-edition
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId} [get]
func (h *StockEditionHandler) Get(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err, "Stock edition not available")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Close stock edition
// @Description Drop an edit session and its unsaved changes
// @Tags stock-edition
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId} [delete]
func (h *StockEditionHandler) Close(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.svc.Close(c.Request.Context(), id, userID); err != nil {
		httperr.Abort(c, err, "Close stock edition failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change filters
// @Description Filter the table by date, time and price category; back to page 1 and refetch
// @Tags stock-edition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.FiltersRequest true "Filters"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/filters [put]
func (h *StockEditionHandler) ChangeFilters(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.ChangeFilters(c.Request.Context(), id, userID, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Change filters failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Reset filters
// @Description Clear filters and sort, back to page 1 and refetch
// @Tags stock-edition
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/filters [delete]
func (h *StockEditionHandler) ResetFilters(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	res, err := h.svc.ResetFilters(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err, "Reset filters failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Toggle sort
// @Description Cycle the sort on a column: ascending, descending, none
// @Tags stock-edition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.SortRequest true "Sort column"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/sort [post]
func (h *StockEditionHandler) ToggleSort(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	col, err := stocklist.ParseSortColumn(req.Column)
	if err != nil {
		httperr.Abort(c, err, "Invalid sort column")
		return
	}
	res, err := h.svc.ToggleSort(c.Request.Context(), id, userID, col)
	if err != nil {
		httperr.Abort(c, err, "Sort failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Navigate pages
// @Description Go to the previous or next page; unsaved changes open a confirmation instead
// @Tags stock-edition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.PageRequest true "Direction"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/pages [post]
func (h *StockEditionHandler) NavigatePage(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.NavigatePage(c.Request.Context(), id, userID, stocklist.Direction(req.Direction))
	if err != nil {
		httperr.Abort(c, err, "Navigation failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Answer confirmation
// @Description Confirm or cancel the pending confirmation dialog
// @Tags stock-edition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.DialogRequest true "Answer"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/dialog [post]
func (h *StockEditionHandler) ResolveDialog(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.DialogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.ResolveDialog(c.Request.Context(), id, userID, *req.Confirm)
	if err != nil {
		httperr.Abort(c, err, "Confirmation failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Add row
// @Description Append an empty row to the table
// @Tags stock-edition
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/rows [post]
func (h *StockEditionHandler) AddRow(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	res, err := h.svc.AddRow(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err, "Add row failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Edit rows
// @Description Change fields of rows in the session; validation errors of the touched fields are returned
// @Tags stock-edition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.EditRowsRequest true "Edits"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/rows [patch]
func (h *StockEditionHandler) EditRows(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.EditRowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.EditRows(c.Request.Context(), id, userID, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Edit rows failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Delete row
// @Description Delete a row; a booked stock asks for confirmation unless confirmed=true
// @Tags stock-edition
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param index path int true "Row index"
// @Param confirmed query bool false "Bookings warning accepted"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/rows/{index} [delete]
func (h *StockEditionHandler) DeleteRow(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidParam, "Invalid row index", nil)
		return
	}
	var q reqdto.ConfirmQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.DeleteRow(c.Request.Context(), id, userID, index, q.Confirmed)
	if err != nil {
		httperr.Abort(c, err, "Delete row failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Submit
// @Description Validate and save every changed row; changes on booked stocks ask for confirmation unless confirmed=true
// @Tags stock-edition
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param confirmed query bool false "Bookings warning accepted"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/submit [post]
func (h *StockEditionHandler) Submit(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	var q reqdto.ConfirmQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.Submit(c.Request.Context(), id, userID, q.Confirmed)
	if err != nil {
		httperr.Abort(c, err, "Submit failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Create recurrence
// @Description Create one stock per date, time and price category, then reload the table
// @Tags stock-edition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.RecurrenceRequest true "Recurrence"
// @Success 200 {object} resdto.StockEditionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock-edition/{sessionId}/recurrences [post]
func (h *StockEditionHandler) SubmitRecurrence(c *gin.Context) {
	id, userID, ok := h.session(c)
	if !ok {
		return
	}
	var req reqdto.RecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.svc.SubmitRecurrence(c.Request.Context(), id, userID, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Create recurrence failed")
		return
	}
	h.respond(c, http.StatusOK, res)
}

func (h *StockEditionHandler) session(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return id, userID, true
}

func (h *StockEditionHandler) respond(c *gin.Context, status int, res *stockedit.Result) {
	body, err := resdto.FromStockEditionResult(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, body)
}
