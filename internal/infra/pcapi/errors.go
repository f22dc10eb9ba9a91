package pcapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/usecase/shared"
)

// CodeSynchronizedStock is returned when deleting a stock fed by a provider.
const CodeSynchronizedStock = "STOCK_FROM_CHARLIE_API_CANNOT_BE_DELETED"

// APIError is a non-2xx answer from the upstream API.
type APIError struct {
	Method string
	Path   string
	Status int
	Code   string
	Body   map[string]any
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Code)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

func newAPIError(method, path string, status int, raw []byte) error {
	apiErr := &APIError{Method: method, Path: path, Status: status}
	if err := json.Unmarshal(raw, &apiErr.Body); err == nil {
		if code, ok := apiErr.Body["code"].(string); ok {
			apiErr.Code = code
		}
	}

	var err error = apiErr
	switch {
	case apiErr.Code == CodeSynchronizedStock:
		err = errs.Mark(err, shared.ErrSynchronizedStockDeletion)
	case status == http.StatusNotFound:
		err = errs.Mark(err, errs.ErrNotFound)
	case status == http.StatusForbidden || status == http.StatusUnauthorized:
		err = errs.Mark(err, errs.ErrForbidden)
	}
	return errs.Mark(err, errs.ErrUpstream)
}

// HasErrorCode reports whether err carries an upstream error with the given code.
func HasErrorCode(err error, code string) bool {
	var apiErr *APIError
	return errs.As(err, &apiErr) && apiErr.Code == code
}
