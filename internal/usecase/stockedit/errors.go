package stockedit

import "pro-stock-editor/internal/pkg/errs"

var (
	ErrSessionNotFound   = errs.Mark(errs.New("edit session not found"), errs.ErrNotFound)
	ErrSessionForbidden  = errs.Mark(errs.New("edit session belongs to another operator"), errs.ErrForbidden)
	ErrRowNotFound       = errs.Mark(errs.New("row not found"), errs.ErrNotFound)
	ErrReadOnlyField     = errs.Mark(errs.New("field is read-only"), errs.ErrInvalidInput)
	ErrStockNotDeletable = errs.Mark(errs.New("stock cannot be deleted"), errs.ErrInvalidInput)
	ErrNoPendingDialog   = errs.Mark(errs.New("no confirmation is pending"), errs.ErrInvalidInput)
	ErrNotEventOffer     = errs.Mark(errs.New("offer is not an event"), errs.ErrInvalidInput)
	ErrInvalidRecurrence = errs.Mark(errs.New("invalid recurrence"), errs.ErrInvalidInput)

	// a fetch response arrived after a newer fetch was started
	ErrStaleFetch = errs.New("stale fetch response")
)
