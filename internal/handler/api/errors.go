package api

import "pro-stock-editor/internal/pkg/errs"

var (
	errUnauthorized = errs.New("missing authenticated operator")
	errInvalidParam = errs.Mark(errs.New("invalid path parameter"), errs.ErrInvalidInput)
)
