package errs

// Sentinels shared across layers; package-specific errors live next to their code.
var (
	ErrNotFound     = New("not found")
	ErrForbidden    = New("forbidden")
	ErrInvalidInput = New("invalid input")
	ErrUpstream     = New("upstream failure")
)
