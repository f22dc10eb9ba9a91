package shared

import (
	"context"

	"github.com/google/uuid"
)

// Operator is the authenticated pro user on whose behalf upstream calls are made.
type Operator struct {
	UserID uuid.UUID
	Token  string
}

type operatorKey struct{}

func WithOperator(ctx context.Context, op Operator) context.Context {
	return context.WithValue(ctx, operatorKey{}, op)
}

func OperatorFrom(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(operatorKey{}).(Operator)
	return op, ok
}
