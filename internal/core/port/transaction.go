package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// TransactionManager runs fn atomically. The context passed to fn
// carries the transaction; repository calls made with it join in.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
