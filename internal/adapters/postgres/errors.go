package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kruglovma/sklad/internal/core/serviceerrors"
)

const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
)

// MapError translates driver errors into the service error taxonomy.
// A serialization failure is reported as a conflict: it means this
// transaction lost a check-then-write race and must not commit.
func MapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return serviceerrors.NewNotFoundError("row not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return serviceerrors.NewConflictError("duplicate key")
		case serializationFailure:
			return serviceerrors.NewConflictError("concurrent update conflict")
		}
	}

	return err
}
