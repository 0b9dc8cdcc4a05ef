package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"lunchbox-marketplace/order-svc/internal/domain"

	"github.com/lib/pq"
)

const (
	uniqueViolation           = "23505"
	foreignKeyViolation       = "23503"
	invalidTextRepresentation = "22P02"
)

// translate maps driver errors onto the domain taxonomy. Anything it does not
// recognise is reported as a persistence failure.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return err
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case invalidTextRepresentation:
			return fmt.Errorf("%s: %w", op, domain.InvalidInput("malformed identifier"))
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrResourceInUse)
		case uniqueViolation:
			if pqErr.Constraint == "orders_payment_intent_id_key" {
				return fmt.Errorf("%s: %w", op, domain.ErrDuplicatePayment)
			}
			return fmt.Errorf("%s: %w", op, domain.ErrResourceInUse)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
