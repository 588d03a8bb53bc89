package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/farmergpt/internal/domain"
)

const pgUniqueViolation = "23505"

// translate maps driver errors onto the domain sentinels and wraps everything
// else with the failing operation.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case isDuplicate(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
