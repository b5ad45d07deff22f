package timesheet

import (
	"errors"
	"strings"

	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return timesheeterrors.ErrDuplicateRecord
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return timesheeterrors.ErrDuplicateRecord
	}

	return err
}
