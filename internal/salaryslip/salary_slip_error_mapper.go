package salaryslip

import (
	"errors"
	"net/http"
	"strings"

	salarysliperrors "go-salaryslip/internal/salaryslip/errors"
	"go-salaryslip/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgNotNullViolation       = "23502"
	pgInvalidTextRepresent   = "22P02"
	pgIntegrityConstraintCls = "23"
)

// mapRepositoryError turns store rejections of the record itself into
// validation errors carrying the store's message. Everything else passes
// through and is reported with the endpoint's fallback status.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarysliperrors.ErrSalarySlipNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgNotNullViolation,
			pgErr.Code == pgInvalidTextRepresent,
			strings.HasPrefix(pgErr.Code, pgIntegrityConstraintCls):
			return apperror.Wrap(err, apperror.CodeInvalidInput, pgErr.Message, http.StatusBadRequest)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "violates not-null constraint") {
		return apperror.Wrap(err, apperror.CodeInvalidInput, err.Error(), http.StatusBadRequest)
	}

	return err
}
