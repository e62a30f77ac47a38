package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates persistence failures into domain errors.
// Unique-constraint violations become Conflict so a race between two
// concurrent creates surfaces cleanly instead of as a raw driver error.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_person_email":
				return employeeerrors.ErrEmailAlreadyExists
			case "uq_person_phone":
				return employeeerrors.ErrPhoneAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_person_email") {
		return employeeerrors.ErrEmailAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_person_phone") {
		return employeeerrors.ErrPhoneAlreadyExists
	}

	return err
}
