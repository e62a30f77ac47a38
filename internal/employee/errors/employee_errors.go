package employeeerrors

import (
	"net/http"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPersonNotFound = apperror.New(
		apperror.CodeNotFound,
		"Person not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email address already exists",
		http.StatusConflict,
	)
	ErrPhoneAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Phone number already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidSortField = apperror.New(
		apperror.CodeInvalidInput,
		"Sort field is not allowed",
		http.StatusBadRequest,
	)
)
