package usererrors

import (
	"net/http"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrUsernameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)
	ErrUserEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email address already exists",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
