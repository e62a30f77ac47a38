package lookuperrors

import (
	"net/http"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/apperror"
)

var (
	ErrDocumentTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document type not found",
		http.StatusNotFound,
	)

	ErrEmployeeTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee type not found",
		http.StatusNotFound,
	)
)
