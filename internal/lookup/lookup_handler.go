package lookup

import (
	"net/http"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/apperror"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("lookup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListDocumentTypes(c *gin.Context) {
	resp, err := h.service.ListDocumentTypes(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "List of document types retrieved successfully", resp, nil)
}

func (h *Handler) ListEmployeeTypes(c *gin.Context) {
	resp, err := h.service.ListEmployeeTypes(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "List of employee types retrieved successfully", resp, nil)
}
