package user

import (
	"net/http"
	"strconv"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/apperror"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/response"
	usererrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/user/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("pageNo", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	users, total, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, size)
	response.Success(c, http.StatusOK, "List of users retrieved successfully", users, &meta)
}

func (h *Handler) FindByID(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", resp, nil)
}

func (h *Handler) FindByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		h.writeServiceError(c, apperror.RequiredField("username"))
		return
	}

	resp, err := h.service.GetByUsername(c.Request.Context(), username)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", resp, nil)
}

func (h *Handler) ExistsByKeycloakID(c *gin.Context) {
	keycloakID := c.Param("keycloakId")
	if keycloakID == "" {
		h.writeServiceError(c, apperror.RequiredField("keycloakId"))
		return
	}

	exists, err := h.service.ExistsByKeycloakID(c.Request.Context(), keycloakID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User existence checked successfully", exists, nil)
}

func (h *Handler) Save(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http save user validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User saved successfully", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update user validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", true, nil)
}

func parseUserID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return 0, usererrors.ErrInvalidUserID
	}
	return id, nil
}
