package employee

import (
	"net/http"
	"strconv"

	employeeerrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee/errors"
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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListPageable(c *gin.Context) {
	pageNo, _ := strconv.Atoi(c.DefaultQuery("pageNo", "0"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	sortBy := c.DefaultQuery("sortBy", "id")
	sortDir := c.DefaultQuery("sortDir", "desc")

	h.logger.Debug("http list employees pageable",
		zap.Int("page_no", pageNo),
		zap.Int("page_size", pageSize),
		zap.String("sort_by", sortBy),
		zap.String("sort_dir", sortDir),
	)

	resp, err := h.service.ListPageable(c.Request.Context(), PageQuery{
		Page:    pageNo,
		Size:    pageSize,
		SortBy:  sortBy,
		SortDir: sortDir,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "List of employees retrieved successfully", resp, nil)
}

func (h *Handler) FindByID(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Debug("http find employee by id", zap.Int64("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee retrieved successfully", resp, nil)
}

func (h *Handler) FindByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		h.writeServiceError(c, apperror.RequiredField("email"))
		return
	}

	resp, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee retrieved successfully", resp, nil)
}

func (h *Handler) Save(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http save employee validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	image, err := h.imageFromForm(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req, image)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Employee saved successfully", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	image, err := h.imageFromForm(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req, image)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Debug("http delete employee", zap.Int64("employee_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee deleted successfully", true, nil)
}

// imageFromForm extracts the optional employeeImage multipart part. A plain
// JSON body (no multipart form) is fine; it just means no image.
func (h *Handler) imageFromForm(c *gin.Context) (*ImageFile, error) {
	file, err := c.FormFile("employeeImage")
	if err != nil {
		return nil, nil
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}

	return &ImageFile{
		Name:        file.Filename,
		Size:        file.Size,
		ContentType: file.Header.Get("Content-Type"),
		Content:     f,
	}, nil
}

func parseEmployeeID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("employeeId"), 10, 64)
	if err != nil {
		return 0, employeeerrors.ErrInvalidEmployeeID
	}
	return id, nil
}
