package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee"
	employeeerrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee/errors"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	ListPageableFn func(ctx context.Context, q employee.PageQuery) (employee.EmployeeListPageableResponse, error)
	GetByIDFn      func(ctx context.Context, id int64) (employee.EmployeeResponse, error)
	GetByEmailFn   func(ctx context.Context, email string) (employee.EmployeeResponse, error)
	CreateFn       func(ctx context.Context, req employee.CreateEmployeeRequest, image *employee.ImageFile) (employee.EmployeeResponse, error)
	UpdateFn       func(ctx context.Context, id int64, req employee.CreateEmployeeRequest, image *employee.ImageFile) (employee.EmployeeResponse, error)
	DeleteFn       func(ctx context.Context, id int64) error
}

func (f *fakeEmployeeService) ListPageable(ctx context.Context, q employee.PageQuery) (employee.EmployeeListPageableResponse, error) {
	return f.ListPageableFn(ctx, q)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest, image *employee.ImageFile) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req, image)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int64, req employee.CreateEmployeeRequest, image *employee.ImageFile) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req, image)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(body.Bytes(), &env))
	return env
}

func TestEmployeeHandler_ListPageable(t *testing.T) {
	t.Run("defaults applied when query params absent", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListPageableFn: func(ctx context.Context, q employee.PageQuery) (employee.EmployeeListPageableResponse, error) {
				assert.Equal(t, 0, q.Page)
				assert.Equal(t, 10, q.Size)
				assert.Equal(t, "id", q.SortBy)
				assert.Equal(t, "desc", q.SortDir)
				return employee.EmployeeListPageableResponse{
					Employees:  []employee.EmployeeResponse{},
					PageSize:   10,
					TotalPages: 0,
					End:        true,
				}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/list/pageable", h.ListPageable)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employee/list/pageable", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body)
		assert.True(t, env.Ok)
	})

	t.Run("query params forwarded", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListPageableFn: func(ctx context.Context, q employee.PageQuery) (employee.EmployeeListPageableResponse, error) {
				assert.Equal(t, 3, q.Page)
				assert.Equal(t, 25, q.Size)
				assert.Equal(t, "person.name", q.SortBy)
				assert.Equal(t, "asc", q.SortDir)
				return employee.EmployeeListPageableResponse{}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/list/pageable", h.ListPageable)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employee/list/pageable?pageNo=3&pageSize=25&sortBy=person.name&sortDir=asc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid sort field -> 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListPageableFn: func(ctx context.Context, q employee.PageQuery) (employee.EmployeeListPageableResponse, error) {
				return employee.EmployeeListPageableResponse{}, employeeerrors.ErrInvalidSortField
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/list/pageable", h.ListPageable)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employee/list/pageable?sortBy=evil", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body)
		assert.False(t, env.Ok)
	})
}

func TestEmployeeHandler_FindByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(42), id)
				return employee.EmployeeResponse{ID: 42, EmployeeName: "MARIA LOPEZ"}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/findById/:employeeId", h.FindByID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employee/findById/42", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body)
		assert.True(t, env.Ok)
	})

	t.Run("non-numeric id -> 400", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/findById/:employeeId", h.FindByID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employee/findById/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found -> 404 envelope", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/findById/:employeeId", h.FindByID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employee/findById/404", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body)
		assert.False(t, env.Ok)
	})
}

func TestEmployeeHandler_FindByEmail(t *testing.T) {
	t.Run("missing email -> 400", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/findByEmail", h.FindByEmail)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employee/findByEmail", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByEmailFn: func(ctx context.Context, email string) (employee.EmployeeResponse, error) {
				assert.Equal(t, "maria@example.com", email)
				return employee.EmployeeResponse{ID: 42}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.GET("/employee/findByEmail", h.FindByEmail)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/employee/findByEmail?email=maria@example.com", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func multipartCreateBody(t *testing.T, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"name":           "Maria",
		"lastName":       "Lopez",
		"emailAddress":   "maria@example.com",
		"phoneNumber":    "987654321",
		"documentTypeId": "1",
		"employeeTypeId": "2",
		"city":           "Lima",
		"state":          "Lima",
		"country":        "Peru",
		"street":         "Av. Principal 123",
		"postalCode":     "15001",
		"description":    "Near the park",
	}
	for k, v := range fields {
		assert.NoError(t, writer.WriteField(k, v))
	}

	if withImage {
		part, err := writer.CreateFormFile("employeeImage", "photo.png")
		assert.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		assert.NoError(t, err)
	}

	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestEmployeeHandler_Save(t *testing.T) {
	t.Run("success with image part", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, image *employee.ImageFile) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Maria", req.Name)
				assert.Equal(t, "maria@example.com", req.EmailAddress)
				assert.NotNil(t, image)
				assert.Equal(t, "photo.png", image.Name)
				return employee.EmployeeResponse{ID: 42}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.POST("/employee/save", h.Save)

		body, contentType := multipartCreateBody(t, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee/save", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body)
		assert.True(t, env.Ok)
	})

	t.Run("success without image", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, image *employee.ImageFile) (employee.EmployeeResponse, error) {
				assert.Nil(t, image)
				return employee.EmployeeResponse{ID: 43}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.POST("/employee/save", h.Save)

		body, contentType := multipartCreateBody(t, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee/save", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing required field -> 400", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.POST("/employee/save", h.Save)

		payload := `{"name":"Maria"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee/save", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body)
		assert.False(t, env.Ok)
	})

	t.Run("conflict surfaces as 409", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, image *employee.ImageFile) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.POST("/employee/save", h.Save)

		body, contentType := multipartCreateBody(t, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employee/save", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id int64, req employee.CreateEmployeeRequest, image *employee.ImageFile) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(42), id)
				return employee.EmployeeResponse{ID: 42}, nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.PUT("/employee/update/:employeeId", h.Update)

		body, contentType := multipartCreateBody(t, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employee/update/42", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric id -> 400", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.PUT("/employee/update/:employeeId", h.Update)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/employee/update/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(42), id)
				return nil
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.DELETE("/employee/delete/:employeeId", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/employee/delete/42", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body)
		assert.True(t, env.Ok)
		assert.Equal(t, true, env.Data)
	})

	t.Run("not found -> 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		h := employee.NewHandler(svc)
		r.DELETE("/employee/delete/:employeeId", h.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/employee/delete/404", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
