package lookup_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLookupService struct {
	ListDocumentTypesFn func(ctx context.Context) ([]lookup.DocumentTypeResponse, error)
	ListEmployeeTypesFn func(ctx context.Context) ([]lookup.EmployeeTypeResponse, error)
}

func (f *fakeLookupService) GetDocumentType(ctx context.Context, id int64) (*lookup.DocumentType, error) {
	return nil, errors.New("not used")
}
func (f *fakeLookupService) GetEmployeeType(ctx context.Context, id int64) (*lookup.EmployeeType, error) {
	return nil, errors.New("not used")
}
func (f *fakeLookupService) ListDocumentTypes(ctx context.Context) ([]lookup.DocumentTypeResponse, error) {
	return f.ListDocumentTypesFn(ctx)
}
func (f *fakeLookupService) ListEmployeeTypes(ctx context.Context) ([]lookup.EmployeeTypeResponse, error) {
	return f.ListEmployeeTypesFn(ctx)
}

func TestLookupHandler_ListDocumentTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLookupService{
			ListDocumentTypesFn: func(ctx context.Context) ([]lookup.DocumentTypeResponse, error) {
				return []lookup.DocumentTypeResponse{{ID: 1, Value: "DNI"}}, nil
			},
		}

		r := gin.New()
		h := lookup.NewHandler(svc)
		r.GET("/document-type/list", h.ListDocumentTypes)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/document-type/list", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var env response.ApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
	})

	t.Run("service failure -> 500", func(t *testing.T) {
		svc := &fakeLookupService{
			ListDocumentTypesFn: func(ctx context.Context) ([]lookup.DocumentTypeResponse, error) {
				return nil, errors.New("db down")
			},
		}

		r := gin.New()
		h := lookup.NewHandler(svc)
		r.GET("/document-type/list", h.ListDocumentTypes)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/document-type/list", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLookupHandler_ListEmployeeTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeLookupService{
		ListEmployeeTypesFn: func(ctx context.Context) ([]lookup.EmployeeTypeResponse, error) {
			return []lookup.EmployeeTypeResponse{{ID: 1, Value: "HAIRDRESSER"}}, nil
		},
	}

	r := gin.New()
	h := lookup.NewHandler(svc)
	r.GET("/employee-type/list", h.ListEmployeeTypes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employee-type/list", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
