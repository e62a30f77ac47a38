package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	lookuperrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	DocumentTypeListKey = "lookup:document-types"
	EmployeeTypeListKey = "lookup:employee-types"

	listCacheTTL = 1 * time.Hour
)

//go:generate mockgen -source=lookup_service.go -destination=mock/lookup_service_mock.go -package=mock
type Service interface {
	GetDocumentType(ctx context.Context, id int64) (*DocumentType, error)
	GetEmployeeType(ctx context.Context, id int64) (*EmployeeType, error)
	ListDocumentTypes(ctx context.Context) ([]DocumentTypeResponse, error)
	ListEmployeeTypes(ctx context.Context) ([]EmployeeTypeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("lookup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetDocumentType(ctx context.Context, id int64) (*DocumentType, error) {
	dt, err := s.repo.FindDocumentTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lookuperrors.ErrDocumentTypeNotFound
		}
		return nil, err
	}
	return dt, nil
}

func (s *service) GetEmployeeType(ctx context.Context, id int64) (*EmployeeType, error) {
	et, err := s.repo.FindEmployeeTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lookuperrors.ErrEmployeeTypeNotFound
		}
		return nil, err
	}
	return et, nil
}

// ListDocumentTypes serves the lookup list from Redis when warm; cache
// misses collapse onto one DB query via singleflight.
func (s *service) ListDocumentTypes(ctx context.Context) ([]DocumentTypeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DocumentTypeListKey).Result(); err == nil {
			var resp []DocumentTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DocumentTypeListKey, func() (interface{}, error) {
		dts, err := s.repo.ListDocumentTypes(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]DocumentTypeResponse, len(dts))
		for i, dt := range dts {
			resp[i] = DocumentTypeResponse{ID: dt.ID, Value: dt.Value}
		}

		s.cacheList(ctx, DocumentTypeListKey, resp)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]DocumentTypeResponse), nil
}

func (s *service) ListEmployeeTypes(ctx context.Context) ([]EmployeeTypeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeTypeListKey).Result(); err == nil {
			var resp []EmployeeTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeTypeListKey, func() (interface{}, error) {
		ets, err := s.repo.ListEmployeeTypes(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]EmployeeTypeResponse, len(ets))
		for i, et := range ets {
			resp[i] = EmployeeTypeResponse{ID: et.ID, Value: et.Value}
		}

		s.cacheList(ctx, EmployeeTypeListKey, resp)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeTypeResponse), nil
}

func (s *service) cacheList(ctx context.Context, key string, v any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, listCacheTTL).Err(); err != nil {
		s.logger.Warn("cache lookup list failed", zap.String("key", key), zap.Error(err))
	}
}
