package lookup

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=lookup_repo.go -destination=mock/lookup_repo_mock.go -package=mock
type Repository interface {
	FindDocumentTypeByID(ctx context.Context, id int64) (*DocumentType, error)
	FindEmployeeTypeByID(ctx context.Context, id int64) (*EmployeeType, error)
	ListDocumentTypes(ctx context.Context) ([]DocumentType, error)
	ListEmployeeTypes(ctx context.Context) ([]EmployeeType, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindDocumentTypeByID(ctx context.Context, id int64) (*DocumentType, error) {
	var dt DocumentType
	err := r.db.WithContext(ctx).First(&dt, "document_type_id = ?", id).Error
	return &dt, err
}

func (r *repository) FindEmployeeTypeByID(ctx context.Context, id int64) (*EmployeeType, error) {
	var et EmployeeType
	err := r.db.WithContext(ctx).First(&et, "employee_type_id = ?", id).Error
	return &et, err
}

func (r *repository) ListDocumentTypes(ctx context.Context) ([]DocumentType, error) {
	var dts []DocumentType
	err := r.db.WithContext(ctx).Order("document_type_id ASC").Find(&dts).Error
	return dts, err
}

func (r *repository) ListEmployeeTypes(ctx context.Context) ([]EmployeeType, error) {
	var ets []EmployeeType
	err := r.db.WithContext(ctx).Order("employee_type_id ASC").Find(&ets).Error
	return ets, err
}
