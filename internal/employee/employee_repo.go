package employee

import (
	"context"
	"database/sql"
	"strings"

	employeeerrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee/errors"

	"gorm.io/gorm"
)

// PageQuery describes one page of the active-employee listing. Page is
// zero-based; SortBy uses the API's dotted property names.
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// sortColumns is the allow-list of sortable properties. Dotted API names map
// to the join aliases GORM assigns to the eager-loaded relations; anything
// outside this map is rejected before it can reach the query.
var sortColumns = map[string]string{
	"id":                  "employee.employee_id",
	"createdAt":           "employee.created_at",
	"modifiedAt":          "employee.modified_at",
	"person.name":         `"Person".name`,
	"person.lastName":     `"Person".last_name`,
	"person.emailAddress": `"Person".email_address`,
	"person.phoneNumber":  `"Person".phone_number`,
	"employeeType.value":  `"EmployeeType".employee_type_value`,
	"user.username":       `"User".username`,
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	Save(ctx context.Context, e *Employee) error
	UpdateImage(ctx context.Context, id int64, imageURL *string) error
	Delete(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByPersonID(ctx context.Context, personID int64) (*Employee, error)
	FindPersonByEmail(ctx context.Context, email string) (*Person, error)
	FindPersonByPhone(ctx context.Context, phone string) (*Person, error)
	FindPageActive(ctx context.Context, q PageQuery) ([]Employee, error)
	CountActive(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// session returns a gorm handle bound to the explicit transaction when one
// was attached via WithTx.
func (r *repository) session(ctx context.Context) *gorm.DB {
	db := r.db
	if r.tx != nil {
		db = r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
		db.Statement.ConnPool = r.tx
		return db
	}
	return db.WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.session(ctx).Create(e).Error
}

func (r *repository) Save(ctx context.Context, e *Employee) error {
	return r.session(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(e).Error
}

// UpdateImage is the second phase of the image write: the row exists, only
// the URL column changes.
func (r *repository) UpdateImage(ctx context.Context, id int64, imageURL *string) error {
	return r.session(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", id).
		Update("employee_image", imageURL).Error
}

func (r *repository) Delete(ctx context.Context, e *Employee) error {
	return r.session(ctx).Delete(e).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	err := r.session(ctx).
		Preload("EmployeeType").
		Preload("Person").
		Preload("Person.Address").
		Preload("Person.DocumentType").
		Preload("User").
		First(&e, "employee_id = ?", id).Error
	return &e, err
}

func (r *repository) FindByPersonID(ctx context.Context, personID int64) (*Employee, error) {
	var e Employee
	err := r.session(ctx).
		Preload("EmployeeType").
		Preload("Person").
		Preload("Person.Address").
		Preload("Person.DocumentType").
		Preload("User").
		First(&e, "person_id = ?", personID).Error
	return &e, err
}

func (r *repository) FindPersonByEmail(ctx context.Context, email string) (*Person, error) {
	var p Person
	err := r.session(ctx).First(&p, "email_address = ?", email).Error
	return &p, err
}

func (r *repository) FindPersonByPhone(ctx context.Context, phone string) (*Person, error) {
	var p Person
	err := r.session(ctx).First(&p, "phone_number = ?", phone).Error
	return &p, err
}

// FindPageActive runs the single listing query: left joins for EmployeeType,
// Person (with Address and DocumentType) and User, state filter, allow-listed
// ordering with a primary-key tie-break, then offset/limit.
func (r *repository) FindPageActive(ctx context.Context, q PageQuery) ([]Employee, error) {
	order, err := resolveOrder(q.SortBy, q.SortDir)
	if err != nil {
		return nil, err
	}

	var employees []Employee
	err = r.session(ctx).
		Joins("EmployeeType").
		Joins("Person").
		Joins("Person.Address").
		Joins("Person.DocumentType").
		Joins("User").
		Where("employee.state = ?", true).
		Order(order).
		Offset(q.Page * q.Size).
		Limit(q.Size).
		Find(&employees).Error
	return employees, err
}

// CountActive counts active employees without the fetch joins so join fan-out
// cannot inflate the total.
func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.session(ctx).
		Model(&Employee{}).
		Where("state = ?", true).
		Count(&total).Error
	return total, err
}

func resolveOrder(sortBy, sortDir string) (string, error) {
	if sortBy == "" {
		sortBy = "id"
		sortDir = "desc"
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		return "", employeeerrors.ErrInvalidSortField
	}

	dir := "DESC"
	if strings.EqualFold(sortDir, "asc") {
		dir = "ASC"
	}

	order := column + " " + dir
	if sortBy != "id" {
		// secondary key keeps paging deterministic when the sort key repeats
		order += ", employee.employee_id ASC"
	}
	return order, nil
}
