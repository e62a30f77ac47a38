package employee_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee"
	employeeerrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee/errors"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup"
	lookuperrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup/errors"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/messaging/kafka"

	employeeMock "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee/mock"
	lookupMock "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup/mock"
	kafkaMock "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/messaging/kafka/mock"
	storageMock "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/storage/mock"

	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	lookups *lookupMock.MockService
	bucket  *storageMock.MockBucket
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := employeeMock.NewMockRepository(ctrl)
	lookups := lookupMock.NewMockService(ctrl)
	bucket := storageMock.NewMockBucket(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, lookups, bucket, outbox)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		lookups: lookups,
		bucket:  bucket,
		outbox:  outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:           "Maria",
		LastName:       "Lopez",
		EmailAddress:   "maria@example.com",
		PhoneNumber:    "987654321",
		DocumentTypeID: 1,
		EmployeeTypeID: 2,
		City:           "Lima",
		State:          "Lima",
		Country:        "Peru",
		Street:         "Av. Principal 123",
		PostalCode:     "15001",
		Description:    "Near the park",
	}
}

func expectNoDuplicates(deps *serviceDeps, ctx context.Context, req employee.CreateEmployeeRequest) {
	deps.repo.EXPECT().
		FindPersonByEmail(ctx, strings.ToUpper(req.EmailAddress)).
		Return(nil, gorm.ErrRecordNotFound)
	deps.repo.EXPECT().
		FindPersonByPhone(ctx, req.PhoneNumber).
		Return(nil, gorm.ErrRecordNotFound)
}

func expectLookups(deps *serviceDeps, ctx context.Context, req employee.CreateEmployeeRequest) {
	deps.lookups.EXPECT().
		GetDocumentType(ctx, req.DocumentTypeID).
		Return(&lookup.DocumentType{ID: req.DocumentTypeID, Value: "DNI"}, nil)
	deps.lookups.EXPECT().
		GetEmployeeType(ctx, req.EmployeeTypeID).
		Return(&lookup.EmployeeType{ID: req.EmployeeTypeID, Value: "HAIRDRESSER"}, nil)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - uppercases fields and queues outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectNoDuplicates(deps, ctx, req)
		expectLookups(deps, ctx, req)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.True(t, e.State)
				assert.Equal(t, "MARIA", e.Person.Name)
				assert.Equal(t, "LOPEZ", e.Person.LastName)
				assert.Equal(t, "MARIA@EXAMPLE.COM", e.Person.EmailAddress)
				assert.Equal(t, "987654321", e.Person.PhoneNumber)
				assert.Equal(t, "LIMA", e.Person.Address.City)
				assert.Equal(t, "PERU", e.Person.Address.Country)
				e.ID = 42
				e.PersonID = 7
				e.Person.ID = 7
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "employee_created", ev.EventType)
				assert.Equal(t, "employee", ev.AggregateType)
				assert.Equal(t, "42", ev.AggregateID)
				assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
				return nil
			})

		resp, err := deps.service.Create(ctx, req, nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "MARIA LOPEZ", resp.EmployeeName)
		assert.Equal(t, "MARIA@EXAMPLE.COM", resp.EmployeeEmail)
		assert.NotNil(t, resp.EmployeeType)
		assert.Equal(t, "HAIRDRESSER", resp.EmployeeType.Value)
	})

	t.Run("success - uploads image after commit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectNoDuplicates(deps, ctx, req)
		expectLookups(deps, ctx, req)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				e.ID = 42
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		url := "http://store/images/employee/EMPLOYEE-42-1.png"
		deps.bucket.EXPECT().
			AddFile(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, path string, _ any) error {
				assert.True(t, strings.HasPrefix(path, "employee/EMPLOYEE-42-"))
				assert.True(t, strings.HasSuffix(path, ".png"))
				return nil
			})
		deps.bucket.EXPECT().GetURL(gomock.Any()).Return(url)
		deps.repo.EXPECT().UpdateImage(ctx, int64(42), &url).Return(nil)

		resp, err := deps.service.Create(ctx, req, &employee.ImageFile{
			Name:        "photo.png",
			Size:        4,
			ContentType: "image/png",
			Content:     strings.NewReader("data"),
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp.EmployeeImage)
		assert.Equal(t, url, *resp.EmployeeImage)
	})

	t.Run("duplicate email -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		deps.repo.EXPECT().
			FindPersonByEmail(ctx, "MARIA@EXAMPLE.COM").
			Return(&employee.Person{ID: 9, EmailAddress: "MARIA@EXAMPLE.COM"}, nil)

		_, err := deps.service.Create(ctx, req, nil)

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})

	t.Run("duplicate phone -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		deps.repo.EXPECT().
			FindPersonByEmail(ctx, gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			FindPersonByPhone(ctx, req.PhoneNumber).
			Return(&employee.Person{ID: 9, PhoneNumber: req.PhoneNumber}, nil)

		_, err := deps.service.Create(ctx, req, nil)

		assert.ErrorIs(t, err, employeeerrors.ErrPhoneAlreadyExists)
	})

	t.Run("unknown document type -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectNoDuplicates(deps, ctx, req)
		deps.lookups.EXPECT().
			GetDocumentType(ctx, req.DocumentTypeID).
			Return(nil, lookuperrors.ErrDocumentTypeNotFound)

		_, err := deps.service.Create(ctx, req, nil)

		assert.ErrorIs(t, err, lookuperrors.ErrDocumentTypeNotFound)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectNoDuplicates(deps, ctx, req)
		expectLookups(deps, ctx, req)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, req, nil)

		assert.Error(t, err)
	})

	t.Run("unique violation race -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()

		expectNoDuplicates(deps, ctx, req)
		expectLookups(deps, ctx, req)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_person_email"})

		_, err := deps.service.Create(ctx, req, nil)

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})
}

func existingEmployee() *employee.Employee {
	img := "http://store/images/employee/EMPLOYEE-42-1.png"
	return &employee.Employee{
		ID:             42,
		EmployeeImage:  &img,
		State:          true,
		PersonID:       7,
		EmployeeTypeID: 2,
		Person: &employee.Person{
			ID:             7,
			Name:           "MARIA",
			LastName:       "LOPEZ",
			EmailAddress:   "MARIA@EXAMPLE.COM",
			PhoneNumber:    "987654321",
			State:          true,
			AddressID:      3,
			DocumentTypeID: 1,
			Address:        &employee.Address{ID: 3, City: "LIMA"},
			DocumentType:   &lookup.DocumentType{ID: 1, Value: "DNI"},
		},
		EmployeeType: &lookup.EmployeeType{ID: 2, Value: "HAIRDRESSER"},
	}
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success - unchanged email and phone skip uniqueness probes", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest() // same email and phone as the stored row

		deps.repo.EXPECT().
			FindByID(ctx, int64(42)).
			Return(existingEmployee(), nil)

		expectLookups(deps, ctx, req)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "MARIA", e.Person.Name)
				assert.NotNil(t, e.ModifiedAt)
				// association rows must not be written back
				assert.Nil(t, e.EmployeeType)
				assert.Nil(t, e.Person.DocumentType)
				return nil
			})

		resp, err := deps.service.Update(ctx, 42, req, nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.NotNil(t, resp.EmployeeType)
	})

	t.Run("changed email collides -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.EmailAddress = "taken@example.com"

		deps.repo.EXPECT().
			FindByID(ctx, int64(42)).
			Return(existingEmployee(), nil)
		deps.repo.EXPECT().
			FindPersonByEmail(ctx, "TAKEN@EXAMPLE.COM").
			Return(&employee.Person{ID: 99}, nil)

		_, err := deps.service.Update(ctx, 42, req, nil)

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})

	t.Run("delete flag removes stored image", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.DeleteFile = true

		deps.repo.EXPECT().
			FindByID(ctx, int64(42)).
			Return(existingEmployee(), nil)

		expectLookups(deps, ctx, req)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		deps.bucket.EXPECT().
			PathFromURL("http://store/images/employee/EMPLOYEE-42-1.png").
			Return("employee/EMPLOYEE-42-1.png")
		deps.bucket.EXPECT().
			DeleteFile(ctx, "employee/EMPLOYEE-42-1.png").
			Return(nil)
		deps.repo.EXPECT().UpdateImage(ctx, int64(42), nil).Return(nil)

		resp, err := deps.service.Update(ctx, 42, req, nil)

		assert.NoError(t, err)
		assert.Nil(t, resp.EmployeeImage)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(ctx, int64(404)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 404, validCreateRequest(), nil)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success - removes image then row", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(ctx, int64(42)).
			Return(existingEmployee(), nil)

		deps.bucket.EXPECT().
			PathFromURL("http://store/images/employee/EMPLOYEE-42-1.png").
			Return("employee/EMPLOYEE-42-1.png")
		deps.bucket.EXPECT().
			DeleteFile(ctx, "employee/EMPLOYEE-42-1.png").
			Return(nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "employee_deleted", ev.EventType)
				return nil
			})

		err := deps.service.Delete(ctx, 42)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(ctx, int64(404)).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 404)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_ListPageable(t *testing.T) {
	ctx := context.Background()

	t.Run("success - derives paging metadata", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		q := employee.PageQuery{Page: 2, Size: 5, SortBy: "id", SortDir: "desc"}

		deps.repo.EXPECT().
			FindPageActive(ctx, q).
			Return([]employee.Employee{*existingEmployee(), *existingEmployee()}, nil)
		deps.repo.EXPECT().
			CountActive(ctx).
			Return(int64(12), nil)

		resp, err := deps.service.ListPageable(ctx, q)

		assert.NoError(t, err)
		assert.Len(t, resp.Employees, 2)
		assert.Equal(t, 2, resp.PageNumber)
		assert.Equal(t, 5, resp.PageSize)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Equal(t, int64(12), resp.TotalElements)
		assert.True(t, resp.End)
	})

	t.Run("negative page and zero size are clamped", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindPageActive(ctx, employee.PageQuery{Page: 0, Size: 10, SortBy: "id", SortDir: "desc"}).
			Return([]employee.Employee{}, nil)
		deps.repo.EXPECT().
			CountActive(ctx).
			Return(int64(0), nil)

		resp, err := deps.service.ListPageable(ctx, employee.PageQuery{Page: -3, Size: 0, SortBy: "id", SortDir: "desc"})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.PageNumber)
		assert.Equal(t, 10, resp.PageSize)
	})

	t.Run("disallowed sort field surfaces validation error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		q := employee.PageQuery{Page: 0, Size: 10, SortBy: "person.name; DROP TABLE", SortDir: "asc"}

		deps.repo.EXPECT().
			FindPageActive(ctx, q).
			Return(nil, employeeerrors.ErrInvalidSortField)

		_, err := deps.service.ListPageable(ctx, q)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSortField)
	})
}

func TestEmployeeService_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success - lookup is case-insensitive", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindPersonByEmail(ctx, "MARIA@EXAMPLE.COM").
			Return(&employee.Person{ID: 7}, nil)
		deps.repo.EXPECT().
			FindByPersonID(ctx, int64(7)).
			Return(existingEmployee(), nil)

		resp, err := deps.service.GetByEmail(ctx, "maria@example.com")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("person not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindPersonByEmail(ctx, "NOBODY@EXAMPLE.COM").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, employeeerrors.ErrPersonNotFound)
	})
}
