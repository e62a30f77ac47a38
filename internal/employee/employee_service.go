package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	employeeerrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/employee/errors"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/events"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/messaging/kafka"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/shared/contextutil"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	ListPageable(ctx context.Context, q PageQuery) (EmployeeListPageableResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest, image *ImageFile) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req CreateEmployeeRequest, image *ImageFile) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	lookups lookup.Service
	bucket  storage.Bucket
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	lookups lookup.Service,
	bucket storage.Bucket,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, lookups, bucket, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	lookups lookup.Service,
	bucket storage.Bucket,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		lookups: lookups,
		bucket:  bucket,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) ListPageable(ctx context.Context, q PageQuery) (EmployeeListPageableResponse, error) {
	s.logger.Debug("list employees pageable requested",
		zap.Int("page", q.Page),
		zap.Int("size", q.Size),
		zap.String("sort_by", q.SortBy),
		zap.String("sort_dir", q.SortDir),
	)

	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = 10
	}

	employees, err := s.repo.FindPageActive(ctx, q)
	if err != nil {
		s.logger.Error("list employees query failed", zap.Error(err))
		return EmployeeListPageableResponse{}, err
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		s.logger.Error("count active employees failed", zap.Error(err))
		return EmployeeListPageableResponse{}, err
	}

	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))

	resp := EmployeeListPageableResponse{
		Employees:     mapToListResponse(employees),
		PageNumber:    q.Page,
		PageSize:      q.Size,
		TotalPages:    totalPages,
		TotalElements: total,
		End:           q.Page >= totalPages-1,
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by email requested", zap.String("email", email))

	// stored emails are uppercased on write, so the lookup is too
	person, err := s.repo.FindPersonByEmail(ctx, strings.ToUpper(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrPersonNotFound
		}
		return EmployeeResponse{}, err
	}

	e, err := s.repo.FindByPersonID(ctx, person.ID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest, image *ImageFile) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.EmailAddress),
		zap.Int64("document_type_id", req.DocumentTypeID),
		zap.Int64("employee_type_id", req.EmployeeTypeID),
	)

	if err := s.checkUniqueness(ctx, req, nil); err != nil {
		return EmployeeResponse{}, err
	}

	documentType, err := s.lookups.GetDocumentType(ctx, req.DocumentTypeID)
	if err != nil {
		s.logger.Warn("create employee document type lookup failed",
			zap.Int64("document_type_id", req.DocumentTypeID), zap.Error(err))
		return EmployeeResponse{}, err
	}
	employeeType, err := s.lookups.GetEmployeeType(ctx, req.EmployeeTypeID)
	if err != nil {
		s.logger.Warn("create employee employee type lookup failed",
			zap.Int64("employee_type_id", req.EmployeeTypeID), zap.Error(err))
		return EmployeeResponse{}, err
	}

	now := time.Now()
	actor := contextutil.GetUserInSession(ctx)

	e := &Employee{
		State:          true,
		CreatedAt:      now,
		ModifiedByUser: actor,
		EmployeeTypeID: employeeType.ID,
		Person: &Person{
			Name:           strings.ToUpper(req.Name),
			LastName:       strings.ToUpper(req.LastName),
			EmailAddress:   strings.ToUpper(req.EmailAddress),
			PhoneNumber:    req.PhoneNumber,
			State:          true,
			CreatedAt:      now,
			ModifiedByUser: actor,
			DocumentTypeID: documentType.ID,
			Address: &Address{
				City:        strings.ToUpper(req.City),
				State:       strings.ToUpper(req.State),
				Country:     strings.ToUpper(req.Country),
				Street:      strings.ToUpper(req.Street),
				PostalCode:  strings.ToUpper(req.PostalCode),
				Description: strings.ToUpper(req.Description),
			},
		},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: e.ID,
			PersonID:   e.PersonID,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueOutbox(ctx, tx, "employee_created", e.ID, rid, event); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	// image write is a deliberate second phase: the key needs the id, and a
	// failed upload must not roll back the committed row
	if image != nil {
		url, err := s.storeImage(ctx, e.ID, image)
		if err != nil {
			s.logger.Error("create employee image upload failed",
				zap.Int64("employee_id", e.ID), zap.Error(err))
			return EmployeeResponse{}, err
		}
		e.EmployeeImage = &url
	}

	e.EmployeeType = employeeType
	e.Person.DocumentType = documentType

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", e.ID),
	)

	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id int64, req CreateEmployeeRequest, image *ImageFile) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.checkUniqueness(ctx, req, e); err != nil {
		return EmployeeResponse{}, err
	}

	documentType, err := s.lookups.GetDocumentType(ctx, req.DocumentTypeID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	employeeType, err := s.lookups.GetEmployeeType(ctx, req.EmployeeTypeID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	now := time.Now()
	actor := contextutil.GetUserInSession(ctx)

	e.Person.Address.City = strings.ToUpper(req.City)
	e.Person.Address.Country = strings.ToUpper(req.Country)
	e.Person.Address.PostalCode = strings.ToUpper(req.PostalCode)
	e.Person.Address.Street = strings.ToUpper(req.Street)
	e.Person.Address.State = strings.ToUpper(req.State)
	e.Person.Address.Description = strings.ToUpper(req.Description)
	e.Person.Name = strings.ToUpper(req.Name)
	e.Person.LastName = strings.ToUpper(req.LastName)
	e.Person.EmailAddress = strings.ToUpper(req.EmailAddress)
	e.Person.PhoneNumber = req.PhoneNumber
	e.Person.DocumentTypeID = documentType.ID
	e.Person.ModifiedAt = &now
	e.Person.ModifiedByUser = actor
	e.EmployeeTypeID = employeeType.ID
	e.ModifiedAt = &now
	e.ModifiedByUser = actor

	// lookup and user rows are read-only from here; detach them so the save
	// only touches employee, person and address
	e.EmployeeType = nil
	e.User = nil
	e.Person.DocumentType = nil

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Save(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := s.applyImageChange(ctx, e, req.DeleteFile, image); err != nil {
		return EmployeeResponse{}, err
	}

	e.EmployeeType = employeeType
	e.Person.DocumentType = documentType

	s.logger.Info("update employee success", zap.Int64("employee_id", id))

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee fetch existing failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if e.EmployeeImage != nil && *e.EmployeeImage != "" {
		path := s.bucket.PathFromURL(*e.EmployeeImage)
		if err := s.bucket.DeleteFile(ctx, path); err != nil {
			s.logger.Error("delete employee image failed",
				zap.Int64("employee_id", id), zap.Error(err))
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, e); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeDeletedEvent{
			EventType:  "employee_deleted",
			RequestID:  rid,
			EmployeeID: e.ID,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueOutbox(ctx, tx, "employee_deleted", e.ID, rid, event); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

// checkUniqueness rejects duplicate emails and phones. On update the check
// only fires when the value actually changed, so an employee never collides
// with itself.
func (s *service) checkUniqueness(ctx context.Context, req CreateEmployeeRequest, existing *Employee) error {
	email := strings.ToUpper(req.EmailAddress)

	if existing == nil || existing.Person == nil || existing.Person.EmailAddress != email {
		_, err := s.repo.FindPersonByEmail(ctx, email)
		switch {
		case err == nil:
			s.logger.Warn("email address already exists", zap.String("email", email))
			return employeeerrors.ErrEmailAlreadyExists
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}

	if existing == nil || existing.Person == nil || existing.Person.PhoneNumber != req.PhoneNumber {
		_, err := s.repo.FindPersonByPhone(ctx, req.PhoneNumber)
		switch {
		case err == nil:
			s.logger.Warn("phone number already exists", zap.String("phone", req.PhoneNumber))
			return employeeerrors.ErrPhoneAlreadyExists
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}

	return nil
}

// applyImageChange handles the update-time image lifecycle: an explicit
// delete flag clears the stored object, a new upload replaces the old one.
func (s *service) applyImageChange(ctx context.Context, e *Employee, deleteFile bool, image *ImageFile) error {
	current := ""
	if e.EmployeeImage != nil {
		current = *e.EmployeeImage
	}

	if deleteFile && current != "" {
		if err := s.bucket.DeleteFile(ctx, s.bucket.PathFromURL(current)); err != nil {
			s.logger.Error("delete employee image failed", zap.Int64("employee_id", e.ID), zap.Error(err))
			return err
		}
		if err := s.repo.UpdateImage(ctx, e.ID, nil); err != nil {
			return mapRepositoryError(err)
		}
		e.EmployeeImage = nil
		return nil
	}

	if image == nil {
		return nil
	}

	if current != "" {
		if err := s.bucket.DeleteFile(ctx, s.bucket.PathFromURL(current)); err != nil {
			s.logger.Error("replace employee image delete failed", zap.Int64("employee_id", e.ID), zap.Error(err))
			return err
		}
	}

	url, err := s.storeImage(ctx, e.ID, image)
	if err != nil {
		s.logger.Error("update employee image upload failed", zap.Int64("employee_id", e.ID), zap.Error(err))
		return err
	}
	e.EmployeeImage = &url
	return nil
}

// storeImage uploads the file under the deterministic employee key and
// persists the resulting URL on the row.
func (s *service) storeImage(ctx context.Context, employeeID int64, image *ImageFile) (string, error) {
	path := buildImagePath(employeeID, image.Name)

	if err := s.bucket.AddFile(ctx, path, storage.ObjectFile{
		Name:        image.Name,
		Size:        image.Size,
		ContentType: image.ContentType,
		Reader:      image.Content,
	}); err != nil {
		return "", err
	}

	url := s.bucket.GetURL(path)
	if err := s.repo.UpdateImage(ctx, employeeID, &url); err != nil {
		return "", mapRepositoryError(err)
	}
	return url, nil
}

func (s *service) queueOutbox(ctx context.Context, tx *sql.Tx, eventType string, employeeID int64, rid string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal outbox event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   fmt.Sprintf("%d", employeeID),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       data,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("outbox persist failed",
			zap.Int64("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func buildImagePath(employeeID int64, fileName string) string {
	return fmt.Sprintf("employee/EMPLOYEE-%d-%d%s", employeeID, time.Now().UnixMilli(), filepath.Ext(fileName))
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID,
		EmployeeImage:  e.EmployeeImage,
		PersonID:       e.PersonID,
		EmployeeTypeID: e.EmployeeTypeID,
		UserID:         e.UserID,
	}

	if e.EmployeeType != nil {
		resp.EmployeeType = &lookup.EmployeeTypeResponse{
			ID:    e.EmployeeType.ID,
			Value: e.EmployeeType.Value,
		}
	}

	if e.Person != nil {
		person := &PersonResponse{
			ID:           e.Person.ID,
			Name:         e.Person.Name,
			LastName:     e.Person.LastName,
			EmailAddress: e.Person.EmailAddress,
			PhoneNumber:  e.Person.PhoneNumber,
		}
		if e.Person.Address != nil {
			person.Address = &AddressResponse{
				ID:          e.Person.Address.ID,
				City:        e.Person.Address.City,
				State:       e.Person.Address.State,
				Country:     e.Person.Address.Country,
				Street:      e.Person.Address.Street,
				PostalCode:  e.Person.Address.PostalCode,
				Description: e.Person.Address.Description,
			}
		}
		if e.Person.DocumentType != nil {
			person.DocumentType = &lookup.DocumentTypeResponse{
				ID:    e.Person.DocumentType.ID,
				Value: e.Person.DocumentType.Value,
			}
		}
		resp.Person = person
		resp.EmployeeName = strings.TrimSpace(person.Name + " " + person.LastName)
		resp.EmployeeEmail = person.EmailAddress
	}

	if e.User != nil {
		resp.User = &UserSummaryResponse{
			ID:       e.User.ID,
			Username: e.User.Username,
			Email:    e.User.Email,
			Enabled:  e.User.Enabled == nil || *e.User.Enabled,
		}
	}

	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
