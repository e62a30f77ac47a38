package user

import (
	"context"
	"errors"
	"strings"

	usererrors "github.com/RPantaX/user-service-braidsbeautyByAngie/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, page, size int) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id int64) (UserResponse, error)
	GetByUsername(ctx context.Context, username string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int64) error
	ExistsByKeycloakID(ctx context.Context, keycloakID string) (bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, page, size int) ([]UserResponse, int64, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	users, err := s.repo.FindPage(ctx, page*size, size)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count users failed", zap.Error(err))
		return nil, 0, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, mapToResponse(&users[i]))
	}
	return responses, total, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapUserRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) GetByUsername(ctx context.Context, username string) (UserResponse, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return UserResponse{}, mapUserRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	s.logger.Info("create user requested", zap.String("username", req.Username))

	if err := s.checkUniqueness(ctx, req.Username, req.Email, 0); err != nil {
		return UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return UserResponse{}, err
	}

	roles, err := s.resolveRoles(ctx, req.Admin)
	if err != nil {
		return UserResponse{}, err
	}

	enabled := true
	u := &User{
		KeycloakID: req.KeycloakID,
		Username:   req.Username,
		Password:   string(hash),
		Email:      req.Email,
		Enabled:    &enabled,
		Roles:      roles,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return UserResponse{}, mapUserRepositoryError(err)
	}

	s.logger.Info("user created", zap.Int64("user_id", u.ID))
	return mapToResponse(u), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateUserRequest) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapUserRepositoryError(err)
	}

	if err := s.checkUniqueness(ctx, req.Username, req.Email, u.ID); err != nil {
		return UserResponse{}, err
	}

	if req.Username != "" {
		u.Username = req.Username
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Enabled != nil {
		u.Enabled = req.Enabled
	}

	roles, err := s.resolveRoles(ctx, req.Admin)
	if err != nil {
		return UserResponse{}, err
	}
	u.Roles = roles

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user failed", zap.Int64("user_id", id), zap.Error(err))
		return UserResponse{}, mapUserRepositoryError(err)
	}

	return mapToResponse(u), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapUserRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", zap.Int64("user_id", id), zap.Error(err))
		return mapUserRepositoryError(err)
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

func (s *service) ExistsByKeycloakID(ctx context.Context, keycloakID string) (bool, error) {
	return s.repo.ExistsByKeycloakID(ctx, keycloakID)
}

// checkUniqueness rejects a username or email already owned by another user.
// A match on the user being updated is not a conflict.
func (s *service) checkUniqueness(ctx context.Context, username, email string, selfID int64) error {
	if username != "" {
		existing, err := s.repo.FindByUsername(ctx, username)
		if err == nil && existing.ID != selfID {
			return usererrors.ErrUsernameAlreadyExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if email != "" {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err == nil && existing.ID != selfID {
			return usererrors.ErrUserEmailAlreadyExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

// resolveRoles always attaches ROLE_USER; admins additionally get ROLE_ADMIN.
func (s *service) resolveRoles(ctx context.Context, admin bool) ([]Role, error) {
	userRole, err := s.repo.FindRoleByName(ctx, RoleUser)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrRoleNotFound
		}
		return nil, err
	}
	roles := []Role{*userRole}

	if admin {
		adminRole, err := s.repo.FindRoleByName(ctx, RoleAdmin)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, usererrors.ErrRoleNotFound
			}
			return nil, err
		}
		roles = append(roles, *adminRole)
	}
	return roles, nil
}

func mapUserRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_user_username":
				return usererrors.ErrUsernameAlreadyExists
			case "uq_user_email":
				return usererrors.ErrUserEmailAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_username") {
		return usererrors.ErrUsernameAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_email") {
		return usererrors.ErrUserEmailAlreadyExists
	}

	return err
}

func mapToResponse(u *User) UserResponse {
	roleNames := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roleNames = append(roleNames, r.Name)
	}
	return UserResponse{
		ID:         u.ID,
		KeycloakID: u.KeycloakID,
		Username:   u.Username,
		Email:      u.Email,
		Enabled:    u.Enabled == nil || *u.Enabled,
		Roles:      roleNames,
	}
}
