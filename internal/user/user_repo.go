package user

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindPage(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
	FindRoleByName(ctx context.Context, name string) (*Role, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
	ExistsByKeycloakID(ctx context.Context, keycloakID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&u, "user_id = ?", id).Error
	return &u, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&u, "username = ?", username).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) FindPage(ctx context.Context, offset, limit int) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Order("user_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&User{}).Count(&total).Error
	return total, err
}

func (r *repository) FindRoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "role_name = ?", name).Error
	return &role, err
}

// Update saves scalar columns and replaces the users_roles association so
// removed roles are detached, not accumulated.
func (r *repository) Update(ctx context.Context, u *User) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit("Roles").Save(u).Error; err != nil {
		return err
	}
	return db.Model(u).Association("Roles").Replace(u.Roles)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&User{}, "user_id = ?", id).Error
}

func (r *repository) ExistsByKeycloakID(ctx context.Context, keycloakID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("keycloak_id = ?", keycloakID).
		Count(&count).Error
	return count > 0, err
}
