package user

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is an account managed by this service. Identity lives in Keycloak;
// only the keycloak_id link is stored here.
type User struct {
	ID         int64  `gorm:"column:user_id;primaryKey"`
	KeycloakID string `gorm:"column:keycloak_id"`
	Username   string `gorm:"column:username;uniqueIndex:uq_user_username"`
	Password   string `gorm:"column:password"`
	Enabled    *bool  `gorm:"column:enabled"`
	Email      string `gorm:"column:email;uniqueIndex:uq_user_email"`

	// Admin decides which roles get attached at creation; never persisted.
	Admin bool `gorm:"-"`

	Roles []Role `gorm:"many2many:users_roles;foreignKey:ID;joinForeignKey:user_id;references:ID;joinReferences:role_id"`
}

func (User) TableName() string {
	return "user"
}

type Role struct {
	ID   int64  `gorm:"column:role_id;primaryKey"`
	Name string `gorm:"column:role_name;uniqueIndex:uq_role_name"`
}

func (Role) TableName() string {
	return "role"
}
