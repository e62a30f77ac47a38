package user

type CreateUserRequest struct {
	KeycloakID string `json:"keycloakId"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Email      string `json:"email" binding:"required,email"`
	Admin      bool   `json:"admin"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Enabled  *bool  `json:"enabled"`
	Admin    bool   `json:"admin"`
}

type UserResponse struct {
	ID         int64    `json:"id"`
	KeycloakID string   `json:"keycloakId,omitempty"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Enabled    bool     `json:"enabled"`
	Roles      []string `json:"roles"`
}
