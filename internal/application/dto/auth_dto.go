package dto

import "time"

// SigninRequest credenciales de inicio de sesión.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SigninResponse token emitido más el usuario y la URL de su dashboard.
type SigninResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	DashboardURL string       `json:"dashboard_url"`
}
