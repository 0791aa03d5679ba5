package dto

import "time"

// LoginRequest credenciales del administrador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse sesión emitida tras un login exitoso. El estado de sesión es
// explícito: el cliente pasa el token en cada operación protegida, no hay
// bandera global ambiente.
type SessionResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
