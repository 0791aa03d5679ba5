package auth

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminCredentials credenciales del único administrador, leídas de config.
// El hash viene pre-calculado (bcrypt); el password en claro nunca se guarda.
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

// AuthUseCase compuerta de sesión del panel de administración. El estado de
// sesión es explícito: cada operación protegida recibe el token vigente, no
// existe bandera global compartida.
type AuthUseCase struct {
	admin  AdminCredentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye la compuerta de sesión.
func NewAuthUseCase(admin AdminCredentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// Login verifica email y password contra las credenciales configuradas y emite
// un JWT con un session id nuevo. Devuelve domain.ErrUnauthorized si no coinciden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || email != strings.ToLower(uc.admin.Email) {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	sessionID := uuid.New().String()
	token, expiresAt, err := jwt.Generate(uc.jwtCfg.Secret, email, sessionID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:     token,
		SessionID: sessionID,
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}

// IsAuthenticated predicado binario de la compuerta: true si el token es
// válido y no ha expirado.
func (uc *AuthUseCase) IsAuthenticated(token string) bool {
	_, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	return err == nil
}
