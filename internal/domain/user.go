package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleViewer     = 3
)

// User é um usuário configurado via AUTH_USERS
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
}

type Claims struct {
	UserEmail  string
	UserRoleID int
	Anonymous  bool
	jwt.RegisteredClaims
}

// AnonymousClaims são usadas quando a autenticação está desabilitada
func AnonymousClaims() *Claims {
	return &Claims{
		UserEmail:  "anonymous",
		UserRoleID: RoleAdmin,
		Anonymous:  true,
	}
}
