package authenticating

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funding-dashboard-api/internal/config"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Authenticator interface {
	Enabled() bool
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	enabled  bool
	secret   []byte
	tokenTTL time.Duration
	users    map[string]domain.User
}

func NewService(cfg *config.Config) (Authenticator, error) {
	users, err := ParseUsers(cfg.Auth.Users)
	if err != nil {
		return nil, err
	}

	tokenTTL := cfg.Auth.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	if cfg.Auth.Enabled && len(users) == 0 {
		logrus.Warn("Autenticação habilitada sem usuários configurados em AUTH_USERS")
	}

	return &Service{
		enabled:  cfg.Auth.Enabled,
		secret:   []byte(cfg.Auth.Secret),
		tokenTTL: tokenTTL,
		users:    users,
	}, nil
}

// ParseUsers interpreta entradas no formato email|bcrypt-hash|role
func ParseUsers(entries []string) (map[string]domain.User, error) {
	users := make(map[string]domain.User, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: esperado email|hash|role", ErrInvalidUserEntry)
		}

		roleID, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || roleID < domain.RoleAdmin || roleID > domain.RoleViewer {
			return nil, fmt.Errorf("%w: perfil %q", ErrInvalidUserEntry, parts[2])
		}

		email := handleEmail(parts[0])
		users[email] = domain.User{
			Email:        email,
			PasswordHash: strings.TrimSpace(parts[1]),
			RoleID:       roleID,
		}
	}
	return users, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Enabled() bool {
	return s.enabled
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if !s.enabled {
		return "", NewAuthError(ErrAuthDisabled, apiErrors.ErrInvalidRequest, "Autenticação não está habilitada")
	}

	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, ok := s.users[email]
	if !ok {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrInvalidCredentials, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user domain.User) (string, error) {
	now := time.Now()
	claims := domain.Claims{
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	return claims, nil
}
