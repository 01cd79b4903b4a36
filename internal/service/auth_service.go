package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"camtourvisor/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// AuthService отвечает за регистрацию и вход пользователей по e-mail.
type AuthService struct {
	profiles ProfileStore
	tokens   *Tokens
	cost     int
	now      func() time.Time
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(profiles ProfileStore, tokens *Tokens) *AuthService {
	return &AuthService{profiles: profiles, tokens: tokens, cost: bcrypt.DefaultCost, now: time.Now}
}

// SignUp регистрирует пользователя. Имя пользователя по умолчанию - часть e-mail до "@".
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*model.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	v := validator{}
	v.require("email", email)
	v.check(strings.Contains(email, "@"), "email", "must be a valid e-mail address")
	v.check(len(password) >= minPasswordLen, "password", fmt.Sprintf("must be at least %d characters", minPasswordLen))
	if err := v.err(); err != nil {
		return nil, err
	}

	if _, err := s.profiles.GetByEmail(ctx, email); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("не удалось захешировать пароль: %w", err)
	}
	now := s.now().UTC()
	p := &model.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Username:     email[:strings.Index(email, "@")],
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SignIn проверяет пароль и выдает токен пользователя.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *model.Profile, error) {
	p, err := s.profiles.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrUnauthorized
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrUnauthorized
	}
	token, err := s.tokens.Issue(p.ID, RoleUser)
	if err != nil {
		return "", nil, err
	}
	return token, p, nil
}

// ParseToken возвращает ID пользователя из токена.
func (s *AuthService) ParseToken(raw string) (string, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return "", err
	}
	if claims.Role != RoleUser {
		return "", ErrForbidden
	}
	return claims.Subject, nil
}

// AdminService проверяет учетные данные администратора из конфигурации.
type AdminService struct {
	username string
	password string
	tokens   *Tokens
}

func NewAdminService(username, password string, tokens *Tokens) *AdminService {
	return &AdminService{username: username, password: password, tokens: tokens}
}

// Login выдает токен администратора.
func (s *AdminService) Login(creds model.AdminCredentials) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrUnauthorized
	}
	return s.tokens.Issue(creds.Username, RoleAdmin)
}

// ParseToken проверяет, что токен выдан администратору.
func (s *AdminService) ParseToken(raw string) (string, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return "", err
	}
	if claims.Role != RoleAdmin {
		return "", ErrForbidden
	}
	return claims.Subject, nil
}
