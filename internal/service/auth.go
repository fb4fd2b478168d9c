package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/medical_dispatch/internal/config"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenTypeBearer = "bearer"

// AuthService определяет контракт хранилища учетных данных
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Token, error)
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
	CreateUser(ctx context.Context, username, password, fullName string, role models.Role) (*models.User, error)
}

// Claims - полезная нагрузка токена доступа
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

type authService struct {
	users    UserRepository
	attempts LoginAttemptStore
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(users UserRepository, attempts LoginAttemptStore, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:    users,
		attempts: attempts,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// HashPassword возвращает bcrypt-хеш пароля
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login проверяет учетные данные и выдает токен доступа
func (s *authService) Login(ctx context.Context, username, password string) (*models.Token, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	if s.cfg.MaxLoginAttempts > 0 {
		failed, err := s.attempts.Count(ctx, username)
		if err != nil {
			log.WithError(err).Error("Failed to read login attempts")
			return nil, fmt.Errorf("service: could not check login attempts: %w", ErrUnavailable)
		}
		if failed >= s.cfg.MaxLoginAttempts {
			log.Warn("Login refused, too many failed attempts")
			return nil, ErrTooManyLoginAttempts
		}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to load user")
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}
	if user == nil || user.Disabled ||
		bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		s.recordFailure(ctx, log, username)
		log.Warn("Invalid credentials")
		return nil, ErrInvalidCredentials
	}

	if err := s.attempts.Reset(ctx, username); err != nil {
		log.WithError(err).Warn("Failed to reset login attempts")
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to sign access token")
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.Info("User logged in")
	return &models.Token{AccessToken: token, TokenType: tokenTypeBearer}, nil
}

func (s *authService) recordFailure(ctx context.Context, log *logrus.Entry, username string) {
	if s.cfg.MaxLoginAttempts <= 0 {
		return
	}
	count, err := s.attempts.Increment(ctx, username, s.cfg.LoginLockoutWindow)
	if err != nil {
		log.WithError(err).Warn("Failed to record failed login attempt")
		return
	}
	log.WithField("failed_attempts", count).Debug("Failed login attempt recorded")
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenExpire)),
		},
		Role: user.Role,
	}
	token := jwt.NewWithClaims(jwt.GetSigningMethod(s.cfg.Algorithm), claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// Authenticate проверяет токен и возвращает актуальную запись пользователя
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SecretKey), nil
	},
		jwt.WithValidMethods([]string{s.cfg.Algorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return nil, fmt.Errorf("could not validate credentials: %w", ErrUnauthorized)
	}

	user, err := s.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("token subject no longer exists: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}
	if user.Disabled {
		return nil, fmt.Errorf("inactive user: %w", ErrUnauthorized)
	}
	return user, nil
}

// CreateUser заводит пользователя; используется только при начальной настройке
func (s *authService) CreateUser(ctx context.Context, username, password, fullName string, role models.Role) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "CreateUser",
		"username": username,
		"role":     role,
	})

	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidArgument)
	}
	if len([]rune(password)) < s.cfg.PasswordMinLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", s.cfg.PasswordMinLength, ErrInvalidArgument)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       username,
		FullName:       fullName,
		Role:           role,
		HashedPassword: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created successfully")
	return user, nil
}
