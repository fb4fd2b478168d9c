package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/config"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPassword = "s3cret-pass"

func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository, *mocks.MockLoginAttemptStore) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)
	attemptsMock := mocks.NewMockLoginAttemptStore(ctrl)

	cfg := &config.Config{
		SecretKey:          "test-secret",
		Algorithm:          "HS256",
		AccessTokenExpire:  30 * time.Minute,
		MaxLoginAttempts:   5,
		LoginLockoutWindow: 15 * time.Minute,
		PasswordMinLength:  8,
	}

	svc := NewAuthService(usersMock, attemptsMock, newTestLogger(), cfg).(*authService)
	return svc, usersMock, attemptsMock
}

func newStoredUser(t *testing.T, role models.Role) *models.User {
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)
	return &models.User{
		ID:             uuid.New(),
		Username:       "alice",
		FullName:       "Alice Smith",
		Role:           role,
		HashedPassword: hash,
	}
}

func TestLogin_Success(t *testing.T) {
	svc, usersMock, attemptsMock := newTestAuthService(t)
	ctx := context.Background()
	user := newStoredUser(t, models.RoleDispatcher)

	attemptsMock.EXPECT().Count(ctx, "alice").Return(0, nil).Times(1)
	usersMock.EXPECT().GetByUsername(ctx, "alice").Return(user, nil).Times(2)
	attemptsMock.EXPECT().Reset(ctx, "alice").Return(nil).Times(1)

	token, err := svc.Login(ctx, "alice", testPassword)
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	authenticated, err := svc.Authenticate(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)
}

func TestLogin_TokenClaims(t *testing.T) {
	svc, usersMock, attemptsMock := newTestAuthService(t)
	ctx := context.Background()
	user := newStoredUser(t, models.RoleMedic)
	issuedAt := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	attemptsMock.EXPECT().Count(ctx, "alice").Return(0, nil)
	usersMock.EXPECT().GetByUsername(ctx, "alice").Return(user, nil)
	attemptsMock.EXPECT().Reset(ctx, "alice").Return(nil)

	token, err := svc.Login(ctx, "alice", testPassword)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(svc.now))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, models.RoleMedic, claims.Role)
	assert.Equal(t, issuedAt.Add(30*time.Minute), claims.ExpiresAt.Time.UTC())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, usersMock, attemptsMock := newTestAuthService(t)
	ctx := context.Background()

	attemptsMock.EXPECT().Count(ctx, "alice").Return(1, nil)
	usersMock.EXPECT().GetByUsername(ctx, "alice").Return(newStoredUser(t, models.RoleMedic), nil)
	attemptsMock.EXPECT().Increment(ctx, "alice", 15*time.Minute).Return(2, nil).Times(1)

	token, err := svc.Login(ctx, "alice", "wrong")
	assert.Nil(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, usersMock, attemptsMock := newTestAuthService(t)
	ctx := context.Background()

	attemptsMock.EXPECT().Count(ctx, "ghost").Return(0, nil)
	usersMock.EXPECT().GetByUsername(ctx, "ghost").Return(nil, ErrNotFound)
	attemptsMock.EXPECT().Increment(ctx, "ghost", gomock.Any()).Return(1, nil)

	_, err := svc.Login(ctx, "ghost", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledUser(t *testing.T) {
	svc, usersMock, attemptsMock := newTestAuthService(t)
	ctx := context.Background()
	user := newStoredUser(t, models.RoleDispatcher)
	user.Disabled = true

	attemptsMock.EXPECT().Count(ctx, "alice").Return(0, nil)
	usersMock.EXPECT().GetByUsername(ctx, "alice").Return(user, nil)
	attemptsMock.EXPECT().Increment(ctx, "alice", gomock.Any()).Return(1, nil)

	_, err := svc.Login(ctx, "alice", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_LockedOut(t *testing.T) {
	svc, usersMock, attemptsMock := newTestAuthService(t)
	ctx := context.Background()

	attemptsMock.EXPECT().Count(ctx, "alice").Return(5, nil)
	usersMock.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Login(ctx, "alice", testPassword)
	assert.ErrorIs(t, err, ErrTooManyLoginAttempts)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_AttemptStoreUnavailable(t *testing.T) {
	svc, _, attemptsMock := newTestAuthService(t)
	ctx := context.Background()

	attemptsMock.EXPECT().Count(ctx, "alice").Return(0, errors.New("redis down"))

	_, err := svc.Login(ctx, "alice", testPassword)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAuthenticate_Expired(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	user := newStoredUser(t, models.RoleDispatcher)

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.issueToken(user)
	require.NoError(t, err)
	svc.now = time.Now

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_WrongAlgorithm(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: models.RoleDispatcher,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), signed)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_Garbage(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_UserRemovedOrDisabled(t *testing.T) {
	svc, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	user := newStoredUser(t, models.RoleMedic)
	token, err := svc.issueToken(user)
	require.NoError(t, err)

	usersMock.EXPECT().GetByUsername(ctx, "alice").Return(nil, ErrNotFound)
	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	disabled := *user
	disabled.Disabled = true
	usersMock.EXPECT().GetByUsername(ctx, "alice").Return(&disabled, nil)
	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateUser_Success(t *testing.T) {
	svc, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()

	usersMock.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		assert.NotEqual(t, testPassword, u.HashedPassword)
		u.ID = uuid.New()
		return nil
	})

	user, err := svc.CreateUser(ctx, "bob", testPassword, "Bob", models.RoleMedic)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, models.RoleMedic, user.Role)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	svc, usersMock, _ := newTestAuthService(t)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateUser(context.Background(), "bob", testPassword, "Bob", models.Role("admin"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreateUser_ShortPassword(t *testing.T) {
	svc, usersMock, _ := newTestAuthService(t)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateUser(context.Background(), "bob", "short", "Bob", models.RoleMedic)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "at least 8 characters")
}
