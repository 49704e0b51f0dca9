package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mgiraldoc/traffic_points_api/internal/config"
	"github.com/mgiraldoc/traffic_points_api/internal/models"
	"github.com/mgiraldoc/traffic_points_api/internal/service/mocks"
)

func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}

	svc := NewAuthService(usersMock, logger, cfg)
	return svc.(*authService), usersMock
}

func TestRegister_Success(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()

	usersMock.EXPECT().GetUserByUsername(ctx, "maria").Return(nil, ErrNotFound).Times(1)
	usersMock.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			// The stored credential must be a hash, never the password.
			assert.NotEqual(t, "secret123", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
			u.ID = uuid.New()
			return nil
		}).
		Times(1)

	user, err := svc.Register(ctx, RegisterInput{
		Username: "maria",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "maria", user.Username)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()

	usersMock.EXPECT().
		GetUserByUsername(ctx, "maria").
		Return(&models.User{Username: "maria"}, nil).
		Times(1)
	usersMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Register(ctx, RegisterInput{Username: "maria", Password: "secret123"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_Success(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	usersMock.EXPECT().
		GetUserByUsername(ctx, "maria").
		Return(&models.User{ID: userID, Username: "maria", PasswordHash: string(hash)}, nil).
		Times(1)

	token, err := svc.Login(ctx, "maria", "secret123")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token must carry the user id and verify against the secret.
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	usersMock.EXPECT().
		GetUserByUsername(ctx, "maria").
		Return(&models.User{Username: "maria", PasswordHash: string(hash)}, nil).
		Times(1)

	_, err = svc.Login(ctx, "maria", "not-the-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc, usersMock := newTestAuthService(t)
	ctx := context.Background()

	usersMock.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, ErrNotFound).Times(1)

	_, err := svc.Login(ctx, "ghost", "whatever")

	// Unknown usernames and wrong passwords are indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
