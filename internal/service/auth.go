package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mgiraldoc/traffic_points_api/internal/config"
	"github.com/mgiraldoc/traffic_points_api/internal/models"
)

// ErrInvalidCredentials is returned on a failed login. It deliberately does
// not distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService registers users and issues bearer tokens.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users  UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(users UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		logger: logger,
		cfg:    cfg,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Register",
		"username": input.Username,
	})

	existing, err := s.users.GetUserByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to look up username")
		return nil, storageFailure("lookup user", err)
	}
	if existing != nil {
		log.Warn("Registration rejected: username already taken")
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, storageFailure("hash password", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, storageFailure("create user", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login verifies the password and returns a signed HS256 token.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login rejected: unknown username")
			return "", ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to look up username")
		return "", storageFailure("lookup user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login rejected: wrong password")
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		return "", storageFailure("sign token", err)
	}

	log.Info("Login successful")
	return token, nil
}
