package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"warbak/trainer-app/internal/domain"
	"warbak/trainer-app/internal/repository"
)

var (
	ErrTrainerAlreadyExists = errors.New("trainer with this email already exists")
	// ErrAuthenticationFailed covers both unknown email and wrong password,
	// so a caller cannot probe which emails are registered.
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService handles trainer registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Trainer, error)
	Login(ctx context.Context, email, password string) (token string, trainer *domain.Trainer, err error)
	JWTSecret() string
}

type authService struct {
	trainerRepo   repository.TrainerRepository
	jwtSecret     string
	jwtExpiration time.Duration
	now           func() time.Time
}

// NewAuthService creates an auth service. The JWT secret must be set; the
// expiration falls back to one hour when unset.
func NewAuthService(trainerRepo repository.TrainerRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		trainerRepo:   trainerRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		now:           time.Now,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.Trainer, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password cannot be empty")
	}

	_, err := s.trainerRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrTrainerAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	trainer := &domain.Trainer{
		TrainerID:    fmt.Sprintf("trainer-%s", uuid.NewString()),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}
	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		return nil, err
	}

	trainer.PasswordHash = ""
	return trainer, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Trainer, error) {
	if email == "" || password == "" {
		return "", nil, ErrAuthenticationFailed
	}

	trainer, err := s.trainerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(trainer)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	trainer.PasswordHash = ""
	return token, trainer, nil
}

func (s *authService) JWTSecret() string {
	return s.jwtSecret
}

// TrainerClaims is the JWT payload issued at login and verified by the
// middleware.
type TrainerClaims struct {
	TrainerID string `json:"tid"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(trainer *domain.Trainer) (string, error) {
	now := s.now()
	claims := &TrainerClaims{
		TrainerID: trainer.TrainerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   trainer.TrainerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "trainer-app",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
