package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbak/trainer-app/internal/repository/sheetrepo"
	"warbak/trainer-app/internal/sheets"
)

const testJWTSecret = "test-secret"

func newAuthService() AuthService {
	store := sheets.NewMemoryStore()
	return NewAuthService(sheetrepo.NewTrainerRepository(store), testJWTSecret, time.Hour)
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	trainer, err := svc.Register(ctx, "Coach", "coach@example.com", "s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(trainer.TrainerID, "trainer-"), "got id %q", trainer.TrainerID)
	assert.Equal(t, "coach@example.com", trainer.Email)
	assert.Empty(t, trainer.PasswordHash)

	_, err = time.Parse(time.RFC3339, trainer.CreatedAt)
	assert.NoError(t, err)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, err := svc.Register(ctx, "Coach", "coach@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "coach@example.com", "another")
	assert.ErrorIs(t, err, ErrTrainerAlreadyExists)
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	registered, err := svc.Register(ctx, "Coach", "coach@example.com", "s3cret")
	require.NoError(t, err)

	token, trainer, err := svc.Login(ctx, "coach@example.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, trainer)
	assert.Equal(t, registered.TrainerID, trainer.TrainerID)
	assert.Empty(t, trainer.PasswordHash)

	claims := &TrainerClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, registered.TrainerID, claims.TrainerID)
	assert.Equal(t, registered.TrainerID, claims.Subject)
}

func TestAuthServiceLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, err := svc.Register(ctx, "Coach", "coach@example.com", "s3cret")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "coach@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
