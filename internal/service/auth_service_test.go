package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusai-be/internal/apperror"
	"campusai-be/internal/dto"
	"campusai-be/internal/pkg/logger"
	"campusai-be/internal/repository/memory"
	"campusai-be/internal/repository/unitofwork"
)

const testJwtSecret = "test-secret"

func newTestAuthService() IAuthService {
	factory := unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
	return NewAuthService(factory, testJwtSecret, logger.NewNopLogger())
}

func TestRegisterIssuesValidToken(t *testing.T) {
	svc := newTestAuthService()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "student1",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "student1", result.Username)
	assert.NotZero(t, result.UserId)

	token, err := jwt.Parse(result.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(result.UserId), claims["user_id"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	req := &dto.RegisterRequest{Username: "student1", Password: "correct-horse-battery"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "student1",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		result, err := svc.Login(ctx, &dto.LoginRequest{
			Username: "student1",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{
			Username: "student1",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{
			Username: "nobody",
			Password: "whatever",
		})
		require.Error(t, err)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})
}
