//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"tour-booking/internal/domain/user"
	"tour-booking/internal/pkg/jwt"
	"tour-booking/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret")
	validator := usecase.NewTokenValidator(svc)
	id := uuid.New()

	t.Run("resolves each role to its principal", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleBuyer, user.RoleSeller, user.RoleAdmin} {
			token, err := svc.Sign(id, role, time.Hour)
			require.NoError(t, err)

			actor, err := validator.ValidateToken(token)

			require.NoError(t, err)
			assert.Equal(t, id, actor.ID())
			assert.Equal(t, role, actor.Role())
		}
	})

	t.Run("unknown role claim is rejected", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			UserID: id,
			Role:   "superuser",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := svc.Sign(id, user.RoleBuyer, -time.Minute)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
