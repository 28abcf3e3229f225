//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"tour-booking/internal/domain/user"
	"tour-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Validate(t *testing.T) {
	svc := jwt.NewService("unit-secret")
	userID := uuid.New()

	t.Run("round trip keeps user and role", func(t *testing.T) {
		token, err := svc.Sign(userID, user.RoleSeller, time.Hour)
		require.NoError(t, err)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "seller", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.Sign(userID, user.RoleBuyer, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign secret", func(t *testing.T) {
		token, err := jwt.NewService("other").Sign(userID, user.RoleBuyer, time.Hour)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: userID, Role: "admin"}).
			SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
