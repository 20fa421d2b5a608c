//go:build unit

package jwt

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", "hotel-auth", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleMerchant)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.RoleMerchant, claims.Role)

	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	svc := NewService("secret", "hotel-auth", time.Hour)

	sign := func(t *testing.T, key string, claims Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return s
	}
	valid := func() Claims {
		return Claims{
			Role: user.RoleGuest,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				Issuer:    "hotel-auth",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "malformed",
			token:   func(*testing.T) string { return "not-a-token" },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "wrong key",
			token:   func(t *testing.T) string { return sign(t, "other", valid()) },
			wantErr: ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return sign(t, "secret", c)
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				c := valid()
				c.Issuer = "someone-else"
				return sign(t, "secret", c)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unknown role",
			token: func(t *testing.T) string {
				c := valid()
				c.Role = "owner"
				return sign(t, "secret", c)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				c := valid()
				c.Subject = "alice"
				return sign(t, "secret", c)
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}
