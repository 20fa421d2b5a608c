//go:build unit

package user_test

import (
	"testing"

	"hotel-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("ロール検証", func(t *testing.T) {
		for _, s := range []string{"guest", "merchant", "admin"} {
			r, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, r.String())
		}
		_, err := user.NewRole("viewer")
		require.ErrorIs(t, err, user.ErrInvalidRole)
		_, err = user.NewRole("")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("階層", func(t *testing.T) {
		assert.True(t, user.RoleAdmin.AtLeast(user.RoleMerchant))
		assert.True(t, user.RoleMerchant.AtLeast(user.RoleMerchant))
		assert.False(t, user.RoleGuest.AtLeast(user.RoleMerchant))
		assert.False(t, user.Role("").AtLeast(user.Role("")))
	})
}
