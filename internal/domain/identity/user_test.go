package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T) *User {
	user, err := NewUser("alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	return user
}

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid input", func(t *testing.T) {
		user := createTestUser(t)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.Empty(t, user.Roles)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	})

	t.Run("lowercases username", func(t *testing.T) {
		user, err := NewUser("Bob.Smith", "", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, "bob.smith", user.Username)
	})

	t.Run("allows empty email", func(t *testing.T) {
		user, err := NewUser("carol", "", "s3cretpass")
		require.NoError(t, err)
		assert.Empty(t, user.Email)
	})

	t.Run("rejects short username", func(t *testing.T) {
		_, err := NewUser("ab", "", "s3cretpass")
		assert.Error(t, err)
	})

	t.Run("rejects username with invalid characters", func(t *testing.T) {
		_, err := NewUser("alice smith", "", "s3cretpass")
		assert.Error(t, err)
	})

	t.Run("rejects username over 150 characters", func(t *testing.T) {
		_, err := NewUser(strings.Repeat("a", 151), "", "s3cretpass")
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("alice", "", "short")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("alice", "not-an-email", "s3cretpass")
		assert.Error(t, err)
	})
}

func TestUser_CheckPassword(t *testing.T) {
	user := createTestUser(t)

	assert.True(t, user.CheckPassword("s3cretpass"))
	assert.False(t, user.CheckPassword("wrongpass"))
}

func TestUser_Roles(t *testing.T) {
	t.Run("grants role", func(t *testing.T) {
		user := createTestUser(t)

		err := user.GrantRole(RoleManager)
		require.NoError(t, err)

		assert.True(t, user.IsManager())
		assert.False(t, user.IsDeliveryCrew())
	})

	t.Run("granting held role is a no-op", func(t *testing.T) {
		user := createTestUser(t)

		require.NoError(t, user.GrantRole(RoleDeliveryCrew))
		require.NoError(t, user.GrantRole(RoleDeliveryCrew))

		assert.Len(t, user.Roles, 1)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		user := createTestUser(t)

		err := user.GrantRole(StaffRole("admin"))
		assert.Error(t, err)
	})

	t.Run("revokes role", func(t *testing.T) {
		user := createTestUser(t)
		require.NoError(t, user.GrantRole(RoleManager))
		require.NoError(t, user.GrantRole(RoleDeliveryCrew))

		user.RevokeRole(RoleManager)

		assert.False(t, user.IsManager())
		assert.True(t, user.IsDeliveryCrew())
	})

	t.Run("revoking unheld role is a no-op", func(t *testing.T) {
		user := createTestUser(t)

		user.RevokeRole(RoleManager)

		assert.Empty(t, user.Roles)
	})
}

func TestUser_Deactivate(t *testing.T) {
	t.Run("deactivates active user", func(t *testing.T) {
		user := createTestUser(t)

		err := user.Deactivate()
		require.NoError(t, err)

		assert.False(t, user.IsActive())
	})

	t.Run("rejects double deactivation", func(t *testing.T) {
		user := createTestUser(t)
		require.NoError(t, user.Deactivate())

		err := user.Deactivate()
		assert.Error(t, err)
	})
}

func TestParseStaffRole(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		role, err := ParseStaffRole("manager")
		require.NoError(t, err)
		assert.Equal(t, RoleManager, role)

		role, err = ParseStaffRole(" Delivery_Crew ")
		require.NoError(t, err)
		assert.Equal(t, RoleDeliveryCrew, role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := ParseStaffRole("admin")
		assert.Error(t, err)
	})
}
