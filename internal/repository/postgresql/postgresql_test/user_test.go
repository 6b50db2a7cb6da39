package postgresql_test

import (
	"context"
	"testing"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_RolesAndUniqueness(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := postgresql.NewUserRepository(db)
	roles := postgresql.NewRoleRepository(db)

	u, err := users.Create(ctx, user.User{Username: "ana", FirstName: "Ana", LastName: "López", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Empty(t, u.Roles)

	_, err = users.Create(ctx, user.User{Username: "ana", FirstName: "Otra", LastName: "Persona", PasswordHash: "hash"})
	assert.ErrorIs(t, err, user.ErrUsernameExists)

	found, err := roles.GetByCodes(ctx, []string{string(user.RoleSupervisor), string(user.RoleHRPayroll)})
	require.NoError(t, err)
	require.Len(t, found, 2)

	require.NoError(t, users.SyncRoles(ctx, u.ID, []int64{found[0].ID, found[1].ID}))
	got, err := users.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.ElementsMatch(t, []user.Role{user.RoleSupervisor, user.RoleHRPayroll}, got.RoleCodes())

	require.NoError(t, users.SyncRoles(ctx, u.ID, nil))
	got, err = users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Roles)

	require.NoError(t, users.Delete(ctx, u.ID))
	_, err = users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
