package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/infrastructure/memory"
)

func newUser(id, username, email string) *entity.User {
	return &entity.User{
		ID:        id,
		Username:  username,
		Password:  "secreto1",
		Email:     email,
		Role:      entity.RoleBuyer,
		CreatedAt: time.Now(),
	}
}

func TestUserRepo_CreateYGet(t *testing.T) {
	repo := memory.NewUserRepository()
	u := newUser("u1", "acme-buyer", "buyer@acme.test")
	require.NoError(t, repo.Create(u))

	got, err := repo.GetByID("u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *u, *got, "el usuario leído debe ser igual al creado, password incluido")
}

func TestUserRepo_GetByUsernameYEmail(t *testing.T) {
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(newUser("u1", "acme-buyer", "buyer@acme.test")))
	require.NoError(t, repo.Create(newUser("u2", "globex-seller", "sales@globex.test")))

	byName, err := repo.GetByUsername("globex-seller")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, "u2", byName.ID)

	byEmail, err := repo.GetByEmail("buyer@acme.test")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "u1", byEmail.ID)

	missing, err := repo.GetByUsername("nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// El store NO impone unicidad: esa regla vive en el caso de uso de registro.
func TestUserRepo_NoImponeUnicidad(t *testing.T) {
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(newUser("u1", "dup", "dup@test")))
	require.NoError(t, repo.Create(newUser("u2", "dup", "dup@test")))

	u1, err := repo.GetByID("u1")
	require.NoError(t, err)
	u2, err := repo.GetByID("u2")
	require.NoError(t, err)
	assert.NotNil(t, u1)
	assert.NotNil(t, u2)
}

func TestUserRepo_Update(t *testing.T) {
	repo := memory.NewUserRepository()
	u := newUser("u1", "acme-buyer", "buyer@acme.test")
	require.NoError(t, repo.Create(u))

	u.CompanyID = "c1"
	require.NoError(t, repo.Update(u))

	got, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CompanyID)
}
