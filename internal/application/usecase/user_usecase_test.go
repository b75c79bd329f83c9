package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allegrotrade/marketplace-api/internal/application/dto"
	"github.com/allegrotrade/marketplace-api/internal/application/usecase"
	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/infrastructure/memory"
)

func TestUserUC_GetByID_NuncaExponePassword(t *testing.T) {
	repo := memory.NewUserRepository()
	uc := usecase.NewUserUseCase(repo)
	require.NoError(t, repo.Create(&entity.User{
		ID:       "u1",
		Username: "acme-buyer",
		Password: "secreto1",
		Email:    "buyer@acme.test",
		Role:     entity.RoleBuyer,
	}))

	out, err := uc.GetByID("u1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "acme-buyer", out.Username)
	// El DTO de salida no tiene campo password: nada que filtrar.
}

func TestUserUC_GetByID_Inexistente_DevuelveNilNil(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())
	out, err := uc.GetByID("fantasma")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUserUC_Update_ParcialDejaElRestoIntacto(t *testing.T) {
	repo := memory.NewUserRepository()
	uc := usecase.NewUserUseCase(repo)
	require.NoError(t, repo.Create(&entity.User{
		ID:       "u1",
		Username: "acme-buyer",
		Password: "secreto1",
		Email:    "buyer@acme.test",
		Role:     entity.RoleBuyer,
	}))

	companyID := "c1"
	out, err := uc.Update("u1", dto.UpdateUserRequest{CompanyID: &companyID})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "c1", out.CompanyID)
	assert.Equal(t, "acme-buyer", out.Username)

	stored, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "secreto1", stored.Password, "el password no enviado queda intacto")
}
