package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/infrastructure/memory"
)

func newCompany(id, name string, verified int) *entity.Company {
	return &entity.Company{
		ID:          id,
		Name:        name,
		Verified:    verified,
		Rating:      decimal.RequireFromString("4.50"),
		MemberSince: time.Now(),
	}
}

func TestCompanyRepo_CreateYGet(t *testing.T) {
	repo := memory.NewCompanyRepository()
	c := newCompany("c1", "Acme Components", entity.CompanyVerified)
	require.NoError(t, repo.Create(c))

	got, err := repo.GetByID("c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *c, *got)
}

func TestCompanyRepo_GetInexistente_DevuelveNilNil(t *testing.T) {
	repo := memory.NewCompanyRepository()
	got, err := repo.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompanyRepo_ListVerified_FiltraPorFlag(t *testing.T) {
	repo := memory.NewCompanyRepository()
	require.NoError(t, repo.Create(newCompany("c1", "Verificada", entity.CompanyVerified)))
	require.NoError(t, repo.Create(newCompany("c2", "Pendiente", entity.CompanyUnverified)))
	require.NoError(t, repo.Create(newCompany("c3", "Otra verificada", entity.CompanyVerified)))

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	verified, err := repo.ListVerified()
	require.NoError(t, err)
	ids := make([]string, 0, len(verified))
	for _, c := range verified {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"c1", "c3"}, ids)
}

func TestCompanyRepo_Delete(t *testing.T) {
	repo := memory.NewCompanyRepository()
	require.NoError(t, repo.Create(newCompany("c1", "Acme", 0)))

	removed, err := repo.Delete("c1")
	require.NoError(t, err)
	assert.True(t, removed)

	got, err := repo.GetByID("c1")
	require.NoError(t, err)
	assert.Nil(t, got)

	removed, err = repo.Delete("c1")
	require.NoError(t, err)
	assert.False(t, removed, "borrar un id ausente reporta false, no error")
}

func TestCompanyRepo_Update_MergeLoHaceElCasoDeUso(t *testing.T) {
	repo := memory.NewCompanyRepository()
	c := newCompany("c1", "Acme", 0)
	require.NoError(t, repo.Create(c))

	c.Name = "Acme Components"
	c.Verified = entity.CompanyVerified
	require.NoError(t, repo.Update(c))

	got, err := repo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Components", got.Name)
	assert.Equal(t, entity.CompanyVerified, got.Verified)
}
