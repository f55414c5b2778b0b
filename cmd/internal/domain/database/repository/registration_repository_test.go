package repository_test

import (
	"context"
	"testing"

	"brainagro/cmd/internal/domain/database/databasetest"
	"brainagro/cmd/internal/domain/database/repository"
	"brainagro/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationSaveReplacesRow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRegistrationRepository(databasetest.Open(t))

	got, err := repo.FindByCNPJ(ctx, "56777431000113")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Save(ctx, &entity.Registration{CNPJ: "56777431000113", Found: false, CheckedAt: 100}))
	require.NoError(t, repo.Save(ctx, &entity.Registration{
		CNPJ:      "56777431000113",
		LegalName: "AGRO SA",
		Status:    entity.RegistrationActive,
		Found:     true,
		CheckedAt: 200,
	}))

	got, err = repo.FindByCNPJ(ctx, "56777431000113")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Found)
	assert.True(t, got.Active())
	assert.Equal(t, "AGRO SA", got.LegalName)
	assert.Equal(t, int64(200), got.CheckedAt)
}

func TestRegistrationDeleteExpiredUsesOneCutoffPerKind(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRegistrationRepository(databasetest.Open(t))

	rows := []*entity.Registration{
		{CNPJ: "00000000000101", Found: true, CheckedAt: 10},
		{CNPJ: "00000000000102", Found: true, CheckedAt: 60},
		{CNPJ: "00000000000103", Found: false, CheckedAt: 60},
		{CNPJ: "00000000000104", Found: false, CheckedAt: 90},
	}
	for _, r := range rows {
		require.NoError(t, repo.Save(ctx, r))
	}

	removed, err := repo.DeleteExpired(ctx, 50, 80)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	for cnpj, kept := range map[string]bool{
		"00000000000101": false,
		"00000000000102": true,
		"00000000000103": false,
		"00000000000104": true,
	} {
		got, err := repo.FindByCNPJ(ctx, cnpj)
		require.NoError(t, err)
		assert.Equal(t, kept, got != nil, cnpj)
	}
}
