package beneficiaries

import (
	"context"
	"encoding/json"
	"testing"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBeneficiaries(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db}
}

func TestCRUD(t *testing.T) {
	svc := setupBeneficiaries(t)
	ctx := context.Background()
	age := 62
	id, err := svc.Create(ctx, CreateInput{
		Name:        "Lakshmi",
		Age:         &age,
		Address:     "Ward 4, Nashik",
		Category:    "elderly",
		HelpHistory: json.RawMessage(`[{"date":"2025-01-10","type":"ration kit"}]`),
	})
	require.NoError(t, err)

	b, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Lakshmi", b.Name)
	assert.JSONEq(t, `[{"date":"2025-01-10","type":"ration kit"}]`, string(b.HelpHistory))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrBeneficiaryNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrBeneficiaryNotFound)
}

func TestCreate_DefaultsAndValidation(t *testing.T) {
	svc := setupBeneficiaries(t)
	ctx := context.Background()
	id, err := svc.Create(ctx, CreateInput{Name: "R", Address: "A", Category: "child"})
	require.NoError(t, err)
	b, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b.HelpHistory))

	_, err = svc.Create(ctx, CreateInput{Name: "R", Address: "A", Category: "child", HelpHistory: json.RawMessage(`{"not":"a list"}`)})
	assert.ErrorIs(t, err, ErrInvalidHelpHistory)

	_, err = svc.Create(ctx, CreateInput{Name: "R"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
