package members

import (
	"context"
	"testing"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMembersTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db}, db
}

var (
	admin  = domain.Actor{UserID: "admin-1", Email: "admin@example.com", Role: "admin"}
	alice  = domain.Actor{UserID: "user-a", Email: "a@example.com", Role: "member"}
	bob    = domain.Actor{UserID: "user-b", Email: "b@example.com", Role: "public"}
	create = CreateInput{Designation: "Volunteer", DesignationFee: 500}
)

func TestCreate_SequentialNumbers(t *testing.T) {
	svc, _ := setupMembersTest(t)
	ctx := context.Background()
	want := []string{"SM000001", "SM000002", "SM000003"}
	for _, w := range want {
		res, err := svc.Create(ctx, create, alice)
		require.NoError(t, err)
		assert.Equal(t, w, res.MemberNumber)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := setupMembersTest(t)
	_, err := svc.Create(context.Background(), CreateInput{}, alice)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_ScopedByUser(t *testing.T) {
	svc, _ := setupMembersTest(t)
	ctx := context.Background()
	_, _ = svc.Create(ctx, create, alice)
	_, _ = svc.Create(ctx, create, alice)
	_, _ = svc.Create(ctx, create, bob)

	all, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, m := range mine {
		assert.Equal(t, alice.UserID, m.UserID)
		assert.Equal(t, domain.MemberPending, m.Status)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, db := setupMembersTest(t)
	ctx := context.Background()
	res, err := svc.Create(ctx, create, alice)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, res.ID, StatusInput{Status: domain.MemberApproved}))
	var m domain.Member
	require.NoError(t, db.First(&m, "id = ?", res.ID).Error)
	assert.Equal(t, domain.MemberApproved, m.Status)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, res.ID, StatusInput{Status: domain.MemberPending}), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, res.ID, StatusInput{Status: "weird"}), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000009", StatusInput{Status: domain.MemberBlocked}), ErrMemberNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := setupMembersTest(t)
	ctx := context.Background()
	res, err := svc.Create(ctx, create, alice)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "00000000-0000-0000-0000-000000000009"), ErrMemberNotFound)
	require.NoError(t, svc.Delete(ctx, res.ID))
	assert.ErrorIs(t, svc.Delete(ctx, res.ID), ErrMemberNotFound)

	all, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, all)
}
