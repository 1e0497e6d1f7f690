package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestNextValue_Sequential(t *testing.T) {
	db := setupDB(t)
	for want := int64(1); want <= 3; want++ {
		var got int64
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			got, err = NextValue(tx, "member_number")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNextValue_IndependentCounters(t *testing.T) {
	db := setupDB(t)
	a, err := NextValue(db, "a")
	require.NoError(t, err)
	b, err := NextValue(db, "b")
	require.NoError(t, err)
	a2, err := NextValue(db, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(1), b)
	assert.Equal(t, int64(2), a2)
}
