package config

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mdanilova/boutique/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection, or every pooled conn gets its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func TestSeedProducts(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedProducts(db))

	var products []models.Product
	require.NoError(t, db.Order("id ASC").Find(&products).Error)
	require.Len(t, products, 8)

	categories := map[string]bool{}
	for _, p := range products {
		categories[p.Category] = true
		require.NotEmpty(t, p.Name)
		require.GreaterOrEqual(t, p.Price, 0.0)
		require.True(t, strings.HasPrefix(p.Image, "data:image/svg+xml"))
	}
	require.Len(t, categories, 4)
}

func TestSeedProductsIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedProducts(db))
	require.NoError(t, SeedProducts(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.EqualValues(t, 8, count)
}
