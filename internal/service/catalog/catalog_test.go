package catalog

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mdanilova/boutique/internal/config"
	"github.com/mdanilova/boutique/internal/models"
	"github.com/mdanilova/boutique/internal/repo"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection, or every pooled conn gets its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}))
	require.NoError(t, config.SeedProducts(db))

	return &Service{Repo: &repo.GormRepo{DB: db}}
}

func TestListAll(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 8)
}

func TestGroupByCategory(t *testing.T) {
	svc := newTestService(t)

	grouped, err := svc.GroupByCategory(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{"dresses", "sets", "skirts", "accessories"}, grouped.Categories)
	for _, category := range grouped.Categories {
		require.NotEmpty(t, grouped.ByCategory[category])
	}
	require.Equal(t, "lace dress", grouped.ByCategory["dresses"][0].Name)
	require.Equal(t, "dress with lace collar", grouped.ByCategory["dresses"][1].Name)
}

func TestSearchEmptyQuerySkipsStore(t *testing.T) {
	// nil repo: a blank query must return before any store access
	svc := &Service{}

	products, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestSearchSubstring(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.Search(context.Background(), "skirt")
	require.NoError(t, err)
	require.NotEmpty(t, products)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	require.Contains(t, names, "flower skirt")
	require.Contains(t, names, "mini skirt with translucent lining")
	require.Contains(t, names, "top and skirt")
}

func TestSearchNoResults(t *testing.T) {
	svc := newTestService(t)

	products, err := svc.Search(context.Background(), "snowboard")
	require.NoError(t, err)
	require.Empty(t, products)
}
