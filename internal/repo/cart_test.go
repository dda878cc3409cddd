package repo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mdanilova/boutique/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	// TranslateError matches InitDB so duplicate inserts surface as
	// gorm.ErrDuplicatedKey here like they do in production
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// one connection, or every pooled conn gets its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))
	return &GormRepo{DB: db}
}

func TestDuplicatePairInsertHitsUniqueIndex(t *testing.T) {
	r := newTestRepo(t)

	require.NoError(t, r.DB.Create(&models.CartItem{UserID: 1, ProductID: 2, Quantity: 1}).Error)

	// a second raw insert for the same pair is exactly what the losing side
	// of the add race attempts; AddToCart retries the merge on this error
	err := r.DB.Create(&models.CartItem{UserID: 1, ProductID: 2, Quantity: 1}).Error
	require.Error(t, err)
	require.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestAddToCartMergesIntoExistingRow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := models.CartItem{UserID: 1, ProductID: 2, Quantity: 1}
	require.NoError(t, r.AddToCart(ctx, &first))

	second := models.CartItem{UserID: 1, ProductID: 2, Quantity: 1}
	require.NoError(t, r.AddToCart(ctx, &second))
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, uint(2), second.Quantity)

	var items []models.CartItem
	require.NoError(t, r.DB.Find(&items).Error)
	require.Len(t, items, 1)
}

func TestConcurrentAddsLeaveOneRow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := models.CartItem{UserID: 1, ProductID: 2, Quantity: 1}
			errs[i] = r.AddToCart(ctx, &item)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var items []models.CartItem
	require.NoError(t, r.DB.Where("user_id = ? AND product_id = ?", 1, 2).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, uint(2), items[0].Quantity)
}
