package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mdanilova/boutique/internal/models"
)

// CartLine is one cart row joined with its product, ready for display. The
// cart item id travels along because removal addresses lines by it.
type CartLine struct {
	CartItemID  uint    `json:"cid"`
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Quantity    uint    `json:"quantity"`
}

// AddToCart merges repeat adds into the existing row. Update and insert run in
// one transaction so concurrent adds for the same (user, product) pair cannot
// leave two rows; the unique index on the pair is the backstop. When two adds
// both miss the update and the loser's insert hits the index, the merge is
// retried once against the row that now exists.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	err := r.mergeOrInsert(ctx, item)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.mergeOrInsert(ctx, item)
	}
	return err
}

func (r *GormRepo) mergeOrInsert(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(item).Error
		}

		return tx.Create(item).Error
	})
}

func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]CartLine, error) {
	var lines []CartLine
	err := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Select("cart_items.id AS cart_item_id, products.id AS product_id, products.name, products.category, products.price, products.description, products.image, cart_items.quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// DeleteFromCart removes one line by its id, scoped to the owning user. A
// missing id, or someone else's line, deletes nothing and is not an error.
func (r *GormRepo) DeleteFromCart(ctx context.Context, itemID, userID uint) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{}).Error
}
