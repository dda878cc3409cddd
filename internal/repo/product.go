package repo

import (
	"context"

	"github.com/mdanilova/boutique/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts matches the product name against %query% with the store's
// default LIKE case folding.
func (r *GormRepo) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
