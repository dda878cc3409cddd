package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdanilova/boutique/internal/logging"
	"github.com/mdanilova/boutique/internal/models"
	"github.com/mdanilova/boutique/internal/repo"
)

var ErrValidation = errors.New("validation")

type Service struct {
	Repo *repo.GormRepo
}

// Cart is the rendered cart: joined lines plus the grand total.
type Cart struct {
	Lines []repo.CartLine
	Total float64
}

// Add puts one unit of the product into the user's cart, merging into the
// existing line on repeat adds. The product id is not checked against the
// catalog; a dangling reference simply produces a line the join never shows.
func (s *Service) Add(ctx context.Context, userID, productID uint) error {
	if productID == 0 {
		return fmt.Errorf("product id required: %w", ErrValidation)
	}

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
	if err := s.Repo.AddToCart(ctx, &item); err != nil {
		logging.FromContext(ctx).Error("add_to_cart_error", "user_id", userID, "product_id", productID, "error", err)
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID uint) (*Cart, error) {
	lines, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart := &Cart{Lines: lines}
	for _, line := range lines {
		cart.Total += line.Price * float64(line.Quantity)
	}
	return cart, nil
}

// Remove deletes one line by cart item id, scoped to the calling user. Removing
// an id that is gone, or that belongs to someone else, is a silent no-op.
func (s *Service) Remove(ctx context.Context, userID, itemID uint) error {
	if itemID == 0 {
		return fmt.Errorf("cart item id required: %w", ErrValidation)
	}
	return s.Repo.DeleteFromCart(ctx, itemID, userID)
}
