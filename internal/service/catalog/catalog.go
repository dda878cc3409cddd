package catalog

import (
	"context"
	"strings"

	"github.com/mdanilova/boutique/internal/models"
	"github.com/mdanilova/boutique/internal/repo"
)

type Service struct {
	Repo *repo.GormRepo
}

// Grouped is the catalog page shape: products bucketed by category, with the
// category order and the in-category product order both following first
// appearance in the product listing.
type Grouped struct {
	Categories []string
	ByCategory map[string][]models.Product
}

func (s *Service) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *Service) GroupByCategory(ctx context.Context) (*Grouped, error) {
	products, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	grouped := &Grouped{ByCategory: make(map[string][]models.Product)}
	for _, p := range products {
		if _, seen := grouped.ByCategory[p.Category]; !seen {
			grouped.Categories = append(grouped.Categories, p.Category)
		}
		grouped.ByCategory[p.Category] = append(grouped.ByCategory[p.Category], p)
	}
	return grouped, nil
}

// Search runs a substring match on product names. A blank query returns no
// results without touching the store.
func (s *Service) Search(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Product{}, nil
	}
	return s.Repo.SearchProducts(ctx, query)
}
