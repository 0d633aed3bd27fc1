package memory

import (
	"context"

	"github.com/snackhub/catalog-api/internal/domain"
)

// SeedCategories loads the default menu categories. Used when the
// service runs without a database; the category surface is read-only,
// so without a seed there would be nothing to attach products to.
func SeedCategories(ctx context.Context, repo *CategoryRepository) error {
	defaults := []struct {
		name        string
		description string
	}{
		{"Lanches", "Sanduiches e hamburgueres"},
		{"Acompanhamentos", "Porcoes e acompanhamentos"},
		{"Bebidas", "Bebidas geladas e quentes"},
		{"Sobremesas", "Doces e sobremesas"},
	}

	for _, d := range defaults {
		if err := repo.Create(ctx, domain.NewCategory(d.name, d.description)); err != nil {
			return err
		}
	}
	return nil
}
