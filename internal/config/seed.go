package config

import (
	"fmt"
	"net/url"

	"gorm.io/gorm"

	"github.com/mdanilova/boutique/internal/models"
)

// svgImage builds a self-contained data-URI placeholder so the catalog needs no
// image files on disk.
func svgImage(label, color string) string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="200">
  <rect width="100%%" height="100%%" fill="#%s"/>
  <text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-size="20" fill="#000">%s</text>
</svg>`, color, label)
	return "data:image/svg+xml;utf8," + url.PathEscape(svg)
}

func seedCatalog() []models.Product {
	return []models.Product{
		{Name: "lace dress", Category: "dresses", Price: 410.00, Description: "a silk dress with lace frills", Image: svgImage("dress", "ffd1dc")},
		{Name: "dress with lace collar", Category: "dresses", Price: 310.00, Description: "a cream-colored dress with a long hem", Image: svgImage("dress", "ffd1dc")},
		{Name: "trousers and shirt with ribbons", Category: "sets", Price: 210.00, Description: "summer set made of light fabric", Image: svgImage("set", "cfe8ff")},
		{Name: "top and skirt", Category: "sets", Price: 310.00, Description: "corset top and pleated skirt", Image: svgImage("set", "cfe8ff")},
		{Name: "mini skirt with translucent lining", Category: "skirts", Price: 150.00, Description: "beige skirt with an accent flower", Image: svgImage("skirt", "d6f5d6")},
		{Name: "flower skirt", Category: "skirts", Price: 210.00, Description: "skirt with sewn flowers", Image: svgImage("skirt", "d6f5d6")},
		{Name: "shell pendant", Category: "accessories", Price: 30.00, Description: "mother-of-pearl shell on a chain", Image: svgImage("accessories", "fff2b2")},
		{Name: "hair clips", Category: "accessories", Price: 50.00, Description: "hair decoration with crystal drops and pearls", Image: svgImage("accessories", "fff2b2")},
	}
}

// SeedProducts fills the catalog on first startup. It is skipped entirely when
// any products already exist, so restarting the process never duplicates rows.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := seedCatalog()
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	return nil
}
