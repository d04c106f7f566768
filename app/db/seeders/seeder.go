package seeders

import (
	"fmt"
	"log"
	"time"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedSubcategory struct {
	CategorySlug string
	Name         string
	Slug         string
	Description  string
	DisplayOrder int
}

type seedProduct struct {
	Name           string
	Slug           string
	CategorySlug   string
	SubcatSlug     string
	Description    string
	Images         []string
	Specifications models.SpecMap
	Tags           models.TagList
	DisplayOrder   int
	Featured       bool
}

var seedCategories = []models.Category{
	{Name: "Luxury Zipper", Slug: "luxury-zipper", Description: "Premium zippers for designer apparel and luxury goods.", DisplayOrder: 1, Featured: true},
	{Name: "Metal Zipper", Slug: "metal-zipper", Description: "Durable metal zippers for jackets, bags and leather goods.", DisplayOrder: 2, Featured: true},
	{Name: "Nylon Coil", Slug: "nylon-coil", Description: "Lightweight nylon coil zippers for everyday garments.", DisplayOrder: 3, Featured: true},
	{Name: "Plastic Molded", Slug: "plastic-molded", Description: "Economical molded plastic zippers for sportswear and casual clothing.", DisplayOrder: 4, Featured: true},
	{Name: "Invisible Zipper", Slug: "invisible-zipper", Description: "Concealed zippers for a seamless finish on dresses and skirts.", DisplayOrder: 5, Featured: true},
	{Name: "Special Zipper", Slug: "special-zipper", Description: "Waterproof, fire resistant and other special purpose zippers.", DisplayOrder: 6, Featured: true},
}

var seedSubcategories = []seedSubcategory{
	{CategorySlug: "metal-zipper", Name: "Brass", Slug: "brass", Description: "Solid and antique brass zippers.", DisplayOrder: 1},
	{CategorySlug: "metal-zipper", Name: "Zinc Alloy", Slug: "zinc-alloy", Description: "Modern finishes on zinc alloy teeth.", DisplayOrder: 2},
	{CategorySlug: "nylon-coil", Name: "Standard Coil", Slug: "standard-coil", Description: "Everyday nylon coil zippers.", DisplayOrder: 1},
	{CategorySlug: "special-zipper", Name: "Waterproof", Slug: "waterproof", Description: "Sealed zippers for outdoor and marine use.", DisplayOrder: 1},
}

var seedProducts = []seedProduct{
	{
		Name:         "Gold Premium Zipper 10\"",
		Slug:         "gold-premium-zipper-10",
		CategorySlug: "luxury-zipper",
		Description:  "Elegant gold-plated zipper perfect for luxury handbags and designer apparel.",
		Images: []string{
			"https://images.unsplash.com/photo-1558171813-4c088753af8f?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1556905055-8f358a7a47b2?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "10 inch", "color": "Gold", "material": "Brass with gold plating", "weight": "20g", "finish": "High polish"},
		Tags:           models.TagList{"luxury", "gold", "premium"},
		DisplayOrder:   1,
		Featured:       true,
	},
	{
		Name:         "Silver Diamond Zipper 12\"",
		Slug:         "silver-diamond-zipper-12",
		CategorySlug: "luxury-zipper",
		Description:  "Crystal-studded silver zipper for haute couture and bridal wear.",
		Images: []string{
			"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "12 inch", "color": "Silver", "material": "Sterling silver alloy", "weight": "25g", "finish": "Crystal embellished"},
		Tags:           models.TagList{"luxury", "silver", "bridal"},
		DisplayOrder:   2,
		Featured:       true,
	},
	{
		Name:         "Heavy Duty Metal Zipper 8\"",
		Slug:         "heavy-duty-metal-8",
		CategorySlug: "metal-zipper",
		SubcatSlug:   "brass",
		Description:  "Industrial-strength metal zipper for leather jackets and bags.",
		Images: []string{
			"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1578681994506-b8f463449011?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "8 inch", "color": "Antique Brass", "material": "Brass", "weight": "30g", "finish": "Antique"},
		Tags:           models.TagList{"metal", "heavy-duty", "brass"},
		DisplayOrder:   1,
	},
	{
		Name:         "Gunmetal Zipper 14\"",
		Slug:         "gunmetal-zipper-14",
		CategorySlug: "metal-zipper",
		SubcatSlug:   "zinc-alloy",
		Description:  "Modern gunmetal finish zipper for contemporary fashion.",
		Images: []string{
			"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "14 inch", "color": "Gunmetal", "material": "Zinc alloy", "weight": "28g", "finish": "Matte"},
		Tags:           models.TagList{"metal", "gunmetal", "modern"},
		DisplayOrder:   2,
		Featured:       true,
	},
	{
		Name:         "Nylon Coil Zipper 6\"",
		Slug:         "nylon-coil-6",
		CategorySlug: "nylon-coil",
		SubcatSlug:   "standard-coil",
		Description:  "Smooth-operating nylon zipper for everyday garments.",
		Images: []string{
			"https://images.unsplash.com/photo-1556905055-8f358a7a47b2?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "6 inch", "color": "Black", "material": "Nylon", "weight": "5g", "finish": "Standard"},
		Tags:           models.TagList{"nylon", "lightweight", "everyday"},
		DisplayOrder:   1,
	},
	{
		Name:         "Colored Nylon Zipper 10\"",
		Slug:         "colored-nylon-10",
		CategorySlug: "nylon-coil",
		Description:  "Available in 50+ colors to match any fabric.",
		Images: []string{
			"https://images.unsplash.com/photo-1558171813-4c088753af8f?q=80&w=600&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "10 inch", "color": "Multiple colors available", "material": "Nylon", "weight": "8g", "finish": "Standard"},
		Tags:           models.TagList{"nylon", "colorful", "fashion"},
		DisplayOrder:   2,
		Featured:       true,
	},
	{
		Name:         "Plastic Molded Zipper 5\"",
		Slug:         "plastic-molded-5",
		CategorySlug: "plastic-molded",
		Description:  "Economical plastic zipper for sportswear and casual clothing.",
		Images: []string{
			"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "5 inch", "color": "Black", "material": "Plastic (POM)", "weight": "4g", "finish": "Standard"},
		Tags:           models.TagList{"plastic", "economical", "sportswear"},
		DisplayOrder:   1,
	},
	{
		Name:         "Two-Way Plastic Zipper 20\"",
		Slug:         "two-way-plastic-20",
		CategorySlug: "plastic-molded",
		Description:  "Two-way separating zipper for jackets and outerwear.",
		Images: []string{
			"https://images.unsplash.com/photo-1578681994506-b8f463449011?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "20 inch", "color": "Navy Blue", "material": "Plastic (POM)", "weight": "15g", "finish": "Standard"},
		Tags:           models.TagList{"plastic", "two-way", "jacket"},
		DisplayOrder:   2,
		Featured:       true,
	},
	{
		Name:         "Invisible Zipper 7\"",
		Slug:         "invisible-zipper-7",
		CategorySlug: "invisible-zipper",
		Description:  "Concealed zipper for a seamless finish on dresses and skirts.",
		Images: []string{
			"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "7 inch", "color": "White", "material": "Nylon", "weight": "3g", "finish": "Concealed"},
		Tags:           models.TagList{"invisible", "dress", "seamless"},
		DisplayOrder:   1,
		Featured:       true,
	},
	{
		Name:         "Invisible Zipper 22\"",
		Slug:         "invisible-zipper-22",
		CategorySlug: "invisible-zipper",
		Description:  "Long invisible zipper for gowns and formal wear.",
		Images: []string{
			"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "22 inch", "color": "Ivory", "material": "Nylon", "weight": "6g", "finish": "Concealed"},
		Tags:           models.TagList{"invisible", "gown", "bridal"},
		DisplayOrder:   2,
	},
	{
		Name:         "Waterproof Zipper 12\"",
		Slug:         "waterproof-zipper-12",
		CategorySlug: "special-zipper",
		SubcatSlug:   "waterproof",
		Description:  "Fully waterproof zipper for outdoor gear and marine applications.",
		Images: []string{
			"https://images.unsplash.com/photo-1578681994506-b8f463449011?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "12 inch", "color": "Black", "material": "Polyurethane coated", "weight": "20g", "finish": "Waterproof seal"},
		Tags:           models.TagList{"waterproof", "outdoor", "marine"},
		DisplayOrder:   1,
		Featured:       true,
	},
	{
		Name:         "Fire Resistant Zipper 10\"",
		Slug:         "fire-resistant-zipper-10",
		CategorySlug: "special-zipper",
		Description:  "Fire-resistant zipper for safety gear and industrial uniforms.",
		Images: []string{
			"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?q=80&w=600&auto=format&fit=crop",
		},
		Specifications: models.SpecMap{"size": "10 inch", "color": "Orange", "material": "Aramid fiber", "weight": "18g", "finish": "Fire resistant"},
		Tags:           models.TagList{"fire-resistant", "safety", "industrial"},
		DisplayOrder:   2,
	},
}

// DBSeed loads the starter catalog and a default admin account. Existing
// rows are matched by slug or email and left untouched, so the seeder is
// safe to run more than once.
func DBSeed(db *gorm.DB) error {
	now := time.Now()

	categoryIDs := make(map[string]string, len(seedCategories))
	for _, c := range seedCategories {
		category := c
		category.ID = uuid.New().String()
		category.CreatedAt = now
		category.UpdatedAt = now
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&category).Error; err != nil {
			return err
		}

		var stored models.Category
		if err := db.Where("slug = ?", category.Slug).First(&stored).Error; err != nil {
			return err
		}
		categoryIDs[category.Slug] = stored.ID
	}

	subcategoryIDs := make(map[string]string, len(seedSubcategories))
	for _, s := range seedSubcategories {
		subcategory := models.Subcategory{
			ID:           uuid.New().String(),
			CategoryID:   categoryIDs[s.CategorySlug],
			Name:         s.Name,
			Slug:         s.Slug,
			Description:  s.Description,
			DisplayOrder: s.DisplayOrder,
			Featured:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category_id"}, {Name: "slug"}},
			DoNothing: true,
		}).Create(&subcategory).Error; err != nil {
			return err
		}

		var stored models.Subcategory
		if err := db.Where("category_id = ? AND slug = ?", subcategory.CategoryID, s.Slug).First(&stored).Error; err != nil {
			return err
		}
		subcategoryIDs[s.CategorySlug+"/"+s.Slug] = stored.ID
	}

	for _, p := range seedProducts {
		var count int64
		if err := db.Model(&models.Product{}).Where("slug = ?", p.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		product := models.Product{
			ID:             uuid.New().String(),
			Name:           p.Name,
			Slug:           p.Slug,
			CategoryID:     categoryIDs[p.CategorySlug],
			Description:    p.Description,
			Specifications: p.Specifications,
			Tags:           p.Tags,
			DisplayOrder:   p.DisplayOrder,
			Featured:       p.Featured,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if p.SubcatSlug != "" {
			if id, ok := subcategoryIDs[p.CategorySlug+"/"+p.SubcatSlug]; ok {
				product.SubcategoryID = &id
			}
		}
		for i, img := range p.Images {
			product.ProductImages = append(product.ProductImages, models.ProductImage{
				ID:           uuid.New().String(),
				ImageURL:     img,
				DisplayOrder: i,
				CreatedAt:    now,
			})
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}

	if err := seedAdminUser(db, now); err != nil {
		return err
	}

	log.Println("✅ Seed data loaded")
	return nil
}

func seedAdminUser(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "admin@zipcatalog.local").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed := helpers.HashPassword("admin123")
	if hashed == "" {
		return fmt.Errorf("could not hash the default admin password")
	}

	admin := models.User{
		ID:        uuid.New().String(),
		Email:     "admin@zipcatalog.local",
		Password:  hashed,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Created default admin user admin@zipcatalog.local (password: admin123, change it)")
	return nil
}
