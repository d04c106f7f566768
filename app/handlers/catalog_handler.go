package handlers

import (
	"log"
	"net/http"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/repositories"
	"github.com/devanshpatil/zipcatalog/app/utils/breadcrumb"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CatalogHandler struct {
	render          *render.Render
	categoryRepo    repositories.CategoryRepositoryImpl
	subcategoryRepo repositories.SubcategoryRepositoryImpl
	productRepo     repositories.ProductRepositoryImpl
}

func NewCatalogHandler(
	r *render.Render,
	categoryRepo repositories.CategoryRepositoryImpl,
	subcategoryRepo repositories.SubcategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *CatalogHandler {
	return &CatalogHandler{
		render:          r,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		productRepo:     productRepo,
	}
}

// Collection lists every featured category, the /products landing page.
func (h *CatalogHandler) Collection(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Collection: failed to fetch categories: %v", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Our Products",
		"Categories": categories,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Products", URL: "/products"},
		},
	})

	_ = h.render.HTML(w, http.StatusOK, "products", data)
}

// CategoryDetail shows one category with its subcategories and direct
// products. Unfeatured categories resolve here too: the featured flag only
// hides a category from listings, not from direct slug navigation.
func (h *CatalogHandler) CategoryDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categorySlug := vars["categorySlug"]

	category, err := h.categoryRepo.GetBySlug(r.Context(), categorySlug)
	if err != nil {
		log.Printf("CategoryDetail: failed to fetch category %s: %v", categorySlug, err)
		http.Error(w, "Failed to load category", http.StatusInternalServerError)
		return
	}
	if category == nil {
		h.renderNotFound(w, r, "Category not found", "/products", "Browse all products")
		return
	}

	subcategories, err := h.subcategoryRepo.GetByCategory(r.Context(), category.ID)
	if err != nil {
		log.Printf("CategoryDetail: failed to fetch subcategories for %s: %v", category.ID, err)
		http.Error(w, "Failed to load subcategories", http.StatusInternalServerError)
		return
	}

	products, err := h.productRepo.GetByCategory(r.Context(), category.ID)
	if err != nil {
		log.Printf("CategoryDetail: failed to fetch products for %s: %v", category.ID, err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":         category.Name,
		"Category":      category,
		"Subcategories": subcategories,
		"Products":      products,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Products", URL: "/products"},
			{Name: category.Name, URL: "/products/" + category.Slug},
		},
	})

	_ = h.render.HTML(w, http.StatusOK, "category", data)
}

func (h *CatalogHandler) SubcategoryDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categorySlug := vars["categorySlug"]
	subcategorySlug := vars["subcategorySlug"]

	subcategory, err := h.subcategoryRepo.GetBySlug(r.Context(), categorySlug, subcategorySlug)
	if err != nil {
		log.Printf("SubcategoryDetail: failed to fetch subcategory %s/%s: %v", categorySlug, subcategorySlug, err)
		http.Error(w, "Failed to load subcategory", http.StatusInternalServerError)
		return
	}
	if subcategory == nil {
		h.renderNotFound(w, r, "Subcategory not found", "/products/"+categorySlug, "Back to category")
		return
	}

	products, err := h.productRepo.GetBySubcategory(r.Context(), subcategory.ID)
	if err != nil {
		log.Printf("SubcategoryDetail: failed to fetch products for %s: %v", subcategory.ID, err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       subcategory.Name,
		"Subcategory": subcategory,
		"Category":    subcategory.Category,
		"Products":    products,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Products", URL: "/products"},
			{Name: subcategory.Category.Name, URL: "/products/" + categorySlug},
			{Name: subcategory.Name, URL: "/products/" + categorySlug + "/" + subcategory.Slug},
		},
	})

	_ = h.render.HTML(w, http.StatusOK, "subcategory", data)
}

func (h *CatalogHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productSlug := vars["productSlug"]

	product, err := h.productRepo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		log.Printf("ProductDetail: failed to fetch product %s: %v", productSlug, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		h.renderNotFound(w, r, "Product not found", "/products", "Browse all products")
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Products", URL: "/products"},
	}
	if product.Category != nil {
		breadcrumbs = append(breadcrumbs, breadcrumb.Breadcrumb{
			Name: product.Category.Name,
			URL:  "/products/" + product.Category.Slug,
		})
	}
	breadcrumbs = append(breadcrumbs, breadcrumb.Breadcrumb{Name: product.Name, URL: "/product/" + product.Slug})

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       product.Name,
		"Product":     product,
		"Images":      product.ImageURLs(),
		"Breadcrumbs": breadcrumbs,
	})

	_ = h.render.HTML(w, http.StatusOK, "product", data)
}

func (h *CatalogHandler) renderNotFound(w http.ResponseWriter, r *http.Request, title, backURL, backLabel string) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":     title,
		"BackURL":   backURL,
		"BackLabel": backLabel,
	})
	_ = h.render.HTML(w, http.StatusNotFound, "not_found", data)
}
