package handlers

import (
	"log"
	"net/http"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/repositories"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewHomeHandler(r *render.Render, c repositories.CategoryRepositoryImpl, p repositories.ProductRepositoryImpl) *HomeHandler {
	return &HomeHandler{
		render:       r,
		categoryRepo: c,
		productRepo:  p,
	}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Home: failed to fetch categories: %v", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	featured, err := h.productRepo.GetFeatured(r.Context())
	if err != nil {
		log.Printf("Home: failed to fetch featured products: %v", err)
		http.Error(w, "Failed to load featured products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Home",
		"Categories": categories,
		"Featured":   featured,
	})

	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
