package admin

import (
	"log"
	"net/http"

	"github.com/devanshpatil/zipcatalog/app/utils/breadcrumb"
)

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := &AdminPageData{}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Admin Dashboard"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin"},
	}

	ctx := r.Context()

	if total, err := h.categoryRepo.Count(ctx); err != nil {
		log.Printf("Dashboard: failed to count categories: %v", err)
	} else {
		data.TotalCategories = total
	}
	if total, err := h.subcategoryRepo.Count(ctx); err != nil {
		log.Printf("Dashboard: failed to count subcategories: %v", err)
	} else {
		data.TotalSubcategories = total
	}
	if total, err := h.productRepo.Count(ctx); err != nil {
		log.Printf("Dashboard: failed to count products: %v", err)
	} else {
		data.TotalProducts = total
	}
	if total, err := h.quoteRepo.Count(ctx); err != nil {
		log.Printf("Dashboard: failed to count quote requests: %v", err)
	} else {
		data.TotalQuotes = total
	}

	quotes, err := h.quoteRepo.GetRecent(ctx, 10)
	if err != nil {
		log.Printf("Dashboard: failed to fetch recent quote requests: %v", err)
		data.Message = "Failed to load recent quote requests."
		data.MessageStatus = "error"
	} else {
		data.RecentQuotes = quotes
	}

	h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}
