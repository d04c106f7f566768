package admin

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/devanshpatil/zipcatalog/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) GetCategoriesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Manage Categories"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin"},
		{Name: "Categories", URL: "/admin/categories"},
	}

	categories, err := h.categoryRepo.GetAllAdmin(r.Context())
	if err != nil {
		log.Printf("GetCategoriesPage: failed to fetch categories: %v", err)
		data.Message = "Failed to load categories."
		data.MessageStatus = "error"
	} else {
		data.Categories = categories
	}

	h.render.HTML(w, http.StatusOK, "admin/categories/index", data)
}

func (h *AdminHandler) AddCategoryPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{
		FormAction: "/admin/categories/new",
		IsEdit:     false,
		CategoryData: &CategoryForm{
			DisplayOrder: "0",
			Featured:     true,
		},
		Errors: make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Add Category"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"}, {Name: "Admin", URL: "/admin"},
		{Name: "Categories", URL: "/admin/categories"}, {Name: "Add New", URL: "/admin/categories/new"},
	}

	h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseCategoryForm(r)
	if err != nil {
		log.Printf("AddCategoryPost: error parsing form: %v", err)
		http.Redirect(w, r, "/admin/categories/new?status=error&message="+url.QueryEscape("Could not parse form."), http.StatusSeeOther)
		return
	}

	if errs := h.validateCategoryForm(form); len(errs) > 0 {
		h.renderCategoryForm(w, r, form, errs, false, "/admin/categories/new", "Add Category")
		return
	}

	newCategory := &models.Category{
		ID:           uuid.New().String(),
		Name:         form.Name,
		Slug:         helpers.GenerateSlug(form.Name),
		Description:  form.Description,
		ImageURL:     form.ImageURL,
		DisplayOrder: parseDisplayOrder(form.DisplayOrder),
		Featured:     form.Featured,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.categoryRepo.Create(r.Context(), newCategory); err != nil {
		log.Printf("AddCategoryPost: failed to create category: %v", err)
		http.Redirect(w, r, "/admin/categories/new?status=error&message="+url.QueryEscape("Failed to add category: "+err.Error()), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/categories?status=success&message="+url.QueryEscape("Category added."), http.StatusSeeOther)
}

func (h *AdminHandler) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		log.Printf("EditCategoryPage: error looking up category %s: %v", categoryID, err)
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}
	if category == nil {
		log.Printf("EditCategoryPage: category %s not found", categoryID)
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}

	formData := CategoryForm{
		ID:           category.ID,
		Name:         category.Name,
		Slug:         category.Slug,
		Description:  category.Description,
		ImageURL:     category.ImageURL,
		DisplayOrder: strconv.Itoa(category.DisplayOrder),
		Featured:     category.Featured,
	}

	h.renderCategoryForm(w, r, &formData, make(map[string]string), true,
		fmt.Sprintf("/admin/categories/%s", categoryID), "Edit Category")
}

func (h *AdminHandler) EditCategoryPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("EditCategoryPost: category %s not found for update: %v", categoryID, err)
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}

	form, err := h.parseCategoryForm(r)
	if err != nil {
		log.Printf("EditCategoryPost: error parsing form: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/categories/%s?status=error&message=%s", categoryID, url.QueryEscape("Could not parse form.")), http.StatusSeeOther)
		return
	}
	form.ID = categoryID

	if errs := h.validateCategoryForm(form); len(errs) > 0 {
		h.renderCategoryForm(w, r, form, errs, true,
			fmt.Sprintf("/admin/categories/%s", categoryID), "Edit Category")
		return
	}

	// On edit the slug field is taken as posted, not re-derived from the
	// name. Emptying it falls back to the stored slug.
	if form.Slug != "" {
		category.Slug = helpers.GenerateSlug(form.Slug)
	}
	category.Name = form.Name
	category.Description = form.Description
	category.ImageURL = form.ImageURL
	category.DisplayOrder = parseDisplayOrder(form.DisplayOrder)
	category.Featured = form.Featured
	category.UpdatedAt = time.Now()

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("EditCategoryPost: failed to update category %s: %v", categoryID, err)
		http.Redirect(w, r, fmt.Sprintf("/admin/categories/%s?status=error&message=%s", categoryID, url.QueryEscape("Failed to update category: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/categories?status=success&message="+url.QueryEscape("Category updated."), http.StatusSeeOther)
}

func (h *AdminHandler) DeleteCategoryPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("DeleteCategoryPost: category %s not found for deletion: %v", categoryID, err)
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), categoryID); err != nil {
		log.Printf("DeleteCategoryPost: failed to delete category %s: %v", categoryID, err)
		http.Redirect(w, r, "/admin/categories?status=error&message="+url.QueryEscape("Failed to delete category."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/categories?status=success&message="+url.QueryEscape("Category and its dependent rows deleted."), http.StatusSeeOther)
}

func (h *AdminHandler) parseCategoryForm(r *http.Request) (*CategoryForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &CategoryForm{
		Name:         r.PostFormValue("name"),
		Slug:         r.PostFormValue("slug"),
		Description:  r.PostFormValue("description"),
		ImageURL:     r.PostFormValue("image_url"),
		DisplayOrder: r.PostFormValue("display_order"),
		Featured:     r.PostFormValue("featured") == "on",
	}, nil
}

func (h *AdminHandler) validateCategoryForm(form *CategoryForm) map[string]string {
	if err := h.validator.Struct(form); err != nil {
		return helpers.FormatValidationErrors(err.(validator.ValidationErrors))
	}
	return nil
}

func (h *AdminHandler) renderCategoryForm(w http.ResponseWriter, r *http.Request, form *CategoryForm, errs map[string]string, isEdit bool, action, title string) {
	data := &AdminCategoryPageData{
		FormAction:   action,
		IsEdit:       isEdit,
		CategoryData: form,
		Errors:       errs,
	}
	h.populateBaseDataForAdmin(r, data)

	data.Title = title
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"}, {Name: "Admin", URL: "/admin"},
		{Name: "Categories", URL: "/admin/categories"}, {Name: title, URL: action},
	}

	h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
}
