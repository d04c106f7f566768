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

func (h *AdminHandler) GetSubcategoriesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminSubcategoryPageData{}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Manage Subcategories"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin"},
		{Name: "Subcategories", URL: "/admin/subcategories"},
	}

	subcategories, err := h.subcategoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetSubcategoriesPage: failed to fetch subcategories: %v", err)
		data.Message = "Failed to load subcategories."
		data.MessageStatus = "error"
	} else {
		data.Subcategories = subcategories
	}

	h.render.HTML(w, http.StatusOK, "admin/subcategories/index", data)
}

func (h *AdminHandler) AddSubcategoryPage(w http.ResponseWriter, r *http.Request) {
	form := &SubcategoryForm{
		DisplayOrder: "0",
		Featured:     true,
	}
	h.renderSubcategoryForm(w, r, form, make(map[string]string), false, "/admin/subcategories/new", "Add Subcategory")
}

func (h *AdminHandler) AddSubcategoryPost(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseSubcategoryForm(r)
	if err != nil {
		log.Printf("AddSubcategoryPost: error parsing form: %v", err)
		http.Redirect(w, r, "/admin/subcategories/new?status=error&message="+url.QueryEscape("Could not parse form."), http.StatusSeeOther)
		return
	}

	errs := h.validateSubcategoryForm(r, form)
	if len(errs) > 0 {
		h.renderSubcategoryForm(w, r, form, errs, false, "/admin/subcategories/new", "Add Subcategory")
		return
	}

	newSubcategory := &models.Subcategory{
		ID:           uuid.New().String(),
		CategoryID:   form.CategoryID,
		Name:         form.Name,
		Slug:         helpers.GenerateSlug(form.Name),
		Description:  form.Description,
		ImageURL:     form.ImageURL,
		DisplayOrder: parseDisplayOrder(form.DisplayOrder),
		Featured:     form.Featured,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.subcategoryRepo.Create(r.Context(), newSubcategory); err != nil {
		log.Printf("AddSubcategoryPost: failed to create subcategory: %v", err)
		http.Redirect(w, r, "/admin/subcategories/new?status=error&message="+url.QueryEscape("Failed to add subcategory: "+err.Error()), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/subcategories?status=success&message="+url.QueryEscape("Subcategory added."), http.StatusSeeOther)
}

func (h *AdminHandler) EditSubcategoryPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subcategoryID := vars["id"]

	subcategory, err := h.subcategoryRepo.GetByID(r.Context(), subcategoryID)
	if err != nil {
		log.Printf("EditSubcategoryPage: error looking up subcategory %s: %v", subcategoryID, err)
		http.Redirect(w, r, "/admin/subcategories", http.StatusSeeOther)
		return
	}
	if subcategory == nil {
		log.Printf("EditSubcategoryPage: subcategory %s not found", subcategoryID)
		http.Redirect(w, r, "/admin/subcategories", http.StatusSeeOther)
		return
	}

	formData := SubcategoryForm{
		ID:           subcategory.ID,
		CategoryID:   subcategory.CategoryID,
		Name:         subcategory.Name,
		Slug:         subcategory.Slug,
		Description:  subcategory.Description,
		ImageURL:     subcategory.ImageURL,
		DisplayOrder: strconv.Itoa(subcategory.DisplayOrder),
		Featured:     subcategory.Featured,
	}

	h.renderSubcategoryForm(w, r, &formData, make(map[string]string), true,
		fmt.Sprintf("/admin/subcategories/%s", subcategoryID), "Edit Subcategory")
}

func (h *AdminHandler) EditSubcategoryPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subcategoryID := vars["id"]

	subcategory, err := h.subcategoryRepo.GetByID(r.Context(), subcategoryID)
	if err != nil || subcategory == nil {
		log.Printf("EditSubcategoryPost: subcategory %s not found for update: %v", subcategoryID, err)
		http.Redirect(w, r, "/admin/subcategories", http.StatusSeeOther)
		return
	}

	form, err := h.parseSubcategoryForm(r)
	if err != nil {
		log.Printf("EditSubcategoryPost: error parsing form: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/subcategories/%s?status=error&message=%s", subcategoryID, url.QueryEscape("Could not parse form.")), http.StatusSeeOther)
		return
	}
	form.ID = subcategoryID

	errs := h.validateSubcategoryForm(r, form)
	if len(errs) > 0 {
		h.renderSubcategoryForm(w, r, form, errs, true,
			fmt.Sprintf("/admin/subcategories/%s", subcategoryID), "Edit Subcategory")
		return
	}

	if form.Slug != "" {
		subcategory.Slug = helpers.GenerateSlug(form.Slug)
	}
	subcategory.CategoryID = form.CategoryID
	subcategory.Name = form.Name
	subcategory.Description = form.Description
	subcategory.ImageURL = form.ImageURL
	subcategory.DisplayOrder = parseDisplayOrder(form.DisplayOrder)
	subcategory.Featured = form.Featured
	subcategory.Category = nil
	subcategory.UpdatedAt = time.Now()

	if err := h.subcategoryRepo.Update(r.Context(), subcategory); err != nil {
		log.Printf("EditSubcategoryPost: failed to update subcategory %s: %v", subcategoryID, err)
		http.Redirect(w, r, fmt.Sprintf("/admin/subcategories/%s?status=error&message=%s", subcategoryID, url.QueryEscape("Failed to update subcategory: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/subcategories?status=success&message="+url.QueryEscape("Subcategory updated."), http.StatusSeeOther)
}

func (h *AdminHandler) DeleteSubcategoryPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subcategoryID := vars["id"]

	subcategory, err := h.subcategoryRepo.GetByID(r.Context(), subcategoryID)
	if err != nil || subcategory == nil {
		log.Printf("DeleteSubcategoryPost: subcategory %s not found for deletion: %v", subcategoryID, err)
		http.Redirect(w, r, "/admin/subcategories", http.StatusSeeOther)
		return
	}

	if err := h.subcategoryRepo.Delete(r.Context(), subcategoryID); err != nil {
		log.Printf("DeleteSubcategoryPost: failed to delete subcategory %s: %v", subcategoryID, err)
		http.Redirect(w, r, "/admin/subcategories?status=error&message="+url.QueryEscape("Failed to delete subcategory."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/subcategories?status=success&message="+url.QueryEscape("Subcategory deleted."), http.StatusSeeOther)
}

func (h *AdminHandler) parseSubcategoryForm(r *http.Request) (*SubcategoryForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &SubcategoryForm{
		CategoryID:   r.PostFormValue("category_id"),
		Name:         r.PostFormValue("name"),
		Slug:         r.PostFormValue("slug"),
		Description:  r.PostFormValue("description"),
		ImageURL:     r.PostFormValue("image_url"),
		DisplayOrder: r.PostFormValue("display_order"),
		Featured:     r.PostFormValue("featured") == "on",
	}, nil
}

func (h *AdminHandler) validateSubcategoryForm(r *http.Request, form *SubcategoryForm) map[string]string {
	errs := make(map[string]string)
	if err := h.validator.Struct(form); err != nil {
		errs = helpers.FormatValidationErrors(err.(validator.ValidationErrors))
	}

	if form.CategoryID != "" {
		category, err := h.categoryRepo.GetByID(r.Context(), form.CategoryID)
		if err != nil {
			log.Printf("validateSubcategoryForm: error checking category %s: %v", form.CategoryID, err)
			errs["categoryid"] = "Could not verify the selected category."
		} else if category == nil {
			errs["categoryid"] = "The selected category does not exist."
		}
	}
	return errs
}

func (h *AdminHandler) renderSubcategoryForm(w http.ResponseWriter, r *http.Request, form *SubcategoryForm, errs map[string]string, isEdit bool, action, title string) {
	data := &AdminSubcategoryPageData{
		FormAction:      action,
		IsEdit:          isEdit,
		SubcategoryData: form,
		Errors:          errs,
	}
	h.populateBaseDataForAdmin(r, data)

	categories, err := h.categoryRepo.GetAllAdmin(r.Context())
	if err != nil {
		log.Printf("renderSubcategoryForm: failed to fetch categories: %v", err)
		data.Message = "Failed to load categories."
		data.MessageStatus = "error"
	}
	data.Categories = categories

	data.Title = title
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"}, {Name: "Admin", URL: "/admin"},
		{Name: "Subcategories", URL: "/admin/subcategories"}, {Name: title, URL: action},
	}

	h.render.HTML(w, http.StatusOK, "admin/subcategories/form", data)
}
