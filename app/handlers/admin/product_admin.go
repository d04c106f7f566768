package admin

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/devanshpatil/zipcatalog/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) GetProductsPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductPageData{}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Manage Products"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin"},
		{Name: "Products", URL: "/admin/products"},
	}

	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetProductsPage: failed to fetch products: %v", err)
		data.Message = "Failed to load products."
		data.MessageStatus = "error"
	} else {
		data.Products = products
	}

	h.render.HTML(w, http.StatusOK, "admin/products/index", data)
}

func (h *AdminHandler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	form := &ProductForm{
		DisplayOrder: "0",
	}
	h.renderProductForm(w, r, form, make(map[string]string), false, "/admin/products/new", "Add Product")
}

func (h *AdminHandler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseProductForm(r)
	if err != nil {
		log.Printf("AddProductPost: error parsing form: %v", err)
		http.Redirect(w, r, "/admin/products/new?status=error&message="+url.QueryEscape("Could not parse form."), http.StatusSeeOther)
		return
	}

	errs := h.validateProductForm(r, form)
	if len(errs) > 0 {
		h.renderProductForm(w, r, form, errs, false, "/admin/products/new", "Add Product")
		return
	}

	product := &models.Product{
		ID:             uuid.New().String(),
		Name:           form.Name,
		Slug:           helpers.GenerateSlug(form.Name),
		CategoryID:     form.CategoryID,
		SubcategoryID:  optionalID(form.SubcategoryID),
		Description:    form.Description,
		Specifications: buildSpecMap(form.SpecKeys, form.SpecValues),
		Tags:           dedupeTags(form.Tags),
		DisplayOrder:   parseDisplayOrder(form.DisplayOrder),
		Featured:       form.Featured,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.productRepo.Create(r.Context(), product, form.Images); err != nil {
		log.Printf("AddProductPost: failed to create product: %v", err)
		form.ID = ""
		errs["form"] = "Failed to save the product: " + err.Error()
		h.renderProductForm(w, r, form, errs, false, "/admin/products/new", "Add Product")
		return
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product added."), http.StatusSeeOther)
}

func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("EditProductPage: error looking up product %s: %v", productID, err)
		http.Redirect(w, r, "/admin/products?status=error&message="+url.QueryEscape("Product not found."), http.StatusSeeOther)
		return
	}
	if product == nil {
		log.Printf("EditProductPage: product %s not found", productID)
		http.Redirect(w, r, "/admin/products?status=error&message="+url.QueryEscape("Product not found."), http.StatusSeeOther)
		return
	}

	formData := ProductForm{
		ID:           product.ID,
		Name:         product.Name,
		Slug:         product.Slug,
		CategoryID:   product.CategoryID,
		Description:  product.Description,
		DisplayOrder: strconv.Itoa(product.DisplayOrder),
		Featured:     product.Featured,
		Images:       product.ImageURLs(),
		Tags:         product.Tags,
	}
	if product.SubcategoryID != nil {
		formData.SubcategoryID = *product.SubcategoryID
	}
	for key, value := range product.Specifications {
		formData.SpecKeys = append(formData.SpecKeys, key)
		formData.SpecValues = append(formData.SpecValues, value)
	}

	h.renderProductForm(w, r, &formData, make(map[string]string), true,
		fmt.Sprintf("/admin/products/%s", productID), "Edit Product")
}

func (h *AdminHandler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("EditProductPost: product %s not found for update: %v", productID, err)
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	form, err := h.parseProductForm(r)
	if err != nil {
		log.Printf("EditProductPost: error parsing form: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/products/%s?status=error&message=%s", productID, url.QueryEscape("Could not parse form.")), http.StatusSeeOther)
		return
	}
	form.ID = productID

	errs := h.validateProductForm(r, form)
	if len(errs) > 0 {
		h.renderProductForm(w, r, form, errs, true,
			fmt.Sprintf("/admin/products/%s", productID), "Edit Product")
		return
	}

	if form.Slug != "" {
		product.Slug = helpers.GenerateSlug(form.Slug)
	}
	product.Name = form.Name
	product.CategoryID = form.CategoryID
	product.SubcategoryID = optionalID(form.SubcategoryID)
	product.Description = form.Description
	product.Specifications = buildSpecMap(form.SpecKeys, form.SpecValues)
	product.Tags = dedupeTags(form.Tags)
	product.DisplayOrder = parseDisplayOrder(form.DisplayOrder)
	product.Featured = form.Featured
	product.Category = nil
	product.Subcategory = nil
	product.ProductImages = nil
	product.UpdatedAt = time.Now()

	if err := h.productRepo.Update(r.Context(), product, form.Images); err != nil {
		log.Printf("EditProductPost: failed to update product %s: %v", productID, err)
		errs["form"] = "Failed to save the product: " + err.Error()
		h.renderProductForm(w, r, form, errs, true,
			fmt.Sprintf("/admin/products/%s", productID), "Edit Product")
		return
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product updated."), http.StatusSeeOther)
}

func (h *AdminHandler) DeleteProductPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("DeleteProductPost: product %s not found for deletion: %v", productID, err)
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	if err := h.productRepo.Delete(r.Context(), productID); err != nil {
		log.Printf("DeleteProductPost: failed to delete product %s: %v", productID, err)
		http.Redirect(w, r, "/admin/products?status=error&message="+url.QueryEscape("Failed to delete product."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product deleted."), http.StatusSeeOther)
}

func (h *AdminHandler) parseProductForm(r *http.Request) (*ProductForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	form := &ProductForm{
		Name:          r.PostFormValue("name"),
		Slug:          r.PostFormValue("slug"),
		CategoryID:    r.PostFormValue("category_id"),
		SubcategoryID: r.PostFormValue("subcategory_id"),
		Description:   r.PostFormValue("description"),
		DisplayOrder:  r.PostFormValue("display_order"),
		Featured:      r.PostFormValue("featured") == "on",
		SpecKeys:      r.PostForm["spec_keys"],
		SpecValues:    r.PostForm["spec_values"],
		Tags:          r.PostForm["tags"],
	}

	// Empty image rows left by the add/remove controls are dropped; the
	// remaining list order is the gallery order, first entry primary.
	for _, img := range r.PostForm["images"] {
		img = strings.TrimSpace(img)
		if img != "" {
			form.Images = append(form.Images, img)
		}
	}

	return form, nil
}

func (h *AdminHandler) validateProductForm(r *http.Request, form *ProductForm) map[string]string {
	errs := make(map[string]string)
	if err := h.validator.Struct(form); err != nil {
		errs = helpers.FormatValidationErrors(err.(validator.ValidationErrors))
	}

	if form.CategoryID != "" {
		category, err := h.categoryRepo.GetByID(r.Context(), form.CategoryID)
		if err != nil {
			log.Printf("validateProductForm: error checking category %s: %v", form.CategoryID, err)
			errs["categoryid"] = "Could not verify the selected category."
		} else if category == nil {
			errs["categoryid"] = "The selected category does not exist."
		}
	}

	// An optional subcategory must belong to the selected category.
	if form.SubcategoryID != "" {
		subcategory, err := h.subcategoryRepo.GetByID(r.Context(), form.SubcategoryID)
		if err != nil {
			log.Printf("validateProductForm: error checking subcategory %s: %v", form.SubcategoryID, err)
			errs["subcategoryid"] = "Could not verify the selected subcategory."
		} else if subcategory == nil {
			errs["subcategoryid"] = "The selected subcategory does not exist."
		} else if subcategory.CategoryID != form.CategoryID {
			errs["subcategoryid"] = "The selected subcategory belongs to a different category."
		}
	}

	return errs
}

func (h *AdminHandler) renderProductForm(w http.ResponseWriter, r *http.Request, form *ProductForm, errs map[string]string, isEdit bool, action, title string) {
	data := &AdminProductPageData{
		FormAction:  action,
		IsEdit:      isEdit,
		ProductData: form,
		Errors:      errs,
	}
	h.populateBaseDataForAdmin(r, data)

	categories, err := h.categoryRepo.GetAllAdmin(r.Context())
	if err != nil {
		log.Printf("renderProductForm: failed to fetch categories: %v", err)
		data.Message = "Failed to load categories."
		data.MessageStatus = "error"
	}
	data.Categories = categories

	subcategories, err := h.subcategoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("renderProductForm: failed to fetch subcategories: %v", err)
	}
	data.Subcategories = subcategories

	data.Title = title
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"}, {Name: "Admin", URL: "/admin"},
		{Name: "Products", URL: "/admin/products"}, {Name: title, URL: action},
	}

	h.render.HTML(w, http.StatusOK, "admin/products/form", data)
}

func optionalID(id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &id
}

// buildSpecMap zips the parallel key/value inputs into the specifications
// map. A key entered twice keeps its last value.
func buildSpecMap(keys, values []string) models.SpecMap {
	specs := make(models.SpecMap)
	for i, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" || i >= len(values) {
			continue
		}
		specs[key] = strings.TrimSpace(values[i])
	}
	return specs
}

// dedupeTags drops duplicates while keeping first-seen order.
func dedupeTags(tags []string) models.TagList {
	seen := make(map[string]bool, len(tags))
	out := make(models.TagList, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
