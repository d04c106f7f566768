package admin

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/devanshpatil/zipcatalog/app/models/other"
	"github.com/devanshpatil/zipcatalog/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render          *render.Render
	validator       *validator.Validate
	categoryRepo    repositories.CategoryRepositoryImpl
	subcategoryRepo repositories.SubcategoryRepositoryImpl
	productRepo     repositories.ProductRepositoryImpl
	quoteRepo       repositories.QuoteRepositoryImpl
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	categoryRepo repositories.CategoryRepositoryImpl,
	subcategoryRepo repositories.SubcategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	quoteRepo repositories.QuoteRepositoryImpl,
) *AdminHandler {
	return &AdminHandler{
		render:          render,
		validator:       validator,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		productRepo:     productRepo,
		quoteRepo:       quoteRepo,
	}
}

type AdminPageData struct {
	other.BasePageData
	TotalCategories    int64
	TotalSubcategories int64
	TotalProducts      int64
	TotalQuotes        int64
	RecentQuotes       []models.QuoteRequest
}

type AdminCategoryPageData struct {
	other.BasePageData
	Categories   []models.Category
	CategoryData *CategoryForm
	IsEdit       bool
	FormAction   string
	Errors       map[string]string
}

type CategoryForm struct {
	ID           string `form:"id"`
	Name         string `form:"name" validate:"required,min=2,max=100"`
	Slug         string `form:"slug"`
	Description  string `form:"description"`
	ImageURL     string `form:"image_url" validate:"omitempty,url"`
	DisplayOrder string `form:"display_order" validate:"omitempty,numeric"`
	Featured     bool   `form:"featured"`
}

type AdminSubcategoryPageData struct {
	other.BasePageData
	Subcategories   []models.Subcategory
	SubcategoryData *SubcategoryForm
	Categories      []models.Category
	IsEdit          bool
	FormAction      string
	Errors          map[string]string
}

type SubcategoryForm struct {
	ID           string `form:"id"`
	CategoryID   string `form:"category_id" validate:"required"`
	Name         string `form:"name" validate:"required,min=2,max=100"`
	Slug         string `form:"slug"`
	Description  string `form:"description"`
	ImageURL     string `form:"image_url" validate:"omitempty,url"`
	DisplayOrder string `form:"display_order" validate:"omitempty,numeric"`
	Featured     bool   `form:"featured"`
}

type AdminProductPageData struct {
	other.BasePageData
	Products      []models.Product
	ProductData   *ProductForm
	Categories    []models.Category
	Subcategories []models.Subcategory
	IsEdit        bool
	FormAction    string
	Errors        map[string]string
}

type ProductForm struct {
	ID            string `form:"id"`
	Name          string `form:"name" validate:"required,min=2,max=255"`
	Slug          string `form:"slug"`
	CategoryID    string `form:"category_id" validate:"required"`
	SubcategoryID string `form:"subcategory_id"`
	Description   string `form:"description"`
	DisplayOrder  string `form:"display_order" validate:"omitempty,numeric"`
	Featured      bool   `form:"featured"`
	Images        []string
	SpecKeys      []string
	SpecValues    []string
	Tags          []string
}

func (h *AdminHandler) populateBaseDataForAdmin(r *http.Request, pageData interface{}) {
	baseDataMap := helpers.GetBaseData(r, nil)

	var base *other.BasePageData
	switch pd := pageData.(type) {
	case *AdminPageData:
		base = &pd.BasePageData
	case *AdminCategoryPageData:
		base = &pd.BasePageData
	case *AdminSubcategoryPageData:
		base = &pd.BasePageData
	case *AdminProductPageData:
		base = &pd.BasePageData
	default:
		log.Printf("populateBaseDataForAdmin: unknown pageData type: %T", pageData)
		return
	}

	base.IsAdminPage = true
	base.CSRFField = csrf.TemplateField(r)
	if title, ok := baseDataMap["Title"].(string); ok {
		base.Title = title
	}
	if isLoggedIn, ok := baseDataMap["IsLoggedIn"].(bool); ok {
		base.IsLoggedIn = isLoggedIn
	}
	if user, ok := baseDataMap["User"].(*other.UserForTemplate); ok {
		base.User = user
	}
	if userID, ok := baseDataMap["UserID"].(string); ok {
		base.UserID = userID
	}
	if message, ok := baseDataMap["Message"].(string); ok {
		base.Message = message
	}
	if messageStatus, ok := baseDataMap["MessageStatus"].(string); ok {
		base.MessageStatus = messageStatus
	}
	base.Query = r.URL.Query()
}

// parseDisplayOrder tolerates an empty field, which means order 0.
func parseDisplayOrder(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	order, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return order
}
