package handlers

import (
	"log"
	"net/http"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/devanshpatil/zipcatalog/app/repositories"
	"github.com/devanshpatil/zipcatalog/app/services"
	"github.com/devanshpatil/zipcatalog/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type QuoteHandler struct {
	render    *render.Render
	validator *validator.Validate
	quoteRepo repositories.QuoteRepositoryImpl
	mailer    *services.Mailer
	notifyTo  string
}

func NewQuoteHandler(r *render.Render, v *validator.Validate, quoteRepo repositories.QuoteRepositoryImpl, mailer *services.Mailer, notifyTo string) *QuoteHandler {
	return &QuoteHandler{
		render:    r,
		validator: v,
		quoteRepo: quoteRepo,
		mailer:    mailer,
		notifyTo:  notifyTo,
	}
}

type QuoteForm struct {
	Name        string `form:"name" validate:"required,min=2,max=100"`
	CompanyName string `form:"company_name" validate:"max=150"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone" validate:"required"`
	Message     string `form:"message" validate:"max=2000"`
}

func (h *QuoteHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, &QuoteForm{}, nil)
}

func (h *QuoteHandler) ContactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("ContactPost: error parsing form: %v", err)
		http.Redirect(w, r, "/contact-us?status=error&message=Invalid+form+submission", http.StatusSeeOther)
		return
	}

	form := &QuoteForm{
		Name:        r.PostFormValue("name"),
		CompanyName: r.PostFormValue("company_name"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		Message:     r.PostFormValue("message"),
	}

	fieldErrors := make(map[string]string)
	if err := h.validator.Struct(form); err != nil {
		fieldErrors = helpers.FormatValidationErrors(err.(validator.ValidationErrors))
	}
	if form.Phone != "" && !helpers.IsValidPhone(form.Phone) {
		fieldErrors["phone"] = "Phone must be a valid phone number."
	}
	if len(fieldErrors) > 0 {
		h.renderContact(w, r, form, fieldErrors)
		return
	}

	quote := &models.QuoteRequest{
		Name:        form.Name,
		CompanyName: form.CompanyName,
		Email:       form.Email,
		Phone:       form.Phone,
		Message:     form.Message,
	}
	if err := h.quoteRepo.Create(r.Context(), quote); err != nil {
		log.Printf("ContactPost: failed to save quote request: %v", err)
		http.Redirect(w, r, "/contact-us?status=error&message=Could+not+submit+your+request,+please+try+again", http.StatusSeeOther)
		return
	}

	// Notification mail is best effort; the quote row is already saved.
	if h.mailer != nil && h.notifyTo != "" {
		body := services.BuildQuoteEmailBody(quote)
		if err := h.mailer.SendHTMLEmail(h.notifyTo, "New quote request from "+quote.Name, body); err != nil {
			log.Printf("ContactPost: failed to send notification mail: %v", err)
		}
	}

	http.Redirect(w, r, "/contact-us?status=success&message=Thank+you,+we+will+get+back+to+you+shortly", http.StatusSeeOther)
}

func (h *QuoteHandler) renderContact(w http.ResponseWriter, r *http.Request, form *QuoteForm, fieldErrors map[string]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string]string)
	}
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "Contact Us",
		"Form":   form,
		"Errors": fieldErrors,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Contact us", URL: "/contact-us"},
		},
	})
	status := http.StatusOK
	if len(fieldErrors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	_ = h.render.HTML(w, status, "contact", data)
}
