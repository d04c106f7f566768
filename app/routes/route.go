package routes

import (
	"encoding/base64"
	"log"
	"net/http"

	"github.com/devanshpatil/zipcatalog/app/configs"
	"github.com/devanshpatil/zipcatalog/app/handlers"
	"github.com/devanshpatil/zipcatalog/app/handlers/admin"
	"github.com/devanshpatil/zipcatalog/app/middlewares"
	"github.com/devanshpatil/zipcatalog/app/repositories"
	"github.com/devanshpatil/zipcatalog/app/services"
	"github.com/devanshpatil/zipcatalog/app/utils/renderer"
	"github.com/devanshpatil/zipcatalog/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) http.Handler {
	render := renderer.New()
	validate := validator.New()

	sessionStore := newSessionStore()

	categoryRepo := repositories.NewCategoryRepository(db)
	subcategoryRepo := repositories.NewSubcategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	userRepo := repositories.NewUserRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)

	mailer := services.NewMailer(services.MailConfig{
		Host:     configs.LoadENV.EmailHost,
		Port:     configs.LoadENV.EmailPort,
		Username: configs.LoadENV.EmailUsername,
		Password: configs.LoadENV.EmailPassword,
		From:     configs.LoadENV.EmailFrom,
	})

	homeHandler := handlers.NewHomeHandler(render, categoryRepo, productRepo)
	catalogHandler := handlers.NewCatalogHandler(render, categoryRepo, subcategoryRepo, productRepo)
	staticHandler := handlers.NewStaticHandler(render)
	quoteHandler := handlers.NewQuoteHandler(render, validate, quoteRepo, mailer, configs.LoadENV.QuoteNotifyTo)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore)
	adminHandler := admin.NewAdminHandler(render, validate, categoryRepo, subcategoryRepo, productRepo, quoteRepo)

	router := mux.NewRouter()
	router.Use(middlewares.AuthMiddleware(sessionStore, userRepo))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products", catalogHandler.Collection).Methods("GET")
	router.HandleFunc("/products/{categorySlug}", catalogHandler.CategoryDetail).Methods("GET")
	router.HandleFunc("/products/{categorySlug}/{subcategorySlug}", catalogHandler.SubcategoryDetail).Methods("GET")
	router.HandleFunc("/product/{productSlug}", catalogHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/about-us", staticHandler.About).Methods("GET")
	router.HandleFunc("/contact-us", quoteHandler.ContactPage).Methods("GET")
	router.HandleFunc("/contact-us", quoteHandler.ContactPost).Methods("POST")

	// Login stays outside the guarded subrouter.
	router.HandleFunc("/admin/login", authHandler.LoginGetHandler).Methods("GET")
	router.HandleFunc("/admin/login", authHandler.LoginPostHandler).Methods("POST")
	router.HandleFunc("/admin/logout", authHandler.LogoutPostHandler).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware())
	adminRouter.Use(csrf.Protect(csrfKey(), csrf.Secure(configs.LoadENV.APP_ENV == "production")))

	adminRouter.HandleFunc("", adminHandler.Dashboard).Methods("GET")
	adminRouter.HandleFunc("/", adminHandler.Dashboard).Methods("GET")

	adminRouter.HandleFunc("/categories", adminHandler.GetCategoriesPage).Methods("GET")
	adminRouter.HandleFunc("/categories/new", adminHandler.AddCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/new", adminHandler.AddCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.EditCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.EditCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.DeleteCategoryPost).Methods("DELETE")

	adminRouter.HandleFunc("/subcategories", adminHandler.GetSubcategoriesPage).Methods("GET")
	adminRouter.HandleFunc("/subcategories/new", adminHandler.AddSubcategoryPage).Methods("GET")
	adminRouter.HandleFunc("/subcategories/new", adminHandler.AddSubcategoryPost).Methods("POST")
	adminRouter.HandleFunc("/subcategories/{id}", adminHandler.EditSubcategoryPage).Methods("GET")
	adminRouter.HandleFunc("/subcategories/{id}", adminHandler.EditSubcategoryPost).Methods("POST")
	adminRouter.HandleFunc("/subcategories/{id}", adminHandler.DeleteSubcategoryPost).Methods("DELETE")

	adminRouter.HandleFunc("/products", adminHandler.GetProductsPage).Methods("GET")
	adminRouter.HandleFunc("/products/new", adminHandler.AddProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/new", adminHandler.AddProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", adminHandler.EditProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/{id}", adminHandler.EditProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", adminHandler.DeleteProductPost).Methods("DELETE")

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// The override has to run before mux matches on method, otherwise a
	// POST carrying _method=DELETE never reaches the DELETE route.
	return middlewares.MethodOverrideMiddleware(router)
}

func newSessionStore() sessions.SessionStore {
	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		// Per-process random keys keep a dev instance usable; sessions die
		// with the process.
		log.Printf("Warning: %v. Falling back to ephemeral session keys.", err)
		return sessions.NewCookieSessionStore(
			securecookie.GenerateRandomKey(64),
			securecookie.GenerateRandomKey(32),
		)
	}
	return sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
}

func csrfKey() []byte {
	raw := configs.LoadENV.CSRFKey
	if raw != "" {
		key, err := base64.URLEncoding.DecodeString(raw)
		if err == nil && len(key) == 32 {
			return key
		}
		log.Printf("Warning: APP_CSRF_KEY is not 32 base64-encoded bytes, generating an ephemeral key")
	} else {
		log.Printf("Warning: APP_CSRF_KEY not set, generating an ephemeral key")
	}
	return securecookie.GenerateRandomKey(32)
}
