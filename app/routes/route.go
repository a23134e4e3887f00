package routes

import (
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/configs"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/handlers"
	adminhandlers "github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/handlers/admin"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/middlewares"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/repositories"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, keys *configs.SessionKeys) *mux.Router {
	rnd := renderer.New()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	querySvc := services.NewCatalogQueryService(productRepo, categoryRepo, validate)
	mutationSvc := services.NewCatalogMutationService(productRepo, categoryRepo, imageRepo, validate)
	settingsSvc := services.NewSettingsService(settingsRepo, validate)
	feedSvc := services.NewFeedService(productRepo, categoryRepo, configs.LoadMerchantConfig(), configs.BaseURL())

	isProduction := configs.LoadENV.AppEnv == "production"
	sessionStore := sessions.NewCookieSessionStore(isProduction, keys.AuthKey, keys.EncKey)

	productHandler := handlers.NewProductHandler(querySvc, settingsSvc, rnd)
	categoryHandler := handlers.NewCategoryHandler(querySvc, rnd)
	settingsHandler := handlers.NewSettingsHandler(settingsSvc, rnd)
	feedHandler := handlers.NewFeedHandler(feedSvc, rnd)
	authHandler := handlers.NewAuthHandler(adminRepo, sessionStore, rnd)
	adminHandler := adminhandlers.NewAdminHandler(rnd, querySvc, mutationSvc, settingsSvc)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogMiddleware)

	// Public storefront API.
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/featured", productHandler.Featured).Methods("GET")
	api.HandleFunc("/products/detail", productHandler.Detail).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories/{slug}", categoryHandler.BySlug).Methods("GET")
	api.HandleFunc("/categories/{slug}/products", categoryHandler.Products).Methods("GET")
	api.HandleFunc("/settings", settingsHandler.Get).Methods("GET")

	// SEO surfaces.
	router.HandleFunc("/merchant-feed.xml", feedHandler.MerchantFeed).Methods("GET")
	router.HandleFunc("/sitemap.xml", feedHandler.Sitemap).Methods("GET")
	router.HandleFunc("/robots.txt", feedHandler.Robots).Methods("GET")

	// Admin API: CSRF-protected; mutations additionally require a live
	// admin session.
	csrfMiddleware := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(isProduction),
		csrf.Path("/"),
	)

	adminAPI := router.PathPrefix("/admin/api").Subrouter()
	adminAPI.Use(mux.MiddlewareFunc(csrfMiddleware))
	adminAPI.HandleFunc("/csrf", authHandler.CSRFToken).Methods("GET")
	adminAPI.HandleFunc("/login", authHandler.Login).Methods("POST")
	adminAPI.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	protected := adminAPI.PathPrefix("/").Subrouter()
	protected.Use(middlewares.AdminAuthMiddleware(sessionStore, adminRepo, rnd))
	protected.HandleFunc("/stats", adminHandler.Stats).Methods("GET")
	protected.HandleFunc("/products", adminHandler.ListProducts).Methods("GET")
	protected.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	protected.HandleFunc("/products/{id}", adminHandler.UpdateProduct).Methods("PATCH")
	protected.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods("DELETE")
	protected.HandleFunc("/products/{id}/toggle-featured", adminHandler.ToggleFeatured).Methods("POST")
	protected.HandleFunc("/products/{id}/toggle-stock", adminHandler.ToggleStock).Methods("POST")
	protected.HandleFunc("/images", adminHandler.AddImage).Methods("POST")
	protected.HandleFunc("/images/{id}", adminHandler.DeleteImage).Methods("DELETE")
	protected.HandleFunc("/categories", adminHandler.CreateCategory).Methods("POST")
	protected.HandleFunc("/categories/{id}", adminHandler.UpdateCategory).Methods("PATCH")
	protected.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods("DELETE")
	protected.HandleFunc("/settings", adminHandler.UpdateSettings).Methods("PATCH")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return router
}
