package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/app"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/config"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/controllers"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/middleware"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/routes"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize clubrealty-admin-api:", err)
	}
	defer application.Close()

	authService := services.NewAuthService(cfg, application.Admins, application.Tokens)
	propertyService := services.NewPropertyService(application.Properties)
	leadService := services.NewLeadService(application.Leads)
	bannerService := services.NewBannerService(application.Banners)
	headingService := services.NewHeadingService(application.Headings)
	blogService := services.NewBlogService(application.Blogs)
	greenService := services.NewGreenService(application.Green)
	dashboardService := services.NewDashboardService(
		application.Properties,
		application.Leads,
		application.Banners,
		application.Headings,
		application.Blogs,
		application.Green,
		application.Visits,
	)

	uploadService, err := services.NewUploadService(context.Background(), cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize blob storage:", err)
	}

	healthController := controllers.NewHealthController(application)
	authController := controllers.NewAuthController(authService, cfg)
	propertyController := controllers.NewPropertyController(propertyService, authService)
	leadController := controllers.NewLeadController(leadService)
	bannerController := controllers.NewBannerController(bannerService)
	headingController := controllers.NewHeadingController(headingService)
	blogController := controllers.NewBlogController(blogService)
	greenController := controllers.NewGreenController(greenService)
	uploadController := controllers.NewUploadController(uploadService, cfg)
	dashboardController := controllers.NewDashboardController(dashboardService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthLogin, authController.Login).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthRefresh, authController.Refresh).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogout, authController.Logout).Methods(http.MethodPost)
	router.HandleFunc(routes.LeadsBase, leadController.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.GreenBase, greenController.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.Visits, dashboardController.RecordVisit).Methods(http.MethodPost)
	router.HandleFunc(routes.BlogBySlug, blogController.GetBySlug).Methods(http.MethodGet)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))

	secured.HandleFunc(routes.AuthMe, authController.Me).Methods(http.MethodGet)

	secured.HandleFunc(routes.PropertiesBase, propertyController.List).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertiesBase, propertyController.Create).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertyByID, propertyController.Get).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertyController.Update).Methods(http.MethodPut)
	secured.HandleFunc(routes.PropertyByID, propertyController.Delete).Methods(http.MethodDelete)
	secured.HandleFunc(routes.PropertyPublish, propertyController.SetPublished).Methods(http.MethodPatch)
	secured.HandleFunc(routes.PropertyListingIntent, propertyController.SetListingIntent).Methods(http.MethodPatch)

	secured.HandleFunc(routes.LeadsBase, leadController.List).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeadByID, leadController.Get).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeadByID, leadController.Update).Methods(http.MethodPut)
	secured.HandleFunc(routes.LeadByID, leadController.Delete).Methods(http.MethodDelete)
	secured.HandleFunc(routes.LeadStatus, leadController.ChangeStatus).Methods(http.MethodPatch)

	secured.HandleFunc(routes.BannersBase, bannerController.List).Methods(http.MethodGet)
	secured.HandleFunc(routes.BannersBase, bannerController.Create).Methods(http.MethodPost)
	secured.HandleFunc(routes.BannerByID, bannerController.Get).Methods(http.MethodGet)
	secured.HandleFunc(routes.BannerByID, bannerController.Update).Methods(http.MethodPut)
	secured.HandleFunc(routes.BannerByID, bannerController.Delete).Methods(http.MethodDelete)
	secured.HandleFunc(routes.BannerStatus, bannerController.ChangeStatus).Methods(http.MethodPatch)
	secured.HandleFunc(routes.BannerReorder, bannerController.Reorder).Methods(http.MethodPatch)

	secured.HandleFunc(routes.HeadingsBase, headingController.List).Methods(http.MethodGet)
	secured.HandleFunc(routes.HeadingsBase, headingController.Create).Methods(http.MethodPost)
	secured.HandleFunc(routes.HeadingByID, headingController.Get).Methods(http.MethodGet)
	secured.HandleFunc(routes.HeadingByID, headingController.Update).Methods(http.MethodPut)
	secured.HandleFunc(routes.HeadingByID, headingController.Delete).Methods(http.MethodDelete)
	secured.HandleFunc(routes.HeadingMove, headingController.Move).Methods(http.MethodPatch)
	secured.HandleFunc(routes.HeadingVisible, headingController.ToggleVisible).Methods(http.MethodPatch)

	secured.HandleFunc(routes.BlogBase, blogController.List).Methods(http.MethodGet)
	secured.HandleFunc(routes.BlogBase, blogController.Create).Methods(http.MethodPost)
	secured.HandleFunc(routes.BlogByID, blogController.Get).Methods(http.MethodGet)
	secured.HandleFunc(routes.BlogByID, blogController.Update).Methods(http.MethodPut)
	secured.HandleFunc(routes.BlogByID, blogController.Delete).Methods(http.MethodDelete)
	secured.HandleFunc(routes.BlogPublish, blogController.SetPublished).Methods(http.MethodPatch)

	secured.HandleFunc(routes.GreenBase, greenController.List).Methods(http.MethodGet)
	secured.HandleFunc(routes.GreenByID, greenController.Get).Methods(http.MethodGet)
	secured.HandleFunc(routes.GreenByID, greenController.Delete).Methods(http.MethodDelete)

	secured.HandleFunc(routes.UploadPropertyImage, uploadController.PropertyImage).Methods(http.MethodPost)
	secured.HandleFunc(routes.UploadBlogImage, uploadController.BlogImage).Methods(http.MethodPost)
	secured.HandleFunc(routes.UploadBannerImage, uploadController.BannerImage).Methods(http.MethodPost)
	secured.HandleFunc(routes.UploadGreenPhoto, uploadController.GreenPhoto).Methods(http.MethodPost)

	secured.HandleFunc(routes.DashboardSummary, dashboardController.Summary).Methods(http.MethodGet)
	secured.HandleFunc(routes.Visits, dashboardController.Visits).Methods(http.MethodGet)

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("clubrealty-admin-api failed to start:", err)
	}
}
