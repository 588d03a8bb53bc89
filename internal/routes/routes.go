package routes

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/farmergpt/internal/advisory"
	"github.com/BruksfildServices01/farmergpt/internal/audit"
	"github.com/BruksfildServices01/farmergpt/internal/chatbot"
	"github.com/BruksfildServices01/farmergpt/internal/config"
	"github.com/BruksfildServices01/farmergpt/internal/handlers"
	infraRepo "github.com/BruksfildServices01/farmergpt/internal/infra/repository"
	"github.com/BruksfildServices01/farmergpt/internal/llm"
	"github.com/BruksfildServices01/farmergpt/internal/metrics"
	"github.com/BruksfildServices01/farmergpt/internal/middleware"
	"github.com/BruksfildServices01/farmergpt/internal/reporting"
	"github.com/BruksfildServices01/farmergpt/internal/token"
	ucAuth "github.com/BruksfildServices01/farmergpt/internal/usecase/auth"
	ucCrop "github.com/BruksfildServices01/farmergpt/internal/usecase/crop"
	ucProfile "github.com/BruksfildServices01/farmergpt/internal/usecase/profile"
	"github.com/BruksfildServices01/farmergpt/internal/weather"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *slog.Logger
	Reporter *reporting.Reporter
	Audit    *audit.Dispatcher
	Denylist token.Denylist

	// LLM is nil when no provider key is configured.
	LLM llm.Client
	// HTTPClient is shared by the outbound gateways.
	HTTPClient *http.Client
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(),
		middleware.Reporting(d.Reporter),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	profileRepo := infraRepo.NewProfileGormRepository(d.DB)
	cropRepo := infraRepo.NewCropGormRepository(d.DB)

	tokens := token.NewService(cfg)

	weatherGateway := weather.NewGateway(cfg, d.HTTPClient, d.Log)
	chatGateway := chatbot.NewGateway(d.LLM, cfg.ProviderTimeout, d.Log, d.Reporter)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(userRepo, tokens, d.Audit, cfg.CheckEmailDomain)
	loginUC := ucAuth.NewLogin(userRepo, tokens)
	refreshUC := ucAuth.NewRefresh(userRepo, tokens, d.Denylist)
	logoutUC := ucAuth.NewLogout(tokens, d.Denylist, d.Audit)

	getProfileUC := ucProfile.NewGetProfile(profileRepo)
	updateProfileUC := ucProfile.NewUpdateProfile(profileRepo, d.Audit, cfg.StrictProfileFields)

	listCropsUC := ucCrop.NewListCrops(cropRepo, profileRepo)
	createCropUC := ucCrop.NewCreateCrop(cropRepo, profileRepo, d.Audit)
	getCropUC := ucCrop.NewGetCrop(cropRepo, profileRepo)
	updateCropUC := ucCrop.NewUpdateCrop(cropRepo, profileRepo, d.Audit)
	deleteCropUC := ucCrop.NewDeleteCrop(cropRepo, profileRepo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, refreshUC, logoutUC)
	meHandler := handlers.NewMeHandler(getProfileUC)
	profileHandler := handlers.NewProfileHandler(getProfileUC, updateProfileUC)
	cropHandler := handlers.NewCropHandler(listCropsUC, createCropUC, getCropUC, updateCropUC, deleteCropUC)
	weatherHandler := handlers.NewWeatherHandler(weatherGateway, cfg.DefaultLocation)
	suggestionHandler := handlers.NewSuggestionHandler(advisory.Default())
	chatbotHandler := handlers.NewChatbotHandler(chatGateway)
	activityHandler := handlers.NewActivityHandler(d.DB, cfg.AppTimezone)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		handle(api, http.MethodPost, "/auth/register", authHandler.Register)
		handle(api, http.MethodPost, "/auth/login", authHandler.Login)
		handle(api, http.MethodPost, "/auth/refresh", authHandler.Refresh)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			handle(secured, http.MethodPost, "/auth/logout", authHandler.Logout)
			handle(secured, http.MethodGet, "/auth/user", meHandler.GetMe)

			handle(secured, http.MethodGet, "/profile", profileHandler.Get)
			handle(secured, http.MethodPut, "/profile", profileHandler.Update)
			handle(secured, http.MethodPatch, "/profile", profileHandler.Update)

			handle(secured, http.MethodGet, "/crops", cropHandler.List)
			handle(secured, http.MethodPost, "/crops", cropHandler.Create)
			handle(secured, http.MethodGet, "/crops/:id", cropHandler.Get)
			handle(secured, http.MethodPut, "/crops/:id", cropHandler.Update)
			handle(secured, http.MethodPatch, "/crops/:id", cropHandler.Patch)
			handle(secured, http.MethodDelete, "/crops/:id", cropHandler.Delete)

			handle(secured, http.MethodGet, "/weather", weatherHandler.Get)
			handle(secured, http.MethodGet, "/suggestions", suggestionHandler.Get)
			handle(secured, http.MethodPost, "/chatbot", chatbotHandler.Ask)

			handle(secured, http.MethodGet, "/activity", activityHandler.List)
		}
	}
}

// handle registers path both with and without a trailing slash.
func handle(g *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	g.Handle(method, path, h)
	g.Handle(method, strings.TrimSuffix(path, "/")+"/", h)
}
