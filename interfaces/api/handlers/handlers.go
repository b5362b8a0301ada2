package handlers

import (
	"gorm.io/gorm"

	"search-funnel/domain/services"
	"search-funnel/infrastructure/redis"
	"search-funnel/interfaces/web"
	"search-funnel/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	CategoryService      services.CategoryService
	BlogService          services.BlogService
	RelatedSearchService services.RelatedSearchService
	WebResultService     services.WebResultService
	PreLandingService    services.PreLandingService
	FunnelService        services.FunnelService
	TrackingService      services.TrackingService
	AnalyticsService     services.AnalyticsService
	AuditService         services.AuditService
	ExportService        services.ExportService
	AuthService          services.AuthService
	GenerationService    services.GenerationService
	WizardService        services.WizardService
}

// Infrastructure is what the health check and the site pages read directly.
type Infrastructure struct {
	DB       *gorm.DB
	Redis    *redis.RedisClient
	Tracking TrackingQueue
	Live     LiveClients
	Views    *web.Renderer
}

// Handlers contains all HTTP handlers
type Handlers struct {
	SiteHandler          *SiteHandler
	AuthHandler          *AuthHandler
	CategoryHandler      *CategoryHandler
	BlogHandler          *BlogHandler
	RelatedSearchHandler *RelatedSearchHandler
	WebResultHandler     *WebResultHandler
	PreLandingHandler    *PreLandingHandler
	AnalyticsHandler     *AnalyticsHandler
	WizardHandler        *WizardHandler
	HealthHandler        *HealthHandler
	LogHandler           *LogHandler

	// Short accessors for routes
	Site          *SiteHandler
	Auth          *AuthHandler
	Category      *CategoryHandler
	Blog          *BlogHandler
	RelatedSearch *RelatedSearchHandler
	WebResult     *WebResultHandler
	PreLanding    *PreLandingHandler
	Analytics     *AnalyticsHandler
	Wizard        *WizardHandler
	Health        *HealthHandler
	Log           *LogHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services, infra *Infrastructure, cfg *config.Config) *Handlers {
	siteHandler := NewSiteHandler(services.FunnelService, services.TrackingService, infra.Views)
	authHandler := NewAuthHandler(services.AuthService, cfg.Admin.ConsoleURL, cfg.Tracking.SecureCookie)
	categoryHandler := NewCategoryHandler(services.CategoryService)
	blogHandler := NewBlogHandler(services.BlogService)
	relatedSearchHandler := NewRelatedSearchHandler(services.RelatedSearchService)
	webResultHandler := NewWebResultHandler(services.WebResultService)
	preLandingHandler := NewPreLandingHandler(services.PreLandingService)
	analyticsHandler := NewAnalyticsHandler(services.AnalyticsService, services.ExportService, services.AuditService)
	wizardHandler := NewWizardHandler(services.WizardService, services.GenerationService)
	healthHandler := NewHealthHandler(infra.DB, infra.Redis, infra.Tracking, infra.Live)
	logHandler := NewLogHandler()

	return &Handlers{
		SiteHandler:          siteHandler,
		AuthHandler:          authHandler,
		CategoryHandler:      categoryHandler,
		BlogHandler:          blogHandler,
		RelatedSearchHandler: relatedSearchHandler,
		WebResultHandler:     webResultHandler,
		PreLandingHandler:    preLandingHandler,
		AnalyticsHandler:     analyticsHandler,
		WizardHandler:        wizardHandler,
		HealthHandler:        healthHandler,
		LogHandler:           logHandler,

		// Short accessors
		Site:          siteHandler,
		Auth:          authHandler,
		Category:      categoryHandler,
		Blog:          blogHandler,
		RelatedSearch: relatedSearchHandler,
		WebResult:     webResultHandler,
		PreLanding:    preLandingHandler,
		Analytics:     analyticsHandler,
		Wizard:        wizardHandler,
		Health:        healthHandler,
		Log:           logHandler,
	}
}
