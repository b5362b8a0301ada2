package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"search-funnel/application/serviceimpl"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/infrastructure/gemini"
	"search-funnel/infrastructure/geoip"
	"search-funnel/infrastructure/oauth"
	"search-funnel/infrastructure/postgres"
	"search-funnel/infrastructure/redis"
	"search-funnel/infrastructure/storage"
	"search-funnel/infrastructure/websocket"
	"search-funnel/infrastructure/worker"
	"search-funnel/interfaces/api/handlers"
	"search-funnel/interfaces/web"
	"search-funnel/pkg/config"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redis.RedisClient
	EventScheduler scheduler.EventScheduler
	Hub            *websocket.Hub
	Views          *web.Renderer

	// Repositories
	CategoryRepository        repositories.CategoryRepository
	BlogRepository            repositories.BlogRepository
	RelatedSearchRepository   repositories.RelatedSearchRepository
	WebResultRepository       repositories.WebResultRepository
	PreLandingRepository      repositories.PreLandingRepository
	AnalyticsRepository       repositories.AnalyticsRepository
	EmailSubmissionRepository repositories.EmailSubmissionRepository
	CascadeRepository         repositories.CascadeRepository
	FunnelRepository          repositories.FunnelRepository

	// Services
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

	// Workers
	TrackingWorker *worker.TrackingWorker

	// Clients (nil when not configured)
	GeminiClient *gemini.GeminiClient
	GoogleOAuth  *oauth.GoogleOAuth
	ImageStore   services.ImageStore
}

// NewContainer takes the loaded config; the logger is expected to be
// initialized from it already.
func NewContainer(cfg *config.Config) *Container {
	return &Container{Config: cfg}
}

// Initialize wires everything the HTTP server needs.
func (c *Container) Initialize() error {
	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()

	if err := c.initWorkers(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

// InitializeData is the subset used by the operator CLI: config, database
// and repositories, without Redis, workers or the scheduler.
func (c *Container) InitializeData() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	c.DB = db

	c.initRepositories()
	c.initContentServices()
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)

	c.RedisClient = redis.NewRedisClient(c.Config.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.RedisClient.Ping(ctx); err != nil {
		logger.StartupWarn("redis_connection_failed", "Redis connection failed", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Startup("redis_connected", "Redis connected", nil)
	}

	c.Hub = websocket.NewHub()

	views, err := web.NewRenderer(c.Config.App.SiteName)
	if err != nil {
		return err
	}
	c.Views = views

	// Google OAuth
	googleOAuth := oauth.NewGoogleOAuth(c.Config.Google)
	if err := googleOAuth.ValidateConfig(); err != nil {
		logger.StartupWarn("google_oauth_not_configured", "Google OAuth not configured", map[string]interface{}{"error": err.Error()})
	} else {
		c.GoogleOAuth = googleOAuth
		logger.Startup("google_oauth_initialized", "Google OAuth initialized", nil)
	}

	// Gemini
	if c.Config.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewGeminiClient(c.Config.Gemini)
		if err != nil {
			logger.StartupWarn("gemini_init_failed", "Failed to initialize Gemini client", map[string]interface{}{"error": err.Error()})
		} else {
			c.GeminiClient = geminiClient
			logger.Startup("gemini_initialized", "Gemini client initialized", map[string]interface{}{"model": c.Config.Gemini.TextModel})
		}
	} else {
		logger.StartupWarn("gemini_not_configured", "Gemini API key not configured, generation disabled", nil)
	}

	// Image storage
	if c.Config.Storage.Enabled() {
		s3Storage, err := storage.NewS3Storage(context.Background(), c.Config.Storage)
		if err != nil {
			return err
		}
		c.ImageStore = s3Storage
		logger.Startup("storage_initialized", "S3 storage initialized", map[string]interface{}{"bucket": c.Config.Storage.Bucket})
	} else {
		c.ImageStore = storage.DataURLStorage{}
		logger.StartupWarn("storage_not_configured", "S3 not configured, images are inlined as data URLs", nil)
	}

	return nil
}

func (c *Container) initRepositories() {
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.BlogRepository = postgres.NewBlogRepository(c.DB)
	c.RelatedSearchRepository = postgres.NewRelatedSearchRepository(c.DB)
	c.WebResultRepository = postgres.NewWebResultRepository(c.DB)
	c.PreLandingRepository = postgres.NewPreLandingRepository(c.DB)
	c.AnalyticsRepository = postgres.NewAnalyticsRepository(c.DB)
	c.EmailSubmissionRepository = postgres.NewEmailSubmissionRepository(c.DB)
	c.CascadeRepository = postgres.NewCascadeRepository(c.DB)
	c.FunnelRepository = postgres.NewFunnelRepository(c.DB)
	logger.Startup("repositories_initialized", "Repositories initialized", nil)
}

func (c *Container) initContentServices() {
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.BlogService = serviceimpl.NewBlogService(c.BlogRepository, c.CategoryRepository, c.CascadeRepository)
	c.RelatedSearchService = serviceimpl.NewRelatedSearchService(c.RelatedSearchRepository, c.BlogRepository, c.CascadeRepository)
	c.WebResultService = serviceimpl.NewWebResultService(c.WebResultRepository, c.RelatedSearchRepository)
	c.PreLandingService = serviceimpl.NewPreLandingService(c.PreLandingRepository, c.RelatedSearchRepository)
	c.AnalyticsService = serviceimpl.NewAnalyticsService(c.AnalyticsRepository, c.EmailSubmissionRepository)
	c.AuditService = serviceimpl.NewAuditService(c.FunnelRepository)
	c.ExportService = serviceimpl.NewExportService(
		c.CategoryRepository,
		c.BlogRepository,
		c.RelatedSearchRepository,
		c.WebResultRepository,
		c.PreLandingRepository,
		c.AnalyticsRepository,
		c.EmailSubmissionRepository,
	)
}

func (c *Container) initWorkers() error {
	var geo services.CountryResolver = geoip.NoopResolver{}
	if c.Config.GeoIP.Enabled {
		geo = geoip.NewGeoClient(c.Config.GeoIP, c.RedisClient)
	}

	c.TrackingWorker = worker.NewTrackingWorker(
		c.AnalyticsRepository,
		c.EmailSubmissionRepository,
		c.Hub,
		geo,
		c.Config.Tracking.QueueSize,
		c.Config.Tracking.Workers,
	)
	c.TrackingWorker.Start()
	return nil
}

func (c *Container) initServices() error {
	c.initContentServices()

	c.FunnelService = serviceimpl.NewFunnelService(
		c.CategoryRepository,
		c.BlogRepository,
		c.RelatedSearchRepository,
		c.WebResultRepository,
		c.PreLandingRepository,
	)
	c.TrackingService = serviceimpl.NewTrackingService(c.TrackingWorker)

	// Optional clients go in as untyped nil so the services see a nil interface
	var google services.GoogleIdentityProvider
	if c.GoogleOAuth != nil {
		google = c.GoogleOAuth
	}
	c.AuthService = serviceimpl.NewAuthService(c.Config.Admin, c.Config.JWT, google)

	var generator services.Generator
	if c.GeminiClient != nil {
		generator = c.GeminiClient
	}
	c.GenerationService = serviceimpl.NewGenerationService(generator, c.ImageStore, c.Config.Gemini)

	drafts := redis.NewDraftStore(c.RedisClient, c.Config.Wizard.DraftTTL)
	c.WizardService = serviceimpl.NewWizardService(
		drafts,
		c.GenerationService,
		c.CategoryRepository,
		c.BlogRepository,
		c.FunnelRepository,
	)

	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

func (c *Container) initScheduler() error {
	if !c.Config.Scheduler.Enabled {
		logger.StartupWarn("scheduler_disabled", "Scheduler disabled", nil)
		return nil
	}

	c.EventScheduler = scheduler.NewEventScheduler()
	if err := scheduler.RegisterFunnelJobs(c.EventScheduler, c.Config.Scheduler, c.AuditService, c.AnalyticsService); err != nil {
		return err
	}
	c.EventScheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Startup("cleanup_started", "Starting cleanup...", nil)

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	// Drains queued events before the database goes away
	if c.TrackingWorker != nil && c.TrackingWorker.IsRunning() {
		c.TrackingWorker.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupWarn("redis_close_failed", "Failed to close Redis connection", map[string]interface{}{"error": err.Error()})
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				return err
			}
		}
	}

	logger.Startup("cleanup_completed", "Cleanup completed", nil)
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		CategoryService:      c.CategoryService,
		BlogService:          c.BlogService,
		RelatedSearchService: c.RelatedSearchService,
		WebResultService:     c.WebResultService,
		PreLandingService:    c.PreLandingService,
		FunnelService:        c.FunnelService,
		TrackingService:      c.TrackingService,
		AnalyticsService:     c.AnalyticsService,
		AuditService:         c.AuditService,
		ExportService:        c.ExportService,
		AuthService:          c.AuthService,
		GenerationService:    c.GenerationService,
		WizardService:        c.WizardService,
	}
}

func (c *Container) GetHandlerInfrastructure() *handlers.Infrastructure {
	return &handlers.Infrastructure{
		DB:       c.DB,
		Redis:    c.RedisClient,
		Tracking: c.TrackingWorker,
		Live:     c.Hub,
		Views:    c.Views,
	}
}
