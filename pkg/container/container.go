package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"hypehouse-backend/internal/config"
	infraCache "hypehouse-backend/internal/infrastructure/cache"
	"hypehouse-backend/internal/infrastructure/database"
	"hypehouse-backend/internal/infrastructure/storage"
	"hypehouse-backend/pkg/cache"
	"hypehouse-backend/pkg/jwt"
	"hypehouse-backend/pkg/metrics"

	artistHandler "hypehouse-backend/internal/domains/artist/handler"
	artistRepo "hypehouse-backend/internal/domains/artist/repository"
	artistService "hypehouse-backend/internal/domains/artist/service"
	authHandler "hypehouse-backend/internal/domains/auth/handler"
	authRepo "hypehouse-backend/internal/domains/auth/repository"
	authService "hypehouse-backend/internal/domains/auth/service"
	dashboardHandler "hypehouse-backend/internal/domains/dashboard/handler"
	dashboardRepo "hypehouse-backend/internal/domains/dashboard/repository"
	dashboardService "hypehouse-backend/internal/domains/dashboard/service"
	demoHandler "hypehouse-backend/internal/domains/demo/handler"
	demoRepo "hypehouse-backend/internal/domains/demo/repository"
	demoService "hypehouse-backend/internal/domains/demo/service"
	eventHandler "hypehouse-backend/internal/domains/event/handler"
	eventRepo "hypehouse-backend/internal/domains/event/repository"
	eventService "hypehouse-backend/internal/domains/event/service"
	mediaHandler "hypehouse-backend/internal/domains/media/handler"
	mediaService "hypehouse-backend/internal/domains/media/service"
	promoHandler "hypehouse-backend/internal/domains/promo/handler"
	promoRepo "hypehouse-backend/internal/domains/promo/repository"
	promoService "hypehouse-backend/internal/domains/promo/service"
	releaseHandler "hypehouse-backend/internal/domains/release/handler"
	releaseRepo "hypehouse-backend/internal/domains/release/repository"
	releaseService "hypehouse-backend/internal/domains/release/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependencies của API.
// Thứ tự init: Config → Infrastructure → Repositories → Services → Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache // Redis, fallback in-memory khi Redis không kết nối được
	Storage    *storage.MinIOStorage
	Images     *storage.ImageProcessor
	JWTManager *jwt.Manager
	Metrics    *metrics.Metrics

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthRepo      authRepo.RepositoryInterface
	ArtistRepo    artistRepo.RepositoryInterface
	ReleaseRepo   releaseRepo.RepositoryInterface
	EventRepo     eventRepo.RepositoryInterface
	PromoRepo     promoRepo.RepositoryInterface
	DemoRepo      demoRepo.RepositoryInterface
	DashboardRepo dashboardRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthService      authService.ServiceInterface
	ArtistService    artistService.ServiceInterface
	ReleaseService   releaseService.ServiceInterface
	EventService     eventService.ServiceInterface
	PromoService     promoService.ServiceInterface
	DemoService      demoService.ServiceInterface
	MediaService     mediaService.ServiceInterface
	DashboardService dashboardService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthHandler      *authHandler.AuthHandler
	ArtistHandler    *artistHandler.ArtistHandler
	ReleaseHandler   *releaseHandler.ReleaseHandler
	EventHandler     *eventHandler.EventHandler
	PromoHandler     *promoHandler.PromoHandler
	DemoHandler      *demoHandler.DemoHandler
	MediaHandler     *mediaHandler.MediaHandler
	DashboardHandler *dashboardHandler.DashboardHandler
}

// NewContainer tạo toàn bộ dependency graph.
// Nếu thứ tự sai → panic (nil pointer dereference)
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := cfg.Database.PoolConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		// Redis không critical: public cache và login throttling chạy in-memory (mỗi instance riêng)
		log.Printf("⚠️  Redis connection failed, using in-memory cache: %v", err)
		_ = redisCache.Close()
		c.Cache = cache.NewMemoryCache()
	} else {
		c.Cache = redisCache
		log.Println("✅ Redis connected")
	}

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store
	c.Images = storage.NewImageProcessor(cfg.Media.ThumbnailSize)
	log.Printf("✅ MinIO bucket ready (%s)", cfg.MinIO.Bucket)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	c.Metrics = metrics.New(cfg.Metrics.Prefix)

	// ========================================
	// STEP 5: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// initRepositories: mọi repository dùng chung pgxpool
func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthRepo = authRepo.NewPostgresRepository(pool)
	c.ArtistRepo = artistRepo.NewPostgresRepository(pool)
	c.ReleaseRepo = releaseRepo.NewPostgresRepository(pool)
	c.EventRepo = eventRepo.NewPostgresRepository(pool)
	c.PromoRepo = promoRepo.NewPostgresRepository(pool)
	c.DemoRepo = demoRepo.NewPostgresRepository(pool)
	c.DashboardRepo = dashboardRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	ttl := c.Config.Cache.PublicTTL

	c.AuthService = authService.NewAuthService(
		c.AuthRepo,
		c.Cache,
		c.JWTManager,
		authService.Config{
			MaxFailedLogins: c.Config.Auth.MaxFailedLogins,
			LockoutWindow:   c.Config.Auth.LockoutWindow,
		},
	)

	c.ArtistService = artistService.NewArtistService(c.ArtistRepo, c.Cache, ttl)
	c.ReleaseService = releaseService.NewReleaseService(c.ReleaseRepo, c.Cache, ttl)
	c.EventService = eventService.NewEventService(c.EventRepo, c.Cache, ttl)
	c.PromoService = promoService.NewPromoService(c.PromoRepo, c.Cache, ttl)
	c.DemoService = demoService.NewDemoService(c.DemoRepo)
	c.DashboardService = dashboardService.NewDashboardService(c.DashboardRepo)

	c.MediaService = mediaService.NewMediaService(c.Storage, c.Images, mediaService.Config{
		MaxUploadBytes: c.Config.Media.MaxUploadBytes(),
		ListLimit:      c.Config.Media.ListLimit,
	})
}

func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService, c.Metrics)
	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	// Màn hình music cần dropdown artist → cross-domain dependency
	c.ReleaseHandler = releaseHandler.NewReleaseHandler(c.ReleaseService, c.ArtistService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.PromoHandler = promoHandler.NewPromoHandler(c.PromoService)
	c.DemoHandler = demoHandler.NewDemoHandler(c.DemoService, c.Metrics)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService, c.Metrics)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
