package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/controller"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/internal/service"
	"workshop_hub_backend/pkg/database"
	"workshop_hub_backend/pkg/logger"
	"workshop_hub_backend/pkg/monitoring"
	"workshop_hub_backend/pkg/security"
	"workshop_hub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	workshop    *repository.WorkshopRepository
	instructor  *repository.InstructorRepository
	assignment  *repository.AssignmentRepository
	enrollment  *repository.EnrollmentRepository
	submission  *repository.SubmissionRepository
	certificate *repository.CertificateRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	workshop    *service.WorkshopService
	assignment  *service.AssignmentService
	enrollment  *service.EnrollmentService
	submission  *service.SubmissionService
	certificate *service.CertificateService
	storage     *service.StorageService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	workshop    *controller.WorkshopController
	assignment  *controller.AssignmentController
	enrollment  *controller.EnrollmentController
	submission  *controller.SubmissionController
	certificate *controller.CertificateController
	storage     *controller.StorageController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		workshop:    repository.NewWorkshopRepository(db),
		instructor:  repository.NewInstructorRepository(db),
		assignment:  repository.NewAssignmentRepository(db),
		enrollment:  repository.NewEnrollmentRepository(db),
		submission:  repository.NewSubmissionRepository(db),
		certificate: repository.NewCertificateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.workshop = service.NewWorkshopService(repos.workshop, repos.instructor, repos.enrollment, repos.user)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.workshop, repos.instructor, repos.enrollment)
	s.enrollment = service.NewEnrollmentService(repos.enrollment, repos.workshop, repos.instructor, repos.user, cfg)
	s.submission = service.NewSubmissionService(repos.submission, repos.assignment, repos.instructor, repos.enrollment, repos.user)
	s.certificate = service.NewCertificateService(
		repos.certificate,
		repos.workshop,
		repos.assignment,
		repos.submission,
		repos.enrollment,
		repos.user,
		rdb,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		workshop:    controller.NewWorkshopController(s.workshop),
		assignment:  controller.NewAssignmentController(s.assignment),
		enrollment:  controller.NewEnrollmentController(s.enrollment),
		submission:  controller.NewSubmissionController(s.submission),
		certificate: controller.NewCertificateController(s.certificate),
		storage:     controller.NewStorageController(s.storage),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 缓存不可用不阻断启动，证书验真退化为直查库
		logger.Log.Warn("Redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("workshop-hub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
