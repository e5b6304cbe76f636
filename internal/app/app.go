package app

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exam_coach_client/internal/config"
	"exam_coach_client/internal/controller"
	"exam_coach_client/internal/service"
	"exam_coach_client/pkg/logger"
	"exam_coach_client/pkg/monitoring"
	"exam_coach_client/pkg/security"
	"exam_coach_client/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	services *services

	shellCancel context.CancelFunc
}

type services struct {
	gateway *service.GatewayService
	reports *service.ReportService
	bridge  *service.SessionBridge
	uploads *service.UploadService
	shell   *service.ShellService
}

type controllers struct {
	upload  *controller.UploadController
	student *controller.StudentController
	plan    *controller.PlanController
	chat    *controller.ChatController
	shell   *controller.ShellController
	health  *controller.HealthController
}

func (a *App) initServices(cfg *config.Config) *services {
	s := &services{}

	s.gateway = service.NewGatewayService(cfg.Backend)
	s.reports = service.NewReportService(rand.New(rand.NewSource(time.Now().UnixNano())))
	s.bridge = service.NewSessionBridge()
	s.uploads = service.NewUploadService(s.gateway, s.reports, s.bridge, cfg.Demo)
	s.shell = service.NewShellService(s.uploads, s.gateway, cfg.Demo)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		upload:  controller.NewUploadController(s.uploads, s.shell),
		student: controller.NewStudentController(s.shell),
		plan:    controller.NewPlanController(s.shell),
		chat:    controller.NewChatController(s.shell),
		shell:   controller.NewShellController(s.shell),
		health:  controller.NewHealthController(a.Config),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{Config: cfg}

	services := app.initServices(cfg)
	app.services = services
	controllers := app.initControllers(services)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("exam-coach-client", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	// The shell is the single subscriber of the pipeline's ready channel.
	ctx, cancel := context.WithCancel(context.Background())
	app.shellCancel = cancel
	go services.shell.Run(ctx)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	a.shellCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
