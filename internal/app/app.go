package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skill_quiz_backend/internal/config"
	"skill_quiz_backend/internal/controller"
	"skill_quiz_backend/internal/middleware"
	"skill_quiz_backend/internal/repository"
	"skill_quiz_backend/internal/service"
	"skill_quiz_backend/pkg/database"
	"skill_quiz_backend/pkg/logger"
	"skill_quiz_backend/pkg/monitoring"
	"skill_quiz_backend/pkg/security"
	"skill_quiz_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// api_calls 日志只按天聚合读取，保留30天足够
const apiCallRetention = 30 * 24 * time.Hour

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user      *repository.UserRepository
	userSkill *repository.UserSkillRepository
	question  *repository.QuestionRepository
	apiCall   *repository.ApiCallRepository
}

type services struct {
	ai       *service.AIService
	journey  *service.JourneyService
	quiz     *service.QuizService
	progress *service.ProgressService
	user     *service.UserService
	question *service.QuestionService
}

type controllers struct {
	quiz     *controller.QuizController
	user     *controller.UserController
	progress *controller.ProgressController
	question *controller.QuestionController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		userSkill: repository.NewUserSkillRepository(db),
		question:  repository.NewQuestionRepository(db),
		apiCall:   repository.NewApiCallRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.journey = service.NewJourneyService(s.ai, repos.apiCall)
	s.quiz = service.NewQuizService(repos.user, repos.userSkill, repos.apiCall, s.journey, cfg.Quota.DailyLimit)
	s.progress = service.NewProgressService(repos.userSkill)
	s.user = service.NewUserService(repos.user, repos.userSkill)
	s.question = service.NewQuestionService(repos.question, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		quiz:     controller.NewQuizController(s.quiz),
		user:     controller.NewUserController(s.user),
		progress: controller.NewProgressController(s.progress),
		question: controller.NewQuestionController(s.question),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(middleware.RequestID())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(repos *repositories) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := repos.apiCall.DeleteOlderThan(time.Now().Add(-apiCallRetention))
			if err != nil {
				logger.Log.Error("api call log pruning failed", zap.Error(err))
				continue
			}
			if deleted > 0 {
				logger.Log.Info("pruned api call log", zap.Int64("rows", deleted))
			}
		}
	}()
}

// ApplyConfig 配置热更新回调，仅覆盖可在线调整的参数
func (a *App) ApplyConfig(cfg *config.Config) {
	if a.services == nil {
		return
	}
	a.services.quiz.SetDailyQuota(cfg.Quota.DailyLimit)
	logger.Log.Info("config reloaded", zap.Int("daily_quota", cfg.Quota.DailyLimit))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skill-quiz", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	app.startBackgroundTasks(repos)

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

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
