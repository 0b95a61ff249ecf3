package main

import (
	"context"
	"flag"
	"time"

	"github.com/rvbarade2024-dev/tour/internal/config"
	"github.com/rvbarade2024-dev/tour/internal/handler"
	"github.com/rvbarade2024-dev/tour/internal/logger"
	"github.com/rvbarade2024-dev/tour/internal/metrics"
	"github.com/rvbarade2024-dev/tour/internal/notify"
	"github.com/rvbarade2024-dev/tour/internal/repository"
	"github.com/rvbarade2024-dev/tour/internal/service"
	"github.com/rvbarade2024-dev/tour/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "config.yaml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal("не удалось загрузить конфигурацию", "error", err)
	}

	log := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: cfg.App.Name,
	})

	// База данных и миграции
	db, err := repository.Connect(cfg.Database)
	if err != nil {
		log.Fatal("не удалось подключиться к базе данных", "error", err)
	}
	defer db.Close()
	if err := repository.ApplyMigrations(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("не удалось применить миграции", "error", err)
	}

	// Хранилище сессий: Redis, при пустом адресе - память процесса
	var sessions session.Store
	if cfg.Redis.Address != "" {
		client := session.NewRedisClient(cfg.Redis)
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("не удалось подключиться к Redis", "error", err)
		}
		defer client.Close()
		sessions = session.NewRedisStore(client)
	} else {
		log.Warn("Redis не настроен: сессии хранятся в памяти процесса")
		sessions = session.NewMemoryStore()
	}

	// Уведомления менеджерам
	notifier, err := notify.New(cfg.Telegram, log)
	if err != nil {
		log.Fatal("не удалось инициализировать уведомления", "error", err)
	}

	// Репозитории и сервисы
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewPlanRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	authService := service.NewAuthService(userRepo)
	planService := service.NewPlanService(planRepo)
	bookingService := service.NewBookingService(bookingRepo, planRepo, notifier, log)
	exportService := service.NewExportService(bookingRepo, cfg.Exports.SheetName)

	// HTTP-сервер
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.LoadHTMLGlob(cfg.HTTP.TemplateGlob)

	h := handler.NewHandler(authService, planService, bookingService, exportService,
		sessions, log, cfg.Session.CookieName, time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	h.RegisterRoutes(router)

	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	log.Info("запуск HTTP-сервера", "port", cfg.HTTP.Port)
	if err := router.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatal("ошибка запуска сервера", "error", err)
	}
}
