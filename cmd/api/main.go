package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"camtourvisor/internal/advisor"
	"camtourvisor/internal/cache"
	"camtourvisor/internal/config"
	"camtourvisor/internal/database"
	"camtourvisor/internal/handler"
	"camtourvisor/internal/logger"
	"camtourvisor/internal/metrics"
	"camtourvisor/internal/notify"
	"camtourvisor/internal/repository"
	"camtourvisor/internal/seed"
	"camtourvisor/internal/service"
	"camtourvisor/internal/storage"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}
	logg, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Не удалось создать логгер: %v", err)
	}
	defer logg.Sync()

	if err := run(cfg, logg); err != nil {
		logg.Fatal("API остановлен с ошибкой", zap.Error(err))
	}
}

func run(cfg *config.Config, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Auth.JWTSecret == "" {
		return errors.New("не задан auth.jwt_secret")
	}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.Migrate(ctx, db, cfg.Database.MigrationsDir, logg); err != nil {
		return err
	}

	// Инициализируем репозитории
	destinationRepo := repository.NewDestinationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	savedRepo := repository.NewSavedDestinationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	var destCache service.DestinationCache
	if cfg.Redis.Enabled {
		client := cache.NewRedisClient(cfg.Redis)
		defer client.Close()
		if err := cache.Ping(ctx, client); err != nil {
			logg.Warn("redis недоступен, кэш отключен", zap.Error(err))
		} else {
			destCache = cache.NewDestinationCache(client, cfg.Redis.CacheTTL, logg)
		}
	}

	var notifier service.Notifier = notify.Nop{}
	if cfg.Telegram.BotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			logg.Warn("бот недоступен, уведомления отключены", zap.Error(err))
		} else {
			notifier = notify.NewTelegram(bot)
		}
	}

	images, err := storage.New(cfg.Storage.Root, cfg.Storage.PublicBaseURL)
	if err != nil {
		return err
	}

	// Инициализируем сервисы
	tokens := service.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	destinationService := service.NewDestinationService(destinationRepo, destCache, logg)
	if cfg.Database.Seed {
		catalogue, err := seed.Destinations()
		if err != nil {
			return err
		}
		n, err := destinationService.SeedIfEmpty(ctx, catalogue)
		if err != nil {
			return err
		}
		if n > 0 {
			logg.Info("загружен стартовый каталог направлений", zap.Int("count", n))
		}
	}

	h := handler.NewHandler(handler.Deps{
		Auth:              service.NewAuthService(profileRepo, tokens),
		Admin:             service.NewAdminService(cfg.Admin.Username, cfg.Admin.Password, tokens),
		Destinations:      destinationService,
		Bookings:          service.NewBookingService(bookingRepo, destinationService, profileRepo, notifier, logg),
		Reviews:           service.NewReviewService(reviewRepo, destinationService, destinationService, logg),
		Saved:             service.NewSavedDestinationService(savedRepo, destinationService),
		Profiles:          service.NewProfileService(profileRepo),
		Chat:              service.NewChatService(advisor.Default(), messageRepo, cfg.Chat.HistoryLimit),
		Images:            images,
		ImageBucket:       cfg.Storage.Bucket,
		MaxUploadBytes:    cfg.Storage.MaxUploadMB << 20,
		ChatRatePerSecond: cfg.Chat.RatePerSecond,
		ChatBurst:         cfg.Chat.Burst,
	}, logg)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(logg))
	if strings.HasPrefix(cfg.Storage.PublicBaseURL, "/") {
		router.Static(cfg.Storage.PublicBaseURL, cfg.Storage.Root)
	}
	h.Register(router)

	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
		go metrics.Serve(ctx, cfg.Monitoring.PrometheusPort, logg)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.HTTP.Port), Handler: router}
	errCh := make(chan error, 1)
	go func() {
		logg.Info("HTTP-сервер запущен", zap.String("addr", srv.Addr), zap.String("version", cfg.App.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	case <-ctx.Done():
	}

	logg.Info("остановка HTTP-сервера")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
