package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"camtourvisor/internal/advisor"
	"camtourvisor/internal/bot"
	"camtourvisor/internal/cache"
	"camtourvisor/internal/config"
	"camtourvisor/internal/database"
	"camtourvisor/internal/logger"
	"camtourvisor/internal/notify"
	"camtourvisor/internal/repository"
	"camtourvisor/internal/service"

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
		logg.Fatal("бот остановлен с ошибкой", zap.Error(err))
	}
}

func run(cfg *config.Config, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telegram.BotToken == "" {
		return errors.New("не указан токен бота (telegram.bot_token)")
	}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

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

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return err
	}
	api.Debug = cfg.Telegram.Debug
	logg.Info("запущен бот", zap.String("username", api.Self.UserName))

	messageRepo := repository.NewMessageRepository(db)
	b := bot.New(api,
		service.NewChatService(advisor.Default(), messageRepo, cfg.Chat.HistoryLimit),
		service.NewDestinationService(repository.NewDestinationRepository(db), destCache, logg),
		service.NewSupportService(messageRepo, notify.NewTelegram(api), cfg.Telegram.SupportChatIDs, logg),
		logg)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	b.Run(ctx, updates)
	return nil
}
