package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopbot/internal/bot"
	"shopbot/internal/config"
	"shopbot/internal/domain/model"
	"shopbot/internal/infra/db"
	infraRepo "shopbot/internal/infra/repository"
	"shopbot/internal/server"
	"shopbot/internal/session"
	"shopbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	// スキーマは冪等に作る
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate failed")
	}

	// Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	// Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, cartRepo, productRepo, idGen, clock)

	sessions := session.NewManager()

	tgBot, err := bot.New(cfg, log, sessions, catalogUC, cartUC, checkoutUC)
	if err != nil {
		log.Fatal().Err(err).Msg("bot init failed")
	}

	// ヘルスチェック用HTTP
	addr := ":" + cfg.Port
	if cfg.Port[0] == ':' {
		addr = cfg.Port
	}
	go func() {
		if err := server.Start(addr); err != nil {
			log.Error().Err(err).Msg("health server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tgBot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
}
