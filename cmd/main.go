package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/CoorayNTL/ead-backend/docs"
	"github.com/CoorayNTL/ead-backend/internal/app"
	"github.com/CoorayNTL/ead-backend/internal/config"
	"github.com/CoorayNTL/ead-backend/internal/handler"
	"github.com/CoorayNTL/ead-backend/internal/middleware"
	"github.com/CoorayNTL/ead-backend/internal/postgres"
	"github.com/CoorayNTL/ead-backend/internal/repo"
	"github.com/CoorayNTL/ead-backend/internal/service"
	"github.com/CoorayNTL/ead-backend/pkg/cache"
	"github.com/CoorayNTL/ead-backend/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           EAD Backend API
// @version         1.0
// @description     Документация HTTP API заказов и каталога
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to init schema", postgres.Init(db))
	logger.Info("postgres connected")

	ordersRepo := repo.NewOrdersRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	txManager := trm.NewManager(db)
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, ordersRepo, catalogRepo, cache)
	productService := service.NewProductService(logger, catalogRepo)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	ordersHandler := handler.NewOrdersHandler(logger, orderService, middleware.Auth(conf.JWT.Secret))
	productsHandler := handler.NewProductsHandler(logger, productService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(ordersHandler, productsHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(cache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
