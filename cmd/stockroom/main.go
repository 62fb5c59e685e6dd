package main

import (
	"context"
	"os"

	"github.com/angelmondragon/stockroom/internal/alerts"
	"github.com/angelmondragon/stockroom/internal/orders"
	"github.com/angelmondragon/stockroom/internal/shell"
	"github.com/angelmondragon/stockroom/internal/stock"
	"github.com/angelmondragon/stockroom/internal/suppliers"
	"github.com/angelmondragon/stockroom/pkg/config"
	"github.com/angelmondragon/stockroom/pkg/db"
	"github.com/angelmondragon/stockroom/pkg/logger"
	"github.com/angelmondragon/stockroom/pkg/migrate"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "stockroom"})

	if err := godotenv.Load(); err != nil {
		logg.Debug(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "stockroom",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRun(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
		os.Exit(1)
	}

	alertsService, err := alerts.NewService(alerts.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create alerts service", err)
		os.Exit(1)
	}

	stockService, err := stock.NewService(stock.NewRepository(dbClient.DB()), alertsService)
	if err != nil {
		logg.Error(context.Background(), "failed to create stock service", err)
		os.Exit(1)
	}

	suppliersService, err := suppliers.NewService(suppliers.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create suppliers service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Repo:       orders.NewRepository(dbClient.DB()),
		Transactor: dbClient,
		Receipts:   stockService,
		Items:      stockService,
		Suppliers:  suppliersService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	sh, err := shell.New(shell.Params{
		In:        os.Stdin,
		Out:       os.Stdout,
		Logger:    logg,
		Stock:     stockService,
		Suppliers: suppliersService,
		Orders:    ordersService,
		Alerts:    alertsService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create shell", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":    cfg.App.Env,
		"driver": cfg.DB.Driver,
	})
	logg.Info(ctx, "starting inventory shell")

	if err := sh.Run(ctx); err != nil {
		logg.Error(ctx, "shell stopped unexpectedly", err)
		os.Exit(1)
	}
}
