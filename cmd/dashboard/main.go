package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	appanalytics "github.com/jhoicas/bizdash/internal/application/analytics"
	"github.com/jhoicas/bizdash/internal/application/receipt"
	"github.com/jhoicas/bizdash/internal/application/sales"
	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/application/session"
	"github.com/jhoicas/bizdash/internal/domain/repository"
	"github.com/jhoicas/bizdash/internal/infrastructure/backend"
	"github.com/jhoicas/bizdash/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/bizdash/internal/infrastructure/pdf"
	"github.com/jhoicas/bizdash/internal/infrastructure/postgres"
	inforeceipt "github.com/jhoicas/bizdash/internal/infrastructure/receipt"
	"github.com/jhoicas/bizdash/internal/infrastructure/redisstore"
	"github.com/jhoicas/bizdash/internal/infrastructure/s3archive"
	"github.com/jhoicas/bizdash/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/bizdash/internal/interfaces/http"
	"github.com/jhoicas/bizdash/pkg/config"
	"github.com/jhoicas/bizdash/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// PostgreSQL sólo si el estado o el diario de recibos lo necesitan.
	var pool *pgxpool.Pool
	if cfg.Storage.Driver == config.StoragePostgres || cfg.Receipt.Journal {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
	}

	var storage repository.StateStorage
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		rdb, err := redisstore.Open(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisPassword, cfg.Storage.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		storage = redisstore.New(rdb, cfg.Storage.RedisPrefix)
	case config.StoragePostgres:
		storage = postgres.NewStateStorage(pool, postgres.NewTxRunner(pool))
	default:
		var opts []filestore.Option
		if cfg.Storage.EncryptionKey != "" {
			opts = append(opts, filestore.WithEncryptionKey(cfg.Storage.EncryptionKey))
		}
		fs, err := filestore.New(cfg.Storage.Path, opts...)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento local")
		}
		storage = fs
	}

	// El cliente lee el token de la sesión en cada petición.
	var store *session.Store
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout,
		backend.TokenFunc(func() string { return store.Token() }), log)
	api := backend.NewAPI(client)
	sbAPI := backend.NewServiceBillingAPI(client)
	store = session.NewStore(storage, api, log)

	// Las rutas protegidas responden 503 hasta que termine la restauración.
	go func() {
		if err := store.Restore(ctx); err != nil {
			log.Error().Err(err).Msg("restaurar sesión")
		}
	}()

	analyticsUC := appanalytics.NewUseCase(api, api, log)
	salesUC := sales.NewUseCase(api, log)
	settingsUC := sales.NewSettingsUseCase(api, store, log)
	catalogUC := servicebilling.NewCatalogUseCase(sbAPI)
	workflowUC := servicebilling.NewWorkflowUseCase(sbAPI, log)
	billingUC := servicebilling.NewBillingUseCase(sbAPI, log)

	var receiptOpts []receipt.Option
	if cfg.Receipt.Journal {
		receiptOpts = append(receiptOpts, receipt.WithJournal(postgres.NewReceiptJournal(pool)))
	}
	if cfg.Receipt.ArchiveEnabled() {
		receiptOpts = append(receiptOpts, receipt.WithArchiver(s3archive.New(s3archive.Config{
			Bucket:    cfg.Receipt.ArchiveBucket,
			Region:    cfg.Receipt.S3Region,
			Endpoint:  cfg.Receipt.S3Endpoint,
			AccessKey: cfg.Receipt.S3AccessKey,
			SecretKey: cfg.Receipt.S3SecretKey,
		})))
	}
	receiptUC := receipt.NewUseCase(billingUC, settingsUC, cfg.Receipt.Footer, []receipt.Renderer{
		inforeceipt.NewHTMLRenderer(),
		inforeceipt.NewTextRenderer(),
		infrapdf.NewReceiptRenderer(),
	}, log, receiptOpts...)

	if cfg.Session.ExpiryCron != "" {
		watcher, err := scheduler.NewExpiryWatcher(cfg.Session.ExpiryCron, store, log)
		if err != nil {
			log.Fatal().Err(err).Msg("SESSION_EXPIRY_CRON inválido")
		}
		watcher.Start()
		defer watcher.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:     store,
		AnalyticsUC: analyticsUC,
		SalesUC:     salesUC,
		SettingsUC:  settingsUC,
		CatalogUC:   catalogUC,
		WorkflowUC:  workflowUC,
		BillingUC:   billingUC,
		ReceiptUC:   receiptUC,
		AppName:     cfg.App.Name,
		SwaggerFile: "./docs/swagger.json",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
