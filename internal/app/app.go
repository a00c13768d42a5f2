package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/coralbay-tech/go-backend/internal/cfg"
	v1Http "github.com/coralbay-tech/go-backend/internal/delivery/v1/http"
	"github.com/coralbay-tech/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/coralbay-tech/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/coralbay-tech/go-backend/internal/repository/minio"
	"github.com/coralbay-tech/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/coralbay-tech/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/coralbay-tech/go-backend/internal/repository/redis"
	redisConv "github.com/coralbay-tech/go-backend/internal/repository/redis/converter/generated"
	"github.com/coralbay-tech/go-backend/internal/usecase"
	"github.com/coralbay-tech/go-backend/pkg/clients"
	"github.com/coralbay-tech/go-backend/pkg/closer"
	"github.com/coralbay-tech/go-backend/pkg/e"
	"github.com/coralbay-tech/go-backend/pkg/logger"
	"github.com/coralbay-tech/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает зависимости приложения и управляет их жизненным циклом.
type App struct {
	cfg            *config.Config
	logger         logger.Logger
	httpSrv        *v1Http.Server
	gracefulCloser *closer.Closer
	shutdownCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const op = "app.NewApp"

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	gracefulCloser := closer.NewCloser(2 * time.Second)
	gracefulCloser.Add("postgres pool", func(ctx context.Context) error {
		db.Close()
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	snapConv := redisConv.NewCatalogSnapshotConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	cartRepo := pgdb.NewCartRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(op, err)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(op, err)
	}
	gracefulCloser.Add("redis client", func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, snapConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(op, err)
	}
	gracefulCloser.Add("kafka producer", func(ctx context.Context) error {
		return producer.Close()
	})

	workerCtx, workerCancel := context.WithCancel(context.Background())
	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	outboxWorker.Start(workerCtx)
	gracefulCloser.Add("outbox worker", func(ctx context.Context) error {
		workerCancel()
		outboxWorker.Stop()
		return nil
	})

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)
	gracefulCloser.Add("minio cleanup", func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, cacheRepo, log)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, orderRepo, outboxRepo, db.Pool, cfg.Delivery, log)
	orderUC := usecase.NewOrderUC(orderRepo, log)
	productUC := usecase.NewProductUC(productRepo, categoryRepo, db.Pool, imagesInfra, cacheRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, orderUC, productUC)

	return &App{
		cfg:            cfg,
		logger:         log,
		httpSrv:        v1Http.NewServer(r, cfg.Http),
		gracefulCloser: gracefulCloser,
		shutdownCancel: shutdownCancel,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или
// фатальной ошибки, после чего закрывает ресурсы в обратном порядке.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer closeCancel()

	if err := a.httpSrv.Stop(closeCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.gracefulCloser.Close(closeCtx); err != nil {
		a.logger.Errorf(err, "resource shutdown error")
	}

	a.shutdownCancel()

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
