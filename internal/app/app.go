package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/config"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/pgrepo"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger

	wg sync.WaitGroup
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает сервис из конфигурации и блокируется до SIGINT/SIGTERM или ошибки HTTP сервера.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"service": a.Config.Service,
		"address": a.Config.RunAddress,
		"kafka":   a.Config.KafkaBrokers != "",
		"redis":   a.Config.RedisAddr != "",
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	switch a.Config.Service {
	case config.ServiceOrders:
		return a.runOrders(notifyCtx, conn)
	case config.ServiceOffers:
		return a.runOffers(notifyCtx, conn)
	default:
		return fmt.Errorf("app run: unknown service %q", a.Config.Service)
	}
}

// serve обслуживает HTTP до отмены ctx, затем останавливает сервер и дожидается фоновых процессов.
func (a *App) serve(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	var result error
	select {
	case <-ctx.Done():
		result = ctx.Err()
	case result = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.WithError(err).Error("http server shutdown")
	}
	return result
}

// goBackground запускает фоновый процесс, завершение которого ждет wait.
func (a *App) goBackground(fn func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		fn()
	}()
}

func (a *App) wait() {
	a.wg.Wait()
}

// newRedis возвращает nil, если адрес redis не задан.
func (a *App) newRedis(ctx context.Context) (*redis.Client, error) {
	if a.Config.RedisAddr == "" {
		return nil, nil //nolint:nilnil
	}
	client := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", a.Config.RedisAddr, err)
	}
	return client, nil
}

func registerRepositories(conn *pgxpool.Pool, factories map[repoargs.RepositoryName]uow.RepositoryFactory) (
	*uow.UnitOfWork,
	error,
) {
	unitOfWork := uow.NewUnitOfWork(conn)
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}
