package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/eventbus"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/pgrepo"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service/tokens"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/api"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/consumer"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/worker"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

func (a *App) runOffers(ctx context.Context, conn *pgxpool.Pool) error {
	unitOfWork, uowErr := registerRepositories(conn, map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.OfferRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOfferRepository(dbtx)
		},
	})
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	m := metrics.New(string(a.Config.Service))

	approvalTokens, tokensErr := tokens.NewApprovals([]byte(a.Config.ApprovalTokenKey))
	if tokensErr != nil {
		return fmt.Errorf("app run: %s", tokensErr.Error())
	}

	bus := eventbus.NewClient(a.Config.KafkaBrokers, a.Config.KafkaTopicPrefix)
	publisher := eventbus.NewPublisher(bus, m, a.Logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			a.Logger.WithError(err).Warn("close publisher")
		}
	}()

	services, sErr := service.OffersFactory(unitOfWork, approvalTokens, publisher, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.NewOffersRouter(api.OffersRouterArgs{
		Logger:       a.Logger,
		Metrics:      m,
		OfferService: services.OfferService,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	ordersCreated := consumer.NewOrdersCreated(services.OfferService, a.Logger)
	subscriber := eventbus.NewSubscriber(bus, events.TypeOrderCreated, a.Config.KafkaGroupID, m, a.Logger).
		SetMaxRequeues(a.Config.EventMaxRequeues)
	defer func() {
		if err := subscriber.Close(); err != nil {
			a.Logger.WithError(err).Warn("close subscriber")
		}
	}()

	sweeper := worker.NewExpirySweeper(services.OfferService, m, a.Logger).
		SetInterval(a.Config.ExpirySweepInterval).
		SetLimitPerIteration(a.Config.ExpirySweepLimit)

	bgCtx, cancel := context.WithCancel(ctx)
	defer a.wait()
	defer cancel()

	a.goBackground(func() {
		if err := subscriber.Run(bgCtx, ordersCreated.Handle); err != nil {
			a.Logger.WithError(err).Error("order.created subscriber stopped")
		}
	})
	a.goBackground(func() {
		sweeper.Run(bgCtx)
	})

	return a.serve(ctx, router)
}
