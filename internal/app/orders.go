package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/eventbus"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/payments"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/pgrepo"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/resilience"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/api"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/collab"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/consumer"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

const (
	providerManual = "manual"
	providerStripe = "stripe"
)

func (a *App) runOrders(ctx context.Context, conn *pgxpool.Pool) error {
	unitOfWork, uowErr := registerRepositories(conn, map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRepository(dbtx)
		},
	})
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	m := metrics.New(string(a.Config.Service))
	policy := a.Config.Retry.Policy()

	bus := eventbus.NewClient(a.Config.KafkaBrokers, a.Config.KafkaTopicPrefix)
	publisher := eventbus.NewPublisher(bus, m, a.Logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			a.Logger.WithError(err).Warn("close publisher")
		}
	}()

	gateway, gatewayErr := a.paymentGateway(m, policy)
	if gatewayErr != nil {
		return fmt.Errorf("app run: %s", gatewayErr.Error())
	}

	services, sErr := service.OrdersFactory(unitOfWork, service.OrderServiceArgs{
		Offers:      collab.NewOffersClient(a.collabClient("offers", a.Config.OffersServiceURL, policy, m)),
		Inventory:   collab.NewInventoryClient(a.collabClient("inventory", a.Config.InventoryServiceURL, policy, m)),
		Shipping:    collab.NewShippingClient(a.collabClient("shipping", a.Config.ShippingServiceURL, policy, m)),
		Publisher:   publisher,
		AutoConfirm: a.Config.AutoConfirmOrders,
		Logger:      a.Logger,
	}, gateway)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.NewOrdersRouter(api.OrdersRouterArgs{
		Logger:         a.Logger,
		Metrics:        m,
		OrderService:   services.OrderService,
		PaymentService: services.PaymentService,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	rdb, redisErr := a.newRedis(ctx)
	if redisErr != nil {
		return fmt.Errorf("app run: %s", redisErr.Error())
	}
	var dedup consumer.Deduper
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				a.Logger.WithError(err).Warn("close redis")
			}
		}()
		dedup = consumer.NewRedisDeduper(rdb, string(a.Config.Service))
	}

	approvals := consumer.NewApprovals(dedup, m, a.Logger).SetDedupTTL(a.Config.ApprovalDedupTTL)
	subscriber := eventbus.NewSubscriber(bus, events.TypeOfferApproved, a.Config.KafkaGroupID, m, a.Logger).
		SetMaxRequeues(a.Config.EventMaxRequeues)
	defer func() {
		if err := subscriber.Close(); err != nil {
			a.Logger.WithError(err).Warn("close subscriber")
		}
	}()

	bgCtx, cancel := context.WithCancel(ctx)
	defer a.wait()
	defer cancel()

	a.goBackground(func() {
		if err := subscriber.Run(bgCtx, approvals.Handle); err != nil {
			a.Logger.WithError(err).Error("offer.approved subscriber stopped")
		}
	})

	return a.serve(ctx, router)
}

// paymentGateway собирает шлюзы. Ручной провайдер доступен всегда, stripe только с ключом API.
func (a *App) paymentGateway(m *metrics.Metrics, policy resilience.Policy) (*payments.Manager, error) {
	providers := map[string]payments.Provider{
		providerManual: payments.NewManualProvider(),
	}
	if a.Config.StripeAPIKey != "" {
		stripeProvider, err := payments.NewStripeProvider(payments.StripeProviderConfig{
			APIKey:    a.Config.StripeAPIKey,
			AccountID: a.Config.StripeAccountID,
			Logger:    a.Logger,
		})
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		providers[providerStripe] = stripeProvider
	}

	return payments.NewManager(providers, a.Logger, //nolint:wrapcheck
		payments.WithDefaultProvider(a.Config.DefaultPaymentProvider),
		payments.WithPolicy(policy),
		payments.WithMetrics(m),
	)
}

func (a *App) collabClient(name, baseURL string, policy resilience.Policy, m *metrics.Metrics) *collab.HTTPClient {
	return collab.NewHTTPClient(collab.ClientArgs{
		Name:    name,
		BaseURL: baseURL,
		Policy:  policy,
		Metrics: m,
		Logger:  a.Logger,
	})
}
