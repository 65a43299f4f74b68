package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/pricing"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/saga"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/transport/collab"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

const (
	orderNumberPrefix = "ORD"
	OrdersEventSource = "orders-service"
)

type OrderService struct {
	uow         uow.UOW
	orderRepo   OrderRepository
	paymentRepo PaymentRepository
	offers      OffersAdapter
	inventory   InventoryAdapter
	shipping    ShippingAdapter
	publisher   EventPublisher
	autoConfirm bool
	now         func() time.Time
	log         *logrus.Entry
}

type OrderServiceArgs struct {
	Offers    OffersAdapter
	Inventory InventoryAdapter
	Shipping  ShippingAdapter
	Publisher EventPublisher
	// AutoConfirm переводит созданный заказ сразу в CONFIRMED.
	AutoConfirm bool
	Logger      *logrus.Logger
}

func NewOrderService(u uow.UOW, args OrderServiceArgs) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	paymentRepo, err := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if args.Offers == nil || args.Inventory == nil || args.Shipping == nil || args.Publisher == nil {
		return nil, errors.New("order service: all collaborators are required")
	}
	return &OrderService{
		uow:         u,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		offers:      args.Offers,
		inventory:   args.Inventory,
		shipping:    args.Shipping,
		publisher:   args.Publisher,
		autoConfirm: args.AutoConfirm,
		now:         time.Now,
		log:         args.Logger.WithFields(logrus.Fields{"component": "service", "module": "orders"}),
	}, nil
}

type CreateFromOfferArgs struct {
	TenantID        string
	OfferID         string
	ShippingAddress domain.ShippingAddress
	Notes           string
}

type OrderItemInput struct {
	ProductID       string
	SKU             string
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
}

type CreateOrderArgs struct {
	TenantID        string
	CustomerID      string
	Currency        string
	Items           []OrderItemInput
	ShippingAddress domain.ShippingAddress
	Notes           string
}

// orderDraft заказ до записи в базу.
type orderDraft struct {
	order   domain.Order
	items   []domain.OrderItem
	address domain.ShippingAddress
	stock   []collab.StockItem
}

// CreateFromOffer превращает одобренное предложение в заказ.
//
// Алгоритм работы:
//  1. Получает предложение через адаптер и проверяет, что оно одобрено и не просрочено.
//  2. Проверяет наличие товара и считает итоги.
//  3. Одной транзакцией создает заказ, адрес, позиции и первую запись истории.
//  4. Резервирует товар. При отказе заказ переводится в CANCELED.
//  5. Без гарантий: помечает предложение использованным, публикует order.created, подтверждает заказ.
func (o *OrderService) CreateFromOffer(ctx context.Context, args CreateFromOfferArgs) (*domain.Order, error) {
	if args.TenantID == "" || args.OfferID == "" {
		return nil, fmt.Errorf("tenant and offer are required: %w", domain.ErrInvalidInput)
	}
	if err := validateAddress(args.ShippingAddress); err != nil {
		return nil, err
	}

	var (
		offer *domain.Offer
		draft *orderDraft
		order *domain.Order
	)
	steps := []saga.Step{
		{
			Name: "fetch-offer",
			Run: func(c context.Context) error {
				var err error
				offer, err = o.fetchApprovedOffer(c, args.TenantID, args.OfferID)
				return err
			},
		},
		{
			Name: "validate-stock",
			Run: func(c context.Context) error {
				var err error
				if draft, err = draftFromOffer(offer, args); err != nil {
					return err
				}
				return o.validateStock(c, args.TenantID, draft.stock)
			},
		},
	}
	steps = append(steps, o.fulfillmentSteps(args.TenantID, &draft, &order)...)
	steps = append(steps, saga.Step{
		Name:       "consume-offer",
		BestEffort: true,
		Run: func(c context.Context) error {
			return o.offers.ConsumeOffer(c, args.TenantID, args.OfferID, order.ID) //nolint:wrapcheck
		},
	})
	steps = append(steps, o.announceSteps(&order)...)

	if err := saga.New("create-order-from-offer", o.log, steps...).Execute(ctx); err != nil {
		return nil, fmt.Errorf("creating order from offer `%s`: %w", args.OfferID, err)
	}
	return order, nil
}

// Create создает заказ из переданных позиций. Стоимость доставки запрашивается у сервиса доставки.
func (o *OrderService) Create(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	draft, err := draftFromInput(args)
	if err != nil {
		return nil, err
	}

	var order *domain.Order
	steps := []saga.Step{
		{
			Name: "validate-stock",
			Run: func(c context.Context) error {
				return o.validateStock(c, args.TenantID, draft.stock)
			},
		},
		{
			Name: "quote-shipping",
			Run: func(c context.Context) error {
				return o.applyShipping(c, draft)
			},
		},
	}
	steps = append(steps, o.fulfillmentSteps(args.TenantID, &draft, &order)...)
	steps = append(steps, o.announceSteps(&order)...)

	if err = saga.New("create-order", o.log, steps...).Execute(ctx); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	return order, nil
}

// fulfillmentSteps запись заказа и резервирование товара. draft и order передаются по указателю,
// так как заполняются предыдущими шагами.
func (o *OrderService) fulfillmentSteps(tenantID string, draft **orderDraft, order **domain.Order) []saga.Step {
	// releaseOnCancel выставляется, если склад мог применить резерв, не вернув ответа.
	var releaseOnCancel bool
	return []saga.Step{
		{
			Name: "persist-order",
			Run: func(c context.Context) error {
				created, err := o.persist(c, *draft)
				if err != nil {
					return err
				}
				*order = created
				return nil
			},
			Compensate: func(c context.Context) error {
				canceled, err := o.cancelPersisted(c, *order, "inventory reservation failed")
				if err != nil {
					return err
				}
				(*order).Status = canceled.Status
				if releaseOnCancel {
					o.releaseBestEffort(c, tenantID, (*order).ID)
				}
				return nil
			},
		},
		{
			Name: "reserve-inventory",
			Run: func(c context.Context) error {
				if len((*draft).stock) == 0 {
					return nil
				}
				err := o.inventory.Reserve(c, tenantID, (*order).ID, (*draft).stock)
				releaseOnCancel = err != nil && !isDefiniteRejection(err)
				return err //nolint:wrapcheck
			},
		},
	}
}

// isDefiniteRejection сообщает, что склад точно не применил резерв.
func isDefiniteRejection(err error) bool {
	return errors.Is(err, domain.ErrInsufficientInventory) ||
		errors.Is(err, domain.ErrDependencyRejected) ||
		errors.Is(err, domain.ErrInvalidInput)
}

func (o *OrderService) releaseBestEffort(ctx context.Context, tenantID, orderID string) {
	if err := o.inventory.Release(ctx, tenantID, orderID); err != nil {
		o.log.WithError(err).WithField("order_id", orderID).Warn("releasing inventory failed")
	}
}

func (o *OrderService) announceSteps(order **domain.Order) []saga.Step {
	steps := []saga.Step{{
		Name:       "publish-order-created",
		BestEffort: true,
		Run: func(c context.Context) error {
			return o.publishOrderCreated(c, *order)
		},
	}}
	if o.autoConfirm {
		steps = append(steps, saga.Step{
			Name:       "auto-confirm",
			BestEffort: true,
			Run: func(c context.Context) error {
				updated, err := o.UpdateStatus(c, (*order).TenantID, (*order).ID, domain.OrderStatusConfirmed,
					"auto-confirmed")
				if err != nil {
					return err
				}
				(*order).Status = updated.Status
				(*order).Version = updated.Version
				return nil
			},
		})
	}
	return steps
}

func (o *OrderService) fetchApprovedOffer(ctx context.Context, tenantID, offerID string) (*domain.Offer, error) {
	offer, err := o.offers.GetOffer(ctx, tenantID, offerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	switch {
	case offer.Status == domain.OfferStatusExpired:
		return nil, fmt.Errorf("offer %s: %w", offer.OfferNumber, domain.ErrOfferExpired)
	case offer.Status != domain.OfferStatusApproved:
		return nil, fmt.Errorf("offer %s is %s: %w", offer.OfferNumber, offer.Status, domain.ErrOfferNotApproved)
	case offer.IsPastDeadline(o.now()):
		return nil, fmt.Errorf("offer %s: %w", offer.OfferNumber, domain.ErrOfferExpired)
	case offer.OrderID != "":
		return nil, fmt.Errorf("offer %s converted to order %s: %w",
			offer.OfferNumber, offer.OrderID, domain.ErrOfferAlreadyConsumed)
	case len(offer.Items) == 0:
		return nil, fmt.Errorf("offer %s: %w", offer.OfferNumber, domain.ErrOfferHasNoItems)
	}
	return offer, nil
}

func (o *OrderService) validateStock(ctx context.Context, tenantID string, stock []collab.StockItem) error {
	if len(stock) == 0 {
		return nil
	}
	return o.inventory.Validate(ctx, tenantID, stock) //nolint:wrapcheck
}

func (o *OrderService) applyShipping(ctx context.Context, draft *orderDraft) error {
	quote, err := o.shipping.Calculate(ctx, draft.order.TenantID, draft.order.Currency, draft.address, draft.stock)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if !strings.EqualFold(quote.Currency, draft.order.Currency) {
		return fmt.Errorf("shipping quoted in %s for %s order: %w",
			quote.Currency, draft.order.Currency, domain.ErrDependencyRejected)
	}
	draft.order.ShippingTotal = pricing.MoneyRound(quote.Cost)
	draft.order.GrandTotal = draft.order.GrandTotal.Add(draft.order.ShippingTotal)
	return nil
}

// persist атомарно создает заказ, адрес доставки, позиции и начальную запись истории.
func (o *OrderService) persist(ctx context.Context, draft *orderDraft) (*domain.Order, error) {
	var created *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		number, numErr := allocateNumber(c, orderNumberPrefix, o.now(),
			func(ctx context.Context, n string) (bool, error) {
				return repo.OrderNumberExists(ctx, draft.order.TenantID, n)
			}, domain.ErrOrderNumberExhausted)
		if numErr != nil {
			return numErr
		}

		header := draft.order
		header.ID = uuid.NewString()
		header.OrderNumber = number
		header.Status = domain.OrderStatusPending
		header.PaymentStatus = domain.PaymentStatusUnpaid

		var err error
		if created, err = repo.CreateOrder(c, &header); err != nil {
			return err //nolint:wrapcheck
		}

		address := draft.address
		address.ID = uuid.NewString()
		address.OrderID = created.ID
		if err = repo.CreateShippingAddress(c, &address); err != nil {
			return err //nolint:wrapcheck
		}

		items := make([]domain.OrderItem, len(draft.items))
		for i, it := range draft.items {
			it.ID = uuid.NewString()
			it.OrderID = created.ID
			items[i] = it
		}
		var batchErr error
		repo.BatchCreateItems(c, items, func(_ int, err error) {
			if err != nil && batchErr == nil {
				batchErr = err
			}
		})
		if batchErr != nil {
			return batchErr
		}

		history := domain.StatusHistory{
			ID:      uuid.NewString(),
			OrderID: created.ID,
			Status:  domain.OrderStatusPending,
			Note:    "order created",
		}
		if err = repo.AddHistory(c, history); err != nil {
			return err //nolint:wrapcheck
		}

		created.ShippingAddress = &address
		created.Items = items
		created.History = []domain.StatusHistory{history}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("persisting order: %w", txErr)
	}
	o.log.WithFields(logrus.Fields{"order_id": created.ID, "order_number": created.OrderNumber}).Info("order created")
	return created, nil
}

// UpdateStatus переводит заказ в новый статус. Переход в CANCELED выполняется через Cancel.
// Повторная установка текущего статуса ничего не меняет.
func (o *OrderService) UpdateStatus(
	ctx context.Context,
	tenantID, orderID string,
	status domain.OrderStatusType,
	note string,
) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status `%s`: %w", status, domain.ErrInvalidInput)
	}
	if status == domain.OrderStatusCanceled {
		return o.Cancel(ctx, tenantID, orderID, note)
	}

	updated, from, err := o.transition(ctx, tenantID, orderID, status, note, func(current *domain.Order) error {
		if current.Status.IsTerminal() {
			return fmt.Errorf("%s -> %s: %w", current.Status, status, domain.ErrInvalidStatusTransition)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == domain.OrderStatusConfirmed && from != domain.OrderStatusConfirmed {
		if pubErr := o.publishOrderConfirmed(ctx, updated, from); pubErr != nil {
			o.log.WithError(pubErr).WithField("order_id", orderID).Warn("publishing order.confirmed failed")
		}
	}
	return updated, nil
}

// Cancel отменяет заказ и снимает резерв товара. Ошибка снятия резерва только логируется.
func (o *OrderService) Cancel(ctx context.Context, tenantID, orderID, reason string) (*domain.Order, error) {
	if reason == "" {
		reason = "order canceled"
	}
	updated, _, err := o.transition(ctx, tenantID, orderID, domain.OrderStatusCanceled, reason,
		func(current *domain.Order) error {
			switch current.Status {
			case domain.OrderStatusCanceled:
				return domain.ErrAlreadyCanceled
			case domain.OrderStatusDelivered:
				return domain.ErrAlreadyDelivered
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	o.releaseBestEffort(ctx, tenantID, orderID)
	return updated, nil
}

// cancelPersisted компенсация записи заказа: отмена без снятия резерва.
func (o *OrderService) cancelPersisted(ctx context.Context, order *domain.Order, note string) (*domain.Order, error) {
	updated, _, err := o.transition(ctx, order.TenantID, order.ID, domain.OrderStatusCanceled, note,
		func(current *domain.Order) error {
			if current.Status.IsTerminal() {
				return domain.ErrInvalidStatusTransition
			}
			return nil
		})
	return updated, err
}

// transition меняет статус с проверкой версии и пишет запись истории в одной транзакции.
// guard проверяет допустимость перехода из текущего статуса. Если статус уже равен целевому,
// возвращается текущий заказ без изменений.
func (o *OrderService) transition(
	ctx context.Context,
	tenantID, orderID string,
	status domain.OrderStatusType,
	note string,
	guard func(current *domain.Order) error,
) (*domain.Order, domain.OrderStatusType, error) {
	var (
		updated *domain.Order
		from    domain.OrderStatusType
	)
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		current, err := repo.FindByID(c, tenantID, orderID)
		if err != nil {
			return orderLookupErr(orderID, err)
		}
		if err = guard(current); err != nil {
			return err
		}
		from = current.Status
		if current.Status == status {
			updated = current
			return nil
		}

		updated, err = repo.UpdateStatus(c, repoargs.UpdateOrderStatus{
			TenantID:        tenantID,
			OrderID:         orderID,
			Status:          status,
			ExpectedVersion: current.Version,
		})
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("order %s: %w", orderID, domain.ErrConcurrentModification)
			}
			return err //nolint:wrapcheck
		}
		return repo.AddHistory(c, domain.StatusHistory{ //nolint:wrapcheck
			ID:         uuid.NewString(),
			OrderID:    orderID,
			FromStatus: current.Status,
			Status:     status,
			Note:       note,
		})
	})
	if txErr != nil {
		return nil, "", fmt.Errorf("changing status of order `%s` to %s: %w", orderID, status, txErr)
	}
	if from != status {
		o.log.WithFields(logrus.Fields{"order_id": orderID, "from": from, "to": status}).Info("order status changed")
	}
	return updated, from, nil
}

// Get возвращает заказ с позициями, адресом, платежами и историей.
func (o *OrderService) Get(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
	order, err := o.orderRepo.FindByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, orderLookupErr(orderID, err)
	}
	if order.Items, err = o.orderRepo.GetItems(ctx, orderID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	address, err := o.orderRepo.GetShippingAddress(ctx, orderID)
	switch {
	case err == nil:
		order.ShippingAddress = address
	case !errors.Is(err, domain.ErrRecordNotFound):
		return nil, err //nolint:wrapcheck
	}
	if order.Payments, err = o.paymentRepo.ListByOrder(ctx, tenantID, orderID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if order.History, err = o.orderRepo.GetHistory(ctx, orderID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

func (o *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) error {
	evt, err := events.New(events.TypeOrderCreated, order.TenantID, OrdersEventSource, order.ID, events.OrderCreated{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		OfferID:     order.OfferID,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		Currency:    order.Currency,
		GrandTotal:  order.GrandTotal,
		ItemCount:   len(order.Items),
		LineItems:   eventLineItems(order.Items),
	})
	if err != nil {
		return err //nolint:wrapcheck
	}
	return o.publisher.Publish(ctx, evt) //nolint:wrapcheck
}

func (o *OrderService) publishOrderConfirmed(ctx context.Context, order *domain.Order, from domain.OrderStatusType) error {
	items, err := o.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	payload := events.OrderConfirmed{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerID:    order.CustomerID,
		FromStatus:    string(from),
		PaymentStatus: string(order.PaymentStatus),
		LineItems:     eventLineItems(items),
	}
	if address, addrErr := o.orderRepo.GetShippingAddress(ctx, order.ID); addrErr == nil {
		payload.ShippingAddressID = address.ID
	}
	evt, err := events.New(events.TypeOrderConfirmed, order.TenantID, OrdersEventSource, order.ID, payload)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return o.publisher.Publish(ctx, evt) //nolint:wrapcheck
}

func orderLookupErr(orderID string, err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
	}
	return err
}

func draftFromOffer(offer *domain.Offer, args CreateFromOfferArgs) (*orderDraft, error) {
	items := make([]domain.OrderItem, len(offer.Items))
	for i, it := range offer.Items {
		items[i] = domain.OrderItem{
			ProductID:       it.ProductID,
			SKU:             it.SKU,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TaxPercent:      it.TaxPercent,
		}
	}
	draft, err := newDraft(items)
	if err != nil {
		return nil, err
	}
	draft.order.TenantID = args.TenantID
	draft.order.OfferID = offer.ID
	draft.order.CustomerID = offer.CustomerID
	draft.order.Currency = offer.Currency
	draft.order.Notes = args.Notes
	draft.address = args.ShippingAddress
	return draft, nil
}

func draftFromInput(args CreateOrderArgs) (*orderDraft, error) {
	switch {
	case args.TenantID == "" || args.CustomerID == "":
		return nil, fmt.Errorf("tenant and customer are required: %w", domain.ErrInvalidInput)
	case len(args.Currency) != 3: //nolint:mnd
		return nil, fmt.Errorf("currency `%s` must be an ISO 4217 code: %w", args.Currency, domain.ErrInvalidInput)
	case len(args.Items) == 0:
		return nil, fmt.Errorf("order has no items: %w", domain.ErrInvalidInput)
	}
	if err := validateAddress(args.ShippingAddress); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, len(args.Items))
	for i, in := range args.Items {
		items[i] = domain.OrderItem{
			ProductID:       in.ProductID,
			SKU:             in.SKU,
			Description:     in.Description,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
			TaxPercent:      in.TaxPercent,
		}
	}
	draft, err := newDraft(items)
	if err != nil {
		return nil, err
	}
	draft.order.TenantID = args.TenantID
	draft.order.CustomerID = args.CustomerID
	draft.order.Currency = strings.ToUpper(args.Currency)
	draft.order.Notes = args.Notes
	draft.address = args.ShippingAddress
	return draft, nil
}

// newDraft считает итоги позиций и нумерует их по порядку.
func newDraft(items []domain.OrderItem) (*orderDraft, error) {
	lines := make([]pricing.Line, len(items))
	stock := make([]collab.StockItem, 0, len(items))
	for i := range items {
		lines[i] = pricing.Line{
			Quantity:        items[i].Quantity,
			UnitPrice:       items[i].UnitPrice,
			DiscountPercent: items[i].DiscountPercent,
			TaxPercent:      items[i].TaxPercent,
		}
		total, err := pricing.LineTotal(lines[i])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		items[i].Total = total
		items[i].LineNumber = i + 1
		if items[i].ProductID != "" || items[i].SKU != "" {
			stock = append(stock, collab.StockItem{
				ProductID: items[i].ProductID,
				SKU:       items[i].SKU,
				Quantity:  items[i].Quantity,
			})
		}
	}
	totals, err := pricing.AggregateTotals(lines)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &orderDraft{
		order: domain.Order{
			Subtotal:      totals.Subtotal,
			DiscountTotal: totals.DiscountTotal,
			TaxTotal:      totals.TaxTotal,
			ShippingTotal: decimal.Zero,
			GrandTotal:    totals.GrandTotal,
		},
		items: items,
		stock: stock,
	}, nil
}

func validateAddress(a domain.ShippingAddress) error {
	if strings.TrimSpace(a.Line1) == "" || strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.PostalCode) == "" || strings.TrimSpace(a.Country) == "" {
		return fmt.Errorf("shipping address requires line1, city, postal code and country: %w",
			domain.ErrInvalidInput)
	}
	return nil
}

func eventLineItems(items []domain.OrderItem) []events.LineItem {
	out := make([]events.LineItem, len(items))
	for i, it := range items {
		out[i] = events.LineItem{
			ProductID:  it.ProductID,
			SKU:        it.SKU,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Total:      it.Total,
			LineNumber: it.LineNumber,
		}
	}
	return out
}
