package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

const orderColumns = `id, created_at, updated_at, tenant_id, order_number, offer_id, customer_id, status,
	payment_status, currency, subtotal, tax_total, shipping_total, discount_total, grand_total, notes, version`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

func (o *OrderRepository) OrderNumberExists(ctx context.Context, tenantID, number string) (bool, error) {
	var exists bool
	err := o.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE tenant_id = $1 AND order_number = $2)`,
		tenantID, number,
	).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking order number `%s`", number)
	}
	return exists, nil
}

// CreateOrder вставляет заголовок заказа. Позиции, адрес и история пишутся отдельными вызовами.
func (o *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders (id, tenant_id, order_number, offer_id, customer_id, status, payment_status, currency,
			subtotal, tax_total, shipping_total, discount_total, grand_total, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+orderColumns,
		order.ID, order.TenantID, order.OrderNumber, nullString(order.OfferID), order.CustomerID,
		order.Status, order.PaymentStatus, order.Currency, order.Subtotal, order.TaxTotal,
		order.ShippingTotal, order.DiscountTotal, order.GrandTotal, order.Notes,
	)
	created, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order `%s`", order.OrderNumber)
	}
	return created, nil
}

func (o *OrderRepository) CreateShippingAddress(ctx context.Context, addr *domain.ShippingAddress) error {
	_, err := o.conn.Exec(ctx,
		`INSERT INTO shipping_addresses (id, order_id, name, line1, line2, city, state, postal_code, country, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		addr.ID, addr.OrderID, addr.Name, addr.Line1, addr.Line2, addr.City, addr.State, addr.PostalCode,
		addr.Country, addr.Phone,
	)
	return convertErr(err, "creating shipping address for order `%s`", addr.OrderID)
}

// BatchCreateItems вставляет позиции одним батчем. fn вызывается для каждой позиции.
func (o *OrderRepository) BatchCreateItems(
	ctx context.Context,
	items []domain.OrderItem,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, it := range items {
		batch.Queue(
			`INSERT INTO order_items (id, order_id, product_id, sku, description, quantity, unit_price,
				discount_percent, tax_percent, total, line_number)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			it.ID, it.OrderID, it.ProductID, it.SKU, it.Description, it.Quantity, it.UnitPrice,
			it.DiscountPercent, it.TaxPercent, it.Total, it.LineNumber,
		)
	}
	execBatch(ctx, o.conn, batch, len(items), "creating order item", fn)
}

func (o *OrderRepository) AddHistory(ctx context.Context, h domain.StatusHistory) error {
	var from *string
	if h.FromStatus != "" {
		s := string(h.FromStatus)
		from = &s
	}
	_, err := o.conn.Exec(ctx,
		`INSERT INTO order_status_history (id, order_id, from_status, status, note) VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.OrderID, from, h.Status, h.Note,
	)
	return convertErr(err, "adding status history for order `%s`", h.OrderID)
}

func (o *OrderRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order `%s`", id)
	}
	return order, nil
}

// FindByIDForUpdate блокирует строку заказа до конца транзакции.
func (o *OrderRepository) FindByIDForUpdate(ctx context.Context, tenantID, id string) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE tenant_id = $1 AND id = $2 FOR UPDATE`, tenantID, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "locking order `%s`", id)
	}
	return order, nil
}

func (o *OrderRepository) GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT id, order_id, product_id, sku, description, quantity, unit_price, discount_percent, tax_percent,
			total, line_number
		FROM order_items WHERE order_id = $1 ORDER BY line_number`, orderID)
	if err != nil {
		return nil, convertErr(err, "getting items of order `%s`", orderID)
	}
	items, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.OrderItem, error) {
		var it domain.OrderItem
		scanErr := r.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.SKU, &it.Description, &it.Quantity,
			&it.UnitPrice, &it.DiscountPercent, &it.TaxPercent, &it.Total, &it.LineNumber)
		return it, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning items of order `%s`", orderID)
	}
	return items, nil
}

// GetShippingAddress возвращает domain.ErrRecordNotFound, если адрес не задан.
func (o *OrderRepository) GetShippingAddress(ctx context.Context, orderID string) (*domain.ShippingAddress, error) {
	var a domain.ShippingAddress
	err := o.conn.QueryRow(ctx,
		`SELECT id, order_id, name, line1, line2, city, state, postal_code, country, phone
		FROM shipping_addresses WHERE order_id = $1`, orderID,
	).Scan(&a.ID, &a.OrderID, &a.Name, &a.Line1, &a.Line2, &a.City, &a.State, &a.PostalCode, &a.Country, &a.Phone)
	if err != nil {
		return nil, convertErr(err, "getting shipping address of order `%s`", orderID)
	}
	return &a, nil
}

func (o *OrderRepository) GetHistory(ctx context.Context, orderID string) ([]domain.StatusHistory, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT id, order_id, from_status, status, note, created_at
		FROM order_status_history WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, convertErr(err, "getting history of order `%s`", orderID)
	}
	history, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.StatusHistory, error) {
		var (
			h    domain.StatusHistory
			from *string
		)
		scanErr := r.Scan(&h.ID, &h.OrderID, &from, &h.Status, &h.Note, &h.CreatedAt)
		h.FromStatus = domain.OrderStatusType(fromNullString(from))
		return h, scanErr
	})
	if err != nil {
		return nil, convertErr(err, "scanning history of order `%s`", orderID)
	}
	return history, nil
}

// UpdateStatus меняет статус и увеличивает версию. Если версия строки не совпала с ожидаемой,
// возвращает domain.ErrRecordNotFound.
func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE orders SET status = $1, version = version + 1, updated_at = now()
		WHERE tenant_id = $2 AND id = $3 AND version = $4
		RETURNING `+orderColumns,
		args.Status, args.TenantID, args.OrderID, args.ExpectedVersion,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating status of order `%s` at version %d", args.OrderID, args.ExpectedVersion)
	}
	return order, nil
}

func (o *OrderRepository) UpdatePaymentStatus(ctx context.Context, args repoargs.UpdateOrderPaymentStatus) error {
	tag, err := o.conn.Exec(ctx,
		`UPDATE orders SET payment_status = $1, updated_at = now() WHERE tenant_id = $2 AND id = $3`,
		args.PaymentStatus, args.TenantID, args.OrderID,
	)
	if err != nil {
		return convertErr(err, "updating payment status of order `%s`", args.OrderID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating payment status of order `%s`", args.OrderID)
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o       domain.Order
		offerID *string
	)
	err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.TenantID, &o.OrderNumber, &offerID, &o.CustomerID,
		&o.Status, &o.PaymentStatus, &o.Currency, &o.Subtotal, &o.TaxTotal, &o.ShippingTotal, &o.DiscountTotal,
		&o.GrandTotal, &o.Notes, &o.Version)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	o.OfferID = fromNullString(offerID)
	return &o, nil
}

// execBatch отправляет батч и вызывает fn с результатом каждой команды.
func execBatch(
	ctx context.Context,
	conn uow.DBTX,
	batch *pgx.Batch,
	n int,
	msg string,
	fn repoargs.BatchExecQueryRow,
) {
	if n == 0 {
		return
	}
	br := conn.SendBatch(ctx, batch)
	defer func() {
		if closeErr := br.Close(); closeErr != nil {
			fn(n-1, convertErr(closeErr, "closing batch: %s", msg))
		}
	}()
	for i := range n {
		_, err := br.Exec()
		fn(i, convertErr(err, "%s #%d", msg, i))
	}
}
