package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

const offerColumns = `id, created_at, updated_at, tenant_id, offer_number, customer_id, status, currency, valid_until,
	subtotal, discount_total, tax_total, grand_total, approval_token, order_id, notes, rejection_reason, decided_at`

const offerItemColumns = `id, offer_id, product_id, sku, description, quantity, unit_price, discount_percent,
	tax_percent, total, line_number`

type OfferRepository struct {
	conn uow.DBTX
}

func NewOfferRepository(conn uow.DBTX) *OfferRepository {
	return &OfferRepository{conn: conn}
}

func (o *OfferRepository) OfferNumberExists(ctx context.Context, tenantID, number string) (bool, error) {
	var exists bool
	err := o.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM offers WHERE tenant_id = $1 AND offer_number = $2)`, tenantID, number,
	).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking offer number `%s`", number)
	}
	return exists, nil
}

func (o *OfferRepository) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO offers (id, tenant_id, offer_number, customer_id, status, currency, valid_until, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+offerColumns,
		offer.ID, offer.TenantID, offer.OfferNumber, offer.CustomerID, offer.Status, offer.Currency,
		offer.ValidUntil, offer.Notes,
	)
	created, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "creating offer `%s`", offer.OfferNumber)
	}
	return created, nil
}

func (o *OfferRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Offer, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "finding offer `%s`", id)
	}
	return offer, nil
}

func (o *OfferRepository) FindByIDForUpdate(ctx context.Context, tenantID, id string) (*domain.Offer, error) {
	row := o.conn.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE tenant_id = $1 AND id = $2 FOR UPDATE`, tenantID, id)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "locking offer `%s`", id)
	}
	return offer, nil
}

// FindByTokenForUpdate ищет предложение по токену одобрения без учета тенанта.
func (o *OfferRepository) FindByTokenForUpdate(ctx context.Context, token string) (*domain.Offer, error) {
	row := o.conn.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE approval_token = $1 FOR UPDATE`, token)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "finding offer by approval token")
	}
	return offer, nil
}

// Update сохраняет изменяемые поля заголовка: статус, итоги, токен, ссылку на заказ и решение.
func (o *OfferRepository) Update(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE offers SET status = $1, subtotal = $2, discount_total = $3, tax_total = $4, grand_total = $5,
			approval_token = $6, order_id = $7, notes = $8, rejection_reason = $9, decided_at = $10,
			updated_at = now()
		WHERE tenant_id = $11 AND id = $12
		RETURNING `+offerColumns,
		offer.Status, offer.Subtotal, offer.DiscountTotal, offer.TaxTotal, offer.GrandTotal,
		nullString(offer.ApprovalToken), nullString(offer.OrderID), offer.Notes, offer.RejectionReason,
		offer.DecidedAt, offer.TenantID, offer.ID,
	)
	updated, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "updating offer `%s`", offer.ID)
	}
	return updated, nil
}

// ListOverdue возвращает отправленные предложения с истекшим сроком по всем тенантам.
func (o *OfferRepository) ListOverdue(ctx context.Context, now time.Time, limit uint) ([]domain.Offer, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}
	rows, err := o.conn.Query(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE status = 'SENT' AND valid_until < $1
		ORDER BY valid_until LIMIT $2`, now, safeLimit)
	if err != nil {
		return nil, convertErr(err, "listing overdue offers")
	}
	offers, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Offer, error) {
		offer, scanErr := scanOffer(r)
		if scanErr != nil {
			return domain.Offer{}, scanErr
		}
		return *offer, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning overdue offers")
	}
	return offers, nil
}

// ExpireIfOpen переводит в EXPIRED отправленное предложение или одобренное, по которому еще нет заказа.
// Возвращает false, если статус уже изменился.
func (o *OfferRepository) ExpireIfOpen(ctx context.Context, tenantID, id string) (bool, error) {
	tag, err := o.conn.Exec(ctx,
		`UPDATE offers SET status = 'EXPIRED', approval_token = NULL, updated_at = now()
		WHERE tenant_id = $1 AND id = $2
			AND (status = 'SENT' OR (status = 'APPROVED' AND order_id IS NULL))`, tenantID, id)
	if err != nil {
		return false, convertErr(err, "expiring offer `%s`", id)
	}
	return tag.RowsAffected() > 0, nil
}

func (o *OfferRepository) GetItems(ctx context.Context, offerID string) ([]domain.OfferLineItem, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+offerItemColumns+` FROM offer_line_items WHERE offer_id = $1 ORDER BY line_number`, offerID)
	if err != nil {
		return nil, convertErr(err, "getting items of offer `%s`", offerID)
	}
	items, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.OfferLineItem, error) {
		item, scanErr := scanOfferItem(r)
		if scanErr != nil {
			return domain.OfferLineItem{}, scanErr
		}
		return *item, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning items of offer `%s`", offerID)
	}
	return items, nil
}

func (o *OfferRepository) CreateItem(ctx context.Context, item *domain.OfferLineItem) (*domain.OfferLineItem, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO offer_line_items (id, offer_id, product_id, sku, description, quantity, unit_price,
			discount_percent, tax_percent, total, line_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+offerItemColumns,
		item.ID, item.OfferID, item.ProductID, item.SKU, item.Description, item.Quantity, item.UnitPrice,
		item.DiscountPercent, item.TaxPercent, item.Total, item.LineNumber,
	)
	created, err := scanOfferItem(row)
	if err != nil {
		return nil, convertErr(err, "creating item of offer `%s`", item.OfferID)
	}
	return created, nil
}

func (o *OfferRepository) UpdateItem(ctx context.Context, item *domain.OfferLineItem) (*domain.OfferLineItem, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE offer_line_items SET product_id = $1, sku = $2, description = $3, quantity = $4, unit_price = $5,
			discount_percent = $6, tax_percent = $7, total = $8
		WHERE offer_id = $9 AND id = $10
		RETURNING `+offerItemColumns,
		item.ProductID, item.SKU, item.Description, item.Quantity, item.UnitPrice, item.DiscountPercent,
		item.TaxPercent, item.Total, item.OfferID, item.ID,
	)
	updated, err := scanOfferItem(row)
	if err != nil {
		return nil, convertErr(err, "updating item `%s` of offer `%s`", item.ID, item.OfferID)
	}
	return updated, nil
}

func (o *OfferRepository) DeleteItem(ctx context.Context, offerID, itemID string) error {
	tag, err := o.conn.Exec(ctx, `DELETE FROM offer_line_items WHERE offer_id = $1 AND id = $2`, offerID, itemID)
	if err != nil {
		return convertErr(err, "deleting item `%s` of offer `%s`", itemID, offerID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting item `%s` of offer `%s`", itemID, offerID)
	}
	return nil
}

// BatchUpdateLineNumbers перенумеровывает позиции одним батчем.
func (o *OfferRepository) BatchUpdateLineNumbers(
	ctx context.Context,
	items []domain.OfferLineItem,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, it := range items {
		batch.Queue(`UPDATE offer_line_items SET line_number = $1 WHERE offer_id = $2 AND id = $3`,
			it.LineNumber, it.OfferID, it.ID)
	}
	execBatch(ctx, o.conn, batch, len(items), "renumbering offer item", fn)
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var (
		o       domain.Offer
		token   *string
		orderID *string
	)
	err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.TenantID, &o.OfferNumber, &o.CustomerID, &o.Status,
		&o.Currency, &o.ValidUntil, &o.Subtotal, &o.DiscountTotal, &o.TaxTotal, &o.GrandTotal, &token, &orderID,
		&o.Notes, &o.RejectionReason, &o.DecidedAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	o.ApprovalToken = fromNullString(token)
	o.OrderID = fromNullString(orderID)
	return &o, nil
}

func scanOfferItem(row pgx.Row) (*domain.OfferLineItem, error) {
	var it domain.OfferLineItem
	err := row.Scan(&it.ID, &it.OfferID, &it.ProductID, &it.SKU, &it.Description, &it.Quantity, &it.UnitPrice,
		&it.DiscountPercent, &it.TaxPercent, &it.Total, &it.LineNumber)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &it, nil
}
