package collab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
)

const (
	RouteOffer        = "/offers/%s"
	RouteOfferConsume = "/offers/%s/consume"
)

// OffersClient клиент сервиса предложений.
type OffersClient struct {
	*HTTPClient
}

func NewOffersClient(c *HTTPClient) *OffersClient {
	return &OffersClient{HTTPClient: c}
}

// GetOffer возвращает снимок предложения. 404 -> domain.ErrOfferNotFound.
func (c *OffersClient) GetOffer(ctx context.Context, tenantID, offerID string) (*domain.Offer, error) {
	var snapshot offerSnapshot
	err := c.call(ctx, "get_offer", tenantID, http.MethodGet,
		fmt.Sprintf(RouteOffer, url.PathEscape(offerID)), nil, &snapshot)
	if err != nil {
		if sce, ok := rejection(err); ok && sce.Code == http.StatusNotFound {
			return nil, fmt.Errorf("offer %s: %w", offerID, domain.ErrOfferNotFound)
		}
		return nil, mapRejection(err)
	}
	return snapshot.toDomain(tenantID), nil
}

// ConsumeOffer помечает предложение как использованное заказом orderID.
func (c *OffersClient) ConsumeOffer(ctx context.Context, tenantID, offerID, orderID string) error {
	err := c.call(ctx, "consume_offer", tenantID, http.MethodPost,
		fmt.Sprintf(RouteOfferConsume, url.PathEscape(offerID)), consumeOfferRequest{OrderID: orderID}, nil)
	if err == nil {
		return nil
	}
	if sce, ok := rejection(err); ok {
		switch sce.Code {
		case http.StatusNotFound:
			return fmt.Errorf("offer %s: %w", offerID, domain.ErrOfferNotFound)
		case http.StatusConflict:
			return fmt.Errorf("offer %s: %w: %s", offerID, domain.ErrOfferAlreadyConsumed, sce.Body)
		}
	}
	return mapRejection(err)
}
