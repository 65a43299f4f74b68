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
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

const (
	offerNumberPrefix = "OFF"
	OffersEventSource = "offers-service"
)

type OfferService struct {
	uow       uow.UOW
	offerRepo OfferRepository
	tokens    ApprovalTokens
	publisher EventPublisher
	now       func() time.Time
	log       *logrus.Entry
}

func NewOfferService(
	u uow.UOW,
	approvalTokens ApprovalTokens,
	publisher EventPublisher,
	l *logrus.Logger,
) (*OfferService, error) {
	offerRepo, err := uow.GetRepositoryAs[OfferRepository](u, uow.RepositoryName(repoargs.OfferRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OfferService{
		uow:       u,
		offerRepo: offerRepo,
		tokens:    approvalTokens,
		publisher: publisher,
		now:       time.Now,
		log:       l.WithFields(logrus.Fields{"component": "service", "module": "offers"}),
	}, nil
}

type CreateOfferArgs struct {
	TenantID   string
	CustomerID string
	Currency   string
	ValidUntil time.Time
	Notes      string
}

type LineItemInput struct {
	ProductID       string
	SKU             string
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
}

func (in LineItemInput) line() pricing.Line {
	return pricing.Line{
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		DiscountPercent: in.DiscountPercent,
		TaxPercent:      in.TaxPercent,
	}
}

// Create создает предложение в статусе DRAFT с нулевыми итогами.
func (s *OfferService) Create(ctx context.Context, args CreateOfferArgs) (*domain.Offer, error) {
	switch {
	case args.TenantID == "" || args.CustomerID == "":
		return nil, fmt.Errorf("tenant and customer are required: %w", domain.ErrInvalidInput)
	case len(args.Currency) != 3: //nolint:mnd
		return nil, fmt.Errorf("currency `%s` must be an ISO 4217 code: %w", args.Currency, domain.ErrInvalidInput)
	case !args.ValidUntil.After(s.now()):
		return nil, fmt.Errorf("validity deadline must be in the future: %w", domain.ErrInvalidInput)
	}

	var created *domain.Offer
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OfferRepository](tx, uow.RepositoryName(repoargs.OfferRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		number, err := allocateNumber(c, offerNumberPrefix, s.now(), func(ctx context.Context, n string) (bool, error) {
			return repo.OfferNumberExists(ctx, args.TenantID, n)
		}, domain.ErrDuplicateKey)
		if err != nil {
			return err
		}
		created, err = repo.Create(c, &domain.Offer{
			ID:          uuid.NewString(),
			TenantID:    args.TenantID,
			OfferNumber: number,
			CustomerID:  args.CustomerID,
			Status:      domain.OfferStatusDraft,
			Currency:    strings.ToUpper(args.Currency),
			ValidUntil:  args.ValidUntil.UTC(),
			Notes:       args.Notes,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating offer: %w", txErr)
	}
	s.log.WithFields(logrus.Fields{"offer_id": created.ID, "offer_number": created.OfferNumber}).Info("offer created")
	return created, nil
}

// AddLineItem добавляет позицию в конец списка и пересчитывает итоги.
func (s *OfferService) AddLineItem(
	ctx context.Context,
	tenantID, offerID string,
	in LineItemInput,
) (*domain.Offer, error) {
	total, err := pricing.LineTotal(in.line())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return s.editItems(ctx, tenantID, offerID, func(c context.Context, repo OfferRepository, offer *domain.Offer) error {
		item := lineItemFromInput(in)
		item.ID = uuid.NewString()
		item.OfferID = offer.ID
		item.Total = total
		item.LineNumber = len(offer.Items) + 1
		created, createErr := repo.CreateItem(c, &item)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		offer.Items = append(offer.Items, *created)
		return nil
	})
}

func (s *OfferService) UpdateLineItem(
	ctx context.Context,
	tenantID, offerID, itemID string,
	in LineItemInput,
) (*domain.Offer, error) {
	total, err := pricing.LineTotal(in.line())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return s.editItems(ctx, tenantID, offerID, func(c context.Context, repo OfferRepository, offer *domain.Offer) error {
		idx := findLineItem(offer.Items, itemID)
		if idx < 0 {
			return fmt.Errorf("item %s: %w", itemID, domain.ErrLineItemNotFound)
		}
		item := lineItemFromInput(in)
		item.ID = itemID
		item.OfferID = offer.ID
		item.Total = total
		item.LineNumber = offer.Items[idx].LineNumber
		updated, updErr := repo.UpdateItem(c, &item)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		offer.Items[idx] = *updated
		return nil
	})
}

// DeleteLineItem удаляет позицию и перенумеровывает оставшиеся.
func (s *OfferService) DeleteLineItem(ctx context.Context, tenantID, offerID, itemID string) (*domain.Offer, error) {
	return s.editItems(ctx, tenantID, offerID, func(c context.Context, repo OfferRepository, offer *domain.Offer) error {
		idx := findLineItem(offer.Items, itemID)
		if idx < 0 {
			return fmt.Errorf("item %s: %w", itemID, domain.ErrLineItemNotFound)
		}
		if err := repo.DeleteItem(c, offer.ID, itemID); err != nil {
			return err //nolint:wrapcheck
		}
		remaining := append(offer.Items[:idx:idx], offer.Items[idx+1:]...)

		shifted := make([]domain.OfferLineItem, 0, len(remaining))
		for i := range remaining {
			if remaining[i].LineNumber != i+1 {
				remaining[i].LineNumber = i + 1
				shifted = append(shifted, remaining[i])
			}
		}
		var batchErr error
		repo.BatchUpdateLineNumbers(c, shifted, func(_ int, err error) {
			if err != nil && batchErr == nil {
				batchErr = err
			}
		})
		if batchErr != nil {
			return batchErr
		}
		offer.Items = remaining
		return nil
	})
}

// editItems блокирует редактируемое предложение, применяет mutate к позициям и сохраняет
// пересчитанные итоги в той же транзакции.
func (s *OfferService) editItems(
	ctx context.Context,
	tenantID, offerID string,
	mutate func(ctx context.Context, repo OfferRepository, offer *domain.Offer) error,
) (*domain.Offer, error) {
	var result *domain.Offer
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, offer, err := s.lockOffer(c, tx, tenantID, offerID)
		if err != nil {
			return err
		}
		if !offer.Status.IsEditable() {
			return fmt.Errorf("offer %s is %s: %w", offer.OfferNumber, offer.Status, domain.ErrOfferFrozen)
		}
		if offer.Items, err = repo.GetItems(c, offer.ID); err != nil {
			return err //nolint:wrapcheck
		}
		if err = mutate(c, repo, offer); err != nil {
			return err
		}
		if err = applyOfferTotals(offer); err != nil {
			return err
		}
		items := offer.Items
		if result, err = repo.Update(c, offer); err != nil {
			return err //nolint:wrapcheck
		}
		result.Items = items
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("editing items of offer `%s`: %w", offerID, txErr)
	}
	return result, nil
}

// Send переводит предложение в SENT и выпускает токен одобрения. Повторная отправка SENT предложения
// переиспользует существующий токен.
func (s *OfferService) Send(ctx context.Context, tenantID, offerID string) (*domain.Offer, error) {
	var result *domain.Offer
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, offer, err := s.lockOffer(c, tx, tenantID, offerID)
		if err != nil {
			return err
		}
		if offer.Status != domain.OfferStatusDraft && offer.Status != domain.OfferStatusSent {
			return fmt.Errorf("send %s offer: %w", offer.Status, domain.ErrInvalidOfferTransition)
		}
		if offer.IsPastDeadline(s.now()) {
			return fmt.Errorf("offer %s: %w", offer.OfferNumber, domain.ErrOfferExpired)
		}
		items, err := repo.GetItems(c, offer.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if len(items) == 0 {
			return domain.ErrOfferHasNoItems
		}
		if offer.ApprovalToken == "" {
			if offer.ApprovalToken, err = s.tokens.Issue(offer.ID, offer.TenantID, offer.ValidUntil); err != nil {
				return err //nolint:wrapcheck
			}
		}
		offer.Status = domain.OfferStatusSent
		if result, err = repo.Update(c, offer); err != nil {
			return err //nolint:wrapcheck
		}
		result.Items = items
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("sending offer `%s`: %w", offerID, txErr)
	}
	s.log.WithField("offer_id", offerID).Info("offer sent")
	return result, nil
}

// ApprovalLink возвращает токен одобрения отправленного предложения. В domain.Offer токен не сериализуется.
func (s *OfferService) ApprovalLink(ctx context.Context, tenantID, offerID string) (string, error) {
	offer, err := s.offerRepo.FindByID(ctx, tenantID, offerID)
	if err != nil {
		return "", offerLookupErr(offerID, err)
	}
	if offer.Status != domain.OfferStatusSent || offer.ApprovalToken == "" {
		return "", fmt.Errorf("offer %s is %s: %w", offer.OfferNumber, offer.Status, domain.ErrInvalidOfferTransition)
	}
	return offer.ApprovalToken, nil
}

type decision struct {
	target domain.OfferStatusType
	reason string
}

func (s *OfferService) Approve(ctx context.Context, tenantID, offerID string) (*domain.Offer, error) {
	return s.decide(ctx, s.byID(tenantID, offerID), decision{target: domain.OfferStatusApproved}, false)
}

func (s *OfferService) Reject(ctx context.Context, tenantID, offerID, reason string) (*domain.Offer, error) {
	return s.decide(ctx, s.byID(tenantID, offerID), decision{target: domain.OfferStatusRejected, reason: reason}, false)
}

// ApproveByToken одобрение по ссылке без аутентификации тенанта.
func (s *OfferService) ApproveByToken(ctx context.Context, token string) (*domain.Offer, error) {
	return s.decide(ctx, s.byToken(token), decision{target: domain.OfferStatusApproved}, true)
}

func (s *OfferService) RejectByToken(ctx context.Context, token, reason string) (*domain.Offer, error) {
	return s.decide(ctx, s.byToken(token), decision{target: domain.OfferStatusRejected, reason: reason}, true)
}

type offerLookup func(ctx context.Context, repo OfferRepository) (*domain.Offer, error)

func (s *OfferService) byID(tenantID, offerID string) offerLookup {
	return func(ctx context.Context, repo OfferRepository) (*domain.Offer, error) {
		offer, err := repo.FindByIDForUpdate(ctx, tenantID, offerID)
		if err != nil {
			return nil, offerLookupErr(offerID, err)
		}
		return offer, nil
	}
}

func (s *OfferService) byToken(token string) offerLookup {
	return func(ctx context.Context, repo OfferRepository) (*domain.Offer, error) {
		if token == "" {
			return nil, domain.ErrInvalidApprovalToken
		}
		claims, err := s.tokens.Parse(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidApprovalToken, err)
		}
		offer, err := repo.FindByTokenForUpdate(ctx, token)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return nil, domain.ErrInvalidApprovalToken
			}
			return nil, err //nolint:wrapcheck
		}
		if claims.OfferID != offer.ID || claims.TenantID != offer.TenantID {
			return nil, domain.ErrInvalidApprovalToken
		}
		return offer, nil
	}
}

// decide применяет решение клиента. Если срок действия истек, предложение переводится в EXPIRED,
// изменение сохраняется, а вызов завершается domain.ErrOfferExpired.
func (s *OfferService) decide(
	ctx context.Context,
	lookup offerLookup,
	d decision,
	external bool,
) (*domain.Offer, error) {
	var (
		result  *domain.Offer
		expired bool
	)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OfferRepository](tx, uow.RepositoryName(repoargs.OfferRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		offer, err := lookup(c, repo)
		if err != nil {
			return err
		}
		if offer.Status.IsTerminal() || (external && offer.Status != domain.OfferStatusSent) {
			return fmt.Errorf("%s -> %s: %w", offer.Status, d.target, domain.ErrInvalidOfferTransition)
		}

		now := s.now()
		if offer.IsPastDeadline(now) {
			expired = true
			offer.Status = domain.OfferStatusExpired
			offer.ApprovalToken = ""
			_, err = repo.Update(c, offer)
			return err //nolint:wrapcheck
		}

		items, err := repo.GetItems(c, offer.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if d.target == domain.OfferStatusApproved && len(items) == 0 {
			return domain.ErrOfferHasNoItems
		}

		offer.Status = d.target
		offer.ApprovalToken = ""
		offer.RejectionReason = d.reason
		offer.DecidedAt = &now
		if result, err = repo.Update(c, offer); err != nil {
			return err //nolint:wrapcheck
		}
		result.Items = items
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("deciding offer: %w", txErr)
	}
	if expired {
		return nil, domain.ErrOfferExpired
	}

	s.log.WithFields(logrus.Fields{"offer_id": result.ID, "status": result.Status, "external": external}).
		Info("offer decided")
	if result.Status == domain.OfferStatusApproved {
		if pubErr := s.publishApproved(ctx, result); pubErr != nil {
			s.log.WithError(pubErr).WithField("offer_id", result.ID).Warn("publishing offer.approved failed")
		}
	}
	return result, nil
}

// Cancel отменяет черновик или отправленное предложение.
func (s *OfferService) Cancel(ctx context.Context, tenantID, offerID string) (*domain.Offer, error) {
	var result *domain.Offer
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, offer, err := s.lockOffer(c, tx, tenantID, offerID)
		if err != nil {
			return err
		}
		if offer.Status.IsTerminal() {
			return fmt.Errorf("%s -> %s: %w", offer.Status, domain.OfferStatusCancelled,
				domain.ErrInvalidOfferTransition)
		}
		now := s.now()
		offer.Status = domain.OfferStatusCancelled
		offer.ApprovalToken = ""
		offer.DecidedAt = &now
		result, err = repo.Update(c, offer)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("canceling offer `%s`: %w", offerID, txErr)
	}
	return result, nil
}

// Get возвращает предложение с позициями. Отправленное или одобренное, но еще не использованное
// предложение с истекшим сроком переводится в EXPIRED при чтении.
func (s *OfferService) Get(ctx context.Context, tenantID, offerID string) (*domain.Offer, error) {
	offer, err := s.offerRepo.FindByID(ctx, tenantID, offerID)
	if err != nil {
		return nil, offerLookupErr(offerID, err)
	}
	if expiresOnRead(offer) && offer.IsPastDeadline(s.now()) {
		changed, expErr := s.offerRepo.ExpireIfOpen(ctx, tenantID, offerID)
		if expErr != nil {
			return nil, expErr //nolint:wrapcheck
		}
		if changed {
			offer.Status = domain.OfferStatusExpired
			offer.ApprovalToken = ""
		} else if offer, err = s.offerRepo.FindByID(ctx, tenantID, offerID); err != nil {
			return nil, offerLookupErr(offerID, err)
		}
	}
	if offer.Items, err = s.offerRepo.GetItems(ctx, offerID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return offer, nil
}

func expiresOnRead(offer *domain.Offer) bool {
	return offer.Status == domain.OfferStatusSent ||
		(offer.Status == domain.OfferStatusApproved && offer.OrderID == "")
}

// Consume связывает одобренное предложение с созданным по нему заказом. Повтор с тем же заказом
// ничего не меняет.
func (s *OfferService) Consume(ctx context.Context, tenantID, offerID, orderID string) (*domain.Offer, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order is required: %w", domain.ErrInvalidInput)
	}
	var result *domain.Offer
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, offer, err := s.lockOffer(c, tx, tenantID, offerID)
		if err != nil {
			return err
		}
		switch {
		case offer.Status != domain.OfferStatusApproved:
			return fmt.Errorf("offer %s is %s: %w", offer.OfferNumber, offer.Status, domain.ErrOfferNotApproved)
		case offer.OrderID == orderID:
			result = offer
			return nil
		case offer.OrderID != "":
			return fmt.Errorf("offer %s -> order %s: %w", offer.OfferNumber, offer.OrderID,
				domain.ErrOfferAlreadyConsumed)
		}
		offer.OrderID = orderID
		result, err = repo.Update(c, offer)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("consuming offer `%s`: %w", offerID, txErr)
	}
	return result, nil
}

// ExpireOverdue переводит в EXPIRED до limit отправленных предложений с истекшим сроком.
// Возвращает число переведенных предложений.
func (s *OfferService) ExpireOverdue(ctx context.Context, limit uint) (int, error) {
	overdue, err := s.offerRepo.ListOverdue(ctx, s.now(), limit)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	var (
		expired int
		errs    []error
	)
	for _, offer := range overdue {
		changed, expErr := s.offerRepo.ExpireIfOpen(ctx, offer.TenantID, offer.ID)
		if expErr != nil {
			errs = append(errs, expErr)
			continue
		}
		if changed {
			expired++
		}
	}
	if expired > 0 {
		s.log.WithField("count", expired).Info("overdue offers expired")
	}
	return expired, errors.Join(errs...)
}

func (s *OfferService) lockOffer(
	ctx context.Context,
	tx uow.TX,
	tenantID, offerID string,
) (OfferRepository, *domain.Offer, error) {
	repo, err := uow.GetAs[OfferRepository](tx, uow.RepositoryName(repoargs.OfferRepoName))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	offer, err := repo.FindByIDForUpdate(ctx, tenantID, offerID)
	if err != nil {
		return nil, nil, offerLookupErr(offerID, err)
	}
	return repo, offer, nil
}

func (s *OfferService) publishApproved(ctx context.Context, offer *domain.Offer) error {
	items := make([]events.LineItem, len(offer.Items))
	for i, it := range offer.Items {
		items[i] = events.LineItem{
			ProductID:  it.ProductID,
			SKU:        it.SKU,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Total:      it.Total,
			LineNumber: it.LineNumber,
		}
	}
	payload := events.OfferApproved{
		OfferID:     offer.ID,
		OfferNumber: offer.OfferNumber,
		CustomerID:  offer.CustomerID,
		Currency:    offer.Currency,
		GrandTotal:  offer.GrandTotal,
		ValidUntil:  offer.ValidUntil,
		LineItems:   items,
	}
	if offer.DecidedAt != nil {
		payload.ApprovedAt = *offer.DecidedAt
	}
	evt, err := events.New(events.TypeOfferApproved, offer.TenantID, OffersEventSource, offer.ID, payload)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return s.publisher.Publish(ctx, evt) //nolint:wrapcheck
}

// applyOfferTotals пересчитывает итоги предложения по текущим позициям.
func applyOfferTotals(offer *domain.Offer) error {
	lines := make([]pricing.Line, len(offer.Items))
	for i, it := range offer.Items {
		lines[i] = pricing.Line{
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TaxPercent:      it.TaxPercent,
		}
	}
	totals, err := pricing.AggregateTotals(lines)
	if err != nil {
		return err //nolint:wrapcheck
	}
	offer.Subtotal = totals.Subtotal
	offer.DiscountTotal = totals.DiscountTotal
	offer.TaxTotal = totals.TaxTotal
	offer.GrandTotal = totals.GrandTotal
	return nil
}

func lineItemFromInput(in LineItemInput) domain.OfferLineItem {
	return domain.OfferLineItem{
		ProductID:       in.ProductID,
		SKU:             in.SKU,
		Description:     in.Description,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		DiscountPercent: in.DiscountPercent,
		TaxPercent:      in.TaxPercent,
	}
}

func findLineItem(items []domain.OfferLineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func offerLookupErr(offerID string, err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("offer %s: %w", offerID, domain.ErrOfferNotFound)
	}
	return err
}
