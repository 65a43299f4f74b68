package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/events"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/repository/repoargs"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service/mocks"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/service/tokens"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
	uowmocks "github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow/mocks"
)

type OfferServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockOfferRepo *mocks.MockOfferRepository
	mockTokens    *mocks.MockApprovalTokens
	mockPublisher *mocks.MockEventPublisher
	offerService  *OfferService
	now           time.Time
}

func TestOfferServiceSuite(t *testing.T) {
	suite.Run(t, new(OfferServiceTestSuite))
}

func (s *OfferServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockOfferRepo = mocks.NewMockOfferRepository(s.mockCtrl)
	s.mockTokens = mocks.NewMockApprovalTokens(s.mockCtrl)
	s.mockPublisher = mocks.NewMockEventPublisher(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OfferRepoName)).
		Return(s.mockOfferRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OfferRepoName)).Return(s.mockOfferRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	offerService, err := NewOfferService(s.mockUOW, s.mockTokens, s.mockPublisher, logger)
	s.Require().NoError(err)
	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	offerService.now = func() time.Time { return s.now }
	s.offerService = offerService
}

func (s *OfferServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OfferServiceTestSuite) offer(status domain.OfferStatusType) *domain.Offer {
	return &domain.Offer{
		ID:          "offer-1",
		TenantID:    testTenant,
		OfferNumber: "OFF-20240310-ABCDEF",
		CustomerID:  "customer-1",
		Status:      status,
		Currency:    "EUR",
		ValidUntil:  s.now.Add(72 * time.Hour),
	}
}

func lineItem(id string, n int, qty, price int64) domain.OfferLineItem {
	return domain.OfferLineItem{
		ID:         id,
		OfferID:    "offer-1",
		SKU:        "SKU-" + id,
		Quantity:   decimal.NewFromInt(qty),
		UnitPrice:  decimal.NewFromInt(price),
		Total:      decimal.NewFromInt(qty * price),
		LineNumber: n,
	}
}

// expectUpdateEcho возвращает из Update переданное предложение.
func (s *OfferServiceTestSuite) expectUpdateEcho(check func(o *domain.Offer)) {
	s.mockOfferRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Offer) (*domain.Offer, error) {
			if check != nil {
				check(o)
			}
			updated := *o
			return &updated, nil
		})
}

func (s *OfferServiceTestSuite) TestCreate() {
	s.mockOfferRepo.EXPECT().OfferNumberExists(gomock.Any(), testTenant, gomock.Any()).Return(false, nil)
	s.mockOfferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Offer) (*domain.Offer, error) {
			created := *o
			return &created, nil
		})

	offer, err := s.offerService.Create(s.T().Context(), CreateOfferArgs{
		TenantID:   testTenant,
		CustomerID: "customer-1",
		Currency:   "usd",
		ValidUntil: s.now.Add(24 * time.Hour),
	})
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusDraft, offer.Status)
	s.Equal("USD", offer.Currency)
	s.Regexp(`^OFF-20240315-[A-Z0-9]{6}$`, offer.OfferNumber)
	s.NotEmpty(offer.ID)
}

func (s *OfferServiceTestSuite) TestCreateRejectsInvalidInput() {
	cases := map[string]CreateOfferArgs{
		"no customer":   {TenantID: testTenant, Currency: "EUR", ValidUntil: s.now.Add(time.Hour)},
		"bad currency":  {TenantID: testTenant, CustomerID: "c", Currency: "EU", ValidUntil: s.now.Add(time.Hour)},
		"past deadline": {TenantID: testTenant, CustomerID: "c", Currency: "EUR", ValidUntil: s.now.Add(-time.Hour)},
	}
	for name, args := range cases {
		s.Run(name, func() {
			_, err := s.offerService.Create(s.T().Context(), args)
			s.Require().ErrorIs(err, domain.ErrInvalidInput)
		})
	}
}

func (s *OfferServiceTestSuite) TestAddLineItemRecalculatesTotals() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusDraft), nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").
		Return([]domain.OfferLineItem{lineItem("item-1", 1, 1, 5)}, nil)
	s.mockOfferRepo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *domain.OfferLineItem) (*domain.OfferLineItem, error) {
			s.Equal(2, it.LineNumber)
			s.Equal("21.6", it.Total.String())
			created := *it
			return &created, nil
		})
	s.expectUpdateEcho(nil)

	offer, err := s.offerService.AddLineItem(s.T().Context(), testTenant, "offer-1", LineItemInput{
		SKU:             "SKU-2",
		Quantity:        decimal.NewFromInt(2),
		UnitPrice:       decimal.NewFromInt(10),
		DiscountPercent: decimal.NewFromInt(10),
		TaxPercent:      decimal.NewFromInt(20),
	})
	s.Require().NoError(err)
	s.Len(offer.Items, 2)
	s.Equal("25", offer.Subtotal.String())
	s.Equal("2", offer.DiscountTotal.String())
	s.Equal("3.6", offer.TaxTotal.String())
	s.Equal("26.6", offer.GrandTotal.String())
}

func (s *OfferServiceTestSuite) TestAddLineItemRejectsInvalidLine() {
	_, err := s.offerService.AddLineItem(s.T().Context(), testTenant, "offer-1", LineItemInput{
		Quantity:  decimal.Zero,
		UnitPrice: decimal.NewFromInt(10),
	})
	s.Require().ErrorIs(err, domain.ErrInvalidInput)
}

func (s *OfferServiceTestSuite) TestUpdateLineItem() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusSent), nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").
		Return([]domain.OfferLineItem{lineItem("item-1", 1, 1, 5), lineItem("item-2", 2, 1, 7)}, nil)
	s.mockOfferRepo.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *domain.OfferLineItem) (*domain.OfferLineItem, error) {
			s.Equal("item-2", it.ID)
			s.Equal(2, it.LineNumber)
			updated := *it
			return &updated, nil
		})
	s.expectUpdateEcho(nil)

	offer, err := s.offerService.UpdateLineItem(s.T().Context(), testTenant, "offer-1", "item-2", LineItemInput{
		Quantity:  decimal.NewFromInt(3),
		UnitPrice: decimal.NewFromInt(7),
	})
	s.Require().NoError(err)
	s.Equal("26", offer.GrandTotal.String())
}

func (s *OfferServiceTestSuite) TestUpdateUnknownLineItem() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusDraft), nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return(nil, nil)

	_, err := s.offerService.UpdateLineItem(s.T().Context(), testTenant, "offer-1", "missing", LineItemInput{
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromInt(1),
	})
	s.Require().ErrorIs(err, domain.ErrLineItemNotFound)
}

func (s *OfferServiceTestSuite) TestDeleteLineItemRenumbers() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusDraft), nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return([]domain.OfferLineItem{
		lineItem("item-1", 1, 1, 5),
		lineItem("item-2", 2, 1, 7),
		lineItem("item-3", 3, 2, 4),
	}, nil)
	s.mockOfferRepo.EXPECT().DeleteItem(gomock.Any(), "offer-1", "item-1").Return(nil)
	s.mockOfferRepo.EXPECT().BatchUpdateLineNumbers(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, items []domain.OfferLineItem, fn repoargs.BatchExecQueryRow) {
			s.Require().Len(items, 2)
			s.Equal("item-2", items[0].ID)
			s.Equal(1, items[0].LineNumber)
			s.Equal("item-3", items[1].ID)
			s.Equal(2, items[1].LineNumber)
			for i := range items {
				fn(i, nil)
			}
		})
	s.expectUpdateEcho(nil)

	offer, err := s.offerService.DeleteLineItem(s.T().Context(), testTenant, "offer-1", "item-1")
	s.Require().NoError(err)
	s.Len(offer.Items, 2)
	s.Equal("15", offer.GrandTotal.String())
}

func (s *OfferServiceTestSuite) TestDeleteLineItemBatchFailure() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusDraft), nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return([]domain.OfferLineItem{
		lineItem("item-1", 1, 1, 5),
		lineItem("item-2", 2, 1, 7),
	}, nil)
	s.mockOfferRepo.EXPECT().DeleteItem(gomock.Any(), "offer-1", "item-1").Return(nil)
	batchErr := errors.New("batch failed")
	s.mockOfferRepo.EXPECT().BatchUpdateLineNumbers(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ []domain.OfferLineItem, fn repoargs.BatchExecQueryRow) {
			fn(0, batchErr)
		})

	_, err := s.offerService.DeleteLineItem(s.T().Context(), testTenant, "offer-1", "item-1")
	s.Require().ErrorIs(err, batchErr)
}

func (s *OfferServiceTestSuite) TestEditFrozenOffer() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusApproved), nil)

	_, err := s.offerService.DeleteLineItem(s.T().Context(), testTenant, "offer-1", "item-1")
	s.Require().ErrorIs(err, domain.ErrOfferFrozen)
}

func (s *OfferServiceTestSuite) TestSendIssuesToken() {
	draft := s.offer(domain.OfferStatusDraft)
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").Return(draft, nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").
		Return([]domain.OfferLineItem{lineItem("item-1", 1, 1, 5)}, nil)
	s.mockTokens.EXPECT().Issue("offer-1", testTenant, draft.ValidUntil).Return("signed-token", nil)
	s.expectUpdateEcho(func(o *domain.Offer) {
		s.Equal(domain.OfferStatusSent, o.Status)
		s.Equal("signed-token", o.ApprovalToken)
	})

	offer, err := s.offerService.Send(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusSent, offer.Status)
	s.Len(offer.Items, 1)
}

func (s *OfferServiceTestSuite) TestResendKeepsToken() {
	sent := s.offer(domain.OfferStatusSent)
	sent.ApprovalToken = "existing"
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").Return(sent, nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").
		Return([]domain.OfferLineItem{lineItem("item-1", 1, 1, 5)}, nil)
	s.expectUpdateEcho(func(o *domain.Offer) {
		s.Equal("existing", o.ApprovalToken)
	})

	_, err := s.offerService.Send(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
}

func (s *OfferServiceTestSuite) TestSendRejections() {
	s.Run("no items", func() {
		s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
			Return(s.offer(domain.OfferStatusDraft), nil)
		s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return(nil, nil)

		_, err := s.offerService.Send(s.T().Context(), testTenant, "offer-1")
		s.Require().ErrorIs(err, domain.ErrOfferHasNoItems)
	})
	s.Run("approved", func() {
		s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
			Return(s.offer(domain.OfferStatusApproved), nil)

		_, err := s.offerService.Send(s.T().Context(), testTenant, "offer-1")
		s.Require().ErrorIs(err, domain.ErrInvalidOfferTransition)
	})
	s.Run("past deadline", func() {
		overdue := s.offer(domain.OfferStatusDraft)
		overdue.ValidUntil = s.now.Add(-time.Minute)
		s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").Return(overdue, nil)

		_, err := s.offerService.Send(s.T().Context(), testTenant, "offer-1")
		s.Require().ErrorIs(err, domain.ErrOfferExpired)
	})
	s.Run("not found", func() {
		s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
			Return(nil, domain.ErrRecordNotFound)

		_, err := s.offerService.Send(s.T().Context(), testTenant, "offer-1")
		s.Require().ErrorIs(err, domain.ErrOfferNotFound)
	})
}

func (s *OfferServiceTestSuite) TestApprovePublishesEvent() {
	sent := s.offer(domain.OfferStatusSent)
	sent.ApprovalToken = "signed-token"
	sent.GrandTotal = decimal.NewFromInt(5)
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").Return(sent, nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").
		Return([]domain.OfferLineItem{lineItem("item-1", 1, 1, 5)}, nil)
	s.expectUpdateEcho(func(o *domain.Offer) {
		s.Equal(domain.OfferStatusApproved, o.Status)
		s.Empty(o.ApprovalToken)
		s.Require().NotNil(o.DecidedAt)
		s.Equal(s.now, *o.DecidedAt)
	})

	var published events.Event
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt events.Event) error {
			published = evt
			return nil
		})

	offer, err := s.offerService.Approve(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusApproved, offer.Status)

	s.Equal(events.TypeOfferApproved, published.Type)
	s.Equal(testTenant, published.TenantID)
	payload, err := events.Decode[events.OfferApproved](published)
	s.Require().NoError(err)
	s.Equal("offer-1", payload.OfferID)
	s.Equal("5", payload.GrandTotal.String())
	s.Len(payload.LineItems, 1)
	s.Equal(s.now, payload.ApprovedAt.UTC())
}

func (s *OfferServiceTestSuite) TestApproveIgnoresPublishFailure() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusSent), nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").
		Return([]domain.OfferLineItem{lineItem("item-1", 1, 1, 5)}, nil)
	s.expectUpdateEcho(nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := s.offerService.Approve(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
}

func (s *OfferServiceTestSuite) TestApproveWithoutItems() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusDraft), nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return(nil, nil)

	_, err := s.offerService.Approve(s.T().Context(), testTenant, "offer-1")
	s.Require().ErrorIs(err, domain.ErrOfferHasNoItems)
}

func (s *OfferServiceTestSuite) TestDecisionAfterDeadlineExpiresOffer() {
	overdue := s.offer(domain.OfferStatusSent)
	overdue.ApprovalToken = "signed-token"
	overdue.ValidUntil = s.now.Add(-time.Second)
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").Return(overdue, nil)
	s.expectUpdateEcho(func(o *domain.Offer) {
		s.Equal(domain.OfferStatusExpired, o.Status)
		s.Empty(o.ApprovalToken)
	})

	_, err := s.offerService.Reject(s.T().Context(), testTenant, "offer-1", "too late")
	s.Require().ErrorIs(err, domain.ErrOfferExpired)
}

func (s *OfferServiceTestSuite) TestDecisionOnTerminalOffer() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusRejected), nil)

	_, err := s.offerService.Approve(s.T().Context(), testTenant, "offer-1")
	s.Require().ErrorIs(err, domain.ErrInvalidOfferTransition)
}

func (s *OfferServiceTestSuite) TestRejectByToken() {
	sent := s.offer(domain.OfferStatusSent)
	sent.ApprovalToken = "signed-token"
	s.mockTokens.EXPECT().Parse("signed-token").
		Return(&tokens.ApprovalClaims{OfferID: "offer-1", TenantID: testTenant}, nil)
	s.mockOfferRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "signed-token").Return(sent, nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return(nil, nil)
	s.expectUpdateEcho(func(o *domain.Offer) {
		s.Equal(domain.OfferStatusRejected, o.Status)
		s.Equal("price too high", o.RejectionReason)
	})

	offer, err := s.offerService.RejectByToken(s.T().Context(), "signed-token", "price too high")
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusRejected, offer.Status)
}

func (s *OfferServiceTestSuite) TestDecideByInvalidToken() {
	s.Run("empty", func() {
		_, err := s.offerService.ApproveByToken(s.T().Context(), "")
		s.Require().ErrorIs(err, domain.ErrInvalidApprovalToken)
	})
	s.Run("bad signature", func() {
		s.mockTokens.EXPECT().Parse("forged").Return(nil, tokens.ErrInvalidToken)

		_, err := s.offerService.ApproveByToken(s.T().Context(), "forged")
		s.Require().ErrorIs(err, domain.ErrInvalidApprovalToken)
	})
	s.Run("unknown token", func() {
		s.mockTokens.EXPECT().Parse("stale").
			Return(&tokens.ApprovalClaims{OfferID: "offer-1", TenantID: testTenant}, nil)
		s.mockOfferRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "stale").Return(nil, domain.ErrRecordNotFound)

		_, err := s.offerService.ApproveByToken(s.T().Context(), "stale")
		s.Require().ErrorIs(err, domain.ErrInvalidApprovalToken)
	})
	s.Run("claims mismatch", func() {
		s.mockTokens.EXPECT().Parse("swapped").
			Return(&tokens.ApprovalClaims{OfferID: "offer-2", TenantID: testTenant}, nil)
		s.mockOfferRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "swapped").
			Return(s.offer(domain.OfferStatusSent), nil)

		_, err := s.offerService.ApproveByToken(s.T().Context(), "swapped")
		s.Require().ErrorIs(err, domain.ErrInvalidApprovalToken)
	})
}

func (s *OfferServiceTestSuite) TestApproveByTokenRequiresSent() {
	s.mockTokens.EXPECT().Parse("signed-token").
		Return(&tokens.ApprovalClaims{OfferID: "offer-1", TenantID: testTenant}, nil)
	s.mockOfferRepo.EXPECT().FindByTokenForUpdate(gomock.Any(), "signed-token").
		Return(s.offer(domain.OfferStatusDraft), nil)

	_, err := s.offerService.ApproveByToken(s.T().Context(), "signed-token")
	s.Require().ErrorIs(err, domain.ErrInvalidOfferTransition)
}

func (s *OfferServiceTestSuite) TestApprovalLink() {
	sent := s.offer(domain.OfferStatusSent)
	sent.ApprovalToken = "signed-token"
	s.mockOfferRepo.EXPECT().FindByID(gomock.Any(), testTenant, "offer-1").Return(sent, nil)

	token, err := s.offerService.ApprovalLink(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
	s.Equal("signed-token", token)
}

func (s *OfferServiceTestSuite) TestCancel() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusSent), nil)
	s.expectUpdateEcho(func(o *domain.Offer) {
		s.Equal(domain.OfferStatusCancelled, o.Status)
		s.Empty(o.ApprovalToken)
	})

	offer, err := s.offerService.Cancel(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusCancelled, offer.Status)
}

func (s *OfferServiceTestSuite) TestCancelTerminalOffer() {
	s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
		Return(s.offer(domain.OfferStatusExpired), nil)

	_, err := s.offerService.Cancel(s.T().Context(), testTenant, "offer-1")
	s.Require().ErrorIs(err, domain.ErrInvalidOfferTransition)
}

func (s *OfferServiceTestSuite) TestGetExpiresOverdueOffer() {
	overdue := s.offer(domain.OfferStatusSent)
	overdue.ApprovalToken = "signed-token"
	overdue.ValidUntil = s.now.Add(-time.Hour)
	s.mockOfferRepo.EXPECT().FindByID(gomock.Any(), testTenant, "offer-1").Return(overdue, nil)
	s.mockOfferRepo.EXPECT().ExpireIfOpen(gomock.Any(), testTenant, "offer-1").Return(true, nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return(nil, nil)

	offer, err := s.offerService.Get(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusExpired, offer.Status)
	s.Empty(offer.ApprovalToken)
}

func (s *OfferServiceTestSuite) TestGetExpiresUnconsumedApprovedOffer() {
	approved := s.offer(domain.OfferStatusApproved)
	approved.ValidUntil = s.now.Add(-time.Hour)
	s.mockOfferRepo.EXPECT().FindByID(gomock.Any(), testTenant, "offer-1").Return(approved, nil)
	s.mockOfferRepo.EXPECT().ExpireIfOpen(gomock.Any(), testTenant, "offer-1").Return(true, nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return(nil, nil)

	offer, err := s.offerService.Get(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusExpired, offer.Status)
}

func (s *OfferServiceTestSuite) TestGetKeepsConsumedApprovedOffer() {
	consumed := s.offer(domain.OfferStatusApproved)
	consumed.ValidUntil = s.now.Add(-time.Hour)
	consumed.OrderID = "order-1"
	s.mockOfferRepo.EXPECT().FindByID(gomock.Any(), testTenant, "offer-1").Return(consumed, nil)
	s.mockOfferRepo.EXPECT().GetItems(gomock.Any(), "offer-1").Return(nil, nil)

	offer, err := s.offerService.Get(s.T().Context(), testTenant, "offer-1")
	s.Require().NoError(err)
	s.Equal(domain.OfferStatusApproved, offer.Status)
	s.Equal("order-1", offer.OrderID)
}

func (s *OfferServiceTestSuite) TestGetNotFound() {
	s.mockOfferRepo.EXPECT().FindByID(gomock.Any(), testTenant, "offer-1").Return(nil, domain.ErrRecordNotFound)

	_, err := s.offerService.Get(s.T().Context(), testTenant, "offer-1")
	s.Require().ErrorIs(err, domain.ErrOfferNotFound)
	s.Equal(domain.KindNotFound, domain.KindOf(err))
}

func (s *OfferServiceTestSuite) TestConsume() {
	s.Run("links order", func() {
		s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
			Return(s.offer(domain.OfferStatusApproved), nil)
		s.expectUpdateEcho(func(o *domain.Offer) {
			s.Equal("order-1", o.OrderID)
		})

		offer, err := s.offerService.Consume(s.T().Context(), testTenant, "offer-1", "order-1")
		s.Require().NoError(err)
		s.Equal("order-1", offer.OrderID)
	})
	s.Run("same order is idempotent", func() {
		consumed := s.offer(domain.OfferStatusApproved)
		consumed.OrderID = "order-1"
		s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").Return(consumed, nil)

		offer, err := s.offerService.Consume(s.T().Context(), testTenant, "offer-1", "order-1")
		s.Require().NoError(err)
		s.Equal("order-1", offer.OrderID)
	})
	s.Run("another order", func() {
		consumed := s.offer(domain.OfferStatusApproved)
		consumed.OrderID = "order-1"
		s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").Return(consumed, nil)

		_, err := s.offerService.Consume(s.T().Context(), testTenant, "offer-1", "order-2")
		s.Require().ErrorIs(err, domain.ErrOfferAlreadyConsumed)
	})
	s.Run("not approved", func() {
		s.mockOfferRepo.EXPECT().FindByIDForUpdate(gomock.Any(), testTenant, "offer-1").
			Return(s.offer(domain.OfferStatusSent), nil)

		_, err := s.offerService.Consume(s.T().Context(), testTenant, "offer-1", "order-1")
		s.Require().ErrorIs(err, domain.ErrOfferNotApproved)
	})
}

func (s *OfferServiceTestSuite) TestExpireOverdue() {
	overdue := []domain.Offer{
		{ID: "offer-1", TenantID: testTenant},
		{ID: "offer-2", TenantID: testTenant},
		{ID: "offer-3", TenantID: "tenant-2"},
	}
	expireErr := errors.New("db down")
	s.mockOfferRepo.EXPECT().ListOverdue(gomock.Any(), s.now, uint(10)).Return(overdue, nil)
	s.mockOfferRepo.EXPECT().ExpireIfOpen(gomock.Any(), testTenant, "offer-1").Return(true, nil)
	s.mockOfferRepo.EXPECT().ExpireIfOpen(gomock.Any(), testTenant, "offer-2").Return(false, nil)
	s.mockOfferRepo.EXPECT().ExpireIfOpen(gomock.Any(), "tenant-2", "offer-3").Return(false, expireErr)

	n, err := s.offerService.ExpireOverdue(s.T().Context(), 10)
	s.Require().ErrorIs(err, expireErr)
	s.Equal(1, n)
}
