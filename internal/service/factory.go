package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/pkg/uow"
)

type OrderServices struct {
	OrderService   *OrderService
	PaymentService *PaymentService
}

func OrdersFactory(unitOfWork uow.UOW, args OrderServiceArgs, gateway PaymentGateway) (*OrderServices, error) {
	orderService, orderServiceErr := NewOrderService(unitOfWork, args)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork, gateway, orderService, args.Logger)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	return &OrderServices{
		OrderService:   orderService,
		PaymentService: paymentService,
	}, nil
}

type OfferServices struct {
	OfferService *OfferService
}

func OffersFactory(
	unitOfWork uow.UOW,
	approvalTokens ApprovalTokens,
	publisher EventPublisher,
	l *logrus.Logger,
) (*OfferServices, error) {
	offerService, offerServiceErr := NewOfferService(unitOfWork, approvalTokens, publisher, l)
	if offerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", offerServiceErr.Error())
	}
	return &OfferServices{OfferService: offerService}, nil
}
