package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rentaro/lease-engine/pkg/uow"
)

// Services собранный сервисный слой. Репозитории должны быть
// зарегистрированы в unit-of-work до вызова фабрики.
type Services struct {
	Order *OrderService
}

func NewServices(
	u uow.UOW,
	listing ListingGateway,
	notifier NotificationGateway,
	l *logrus.Logger,
) (*Services, error) {
	orderService, err := NewOrderService(u, listing, notifier, l)
	if err != nil {
		return nil, fmt.Errorf("building order service: %w", err)
	}
	return &Services{Order: orderService}, nil
}
