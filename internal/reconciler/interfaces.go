package reconciler

import (
	"context"
	"time"

	"github.com/rentaro/lease-engine/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// OrderServicer срез сервиса заказов, нужный плановым джобам.
type OrderServicer interface {
	ListingsPendingRelease(ctx context.Context, limit uint) ([]domain.ListingRef, error)
	RolloverLeases(ctx context.Context) (activated, completed int, err error)
	ExpireStaleUnpaid(ctx context.Context, ttl time.Duration) (int64, error)
}

// ListingGateway статус объявления во внешнем listing-сервисе.
type ListingGateway interface {
	GetStatus(ctx context.Context, listingID int64) (domain.ListingStatus, error)
	SetStatus(ctx context.Context, listingID int64, status domain.ListingStatus) error
}
