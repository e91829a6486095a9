package service

import (
	"context"
	"time"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// OrderRepository хранилище агрегата заказа. Методы Get*ForUpdate берут
// блокировку строки и имеют смысл только внутри транзакции uow.Do; методы
// Mark*/Apply*/... меняют статус и поля по id без дополнительных проверок -
// статусный guard выполняет сервис, держа блокировку.
type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	GetByTenant(ctx context.Context, tenantID int64) ([]domain.Order, error)
	GetByLandlord(ctx context.Context, landlordID int64) ([]domain.Order, error)

	MarkPaid(ctx context.Context, id int64, stamp repoargs.PaymentStamp) error
	MarkCancelled(ctx context.Context, id int64, status domain.OrderStatus, reason string) error
	ApplyTerminate(ctx context.Context, id int64, args repoargs.TerminateApply) error
	RejectTerminate(ctx context.Context, id int64, rejectReason string) error
	ApproveTerminate(ctx context.Context, id int64, args repoargs.TerminateApprove) error
	MarkTerminated(ctx context.Context, id int64, actualDate, terminateTime time.Time) error
	MarkPenaltyPaid(ctx context.Context, id int64, payMethod string, payTime time.Time) error

	// Методы плановых джоб.
	ActivateStarted(ctx context.Context, today time.Time) ([]int64, error)
	CompleteElapsed(ctx context.Context, today time.Time) ([]domain.ListingRef, error)
	ExpireUnpaid(ctx context.Context, olderThan time.Time) (int64, error)
	ListingsPendingRelease(ctx context.Context, limit uint) ([]domain.ListingRef, error)
}

// TerminateRequestRepository история заявок на расторжение.
type TerminateRequestRepository interface {
	Create(ctx context.Context, args repoargs.CreateTerminateRequest) (*domain.TerminateRequest, error)
	CountByTenantListing(ctx context.Context, tenantID, listingID int64) (int64, error)
}

// OutboxRepository транзакционный outbox доменных событий.
type OutboxRepository interface {
	Enqueue(ctx context.Context, args repoargs.EnqueueEvent) error
	GetPending(ctx context.Context, limit uint) ([]domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []int64) error
}

// ListingGateway узкий интерфейс listing-сервиса: ценовые данные и статус
// доступности объявления.
type ListingGateway interface {
	GetPricingInfo(ctx context.Context, listingID int64) (*domain.ListingPricing, error)
	GetStatus(ctx context.Context, listingID int64) (domain.ListingStatus, error)
	SetStatus(ctx context.Context, listingID int64, status domain.ListingStatus) error
}

// NotificationGateway fire-and-forget доставка уведомлений контрагентам.
// Ошибки доставки никогда не влияют на результат операции.
type NotificationGateway interface {
	Notify(ctx context.Context, userID int64, title, body string, orderID int64) error
}
