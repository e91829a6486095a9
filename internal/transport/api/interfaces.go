package api

import (
	"context"
	"time"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// OrderServicer операции жизненного цикла заказа, доступные по HTTP.
type OrderServicer interface {
	Create(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	Pay(ctx context.Context, orderID, payerID int64, payMethod string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID, requesterID int64, reason string) (*domain.Order, error)
	CancelPayment(ctx context.Context, orderID, requesterID int64, reason string) (*domain.Order, error)
	ApplyTerminate(ctx context.Context, orderID, tenantID int64, reason string, expectedDate time.Time) (*domain.Order, error)
	HandleTerminateRequest(ctx context.Context, args service.HandleTerminateArgs) (*domain.Order, error)
	ConfirmTermination(ctx context.Context, orderID, landlordID int64) (*domain.Order, error)
	PayPenalty(ctx context.Context, orderID, tenantID int64, payMethod string) (*domain.Order, error)

	GetByID(ctx context.Context, orderID, requesterID int64) (*domain.Order, error)
	GetByTenant(ctx context.Context, tenantID int64) ([]domain.Order, error)
	GetByLandlord(ctx context.Context, landlordID int64) ([]domain.Order, error)
	IncomeReport(ctx context.Context, landlordID int64, from, to time.Time) (*service.IncomeReport, error)
}
