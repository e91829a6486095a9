package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order агрегат заказа аренды. Все денежные поля фиксируются при создании
// и далее не пересчитываются.
type Order struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time

	OrderNo    string
	ListingID  int64
	TenantID   int64
	LandlordID int64

	StartDate       time.Time
	EndDate         time.Time
	LeaseTermMonths int

	MonthlyRent decimal.Decimal
	Deposit     decimal.Decimal
	ServiceFee  decimal.Decimal
	TotalAmount decimal.Decimal

	Status OrderStatus

	PayTime       *time.Time
	PayMethod     string
	TransactionID string

	CancelReason string

	Termination Termination

	Deleted bool
}

// Termination суб-запись расторжения. Заполняется по мере прохождения
// флоу: заявка -> решение арендодателя -> подтверждение/оплата неустойки.
type Termination struct {
	Reason           string
	RequestTime      *time.Time
	ExpectedDate     *time.Time
	RejectReason     string
	TerminateTime    *time.Time
	ActualDate       *time.Time
	PenaltyAmount    decimal.Decimal
	PenaltyPaid      bool
	PenaltyPayMethod string
	PenaltyPayTime   *time.Time
	ElapsedDays      int
	RemainingDays    int
}

// TerminateRequest строка истории заявок на расторжение. По ней считается
// лимит заявок на пару (арендатор, объявление).
type TerminateRequest struct {
	ID           int64
	CreatedAt    time.Time
	OrderID      int64
	TenantID     int64
	ListingID    int64
	Reason       string
	ExpectedDate time.Time
}

// ListingPricing ценовые данные объявления, получаемые от listing-сервиса
// в момент создания заказа.
type ListingPricing struct {
	LandlordID     int64
	MonthlyRent    decimal.Decimal
	DepositMonths  int
	MinLeaseMonths int
	Available      bool
}

// ListingRef пара (заказ, объявление) для джобы реконсиляции.
type ListingRef struct {
	OrderID   int64
	ListingID int64
}

// OutboxEvent строка транзакционного outbox. PublishedAt == nil означает,
// что событие еще не доставлено в брокер.
type OutboxEvent struct {
	ID          int64
	EventID     string
	Topic       string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}
