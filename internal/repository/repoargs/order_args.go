package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrder все поля заказа, фиксируемые при создании. Статус всегда
// UNPAID, его задает репозиторий.
type CreateOrder struct {
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
}

// PaymentStamp платежные поля, проставляемые один раз при переходе
// UNPAID -> PAID.
type PaymentStamp struct {
	PayMethod     string
	TransactionID string
	PayTime       time.Time
}

// TerminateApply поля заявки на расторжение (переход в TERMINATE_REQUESTED).
type TerminateApply struct {
	Reason        string
	RequestTime   time.Time
	ExpectedDate  time.Time
	PenaltyAmount decimal.Decimal
}

// TerminateApprove поля одобрения расторжения (переход в TERMINATE_APPROVED).
// PenaltyAmount здесь окончательная: либо оценка из заявки, либо оверрайд
// арендодателя.
type TerminateApprove struct {
	ActualDate    time.Time
	PenaltyAmount decimal.Decimal
	ElapsedDays   int
	RemainingDays int
}
