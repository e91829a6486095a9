package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentaro/lease-engine/internal/domain"
)

type orderResponse struct {
	ID              int64           `json:"id"`
	OrderNo         string          `json:"orderNo"`
	ListingID       int64           `json:"listingId"`
	TenantID        int64           `json:"tenantId"`
	LandlordID      int64           `json:"landlordId"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	LeaseTermMonths int             `json:"leaseTermMonths"`
	MonthlyRent     decimal.Decimal `json:"monthlyRent"`
	Deposit         decimal.Decimal `json:"deposit"`
	ServiceFee      decimal.Decimal `json:"serviceFee"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	PayTime         *time.Time      `json:"payTime,omitempty"`
	PayMethod       string          `json:"payMethod,omitempty"`
	TransactionID   string          `json:"transactionId,omitempty"`
	CancelReason    string          `json:"cancelReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`

	Termination *terminationResponse `json:"termination,omitempty"`
}

type terminationResponse struct {
	Reason        string          `json:"reason"`
	RequestTime   *time.Time      `json:"requestTime,omitempty"`
	ExpectedDate  string          `json:"expectedDate,omitempty"`
	RejectReason  string          `json:"rejectReason,omitempty"`
	ActualDate    string          `json:"actualDate,omitempty"`
	TerminateTime *time.Time      `json:"terminateTime,omitempty"`
	PenaltyAmount decimal.Decimal `json:"penaltyAmount"`
	PenaltyPaid   bool            `json:"penaltyPaid"`
	ElapsedDays   int             `json:"elapsedDays"`
	RemainingDays int             `json:"remainingDays"`
}

func newOrderResponse(order *domain.Order) *orderResponse {
	resp := &orderResponse{
		ID:              order.ID,
		OrderNo:         order.OrderNo,
		ListingID:       order.ListingID,
		TenantID:        order.TenantID,
		LandlordID:      order.LandlordID,
		StartDate:       order.StartDate.Format(dateLayout),
		EndDate:         order.EndDate.Format(dateLayout),
		LeaseTermMonths: order.LeaseTermMonths,
		MonthlyRent:     order.MonthlyRent,
		Deposit:         order.Deposit,
		ServiceFee:      order.ServiceFee,
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		PayTime:         order.PayTime,
		PayMethod:       order.PayMethod,
		TransactionID:   order.TransactionID,
		CancelReason:    order.CancelReason,
		CreatedAt:       order.CreatedAt,
	}

	if order.Termination.RequestTime != nil {
		t := &terminationResponse{
			Reason:        order.Termination.Reason,
			RequestTime:   order.Termination.RequestTime,
			RejectReason:  order.Termination.RejectReason,
			TerminateTime: order.Termination.TerminateTime,
			PenaltyAmount: order.Termination.PenaltyAmount,
			PenaltyPaid:   order.Termination.PenaltyPaid,
			ElapsedDays:   order.Termination.ElapsedDays,
			RemainingDays: order.Termination.RemainingDays,
		}
		if order.Termination.ExpectedDate != nil {
			t.ExpectedDate = order.Termination.ExpectedDate.Format(dateLayout)
		}
		if order.Termination.ActualDate != nil {
			t.ActualDate = order.Termination.ActualDate.Format(dateLayout)
		}
		resp.Termination = t
	}
	return resp
}
