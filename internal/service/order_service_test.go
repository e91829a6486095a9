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

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/repository/repoargs"
	"github.com/rentaro/lease-engine/internal/service/mocks"
	"github.com/rentaro/lease-engine/pkg/uow"
	uowmocks "github.com/rentaro/lease-engine/pkg/uow/mocks"
)

const (
	testOrderID    int64 = 1
	testListingID  int64 = 7
	testTenantID   int64 = 10
	testLandlordID int64 = 20
)

// nopNotifier безопасен для вызова из горутины после завершения теста,
// в отличие от gomock.
type nopNotifier struct{}

func (nopNotifier) Notify(_ context.Context, _ int64, _, _ string, _ int64) error {
	return nil
}

type OrderServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	u         *uowmocks.MockUOW
	tx        *uowmocks.MockTX
	orderRepo *mocks.MockOrderRepository
	trRepo    *mocks.MockTerminateRequestRepository
	outbox    *mocks.MockOutboxRepository
	listing   *mocks.MockListingGateway
	svc       *OrderService
	now       time.Time
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.u = uowmocks.NewMockUOW(s.ctrl)
	s.tx = uowmocks.NewMockTX(s.ctrl)
	s.orderRepo = mocks.NewMockOrderRepository(s.ctrl)
	s.trRepo = mocks.NewMockTerminateRequestRepository(s.ctrl)
	s.outbox = mocks.NewMockOutboxRepository(s.ctrl)
	s.listing = mocks.NewMockListingGateway(s.ctrl)
	s.now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	s.u.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.orderRepo, nil)
	s.tx.EXPECT().
		Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.orderRepo, nil).
		AnyTimes()
	s.tx.EXPECT().
		Get(uow.RepositoryName(repoargs.TerminateRequestRepoName)).
		Return(s.trRepo, nil).
		AnyTimes()
	s.tx.EXPECT().
		Get(uow.RepositoryName(repoargs.OutboxRepoName)).
		Return(s.outbox, nil).
		AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	svc, err := NewOrderService(s.u, s.listing, nopNotifier{}, l)
	s.Require().NoError(err)
	svc.now = func() time.Time { return s.now }
	s.svc = svc
}

func (s *OrderServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectTx подставляет мок транзакции вместо настоящей.
func (s *OrderServiceSuite) expectTx() {
	s.u.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.tx)
		})
}

// order заказ на 180 дней с 2026-03-01: аренда 3000/мес на 6 месяцев,
// депозит 3000, сервисный сбор 60, итого 21060.
func (s *OrderServiceSuite) order(status domain.OrderStatus) *domain.Order {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Order{
		ID:              testOrderID,
		OrderNo:         "RO17420000000000010",
		ListingID:       testListingID,
		TenantID:        testTenantID,
		LandlordID:      testLandlordID,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 180),
		LeaseTermMonths: 6,
		MonthlyRent:     decimal.RequireFromString("3000"),
		Deposit:         decimal.RequireFromString("3000"),
		ServiceFee:      decimal.RequireFromString("60"),
		TotalAmount:     decimal.RequireFromString("21060"),
		Status:          status,
	}
}

func (s *OrderServiceSuite) TestCreateSuccess() {
	ctx := context.Background()
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)

	s.listing.EXPECT().
		GetPricingInfo(ctx, testListingID).
		Return(&domain.ListingPricing{
			LandlordID:     testLandlordID,
			MonthlyRent:    decimal.RequireFromString("3000"),
			DepositMonths:  1,
			MinLeaseMonths: 3,
			Available:      true,
		}, nil)
	s.orderRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
			s.Equal(testLandlordID, args.LandlordID)
			s.Equal(6, args.LeaseTermMonths)
			s.True(args.Deposit.Equal(decimal.RequireFromString("3000")), args.Deposit.String())
			s.True(args.ServiceFee.Equal(decimal.RequireFromString("60")), args.ServiceFee.String())
			s.True(args.TotalAmount.Equal(decimal.RequireFromString("21060")), args.TotalAmount.String())
			s.NotEmpty(args.OrderNo)
			return s.order(domain.OrderStatusUnpaid), nil
		})

	order, err := s.svc.Create(ctx, CreateOrderArgs{
		ListingID: testListingID,
		TenantID:  testTenantID,
		StartDate: start,
		EndDate:   end,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusUnpaid, order.Status)
}

func (s *OrderServiceSuite) TestCreateListingUnavailable() {
	ctx := context.Background()
	s.listing.EXPECT().
		GetPricingInfo(ctx, testListingID).
		Return(&domain.ListingPricing{Available: false}, nil)

	_, err := s.svc.Create(ctx, CreateOrderArgs{
		ListingID: testListingID,
		TenantID:  testTenantID,
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
}

func (s *OrderServiceSuite) TestCreateListingGatewayDown() {
	ctx := context.Background()
	s.listing.EXPECT().
		GetPricingInfo(ctx, testListingID).
		Return(nil, errors.New("connection refused"))

	_, err := s.svc.Create(ctx, CreateOrderArgs{
		ListingID: testListingID,
		TenantID:  testTenantID,
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	var depErr *domain.DependencyError
	s.Require().ErrorAs(err, &depErr)
	s.Equal("listing", depErr.Dep)
}

func (s *OrderServiceSuite) TestCreateTermBelowMinimum() {
	ctx := context.Background()
	s.listing.EXPECT().
		GetPricingInfo(ctx, testListingID).
		Return(&domain.ListingPricing{
			LandlordID:     testLandlordID,
			MonthlyRent:    decimal.RequireFromString("3000"),
			DepositMonths:  1,
			MinLeaseMonths: 6,
			Available:      true,
		}, nil)

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.svc.Create(ctx, CreateOrderArgs{
		ListingID: testListingID,
		TenantID:  testTenantID,
		StartDate: start,
		EndDate:   start.AddDate(0, 3, 0),
	})

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
}

func (s *OrderServiceSuite) TestPaySuccess() {
	ctx := context.Background()
	s.expectTx()
	s.orderRepo.EXPECT().
		GetByIDForUpdate(ctx, testOrderID).
		Return(s.order(domain.OrderStatusUnpaid), nil)
	s.orderRepo.EXPECT().
		MarkPaid(ctx, testOrderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, stamp repoargs.PaymentStamp) error {
			s.Equal("WECHAT", stamp.PayMethod)
			s.NotEmpty(stamp.TransactionID)
			s.Equal(s.now, stamp.PayTime)
			return nil
		})
	s.outbox.EXPECT().
		Enqueue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.EnqueueEvent) error {
			s.Equal(domain.EventOrderPaid, args.Topic)
			s.NotEmpty(args.EventID)
			s.Contains(string(args.Payload), `"order_id":1`)
			return nil
		})
	s.listing.EXPECT().
		SetStatus(ctx, testListingID, domain.ListingStatusRented).
		Return(nil)

	order, err := s.svc.Pay(ctx, testOrderID, testTenantID, "WECHAT")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, order.Status)
	s.Require().NotNil(order.PayTime)
	s.NotEmpty(order.TransactionID)
}

func (s *OrderServiceSuite) TestPayListingSyncFailureDoesNotFailPayment() {
	ctx := context.Background()
	s.expectTx()
	s.orderRepo.EXPECT().
		GetByIDForUpdate(ctx, testOrderID).
		Return(s.order(domain.OrderStatusUnpaid), nil)
	s.orderRepo.EXPECT().MarkPaid(ctx, testOrderID, gomock.Any()).Return(nil)
	s.outbox.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)
	s.listing.EXPECT().
		SetStatus(ctx, testListingID, domain.ListingStatusRented).
		Return(errors.New("listing service is down"))

	order, err := s.svc.Pay(ctx, testOrderID, testTenantID, "WECHAT")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, order.Status)
}

func (s *OrderServiceSuite) TestPayNotTenant() {
	ctx := context.Background()
	s.expectTx()
	s.orderRepo.EXPECT().
		GetByIDForUpdate(ctx, testOrderID).
		Return(s.order(domain.OrderStatusUnpaid), nil)

	_, err := s.svc.Pay(ctx, testOrderID, testLandlordID, "WECHAT")

	var authErr *domain.AuthorizationError
	s.Require().ErrorAs(err, &authErr)
}

func (s *OrderServiceSuite) TestCancelPaidReleasesListing() {
	ctx := context.Background()
	s.expectTx()
	s.orderRepo.EXPECT().
		GetByIDForUpdate(ctx, testOrderID).
		Return(s.order(domain.OrderStatusPaid), nil)
	s.orderRepo.EXPECT().
		MarkCancelled(ctx, testOrderID, domain.OrderStatusCancelled, "changed my mind").
		Return(nil)
	s.outbox.EXPECT().
		Enqueue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.EnqueueEvent) error {
			s.Equal(domain.EventOrderCancelled, args.Topic)
			return nil
		})
	s.listing.EXPECT().
		SetStatus(ctx, testListingID, domain.ListingStatusApproved).
		Return(nil)

	order, err := s.svc.Cancel(ctx, testOrderID, testTenantID, "changed my mind")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCancelled, order.Status)
	s.Equal("changed my mind", order.CancelReason)
}

func (s *OrderServiceSuite) TestCancelUnpaidSkipsListingAndEvent() {
	ctx := context.Background()
	s.expectTx()
	s.orderRepo.EXPECT().
		GetByIDForUpdate(ctx, testOrderID).
		Return(s.order(domain.OrderStatusUnpaid), nil)
	s.orderRepo.EXPECT().
		MarkCancelled(ctx, testOrderID, domain.OrderStatusCancelled, "").
		Return(nil)

	order, err := s.svc.Cancel(ctx, testOrderID, testTenantID, "")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCancelled, order.Status)
}

func (s *OrderServiceSuite) TestCancelPaymentSuccess() {
	ctx := context.Background()
	s.expectTx()
	s.orderRepo.EXPECT().
		GetByIDForUpdate(ctx, testOrderID).
		Return(s.order(domain.OrderStatusUnpaid), nil)
	s.orderRepo.EXPECT().
		MarkCancelled(ctx, testOrderID, domain.OrderStatusPaymentCancelled, "wrong listing").
		Return(nil)

	order, err := s.svc.CancelPayment(ctx, testOrderID, testTenantID, "wrong listing")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaymentCancelled, order.Status)
}

func (s *OrderServiceSuite) TestApplyTerminateSuccess() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusPaid)
	expectedDate := order.StartDate.AddDate(0, 0, 60)

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)
	s.trRepo.EXPECT().
		CountByTenantListing(ctx, testTenantID, testListingID).
		Return(int64(2), nil)
	s.orderRepo.EXPECT().
		ApplyTerminate(ctx, testOrderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, args repoargs.TerminateApply) error {
			s.Equal("relocation", args.Reason)
			s.Equal(expectedDate, args.ExpectedDate)
			// (21060-3000) * 120/180 * 0.30
			s.True(args.PenaltyAmount.Equal(decimal.RequireFromString("3612")), args.PenaltyAmount.String())
			return nil
		})
	s.trRepo.EXPECT().
		Create(ctx, repoargs.CreateTerminateRequest{
			OrderID:      testOrderID,
			TenantID:     testTenantID,
			ListingID:    testListingID,
			Reason:       "relocation",
			ExpectedDate: expectedDate,
		}).
		Return(&domain.TerminateRequest{ID: 1}, nil)

	got, err := s.svc.ApplyTerminate(ctx, testOrderID, testTenantID, "relocation", expectedDate)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusTerminateRequested, got.Status)
	s.True(got.Termination.PenaltyAmount.Equal(decimal.RequireFromString("3612")))
}

func (s *OrderServiceSuite) TestApplyTerminateLimitExceeded() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusActive)

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)
	s.trRepo.EXPECT().
		CountByTenantListing(ctx, testTenantID, testListingID).
		Return(int64(3), nil)

	_, err := s.svc.ApplyTerminate(ctx, testOrderID, testTenantID, "again",
		order.StartDate.AddDate(0, 0, 90))

	var limitErr *domain.LimitExceededError
	s.Require().ErrorAs(err, &limitErr)
}

func (s *OrderServiceSuite) TestApplyTerminatePastDate() {
	ctx := context.Background()
	s.expectTx()
	s.orderRepo.EXPECT().
		GetByIDForUpdate(ctx, testOrderID).
		Return(s.order(domain.OrderStatusActive), nil)

	_, err := s.svc.ApplyTerminate(ctx, testOrderID, testTenantID, "late",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
}

func (s *OrderServiceSuite) TestHandleTerminateReject() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminateRequested)
	order.Termination.PenaltyAmount = decimal.RequireFromString("3612")

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)
	s.orderRepo.EXPECT().
		RejectTerminate(ctx, testOrderID, "lease must run its course").
		Return(nil)

	got, err := s.svc.HandleTerminateRequest(ctx, HandleTerminateArgs{
		OrderID:      testOrderID,
		LandlordID:   testLandlordID,
		Approve:      false,
		RejectReason: "lease must run its course",
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusActive, got.Status)
	s.True(got.Termination.PenaltyAmount.IsZero())
}

func (s *OrderServiceSuite) TestHandleTerminateApproveDefaults() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminateRequested)
	expectedDate := order.StartDate.AddDate(0, 0, 60)
	order.Termination.ExpectedDate = &expectedDate
	order.Termination.PenaltyAmount = decimal.RequireFromString("3612")

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)
	s.orderRepo.EXPECT().
		ApproveTerminate(ctx, testOrderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, args repoargs.TerminateApprove) error {
			s.Equal(expectedDate, args.ActualDate)
			s.True(args.PenaltyAmount.Equal(decimal.RequireFromString("3612")))
			s.Equal(60, args.ElapsedDays)
			s.Equal(120, args.RemainingDays)
			return nil
		})

	got, err := s.svc.HandleTerminateRequest(ctx, HandleTerminateArgs{
		OrderID:    testOrderID,
		LandlordID: testLandlordID,
		Approve:    true,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusTerminateApproved, got.Status)
	s.Equal(60, got.Termination.ElapsedDays)
	s.Equal(120, got.Termination.RemainingDays)
}

func (s *OrderServiceSuite) TestHandleTerminateApproveOverrides() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminateRequested)
	expectedDate := order.StartDate.AddDate(0, 0, 60)
	order.Termination.ExpectedDate = &expectedDate
	order.Termination.PenaltyAmount = decimal.RequireFromString("3612")

	actualDate := order.StartDate.AddDate(0, 0, 90)
	override := decimal.RequireFromString("1000")

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)
	s.orderRepo.EXPECT().
		ApproveTerminate(ctx, testOrderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, args repoargs.TerminateApprove) error {
			s.Equal(actualDate, args.ActualDate)
			s.True(args.PenaltyAmount.Equal(override), args.PenaltyAmount.String())
			s.Equal(90, args.ElapsedDays)
			s.Equal(90, args.RemainingDays)
			return nil
		})

	got, err := s.svc.HandleTerminateRequest(ctx, HandleTerminateArgs{
		OrderID:         testOrderID,
		LandlordID:      testLandlordID,
		Approve:         true,
		ActualDate:      &actualDate,
		PenaltyOverride: &override,
	})
	s.Require().NoError(err)
	s.True(got.Termination.PenaltyAmount.Equal(override))
}

func (s *OrderServiceSuite) TestHandleTerminateNotLandlord() {
	ctx := context.Background()
	s.expectTx()
	s.orderRepo.EXPECT().
		GetByIDForUpdate(ctx, testOrderID).
		Return(s.order(domain.OrderStatusTerminateRequested), nil)

	_, err := s.svc.HandleTerminateRequest(ctx, HandleTerminateArgs{
		OrderID:    testOrderID,
		LandlordID: testTenantID,
		Approve:    true,
	})

	var authErr *domain.AuthorizationError
	s.Require().ErrorAs(err, &authErr)
}

func (s *OrderServiceSuite) TestConfirmTerminationSuccess() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminateApproved)
	actualDate := order.StartDate.AddDate(0, 0, 60)
	order.Termination.ActualDate = &actualDate

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)
	s.orderRepo.EXPECT().
		MarkTerminated(ctx, testOrderID, actualDate, s.now).
		Return(nil)
	s.listing.EXPECT().
		SetStatus(ctx, testListingID, domain.ListingStatusApproved).
		Return(nil)

	got, err := s.svc.ConfirmTermination(ctx, testOrderID, testLandlordID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusTerminated, got.Status)
	s.Require().NotNil(got.Termination.TerminateTime)
}

func (s *OrderServiceSuite) TestPayPenaltySuccess() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminateApproved)
	actualDate := order.StartDate.AddDate(0, 0, 60)
	order.Termination.ActualDate = &actualDate
	order.Termination.PenaltyAmount = decimal.RequireFromString("3612")

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)
	s.orderRepo.EXPECT().
		MarkPenaltyPaid(ctx, testOrderID, "ALIPAY", s.now).
		Return(nil)
	s.orderRepo.EXPECT().
		MarkTerminated(ctx, testOrderID, actualDate, s.now).
		Return(nil)
	s.listing.EXPECT().
		SetStatus(ctx, testListingID, domain.ListingStatusApproved).
		Return(nil)

	got, err := s.svc.PayPenalty(ctx, testOrderID, testTenantID, "ALIPAY")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusTerminated, got.Status)
	s.True(got.Termination.PenaltyPaid)
}

func (s *OrderServiceSuite) TestPayPenaltyIdempotentAfterTermination() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminated)
	order.Termination.PenaltyPaid = true

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)

	got, err := s.svc.PayPenalty(ctx, testOrderID, testTenantID, "ALIPAY")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusTerminated, got.Status)
}

func (s *OrderServiceSuite) TestPayPenaltyIdempotentBeforeTermination() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminateApproved)
	order.Termination.PenaltyPaid = true

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)

	got, err := s.svc.PayPenalty(ctx, testOrderID, testTenantID, "ALIPAY")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusTerminateApproved, got.Status)
}

// Идемпотентный выход не должен отдавать заказ постороннему пользователю.
func (s *OrderServiceSuite) TestPayPenaltyNotTenantOnTerminated() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminated)
	order.Termination.PenaltyPaid = true

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)

	got, err := s.svc.PayPenalty(ctx, testOrderID, 999, "WECHAT")
	s.Require().Error(err)
	var authErr *domain.AuthorizationError
	s.Require().ErrorAs(err, &authErr)
	s.Nil(got)
}

func (s *OrderServiceSuite) TestPayPenaltyNotTenant() {
	ctx := context.Background()
	order := s.order(domain.OrderStatusTerminateApproved)
	order.Termination.PenaltyPaid = true

	s.expectTx()
	s.orderRepo.EXPECT().GetByIDForUpdate(ctx, testOrderID).Return(order, nil)

	_, err := s.svc.PayPenalty(ctx, testOrderID, 999, "WECHAT")
	var authErr *domain.AuthorizationError
	s.Require().ErrorAs(err, &authErr)
}

// TestStateGuards проверяет, что каждая операция отказывает со
// StateConflictError из любого непредусмотренного статуса.
func (s *OrderServiceSuite) TestStateGuards() {
	allStatuses := []domain.OrderStatus{
		domain.OrderStatusUnpaid,
		domain.OrderStatusPaid,
		domain.OrderStatusActive,
		domain.OrderStatusCancelled,
		domain.OrderStatusPaymentCancelled,
		domain.OrderStatusTerminateRequested,
		domain.OrderStatusTerminateApproved,
		domain.OrderStatusTerminated,
		domain.OrderStatusCompleted,
		domain.OrderStatusExpired,
		domain.OrderStatusRefunded,
	}
	ctx := context.Background()

	ops := []struct {
		name    string
		allowed map[domain.OrderStatus]bool
		call    func() error
	}{
		{
			name:    "pay",
			allowed: map[domain.OrderStatus]bool{domain.OrderStatusUnpaid: true},
			call: func() error {
				_, err := s.svc.Pay(ctx, testOrderID, testTenantID, "WECHAT")
				return err
			},
		},
		{
			name: "cancel",
			allowed: map[domain.OrderStatus]bool{
				domain.OrderStatusUnpaid:           true,
				domain.OrderStatusPaid:             true,
				domain.OrderStatusPaymentCancelled: true,
			},
			call: func() error {
				_, err := s.svc.Cancel(ctx, testOrderID, testTenantID, "")
				return err
			},
		},
		{
			name:    "cancelPayment",
			allowed: map[domain.OrderStatus]bool{domain.OrderStatusUnpaid: true},
			call: func() error {
				_, err := s.svc.CancelPayment(ctx, testOrderID, testTenantID, "")
				return err
			},
		},
		{
			name: "applyTerminate",
			allowed: map[domain.OrderStatus]bool{
				domain.OrderStatusPaid:   true,
				domain.OrderStatusActive: true,
			},
			call: func() error {
				_, err := s.svc.ApplyTerminate(ctx, testOrderID, testTenantID, "r",
					time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
				return err
			},
		},
		{
			name:    "handleTerminateRequest",
			allowed: map[domain.OrderStatus]bool{domain.OrderStatusTerminateRequested: true},
			call: func() error {
				_, err := s.svc.HandleTerminateRequest(ctx, HandleTerminateArgs{
					OrderID:    testOrderID,
					LandlordID: testLandlordID,
					Approve:    true,
				})
				return err
			},
		},
		{
			name:    "confirmTermination",
			allowed: map[domain.OrderStatus]bool{domain.OrderStatusTerminateApproved: true},
			call: func() error {
				_, err := s.svc.ConfirmTermination(ctx, testOrderID, testLandlordID)
				return err
			},
		},
		{
			name: "payPenalty",
			allowed: map[domain.OrderStatus]bool{
				domain.OrderStatusTerminateRequested: true,
				domain.OrderStatusTerminateApproved:  true,
			},
			call: func() error {
				_, err := s.svc.PayPenalty(ctx, testOrderID, testTenantID, "WECHAT")
				return err
			},
		},
	}

	for _, op := range ops {
		for _, status := range allStatuses {
			if op.allowed[status] {
				continue
			}
			s.Run(op.name+"/"+string(status), func() {
				s.expectTx()
				s.orderRepo.EXPECT().
					GetByIDForUpdate(ctx, testOrderID).
					Return(s.order(status), nil)

				err := op.call()

				var conflictErr *domain.StateConflictError
				s.Require().ErrorAs(err, &conflictErr)
				s.Equal(status, conflictErr.Status)
			})
		}
	}
}

func (s *OrderServiceSuite) TestGetByIDPartyOnly() {
	ctx := context.Background()
	s.orderRepo.EXPECT().
		GetByID(ctx, testOrderID).
		Return(s.order(domain.OrderStatusActive), nil).
		Times(2)

	_, err := s.svc.GetByID(ctx, testOrderID, testTenantID)
	s.Require().NoError(err)

	_, err = s.svc.GetByID(ctx, testOrderID, int64(999))
	var authErr *domain.AuthorizationError
	s.Require().ErrorAs(err, &authErr)
}

func (s *OrderServiceSuite) TestRolloverLeases() {
	ctx := context.Background()
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	s.orderRepo.EXPECT().
		ActivateStarted(ctx, today).
		Return([]int64{1, 2}, nil)
	s.orderRepo.EXPECT().
		CompleteElapsed(ctx, today).
		Return([]domain.ListingRef{{OrderID: 3, ListingID: 30}}, nil)
	s.listing.EXPECT().
		SetStatus(ctx, int64(30), domain.ListingStatusApproved).
		Return(nil)

	activated, completed, err := s.svc.RolloverLeases(ctx)
	s.Require().NoError(err)
	s.Equal(2, activated)
	s.Equal(1, completed)
}

func (s *OrderServiceSuite) TestExpireStaleUnpaid() {
	ctx := context.Background()
	ttl := 30 * time.Minute

	s.orderRepo.EXPECT().
		ExpireUnpaid(ctx, s.now.Add(-ttl)).
		Return(int64(4), nil)

	expired, err := s.svc.ExpireStaleUnpaid(ctx, ttl)
	s.Require().NoError(err)
	s.Equal(int64(4), expired)
}

func (s *OrderServiceSuite) TestIncomeReport() {
	ctx := context.Background()
	payTime := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	paid := s.order(domain.OrderStatusActive)
	paid.StartDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	paid.EndDate = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	paid.TotalAmount = decimal.RequireFromString("6060")
	paid.Deposit = decimal.RequireFromString("3000")
	paid.PayTime = &payTime

	unpaid := s.order(domain.OrderStatusUnpaid)
	unpaid.ID = 2

	refunded := s.order(domain.OrderStatusRefunded)
	refunded.ID = 3
	refunded.PayTime = &payTime

	s.orderRepo.EXPECT().
		GetByLandlord(ctx, testLandlordID).
		Return([]domain.Order{*paid, *unpaid, *refunded}, nil)

	report, err := s.svc.IncomeReport(ctx, testLandlordID,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Require().Len(report.Items, 1)
	s.Equal(testOrderID, report.Items[0].OrderID)
	s.True(report.Total.Equal(decimal.RequireFromString("3060")), report.Total.String())
}

func (s *OrderServiceSuite) TestIncomeReportBadPeriod() {
	ctx := context.Background()

	_, err := s.svc.IncomeReport(ctx, testLandlordID,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
}
