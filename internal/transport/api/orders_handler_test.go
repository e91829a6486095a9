package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/service"
	"github.com/rentaro/lease-engine/internal/transport/api"
	"github.com/rentaro/lease-engine/internal/transport/api/mocks"
	"github.com/rentaro/lease-engine/internal/transport/api/testutils"
)

const (
	jwtSecret          = "test-secret"
	tenantID     int64 = 10
	landlordID   int64 = 20
	orderID      int64 = 1
	orderPath       = "/api/orders/1"
)

type OrdersHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	svc           *mocks.MockOrderServicer
	router        *gin.Engine
	tenantToken   string
	landlordToken string
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerSuite))
}

func (s *OrdersHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.svc = mocks.NewMockOrderServicer(s.ctrl)

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.router = api.NewRouter(api.NewOrdersHandler(s.svc), jwtSecret, l)

	s.tenantToken = testutils.SignUserJWT(s.T(), tenantID, jwtSecret)
	s.landlordToken = testutils.SignUserJWT(s.T(), landlordID, jwtSecret)
}

func (s *OrdersHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrdersHandlerSuite) order(status domain.OrderStatus) *domain.Order {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Order{
		ID:              orderID,
		OrderNo:         "RO17420000000000010",
		ListingID:       7,
		TenantID:        tenantID,
		LandlordID:      landlordID,
		StartDate:       start,
		EndDate:         start.AddDate(0, 6, 0),
		LeaseTermMonths: 6,
		MonthlyRent:     decimal.RequireFromString("3000"),
		Deposit:         decimal.RequireFromString("3000"),
		ServiceFee:      decimal.RequireFromString("60"),
		TotalAmount:     decimal.RequireFromString("21060"),
		Status:          status,
	}
}

func (s *OrdersHandlerSuite) TestCreateSuccess() {
	s.svc.EXPECT().
		Create(gomock.Any(), service.CreateOrderArgs{
			ListingID: 7,
			TenantID:  tenantID,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		}).
		Return(s.order(domain.OrderStatusUnpaid), nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, "/api/orders", s.tenantToken,
		map[string]any{
			"listingId": 7,
			"startDate": "2026-03-01",
			"endDate":   "2026-09-01",
		})

	s.Equal(http.StatusCreated, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("UNPAID", resp["status"])
	s.Equal("2026-03-01", resp["startDate"])
}

func (s *OrdersHandlerSuite) TestCreateBadDate() {
	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, "/api/orders", s.tenantToken,
		map[string]any{
			"listingId": 7,
			"startDate": "01.03.2026",
			"endDate":   "2026-09-01",
		})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *OrdersHandlerSuite) TestCreateUnavailableListing() {
	s.svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewValidationError("listing 7 is not available for rent"))

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, "/api/orders", s.tenantToken,
		map[string]any{
			"listingId": 7,
			"startDate": "2026-03-01",
			"endDate":   "2026-09-01",
		})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "not available")
}

func (s *OrdersHandlerSuite) TestUnauthorizedWithoutToken() {
	w := testutils.MakeRequest(s.T(), s.router, http.MethodGet, "/api/orders", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *OrdersHandlerSuite) TestListByRole() {
	s.svc.EXPECT().
		GetByTenant(gomock.Any(), tenantID).
		Return([]domain.Order{*s.order(domain.OrderStatusActive)}, nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodGet, "/api/orders", s.tenantToken, nil)
	s.Equal(http.StatusOK, w.Code)

	s.svc.EXPECT().
		GetByLandlord(gomock.Any(), landlordID).
		Return([]domain.Order{}, nil)

	w = testutils.MakeRequest(s.T(), s.router, http.MethodGet, "/api/orders?role=landlord", s.landlordToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("[]", w.Body.String())
}

func (s *OrdersHandlerSuite) TestGetByIDNotFound() {
	s.svc.EXPECT().
		GetByID(gomock.Any(), orderID, tenantID).
		Return(nil, domain.ErrRecordNotFound)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodGet, orderPath, s.tenantToken, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OrdersHandlerSuite) TestGetByIDForeignOrder() {
	s.svc.EXPECT().
		GetByID(gomock.Any(), orderID, tenantID).
		Return(nil, domain.NewAuthorizationError("user %d is not a party of order %d", tenantID, orderID))

	w := testutils.MakeRequest(s.T(), s.router, http.MethodGet, orderPath, s.tenantToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *OrdersHandlerSuite) TestGetByIDBadParam() {
	w := testutils.MakeRequest(s.T(), s.router, http.MethodGet, "/api/orders/abc", s.tenantToken, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *OrdersHandlerSuite) TestPaySuccess() {
	s.svc.EXPECT().
		Pay(gomock.Any(), orderID, tenantID, "WECHAT").
		Return(s.order(domain.OrderStatusPaid), nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/pay", s.tenantToken,
		map[string]any{"payMethod": "WECHAT"})

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"PAID"`)
}

func (s *OrdersHandlerSuite) TestPayConflict() {
	s.svc.EXPECT().
		Pay(gomock.Any(), orderID, tenantID, "WECHAT").
		Return(nil, domain.NewStateConflictError("pay", domain.OrderStatusCancelled))

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/pay", s.tenantToken,
		map[string]any{"payMethod": "WECHAT"})

	s.Equal(http.StatusConflict, w.Code)
}

func (s *OrdersHandlerSuite) TestCancelWithReason() {
	s.svc.EXPECT().
		Cancel(gomock.Any(), orderID, tenantID, "changed my mind").
		Return(s.order(domain.OrderStatusCancelled), nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/cancel", s.tenantToken,
		map[string]any{"reason": "changed my mind"})

	s.Equal(http.StatusOK, w.Code)
}

func (s *OrdersHandlerSuite) TestCancelPaymentWithoutBody() {
	s.svc.EXPECT().
		CancelPayment(gomock.Any(), orderID, tenantID, "").
		Return(s.order(domain.OrderStatusPaymentCancelled), nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/cancel-payment", s.tenantToken, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *OrdersHandlerSuite) TestTerminateSuccess() {
	s.svc.EXPECT().
		ApplyTerminate(gomock.Any(), orderID, tenantID, "relocation",
			time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)).
		Return(s.order(domain.OrderStatusTerminateRequested), nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/terminate", s.tenantToken,
		map[string]any{"reason": "relocation", "expectedDate": "2026-05-01"})

	s.Equal(http.StatusOK, w.Code)
}

func (s *OrdersHandlerSuite) TestTerminateLimitExceeded() {
	s.svc.EXPECT().
		ApplyTerminate(gomock.Any(), orderID, tenantID, "again", gomock.Any()).
		Return(nil, domain.NewLimitExceededError("tenant 10 already made 3 terminate requests for listing 7"))

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/terminate", s.tenantToken,
		map[string]any{"reason": "again", "expectedDate": "2026-05-01"})

	s.Equal(http.StatusTooManyRequests, w.Code)
}

func (s *OrdersHandlerSuite) TestTerminateDecisionApprove() {
	override := decimal.RequireFromString("1000")
	actualDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	s.svc.EXPECT().
		HandleTerminateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.HandleTerminateArgs) (*domain.Order, error) {
			s.Equal(orderID, args.OrderID)
			s.Equal(landlordID, args.LandlordID)
			s.True(args.Approve)
			s.Require().NotNil(args.ActualDate)
			s.Equal(actualDate, *args.ActualDate)
			s.Require().NotNil(args.PenaltyOverride)
			s.True(args.PenaltyOverride.Equal(override))
			return s.order(domain.OrderStatusTerminateApproved), nil
		})

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/terminate/decision", s.landlordToken,
		map[string]any{
			"approve":       true,
			"actualDate":    "2026-05-10",
			"penaltyAmount": "1000",
		})

	s.Equal(http.StatusOK, w.Code)
}

func (s *OrdersHandlerSuite) TestTerminateDecisionMissingApprove() {
	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/terminate/decision", s.landlordToken,
		map[string]any{"rejectReason": "no"})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *OrdersHandlerSuite) TestTerminateConfirm() {
	s.svc.EXPECT().
		ConfirmTermination(gomock.Any(), orderID, landlordID).
		Return(s.order(domain.OrderStatusTerminated), nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/terminate/confirm", s.landlordToken, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *OrdersHandlerSuite) TestPayPenalty() {
	s.svc.EXPECT().
		PayPenalty(gomock.Any(), orderID, tenantID, "ALIPAY").
		Return(s.order(domain.OrderStatusTerminated), nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, orderPath+"/penalty/pay", s.tenantToken,
		map[string]any{"payMethod": "ALIPAY"})

	s.Equal(http.StatusOK, w.Code)
}

func (s *OrdersHandlerSuite) TestIncomeReport() {
	s.svc.EXPECT().
		IncomeReport(gomock.Any(), landlordID,
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)).
		Return(&service.IncomeReport{
			From:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			To:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Total: decimal.RequireFromString("3060"),
			Items: []service.IncomeItem{},
		}, nil)

	w := testutils.MakeRequest(s.T(), s.router, http.MethodGet,
		"/api/orders/income?from=2026-01-01&to=2026-02-01", s.landlordToken, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"total":"3060"`)
}

func (s *OrdersHandlerSuite) TestIncomeReportBadPeriod() {
	w := testutils.MakeRequest(s.T(), s.router, http.MethodGet,
		"/api/orders/income?from=bad&to=2026-02-01", s.landlordToken, nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *OrdersHandlerSuite) TestDependencyFailureHidden() {
	s.svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewDependencyError("listing", io.ErrUnexpectedEOF))

	w := testutils.MakeRequest(s.T(), s.router, http.MethodPost, "/api/orders", s.tenantToken,
		map[string]any{
			"listingId": 7,
			"startDate": "2026-03-01",
			"endDate":   "2026-09-01",
		})

	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "listing")
}
