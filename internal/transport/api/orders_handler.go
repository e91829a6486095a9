package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/service"
	"github.com/rentaro/lease-engine/internal/transport/api/middlewares"
)

const dateLayout = "2006-01-02"

type OrdersHandler struct {
	svc OrderServicer
}

func NewOrdersHandler(svc OrderServicer) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

type createOrderRequest struct {
	ListingID       int64  `json:"listingId"       binding:"required"`
	StartDate       string `json:"startDate"       binding:"required,leasedate"`
	EndDate         string `json:"endDate"         binding:"required,leasedate"`
	LeaseTermMonths int    `json:"leaseTermMonths" binding:"omitempty,min=1"`
}

func (h *OrdersHandler) Create(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req createOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}
	startDate, startErr := time.Parse(dateLayout, req.StartDate)
	if startErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
		return
	}
	endDate, endErr := time.Parse(dateLayout, req.EndDate)
	if endErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
		return
	}

	order, err := h.svc.Create(c.Request.Context(), service.CreateOrderArgs{
		ListingID:       req.ListingID,
		TenantID:        userID,
		StartDate:       startDate,
		EndDate:         endDate,
		LeaseTermMonths: req.LeaseTermMonths,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(order))
}

func (h *OrdersHandler) List(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var (
		orders []domain.Order
		err    error
	)
	if c.Query("role") == "landlord" {
		orders, err = h.svc.GetByLandlord(c.Request.Context(), userID)
	} else {
		orders, err = h.svc.GetByTenant(c.Request.Context(), userID)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, *newOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) GetByID(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	orderID, idErr := orderIDParam(c)
	if idErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.svc.GetByID(c.Request.Context(), orderID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

type payRequest struct {
	PayMethod string `json:"payMethod" binding:"required"`
}

func (h *OrdersHandler) Pay(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	orderID, idErr := orderIDParam(c)
	if idErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req payRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}

	order, err := h.svc.Pay(c.Request.Context(), orderID, userID, req.PayMethod)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *OrdersHandler) Cancel(c *gin.Context) {
	h.cancelWith(c, h.svc.Cancel)
}

func (h *OrdersHandler) CancelPayment(c *gin.Context) {
	h.cancelWith(c, h.svc.CancelPayment)
}

// cancelWith общий код обеих отмен, различается только операция сервиса.
// Тело с причиной опционально.
func (h *OrdersHandler) cancelWith(
	c *gin.Context,
	op func(ctx context.Context, orderID, requesterID int64, reason string) (*domain.Order, error),
) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	orderID, idErr := orderIDParam(c)
	if idErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req cancelRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
			return
		}
	}

	order, err := op(c.Request.Context(), orderID, userID, req.Reason)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

type terminateRequest struct {
	Reason       string `json:"reason"       binding:"required"`
	ExpectedDate string `json:"expectedDate" binding:"required,leasedate"`
}

func (h *OrdersHandler) Terminate(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	orderID, idErr := orderIDParam(c)
	if idErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req terminateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}
	expectedDate, dateErr := time.Parse(dateLayout, req.ExpectedDate)
	if dateErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expectedDate must be YYYY-MM-DD"})
		return
	}

	order, err := h.svc.ApplyTerminate(c.Request.Context(), orderID, userID, req.Reason, expectedDate)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

type terminateDecisionRequest struct {
	Approve       *bool            `json:"approve" binding:"required"`
	RejectReason  string           `json:"rejectReason"`
	ActualDate    string           `json:"actualDate" binding:"omitempty,leasedate"`
	PenaltyAmount *decimal.Decimal `json:"penaltyAmount"`
	Remark        string           `json:"remark"`
}

func (h *OrdersHandler) TerminateDecision(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	orderID, idErr := orderIDParam(c)
	if idErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req terminateDecisionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}

	args := service.HandleTerminateArgs{
		OrderID:         orderID,
		LandlordID:      userID,
		Approve:         *req.Approve,
		RejectReason:    req.RejectReason,
		PenaltyOverride: req.PenaltyAmount,
		Remark:          req.Remark,
	}
	if req.ActualDate != "" {
		actualDate, dateErr := time.Parse(dateLayout, req.ActualDate)
		if dateErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "actualDate must be YYYY-MM-DD"})
			return
		}
		args.ActualDate = &actualDate
	}

	order, err := h.svc.HandleTerminateRequest(c.Request.Context(), args)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *OrdersHandler) TerminateConfirm(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	orderID, idErr := orderIDParam(c)
	if idErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.svc.ConfirmTermination(c.Request.Context(), orderID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *OrdersHandler) PayPenalty(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	orderID, idErr := orderIDParam(c)
	if idErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req payRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}

	order, err := h.svc.PayPenalty(c.Request.Context(), orderID, userID, req.PayMethod)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *OrdersHandler) Income(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	from, fromErr := time.Parse(dateLayout, c.Query("from"))
	if fromErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
		return
	}
	to, toErr := time.Parse(dateLayout, c.Query("to"))
	if toErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
		return
	}

	report, err := h.svc.IncomeReport(c.Request.Context(), userID, from, to)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func orderIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
