// Package api HTTP-транспорт движка заказов аренды. Аутентификация внешняя,
// сюда приходит уже выпущенный JWT.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentaro/lease-engine/internal/transport/api/middlewares"
)

func NewRouter(h *OrdersHandler, jwtSecret string, l *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerValidators()
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.Logger(l), middlewares.Errors(l))

	authed := r.Group("/api", middlewares.Authenticate(jwtSecret))
	orders := authed.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/income", h.Income)
		orders.GET("/:id", h.GetByID)
		orders.POST("/:id/pay", h.Pay)
		orders.POST("/:id/cancel", h.Cancel)
		orders.POST("/:id/cancel-payment", h.CancelPayment)
		orders.POST("/:id/terminate", h.Terminate)
		orders.POST("/:id/terminate/decision", h.TerminateDecision)
		orders.POST("/:id/terminate/confirm", h.TerminateConfirm)
		orders.POST("/:id/penalty/pay", h.PayPenalty)
	}
	return r
}
