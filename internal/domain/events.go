package domain

// Топики исходящих доменных событий. Доставка at-least-once, потребитель
// дедуплицирует по order_id.
const (
	EventOrderPaid      = "order.paid"
	EventOrderCancelled = "order.cancelled"
)

type OrderEventPayload struct {
	OrderID int64  `json:"order_id"`
	OrderNo string `json:"order_no"`
}
