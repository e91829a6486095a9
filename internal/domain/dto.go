package domain

// OrderStatus закрытое перечисление статусов заказа. Любая нормализация
// строк происходит на границе системы, бизнес-логика работает только с
// этими значениями.
type OrderStatus string

const (
	OrderStatusUnpaid             OrderStatus = "UNPAID"
	OrderStatusPaid               OrderStatus = "PAID"
	OrderStatusActive             OrderStatus = "ACTIVE"
	OrderStatusCancelled          OrderStatus = "CANCELLED"
	OrderStatusPaymentCancelled   OrderStatus = "PAYMENT_CANCELLED"
	OrderStatusTerminateRequested OrderStatus = "TERMINATE_REQUESTED"
	OrderStatusTerminateApproved  OrderStatus = "TERMINATE_APPROVED"
	OrderStatusTerminated         OrderStatus = "TERMINATED"
	OrderStatusCompleted          OrderStatus = "COMPLETED"
	OrderStatusExpired            OrderStatus = "EXPIRED"
	OrderStatusRefunded           OrderStatus = "REFUNDED"
)

// OrderStatuses перечисляет все значения статуса заказа.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusUnpaid,
		OrderStatusPaid,
		OrderStatusActive,
		OrderStatusCancelled,
		OrderStatusPaymentCancelled,
		OrderStatusTerminateRequested,
		OrderStatusTerminateApproved,
		OrderStatusTerminated,
		OrderStatusCompleted,
		OrderStatusExpired,
		OrderStatusRefunded,
	}
}

// Occupying сообщает, удерживает ли заказ в данном статусе объявление
// в состоянии RENTED.
func (s OrderStatus) Occupying() bool {
	switch s {
	case OrderStatusPaid, OrderStatusActive, OrderStatusTerminateRequested, OrderStatusTerminateApproved:
		return true
	default:
		return false
	}
}

// ReleasesListing сообщает, что терминальный статус заказа возвращает
// объявление в доступное состояние.
func (s OrderStatus) ReleasesListing() bool {
	switch s {
	case OrderStatusTerminated, OrderStatusCompleted, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "PENDING"
	ListingStatusApproved ListingStatus = "APPROVED"
	ListingStatusRented   ListingStatus = "RENTED"
	ListingStatusOffline  ListingStatus = "OFFLINE"
	ListingStatusRejected ListingStatus = "REJECTED"
)
