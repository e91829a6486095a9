package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/repository/repoargs"
	"github.com/rentaro/lease-engine/internal/settlement"
	"github.com/rentaro/lease-engine/pkg/uow"
)

const (
	// Лимит заявок на расторжение на пару (арендатор, объявление).
	maxTerminateRequests = 3

	notifyTimeout = 5 * time.Second
)

// OrderService управляет жизненным циклом заказа аренды. Каждый переход
// выполняется одной транзакцией с блокировкой строки заказа; синхронизация
// статуса объявления и уведомления выполняются после коммита по принципу
// best-effort (заказ - источник истины, объявление чинит реконсилятор).
type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	listing   ListingGateway
	notifier  NotificationGateway
	l         *logrus.Entry

	// подменяется в тестах
	now func() time.Time
}

func NewOrderService(
	u uow.UOW,
	listing ListingGateway,
	notifier NotificationGateway,
	l *logrus.Logger,
) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
		listing:   listing,
		notifier:  notifier,
		l:         l.WithField("component", "order_service"),
		now:       time.Now,
	}, nil
}

type CreateOrderArgs struct {
	ListingID       int64
	TenantID        int64
	StartDate       time.Time
	EndDate         time.Time
	LeaseTermMonths int // 0 - вывести из дат
}

// Create создает заказ в статусе UNPAID. Ценовые данные берутся из
// listing-сервиса в момент создания; недоступность сервиса валит операцию
// целиком (заказ не создается).
func (o *OrderService) Create(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	pricing, pricingErr := o.listing.GetPricingInfo(ctx, args.ListingID)
	if pricingErr != nil {
		return nil, domain.NewDependencyError("listing", pricingErr)
	}
	if !pricing.Available {
		return nil, domain.NewValidationError("listing %d is not available for rent", args.ListingID)
	}
	if !args.StartDate.Before(args.EndDate) {
		return nil, domain.NewValidationError("start date must precede end date")
	}

	months := args.LeaseTermMonths
	if months == 0 {
		months = settlement.LeaseTermMonths(args.StartDate, args.EndDate)
	}
	if months < pricing.MinLeaseMonths {
		return nil, domain.NewValidationError(
			"lease term %d months is below listing minimum %d", months, pricing.MinLeaseMonths)
	}

	totals := settlement.ComputeTotals(pricing.MonthlyRent, pricing.DepositMonths, months)

	order, createErr := o.orderRepo.Create(ctx, repoargs.CreateOrder{
		OrderNo:         o.generateOrderNo(args.TenantID),
		ListingID:       args.ListingID,
		TenantID:        args.TenantID,
		LandlordID:      pricing.LandlordID,
		StartDate:       args.StartDate,
		EndDate:         args.EndDate,
		LeaseTermMonths: months,
		MonthlyRent:     pricing.MonthlyRent,
		Deposit:         totals.Deposit,
		ServiceFee:      totals.ServiceFee,
		TotalAmount:     totals.Total,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating order: %w", createErr)
	}
	return order, nil
}

// Pay переводит заказ UNPAID -> PAID. Платежные поля проставляются один
// раз; событие order.paid пишется в outbox в той же транзакции.
func (o *OrderService) Pay(ctx context.Context, orderID, payerID int64, payMethod string) (*domain.Order, error) {
	var order *domain.Order

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, outbox, repoErr := o.txRepos(tx)
		if repoErr != nil {
			return repoErr
		}

		locked, lockErr := repo.GetByIDForUpdate(c, orderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if locked.Status != domain.OrderStatusUnpaid {
			return domain.NewStateConflictError("pay", locked.Status)
		}
		if locked.TenantID != payerID {
			return domain.NewAuthorizationError("user %d is not the tenant of order %d", payerID, orderID)
		}

		now := o.now()
		stamp := repoargs.PaymentStamp{
			PayMethod:     payMethod,
			TransactionID: uuid.NewString(),
			PayTime:       now,
		}
		if err := repo.MarkPaid(c, orderID, stamp); err != nil {
			return err //nolint:wrapcheck
		}
		if err := o.enqueueEvent(c, outbox, domain.EventOrderPaid, locked); err != nil {
			return err
		}

		locked.Status = domain.OrderStatusPaid
		locked.PayMethod = stamp.PayMethod
		locked.TransactionID = stamp.TransactionID
		locked.PayTime = &stamp.PayTime
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("paying order %d: %w", orderID, txErr)
	}

	o.syncListing(ctx, order.ID, order.ListingID, domain.ListingStatusRented)
	o.notifyAsync(order.LandlordID, "Заказ оплачен",
		fmt.Sprintf("Заказ %s оплачен арендатором", order.OrderNo), order.ID)

	return order, nil
}

// Cancel отменяет заказ из UNPAID, PAID или PAYMENT_CANCELLED. Отмена уже
// оплаченного заказа освобождает объявление и порождает событие
// order.cancelled для аннулирования договора внешним коллаборатором.
func (o *OrderService) Cancel(ctx context.Context, orderID, requesterID int64, reason string) (*domain.Order, error) {
	var order *domain.Order
	var wasOccupying bool

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, outbox, repoErr := o.txRepos(tx)
		if repoErr != nil {
			return repoErr
		}

		locked, lockErr := repo.GetByIDForUpdate(c, orderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		switch locked.Status {
		case domain.OrderStatusUnpaid, domain.OrderStatusPaid, domain.OrderStatusPaymentCancelled:
		default:
			return domain.NewStateConflictError("cancel", locked.Status)
		}
		if locked.TenantID != requesterID {
			return domain.NewAuthorizationError("user %d is not the tenant of order %d", requesterID, orderID)
		}

		wasOccupying = locked.Status.Occupying()

		if err := repo.MarkCancelled(c, orderID, domain.OrderStatusCancelled, reason); err != nil {
			return err //nolint:wrapcheck
		}
		if wasOccupying {
			if err := o.enqueueEvent(c, outbox, domain.EventOrderCancelled, locked); err != nil {
				return err
			}
		}

		locked.Status = domain.OrderStatusCancelled
		locked.CancelReason = reason
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("cancelling order %d: %w", orderID, txErr)
	}

	if wasOccupying {
		o.syncListing(ctx, order.ID, order.ListingID, domain.ListingStatusApproved)
		o.notifyAsync(order.LandlordID, "Заказ отменен",
			fmt.Sprintf("Заказ %s отменен арендатором", order.OrderNo), order.ID)
	}
	return order, nil
}

// CancelPayment отменяет неоплаченный заказ (UNPAID -> PAYMENT_CANCELLED).
// Объявление заказ не занимал, его статус не трогаем.
func (o *OrderService) CancelPayment(ctx context.Context, orderID, requesterID int64, reason string) (*domain.Order, error) {
	var order *domain.Order

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		locked, lockErr := repo.GetByIDForUpdate(c, orderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if locked.Status != domain.OrderStatusUnpaid {
			return domain.NewStateConflictError("cancelPayment", locked.Status)
		}
		if locked.TenantID != requesterID {
			return domain.NewAuthorizationError("user %d is not the tenant of order %d", requesterID, orderID)
		}

		if err := repo.MarkCancelled(c, orderID, domain.OrderStatusPaymentCancelled, reason); err != nil {
			return err //nolint:wrapcheck
		}
		locked.Status = domain.OrderStatusPaymentCancelled
		locked.CancelReason = reason
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("cancelling payment of order %d: %w", orderID, txErr)
	}
	return order, nil
}

// ApplyTerminate заявка арендатора на досрочное расторжение. Неустойка
// считается предварительно на ожидаемую дату; лимит заявок на пару
// (арендатор, объявление) - 3 за все время, включая отклоненные.
func (o *OrderService) ApplyTerminate(
	ctx context.Context,
	orderID, tenantID int64,
	reason string,
	expectedDate time.Time,
) (*domain.Order, error) {
	var order *domain.Order

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		trRepo, trRepoErr := uow.GetAs[TerminateRequestRepository](tx, uow.RepositoryName(repoargs.TerminateRequestRepoName))
		if trRepoErr != nil {
			return trRepoErr //nolint:wrapcheck
		}

		locked, lockErr := repo.GetByIDForUpdate(c, orderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if locked.Status != domain.OrderStatusPaid && locked.Status != domain.OrderStatusActive {
			return domain.NewStateConflictError("applyTerminate", locked.Status)
		}
		if locked.TenantID != tenantID {
			return domain.NewAuthorizationError("user %d is not the tenant of order %d", tenantID, orderID)
		}
		if expectedDate.Before(o.today()) {
			return domain.NewValidationError("expected terminate date must not precede today")
		}

		count, countErr := trRepo.CountByTenantListing(c, tenantID, locked.ListingID)
		if countErr != nil {
			return countErr //nolint:wrapcheck
		}
		if count >= maxTerminateRequests {
			return domain.NewLimitExceededError(
				"tenant %d already made %d terminate requests for listing %d", tenantID, count, locked.ListingID)
		}

		now := o.now()
		penalty := settlement.TerminationPenalty(
			locked.TotalAmount, locked.Deposit, locked.StartDate, locked.EndDate, expectedDate)

		if err := repo.ApplyTerminate(c, orderID, repoargs.TerminateApply{
			Reason:        reason,
			RequestTime:   now,
			ExpectedDate:  expectedDate,
			PenaltyAmount: penalty,
		}); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := trRepo.Create(c, repoargs.CreateTerminateRequest{
			OrderID:      orderID,
			TenantID:     tenantID,
			ListingID:    locked.ListingID,
			Reason:       reason,
			ExpectedDate: expectedDate,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		locked.Status = domain.OrderStatusTerminateRequested
		locked.Termination.Reason = reason
		locked.Termination.RequestTime = &now
		locked.Termination.ExpectedDate = &expectedDate
		locked.Termination.PenaltyAmount = penalty
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("applying terminate for order %d: %w", orderID, txErr)
	}

	o.notifyAsync(order.LandlordID, "Заявка на расторжение",
		fmt.Sprintf("Арендатор запросил расторжение по заказу %s", order.OrderNo), order.ID)
	return order, nil
}

type HandleTerminateArgs struct {
	OrderID         int64
	LandlordID      int64
	Approve         bool
	RejectReason    string
	ActualDate      *time.Time       // по умолчанию - дата из заявки арендатора
	PenaltyOverride *decimal.Decimal // имеет приоритет над предварительной оценкой
	Remark          string
}

// HandleTerminateRequest решение арендодателя по заявке на расторжение.
// Отказ возвращает заказ в ACTIVE и сбрасывает предварительную неустойку;
// одобрение фиксирует фактическую дату, окончательную неустойку и счетчики
// прожитых/оставшихся дней.
func (o *OrderService) HandleTerminateRequest(ctx context.Context, args HandleTerminateArgs) (*domain.Order, error) {
	var order *domain.Order

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		locked, lockErr := repo.GetByIDForUpdate(c, args.OrderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if locked.Status != domain.OrderStatusTerminateRequested {
			return domain.NewStateConflictError("handleTerminateRequest", locked.Status)
		}
		if locked.LandlordID != args.LandlordID {
			return domain.NewAuthorizationError(
				"user %d is not the landlord of order %d", args.LandlordID, args.OrderID)
		}

		if !args.Approve {
			if err := repo.RejectTerminate(c, args.OrderID, args.RejectReason); err != nil {
				return err //nolint:wrapcheck
			}
			locked.Status = domain.OrderStatusActive
			locked.Termination.RejectReason = args.RejectReason
			locked.Termination.PenaltyAmount = decimal.Zero
			order = locked
			return nil
		}

		actualDate := o.today()
		switch {
		case args.ActualDate != nil:
			actualDate = *args.ActualDate
		case locked.Termination.ExpectedDate != nil:
			actualDate = *locked.Termination.ExpectedDate
		}

		penalty := locked.Termination.PenaltyAmount
		if args.PenaltyOverride != nil {
			penalty = *args.PenaltyOverride
		}

		totalDays := settlement.LeaseDays(locked.StartDate, locked.EndDate)
		elapsed := settlement.LeaseDays(locked.StartDate, actualDate)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed > totalDays {
			elapsed = totalDays
		}

		if err := repo.ApproveTerminate(c, args.OrderID, repoargs.TerminateApprove{
			ActualDate:    actualDate,
			PenaltyAmount: penalty,
			ElapsedDays:   elapsed,
			RemainingDays: totalDays - elapsed,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		locked.Status = domain.OrderStatusTerminateApproved
		locked.Termination.ActualDate = &actualDate
		locked.Termination.PenaltyAmount = penalty
		locked.Termination.ElapsedDays = elapsed
		locked.Termination.RemainingDays = totalDays - elapsed
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("handling terminate request for order %d: %w", args.OrderID, txErr)
	}

	if args.Remark != "" {
		o.l.WithFields(logrus.Fields{"orderID": args.OrderID, "remark": args.Remark}).
			Info("landlord remark on terminate decision")
	}

	title, body := "Заявка на расторжение отклонена",
		fmt.Sprintf("Арендодатель отклонил расторжение по заказу %s", order.OrderNo)
	if args.Approve {
		title = "Заявка на расторжение одобрена"
		body = fmt.Sprintf("Арендодатель одобрил расторжение по заказу %s", order.OrderNo)
	}
	o.notifyAsync(order.TenantID, title, body, order.ID)

	return order, nil
}

// ConfirmTermination финальное подтверждение расторжения арендодателем:
// заказ уходит в TERMINATED, объявление возвращается в доступное состояние.
// Сбой обновления объявления после коммита не отменяет расторжение - его
// дочинит реконсилятор.
func (o *OrderService) ConfirmTermination(ctx context.Context, orderID, landlordID int64) (*domain.Order, error) {
	var order *domain.Order

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		locked, lockErr := repo.GetByIDForUpdate(c, orderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if locked.Status != domain.OrderStatusTerminateApproved {
			return domain.NewStateConflictError("confirmTermination", locked.Status)
		}
		if locked.LandlordID != landlordID {
			return domain.NewAuthorizationError("user %d is not the landlord of order %d", landlordID, orderID)
		}

		now := o.now()
		actualDate := o.today()
		if locked.Termination.ActualDate != nil {
			actualDate = *locked.Termination.ActualDate
		}

		if err := repo.MarkTerminated(c, orderID, actualDate, now); err != nil {
			return err //nolint:wrapcheck
		}

		locked.Status = domain.OrderStatusTerminated
		locked.Termination.ActualDate = &actualDate
		locked.Termination.TerminateTime = &now
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("confirming termination of order %d: %w", orderID, txErr)
	}

	o.syncListing(ctx, order.ID, order.ListingID, domain.ListingStatusApproved)
	o.notifyAsync(order.TenantID, "Расторжение подтверждено",
		fmt.Sprintf("Договор по заказу %s расторгнут", order.OrderNo), order.ID)

	return order, nil
}

// PayPenalty оплата неустойки арендатором - его финальное подтверждение
// расторжения, поэтому заказ сразу уходит в TERMINATED (зеркально
// ConfirmTermination). Повторный вызов по уже оплаченной неустойке -
// успешный no-op. Нулевая неустойка считается оплаченной автоматически.
func (o *OrderService) PayPenalty(ctx context.Context, orderID, tenantID int64, payMethod string) (*domain.Order, error) {
	var order *domain.Order
	var alreadyPaid bool

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		locked, lockErr := repo.GetByIDForUpdate(c, orderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		switch locked.Status {
		case domain.OrderStatusTerminateApproved, domain.OrderStatusTerminateRequested:
		case domain.OrderStatusTerminated:
			// Повторная оплата по уже расторгнутому заказу - идемпотентный успех.
			if !locked.Termination.PenaltyPaid {
				return domain.NewStateConflictError("payPenalty", locked.Status)
			}
		default:
			return domain.NewStateConflictError("payPenalty", locked.Status)
		}
		// Идемпотентный выход доступен только арендатору заказа.
		if locked.TenantID != tenantID {
			return domain.NewAuthorizationError("user %d is not the tenant of order %d", tenantID, orderID)
		}
		if locked.Termination.PenaltyPaid {
			alreadyPaid = true
			order = locked
			return nil
		}

		now := o.now()
		if err := repo.MarkPenaltyPaid(c, orderID, payMethod, now); err != nil {
			return err //nolint:wrapcheck
		}

		actualDate := o.today()
		switch {
		case locked.Termination.ActualDate != nil:
			actualDate = *locked.Termination.ActualDate
		case locked.Termination.ExpectedDate != nil:
			actualDate = *locked.Termination.ExpectedDate
		}
		if err := repo.MarkTerminated(c, orderID, actualDate, now); err != nil {
			return err //nolint:wrapcheck
		}

		locked.Status = domain.OrderStatusTerminated
		locked.Termination.PenaltyPaid = true
		locked.Termination.PenaltyPayMethod = payMethod
		locked.Termination.PenaltyPayTime = &now
		locked.Termination.ActualDate = &actualDate
		locked.Termination.TerminateTime = &now
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("paying penalty for order %d: %w", orderID, txErr)
	}

	if !alreadyPaid {
		o.syncListing(ctx, order.ID, order.ListingID, domain.ListingStatusApproved)
		o.notifyAsync(order.LandlordID, "Неустойка оплачена",
			fmt.Sprintf("Арендатор оплатил неустойку по заказу %s", order.OrderNo), order.ID)
	}
	return order, nil
}

// GetByID возвращает заказ его арендатору или арендодателю.
func (o *OrderService) GetByID(ctx context.Context, orderID, requesterID int64) (*domain.Order, error) {
	order, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if order.TenantID != requesterID && order.LandlordID != requesterID {
		return nil, domain.NewAuthorizationError("user %d is not a party of order %d", requesterID, orderID)
	}
	return order, nil
}

// GetByTenant возвращает заказы арендатора по убыванию даты создания.
func (o *OrderService) GetByTenant(ctx context.Context, tenantID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// GetByLandlord возвращает заказы арендодателя по убыванию даты создания.
func (o *OrderService) GetByLandlord(ctx context.Context, landlordID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

func (o *OrderService) txRepos(tx uow.TX) (OrderRepository, OutboxRepository, error) {
	repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if repoErr != nil {
		return nil, nil, repoErr //nolint:wrapcheck
	}
	outbox, outboxErr := uow.GetAs[OutboxRepository](tx, uow.RepositoryName(repoargs.OutboxRepoName))
	if outboxErr != nil {
		return nil, nil, outboxErr //nolint:wrapcheck
	}
	return repo, outbox, nil
}

func (o *OrderService) enqueueEvent(ctx context.Context, outbox OutboxRepository, topic string, order *domain.Order) error {
	payload, marshalErr := json.Marshal(domain.OrderEventPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
	})
	if marshalErr != nil {
		return fmt.Errorf("marshaling %s payload: %w", topic, marshalErr)
	}
	return outbox.Enqueue(ctx, repoargs.EnqueueEvent{ //nolint:wrapcheck
		EventID: uuid.NewString(),
		Topic:   topic,
		Payload: payload,
	})
}

// syncListing best-effort обновление статуса объявления после коммита.
// Сбой логируется с контекстом, достаточным для реконсилятора, и не
// влияет на результат операции.
func (o *OrderService) syncListing(ctx context.Context, orderID, listingID int64, target domain.ListingStatus) {
	if err := o.listing.SetStatus(ctx, listingID, target); err != nil {
		o.l.WithError(err).WithFields(logrus.Fields{
			"orderID":      orderID,
			"listingID":    listingID,
			"targetStatus": target,
		}).Error("listing status sync failed, waiting for reconciler")
	}
}

// notifyAsync уведомления уходят после коммита в отдельной горутине и
// никогда не влияют на результат операции.
func (o *OrderService) notifyAsync(userID int64, title, body string, orderID int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := o.notifier.Notify(ctx, userID, title, body, orderID); err != nil {
			o.l.WithError(err).WithFields(logrus.Fields{
				"orderID": orderID,
				"userID":  userID,
			}).Warn("notification delivery failed")
		}
	}()
}

func (o *OrderService) today() time.Time {
	now := o.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (o *OrderService) generateOrderNo(tenantID int64) string {
	return fmt.Sprintf("RO%d%d", o.now().UnixNano(), tenantID%1000) //nolint:mnd
}
