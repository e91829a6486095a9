package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/repository/repoargs"
	"github.com/rentaro/lease-engine/pkg/uow"
)

// Список колонок заказа в порядке сканирования scanOrder.
const orderColumns = `id, created_at, updated_at, order_no, listing_id, tenant_id, landlord_id,
	start_date, end_date, lease_term_months, monthly_rent, deposit, service_fee, total_amount, status,
	pay_time, pay_method, transaction_id, cancel_reason,
	terminate_reason, terminate_request_time, expected_terminate_date, terminate_reject_reason,
	terminate_time, actual_terminate_date, penalty_amount, is_penalty_paid, penalty_pay_method,
	penalty_pay_time, elapsed_days, remaining_days, deleted`

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.OrderNo, &o.ListingID, &o.TenantID, &o.LandlordID,
		&o.StartDate, &o.EndDate, &o.LeaseTermMonths, &o.MonthlyRent, &o.Deposit, &o.ServiceFee,
		&o.TotalAmount, &o.Status,
		&o.PayTime, &o.PayMethod, &o.TransactionID, &o.CancelReason,
		&o.Termination.Reason, &o.Termination.RequestTime, &o.Termination.ExpectedDate,
		&o.Termination.RejectReason, &o.Termination.TerminateTime, &o.Termination.ActualDate,
		&o.Termination.PenaltyAmount, &o.Termination.PenaltyPaid, &o.Termination.PenaltyPayMethod,
		&o.Termination.PenaltyPayTime, &o.Termination.ElapsedDays, &o.Termination.RemainingDays,
		&o.Deleted,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err() //nolint:wrapcheck
}

func (r *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (order_no, listing_id, tenant_id, landlord_id,
			start_date, end_date, lease_term_months,
			monthly_rent, deposit, service_fee, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+orderColumns,
		args.OrderNo, args.ListingID, args.TenantID, args.LandlordID,
		args.StartDate, args.EndDate, args.LeaseTermMonths,
		args.MonthlyRent, args.Deposit, args.ServiceFee, args.TotalAmount,
		domain.OrderStatusUnpaid,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order `%s`", args.OrderNo)
	}
	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND deleted = FALSE`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "getting order by id %d", id)
	}
	return order, nil
}

// GetByIDForUpdate читает заказ с блокировкой строки. Вызывается только
// внутри транзакции uow.Do: конкурентный переход на том же заказе будет
// ждать и перечитает уже измененный статус.
func (r *OrderRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND deleted = FALSE FOR UPDATE`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "locking order by id %d", id)
	}
	return order, nil
}

func (r *OrderRepository) GetByTenant(ctx context.Context, tenantID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE tenant_id = $1 AND deleted = FALSE ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, convertErr(err, "getting orders by tenant %d", tenantID)
	}
	orders, collectErr := collectOrders(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting orders by tenant %d", tenantID)
	}
	return orders, nil
}

func (r *OrderRepository) GetByLandlord(ctx context.Context, landlordID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE landlord_id = $1 AND deleted = FALSE ORDER BY created_at DESC`, landlordID)
	if err != nil {
		return nil, convertErr(err, "getting orders by landlord %d", landlordID)
	}
	orders, collectErr := collectOrders(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting orders by landlord %d", landlordID)
	}
	return orders, nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id int64, stamp repoargs.PaymentStamp) error {
	return r.exec(ctx, "marking order %d paid", id, `
		UPDATE orders SET status = $2, pay_method = $3, transaction_id = $4, pay_time = $5,
			updated_at = now()
		WHERE id = $1 AND deleted = FALSE`,
		id, domain.OrderStatusPaid, stamp.PayMethod, stamp.TransactionID, stamp.PayTime)
}

func (r *OrderRepository) MarkCancelled(ctx context.Context, id int64, status domain.OrderStatus, reason string) error {
	return r.exec(ctx, "cancelling order %d", id, `
		UPDATE orders SET status = $2, cancel_reason = $3, updated_at = now()
		WHERE id = $1 AND deleted = FALSE`,
		id, status, reason)
}

func (r *OrderRepository) ApplyTerminate(ctx context.Context, id int64, args repoargs.TerminateApply) error {
	return r.exec(ctx, "applying terminate for order %d", id, `
		UPDATE orders SET status = $2, terminate_reason = $3, terminate_request_time = $4,
			expected_terminate_date = $5, penalty_amount = $6, terminate_reject_reason = '',
			updated_at = now()
		WHERE id = $1 AND deleted = FALSE`,
		id, domain.OrderStatusTerminateRequested,
		args.Reason, args.RequestTime, args.ExpectedDate, args.PenaltyAmount)
}

// RejectTerminate возвращает заказ в ACTIVE и обнуляет предварительную
// неустойку.
func (r *OrderRepository) RejectTerminate(ctx context.Context, id int64, rejectReason string) error {
	return r.exec(ctx, "rejecting terminate for order %d", id, `
		UPDATE orders SET status = $2, terminate_reject_reason = $3, penalty_amount = 0,
			updated_at = now()
		WHERE id = $1 AND deleted = FALSE`,
		id, domain.OrderStatusActive, rejectReason)
}

func (r *OrderRepository) ApproveTerminate(ctx context.Context, id int64, args repoargs.TerminateApprove) error {
	return r.exec(ctx, "approving terminate for order %d", id, `
		UPDATE orders SET status = $2, actual_terminate_date = $3, penalty_amount = $4,
			elapsed_days = $5, remaining_days = $6, updated_at = now()
		WHERE id = $1 AND deleted = FALSE`,
		id, domain.OrderStatusTerminateApproved,
		args.ActualDate, args.PenaltyAmount, args.ElapsedDays, args.RemainingDays)
}

func (r *OrderRepository) MarkTerminated(ctx context.Context, id int64, actualDate, terminateTime time.Time) error {
	return r.exec(ctx, "terminating order %d", id, `
		UPDATE orders SET status = $2, actual_terminate_date = $3, terminate_time = $4,
			updated_at = now()
		WHERE id = $1 AND deleted = FALSE`,
		id, domain.OrderStatusTerminated, actualDate, terminateTime)
}

func (r *OrderRepository) MarkPenaltyPaid(ctx context.Context, id int64, payMethod string, payTime time.Time) error {
	return r.exec(ctx, "marking penalty paid for order %d", id, `
		UPDATE orders SET is_penalty_paid = TRUE, penalty_pay_method = $2, penalty_pay_time = $3,
			updated_at = now()
		WHERE id = $1 AND deleted = FALSE`,
		id, payMethod, payTime)
}

// ActivateStarted переводит оплаченные заказы с наступившей датой начала
// аренды в ACTIVE. Возвращает id затронутых заказов.
func (r *OrderRepository) ActivateStarted(ctx context.Context, today time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE status = $1 AND start_date <= $3 AND deleted = FALSE
		RETURNING id`,
		domain.OrderStatusPaid, domain.OrderStatusActive, today)
	if err != nil {
		return nil, convertErr(err, "activating started orders")
	}
	ids, collectErr := pgx.CollectRows(rows, pgx.RowTo[int64])
	if collectErr != nil {
		return nil, convertErr(collectErr, "activating started orders")
	}
	return ids, nil
}

// CompleteElapsed завершает заказы с истекшим сроком аренды и возвращает
// пары (заказ, объявление) для освобождения объявлений.
func (r *OrderRepository) CompleteElapsed(ctx context.Context, today time.Time) ([]domain.ListingRef, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE orders SET status = $3, updated_at = now()
		WHERE status IN ($1, $2) AND end_date <= $4 AND deleted = FALSE
		RETURNING id, listing_id`,
		domain.OrderStatusPaid, domain.OrderStatusActive, domain.OrderStatusCompleted, today)
	if err != nil {
		return nil, convertErr(err, "completing elapsed orders")
	}
	refs, collectErr := collectListingRefs(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "completing elapsed orders")
	}
	return refs, nil
}

func (r *OrderRepository) ExpireUnpaid(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE status = $1 AND created_at < $3 AND deleted = FALSE`,
		domain.OrderStatusUnpaid, domain.OrderStatusExpired, olderThan)
	if err != nil {
		return 0, convertErr(err, "expiring unpaid orders")
	}
	return tag.RowsAffected(), nil
}

// ListingsPendingRelease кандидаты реконсиляции: по одному заказу на
// объявление из терминальных освобождающих статусов (включая отмену уже
// оплаченного заказа), при условии что никакой другой заказ это объявление
// сейчас не занимает.
func (r *OrderRepository) ListingsPendingRelease(ctx context.Context, limit uint) ([]domain.ListingRef, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (o.listing_id) o.id, o.listing_id
		FROM orders o
		WHERE o.deleted = FALSE
			AND (o.status = ANY($1) OR (o.status = $2 AND o.pay_time IS NOT NULL))
			AND NOT EXISTS (
				SELECT 1 FROM orders oc
				WHERE oc.listing_id = o.listing_id AND oc.deleted = FALSE AND oc.status = ANY($3)
			)
		ORDER BY o.listing_id, o.updated_at DESC
		LIMIT $4`,
		statusesWhere(domain.OrderStatus.ReleasesListing),
		domain.OrderStatusCancelled,
		statusesWhere(domain.OrderStatus.Occupying),
		int64(limit), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "getting listings pending release")
	}
	refs, collectErr := collectListingRefs(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting listings pending release")
	}
	return refs, nil
}

func collectListingRefs(rows pgx.Rows) ([]domain.ListingRef, error) {
	defer rows.Close()

	var refs []domain.ListingRef
	for rows.Next() {
		var ref domain.ListingRef
		if err := rows.Scan(&ref.OrderID, &ref.ListingID); err != nil {
			return nil, err //nolint:wrapcheck
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err() //nolint:wrapcheck
}

// statusesWhere строит список статусов для SQL из доменного предиката,
// чтобы запрос не расходился с бизнес-логикой.
func statusesWhere(pred func(domain.OrderStatus) bool) []domain.OrderStatus {
	var out []domain.OrderStatus
	for _, s := range domain.OrderStatuses() {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

// exec выполняет UPDATE по id и считает отсутствие затронутых строк
// ошибкой ErrRecordNotFound.
func (r *OrderRepository) exec(ctx context.Context, msg string, id int64, sql string, args ...any) error {
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return convertErr(err, msg, id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, msg, id)
	}
	return nil
}
