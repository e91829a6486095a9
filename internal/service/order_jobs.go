package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/settlement"
)

// Методы плановых джоб и отчетности. Вызываются планировщиком и
// реконсилятором, а не HTTP-обработчиками.

// RolloverLeases ежедневный перевод заказов по календарю: оплаченные
// заказы с наступившей датой начала уходят в ACTIVE, заказы с истекшей
// датой конца - в COMPLETED с освобождением объявления.
func (o *OrderService) RolloverLeases(ctx context.Context) (activated, completed int, err error) {
	today := o.today()

	activatedIDs, activateErr := o.orderRepo.ActivateStarted(ctx, today)
	if activateErr != nil {
		return 0, 0, fmt.Errorf("activating started leases: %w", activateErr)
	}

	completedRefs, completeErr := o.orderRepo.CompleteElapsed(ctx, today)
	if completeErr != nil {
		return len(activatedIDs), 0, fmt.Errorf("completing elapsed leases: %w", completeErr)
	}
	for _, ref := range completedRefs {
		o.syncListing(ctx, ref.OrderID, ref.ListingID, domain.ListingStatusApproved)
	}

	return len(activatedIDs), len(completedRefs), nil
}

// ExpireStaleUnpaid переводит в EXPIRED неоплаченные заказы старше ttl.
// Объявление такие заказы не занимали, статус объявления не трогаем.
func (o *OrderService) ExpireStaleUnpaid(ctx context.Context, ttl time.Duration) (int64, error) {
	expired, err := o.orderRepo.ExpireUnpaid(ctx, o.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("expiring stale unpaid orders: %w", err)
	}
	return expired, nil
}

// ListingsPendingRelease кандидаты на реконсиляцию: объявления, чей
// последний заказ освободил их, без учета реального статуса в
// listing-сервисе (его проверяет реконсилятор).
func (o *OrderService) ListingsPendingRelease(ctx context.Context, limit uint) ([]domain.ListingRef, error) {
	refs, err := o.orderRepo.ListingsPendingRelease(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing release candidates: %w", err)
	}
	return refs, nil
}

type IncomeItem struct {
	OrderID int64           `json:"orderId"`
	OrderNo string          `json:"orderNo"`
	Amount  decimal.Decimal `json:"amount"`
}

type IncomeReport struct {
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
	Total decimal.Decimal `json:"total"`
	Items []IncomeItem    `json:"items"`
}

// IncomeReport доход арендодателя за период [from, to): линейная пропорция
// (totalAmount - deposit) по дням аренды. Учитываются только оплаченные
// заказы; возвраты и отмены с возвратом денег в доход не попадают.
func (o *OrderService) IncomeReport(ctx context.Context, landlordID int64, from, to time.Time) (*IncomeReport, error) {
	if !from.Before(to) {
		return nil, domain.NewValidationError("report period start must precede its end")
	}

	orders, ordersErr := o.orderRepo.GetByLandlord(ctx, landlordID)
	if ordersErr != nil {
		return nil, ordersErr //nolint:wrapcheck
	}

	report := &IncomeReport{
		From:  from,
		To:    to,
		Total: decimal.Zero.Round(2), //nolint:mnd
		Items: []IncomeItem{},
	}
	for _, order := range orders {
		if order.PayTime == nil ||
			order.Status == domain.OrderStatusRefunded ||
			order.Status == domain.OrderStatusCancelled {
			continue
		}
		amount := settlement.ProratedIncome(order, from, to)
		if amount.IsZero() {
			continue
		}
		report.Items = append(report.Items, IncomeItem{
			OrderID: order.ID,
			OrderNo: order.OrderNo,
			Amount:  amount,
		})
		report.Total = report.Total.Add(amount)
	}
	return report, nil
}
