// Package settlement содержит чистые расчеты по заказу аренды: итоговые
// суммы при создании, неустойка при досрочном расторжении и линейная
// пропорция дохода за отчетный период. Никаких побочных эффектов и
// обращений к хранилищу.
package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentaro/lease-engine/internal/domain"
)

// Ставки зафиксированы бизнесом: сервисный сбор 2% от месячной ставки,
// неустойка 30% от оставшейся арендной платы.
var (
	serviceFeeRate = decimal.RequireFromString("0.02")
	penaltyRate    = decimal.RequireFromString("0.30")
)

const moneyScale = 2

// Totals суммы, фиксируемые в заказе при создании.
type Totals struct {
	Deposit    decimal.Decimal
	ServiceFee decimal.Decimal
	Total      decimal.Decimal
}

// ComputeTotals считает депозит, сервисный сбор и полную сумму заказа.
// totalAmount = monthlyRent*leaseTermMonths + deposit + serviceFee.
func ComputeTotals(monthlyRent decimal.Decimal, depositMonths, leaseTermMonths int) Totals {
	deposit := monthlyRent.Mul(decimal.NewFromInt(int64(depositMonths))).Round(moneyScale)
	serviceFee := monthlyRent.Mul(serviceFeeRate).Round(moneyScale)
	total := monthlyRent.Mul(decimal.NewFromInt(int64(leaseTermMonths))).
		Add(deposit).
		Add(serviceFee).
		Round(moneyScale)

	return Totals{
		Deposit:    deposit,
		ServiceFee: serviceFee,
		Total:      total,
	}
}

// LeaseTermMonths выводит срок аренды в целых месяцах из дат. Неполный
// последний месяц засчитывается, если день конца >= дня начала. Минимум 1.
func LeaseTermMonths(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 1 {
		months = 1
	}
	return months
}

// LeaseDays количество дней аренды, конец интервала не включается.
func LeaseDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24) //nolint:mnd
}

// TerminationPenalty считает неустойку за досрочное расторжение на дату
// terminateDate.
//
// Правила:
//   - расторжение на дату конца аренды или позже - неустойка 0;
//   - дневная ставка = (totalAmount - deposit) / дни аренды;
//   - неустойка = оставшаяся арендная плата * 30%, округление до 2 знаков.
//
// Нулевая длина аренды дает неустойку 0 (защита от деления на ноль).
func TerminationPenalty(totalAmount, deposit decimal.Decimal, start, end, terminateDate time.Time) decimal.Decimal {
	zero := decimal.Zero.Round(moneyScale)

	totalDays := LeaseDays(start, end)
	if totalDays <= 0 {
		return zero
	}
	if !terminateDate.Before(end) {
		return zero
	}

	elapsed := LeaseDays(start, terminateDate)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := totalDays - elapsed
	if remaining <= 0 {
		return zero
	}

	// Сначала умножаем, потом делим - меньше потерь точности.
	remainingRent := totalAmount.Sub(deposit).
		Mul(decimal.NewFromInt(int64(remaining))).
		Div(decimal.NewFromInt(int64(totalDays)))

	return remainingRent.Mul(penaltyRate).Round(moneyScale)
}

// ProratedIncome линейно распределяет доход заказа (totalAmount - deposit)
// по дням и возвращает долю, попадающую в отчетный период
// [periodStart, periodEnd). Для расторгнутых заказов интервал аренды
// обрезается по фактической дате расторжения. Используется только для
// отчетности.
func ProratedIncome(order domain.Order, periodStart, periodEnd time.Time) decimal.Decimal {
	zero := decimal.Zero.Round(moneyScale)

	leaseEnd := order.EndDate
	if order.Status == domain.OrderStatusTerminated && order.Termination.ActualDate != nil {
		leaseEnd = *order.Termination.ActualDate
	}

	totalDays := LeaseDays(order.StartDate, order.EndDate)
	if totalDays <= 0 {
		return zero
	}

	from := maxDate(order.StartDate, periodStart)
	to := minDate(leaseEnd, periodEnd)
	overlap := LeaseDays(from, to)
	if overlap <= 0 {
		return zero
	}

	return order.TotalAmount.Sub(order.Deposit).
		Mul(decimal.NewFromInt(int64(overlap))).
		Div(decimal.NewFromInt(int64(totalDays))).
		Round(moneyScale)
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
