// Package reconciler чинит расхождения между заказами и listing-сервисом,
// оставшиеся после сбоев best-effort синхронизации, и содержит обвязку
// плановых джоб. Заказ - источник истины: объявление, чей последний заказ
// завершился, не должно оставаться в RENTED.
package reconciler

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rentaro/lease-engine/internal/domain"
)

const defaultBatchSize = 100

type Reconciler struct {
	svc       OrderServicer
	listing   ListingGateway
	l         *logrus.Entry
	batchSize uint
}

func New(svc OrderServicer, listing ListingGateway, l *logrus.Logger) *Reconciler {
	return &Reconciler{
		svc:       svc,
		listing:   listing,
		l:         l.WithField("component", "reconciler"),
		batchSize: defaultBatchSize,
	}
}

// RepairListingDrift один проход реконсиляции: берет объявления, чей
// последний заказ их освободил, и возвращает зависшие в RENTED обратно в
// APPROVED. Ошибка по одному объявлению не прерывает проход. Повторный
// запуск по исправленным данным ничего не меняет.
func (r *Reconciler) RepairListingDrift(ctx context.Context) (int, error) {
	refs, refsErr := r.svc.ListingsPendingRelease(ctx, r.batchSize)
	if refsErr != nil {
		return 0, fmt.Errorf("loading release candidates: %w", refsErr)
	}

	repaired := 0
	for _, ref := range refs {
		status, statusErr := r.listing.GetStatus(ctx, ref.ListingID)
		if statusErr != nil {
			r.l.WithError(statusErr).WithField("listingID", ref.ListingID).
				Warn("listing status check failed, skipping")
			continue
		}
		if status != domain.ListingStatusRented {
			continue
		}

		if setErr := r.listing.SetStatus(ctx, ref.ListingID, domain.ListingStatusApproved); setErr != nil {
			r.l.WithError(setErr).WithFields(logrus.Fields{
				"orderID":   ref.OrderID,
				"listingID": ref.ListingID,
			}).Warn("listing release failed, will retry next run")
			continue
		}

		r.l.WithFields(logrus.Fields{
			"orderID":   ref.OrderID,
			"listingID": ref.ListingID,
		}).Info("stuck listing released")
		repaired++
	}

	if len(refs) > 0 {
		r.l.WithFields(logrus.Fields{
			"candidates": len(refs),
			"repaired":   repaired,
		}).Info("listing drift pass finished")
	}
	return repaired, nil
}
