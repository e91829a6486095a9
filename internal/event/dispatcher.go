package event

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentaro/lease-engine/internal/domain"
)

const dispatchBatchSize = 100

// OutboxSource чтение и подтверждение строк outbox.
type OutboxSource interface {
	GetPending(ctx context.Context, limit uint) ([]domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []int64) error
}

// Dispatcher периодически вычитывает неопубликованные события и публикует
// их в брокер в порядке записи.
type Dispatcher struct {
	outbox   OutboxSource
	pub      Publisher
	interval time.Duration
	l        *logrus.Entry
}

func NewDispatcher(outbox OutboxSource, pub Publisher, interval time.Duration, l *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		outbox:   outbox,
		pub:      pub,
		interval: interval,
		l:        l.WithField("component", "event_dispatcher"),
	}
}

// Run блокируется до отмены контекста.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.Flush(ctx); err != nil {
				d.l.WithError(err).Error("outbox flush failed")
			}
		}
	}
}

// Flush один проход: публикует пачку в порядке id и помечает доставленное.
// Ошибка публикации обрывает пачку, чтобы не ломать порядок событий;
// недоставленный хвост уйдет на следующем проходе. Падение между публикацией
// и пометкой дает повторную доставку, это допустимо.
func (d *Dispatcher) Flush(ctx context.Context) error {
	events, pendingErr := d.outbox.GetPending(ctx, dispatchBatchSize)
	if pendingErr != nil {
		return fmt.Errorf("loading pending events: %w", pendingErr)
	}
	if len(events) == 0 {
		return nil
	}

	published := make([]int64, 0, len(events))
	for _, ev := range events {
		if pubErr := d.pub.Publish(ctx, ev.Topic, ev.EventID, ev.Payload); pubErr != nil {
			d.l.WithError(pubErr).WithFields(logrus.Fields{
				"eventID": ev.EventID,
				"topic":   ev.Topic,
			}).Warn("event publish failed, batch stopped")
			break
		}
		published = append(published, ev.ID)
	}

	if len(published) == 0 {
		return nil
	}
	if markErr := d.outbox.MarkPublished(ctx, published); markErr != nil {
		return fmt.Errorf("marking %d events published: %w", len(published), markErr)
	}
	d.l.WithField("count", len(published)).Debug("outbox events dispatched")
	return nil
}
