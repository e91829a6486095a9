package pgrepo

import (
	"context"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/repository/repoargs"
	"github.com/rentaro/lease-engine/pkg/uow"
)

type OutboxRepository struct {
	db uow.DBTX
}

func NewOutboxRepository(db uow.DBTX) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, args repoargs.EnqueueEvent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO outbox_events (event_id, topic, payload) VALUES ($1, $2, $3)`,
		args.EventID, args.Topic, args.Payload)
	if err != nil {
		return convertErr(err, "enqueueing event `%s`", args.Topic)
	}
	return nil
}

// GetPending неопубликованные события в порядке создания.
func (r *OutboxRepository) GetPending(ctx context.Context, limit uint) ([]domain.OutboxEvent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, event_id, topic, payload, created_at, published_at
		FROM outbox_events
		WHERE published_at IS NULL
		ORDER BY id
		LIMIT $1`, int64(limit)) //nolint:gosec
	if err != nil {
		return nil, convertErr(err, "getting pending events")
	}
	defer rows.Close()

	var events []domain.OutboxEvent
	for rows.Next() {
		var e domain.OutboxEvent
		if scanErr := rows.Scan(&e.ID, &e.EventID, &e.Topic, &e.Payload, &e.CreatedAt, &e.PublishedAt); scanErr != nil {
			return nil, convertErr(scanErr, "getting pending events")
		}
		events = append(events, e)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting pending events")
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		UPDATE outbox_events SET published_at = now() WHERE id = ANY($1)`, ids)
	if err != nil {
		return convertErr(err, "marking events published `%v`", ids)
	}
	return nil
}
