package pgrepo

import (
	"context"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/repository/repoargs"
	"github.com/rentaro/lease-engine/pkg/uow"
)

type TerminateRequestRepository struct {
	db uow.DBTX
}

func NewTerminateRequestRepository(db uow.DBTX) *TerminateRequestRepository {
	return &TerminateRequestRepository{db: db}
}

func (r *TerminateRequestRepository) Create(
	ctx context.Context,
	args repoargs.CreateTerminateRequest,
) (*domain.TerminateRequest, error) {
	var req domain.TerminateRequest
	err := r.db.QueryRow(ctx, `
		INSERT INTO terminate_requests (order_id, tenant_id, listing_id, reason, expected_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, order_id, tenant_id, listing_id, reason, expected_date`,
		args.OrderID, args.TenantID, args.ListingID, args.Reason, args.ExpectedDate,
	).Scan(&req.ID, &req.CreatedAt, &req.OrderID, &req.TenantID, &req.ListingID, &req.Reason, &req.ExpectedDate)
	if err != nil {
		return nil, convertErr(err, "creating terminate request for order %d", args.OrderID)
	}
	return &req, nil
}

// CountByTenantListing количество заявок на расторжение за все время по
// паре (арендатор, объявление). Отклоненные заявки тоже считаются.
func (r *TerminateRequestRepository) CountByTenantListing(ctx context.Context, tenantID, listingID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM terminate_requests WHERE tenant_id = $1 AND listing_id = $2`,
		tenantID, listingID,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting terminate requests for tenant %d listing %d", tenantID, listingID)
	}
	return count, nil
}
