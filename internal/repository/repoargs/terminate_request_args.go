package repoargs

import "time"

type CreateTerminateRequest struct {
	OrderID      int64
	TenantID     int64
	ListingID    int64
	Reason       string
	ExpectedDate time.Time
}
