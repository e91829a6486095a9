// Package listing HTTP-клиент listing-сервиса. Заказной движок не владеет
// объявлениями, он читает ценовые данные и переключает статус доступности.
package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/rentaro/lease-engine/internal/domain"
)

const requestTimeout = 10 * time.Second

type Client struct {
	serviceAddr string
	client      *http.Client
}

func NewClient(serviceAddr string) *Client {
	return &Client{
		serviceAddr: serviceAddr,
		client:      &http.Client{Timeout: requestTimeout},
	}
}

type pricingResponse struct {
	LandlordID     int64           `json:"landlordId"`
	MonthlyRent    decimal.Decimal `json:"monthlyRent"`
	DepositMonths  int             `json:"depositMonths"`
	MinLeaseMonths int             `json:"minLeaseMonths"`
	Available      bool            `json:"available"`
}

// GetPricingInfo возвращает ценовой снимок объявления. Несуществующее
// объявление транслируется в domain.ErrRecordNotFound.
func (c *Client) GetPricingInfo(ctx context.Context, listingID int64) (*domain.ListingPricing, error) {
	endpoint := fmt.Sprintf("%s/api/listings/%d/pricing", c.serviceAddr, listingID)
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if reqErr != nil {
		return nil, errors.Wrap(reqErr, "building pricing request")
	}

	resp, respErr := c.client.Do(req)
	if respErr != nil {
		return nil, errors.Wrapf(respErr, "requesting pricing for listing %d", listingID)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errors.Wrapf(domain.ErrRecordNotFound, "listing %d", listingID)
	default:
		return nil, errors.Errorf("listing service returned %d for listing %d", resp.StatusCode, listingID)
	}

	var body pricingResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "decoding pricing response")
	}
	return &domain.ListingPricing{
		LandlordID:     body.LandlordID,
		MonthlyRent:    body.MonthlyRent,
		DepositMonths:  body.DepositMonths,
		MinLeaseMonths: body.MinLeaseMonths,
		Available:      body.Available,
	}, nil
}

type statusPayload struct {
	Status domain.ListingStatus `json:"status"`
}

func (c *Client) GetStatus(ctx context.Context, listingID int64) (domain.ListingStatus, error) {
	endpoint := fmt.Sprintf("%s/api/listings/%d/status", c.serviceAddr, listingID)
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if reqErr != nil {
		return "", errors.Wrap(reqErr, "building status request")
	}

	resp, respErr := c.client.Do(req)
	if respErr != nil {
		return "", errors.Wrapf(respErr, "requesting status of listing %d", listingID)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", errors.Wrapf(domain.ErrRecordNotFound, "listing %d", listingID)
	default:
		return "", errors.Errorf("listing service returned %d for listing %d", resp.StatusCode, listingID)
	}

	var body statusPayload
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		return "", errors.Wrap(decodeErr, "decoding status response")
	}
	return body.Status, nil
}

func (c *Client) SetStatus(ctx context.Context, listingID int64, status domain.ListingStatus) error {
	endpoint := fmt.Sprintf("%s/api/listings/%d/status", c.serviceAddr, listingID)
	payload, marshalErr := json.Marshal(statusPayload{Status: status})
	if marshalErr != nil {
		return errors.Wrap(marshalErr, "marshaling status payload")
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if reqErr != nil {
		return errors.Wrap(reqErr, "building status update request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, respErr := c.client.Do(req)
	if respErr != nil {
		return errors.Wrapf(respErr, "updating status of listing %d", listingID)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("listing service returned %d updating listing %d to %s",
			resp.StatusCode, listingID, status)
	}
	return nil
}
