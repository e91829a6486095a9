// Package notify HTTP-клиент сервиса уведомлений. Доставка best-effort,
// вызывающая сторона игнорирует ошибки.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const requestTimeout = 5 * time.Second

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

type notification struct {
	UserID  int64  `json:"userId"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	OrderID int64  `json:"orderId"`
}

func (c *Client) Notify(ctx context.Context, userID int64, title, body string, orderID int64) error {
	payload, marshalErr := json.Marshal(notification{
		UserID:  userID,
		Title:   title,
		Body:    body,
		OrderID: orderID,
	})
	if marshalErr != nil {
		return errors.Wrap(marshalErr, "marshaling notification")
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost,
		c.serviceAddr+"/api/notifications", bytes.NewReader(payload))
	if reqErr != nil {
		return errors.Wrap(reqErr, "building notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, respErr := c.client.Do(req)
	if respErr != nil {
		return errors.Wrapf(respErr, "delivering notification to user %d", userID)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("notification service returned %d for user %d", resp.StatusCode, userID)
	}
	return nil
}
