package api

import (
	"context"

	"github.com/shopspring/decimal"
)

// SendResult is the backend's acknowledgement for SMS sends: how many
// messages were queued with the gateway.
type SendResult struct {
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// SendSMS sends a free-form message to one phone number.
func (c *Client) SendSMS(ctx context.Context, mobile, message string) (*SendResult, error) {
	body := map[string]string{"mobile": mobile, "message": message}
	var res SendResult
	if err := c.post(ctx, "/send-sms", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendToAll broadcasts a message to every active customer.
func (c *Client) SendToAll(ctx context.Context, message string) (*SendResult, error) {
	body := map[string]string{"message": message}
	var res SendResult
	if err := c.post(ctx, "/send-to-all", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendToGroup messages the customers on one collection day.
func (c *Client) SendToGroup(ctx context.Context, day, message string) (*SendResult, error) {
	body := map[string]string{"day": day, "message": message}
	var res SendResult
	if err := c.post(ctx, "/send-to-group", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendBill texts one customer their current balance.
func (c *Client) SendBill(ctx context.Context, customerID int64) (*SendResult, error) {
	body := map[string]int64{"customerId": customerID}
	var res SendResult
	if err := c.post(ctx, "/send-bill", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendBills texts every customer with an outstanding balance.
func (c *Client) SendBills(ctx context.Context) (*SendResult, error) {
	var res SendResult
	if err := c.post(ctx, "/send-bills", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendBillsPerDay texts balances to the customers on one collection day.
func (c *Client) SendBillsPerDay(ctx context.Context, day string) (*SendResult, error) {
	body := map[string]string{"day": day}
	var res SendResult
	if err := c.post(ctx, "/send-bill-perday", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendHighDebtReminders targets customers whose arrears exceed twice their
// monthly charge.
func (c *Client) SendHighDebtReminders(ctx context.Context) (*SendResult, error) {
	var res SendResult
	if err := c.post(ctx, "/send-debt-high", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendLowDebtReminders targets customers with small outstanding balances.
func (c *Client) SendLowDebtReminders(ctx context.Context) (*SendResult, error) {
	var res SendResult
	if err := c.post(ctx, "/send-debt-low", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendCustomDebtReminders targets customers whose arrears exceed the given
// threshold, with a custom message.
func (c *Client) SendCustomDebtReminders(ctx context.Context, threshold decimal.Decimal, message string) (*SendResult, error) {
	body := map[string]any{"balance": threshold, "message": message}
	var res SendResult
	if err := c.post(ctx, "/send-custom-debt", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
