package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment modes the backend accepts.
const (
	PaymentModeCash         = "CASH"
	PaymentModeMpesa        = "MPESA"
	PaymentModeBankTransfer = "BANK_TRANSFER"
)

// Payment is money received from a customer; once reconciled against
// invoices it owns one Receipt and is flagged receipted.
type Payment struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customerId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	ModeOfPayment string          `json:"modeOfPayment"`
	TransactionID string          `json:"transactionId"`
	Ref           string          `json:"ref,omitempty"`
	Receipted     bool            `json:"receipted"`
	Receipt       *Receipt        `json:"receipt,omitempty"`
	Customer      *Customer       `json:"customer,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListPayments fetches one page of payments. The backend only searches
// payments by customer name, so phone-shaped terms are sent through the
// name parameter; a phone param would be ignored and render an unfiltered
// page as if it were results.
func (c *Client) ListPayments(ctx context.Context, q SearchQuery, page PageRequest) ([]Payment, int, error) {
	path := "/payments"
	if q.Kind != SearchAll {
		path = "/payments/search-by-name"
		if q.Kind == SearchByPhone {
			q = SearchQuery{Kind: SearchByName, First: q.Phone, Term: q.Term}
		}
	}
	return listGet[Payment](ctx, c, path, page.apply(q.params()), "payments")
}

// ListUnreceiptedPayments fetches payments awaiting manual receipting.
func (c *Client) ListUnreceiptedPayments(ctx context.Context, page PageRequest) ([]Payment, int, error) {
	return listGet[Payment](ctx, c, "/payments/unreceipted", page.apply(nil), "payments")
}

// GetPayment fetches one payment.
func (c *Client) GetPayment(ctx context.Context, id int64) (*Payment, error) {
	var payment Payment
	if err := c.get(ctx, fmt.Sprintf("/payments/%d", id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ManualCashPaymentRequest records a cash payment taken at the office.
type ManualCashPaymentRequest struct {
	CustomerID    int64           `json:"customerId"`
	Amount        decimal.Decimal `json:"totalAmount"`
	ModeOfPayment string          `json:"modeOfPayment"`
	PaidBy        string          `json:"paidBy"`
}

// CreateManualCashPayment posts a manual payment.
func (c *Client) CreateManualCashPayment(ctx context.Context, req ManualCashPaymentRequest) (*Payment, error) {
	var payment Payment
	if err := c.post(ctx, "/manual-cash-payment", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ManualReceiptRequest reconciles an existing payment against a customer's
// open invoices. The backend rejects payments that are already receipted.
type ManualReceiptRequest struct {
	PaymentID  int64           `json:"paymentId"`
	CustomerID int64           `json:"customerId"`
	Amount     decimal.Decimal `json:"totalAmount"`
	PaidBy     string          `json:"paidBy"`
}

// CreateManualReceipt receipts a payment, producing a Receipt record.
func (c *Client) CreateManualReceipt(ctx context.Context, req ManualReceiptRequest) (*Receipt, error) {
	var receipt Receipt
	if err := c.post(ctx, "/manual-receipt", req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
