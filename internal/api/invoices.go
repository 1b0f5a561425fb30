package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses as the backend derives them from balances.
const (
	InvoiceStatusPaid     = "PAID"
	InvoiceStatusPartPaid = "PPAID"
	InvoiceStatusUnpaid   = "UNPAID"
	InvoiceStatusCanceled = "CANCELED"
)

// InvoiceItem is one line on an invoice.
type InvoiceItem struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice belongs to one customer; status and balances are server-derived.
type Invoice struct {
	ID             int64           `json:"id"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	CustomerID     int64           `json:"customerId"`
	InvoiceAmount  decimal.Decimal `json:"invoiceAmount"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	Status         string          `json:"status"`
	InvoicePeriod  time.Time       `json:"invoicePeriod"`
	Items          []InvoiceItem   `json:"items,omitempty"`
	Customer       *Customer       `json:"customer,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListInvoices fetches one page of invoices, routing by search variant.
func (c *Client) ListInvoices(ctx context.Context, q SearchQuery, page PageRequest) ([]Invoice, int, error) {
	path := "/invoices/all"
	switch q.Kind {
	case SearchByPhone:
		path = "/invoices/search-by-phone"
	case SearchByName:
		path = "/invoices/search-by-name"
	}
	return listGet[Invoice](ctx, c, path, page.apply(q.params()), "invoices")
}

// GetInvoice fetches one invoice with its items.
func (c *Client) GetInvoice(ctx context.Context, id int64) (*Invoice, error) {
	var invoice Invoice
	if err := c.get(ctx, fmt.Sprintf("/invoices/%d", id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// CreateInvoiceRequest is the payload for generating an invoice for one
// customer, optionally for a specific billing period.
type CreateInvoiceRequest struct {
	CustomerID    int64  `json:"customerId"`
	InvoicePeriod string `json:"invoicePeriod,omitempty"`
}

// CreateInvoice creates an invoice. The backend derives amount and status
// from the customer's monthly charge and balance.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	var invoice Invoice
	if err := c.post(ctx, "/invoices/", req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}
