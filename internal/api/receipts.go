package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptInvoice is the join record linking a receipt to one of the
// invoices it settled.
type ReceiptInvoice struct {
	ID        int64    `json:"id"`
	ReceiptID int64    `json:"receiptId"`
	InvoiceID int64    `json:"invoiceId"`
	Invoice   *Invoice `json:"invoice,omitempty"`
}

// Receipt records the reconciliation of one payment against one or more
// invoices.
type Receipt struct {
	ID              int64            `json:"id"`
	ReceiptNumber   string           `json:"receiptNumber"`
	Amount          decimal.Decimal  `json:"amount"`
	ModeOfPayment   string           `json:"modeOfPayment"`
	PaidBy          string           `json:"paidBy"`
	TransactionCode string           `json:"transactionCode,omitempty"`
	PaymentID       int64            `json:"paymentId"`
	Payment         *Payment         `json:"payment,omitempty"`
	CustomerID      int64            `json:"customerId"`
	Customer        *Customer        `json:"customer,omitempty"`
	ReceiptInvoices []ReceiptInvoice `json:"receiptInvoices,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ListReceipts fetches one page of receipts, routing by search variant.
func (c *Client) ListReceipts(ctx context.Context, q SearchQuery, page PageRequest) ([]Receipt, int, error) {
	path := "/receipts"
	switch q.Kind {
	case SearchByPhone:
		path = "/search-by-phone"
	case SearchByName:
		path = "/search-by-name"
	}
	return listGet[Receipt](ctx, c, path, page.apply(q.params()), "receipts")
}

// GetReceipt fetches one receipt with its invoice links.
func (c *Client) GetReceipt(ctx context.Context, id int64) (*Receipt, error) {
	var receipt Receipt
	if err := c.get(ctx, fmt.Sprintf("/receipts/%d", id), nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// DownloadReceipt fetches the receipt's rendered PDF.
func (c *Client) DownloadReceipt(ctx context.Context, id int64) ([]byte, error) {
	body, _, err := c.getBinary(ctx, fmt.Sprintf("/download-receipt/%d", id))
	return body, err
}
