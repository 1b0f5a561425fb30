// Package rows projects nested API payloads into the flat records the list
// screens render. Every mapping is total: missing nested data becomes "N/A",
// never a panic. Rows carry the source record's id so detail actions can
// navigate by it.
package rows

import (
	"fmt"
	"strings"
	"time"

	"github.com/KKiumbe/web-taqa-sub000/internal/api"
	"github.com/KKiumbe/web-taqa-sub000/pkg/fp"
)

// NA is the placeholder for absent nested data.
const NA = "N/A"

const (
	displayTimeFormat   = "2006-01-02 15:04"
	displayPeriodFormat = "Jan 2006"
)

// FormatTime renders a timestamp for display. The backend stores times one
// hour ahead of the tenant's wall clock, so display applies a fixed minus
// one hour correction. Formatting convention, not a business rule.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return NA
	}
	return t.Add(-time.Hour).Format(displayTimeFormat)
}

// FormatOptionalTime renders a nullable timestamp, NA when nil.
func FormatOptionalTime(t *time.Time) string {
	return fp.GetOrElse(NA)(fp.Map(FormatTime)(fp.FromPointer(t)))
}

// CustomerRow is one line on the customers screen.
type CustomerRow struct {
	ID             int64
	Name           string
	PhoneNumber    string
	Location       string
	MonthlyCharge  string
	ClosingBalance string
	CustomerType   string
	CollectionDay  string
	Status         string
}

// CustomerRows flattens customers for display.
func CustomerRows(customers []api.Customer) []CustomerRow {
	out := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		location := c.EstateName
		if location == "" {
			location = c.Town
		}
		if location == "" {
			location = NA
		}
		out = append(out, CustomerRow{
			ID:             c.ID,
			Name:           c.FullName(),
			PhoneNumber:    c.PhoneNumber,
			Location:       location,
			MonthlyCharge:  c.MonthlyCharge.StringFixed(2),
			ClosingBalance: c.ClosingBalance.StringFixed(2),
			CustomerType:   c.CustomerType,
			CollectionDay:  c.GarbageCollectionDay,
			Status:         c.Status,
		})
	}
	return out
}

// InvoiceRow is one line on the invoices screen.
type InvoiceRow struct {
	ID             int64
	InvoiceNumber  string
	CustomerName   string
	InvoiceAmount  string
	AmountPaid     string
	ClosingBalance string
	Status         string
	Period         string
	CreatedAt      string
}

// InvoiceRows flattens invoices for display.
func InvoiceRows(invoices []api.Invoice) []InvoiceRow {
	customerName := func(inv api.Invoice) string {
		return fp.GetOrElse(NA)(fp.Map(api.Customer.FullName)(fp.FromPointer(inv.Customer)))
	}
	out := make([]InvoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		period := NA
		if !inv.InvoicePeriod.IsZero() {
			period = inv.InvoicePeriod.Format(displayPeriodFormat)
		}
		out = append(out, InvoiceRow{
			ID:             inv.ID,
			InvoiceNumber:  inv.InvoiceNumber,
			CustomerName:   customerName(inv),
			InvoiceAmount:  inv.InvoiceAmount.StringFixed(2),
			AmountPaid:     inv.AmountPaid.StringFixed(2),
			ClosingBalance: inv.ClosingBalance.StringFixed(2),
			Status:         inv.Status,
			Period:         period,
			CreatedAt:      FormatTime(inv.CreatedAt),
		})
	}
	return out
}

// PaymentRow is one line on the payments screen: the payment itself plus
// the receipt→invoice chain flattened beside it.
type PaymentRow struct {
	ID            int64
	CustomerName  string
	Amount        string
	Mode          string
	TransactionID string
	Receipted     bool
	ReceiptNumber string
	InvoiceNumber string
	CreatedAt     string
}

// PaymentRows flattens payments, walking payment→receipt→invoice.
func PaymentRows(payments []api.Payment) []PaymentRow {
	out := make([]PaymentRow, 0, len(payments))
	for _, p := range payments {
		receipt := fp.FromPointer(p.Receipt)
		receiptNumber := fp.GetOrElse(NA)(fp.Map(func(r api.Receipt) string {
			return r.ReceiptNumber
		})(receipt))
		invoiceNumber := fp.GetOrElse(NA)(fp.Chain(firstInvoiceNumber)(receipt))

		out = append(out, PaymentRow{
			ID:            p.ID,
			CustomerName:  fp.GetOrElse(NA)(fp.Map(api.Customer.FullName)(fp.FromPointer(p.Customer))),
			Amount:        p.Amount.StringFixed(2),
			Mode:          p.ModeOfPayment,
			TransactionID: orNA(p.TransactionID),
			Receipted:     p.Receipted,
			ReceiptNumber: receiptNumber,
			InvoiceNumber: invoiceNumber,
			CreatedAt:     FormatTime(p.CreatedAt),
		})
	}
	return out
}

// firstInvoiceNumber walks receipt→receiptInvoices[0]→invoice.
func firstInvoiceNumber(r api.Receipt) fp.Option[string] {
	return fp.Chain(func(ri api.ReceiptInvoice) fp.Option[string] {
		return fp.Map(func(inv api.Invoice) string {
			return inv.InvoiceNumber
		})(fp.FromPointer(ri.Invoice))
	})(fp.First(r.ReceiptInvoices))
}

// ReceiptRow is one line on the receipts screen.
type ReceiptRow struct {
	ID              int64
	ReceiptNumber   string
	CustomerName    string
	Amount          string
	Mode            string
	PaidBy          string
	TransactionCode string
	InvoiceNumber   string
	CreatedAt       string
}

// ReceiptRows flattens receipts for display.
func ReceiptRows(receipts []api.Receipt) []ReceiptRow {
	out := make([]ReceiptRow, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, ReceiptRow{
			ID:              r.ID,
			ReceiptNumber:   r.ReceiptNumber,
			CustomerName:    fp.GetOrElse(NA)(fp.Map(api.Customer.FullName)(fp.FromPointer(r.Customer))),
			Amount:          r.Amount.StringFixed(2),
			Mode:            orNA(r.ModeOfPayment),
			PaidBy:          orNA(r.PaidBy),
			TransactionCode: orNA(r.TransactionCode),
			InvoiceNumber:   fp.GetOrElse(NA)(firstInvoiceNumber(r)),
			CreatedAt:       FormatTime(r.CreatedAt),
		})
	}
	return out
}

// UserRow is one line on the users screen.
type UserRow struct {
	ID          int64
	Name        string
	PhoneNumber string
	Roles       string
	Status      string
	LoginCount  string
	LastLogin   string
}

// UserRows flattens staff accounts for display.
func UserRows(users []api.User) []UserRow {
	out := make([]UserRow, 0, len(users))
	for _, u := range users {
		roles := strings.Join(u.Roles, ", ")
		if roles == "" {
			roles = NA
		}
		out = append(out, UserRow{
			ID:          u.ID,
			Name:        u.FullName(),
			PhoneNumber: u.PhoneNumber,
			Roles:       roles,
			Status:      u.Status,
			LoginCount:  fmt.Sprintf("%d", u.LoginCount),
			LastLogin:   FormatOptionalTime(u.LastLogin),
		})
	}
	return out
}

// TaskRow is one line on the task board.
type TaskRow struct {
	ID            int64
	Type          string
	Status        string
	DeclaredBags  int
	RemainingBags int
	Assignees     string
	CreatedAt     string
}

// TaskRows flattens tasks for display.
func TaskRows(tasks []api.Task) []TaskRow {
	out := make([]TaskRow, 0, len(tasks))
	for _, t := range tasks {
		names := make([]string, 0, len(t.Assignees))
		for _, a := range t.Assignees {
			names = append(names, a.FullName())
		}
		assignees := strings.Join(names, ", ")
		if assignees == "" {
			assignees = NA
		}
		out = append(out, TaskRow{
			ID:            t.ID,
			Type:          t.Type,
			Status:        t.Status,
			DeclaredBags:  t.DeclaredBags,
			RemainingBags: t.RemainingBags,
			Assignees:     assignees,
			CreatedAt:     FormatTime(t.CreatedAt),
		})
	}
	return out
}

func orNA(s string) string {
	if s == "" {
		return NA
	}
	return s
}
