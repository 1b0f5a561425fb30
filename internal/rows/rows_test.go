package rows

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KKiumbe/web-taqa-sub000/internal/api"
)

func TestFormatTimeAppliesDisplayCorrection(t *testing.T) {
	ts := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10 13:30", FormatTime(ts), "display shifts one hour back")
	assert.Equal(t, NA, FormatTime(time.Time{}))
}

func TestFormatOptionalTime(t *testing.T) {
	assert.Equal(t, NA, FormatOptionalTime(nil))

	ts := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10 00:00", FormatOptionalTime(&ts))
}

func TestCustomerRowLocationFallback(t *testing.T) {
	base := api.Customer{FirstName: "Jane", PhoneNumber: "0712345678"}

	estate := base
	estate.EstateName = "Greenfields"
	estate.Town = "Thika"
	assert.Equal(t, "Greenfields", CustomerRows([]api.Customer{estate})[0].Location)

	town := base
	town.Town = "Thika"
	assert.Equal(t, "Thika", CustomerRows([]api.Customer{town})[0].Location)

	assert.Equal(t, NA, CustomerRows([]api.Customer{base})[0].Location)
}

func TestInvoiceRowMissingCustomer(t *testing.T) {
	rows := InvoiceRows([]api.Invoice{{
		ID:            1,
		InvoiceNumber: "INV-001",
		InvoiceAmount: decimal.NewFromInt(300),
	}})
	require.Len(t, rows, 1)
	assert.Equal(t, NA, rows[0].CustomerName)
	assert.Equal(t, NA, rows[0].Period, "zero period renders as N/A")
	assert.Equal(t, "300.00", rows[0].InvoiceAmount)
}

func TestInvoiceRowPeriodFormat(t *testing.T) {
	rows := InvoiceRows([]api.Invoice{{
		InvoicePeriod: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}})
	assert.Equal(t, "Jul 2025", rows[0].Period)
}

func TestPaymentRowWalksReceiptInvoiceChain(t *testing.T) {
	full := api.Payment{
		ID:     1,
		Amount: decimal.NewFromFloat(150.5),
		Customer: &api.Customer{FirstName: "Jane", LastName: "Wanjiku"},
		Receipt: &api.Receipt{
			ReceiptNumber: "RCT-42",
			ReceiptInvoices: []api.ReceiptInvoice{
				{Invoice: &api.Invoice{InvoiceNumber: "INV-7"}},
			},
		},
		Receipted: true,
	}
	row := PaymentRows([]api.Payment{full})[0]
	assert.Equal(t, "Jane Wanjiku", row.CustomerName)
	assert.Equal(t, "RCT-42", row.ReceiptNumber)
	assert.Equal(t, "INV-7", row.InvoiceNumber)
	assert.Equal(t, "150.50", row.Amount)

	// Every link in the chain can be absent.
	bare := PaymentRows([]api.Payment{{ID: 2, Amount: decimal.NewFromInt(100)}})[0]
	assert.Equal(t, NA, bare.CustomerName)
	assert.Equal(t, NA, bare.ReceiptNumber)
	assert.Equal(t, NA, bare.InvoiceNumber)
	assert.Equal(t, NA, bare.TransactionID)

	// A receipt with an invoice link but no nested invoice record.
	partial := PaymentRows([]api.Payment{{
		Receipt: &api.Receipt{ReceiptNumber: "RCT-43", ReceiptInvoices: []api.ReceiptInvoice{{InvoiceID: 9}}},
	}})[0]
	assert.Equal(t, "RCT-43", partial.ReceiptNumber)
	assert.Equal(t, NA, partial.InvoiceNumber)
}

func TestReceiptRowDefaults(t *testing.T) {
	row := ReceiptRows([]api.Receipt{{
		ID:            1,
		ReceiptNumber: "RCT-1",
		Amount:        decimal.NewFromInt(200),
	}})[0]
	assert.Equal(t, NA, row.CustomerName)
	assert.Equal(t, NA, row.PaidBy)
	assert.Equal(t, NA, row.TransactionCode)
	assert.Equal(t, NA, row.InvoiceNumber)
}

func TestUserRowJoinsRoles(t *testing.T) {
	row := UserRows([]api.User{{
		FirstName: "Admin",
		Roles:     []string{"accountant", "collector"},
	}})[0]
	assert.Equal(t, "accountant, collector", row.Roles)

	none := UserRows([]api.User{{FirstName: "New"}})[0]
	assert.Equal(t, NA, none.Roles)
	assert.Equal(t, NA, none.LastLogin)
}

func TestTaskRowJoinsAssignees(t *testing.T) {
	row := TaskRows([]api.Task{{
		ID:   1,
		Type: "TRASH_BAG_ISSUANCE",
		Assignees: []api.User{
			{FirstName: "Jane"},
			{FirstName: "John", LastName: "Otieno"},
		},
	}})[0]
	assert.Equal(t, "Jane, John Otieno", row.Assignees)

	unassigned := TaskRows([]api.Task{{ID: 2}})[0]
	assert.Equal(t, NA, unassigned.Assignees)
}
