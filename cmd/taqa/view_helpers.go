package main

import (
	"fmt"
	"strings"

	"github.com/KKiumbe/web-taqa-sub000/cmd/taqa/ui"
	"github.com/KKiumbe/web-taqa-sub000/internal/rows"
)

const cardWidth = 56

// renderActions renders a numbered action menu under a detail card.
func (m Model) renderActions(actions []string) string {
	var b strings.Builder
	b.WriteString(ui.CardSectionStyle.Render("Actions") + "\n")
	for i, action := range actions {
		cursor := "  "
		style := ui.MenuItemStyle
		if m.cursor == i {
			cursor = ui.CursorStyle.Render("▸ ")
			style = ui.SelectedMenuItemStyle
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(action)))
	}
	return b.String()
}

func (m Model) renderCustomerDetail() string {
	c := m.selectedCustomer
	if c == nil {
		return ui.InfoStyle.Render("Loading customer…")
	}

	location := c.EstateName
	if location == "" {
		location = c.Town
	}
	if location == "" {
		location = rows.NA
	}

	sections := []ui.CardSection{
		{
			Title: "Contact",
			Fields: []ui.CardField{
				{Label: "Phone", Value: c.PhoneNumber},
				{Label: "Alt Phone", Value: orDash(c.SecondaryPhoneNumber)},
				{Label: "Email", Value: orDash(c.Email)},
			},
		},
		{
			Title: "Service Address",
			Fields: []ui.CardField{
				{Label: "County", Value: orDash(c.County)},
				{Label: "Town", Value: orDash(c.Town)},
				{Label: "Estate", Value: orDash(c.EstateName)},
				{Label: "Building", Value: orDash(c.Building)},
				{Label: "House", Value: orDash(c.HouseNumber)},
			},
		},
		{
			Title: "Billing",
			Fields: []ui.CardField{
				{Label: "Type", Value: ui.FormatStatus(c.CustomerType)},
				{Label: "Monthly Charge", Value: c.MonthlyCharge.StringFixed(2)},
				{Label: "Balance", Value: c.ClosingBalance.StringFixed(2)},
				{Label: "Collection Day", Value: c.GarbageCollectionDay},
				{Label: "Bags Issued", Value: ui.FormatBool(c.TrashBagsIssued)},
			},
		},
		{
			Title: "Status",
			Fields: []ui.CardField{
				{Label: "Status", Value: ui.FormatStatus(c.Status)},
				{Label: "Since", Value: rows.FormatTime(c.CreatedAt)},
				{Label: "ID", Value: fmt.Sprintf("%d", c.ID)},
			},
		},
	}

	var b strings.Builder
	header := ui.RenderCardHeader(c.FullName() + " · " + location)
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")
	b.WriteString(m.renderActions([]string{"Edit", "Delete", "Send Bill SMS", "Back"}))
	return b.String()
}

func (m Model) renderInvoiceDetail() string {
	inv := m.selectedInvoice
	if inv == nil {
		return ui.InfoStyle.Render("Loading invoice…")
	}

	customer := rows.NA
	if inv.Customer != nil {
		customer = inv.Customer.FullName()
	}
	period := rows.NA
	if !inv.InvoicePeriod.IsZero() {
		period = inv.InvoicePeriod.Format("Jan 2006")
	}

	sections := []ui.CardSection{
		{
			Title: "Invoice",
			Fields: []ui.CardField{
				{Label: "Customer", Value: customer},
				{Label: "Period", Value: period},
				{Label: "Status", Value: ui.FormatStatus(inv.Status)},
			},
		},
		{
			Title: "Amounts",
			Fields: []ui.CardField{
				{Label: "Invoiced", Value: inv.InvoiceAmount.StringFixed(2)},
				{Label: "Paid", Value: inv.AmountPaid.StringFixed(2)},
				{Label: "Balance", Value: inv.ClosingBalance.StringFixed(2)},
			},
		},
	}

	if len(inv.Items) > 0 {
		fields := make([]ui.CardField, 0, len(inv.Items))
		for _, item := range inv.Items {
			fields = append(fields, ui.CardField{
				Label: truncate(item.Description, 16),
				Value: fmt.Sprintf("%d × %s", item.Quantity, item.Amount.StringFixed(2)),
			})
		}
		sections = append(sections, ui.CardSection{Title: "Items", Fields: fields})
	}

	sections = append(sections, ui.CardSection{
		Title: "Record",
		Fields: []ui.CardField{
			{Label: "Created", Value: rows.FormatTime(inv.CreatedAt)},
			{Label: "ID", Value: fmt.Sprintf("%d", inv.ID)},
		},
	})

	var b strings.Builder
	header := ui.RenderCardHeader(inv.InvoiceNumber + " " + ui.FormatStatus(inv.Status))
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")
	b.WriteString(ui.InfoStyle.Render("Press Esc to go back"))
	return b.String()
}

func (m Model) renderPaymentDetail() string {
	p := m.selectedPayment
	if p == nil {
		return ui.InfoStyle.Render("Loading payment…")
	}

	customer := rows.NA
	if p.Customer != nil {
		customer = p.Customer.FullName()
	}
	receiptNumber := rows.NA
	if p.Receipt != nil {
		receiptNumber = p.Receipt.ReceiptNumber
	}

	sections := []ui.CardSection{
		{
			Title: "Payment",
			Fields: []ui.CardField{
				{Label: "Customer", Value: customer},
				{Label: "Amount", Value: p.Amount.StringFixed(2)},
				{Label: "Mode", Value: p.ModeOfPayment},
				{Label: "Transaction", Value: orDash(p.TransactionID)},
			},
		},
		{
			Title: "Receipting",
			Fields: []ui.CardField{
				{Label: "Receipted", Value: ui.FormatBool(p.Receipted)},
				{Label: "Receipt", Value: receiptNumber},
			},
		},
		{
			Title: "Record",
			Fields: []ui.CardField{
				{Label: "Created", Value: rows.FormatTime(p.CreatedAt)},
				{Label: "ID", Value: fmt.Sprintf("%d", p.ID)},
			},
		},
	}

	var b strings.Builder
	header := ui.RenderCardHeader(fmt.Sprintf("Payment #%d", p.ID))
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")
	if !p.Receipted {
		b.WriteString(ui.InfoStyle.Render("Press g to issue a receipt, Esc to go back"))
	} else {
		b.WriteString(ui.InfoStyle.Render("Press Esc to go back"))
	}
	return b.String()
}

func (m Model) renderReceiptDetail() string {
	r := m.selectedReceipt
	if r == nil {
		return ui.InfoStyle.Render("Loading receipt…")
	}

	customer := rows.NA
	if r.Customer != nil {
		customer = r.Customer.FullName()
	}

	sections := []ui.CardSection{
		{
			Title: "Receipt",
			Fields: []ui.CardField{
				{Label: "Customer", Value: customer},
				{Label: "Amount", Value: r.Amount.StringFixed(2)},
				{Label: "Mode", Value: orDash(r.ModeOfPayment)},
				{Label: "Paid By", Value: orDash(r.PaidBy)},
				{Label: "Transaction", Value: orDash(r.TransactionCode)},
			},
		},
	}

	if len(r.ReceiptInvoices) > 0 {
		fields := make([]ui.CardField, 0, len(r.ReceiptInvoices))
		for _, ri := range r.ReceiptInvoices {
			value := fmt.Sprintf("#%d", ri.InvoiceID)
			if ri.Invoice != nil {
				value = ri.Invoice.InvoiceNumber + " · " + ui.FormatStatus(ri.Invoice.Status)
			}
			fields = append(fields, ui.CardField{Label: "Invoice", Value: value})
		}
		sections = append(sections, ui.CardSection{Title: "Settled Invoices", Fields: fields})
	}

	sections = append(sections, ui.CardSection{
		Title: "Record",
		Fields: []ui.CardField{
			{Label: "Created", Value: rows.FormatTime(r.CreatedAt)},
			{Label: "ID", Value: fmt.Sprintf("%d", r.ID)},
		},
	})

	var b strings.Builder
	header := ui.RenderCardHeader(r.ReceiptNumber)
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")
	b.WriteString(m.renderActions([]string{"Download PDF", "Back"}))
	return b.String()
}

func (m Model) renderUserDetail() string {
	u := m.selectedUser
	if u == nil {
		return ui.InfoStyle.Render("Loading user…")
	}

	roles := strings.Join(u.Roles, ", ")
	if roles == "" {
		roles = rows.NA
	}

	sections := []ui.CardSection{
		{
			Title: "Account",
			Fields: []ui.CardField{
				{Label: "Phone", Value: u.PhoneNumber},
				{Label: "Email", Value: orDash(u.Email)},
				{Label: "Status", Value: ui.FormatStatus(u.Status)},
			},
		},
		{
			Title: "Access",
			Fields: []ui.CardField{
				{Label: "Roles", Value: roles},
			},
		},
	}

	var b strings.Builder
	header := ui.RenderCardHeader(u.FullName())
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")
	b.WriteString(m.renderActions([]string{"Edit", "Assign Roles", "Back"}))
	return b.String()
}

func (m Model) renderTaskDetail() string {
	t := m.selectedTask
	if t == nil {
		return ui.InfoStyle.Render("Loading task…")
	}

	assignees := make([]string, 0, len(t.Assignees))
	for _, a := range t.Assignees {
		assignees = append(assignees, a.FullName())
	}

	sections := []ui.CardSection{
		{
			Title: "Task",
			Fields: []ui.CardField{
				{Label: "Type", Value: t.Type},
				{Label: "Status", Value: ui.FormatStatus(t.Status)},
				{Label: "Declared Bags", Value: fmt.Sprintf("%d", t.DeclaredBags)},
				{Label: "Remaining", Value: fmt.Sprintf("%d", t.RemainingBags)},
				{Label: "Assignees", Value: orDash(strings.Join(assignees, ", "))},
				{Label: "Created", Value: rows.FormatTime(t.CreatedAt)},
			},
		},
	}

	if len(t.Customers) > 0 {
		fields := make([]ui.CardField, 0, len(t.Customers))
		for _, tc := range t.Customers {
			name := strings.TrimSpace(tc.FirstName + " " + tc.LastName)
			fields = append(fields, ui.CardField{
				Label: truncate(name, 16),
				Value: tc.PhoneNumber + " · " + ui.FormatBool(tc.BagsIssued),
			})
		}
		sections = append(sections, ui.CardSection{Title: "Customers", Fields: fields})
	}

	var b strings.Builder
	header := ui.RenderCardHeader(fmt.Sprintf("Task #%d", t.ID))
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")
	b.WriteString(m.renderActions([]string{"Update", "Back"}))
	return b.String()
}

func (m Model) renderOrganization() string {
	t := m.tenant
	if t == nil {
		return ui.InfoStyle.Render("Loading organization…")
	}

	sections := []ui.CardSection{
		{
			Title: "Contact",
			Fields: []ui.CardField{
				{Label: "Email", Value: orDash(t.Email)},
				{Label: "Phone", Value: orDash(t.PhoneNumber)},
				{Label: "Website", Value: orDash(t.Website)},
			},
		},
		{
			Title: "Address",
			Fields: []ui.CardField{
				{Label: "County", Value: orDash(t.County)},
				{Label: "Town", Value: orDash(t.Town)},
				{Label: "Street", Value: orDash(t.Street)},
				{Label: "Building", Value: orDash(t.Building)},
				{Label: "Address", Value: orDash(t.Address)},
			},
		},
		{
			Title: "Subscription",
			Fields: []ui.CardField{
				{Label: "Plan", Value: orDash(t.SubscriptionPlan)},
				{Label: "Monthly Charge", Value: t.MonthlyCharge.StringFixed(2)},
				{Label: "Status", Value: ui.FormatStatus(t.Status)},
			},
		},
	}

	var b strings.Builder
	header := ui.RenderCardHeader(t.Name)
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")
	b.WriteString(m.renderActions([]string{"Edit", "Back"}))
	return b.String()
}

func (m Model) renderSettings() string {
	theme := "Dark"
	if !m.state.DarkMode() {
		theme = "Light"
	}

	user := rows.NA
	tenantID := rows.NA
	if claims := m.state.CurrentUser(); claims != nil {
		user = claims.DisplayName()
		tenantID = fmt.Sprintf("%d", claims.TenantID)
	}

	sections := []ui.CardSection{
		{
			Title: "Connection",
			Fields: []ui.CardField{
				{Label: "API URL", Value: m.client.BaseURL},
				{Label: "Downloads", Value: m.cfg.Download.Dir},
			},
		},
		{
			Title: "Session",
			Fields: []ui.CardField{
				{Label: "User", Value: user},
				{Label: "Tenant ID", Value: tenantID},
				{Label: "Theme", Value: theme},
			},
		},
	}

	var b strings.Builder
	header := ui.RenderCardHeader("Settings")
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")
	b.WriteString(m.renderActions([]string{"Toggle Theme", "Sign Out", "Back"}))
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return rows.NA
	}
	return s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		if max <= 0 {
			return ""
		}
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
