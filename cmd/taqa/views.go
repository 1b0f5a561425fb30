package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KKiumbe/web-taqa-sub000/cmd/taqa/ui"
	"github.com/KKiumbe/web-taqa-sub000/internal/api"
)

const (
	fmtCursorItem   = "%s%s\n"
	fmtCursorItemNL = "%s%s\n\n"
	fmtLabelInput   = "%s\n%s\n\n"

	msgFormSaveCancel = "Press Enter to save, Esc to cancel"
)

// listConfig configures the shared list renderer.
type listConfig struct {
	title       string
	createLabel string // empty to disable the create row
	header      string // column header line, already styled
	itemCount   int
	cursor      int
	loading     bool
	warning     string
	renderRow   func(idx int, selected bool) string
}

// renderList renders a list screen: title, optional search bar, optional
// create row, the rows, and the lapse warning when present.
func (m Model) renderList(cfg listConfig) string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render(cfg.title) + "\n\n")

	if m.searching {
		b.WriteString(ui.LabelStyle.Render("Search:") + " " + m.searchInput.View() + "\n\n")
	}

	if cfg.warning != "" {
		b.WriteString(ui.WarningStyle.Render("⚠ "+cfg.warning) + "\n\n")
	}

	offset := 0
	if cfg.createLabel != "" {
		cursor := "  "
		style := ui.MenuItemStyle
		if cfg.cursor == 0 {
			cursor = ui.CursorStyle.Render("▸ ")
			style = ui.SelectedMenuItemStyle
		}
		b.WriteString(fmt.Sprintf(fmtCursorItemNL, cursor, style.Render(cfg.createLabel)))
		offset = 1
	}

	if cfg.header != "" {
		b.WriteString("  " + cfg.header + "\n")
	}

	switch {
	case cfg.loading && cfg.itemCount == 0:
		b.WriteString(ui.InfoStyle.Render("Loading…") + "\n")
	case cfg.itemCount == 0:
		b.WriteString(ui.InfoStyle.Render("No records found") + "\n")
	default:
		for i := 0; i < cfg.itemCount; i++ {
			selected := cfg.cursor == i+offset
			b.WriteString(cfg.renderRow(i, selected))
		}
	}

	return b.String()
}

func renderCursor(selected bool) (string, lipgloss.Style) {
	if selected {
		return ui.CursorStyle.Render("▸ "), ui.SelectedMenuItemStyle
	}
	return "  ", ui.MenuItemStyle
}

// View renders the entire UI.
func (m Model) View() string {
	// Login is full screen, no chrome.
	if m.view == ui.ViewLogin {
		return m.renderLoginView()
	}
	return m.renderLayout()
}

// renderLoginView renders the centered sign-in box.
func (m Model) renderLoginView() string {
	boxWidth := 50

	var b strings.Builder

	b.WriteString(ui.HeaderTitleStyle.Render("♺ T A Q A   O P S") + "\n")
	b.WriteString(ui.SubtitleStyle.Render("Garbage Collection Billing") + "\n\n")

	b.WriteString(ui.TitleStyle.Render("Sign In") + "\n\n")

	if len(m.inputs) >= 2 {
		b.WriteString(ui.LabelStyle.Render("Phone Number") + "\n")
		b.WriteString(m.inputs[0].View() + "\n\n")

		b.WriteString(ui.LabelStyle.Render("Password") + "\n")
		b.WriteString(m.inputs[1].View() + "\n\n")

		help := ui.FooterKeyStyle.Render("Tab") + " " + ui.FooterLabelStyle.Render("Next Field") +
			ui.FooterHelpStyle.Render(" │ ") +
			ui.FooterKeyStyle.Render("Enter") + " " + ui.FooterLabelStyle.Render("Sign In") +
			ui.FooterHelpStyle.Render(" │ ") +
			ui.FooterKeyStyle.Render("Ctrl+C") + " " + ui.FooterLabelStyle.Render("Quit")
		b.WriteString(help + "\n")
	}

	if m.message != "" {
		var msgStyle lipgloss.Style
		switch m.messageType {
		case ui.MessageTypeError:
			msgStyle = ui.ErrorStyle
		case ui.MessageTypeSuccess:
			msgStyle = ui.SuccessStyle
		default:
			msgStyle = ui.InfoStyle
		}
		b.WriteString("\n" + msgStyle.Render(m.message))
	}

	b.WriteString("\n\n" + ui.FooterHelpStyle.Render("Server: "+m.client.BaseURL))

	box := ui.BoxStyle.Width(boxWidth).Render(b.String())

	boxHeight := strings.Count(box, "\n") + 1
	topPadding := (m.height - boxHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}
	leftPadding := (m.width - boxWidth - 4) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}

	var result strings.Builder
	for i := 0; i < topPadding; i++ {
		result.WriteString("\n")
	}
	for _, line := range strings.Split(box, "\n") {
		result.WriteString(strings.Repeat(" ", leftPadding) + line + "\n")
	}

	return result.String()
}

func (m Model) renderHome() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("Main Menu") + "\n\n")

	menuItems := ui.GetMainMenuItems()
	for i, item := range menuItems {
		cursor := "  "
		style := ui.MenuItemStyle
		if m.cursor == i {
			cursor = ui.CursorStyle.Render("▸ ")
			style = ui.SelectedMenuItemStyle
		}
		b.WriteString(fmt.Sprintf("%s%s - %s\n", cursor, style.Render(item.Title), ui.SubtitleStyle.Render(item.Description)))
	}

	cursor := "  "
	style := ui.MenuItemStyle
	if m.cursor == len(menuItems) {
		cursor = ui.CursorStyle.Render("▸ ")
		style = ui.SelectedMenuItemStyle
	}
	b.WriteString(fmt.Sprintf("\n%s%s\n", cursor, style.Render("Quit")))

	return b.String()
}

func (m Model) renderCustomerList() string {
	rs := m.customers.Rows()
	return m.renderList(listConfig{
		title:       "Customers",
		createLabel: "[+] New Customer",
		header:      ui.TableHeaderStyle.Render(fmt.Sprintf("%-24s %-13s %-16s %10s %10s %s", "Name", "Phone", "Location", "Charge", "Balance", "Status")),
		itemCount:   len(rs),
		cursor:      m.cursor,
		loading:     m.customers.Loading(),
		warning:     m.customers.Warning(),
		renderRow: func(idx int, selected bool) string {
			r := rs[idx]
			cursor, style := renderCursor(selected)
			return fmt.Sprintf("%s%s %-13s %-16s %10s %10s %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-24s", truncate(r.Name, 24))),
				r.PhoneNumber,
				truncate(r.Location, 16),
				r.MonthlyCharge,
				r.ClosingBalance,
				ui.FormatStatus(r.Status))
		},
	})
}

func (m Model) renderInvoiceList() string {
	rs := m.invoices.Rows()
	return m.renderList(listConfig{
		title:       "Invoices",
		createLabel: "[+] New Invoice",
		header:      ui.TableHeaderStyle.Render(fmt.Sprintf("%-14s %-22s %10s %10s %-9s %s", "Number", "Customer", "Amount", "Balance", "Period", "Status")),
		itemCount:   len(rs),
		cursor:      m.cursor,
		loading:     m.invoices.Loading(),
		warning:     m.invoices.Warning(),
		renderRow: func(idx int, selected bool) string {
			r := rs[idx]
			cursor, style := renderCursor(selected)
			return fmt.Sprintf("%s%s %-22s %10s %10s %-9s %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-14s", truncate(r.InvoiceNumber, 14))),
				truncate(r.CustomerName, 22),
				r.InvoiceAmount,
				r.ClosingBalance,
				r.Period,
				ui.FormatStatus(r.Status))
		},
	})
}

func (m Model) renderPaymentList() string {
	rs := m.payments.Rows()
	return m.renderList(listConfig{
		title:       "Payments",
		createLabel: "[+] Record Payment",
		header:      ui.TableHeaderStyle.Render(fmt.Sprintf("%-22s %10s %-13s %-12s %-10s %s", "Customer", "Amount", "Mode", "Receipt", "Receipted", "Date")),
		itemCount:   len(rs),
		cursor:      m.cursor,
		loading:     m.payments.Loading(),
		warning:     m.payments.Warning(),
		renderRow: func(idx int, selected bool) string {
			r := rs[idx]
			cursor, style := renderCursor(selected)
			return fmt.Sprintf("%s%s %10s %-13s %-12s %-10s %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-22s", truncate(r.CustomerName, 22))),
				r.Amount,
				r.Mode,
				truncate(r.ReceiptNumber, 12),
				ui.FormatBool(r.Receipted),
				r.CreatedAt)
		},
	})
}

func (m Model) renderUnreceiptedList() string {
	rs := m.unreceipted.Rows()
	return m.renderList(listConfig{
		title:     "Unreceipted Payments",
		header:    ui.TableHeaderStyle.Render(fmt.Sprintf("%-22s %10s %-13s %-14s %s", "Customer", "Amount", "Mode", "Transaction", "Date")),
		itemCount: len(rs),
		cursor:    m.cursor,
		loading:   m.unreceipted.Loading(),
		warning:   m.unreceipted.Warning(),
		renderRow: func(idx int, selected bool) string {
			r := rs[idx]
			cursor, style := renderCursor(selected)
			return fmt.Sprintf("%s%s %10s %-13s %-14s %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-22s", truncate(r.CustomerName, 22))),
				r.Amount,
				r.Mode,
				truncate(r.TransactionID, 14),
				r.CreatedAt)
		},
	})
}

func (m Model) renderReceiptList() string {
	rs := m.receipts.Rows()
	return m.renderList(listConfig{
		title:     "Receipts",
		header:    ui.TableHeaderStyle.Render(fmt.Sprintf("%-12s %-22s %10s %-13s %-14s %s", "Number", "Customer", "Amount", "Mode", "Invoice", "Date")),
		itemCount: len(rs),
		cursor:    m.cursor,
		loading:   m.receipts.Loading(),
		warning:   m.receipts.Warning(),
		renderRow: func(idx int, selected bool) string {
			r := rs[idx]
			cursor, style := renderCursor(selected)
			return fmt.Sprintf("%s%s %-22s %10s %-13s %-14s %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-12s", truncate(r.ReceiptNumber, 12))),
				truncate(r.CustomerName, 22),
				r.Amount,
				r.Mode,
				truncate(r.InvoiceNumber, 14),
				r.CreatedAt)
		},
	})
}

func (m Model) renderUserList() string {
	rs := m.users.Rows()
	return m.renderList(listConfig{
		title:       "Users",
		createLabel: "[+] New User",
		header:      ui.TableHeaderStyle.Render(fmt.Sprintf("%-22s %-13s %-32s %-9s %s", "Name", "Phone", "Roles", "Logins", "Status")),
		itemCount:   len(rs),
		cursor:      m.cursor,
		loading:     m.users.Loading(),
		warning:     m.users.Warning(),
		renderRow: func(idx int, selected bool) string {
			r := rs[idx]
			cursor, style := renderCursor(selected)
			return fmt.Sprintf("%s%s %-13s %-32s %-9s %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-22s", truncate(r.Name, 22))),
				r.PhoneNumber,
				truncate(r.Roles, 32),
				r.LoginCount,
				ui.FormatStatus(r.Status))
		},
	})
}

func (m Model) renderTaskList() string {
	rs := m.tasks.Rows()
	return m.renderList(listConfig{
		title:       "Tasks",
		createLabel: "[+] New Trash Bag Task",
		header:      ui.TableHeaderStyle.Render(fmt.Sprintf("%-6s %-20s %-12s %8s %8s %s", "ID", "Type", "Status", "Bags", "Left", "Assignees")),
		itemCount:   len(rs),
		cursor:      m.cursor,
		loading:     m.tasks.Loading(),
		warning:     m.tasks.Warning(),
		renderRow: func(idx int, selected bool) string {
			r := rs[idx]
			cursor, style := renderCursor(selected)
			return fmt.Sprintf("%s%s %-20s %-12s %8d %8d %s\n",
				cursor,
				style.Render(fmt.Sprintf("#%-5d", r.ID)),
				truncate(r.Type, 20),
				ui.FormatStatus(r.Status),
				r.DeclaredBags,
				r.RemainingBags,
				truncate(r.Assignees, 28))
		},
	})
}

// renderSMSMenu renders the SMS action list.
func (m Model) renderSMSMenu() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("SMS") + "\n\n")

	for i, def := range smsActions {
		cursor := "  "
		style := ui.MenuItemStyle
		if m.cursor == i {
			cursor = ui.CursorStyle.Render("▸ ")
			style = ui.SelectedMenuItemStyle
		}
		b.WriteString(fmt.Sprintf("%s%s - %s\n", cursor, style.Render(def.title), ui.SubtitleStyle.Render(def.description)))
	}

	b.WriteString("\n" + ui.InfoStyle.Render("Actions without a form send immediately on Enter"))
	return b.String()
}

func (m Model) renderSMSCompose() string {
	title := "Compose SMS"
	if m.smsAction >= 0 && m.smsAction < len(smsActions) {
		title = smsActions[m.smsAction].title
	}
	return m.renderForm(title)
}

// renderForm renders the active inputs, with the customer picker as the
// first field when present. Input placeholders double as field labels.
func (m Model) renderForm(title string) string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render(title) + "\n\n")

	if m.picker.active {
		b.WriteString(m.renderPicker())
	}

	for i := range m.inputs {
		label := ui.LabelStyle.Render(m.inputs[i].Placeholder + ":")
		b.WriteString(fmt.Sprintf(fmtLabelInput, label, m.inputs[i].View()))
	}

	b.WriteString(ui.InfoStyle.Render(msgFormSaveCancel))
	return b.String()
}

// renderPicker renders the customer search field with its dropdown.
func (m Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(ui.LabelStyle.Render("Customer:") + "\n")
	b.WriteString(m.picker.input.View() + "\n")

	switch {
	case m.picker.selected != nil:
		b.WriteString(ui.SuccessStyle.Render("✓ "+m.picker.selected.FullName()) + "\n")
	case m.picker.searching:
		b.WriteString(ui.InfoStyle.Render("Searching…") + "\n")
	case len(m.picker.matches) > 0:
		for i, c := range m.picker.matches {
			cursor := "  "
			style := ui.MenuItemStyle
			if m.picker.cursor == i {
				cursor = ui.CursorStyle.Render("▸ ")
				style = ui.SelectedMenuItemStyle
			}
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(c.FullName()+" ("+c.PhoneNumber+")")))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// renderReceiptForm shows the payment being receipted above the form.
func (m Model) renderReceiptForm() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("Issue Receipt") + "\n\n")

	if p := m.selectedPayment; p != nil {
		b.WriteString(ui.DetailKeyStyle.Render("Payment") + ui.DetailValueStyle.Render(fmt.Sprintf("#%d", p.ID)) + "\n")
		b.WriteString(ui.DetailKeyStyle.Render("Amount") + ui.DetailValueStyle.Render(p.Amount.StringFixed(2)) + "\n")
		b.WriteString(ui.DetailKeyStyle.Render("Mode") + ui.DetailValueStyle.Render(p.ModeOfPayment) + "\n\n")
	}

	for i := range m.inputs {
		label := ui.LabelStyle.Render(m.inputs[i].Placeholder + ":")
		b.WriteString(fmt.Sprintf(fmtLabelInput, label, m.inputs[i].View()))
	}

	b.WriteString(ui.InfoStyle.Render(msgFormSaveCancel))
	return b.String()
}

// renderRolesChecklist renders the role assignment checklist.
func (m Model) renderRolesChecklist() string {
	var b strings.Builder

	name := ""
	if m.selectedUser != nil {
		name = " - " + m.selectedUser.FullName()
	}
	b.WriteString(ui.SubtitleStyle.Render("Roles"+name) + "\n\n")

	for i, role := range api.AllRoles {
		cursor := "  "
		style := ui.MenuItemStyle
		if m.roleCursor == i {
			cursor = ui.CursorStyle.Render("▸ ")
			style = ui.SelectedMenuItemStyle
		}
		check := "[ ]"
		if m.roleChecked[role] {
			check = "[✓]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, style.Render(role)))
	}

	b.WriteString("\n" + ui.InfoStyle.Render("Space toggles, Enter applies, Esc cancels"))
	return b.String()
}
