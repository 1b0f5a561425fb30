package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KKiumbe/web-taqa-sub000/cmd/taqa/ui"
	"github.com/KKiumbe/web-taqa-sub000/internal/api"
)

// renderLayout composes the header, sidebar, content and footer into the
// full-screen frame.
func (m Model) renderLayout() string {
	sidebarWidth := ui.SidebarCollapsedW
	if m.sidebarOpen {
		sidebarWidth = ui.SidebarWidth
	}

	contentWidth := m.width - sidebarWidth
	if contentWidth < 20 {
		contentWidth = 20
	}

	contentHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	if contentHeight < 5 {
		contentHeight = 5
	}

	header := m.renderHeader(m.width)
	sidebar := m.renderSidebar(sidebarWidth, contentHeight)
	content := m.renderContent(contentWidth, contentHeight)
	footer := m.renderFooter(m.width)

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, header, mainArea, footer)
}

// renderHeader renders the top bar: logo, breadcrumb, signed-in operator and
// the subscription status.
func (m Model) renderHeader(width int) string {
	logo := ui.HeaderTitleStyle.Render("♺ TAQA Ops")

	breadcrumb := m.getBreadcrumb()
	var crumbParts []string
	for i, crumb := range breadcrumb {
		if i == len(breadcrumb)-1 {
			crumbParts = append(crumbParts, ui.BreadcrumbActiveStyle.Render(crumb))
		} else {
			crumbParts = append(crumbParts, ui.BreadcrumbStyle.Render(crumb))
		}
	}
	sep := ui.BreadcrumbSeparatorStyle.Render(" ▸ ")
	crumbStr := strings.Join(crumbParts, sep)

	status := ui.StatusOfflineStyle.Render("○ Signed out")
	if claims := m.state.CurrentUser(); claims != nil {
		status = ui.StatusActiveStyle.Render("◉") + " " + ui.FooterLabelStyle.Render(claims.DisplayName())
		if tenantStatus := m.state.TenantStatus(); tenantStatus != "" && tenantStatus != api.TenantStatusActive {
			status += "  " + ui.StatusPendingStyle.Render("⚠ "+tenantStatus)
		}
	}

	leftPart := logo + "  " + crumbStr
	rightPart := status

	// Subtract 4 for HeaderStyle's horizontal padding.
	spacing := width - lipgloss.Width(leftPart) - lipgloss.Width(rightPart) - 4
	if spacing < 1 {
		spacing = 1
	}

	return ui.HeaderStyle.Width(width).Render(leftPart + strings.Repeat(" ", spacing) + rightPart)
}

// sidebarItemState is the visual state of one sidebar entry.
type sidebarItemState struct {
	style  lipgloss.Style
	cursor string
}

func (m Model) getSidebarItemState(index int, isCurrentView bool) sidebarItemState {
	isHovered := m.focusOnSidebar && m.sidebarCursor == index

	switch {
	case isHovered:
		return sidebarItemState{ui.SidebarItemSelectedStyle, "▸ "}
	case isCurrentView:
		return sidebarItemState{ui.SidebarItemHoverStyle, "▹ "}
	default:
		return sidebarItemState{ui.SidebarItemStyle, "  "}
	}
}

func (m Model) renderSidebarOpen(items []SidebarItem, width int) string {
	var b strings.Builder

	toggleHint := ui.SidebarToggleStyle.Render("[Ctrl+B]")
	b.WriteString(ui.SidebarHeaderStyle.Render("MENU") + " " + toggleHint + "\n\n")

	currentIdx := m.getSidebarIndexForView()
	for i, item := range items {
		state := m.getSidebarItemState(i, currentIdx == i)
		line := fmt.Sprintf("%s%s %s", state.cursor, item.Icon, item.Title)
		b.WriteString(state.style.Width(width-2).Render(line) + "\n")
	}
	return b.String()
}

func (m Model) renderSidebarCollapsed(items []SidebarItem) string {
	var b strings.Builder
	b.WriteString(ui.SidebarToggleStyle.Render("≡\n\n"))

	currentIdx := m.getSidebarIndexForView()
	for i, item := range items {
		state := m.getSidebarItemState(i, currentIdx == i)
		b.WriteString(state.style.Render(item.Icon) + "\n")
	}
	return b.String()
}

func (m Model) renderSidebar(width, height int) string {
	items := getSidebarItems()

	var content string
	if m.sidebarOpen {
		content = m.renderSidebarOpen(items, width)
	} else {
		content = m.renderSidebarCollapsed(items)
	}

	lines := strings.Count(content, "\n")
	padding := strings.Repeat("\n", maxInt(0, height-1-lines))

	return ui.SidebarStyle.Width(width).Height(height).Render(content + padding)
}

// renderContent renders the active screen plus any pending message.
func (m Model) renderContent(width, height int) string {
	var content string

	switch m.view {
	case ui.ViewHome:
		content = m.renderHome()
	case ui.ViewCustomers:
		content = m.renderCustomerList()
	case ui.ViewCustomerDetail:
		content = m.renderCustomerDetail()
	case ui.ViewCustomerCreate, ui.ViewCustomerEdit:
		content = m.renderForm(m.formTitle("Customer"))
	case ui.ViewInvoices:
		content = m.renderInvoiceList()
	case ui.ViewInvoiceDetail:
		content = m.renderInvoiceDetail()
	case ui.ViewInvoiceCreate:
		content = m.renderForm("Create Invoice")
	case ui.ViewPayments:
		content = m.renderPaymentList()
	case ui.ViewPaymentDetail:
		content = m.renderPaymentDetail()
	case ui.ViewPaymentCreate:
		content = m.renderForm("Record Payment")
	case ui.ViewPaymentReceipt:
		content = m.renderReceiptForm()
	case ui.ViewUnreceipted:
		content = m.renderUnreceiptedList()
	case ui.ViewReceipts:
		content = m.renderReceiptList()
	case ui.ViewReceiptDetail:
		content = m.renderReceiptDetail()
	case ui.ViewUsers:
		content = m.renderUserList()
	case ui.ViewUserDetail:
		content = m.renderUserDetail()
	case ui.ViewUserCreate, ui.ViewUserEdit:
		content = m.renderForm(m.formTitle("User"))
	case ui.ViewUserRoles:
		content = m.renderRolesChecklist()
	case ui.ViewSMS:
		content = m.renderSMSMenu()
	case ui.ViewSMSCompose:
		content = m.renderSMSCompose()
	case ui.ViewTasks:
		content = m.renderTaskList()
	case ui.ViewTaskDetail:
		content = m.renderTaskDetail()
	case ui.ViewTaskCreate:
		content = m.renderForm("Create Task")
	case ui.ViewTaskUpdate:
		content = m.renderForm("Update Task")
	case ui.ViewOrganization:
		content = m.renderOrganization()
	case ui.ViewOrganizationEdit:
		content = m.renderForm("Edit Organization")
	case ui.ViewSettings:
		content = m.renderSettings()
	default:
		content = m.renderHome()
	}

	if m.message != "" {
		var msgStyle lipgloss.Style
		switch m.messageType {
		case ui.MessageTypeError:
			msgStyle = ui.ErrorStyle
		case ui.MessageTypeSuccess:
			msgStyle = ui.SuccessStyle
		case ui.MessageTypeWarning:
			msgStyle = ui.WarningStyle
		default:
			msgStyle = ui.InfoStyle
		}
		content += "\n" + msgStyle.Render(m.message)
	}

	return ui.ContentStyle.Width(width).Height(height).Render(content)
}

// renderFooter renders the bottom bar: contextual shortcuts on the left,
// pagination (or the server address) on the right.
func (m Model) renderFooter(width int) string {
	help := m.getContextualHelp()

	var rightPart string
	if s, _, ok := m.listContext(); ok {
		label := s.PageLabel()
		if q := s.Query(); q.Kind != api.SearchAll {
			label = "“" + q.Term + "” · " + label
		}
		rightPart = ui.FooterLabelStyle.Render(label)
	} else {
		statusIcon := ui.StatusOfflineStyle.Render("○")
		if m.state.SignedIn() {
			statusIcon = ui.StatusActiveStyle.Render("●")
		}
		rightPart = statusIcon + " " + ui.FooterLabelStyle.Render(m.client.BaseURL)
	}

	spacing := width - lipgloss.Width(help) - lipgloss.Width(rightPart) - 4
	if spacing < 1 {
		spacing = 1
	}

	return ui.FooterStyle.Width(width).Render(help + strings.Repeat(" ", spacing) + rightPart)
}

// getContextualHelp returns the styled shortcut line for the active screen.
func (m Model) getContextualHelp() string {
	key := func(k string) string { return ui.FooterKeyStyle.Render(k) }
	lbl := func(l string) string { return ui.FooterLabelStyle.Render(l) }
	sep := ui.FooterHelpStyle.Render(" │ ")

	base := key("Ctrl+B") + " " + lbl("Menu")

	if m.searching {
		return key("Enter") + " " + lbl("Search") + sep + key("Esc") + " " + lbl("Cancel")
	}
	if m.focusOnSidebar {
		return base + sep + key("↑↓") + " " + lbl("Nav") + sep + key("Enter") + " " + lbl("Select") + sep + key("→") + " " + lbl("Content")
	}

	switch m.view {
	case ui.ViewHome:
		return base + sep + key("←") + " " + lbl("Menu") + sep + key("q") + " " + lbl("Quit")
	case ui.ViewCustomers, ui.ViewInvoices, ui.ViewTasks:
		return base + sep + key("n") + " " + lbl("New") + sep + key("/") + " " + lbl("Search") + sep + key("[ ]") + " " + lbl("Page") + sep + key("=") + " " + lbl("Size") + sep + key("r") + " " + lbl("Refresh")
	case ui.ViewPayments:
		return base + sep + key("n") + " " + lbl("New") + sep + key("g") + " " + lbl("Receipt") + sep + key("u") + " " + lbl("Unreceipted") + sep + key("/") + " " + lbl("Search") + sep + key("[ ]") + " " + lbl("Page")
	case ui.ViewUnreceipted:
		return base + sep + key("Enter") + " " + lbl("Receipt") + sep + key("[ ]") + " " + lbl("Page") + sep + key("Esc") + " " + lbl("Back")
	case ui.ViewReceipts:
		return base + sep + key("/") + " " + lbl("Search") + sep + key("[ ]") + " " + lbl("Page") + sep + key("=") + " " + lbl("Size") + sep + key("r") + " " + lbl("Refresh")
	case ui.ViewUsers:
		return base + sep + key("n") + " " + lbl("New") + sep + key("[ ]") + " " + lbl("Page") + sep + key("r") + " " + lbl("Refresh")
	case ui.ViewCustomerDetail:
		return base + sep + key("e") + " " + lbl("Edit") + sep + key("d") + " " + lbl("Delete") + sep + key("Esc") + " " + lbl("Back")
	case ui.ViewUserDetail:
		return base + sep + key("e") + " " + lbl("Edit") + sep + key("a") + " " + lbl("Roles") + sep + key("Esc") + " " + lbl("Back")
	case ui.ViewReceiptDetail:
		return base + sep + key("p") + " " + lbl("Download PDF") + sep + key("Esc") + " " + lbl("Back")
	case ui.ViewTaskDetail:
		return base + sep + key("e") + " " + lbl("Update") + sep + key("Esc") + " " + lbl("Back")
	case ui.ViewOrganization:
		return base + sep + key("e") + " " + lbl("Edit") + sep + key("Esc") + " " + lbl("Back")
	case ui.ViewUserRoles:
		return key("Space") + " " + lbl("Toggle") + sep + key("Enter") + " " + lbl("Apply") + sep + key("Esc") + " " + lbl("Cancel")
	case ui.ViewCustomerCreate, ui.ViewCustomerEdit,
		ui.ViewInvoiceCreate, ui.ViewPaymentCreate, ui.ViewPaymentReceipt,
		ui.ViewUserCreate, ui.ViewUserEdit, ui.ViewSMSCompose,
		ui.ViewTaskCreate, ui.ViewTaskUpdate, ui.ViewOrganizationEdit:
		return key("Tab") + " " + lbl("Next") + sep + key("⇧Tab") + " " + lbl("Prev") + sep + key("Enter") + " " + lbl("Save") + sep + key("Esc") + " " + lbl("Cancel")
	default:
		return base + sep + key("Esc") + " " + lbl("Back") + sep + key("q") + " " + lbl("Quit")
	}
}

// getBreadcrumb returns the navigation trail for the header.
func (m Model) getBreadcrumb() []string {
	switch m.view {
	case ui.ViewHome:
		return []string{"Home"}
	case ui.ViewCustomers:
		return []string{"Home", "Customers"}
	case ui.ViewCustomerDetail:
		return []string{"Home", "Customers", "Detail"}
	case ui.ViewCustomerCreate:
		return []string{"Home", "Customers", "New"}
	case ui.ViewCustomerEdit:
		return []string{"Home", "Customers", "Edit"}
	case ui.ViewInvoices:
		return []string{"Home", "Invoices"}
	case ui.ViewInvoiceDetail:
		return []string{"Home", "Invoices", "Detail"}
	case ui.ViewInvoiceCreate:
		return []string{"Home", "Invoices", "New"}
	case ui.ViewPayments:
		return []string{"Home", "Payments"}
	case ui.ViewPaymentDetail:
		return []string{"Home", "Payments", "Detail"}
	case ui.ViewPaymentCreate:
		return []string{"Home", "Payments", "New"}
	case ui.ViewPaymentReceipt:
		return []string{"Home", "Payments", "Receipt"}
	case ui.ViewUnreceipted:
		return []string{"Home", "Payments", "Unreceipted"}
	case ui.ViewReceipts:
		return []string{"Home", "Receipts"}
	case ui.ViewReceiptDetail:
		return []string{"Home", "Receipts", "Detail"}
	case ui.ViewUsers:
		return []string{"Home", "Users"}
	case ui.ViewUserDetail:
		return []string{"Home", "Users", "Detail"}
	case ui.ViewUserCreate:
		return []string{"Home", "Users", "New"}
	case ui.ViewUserEdit:
		return []string{"Home", "Users", "Edit"}
	case ui.ViewUserRoles:
		return []string{"Home", "Users", "Roles"}
	case ui.ViewSMS:
		return []string{"Home", "SMS"}
	case ui.ViewSMSCompose:
		return []string{"Home", "SMS", "Compose"}
	case ui.ViewTasks:
		return []string{"Home", "Tasks"}
	case ui.ViewTaskDetail:
		return []string{"Home", "Tasks", "Detail"}
	case ui.ViewTaskCreate:
		return []string{"Home", "Tasks", "New"}
	case ui.ViewTaskUpdate:
		return []string{"Home", "Tasks", "Update"}
	case ui.ViewOrganization:
		return []string{"Home", "Organization"}
	case ui.ViewOrganizationEdit:
		return []string{"Home", "Organization", "Edit"}
	case ui.ViewSettings:
		return []string{"Home", "Settings"}
	default:
		return []string{"Home"}
	}
}

func (m Model) formTitle(entity string) string {
	if m.formAction == "edit" {
		return "Edit " + entity
	}
	return "Create " + entity
}
