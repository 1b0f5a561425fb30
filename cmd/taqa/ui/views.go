package ui

// ViewState identifies the active screen.
type ViewState int

const (
	ViewHome ViewState = iota
	ViewCustomers
	ViewCustomerDetail
	ViewCustomerCreate
	ViewCustomerEdit
	ViewInvoices
	ViewInvoiceDetail
	ViewInvoiceCreate
	ViewPayments
	ViewPaymentDetail
	ViewPaymentCreate
	ViewPaymentReceipt
	ViewUnreceipted
	ViewReceipts
	ViewReceiptDetail
	ViewUsers
	ViewUserDetail
	ViewUserCreate
	ViewUserEdit
	ViewUserRoles
	ViewSMS
	ViewSMSCompose
	ViewTasks
	ViewTaskDetail
	ViewTaskCreate
	ViewTaskUpdate
	ViewOrganization
	ViewOrganizationEdit
	ViewSettings
	ViewLogin
)

// MenuItem is one entry on the home menu.
type MenuItem struct {
	Title       string
	Description string
	View        ViewState
}

var mainMenuItems = []MenuItem{
	{Title: "Customers", Description: "Accounts, balances and service details", View: ViewCustomers},
	{Title: "Invoices", Description: "Monthly billing records", View: ViewInvoices},
	{Title: "Payments", Description: "Incoming payments and receipting", View: ViewPayments},
	{Title: "Receipts", Description: "Issued receipts and PDF downloads", View: ViewReceipts},
	{Title: "Users", Description: "Staff accounts and roles", View: ViewUsers},
	{Title: "SMS", Description: "Customer messaging and reminders", View: ViewSMS},
	{Title: "Tasks", Description: "Trash bag issuance rounds", View: ViewTasks},
	{Title: "Organization", Description: "Tenant profile and subscription", View: ViewOrganization},
	{Title: "Settings", Description: "Session, theme and connection", View: ViewSettings},
}

// GetMainMenuItems returns a copy of the home menu items to prevent mutation.
func GetMainMenuItems() []MenuItem {
	items := make([]MenuItem, len(mainMenuItems))
	copy(items, mainMenuItems)
	return items
}
