// TAQA Ops is a terminal dashboard for the TAQA garbage-collection billing
// backend: customers, invoices, payments, receipting, staff, SMS campaigns
// and field tasks, all over the backend's REST API. It runs locally or as an
// SSH-served app.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/KKiumbe/web-taqa-sub000/cmd/taqa/ui"
	"github.com/KKiumbe/web-taqa-sub000/internal/api"
	"github.com/KKiumbe/web-taqa-sub000/internal/config"
	"github.com/KKiumbe/web-taqa-sub000/internal/list"
	"github.com/KKiumbe/web-taqa-sub000/internal/rows"
	"github.com/KKiumbe/web-taqa-sub000/internal/store"
	"github.com/KKiumbe/web-taqa-sub000/pkg/auth"
)

// Model is the main application model.
type Model struct {
	cfg    *config.Config
	client *api.Client
	state  *store.Store

	view        ui.ViewState
	cursor      int
	message     string
	messageType string

	// Paginated list sessions, one per listing screen.
	customers   *list.Session[rows.CustomerRow]
	invoices    *list.Session[rows.InvoiceRow]
	payments    *list.Session[rows.PaymentRow]
	unreceipted *list.Session[rows.PaymentRow]
	receipts    *list.Session[rows.ReceiptRow]
	users       *list.Session[rows.UserRow]
	tasks       *list.Session[rows.TaskRow]

	// Selected records, fetched fresh for detail screens.
	selectedCustomer *api.Customer
	selectedInvoice  *api.Invoice
	selectedPayment  *api.Payment
	selectedReceipt  *api.Receipt
	selectedUser     *api.User
	selectedTask     *api.TaskDetails
	tenant           *api.Tenant

	// Form state. snapshot holds the loaded record's field map so edit
	// submits send only changed fields.
	inputs     []textinput.Model
	focusIndex int
	formAction string
	formEntity string
	snapshot   map[string]any
	smsAction  int

	// Role assignment checklist.
	roleChecked map[string]bool
	roleCursor  int

	// List search bar.
	searching   bool
	searchInput textinput.Model

	// Customer search-and-select for payment and invoice forms.
	picker customerPicker

	// pendingReceipt marks that the next payment fetch should open the
	// receipting form rather than the detail screen.
	pendingReceipt bool

	// UI state.
	sidebarOpen    bool
	sidebarCursor  int
	focusOnSidebar bool

	width  int
	height int
}

func initialModel(cfg *config.Config) Model {
	client, err := api.NewClient(cfg.API.BaseURL)
	if err != nil {
		log.Fatal("invalid API URL", "url", cfg.API.BaseURL, "error", err)
	}
	return newModel(cfg, client, 80, 24)
}

// newModel builds a model on the login screen. Shared by local and SSH modes.
func newModel(cfg *config.Config, client *api.Client, width, height int) Model {
	m := Model{
		cfg:    cfg,
		client: client,
		state:  store.New(),

		customers:   list.NewSession[rows.CustomerRow](),
		invoices:    list.NewSession[rows.InvoiceRow](),
		payments:    list.NewSession[rows.PaymentRow](),
		unreceipted: list.NewSession[rows.PaymentRow](),
		receipts:    list.NewSession[rows.ReceiptRow](),
		users:       list.NewSession[rows.UserRow](),
		tasks:       list.NewSession[rows.TaskRow](),

		view:        ui.ViewLogin,
		formEntity:  "login",
		sidebarOpen: true,
		width:       width,
		height:      height,
	}
	m.inputs = loginInputs()
	return m
}

func loginInputs() []textinput.Model {
	phone := textinput.New()
	phone.Placeholder = "Phone Number"
	phone.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return []textinput.Model{phone, password}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Messages for async operations. List messages carry the fence sequence the
// session issued at fetch time; stale ones are discarded on arrival.
type customersMsg struct {
	seq   uint64
	rows  []rows.CustomerRow
	total int
	err   error
}

type invoicesMsg struct {
	seq   uint64
	rows  []rows.InvoiceRow
	total int
	err   error
}

type paymentsMsg struct {
	seq   uint64
	rows  []rows.PaymentRow
	total int
	err   error
}

type unreceiptedMsg struct {
	seq   uint64
	rows  []rows.PaymentRow
	total int
	err   error
}

type receiptsMsg struct {
	seq   uint64
	rows  []rows.ReceiptRow
	total int
	err   error
}

type usersMsg struct {
	seq   uint64
	rows  []rows.UserRow
	total int
	err   error
}

type tasksMsg struct {
	seq   uint64
	rows  []rows.TaskRow
	total int
	err   error
}

type customerMsg struct {
	customer *api.Customer
	err      error
}

type invoiceMsg struct {
	invoice *api.Invoice
	err     error
}

type paymentMsg struct {
	payment *api.Payment
	err     error
}

type receiptMsg struct {
	receipt *api.Receipt
	err     error
}

type taskMsg struct {
	task *api.TaskDetails
	err  error
}

type tenantMsg struct {
	tenant *api.Tenant
	err    error
}

type loginMsg struct {
	user   *api.User
	claims *auth.SessionClaims
	err    error
}

type tenantStatusMsg struct{ status string }

type errMsg struct{ err error }
type successMsg struct{ message string }

// customerCreatedMsg triggers the post-create pause before navigating home.
type customerCreatedMsg struct {
	customer *api.Customer
	err      error
}

type receiptIssuedMsg struct {
	receipt *api.Receipt
	err     error
}

type smsSentMsg struct {
	result *api.SendResult
	err    error
}

type downloadMsg struct {
	path string
	err  error
}

type goHomeMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case customersMsg:
		return applyList(m, m.customers, msg.seq, msg.rows, msg.total, msg.err)
	case invoicesMsg:
		return applyList(m, m.invoices, msg.seq, msg.rows, msg.total, msg.err)
	case paymentsMsg:
		return applyList(m, m.payments, msg.seq, msg.rows, msg.total, msg.err)
	case unreceiptedMsg:
		return applyList(m, m.unreceipted, msg.seq, msg.rows, msg.total, msg.err)
	case receiptsMsg:
		return applyList(m, m.receipts, msg.seq, msg.rows, msg.total, msg.err)
	case usersMsg:
		return applyList(m, m.users, msg.seq, msg.rows, msg.total, msg.err)
	case tasksMsg:
		return applyList(m, m.tasks, msg.seq, msg.rows, msg.total, msg.err)

	case customerMsg:
		return m.handleCustomerMsg(msg)
	case invoiceMsg:
		return m.handleInvoiceMsg(msg)
	case paymentMsg:
		return m.handlePaymentMsg(msg)
	case receiptMsg:
		return m.handleReceiptMsg(msg)
	case taskMsg:
		return m.handleTaskMsg(msg)
	case tenantMsg:
		return m.handleTenantMsg(msg)

	case loginMsg:
		return m.handleLoginMsg(msg)
	case tenantStatusMsg:
		m.state.SetTenantStatus(msg.status)
		return m, nil

	case customerCreatedMsg:
		return m.handleCustomerCreatedMsg(msg)
	case receiptIssuedMsg:
		return m.handleReceiptIssuedMsg(msg)
	case smsSentMsg:
		return m.handleSMSSentMsg(msg)
	case downloadMsg:
		return m.handleDownloadMsg(msg)
	case goHomeMsg:
		m.view = ui.ViewHome
		m.cursor = 0
		m.inputs = nil
		return m, nil

	case errMsg:
		return m.handleError(msg.err)
	case successMsg:
		m.message = msg.message
		m.messageType = ui.MessageTypeSuccess
		return m, nil

	case pickerDebounceMsg:
		return m.handlePickerDebounce(msg)
	case pickerResultsMsg:
		return m.handlePickerResults(msg)
	}

	if len(m.inputs) > 0 || m.picker.active {
		return m.updateInputs(msg)
	}
	return m, nil
}

// applyList lands one page of list results onto its session. Stale results
// are discarded by the fence; failures route through the shared error
// policy, with a lapsed subscription keeping the last good rows.
func applyList[T any](m Model, s *list.Session[T], seq uint64, rs []T, total int, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		if api.IsUnauthenticated(err) {
			return m.toLogin("Session expired. Please sign in again.")
		}
		if !s.Fail(seq, err) {
			return m, nil
		}
		if w := s.Warning(); w != "" {
			m.message = w
			m.messageType = ui.MessageTypeWarning
		} else if e := s.Err(); e != nil {
			m.message = friendlyError(e)
			m.messageType = ui.MessageTypeError
		}
		return m, nil
	}
	s.Apply(seq, rs, total)
	return m, nil
}

func main() {
	sshMode := flag.Bool("ssh", false, "serve the dashboard over SSH instead of the local terminal")
	flag.Parse()

	cfg := config.Load()
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if *sshMode {
		sshMain(cfg)
		return
	}

	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
