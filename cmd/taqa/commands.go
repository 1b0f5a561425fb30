package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/KKiumbe/web-taqa-sub000/internal/api"
	"github.com/KKiumbe/web-taqa-sub000/internal/rows"
	"github.com/KKiumbe/web-taqa-sub000/pkg/auth"
)

// navigateHomeDelay is how long a create-success message stays on screen
// before the app returns to the home screen.
const navigateHomeDelay = 2 * time.Second

// List fetch commands. Each Begin() fences out any response still in flight
// for the same screen.

func (m Model) fetchCustomers() tea.Cmd {
	seq := m.customers.Begin()
	q, page := m.customers.Query(), m.customers.Page()
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, total, err := client.ListCustomers(ctx, q, page)
		if err != nil {
			return customersMsg{seq: seq, err: err}
		}
		return customersMsg{seq: seq, rows: rows.CustomerRows(items), total: total}
	}
}

func (m Model) fetchInvoices() tea.Cmd {
	seq := m.invoices.Begin()
	q, page := m.invoices.Query(), m.invoices.Page()
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, total, err := client.ListInvoices(ctx, q, page)
		if err != nil {
			return invoicesMsg{seq: seq, err: err}
		}
		return invoicesMsg{seq: seq, rows: rows.InvoiceRows(items), total: total}
	}
}

func (m Model) fetchPayments() tea.Cmd {
	seq := m.payments.Begin()
	q, page := m.payments.Query(), m.payments.Page()
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, total, err := client.ListPayments(ctx, q, page)
		if err != nil {
			return paymentsMsg{seq: seq, err: err}
		}
		return paymentsMsg{seq: seq, rows: rows.PaymentRows(items), total: total}
	}
}

func (m Model) fetchUnreceipted() tea.Cmd {
	seq := m.unreceipted.Begin()
	page := m.unreceipted.Page()
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, total, err := client.ListUnreceiptedPayments(ctx, page)
		if err != nil {
			return unreceiptedMsg{seq: seq, err: err}
		}
		return unreceiptedMsg{seq: seq, rows: rows.PaymentRows(items), total: total}
	}
}

func (m Model) fetchReceipts() tea.Cmd {
	seq := m.receipts.Begin()
	q, page := m.receipts.Query(), m.receipts.Page()
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, total, err := client.ListReceipts(ctx, q, page)
		if err != nil {
			return receiptsMsg{seq: seq, err: err}
		}
		return receiptsMsg{seq: seq, rows: rows.ReceiptRows(items), total: total}
	}
}

func (m Model) fetchUsers() tea.Cmd {
	seq := m.users.Begin()
	page := m.users.Page()
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, total, err := client.ListUsers(ctx, page)
		if err != nil {
			return usersMsg{seq: seq, err: err}
		}
		return usersMsg{seq: seq, rows: rows.UserRows(items), total: total}
	}
}

func (m Model) fetchTasks() tea.Cmd {
	seq := m.tasks.Begin()
	page := m.tasks.Page()
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, total, err := client.ListTasks(ctx, page)
		if err != nil {
			return tasksMsg{seq: seq, err: err}
		}
		return tasksMsg{seq: seq, rows: rows.TaskRows(items), total: total}
	}
}

// Detail fetch commands.

func (m Model) fetchCustomer(id int64) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		customer, err := client.GetCustomer(ctx, id)
		return customerMsg{customer: customer, err: err}
	}
}

func (m Model) fetchInvoice(id int64) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		invoice, err := client.GetInvoice(ctx, id)
		return invoiceMsg{invoice: invoice, err: err}
	}
}

func (m Model) fetchPayment(id int64) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		payment, err := client.GetPayment(ctx, id)
		return paymentMsg{payment: payment, err: err}
	}
}

func (m Model) fetchReceipt(id int64) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		receipt, err := client.GetReceipt(ctx, id)
		return receiptMsg{receipt: receipt, err: err}
	}
}

func (m Model) fetchTaskDetails(id int64) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		task, err := client.GetTaskDetails(ctx, id)
		return taskMsg{task: task, err: err}
	}
}

func (m Model) fetchTenant() tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	tenantID := int64(0)
	if claims := m.state.CurrentUser(); claims != nil {
		tenantID = claims.TenantID
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		tenant, err := client.GetTenant(ctx, tenantID)
		return tenantMsg{tenant: tenant, err: err}
	}
}

// checkTenantStatus polls the subscription gate with a short timeout. When
// the check cannot complete in time the app assumes ACTIVE rather than
// locking the operator out of an otherwise working backend.
func (m Model) checkTenantStatus() tea.Cmd {
	client, timeout := m.client, m.cfg.API.TenantStatusTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		status, err := client.TenantStatus(ctx)
		if err != nil {
			return tenantStatusMsg{status: api.TenantStatusActive}
		}
		return tenantStatusMsg{status: status}
	}
}

// signIn establishes the cookie session and parses the session token's
// claims for header display.
func (m Model) signIn(phone, password string) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		user, err := client.SignIn(ctx, api.SignInRequest{PhoneNumber: phone, Password: password})
		if err != nil {
			return loginMsg{err: err}
		}
		claims, err := auth.ParseSessionToken(client.SessionToken())
		if err != nil {
			// A session without readable claims still works; display falls
			// back to the sign-in response.
			claims = &auth.SessionClaims{
				FirstName:   user.FirstName,
				LastName:    user.LastName,
				PhoneNumber: user.PhoneNumber,
				Roles:       user.Roles,
			}
		}
		return loginMsg{user: user, claims: claims}
	}
}

// Mutation commands.

func (m Model) createCustomer(fields map[string]any) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		customer, err := client.CreateCustomer(ctx, fields)
		return customerCreatedMsg{customer: customer, err: err}
	}
}

func (m Model) updateCustomer(id int64, changed map[string]any) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := client.UpdateCustomer(ctx, id, changed); err != nil {
			return errMsg{err}
		}
		return successMsg{"Customer updated successfully"}
	}
}

func (m Model) deleteCustomer(id int64) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := client.DeleteCustomer(ctx, id); err != nil {
			return errMsg{err}
		}
		return successMsg{"Customer deleted successfully"}
	}
}

func (m Model) createInvoice(req api.CreateInvoiceRequest) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := client.CreateInvoice(ctx, req); err != nil {
			return errMsg{err}
		}
		return successMsg{"Invoice created successfully"}
	}
}

func (m Model) createManualPayment(req api.ManualCashPaymentRequest) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := client.CreateManualCashPayment(ctx, req); err != nil {
			return errMsg{err}
		}
		return successMsg{"Payment recorded successfully"}
	}
}

func (m Model) issueReceipt(req api.ManualReceiptRequest) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		receipt, err := client.CreateManualReceipt(ctx, req)
		return receiptIssuedMsg{receipt: receipt, err: err}
	}
}

// downloadReceipt fetches the rendered PDF and writes it under the
// configured download directory.
func (m Model) downloadReceipt(id int64) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	dir := m.cfg.Download.Dir
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		body, err := client.DownloadReceipt(ctx, id)
		if err != nil {
			return downloadMsg{err: err}
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return downloadMsg{err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("receipt-%d.pdf", id))
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return downloadMsg{err: err}
		}
		return downloadMsg{path: path}
	}
}

func (m Model) addUser(req api.AddUserRequest) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := client.AddUser(ctx, req); err != nil {
			return errMsg{err}
		}
		return successMsg{"User created successfully"}
	}
}

func (m Model) updateUser(id int64, changed map[string]any) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := client.UpdateUser(ctx, id, changed); err != nil {
			return errMsg{err}
		}
		return successMsg{"User updated successfully"}
	}
}

// changeRoles applies the checklist against the user's current roles:
// newly checked roles are assigned, unchecked ones removed.
func (m Model) changeRoles(userID int64, add, remove []string) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if len(add) > 0 {
			if _, err := client.AssignRoles(ctx, userID, add); err != nil {
				return errMsg{err}
			}
		}
		if len(remove) > 0 {
			if _, err := client.RemoveRoles(ctx, userID, remove); err != nil {
				return errMsg{err}
			}
		}
		return successMsg{"Roles updated successfully"}
	}
}

func (m Model) createTask(req api.CreateTrashBagTaskRequest) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := client.CreateTrashBagTask(ctx, req); err != nil {
			return errMsg{err}
		}
		return successMsg{"Task created successfully"}
	}
}

func (m Model) updateTask(id int64, req api.UpdateTaskRequest) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := client.UpdateTask(ctx, id, req); err != nil {
			return errMsg{err}
		}
		return successMsg{"Task updated successfully"}
	}
}

func (m Model) updateTenant(id int64, changed map[string]any) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := client.UpdateTenant(ctx, id, changed); err != nil {
			return errMsg{err}
		}
		return successMsg{"Organization updated successfully"}
	}
}

// sendSMS dispatches one of the SMS actions. Threshold is only read by the
// custom-debt action.
func (m Model) sendSMS(action smsActionKind, mobile, day, message string, threshold decimal.Decimal, customerID int64) tea.Cmd {
	client, timeout := m.client, m.cfg.API.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var (
			res *api.SendResult
			err error
		)
		switch action {
		case smsSingle:
			res, err = client.SendSMS(ctx, mobile, message)
		case smsBroadcast:
			res, err = client.SendToAll(ctx, message)
		case smsGroup:
			res, err = client.SendToGroup(ctx, day, message)
		case smsBillOne:
			res, err = client.SendBill(ctx, customerID)
		case smsBillsAll:
			res, err = client.SendBills(ctx)
		case smsBillsDay:
			res, err = client.SendBillsPerDay(ctx, day)
		case smsDebtHigh:
			res, err = client.SendHighDebtReminders(ctx)
		case smsDebtLow:
			res, err = client.SendLowDebtReminders(ctx)
		case smsDebtCustom:
			res, err = client.SendCustomDebtReminders(ctx, threshold, message)
		}
		return smsSentMsg{result: res, err: err}
	}
}

// navigateHomeSoon leaves a create confirmation on screen briefly.
func navigateHomeSoon() tea.Cmd {
	return tea.Tick(navigateHomeDelay, func(time.Time) tea.Msg {
		return goHomeMsg{}
	})
}
