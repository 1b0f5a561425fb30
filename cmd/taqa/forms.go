package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/KKiumbe/web-taqa-sub000/cmd/taqa/ui"
	"github.com/KKiumbe/web-taqa-sub000/internal/api"
	"github.com/KKiumbe/web-taqa-sub000/internal/diff"
)

var validate = validator.New()

const msgNoChanges = "No changes to save"

// newForm builds a column of text inputs with the first one focused.
func newForm(fields []formField) []textinput.Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.SetValue(f.value)
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return inputs
}

type formField struct {
	placeholder string
	value       string
}

// ─── Customers ───────────────────────────────────────────────────────────

// customerFieldKeys are the wire keys in input order.
var customerFieldKeys = []string{
	"firstName", "lastName", "email", "phoneNumber", "secondaryPhoneNumber",
	"county", "town", "location", "estateName", "building", "houseNumber",
	"category", "monthlyCharge", "customerType", "garbageCollectionDay",
	"trashBagsIssued",
}

var customerFieldLabels = []string{
	"First Name", "Last Name", "Email", "Phone Number", "Secondary Phone",
	"County", "Town", "Location", "Estate", "Building", "House Number",
	"Category", "Monthly Charge", "Type (PREPAID/POSTPAID)",
	"Collection Day", "Trash Bags Issued (yes/no)",
}

// customerForm carries the validated subset of the form.
type customerForm struct {
	FirstName            string `validate:"required"`
	LastName             string `validate:"required"`
	Email                string `validate:"omitempty,email"`
	PhoneNumber          string `validate:"required,min=10"`
	MonthlyCharge        string `validate:"required"`
	CustomerType         string `validate:"required,oneof=PREPAID POSTPAID"`
	GarbageCollectionDay string `validate:"required"`
}

func (m Model) initCustomerForm(customer *api.Customer) (tea.Model, tea.Cmd) {
	fields := make([]formField, len(customerFieldKeys))
	for i, label := range customerFieldLabels {
		fields[i] = formField{placeholder: label}
	}
	fields[13].value = api.CustomerTypePrepaid

	if customer != nil {
		values := []string{
			customer.FirstName, customer.LastName, customer.Email,
			customer.PhoneNumber, customer.SecondaryPhoneNumber,
			customer.County, customer.Town, customer.Location,
			customer.EstateName, customer.Building, customer.HouseNumber,
			customer.Category, customer.MonthlyCharge.StringFixed(2),
			customer.CustomerType, customer.GarbageCollectionDay,
			yesNoValue(customer.TrashBagsIssued),
		}
		for i, v := range values {
			fields[i].value = v
		}
		m.view = ui.ViewCustomerEdit
		m.formAction = "edit"
		m.snapshot = customerFieldMap(customer)
	} else {
		m.view = ui.ViewCustomerCreate
		m.formAction = "create"
		m.snapshot = nil
	}

	m.inputs = newForm(fields)
	m.focusIndex = 0
	m.formEntity = "customer"
	m.picker = customerPicker{}
	return m, textinput.Blink
}

func yesNoValue(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// customerFieldMap projects a loaded customer into the same field map the
// form produces, so edit submits diff like-for-like.
func customerFieldMap(c *api.Customer) map[string]any {
	return map[string]any{
		"firstName":            c.FirstName,
		"lastName":             c.LastName,
		"email":                c.Email,
		"phoneNumber":          c.PhoneNumber,
		"secondaryPhoneNumber": c.SecondaryPhoneNumber,
		"county":               c.County,
		"town":                 c.Town,
		"location":             c.Location,
		"estateName":           c.EstateName,
		"building":             c.Building,
		"houseNumber":          c.HouseNumber,
		"category":             c.Category,
		"monthlyCharge":        c.MonthlyCharge,
		"customerType":         c.CustomerType,
		"garbageCollectionDay": c.GarbageCollectionDay,
		"trashBagsIssued":      c.TrashBagsIssued,
	}
}

// customerPayload converts the inputs to wire values: the charge becomes a
// number, the bags flag a boolean, everything else a trimmed string.
func (m Model) customerPayload() map[string]any {
	payload := map[string]any{}
	for i, key := range customerFieldKeys {
		raw := strings.TrimSpace(m.inputs[i].Value())
		switch key {
		case "monthlyCharge":
			if n, ok := diff.Number(raw); ok {
				payload[key] = n
			} else {
				payload[key] = raw
			}
		case "trashBagsIssued":
			if b, ok := diff.YesNo(raw); ok {
				payload[key] = b
			}
		default:
			payload[key] = raw
		}
	}
	return payload
}

func (m Model) validateCustomerForm() string {
	form := customerForm{
		FirstName:            strings.TrimSpace(m.inputs[0].Value()),
		LastName:             strings.TrimSpace(m.inputs[1].Value()),
		Email:                strings.TrimSpace(m.inputs[2].Value()),
		PhoneNumber:          strings.TrimSpace(m.inputs[3].Value()),
		MonthlyCharge:        strings.TrimSpace(m.inputs[12].Value()),
		CustomerType:         strings.TrimSpace(m.inputs[13].Value()),
		GarbageCollectionDay: strings.TrimSpace(m.inputs[14].Value()),
	}
	if err := validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if ok := errorsAs(err, &errs); ok && len(errs) > 0 {
			return fieldErrorText(errs[0])
		}
		return "Please check the form and try again"
	}
	if _, ok := diff.Number(form.MonthlyCharge); !ok {
		return "Monthly Charge must be a number"
	}
	return ""
}

func (m Model) handleCustomerFormSubmit() (tea.Model, tea.Cmd) {
	if msg := m.validateCustomerForm(); msg != "" {
		m.message = msg
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	payload := m.customerPayload()

	if m.formAction == "create" {
		return m, m.createCustomer(payload)
	}
	if m.selectedCustomer == nil {
		return m.handleEscape()
	}
	changed := diff.Changed(m.snapshot, payload)
	if len(changed) == 0 {
		m.message = msgNoChanges
		m.messageType = ui.MessageTypeInfo
		return m, nil
	}
	return m, m.updateCustomer(m.selectedCustomer.ID, changed)
}

// ─── Users ───────────────────────────────────────────────────────────────

type userForm struct {
	FirstName   string `validate:"required"`
	PhoneNumber string `validate:"required,min=10"`
	Email       string `validate:"omitempty,email"`
	Password    string `validate:"omitempty,min=6"`
}

func (m Model) initUserForm(user *api.User) (tea.Model, tea.Cmd) {
	fields := []formField{
		{placeholder: "First Name"},
		{placeholder: "Last Name"},
		{placeholder: "Email"},
		{placeholder: "Phone Number"},
	}
	if user != nil {
		fields[0].value = user.FirstName
		fields[1].value = user.LastName
		fields[2].value = user.Email
		fields[3].value = user.PhoneNumber
		m.view = ui.ViewUserEdit
		m.formAction = "edit"
		m.snapshot = map[string]any{
			"firstName":   user.FirstName,
			"lastName":    user.LastName,
			"email":       user.Email,
			"phoneNumber": user.PhoneNumber,
		}
	} else {
		fields = append(fields, formField{placeholder: "Password"})
		m.view = ui.ViewUserCreate
		m.formAction = "create"
		m.snapshot = nil
	}

	m.inputs = newForm(fields)
	if user == nil {
		m.inputs[4].EchoMode = textinput.EchoPassword
		m.inputs[4].EchoCharacter = '•'
	}
	m.focusIndex = 0
	m.formEntity = "user"
	m.picker = customerPicker{}
	return m, textinput.Blink
}

func (m Model) handleUserFormSubmit() (tea.Model, tea.Cmd) {
	form := userForm{
		FirstName:   strings.TrimSpace(m.inputs[0].Value()),
		Email:       strings.TrimSpace(m.inputs[2].Value()),
		PhoneNumber: strings.TrimSpace(m.inputs[3].Value()),
	}
	if m.formAction == "create" {
		form.Password = m.inputs[4].Value()
		if form.Password == "" {
			m.message = "Password is required"
			m.messageType = ui.MessageTypeError
			return m, nil
		}
	}
	if err := validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if ok := errorsAs(err, &errs); ok && len(errs) > 0 {
			m.message = fieldErrorText(errs[0])
		} else {
			m.message = "Please check the form and try again"
		}
		m.messageType = ui.MessageTypeError
		return m, nil
	}

	if m.formAction == "create" {
		req := api.AddUserRequest{
			FirstName:   form.FirstName,
			LastName:    strings.TrimSpace(m.inputs[1].Value()),
			Email:       form.Email,
			PhoneNumber: form.PhoneNumber,
			Password:    form.Password,
		}
		return m, m.addUser(req)
	}

	if m.selectedUser == nil {
		return m.handleEscape()
	}
	current := map[string]any{
		"firstName":   form.FirstName,
		"lastName":    strings.TrimSpace(m.inputs[1].Value()),
		"email":       form.Email,
		"phoneNumber": form.PhoneNumber,
	}
	changed := diff.Changed(m.snapshot, current)
	if len(changed) == 0 {
		m.message = msgNoChanges
		m.messageType = ui.MessageTypeInfo
		return m, nil
	}
	return m, m.updateUser(m.selectedUser.ID, changed)
}

// ─── Role assignment ─────────────────────────────────────────────────────

func (m Model) initRolesForm() (tea.Model, tea.Cmd) {
	if m.selectedUser == nil {
		return m, nil
	}
	m.roleChecked = map[string]bool{}
	for _, r := range m.selectedUser.Roles {
		m.roleChecked[r] = true
	}
	m.roleCursor = 0
	m.view = ui.ViewUserRoles
	m.inputs = nil
	return m, nil
}

func (m Model) handleRolesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.view = ui.ViewUserDetail
		m.cursor = 0
		return m, nil
	case "up", "k":
		if m.roleCursor > 0 {
			m.roleCursor--
		}
	case "down", "j":
		if m.roleCursor < len(api.AllRoles)-1 {
			m.roleCursor++
		}
	case " ", "space":
		role := api.AllRoles[m.roleCursor]
		m.roleChecked[role] = !m.roleChecked[role]
	case "enter":
		return m.handleRolesSubmit()
	}
	return m, nil
}

func (m Model) handleRolesSubmit() (tea.Model, tea.Cmd) {
	if m.selectedUser == nil {
		return m.handleEscape()
	}
	had := map[string]bool{}
	for _, r := range m.selectedUser.Roles {
		had[r] = true
	}
	var add, remove []string
	for _, role := range api.AllRoles {
		switch {
		case m.roleChecked[role] && !had[role]:
			add = append(add, role)
		case !m.roleChecked[role] && had[role]:
			remove = append(remove, role)
		}
	}
	if len(add) == 0 && len(remove) == 0 {
		m.message = msgNoChanges
		m.messageType = ui.MessageTypeInfo
		return m, nil
	}
	m.view = ui.ViewUserDetail
	m.cursor = 0
	return m, tea.Sequence(m.changeRoles(m.selectedUser.ID, add, remove), m.fetchUsers())
}

// ─── Invoices ────────────────────────────────────────────────────────────

func (m Model) initInvoiceForm() (tea.Model, tea.Cmd) {
	m.picker = newCustomerPicker()
	m.inputs = newForm([]formField{
		{placeholder: "Billing Period (YYYY-MM, blank for current)"},
	})
	m.inputs[0].Blur()
	m.focusIndex = 0
	m.view = ui.ViewInvoiceCreate
	m.formAction = "create"
	m.formEntity = "invoice"
	return m, textinput.Blink
}

func (m Model) handleInvoiceFormSubmit() (tea.Model, tea.Cmd) {
	if m.picker.selected == nil {
		m.message = "Select a customer first"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	req := api.CreateInvoiceRequest{
		CustomerID:    m.picker.selected.ID,
		InvoicePeriod: strings.TrimSpace(m.inputs[0].Value()),
	}
	return m, m.createInvoice(req)
}

// ─── Payments ────────────────────────────────────────────────────────────

func (m Model) initPaymentForm() (tea.Model, tea.Cmd) {
	m.picker = newCustomerPicker()
	m.inputs = newForm([]formField{
		{placeholder: "Amount"},
		{placeholder: "Mode (CASH/MPESA/BANK_TRANSFER)", value: api.PaymentModeCash},
		{placeholder: "Paid By"},
	})
	m.inputs[0].Blur()
	m.focusIndex = 0
	m.view = ui.ViewPaymentCreate
	m.formAction = "create"
	m.formEntity = "payment"
	return m, textinput.Blink
}

func (m Model) handlePaymentFormSubmit() (tea.Model, tea.Cmd) {
	if m.picker.selected == nil {
		m.message = "Select a customer first"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(m.inputs[0].Value()))
	if err != nil || !amount.IsPositive() {
		m.message = "Amount must be a positive number"
		m.messageType = ui.MessageTypeError
		m.focusIndex = 1
		return m.updateInputFocus(), nil
	}
	mode := strings.ToUpper(strings.TrimSpace(m.inputs[1].Value()))
	switch mode {
	case api.PaymentModeCash, api.PaymentModeMpesa, api.PaymentModeBankTransfer:
	default:
		m.message = "Mode must be CASH, MPESA or BANK_TRANSFER"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	paidBy := strings.TrimSpace(m.inputs[2].Value())
	if paidBy == "" {
		paidBy = m.picker.selected.FullName()
	}
	req := api.ManualCashPaymentRequest{
		CustomerID:    m.picker.selected.ID,
		Amount:        amount,
		ModeOfPayment: mode,
		PaidBy:        paidBy,
	}
	return m, m.createManualPayment(req)
}

// ─── Receipting ──────────────────────────────────────────────────────────

func (m Model) initReceiptForm(payment *api.Payment) (tea.Model, tea.Cmd) {
	paidBy := ""
	if payment.Customer != nil {
		paidBy = payment.Customer.FullName()
	}
	m.inputs = newForm([]formField{
		{placeholder: "Paid By", value: paidBy},
	})
	m.focusIndex = 0
	m.view = ui.ViewPaymentReceipt
	m.formAction = "create"
	m.formEntity = "receipt"
	m.picker = customerPicker{}
	return m, textinput.Blink
}

func (m Model) handleReceiptFormSubmit() (tea.Model, tea.Cmd) {
	p := m.selectedPayment
	if p == nil {
		return m.handleEscape()
	}
	paidBy := strings.TrimSpace(m.inputs[0].Value())
	if paidBy == "" {
		m.message = "Paid By is required"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	req := api.ManualReceiptRequest{
		PaymentID:  p.ID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		PaidBy:     paidBy,
	}
	return m, m.issueReceipt(req)
}

// ─── SMS ─────────────────────────────────────────────────────────────────

type smsActionKind int

const (
	smsSingle smsActionKind = iota
	smsBroadcast
	smsGroup
	smsBillOne
	smsBillsAll
	smsBillsDay
	smsDebtHigh
	smsDebtLow
	smsDebtCustom
)

type smsActionDef struct {
	kind        smsActionKind
	title       string
	description string
	fields      []string // empty means dispatch immediately
}

var smsActions = []smsActionDef{
	{smsSingle, "Single SMS", "Message one phone number", []string{"Phone Number", "Message"}},
	{smsBroadcast, "Broadcast", "Message every active customer", []string{"Message"}},
	{smsGroup, "Collection Day Group", "Message the customers on one collection day", []string{"Collection Day (e.g. MONDAY)", "Message"}},
	{smsBillOne, "Bill One Customer", "Text one customer their balance", []string{"Customer ID"}},
	{smsBillsAll, "All Bills", "Text every customer with an outstanding balance", nil},
	{smsBillsDay, "Bills per Day", "Text balances for one collection day", []string{"Collection Day (e.g. MONDAY)"}},
	{smsDebtHigh, "High Debt Reminders", "Customers above twice their monthly charge", nil},
	{smsDebtLow, "Low Debt Reminders", "Customers with small balances", nil},
	{smsDebtCustom, "Custom Debt Reminders", "Custom threshold and message", []string{"Balance Threshold", "Message"}},
}

func (m Model) handleSMSSelect() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(smsActions) {
		return m, nil
	}
	def := smsActions[m.cursor]
	if len(def.fields) == 0 {
		return m, m.sendSMS(def.kind, "", "", "", decimal.Zero, 0)
	}
	fields := make([]formField, len(def.fields))
	for i, f := range def.fields {
		fields[i] = formField{placeholder: f}
	}
	m.smsAction = m.cursor
	m.inputs = newForm(fields)
	m.focusIndex = 0
	m.view = ui.ViewSMSCompose
	m.formEntity = "sms"
	m.picker = customerPicker{}
	return m, textinput.Blink
}

func (m Model) handleSMSFormSubmit() (tea.Model, tea.Cmd) {
	if m.smsAction < 0 || m.smsAction >= len(smsActions) {
		return m.handleEscape()
	}
	def := smsActions[m.smsAction]
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = strings.TrimSpace(m.inputs[i].Value())
	}
	for i, v := range values {
		if v == "" {
			m.message = def.fields[i] + " is required"
			m.messageType = ui.MessageTypeError
			return m, nil
		}
	}

	switch def.kind {
	case smsSingle:
		return m, m.sendSMS(def.kind, values[0], "", values[1], decimal.Zero, 0)
	case smsBroadcast:
		return m, m.sendSMS(def.kind, "", "", values[0], decimal.Zero, 0)
	case smsGroup:
		return m, m.sendSMS(def.kind, "", values[0], values[1], decimal.Zero, 0)
	case smsBillOne:
		id, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil {
			m.message = "Customer ID must be a number"
			m.messageType = ui.MessageTypeError
			return m, nil
		}
		return m, m.sendSMS(def.kind, "", "", "", decimal.Zero, id)
	case smsBillsDay:
		return m, m.sendSMS(def.kind, "", values[0], "", decimal.Zero, 0)
	case smsDebtCustom:
		threshold, err := decimal.NewFromString(values[0])
		if err != nil {
			m.message = "Balance Threshold must be a number"
			m.messageType = ui.MessageTypeError
			return m, nil
		}
		return m, m.sendSMS(def.kind, "", "", values[1], threshold, 0)
	}
	return m, nil
}

func smsResultText(res *api.SendResult) string {
	if res == nil {
		return "Message sent"
	}
	if res.Message != "" {
		return res.Message
	}
	if res.Count > 0 {
		return fmt.Sprintf("Queued %d messages", res.Count)
	}
	return "Message sent"
}

// ─── Organization ────────────────────────────────────────────────────────

var tenantFieldKeys = []string{
	"name", "email", "phoneNumber", "county", "town", "address",
	"building", "street", "website", "monthlyCharge",
}

var tenantFieldLabels = []string{
	"Name", "Email", "Phone Number", "County", "Town", "Address",
	"Building", "Street", "Website", "Monthly Charge",
}

func (m Model) initTenantForm() (tea.Model, tea.Cmd) {
	t := m.tenant
	values := []string{
		t.Name, t.Email, t.PhoneNumber, t.County, t.Town, t.Address,
		t.Building, t.Street, t.Website, t.MonthlyCharge.StringFixed(2),
	}
	fields := make([]formField, len(tenantFieldKeys))
	for i := range fields {
		fields[i] = formField{placeholder: tenantFieldLabels[i], value: values[i]}
	}
	m.snapshot = map[string]any{
		"name": t.Name, "email": t.Email, "phoneNumber": t.PhoneNumber,
		"county": t.County, "town": t.Town, "address": t.Address,
		"building": t.Building, "street": t.Street, "website": t.Website,
		"monthlyCharge": t.MonthlyCharge,
	}
	m.inputs = newForm(fields)
	m.focusIndex = 0
	m.view = ui.ViewOrganizationEdit
	m.formAction = "edit"
	m.formEntity = "tenant"
	m.picker = customerPicker{}
	return m, textinput.Blink
}

func (m Model) handleTenantFormSubmit() (tea.Model, tea.Cmd) {
	if m.tenant == nil {
		return m.handleEscape()
	}
	current := map[string]any{}
	for i, key := range tenantFieldKeys {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if key == "monthlyCharge" {
			if n, ok := diff.Number(raw); ok {
				current[key] = n
				continue
			}
			m.message = "Monthly Charge must be a number"
			m.messageType = ui.MessageTypeError
			return m, nil
		}
		current[key] = raw
	}
	if current["name"] == "" {
		m.message = "Name is required"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	changed := diff.Changed(m.snapshot, current)
	if len(changed) == 0 {
		m.message = msgNoChanges
		m.messageType = ui.MessageTypeInfo
		return m, nil
	}
	return m, tea.Sequence(m.updateTenant(m.tenant.ID, changed), m.fetchTenant())
}

// ─── Tasks ───────────────────────────────────────────────────────────────

func (m Model) initTaskForm() (tea.Model, tea.Cmd) {
	m.inputs = newForm([]formField{
		{placeholder: "Collection Day (e.g. MONDAY)"},
		{placeholder: "Declared Bags"},
		{placeholder: "Assignee User IDs (comma separated)"},
	})
	m.focusIndex = 0
	m.view = ui.ViewTaskCreate
	m.formAction = "create"
	m.formEntity = "task"
	m.picker = customerPicker{}
	return m, textinput.Blink
}

func (m Model) handleTaskFormSubmit() (tea.Model, tea.Cmd) {
	day := strings.TrimSpace(m.inputs[0].Value())
	if day == "" {
		m.message = "Collection Day is required"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	bags, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil || bags <= 0 {
		m.message = "Declared Bags must be a positive number"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	var assignees []int64
	for _, part := range strings.Split(m.inputs[2].Value(), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			m.message = "Assignee IDs must be numbers"
			m.messageType = ui.MessageTypeError
			return m, nil
		}
		assignees = append(assignees, id)
	}
	if len(assignees) == 0 {
		m.message = "At least one assignee is required"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	req := api.CreateTrashBagTaskRequest{
		CollectionDay: day,
		DeclaredBags:  bags,
		AssigneeIDs:   assignees,
	}
	m.view = ui.ViewTasks
	m.cursor = 0
	m.inputs = nil
	return m, tea.Sequence(m.createTask(req), m.fetchTasks())
}

func (m Model) initTaskUpdateForm() (tea.Model, tea.Cmd) {
	t := m.selectedTask
	m.inputs = newForm([]formField{
		{placeholder: "Status (PENDING/IN_PROGRESS/COMPLETED/CANCELED)", value: t.Status},
		{placeholder: "Remaining Bags", value: strconv.Itoa(t.RemainingBags)},
	})
	m.focusIndex = 0
	m.view = ui.ViewTaskUpdate
	m.formAction = "edit"
	m.formEntity = "task"
	m.picker = customerPicker{}
	return m, textinput.Blink
}

func (m Model) handleTaskUpdateSubmit() (tea.Model, tea.Cmd) {
	t := m.selectedTask
	if t == nil {
		return m.handleEscape()
	}
	status := strings.ToUpper(strings.TrimSpace(m.inputs[0].Value()))
	switch status {
	case api.TaskStatusPending, api.TaskStatusInProgress, api.TaskStatusCompleted, api.TaskStatusCanceled:
	default:
		m.message = "Status must be PENDING, IN_PROGRESS, COMPLETED or CANCELED"
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	req := api.UpdateTaskRequest{Status: status}
	if raw := strings.TrimSpace(m.inputs[1].Value()); raw != "" {
		bags, err := strconv.Atoi(raw)
		if err != nil || bags < 0 {
			m.message = "Remaining Bags must be a number"
			m.messageType = ui.MessageTypeError
			return m, nil
		}
		req.RemainingBags = &bags
	}
	m.view = ui.ViewTaskDetail
	m.cursor = 0
	m.inputs = nil
	return m, tea.Sequence(m.updateTask(t.ID, req), m.fetchTaskDetails(t.ID))
}

// ─── Validation helpers ──────────────────────────────────────────────────

// fieldErrorText turns the first validator failure into an operator-facing
// line using the form's labels.
func fieldErrorText(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return label + " must be at least " + fe.Param() + " characters"
	case "oneof":
		return label + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return label + " is invalid"
	}
}

var fieldLabelNames = map[string]string{
	"FirstName":            "First Name",
	"LastName":             "Last Name",
	"Email":                "Email",
	"PhoneNumber":          "Phone Number",
	"Password":             "Password",
	"MonthlyCharge":        "Monthly Charge",
	"CustomerType":         "Customer Type",
	"GarbageCollectionDay": "Collection Day",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabelNames[field]; ok {
		return label
	}
	return field
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = errs
	}
	return ok
}
