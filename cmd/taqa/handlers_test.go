package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KKiumbe/web-taqa-sub000/cmd/taqa/ui"
	"github.com/KKiumbe/web-taqa-sub000/internal/api"
)

func TestNextPageSizeCycles(t *testing.T) {
	assert.Equal(t, 20, nextPageSize(10))
	assert.Equal(t, 50, nextPageSize(20))
	assert.Equal(t, 10, nextPageSize(50))
	assert.Equal(t, api.DefaultPageSize, nextPageSize(999), "unknown size falls back")
}

func TestGetParentView(t *testing.T) {
	assert.Equal(t, ui.ViewCustomers, getParentView(ui.ViewCustomerEdit))
	assert.Equal(t, ui.ViewPayments, getParentView(ui.ViewUnreceipted))
	assert.Equal(t, ui.ViewPayments, getParentView(ui.ViewPaymentReceipt))
	assert.Equal(t, ui.ViewUsers, getParentView(ui.ViewUserRoles))
	assert.Equal(t, ui.ViewHome, getParentView(ui.ViewHome), "top-level views map to themselves")
}

func TestSelectedRowSkipsCreateRow(t *testing.T) {
	rs := []string{"a", "b"}

	// Offset 1: cursor 0 is the create row.
	_, ok := selectedRow(rs, 0, 1)
	assert.False(t, ok)

	row, ok := selectedRow(rs, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, "a", row)

	_, ok = selectedRow(rs, 3, 1)
	assert.False(t, ok, "past the end")

	// Offset 0: cursor maps straight onto the rows.
	row, ok = selectedRow(rs, 1, 0)
	assert.True(t, ok)
	assert.Equal(t, "b", row)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a ver...", truncate("a very long name", 8))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestSMSResultText(t *testing.T) {
	assert.Equal(t, "Message sent", smsResultText(nil))
	assert.Equal(t, "Queued 12 messages", smsResultText(&api.SendResult{Count: 12}))
	assert.Equal(t, "All bills sent", smsResultText(&api.SendResult{Message: "All bills sent", Count: 12}))
	assert.Equal(t, "Message sent", smsResultText(&api.SendResult{}))
}

func TestFriendlyError(t *testing.T) {
	assert.Equal(t, "Something went wrong on the server. Try again shortly.",
		friendlyError(&api.Error{Status: 500, Message: "stack trace"}))
	assert.Equal(t, "phoneNumber is required",
		friendlyError(&api.Error{Status: 400, Message: "phoneNumber is required"}))
}

func TestScreenMountsRecheckSubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tenant-status" {
			w.Write([]byte(`{"status":"EXPIRED"}`))
			return
		}
		w.Write([]byte(`{"customers":[],"invoices":[],"payments":[],"receipts":[],"users":[],"tasks":[],"total":0}`))
	}))
	defer srv.Close()

	m := testModel(t, srv.URL)
	for _, view := range []ui.ViewState{
		ui.ViewCustomers, ui.ViewInvoices, ui.ViewUnreceipted,
		ui.ViewTasks, ui.ViewHome, ui.ViewSettings,
	} {
		var status string
		for _, msg := range drainCmd(m.fetchForView(view)) {
			if got, ok := msg.(tenantStatusMsg); ok {
				status = got.status
			}
		}
		assert.Equal(t, "EXPIRED", status, "view %d must re-check the subscription on mount", view)
	}
}

func TestSubscriptionCheckFallsBackToActive(t *testing.T) {
	m := testModel(t, "http://localhost:1")

	var status string
	for _, msg := range drainCmd(m.fetchForView(ui.ViewSettings)) {
		if got, ok := msg.(tenantStatusMsg); ok {
			status = got.status
		}
	}
	assert.Equal(t, api.TenantStatusActive, status, "an unreachable status endpoint never locks the dashboard")
}

func TestSMSActionsWithoutFieldsDispatchImmediately(t *testing.T) {
	immediate := map[smsActionKind]bool{}
	for _, def := range smsActions {
		if len(def.fields) == 0 {
			immediate[def.kind] = true
		}
	}
	assert.True(t, immediate[smsBillsAll])
	assert.True(t, immediate[smsDebtHigh])
	assert.True(t, immediate[smsDebtLow])
	assert.Len(t, immediate, 3)
}
