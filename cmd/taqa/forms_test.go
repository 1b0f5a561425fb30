package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KKiumbe/web-taqa-sub000/cmd/taqa/ui"
	"github.com/KKiumbe/web-taqa-sub000/internal/api"
)

func editableCustomer() *api.Customer {
	return &api.Customer{
		ID:                   9,
		FirstName:            "Jane",
		LastName:             "Wanjiku",
		PhoneNumber:          "0712345678",
		Town:                 "Thika",
		MonthlyCharge:        decimal.NewFromInt(300),
		CustomerType:         api.CustomerTypePrepaid,
		GarbageCollectionDay: "MONDAY",
		TrashBagsIssued:      true,
	}
}

func TestCustomerEditWithoutChangesSendsNothing(t *testing.T) {
	customer := editableCustomer()
	m := testModel(t, "http://localhost:1")
	m.selectedCustomer = customer

	model, _ := m.initCustomerForm(customer)
	m = model.(Model)

	model, cmd := m.handleCustomerFormSubmit()
	m = model.(Model)

	assert.Nil(t, cmd, "an untouched form never leaves the screen")
	assert.Equal(t, msgNoChanges, m.message)
	assert.Equal(t, ui.MessageTypeInfo, m.messageType)
	assert.Equal(t, ui.ViewCustomerEdit, m.view)
}

func TestCustomerEditSubmitsOnlyAfterAChange(t *testing.T) {
	customer := editableCustomer()
	m := testModel(t, "http://localhost:1")
	m.selectedCustomer = customer

	model, _ := m.initCustomerForm(customer)
	m = model.(Model)
	m.inputs[6].SetValue("Juja")

	model, cmd := m.handleCustomerFormSubmit()
	m = model.(Model)

	require.NotNil(t, cmd)
	assert.Empty(t, m.message)
}
