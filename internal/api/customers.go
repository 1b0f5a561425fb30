package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Customer statuses and types as the backend defines them.
const (
	CustomerStatusActive   = "ACTIVE"
	CustomerStatusInactive = "INACTIVE"
	CustomerTypePrepaid    = "PREPAID"
	CustomerTypePostpaid   = "POSTPAID"
)

// Customer represents a garbage-collection customer record.
type Customer struct {
	ID                   int64           `json:"id"`
	FirstName            string          `json:"firstName"`
	LastName             string          `json:"lastName"`
	Email                string          `json:"email,omitempty"`
	PhoneNumber          string          `json:"phoneNumber"`
	SecondaryPhoneNumber string          `json:"secondaryPhoneNumber,omitempty"`
	County               string          `json:"county,omitempty"`
	Town                 string          `json:"town,omitempty"`
	Location             string          `json:"location,omitempty"`
	EstateName           string          `json:"estateName,omitempty"`
	Building             string          `json:"building,omitempty"`
	HouseNumber          string          `json:"houseNumber,omitempty"`
	Category             string          `json:"category,omitempty"`
	MonthlyCharge        decimal.Decimal `json:"monthlyCharge"`
	ClosingBalance       decimal.Decimal `json:"closingBalance"`
	CustomerType         string          `json:"customerType"`
	GarbageCollectionDay string          `json:"garbageCollectionDay"`
	Collected            bool            `json:"collected"`
	TrashBagsIssued      bool            `json:"trashBagsIssued"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// FullName returns the customer's display name.
func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// ListCustomers fetches one page of customers, routing to the unfiltered
// list or the phone/name search endpoints based on the query variant.
func (c *Client) ListCustomers(ctx context.Context, q SearchQuery, page PageRequest) ([]Customer, int, error) {
	path := "/customers"
	switch q.Kind {
	case SearchByPhone:
		path = "/search-customer-by-phone"
	case SearchByName:
		path = "/search-customer-by-name"
	}
	return listGet[Customer](ctx, c, path, page.apply(q.params()), "customers")
}

// SearchCustomers runs the free-text customer lookup used by the
// search-and-select autocomplete.
func (c *Client) SearchCustomers(ctx context.Context, term string, page PageRequest) ([]Customer, int, error) {
	params := url.Values{}
	params.Set("query", term)
	return listGet[Customer](ctx, c, "/search-customers", page.apply(params), "customers")
}

// GetCustomer fetches one customer by id.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	var customer Customer
	if err := c.get(ctx, fmt.Sprintf("/customers/%d", id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer creates a customer from the full field payload.
func (c *Client) CreateCustomer(ctx context.Context, fields map[string]any) (*Customer, error) {
	var customer Customer
	if err := c.post(ctx, "/customers", fields, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer submits only the changed fields for an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, changed map[string]any) (*Customer, error) {
	var customer Customer
	if err := c.put(ctx, fmt.Sprintf("/customers/%d", id), changed, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer removes a customer. The only client-side delete in the app;
// callers confirm first.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/customers/%d", id))
}
