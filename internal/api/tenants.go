package api

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tenant subscription statuses. An EXPIRED or DISABLED tenant gets 402s on
// gated features.
const (
	TenantStatusActive   = "ACTIVE"
	TenantStatusExpired  = "EXPIRED"
	TenantStatusDisabled = "DISABLED"
)

// Tenant is the paying organization whose subscription gates features
// app-wide.
type Tenant struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email,omitempty"`
	PhoneNumber      string          `json:"phoneNumber,omitempty"`
	County           string          `json:"county,omitempty"`
	Town             string          `json:"town,omitempty"`
	Address          string          `json:"address,omitempty"`
	Building         string          `json:"building,omitempty"`
	Street           string          `json:"street,omitempty"`
	Website          string          `json:"website,omitempty"`
	SubscriptionPlan string          `json:"subscriptionPlan"`
	MonthlyCharge    decimal.Decimal `json:"monthlyCharge"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// GetTenant fetches the organization record.
func (c *Client) GetTenant(ctx context.Context, id int64) (*Tenant, error) {
	var tenant Tenant
	if err := c.get(ctx, fmt.Sprintf("/tenants/%d", id), nil, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// UpdateTenant submits only the changed fields for the organization record.
func (c *Client) UpdateTenant(ctx context.Context, id int64, changed map[string]any) (*Tenant, error) {
	var tenant Tenant
	if err := c.put(ctx, fmt.Sprintf("/tenants/%d", id), changed, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// TenantStatus fetches the current subscription status. Screens poll this
// once on mount with a short timeout; callers fall back to ACTIVE when the
// check cannot complete in time (availability over strictness).
func (c *Client) TenantStatus(ctx context.Context) (string, error) {
	var res struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/tenant-status", nil, &res); err != nil {
		return "", err
	}
	return res.Status, nil
}
