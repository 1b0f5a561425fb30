package api

import (
	"context"
	"time"
)

// Roles the backend recognizes. A user carries one or more.
const (
	RoleCustomerManager      = "customer_manager"
	RoleAccountant           = "accountant"
	RoleCollector            = "collector"
	RoleSupportAgent         = "support_agent"
	RoleBillingClerk         = "billing_clerk"
	RoleCollectionSupervisor = "collection_supervisor"
	RoleDefault              = "DEFAULT_ROLE"
)

// AllRoles lists the assignable roles in display order.
var AllRoles = []string{
	RoleCustomerManager,
	RoleAccountant,
	RoleCollector,
	RoleSupportAgent,
	RoleBillingClerk,
	RoleCollectionSupervisor,
	RoleDefault,
}

// User is a staff account. The phone number is the login credential.
type User struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email,omitempty"`
	PhoneNumber string     `json:"phoneNumber"`
	Roles       []string   `json:"role"`
	Status      string     `json:"status"`
	LoginCount  int        `json:"loginCount"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ListUsers fetches one page of staff accounts.
func (c *Client) ListUsers(ctx context.Context, page PageRequest) ([]User, int, error) {
	return listGet[User](ctx, c, "/users", page.apply(nil), "users")
}

// AddUserRequest creates a staff account.
type AddUserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// AddUser creates a staff account with the default role.
func (c *Client) AddUser(ctx context.Context, req AddUserRequest) (*User, error) {
	var user User
	if err := c.post(ctx, "/adduser", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser submits only the changed fields for a staff account.
func (c *Client) UpdateUser(ctx context.Context, id int64, changed map[string]any) (*User, error) {
	payload := map[string]any{"userId": id}
	for k, v := range changed {
		payload[k] = v
	}
	var user User
	if err := c.post(ctx, "/update-user", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// roleChangeRequest is shared by role assignment and removal.
type roleChangeRequest struct {
	UserID int64    `json:"userId"`
	Roles  []string `json:"roles"`
}

// AssignRoles grants roles to a user.
func (c *Client) AssignRoles(ctx context.Context, userID int64, roles []string) (*User, error) {
	var user User
	if err := c.post(ctx, "/assign-roles", roleChangeRequest{UserID: userID, Roles: roles}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RemoveRoles revokes roles from a user.
func (c *Client) RemoveRoles(ctx context.Context, userID int64, roles []string) (*User, error) {
	var user User
	if err := c.post(ctx, "/remove-roles", roleChangeRequest{UserID: userID, Roles: roles}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignInRequest authenticates a staff account; the phone number is the
// login credential and the session arrives as a cookie.
type SignInRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// SignIn establishes a session. The session cookie lands in the client's
// jar; the returned user is the signed-in account.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (*User, error) {
	var user User
	if err := c.post(ctx, "/signin", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
