package api

import (
	"context"
	"fmt"
	"time"
)

// Task statuses.
const (
	TaskStatusPending    = "PENDING"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
	TaskStatusCanceled   = "CANCELED"
)

// Task is a field assignment, currently trash-bag issuance rounds.
type Task struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	DeclaredBags  int       `json:"declaredBags"`
	RemainingBags int       `json:"remainingBags"`
	Assignees     []User    `json:"assignees,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TaskCustomer is one customer covered by a task, with per-customer
// issuance state.
type TaskCustomer struct {
	CustomerID  int64  `json:"customerId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	BagsIssued  bool   `json:"bagsIssued"`
}

// TaskDetails is a task plus the customers it covers.
type TaskDetails struct {
	Task
	Customers []TaskCustomer `json:"customers"`
}

// CreateTrashBagTaskRequest assigns a bag-issuance round to collectors for
// one collection day.
type CreateTrashBagTaskRequest struct {
	CollectionDay string  `json:"collectionDay"`
	DeclaredBags  int     `json:"declaredBags"`
	AssigneeIDs   []int64 `json:"assigneeIds"`
}

// CreateTrashBagTask creates a bag-issuance task.
func (c *Client) CreateTrashBagTask(ctx context.Context, req CreateTrashBagTaskRequest) (*Task, error) {
	var task Task
	if err := c.post(ctx, "/create-trashbag-task", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks fetches one page of tasks.
func (c *Client) ListTasks(ctx context.Context, page PageRequest) ([]Task, int, error) {
	return listGet[Task](ctx, c, "/fetch-task", page.apply(nil), "tasks")
}

// GetTaskDetails fetches one task with its covered customers.
func (c *Client) GetTaskDetails(ctx context.Context, id int64) (*TaskDetails, error) {
	var details TaskDetails
	if err := c.get(ctx, fmt.Sprintf("/fetch-task-details/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// UpdateTaskRequest advances a task: status changes and bag counts.
type UpdateTaskRequest struct {
	Status        string `json:"status,omitempty"`
	RemainingBags *int   `json:"remainingBags,omitempty"`
}

// UpdateTask updates a task's status or remaining bag count.
func (c *Client) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.post(ctx, fmt.Sprintf("/update-task/%d", id), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}
