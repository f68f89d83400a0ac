package models

import "strings"

// Client is a customer record owned by a tenant.
type Client struct {
	ID      int    `json:"id"`
	Tenant  int    `json:"tenant"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// Project groups tasks for a client. The list endpoint omits Tasks; the
// detail endpoint includes them.
type Project struct {
	ID          int    `json:"id"`
	Tenant      int    `json:"tenant"`
	Client      int    `json:"client"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Tasks       []Task `json:"tasks,omitempty"`
}

// IsActive reports whether the project still counts towards the dashboard's
// active total.
func (p *Project) IsActive() bool {
	return !strings.EqualFold(p.Status, "completed")
}

// Task is a unit of work within a project.
type Task struct {
	ID       int    `json:"id"`
	Project  int    `json:"project"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Priority int    `json:"priority"`
}

// Invoice is a bill issued to a client.
type Invoice struct {
	ID            int     `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	Client        int     `json:"client"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
}

// IsOutstanding reports whether the invoice still awaits payment.
func (i *Invoice) IsOutstanding() bool {
	return !strings.EqualFold(i.Status, "paid")
}
