// Package api is the client for the remote FreelanceHQ REST API. It attaches
// the current bearer token to every request and otherwise passes transport
// results through untouched.
package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/freelancehq/cli/internal/common"
	"github.com/freelancehq/cli/internal/config"
	"github.com/freelancehq/cli/internal/models"
	"github.com/freelancehq/cli/internal/sessions"
)

// Client wraps every outbound request to the API. The token is read from the
// session manager at request time, never from the store directly, so there is
// a single source of truth for credentials.
type Client struct {
	rest     *resty.Client
	sessions *sessions.Manager
}

// New builds a client against the configured API endpoint.
func New(cfg *config.Config, manager *sessions.Manager) *Client {
	rest := resty.New().
		SetBaseURL(cfg.GetAPIBaseUrl()).
		SetTimeout(cfg.API.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("X-Client-Id", common.GetClientIdentifier().String())

	rest.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		// With no token the Authorization header is omitted entirely; the
		// API decides what an unauthenticated request is allowed to see.
		if token := manager.Current().Token; len(token) > 0 {
			req.SetAuthToken(token)
		}
		return nil
	})

	return &Client{
		rest:     rest,
		sessions: manager,
	}
}

// StatusError carries a non-2xx response to the caller. Detail holds the
// API's own message verbatim; this client does not translate errors.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if len(e.Detail) > 0 {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}

func statusError(resp *resty.Response) error {
	var payload models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode(),
			"url":    resp.Request.URL,
		}).Debugln("Error response body is not JSON")
	}

	return &StatusError{
		Code:   resp.StatusCode(),
		Detail: payload.Detail,
	}
}

// Login exchanges credentials for a user and bearer token. It does not touch
// session state; the caller decides whether to adopt the result.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(&models.LoginRequest{Email: email, Password: password}).
		SetResult(&result).
		Post("/auth/login/")

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, statusError(resp)
	}

	return &result, nil
}

// ListClients fetches all clients.
func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var result []models.Client
	if err := c.getList(ctx, "/clients/", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListProjects fetches all projects. Tasks are not included in the list view.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var result []models.Project
	if err := c.getList(ctx, "/projects/", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetProject fetches a single project including its tasks.
func (c *Client) GetProject(ctx context.Context, id int) (*models.Project, error) {
	var result models.Project

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/projects/%d/", id))

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, statusError(resp)
	}

	return &result, nil
}

// ListInvoices fetches all invoices.
func (c *Client) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var result []models.Invoice
	if err := c.getList(ctx, "/invoices/", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) getList(ctx context.Context, path string, result any) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)

	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path": path,
		}).Debugln("Request failed")
		return err
	}
	if resp.IsError() {
		return statusError(resp)
	}

	return nil
}
