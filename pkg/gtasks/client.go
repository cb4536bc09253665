// Package gtasks wraps the Google Tasks API for to-do item sync.
package gtasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

// Client wraps the Google Tasks API service.
type Client struct {
	service *tasks.Service
}

// NewClientFromCredentialsFile creates a Tasks client from a credentials
// JSON file (service account or OAuth installed app).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Tasks client from raw credentials
// JSON. Service account keys work directly; OAuth installed-app credentials
// additionally need a stored token file.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, tasks.TasksScope)
	if err == nil {
		svc, svcErr := tasks.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create tasks service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, tok, err := installedAppConfig(credentialsJSON, tokenPath, tasks.TasksScope)
	if err != nil {
		return nil, err
	}

	svc, err := tasks.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service from OAuth token: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Tasks client from a pre-configured HTTP
// client. Used in tests.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc}, nil
}

// installedAppConfig parses OAuth installed-app credentials plus the stored
// token file.
func installedAppConfig(credentialsJSON []byte, tokenPath string, scope string) (*oauth2.Config, *oauth2.Token, error) {
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &oauthCreds); err != nil {
		return nil, nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if oauthCreds.Installed.ClientID == "" {
		return nil, nil, fmt.Errorf("credentials are neither a service account key nor installed-app config")
	}

	config := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{scope},
		Endpoint:     google.Endpoint,
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, nil, fmt.Errorf("OAuth installed-app credentials need a stored token (%s): %w", tokenPath, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, nil, fmt.Errorf("failed to parse token file %s: %w", tokenPath, err)
	}
	return config, &tok, nil
}

// CreateTask inserts a task into the given tasklist.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	task := &tasks.Task{
		Title: req.Title,
		Notes: req.Notes,
	}
	if req.Due != nil {
		task.Due = req.Due.Format(time.RFC3339)
	}

	created, err := c.service.Tasks.Insert(tasklistID(req.TasklistID), task).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return fromAPI(created), nil
}

// ListTasks returns the tasks in the given tasklist.
func (c *Client) ListTasks(ctx context.Context, tasklist string) ([]Task, error) {
	result, err := c.service.Tasks.List(tasklistID(tasklist)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]Task, 0, len(result.Items))
	for _, it := range result.Items {
		out = append(out, *fromAPI(it))
	}
	return out, nil
}

func fromAPI(t *tasks.Task) *Task {
	out := &Task{
		ID:     t.Id,
		Title:  t.Title,
		Notes:  t.Notes,
		Status: t.Status,
	}
	if t.Due != "" {
		if due, err := time.Parse(time.RFC3339, t.Due); err == nil {
			out.Due = &due
		}
	}
	return out
}

func tasklistID(id string) string {
	if id == "" {
		return "@default"
	}
	return id
}
