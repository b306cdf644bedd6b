package boardsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the task board service. It provides access to
// unauthenticated operations and creates authenticated Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new board service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and decodes a JSON
// response into out (when out is non-nil). The bearer token is attached
// when non-empty.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetLiveness checks the /livez endpoint.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks the /readyz endpoint.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with the given credentials and returns an
// authenticated Session on success.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/session/login", "",
		LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}

	return &Session{
		client: c,
		token:  out.AccessToken,
		Info:   out.Session,
	}, nil
}

// ResetPassword requests a password reset link. The response never reveals
// whether the email exists.
func (c *Client) ResetPassword(ctx context.Context, email string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/session/reset-password", "",
		ResetPasswordRequest{Email: email}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Session is an authenticated handle to the board service.
type Session struct {
	client *Client
	token  string

	// Info is the identity record returned at login. UpdateProfile and
	// UpdatePassword refresh it.
	Info SessionInfo
}

// Token returns the bearer token backing this session.
func (s *Session) Token() string { return s.token }

// NewSessionFromToken wraps an existing bearer token in a Session. Info is
// left empty until Me is called.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

func (s *Session) get(ctx context.Context, path string, out any) error {
	return s.client.doJSON(ctx, http.MethodGet, path, s.token, nil, out)
}

func (s *Session) post(ctx context.Context, path string, body, out any) error {
	return s.client.doJSON(ctx, http.MethodPost, path, s.token, body, out)
}

// ============================================================================
// Session endpoints
// ============================================================================

// Me fetches the current session record and caches it on the Session.
func (s *Session) Me(ctx context.Context) (*SessionInfo, error) {
	var out SessionInfo
	if err := s.get(ctx, "/v1/session", &out); err != nil {
		return nil, err
	}
	s.Info = out
	return &out, nil
}

// Logout ends the session server-side. The Session must not be reused.
func (s *Session) Logout(ctx context.Context) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/v1/session", s.token, nil, nil)
}

// UpdatePassword sets a new password and clears the first-login flag.
func (s *Session) UpdatePassword(ctx context.Context, password string) (*SessionInfo, error) {
	var out SessionInfo
	err := s.client.doJSON(ctx, http.MethodPut, "/v1/session/password", s.token,
		UpdatePasswordRequest{Password: password}, &out)
	if err != nil {
		return nil, err
	}
	s.Info = out
	return &out, nil
}

// UpdateProfile edits the logged-in user's name and/or email.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*SessionInfo, error) {
	var out SessionInfo
	err := s.client.doJSON(ctx, http.MethodPut, "/v1/session/profile", s.token, req, &out)
	if err != nil {
		return nil, err
	}
	s.Info = out
	return &out, nil
}

// ============================================================================
// Task endpoints
// ============================================================================

// ListTasks returns the current workspace's tasks, optionally filtered by a
// search query matching title, description or assignee name.
func (s *Session) ListTasks(ctx context.Context, query string) ([]Task, error) {
	path := "/v1/tasks"
	if query != "" {
		path += "?query=" + url.QueryEscape(query)
	}
	var out []Task
	if err := s.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask creates a task.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var out Task
	if err := s.post(ctx, "/v1/tasks", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTask fetches a single task by ID.
func (s *Session) GetTask(ctx context.Context, id string) (*Task, error) {
	var out Task
	if err := s.get(ctx, "/v1/tasks/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask applies a partial edit to a task.
func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	var out Task
	err := s.client.doJSON(ctx, http.MethodPatch, "/v1/tasks/"+url.PathEscape(id), s.token, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MoveTask moves a task to another board column.
func (s *Session) MoveTask(ctx context.Context, id, status string) (*Task, error) {
	var out Task
	err := s.post(ctx, "/v1/tasks/"+url.PathEscape(id)+"/move", MoveTaskRequest{Status: status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/v1/tasks/"+url.PathEscape(id), s.token, nil, nil)
}

// ============================================================================
// Workspace endpoints
// ============================================================================

// ListWorkspaces returns every workspace.
func (s *Session) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var out []Workspace
	if err := s.get(ctx, "/v1/workspaces", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentWorkspace returns the active workspace.
func (s *Session) CurrentWorkspace(ctx context.Context) (*Workspace, error) {
	var out Workspace
	if err := s.get(ctx, "/v1/workspaces/current", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWorkspace creates a workspace and switches to it.
func (s *Session) CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (*Workspace, error) {
	var out Workspace
	if err := s.post(ctx, "/v1/workspaces", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SelectWorkspace switches the current workspace.
func (s *Session) SelectWorkspace(ctx context.Context, id string) error {
	return s.post(ctx, "/v1/workspaces/"+url.PathEscape(id)+"/select", nil, nil)
}

// ============================================================================
// Team endpoints
// ============================================================================

// ListMembers returns the roster, optionally filtered by a query matching
// name or email.
func (s *Session) ListMembers(ctx context.Context, query string) ([]TeamMember, error) {
	path := "/v1/members"
	if query != "" {
		path += "?query=" + url.QueryEscape(query)
	}
	var out []TeamMember
	if err := s.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMember adds a member to the roster. Admin only.
func (s *Session) CreateMember(ctx context.Context, req CreateMemberRequest) (*TeamMember, error) {
	var out TeamMember
	if err := s.post(ctx, "/v1/members", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMember applies a partial edit to a member. Admin only.
func (s *Session) UpdateMember(ctx context.Context, id string, req UpdateMemberRequest) (*TeamMember, error) {
	var out TeamMember
	err := s.client.doJSON(ctx, http.MethodPatch, "/v1/members/"+url.PathEscape(id), s.token, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMember removes a member from the roster. Admin only. Tasks assigned
// to the member keep their assignee reference.
func (s *Session) DeleteMember(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/v1/members/"+url.PathEscape(id), s.token, nil, nil)
}

// ============================================================================
// Notification / Activity endpoints
// ============================================================================

// ListNotifications returns all notifications, newest first.
func (s *Session) ListNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := s.get(ctx, "/v1/notifications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadCount returns the number of unread notifications.
func (s *Session) UnreadCount(ctx context.Context) (int, error) {
	var out UnreadCountResponse
	if err := s.get(ctx, "/v1/notifications/unread-count", &out); err != nil {
		return 0, err
	}
	return out.Unread, nil
}

// MarkNotificationRead marks one notification as read.
func (s *Session) MarkNotificationRead(ctx context.Context, id string) error {
	return s.post(ctx, "/v1/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

// MarkAllNotificationsRead marks every notification as read and reports how
// many were flipped.
func (s *Session) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	var out MarkAllReadResponse
	if err := s.post(ctx, "/v1/notifications/read-all", nil, &out); err != nil {
		return 0, err
	}
	return out.Marked, nil
}

// DeleteNotification removes a notification.
func (s *Session) DeleteNotification(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/v1/notifications/"+url.PathEscape(id), s.token, nil, nil)
}

// ListActivity returns the activity feed, newest first.
func (s *Session) ListActivity(ctx context.Context) ([]Activity, error) {
	var out []Activity
	if err := s.get(ctx, "/v1/activity", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordActivity appends a custom entry to the activity feed.
func (s *Session) RecordActivity(ctx context.Context, message string) (*Activity, error) {
	var out Activity
	if err := s.post(ctx, "/v1/activity", RecordActivityRequest{Message: message}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Meeting / Calendar / Metrics / Assistant endpoints
// ============================================================================

// ListMeetings returns meetings, optionally restricted to one calendar day
// (YYYY-MM-DD).
func (s *Session) ListMeetings(ctx context.Context, date string) ([]Meeting, error) {
	path := "/v1/meetings"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	var out []Meeting
	if err := s.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMeeting schedules a meeting.
func (s *Session) CreateMeeting(ctx context.Context, req CreateMeetingRequest) (*Meeting, error) {
	var out Meeting
	if err := s.post(ctx, "/v1/meetings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Month returns the 42-cell calendar grid for a month.
func (s *Session) Month(ctx context.Context, year, month int) (*MonthViewResponse, error) {
	var out MonthViewResponse
	path := fmt.Sprintf("/v1/calendar/%d/%d", year, month)
	if err := s.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Day returns one bucketed calendar day.
func (s *Session) Day(ctx context.Context, date string) (*CalendarDay, error) {
	var out CalendarDay
	if err := s.get(ctx, "/v1/calendar/day/"+url.PathEscape(date), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Metrics returns the dashboard summary.
func (s *Session) Metrics(ctx context.Context) (*MetricsResponse, error) {
	var out MetricsResponse
	if err := s.get(ctx, "/v1/metrics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AskAssistant sends a prompt to the assistant.
func (s *Session) AskAssistant(ctx context.Context, mode, prompt string) (*AssistantResponse, error) {
	var out AssistantResponse
	err := s.post(ctx, "/v1/assistant", AssistantRequest{Mode: mode, Prompt: prompt}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplySuggestion creates the task the assistant suggested.
func (s *Session) ApplySuggestion(ctx context.Context, suggestion TaskSuggestion) (*Task, error) {
	var out Task
	err := s.post(ctx, "/v1/assistant/apply", ApplySuggestionRequest{Suggestion: suggestion}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
