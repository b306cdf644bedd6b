package boardsdk

// ============================================================================
// Error / Health Types
// ============================================================================

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is the short machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports per-dependency status for the readiness probe.
type HealthChecks struct {
	Store   string `json:"store"`
	Session string `json:"session"`
	Signer  string `json:"signer"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// MessageResponse is a plain informational reply with no other payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Session Types
// ============================================================================

// LoginRequest carries the credentials for POST /v1/session/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionInfo is the identity record echoed back to the client. The access
// token itself is never part of this structure.
type SessionInfo struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	FirstLogin   bool     `json:"first_login"`
	WorkspaceIDs []string `json:"workspace_ids"`
	CreatedAt    string   `json:"created_at"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	// AccessToken is the bearer token used to authenticate API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`

	Session SessionInfo `json:"session"`
}

// ResetPasswordRequest asks for a reset link to be sent to the given email.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// UpdatePasswordRequest sets a new password for the logged-in user.
type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

// UpdateProfileRequest edits the logged-in user's profile. Omitted fields
// are left unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ============================================================================
// Task Types
// ============================================================================

// Subtask is a titled checklist item on a task.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskActivity is the most recent action recorded against a task.
type TaskActivity struct {
	User      string `json:"user"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// Task is a board card.
type Task struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	AssigneeID   string `json:"assignee_id,omitempty"`
	AssigneeName string `json:"assignee_name"`

	// DueDate is a plain calendar-day string (YYYY-MM-DD)
	DueDate string `json:"due_date,omitempty"`

	WorkspaceID  string        `json:"workspace_id"`
	Subtasks     []Subtask     `json:"subtasks"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
	LastActivity *TaskActivity `json:"last_activity,omitempty"`
}

// CreateTaskRequest carries the caller-supplied fields for a new task.
// Status defaults to "To Do" and priority to "Medium" when omitted;
// workspace_id defaults to the current workspace.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	AssigneeID  string   `json:"assignee_id,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	WorkspaceID string   `json:"workspace_id,omitempty"`
	Subtasks    []string `json:"subtasks,omitempty"`
}

// UpdateTaskRequest is a partial task edit. Only fields present in the JSON
// body are applied.
type UpdateTaskRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	AssigneeID  *string   `json:"assignee_id,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Subtasks    []Subtask `json:"subtasks,omitempty"`
}

// MoveTaskRequest moves a task to a board column.
type MoveTaskRequest struct {
	Status string `json:"status"`
}

// ============================================================================
// Workspace Types
// ============================================================================

// Workspace groups tasks under one board.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	Current     bool   `json:"current"`
}

// CreateWorkspaceRequest creates a new workspace and switches to it.
type CreateWorkspaceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	MemberIDs   []string `json:"member_ids,omitempty"`
}

// ============================================================================
// Team Types
// ============================================================================

// TeamMember is a person on the roster.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	JoinedAt string `json:"joined_at"`
}

// CreateMemberRequest adds a member to the roster. Status defaults to
// "Pending".
type CreateMemberRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"`
}

// UpdateMemberRequest is a partial member edit.
type UpdateMemberRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// ============================================================================
// Notification / Activity Types
// ============================================================================

// Notification is a user-facing alert.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
	TaskID    string `json:"task_id,omitempty"`
}

// UnreadCountResponse is returned by the unread-count endpoint.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

// MarkAllReadResponse reports how many notifications were flipped to read.
type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}

// Activity is a feed entry.
type Activity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
}

// RecordActivityRequest appends a custom entry to the activity feed.
type RecordActivityRequest struct {
	Message string `json:"message"`
}

// ============================================================================
// Meeting / Calendar Types
// ============================================================================

// Meeting is a scheduled event on the calendar. Date and Time are plain
// strings (YYYY-MM-DD and HH:MM).
type Meeting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// CreateMeetingRequest schedules a meeting.
type CreateMeetingRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// CalendarDay is one bucketed day of tasks and meetings.
type CalendarDay struct {
	Date     string    `json:"date"`
	InMonth  bool      `json:"in_month"`
	Tasks    []Task    `json:"tasks"`
	Meetings []Meeting `json:"meetings"`
}

// MonthViewResponse is a 42-cell month grid.
type MonthViewResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// ============================================================================
// Metrics / Assistant Types
// ============================================================================

// MetricsResponse is the dashboard summary.
type MetricsResponse struct {
	ActiveWorkspaces int `json:"active_workspaces"`
	TotalWorkspaces  int `json:"total_workspaces"`
	CompletedTasks   int `json:"completed_tasks"`
	InProgressTasks  int `json:"in_progress_tasks"`
	TeamMembers      int `json:"team_members"`
}

// TaskSuggestion is the task the assistant's generate mode offers to create.
type TaskSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// AssistantRequest asks the assistant for a response. Mode is one of
// "generate", "summarize" or "suggest".
type AssistantRequest struct {
	Mode   string `json:"mode"`
	Prompt string `json:"prompt"`
}

// AssistantResponse is the rendered reply plus, for generate mode, the
// suggestion that the apply endpoint turns into a real task.
type AssistantResponse struct {
	Message    string          `json:"message"`
	Suggestion *TaskSuggestion `json:"suggestion,omitempty"`
}

// ApplySuggestionRequest creates the suggested task.
type ApplySuggestionRequest struct {
	Suggestion TaskSuggestion `json:"suggestion"`
}
