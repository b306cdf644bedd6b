package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

// AssistantMode selects which canned response template the assistant uses.
type AssistantMode string

const (
	AssistantGenerate  AssistantMode = "generate"
	AssistantSummarize AssistantMode = "summarize"
	AssistantSuggest   AssistantMode = "suggest"
)

var (
	ErrInvalidAssistantMode = errors.New("invalid_assistant_mode")
	ErrPromptRequired       = errors.New("prompt_required")
)

var (
	generatePrefix = regexp.MustCompile(`(?i)^(add|create|make)\s*`)
	generateSuffix = regexp.MustCompile(`(?i)\s*(task|todo)$`)
)

// AssistantService produces the canned "AI" responses. There is no model
// behind it: responses are string templates keyed by mode, filled from the
// current workspace's tasks.
type AssistantService struct {
	Store store.Store

	Delay   Delayer
	Latency time.Duration
}

// TaskSuggestion is the task the generate mode offers to create.
type TaskSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// AssistantResponse is the rendered template plus, for generate mode, the
// suggestion that Apply turns into a real task.
type AssistantResponse struct {
	Message    string          `json:"message"`
	Suggestion *TaskSuggestion `json:"suggestion,omitempty"`
}

// Ask renders the canned response for a mode.
func (s *AssistantService) Ask(ctx context.Context, mode AssistantMode, prompt string) (AssistantResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return AssistantResponse{}, ErrPromptRequired
	}

	if err := s.Delay.Wait(ctx, s.Latency); err != nil {
		return AssistantResponse{}, err
	}

	switch mode {
	case AssistantGenerate:
		return s.generate(prompt), nil
	case AssistantSummarize:
		return s.summarize(ctx)
	case AssistantSuggest:
		return suggestResponse(), nil
	default:
		return AssistantResponse{}, ErrInvalidAssistantMode
	}
}

// Apply creates the suggested task in the current workspace with To Do
// status and no assignee.
func (s *AssistantService) Apply(ctx context.Context, suggestion TaskSuggestion) (domain.Task, error) {
	tasks := &TaskService{Store: s.Store}
	return tasks.Create(ctx, CreateTaskParams{
		Title:       suggestion.Title,
		Description: suggestion.Description,
		Status:      domain.StatusTodo,
		DueDate:     suggestion.DueDate,
	})
}

func (s *AssistantService) generate(prompt string) AssistantResponse {
	title := generateSuffix.ReplaceAllString(generatePrefix.ReplaceAllString(strings.TrimSpace(prompt), ""), "")

	suggestion := TaskSuggestion{
		Title:       title,
		Description: fmt.Sprintf("Generated from AI prompt: %q", prompt),
		DueDate:     time.Now().UTC().AddDate(0, 0, 7).Format(DateLayout),
	}

	message := fmt.Sprintf(`I've generated a task suggestion based on your prompt. Would you like me to add this task to your workspace?

**Suggested Task:**
- Title: %s
- Description: %s
- Due Date: %s
- Status: To Do`, suggestion.Title, suggestion.Description, suggestion.DueDate)

	return AssistantResponse{Message: message, Suggestion: &suggestion}
}

func (s *AssistantService) summarize(ctx context.Context) (AssistantResponse, error) {
	current, err := s.Store.Workspaces().Current(ctx)
	if err != nil {
		return AssistantResponse{}, err
	}
	tasks, err := s.Store.Tasks().ListWorkspaceTasks(ctx, current)
	if err != nil {
		return AssistantResponse{}, err
	}

	var completed, inProgress []string
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusDone:
			completed = append(completed, t.Title)
		case domain.StatusInProgress:
			inProgress = append(inProgress, t.Title)
		}
	}

	message := fmt.Sprintf(`**Stand-up Summary**

**Yesterday:**
- Completed %d tasks
- Key accomplishments: %s

**Today:**
- %d tasks in progress
- Focus areas: %s

**Blockers:**
- No significant blockers identified
- Team collaboration proceeding smoothly`,
		len(completed), joinFirst(completed, 2),
		len(inProgress), joinFirst(inProgress, 2),
	)

	return AssistantResponse{Message: message}, nil
}

func suggestResponse() AssistantResponse {
	return AssistantResponse{Message: `**Suggested Next Steps:**

Based on your current workspace activity, here are my recommendations:

1. **Priority Tasks:** Review overdue items and update their status
2. **Team Coordination:** Schedule a sync meeting for in-progress tasks
3. **Quality Check:** Move completed tasks through QA process
4. **Planning:** Plan next sprint with stakeholder input

Focus on completing current in-progress tasks before taking on new work.`}
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
