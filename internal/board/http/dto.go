package http

import (
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
)

// Converters between domain records and the wire DTOs in pkg/boardsdk.
// Timestamps go out as RFC3339; calendar-day fields stay plain strings.

func toSessionDTO(s domain.Session) boardsdk.SessionInfo {
	return boardsdk.SessionInfo{
		ID:           s.ID,
		UserID:       s.UserID,
		Email:        s.Email,
		Name:         s.Name,
		Role:         string(s.Role),
		FirstLogin:   s.FirstLogin,
		WorkspaceIDs: s.WorkspaceIDs,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
}

// toTaskDTO renders a task. assigneeName is resolved by the caller so list
// endpoints can batch the roster lookup.
func toTaskDTO(t domain.Task, assigneeName string) boardsdk.Task {
	out := boardsdk.Task{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		AssigneeID:   t.AssigneeID,
		AssigneeName: assigneeName,
		DueDate:      t.DueDate,
		WorkspaceID:  t.WorkspaceID,
		Subtasks:     make([]boardsdk.Subtask, 0, len(t.Subtasks)),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
	for _, st := range t.Subtasks {
		out.Subtasks = append(out.Subtasks, boardsdk.Subtask{
			ID:        st.ID,
			Title:     st.Title,
			Completed: st.Completed,
		})
	}
	if t.LastActivity != nil {
		out.LastActivity = &boardsdk.TaskActivity{
			User:      t.LastActivity.User,
			Action:    t.LastActivity.Action,
			Timestamp: t.LastActivity.Timestamp.Format(time.RFC3339),
		}
	}
	return out
}

func toWorkspaceDTO(w domain.Workspace, currentID string) boardsdk.Workspace {
	return boardsdk.Workspace{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Active:      w.Active,
		Current:     w.ID == currentID,
	}
}

func toMemberDTO(m domain.TeamMember) boardsdk.TeamMember {
	return boardsdk.TeamMember{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     string(m.Role),
		Status:   string(m.Status),
		JoinedAt: m.JoinedAt.Format(time.RFC3339),
	}
}

func toNotificationDTO(n domain.Notification) boardsdk.Notification {
	return boardsdk.Notification{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		TaskID:    n.TaskID,
	}
}

func toActivityDTO(a domain.Activity) boardsdk.Activity {
	return boardsdk.Activity{
		ID:        a.ID,
		Type:      a.Type,
		Message:   a.Message,
		User:      a.Author,
		Timestamp: a.Timestamp.Format(time.RFC3339),
	}
}

func toMeetingDTO(m domain.Meeting) boardsdk.Meeting {
	return boardsdk.Meeting{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		Time:        m.Time,
		Description: m.Description,
		Link:        m.Link,
	}
}

func toSuggestionDTO(s *service.TaskSuggestion) *boardsdk.TaskSuggestion {
	if s == nil {
		return nil
	}
	return &boardsdk.TaskSuggestion{
		Title:       s.Title,
		Description: s.Description,
		DueDate:     s.DueDate,
	}
}
